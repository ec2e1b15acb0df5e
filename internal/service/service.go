// Package service 实现业务逻辑层
package service

// ServiceConfig Service 层配置（从 AppConfig 提取，避免依赖 internal/app）
type ServiceConfig struct {
	User UserServiceConfig
	App  AppServiceConfig
}

// UserServiceConfig 用户服务配置
type UserServiceConfig struct {
	// RegisterIsEnable 注册是否启用
	RegisterIsEnable bool
	// UsernameMinLength 用户名最小长度
	UsernameMinLength int
	// PasswordMinLength 密码最小长度
	PasswordMinLength int
}

// AppServiceConfig 应用服务配置
type AppServiceConfig struct {
	// SoftDeleteRetentionTime 软删除笔记保留时间
	SoftDeleteRetentionTime string
}
