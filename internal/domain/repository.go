// Package domain 定义领域模型和接口
package domain

import "context"

// NoteRepository 笔记仓储接口
type NoteRepository interface {
	// GetByID 根据ID获取笔记（排除已删除）
	GetByID(ctx context.Context, id string) (*Note, error)

	// List 获取全部笔记（排除已删除）
	List(ctx context.Context) ([]*Note, error)

	// ListByOwner 获取指定用户创建的笔记
	ListByOwner(ctx context.Context, ownerID string) ([]*Note, error)

	// Create 创建笔记，返回带存储分配ID的笔记
	Create(ctx context.Context, note *Note) (*Note, error)

	// UpdateImportant 只重写 important 字段，保持 id/content/owner 不变
	UpdateImportant(ctx context.Context, id string, important bool) (*Note, error)

	// UpdateDelete marks a note deleted. Deleting an absent id is not an
	// error: deletion is idempotent at the store boundary.
	// UpdateDelete 标记笔记为删除状态，删除不存在的 id 不报错。
	UpdateDelete(ctx context.Context, id string) error

	// DeletePhysicalByTime 物理删除在指定时间戳之前标记删除的笔记
	DeletePhysicalByTime(ctx context.Context, before int64) (int64, error)

	// Count 获取笔记数量（排除已删除）
	Count(ctx context.Context) (int64, error)
}

// UserRepository 用户仓储接口
type UserRepository interface {
	// GetByID 根据ID获取用户
	GetByID(ctx context.Context, id string) (*User, error)

	// GetByUsername 根据用户名获取用户
	GetByUsername(ctx context.Context, username string) (*User, error)

	// Create 创建用户
	Create(ctx context.Context, user *User) (*User, error)
}
