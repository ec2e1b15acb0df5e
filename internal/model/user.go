package model

import (
	"github.com/opennotes/notes-service/pkg/timex"
)

// User 用户数据库模型
type User struct {
	ID           string     `gorm:"column:id;primaryKey" json:"id"`
	Username     string     `gorm:"column:username;not null;uniqueIndex:idx_username" json:"username"`
	Name         string     `gorm:"column:name;not null" json:"name"`
	PasswordHash string     `gorm:"column:password_hash;not null" json:"-"`
	CreatedAt    timex.Time `gorm:"column:created_at;type:datetime;default:NULL;autoCreateTime:false" json:"createdAt"`
	UpdatedAt    timex.Time `gorm:"column:updated_at;type:datetime;default:NULL;autoUpdateTime:false" json:"updatedAt"`
}

// TableName 指定表名
func (User) TableName() string {
	return "user"
}
