package model

import (
	"github.com/opennotes/notes-service/pkg/timex"
)

// Note 笔记数据库模型
type Note struct {
	ID        string     `gorm:"column:id;primaryKey" json:"id"`
	Content   string     `gorm:"column:content;not null" json:"content"`
	Important bool       `gorm:"column:important;default:false" json:"important"`
	OwnerID   string     `gorm:"column:owner_id;not null;index:idx_owner" json:"ownerId"`
	IsDeleted int64      `gorm:"column:is_deleted;default:0;index:idx_is_deleted" json:"isDeleted"`
	CreatedAt timex.Time `gorm:"column:created_at;type:datetime;default:NULL;autoCreateTime:false" json:"createdAt"`
	UpdatedAt timex.Time `gorm:"column:updated_at;type:datetime;default:NULL;autoUpdateTime:false" json:"updatedAt"`
	DeletedAt timex.Time `gorm:"column:deleted_at;type:datetime;default:NULL" json:"deletedAt"`
}

// TableName 指定表名
func (Note) TableName() string {
	return "note"
}
