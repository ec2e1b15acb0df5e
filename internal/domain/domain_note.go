package domain

import "time"

// Note 笔记领域模型
type Note struct {
	ID        string
	Content   string
	Important bool
	OwnerID   string
	IsDeleted bool
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt time.Time
}

// IsOwnedBy 判断笔记是否属于指定用户
func (n *Note) IsOwnedBy(uid string) bool {
	return n.OwnerID == uid
}

// IsActive 判断笔记是否活跃（未删除）
func (n *Note) IsActive() bool {
	return !n.IsDeleted
}
