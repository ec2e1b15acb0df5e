// Package dto defines data transfer objects (request parameters and
// response structs).
// Package dto 定义数据传输对象（请求参数和响应结构体）
package dto

// NoteCreateRequest 创建笔记请求参数
// content 的非空校验在服务层完成（需要 trim 后判断），不放在 binding 标签里
type NoteCreateRequest struct {
	Content string `json:"content" form:"content"`
	// Important 缺省时显式转换为 false，而不是 null
	Important *bool `json:"important" form:"important"`
}

// NoteUpdateRequest 更新笔记请求参数，只有 important 会被应用
type NoteUpdateRequest struct {
	Content   string `json:"content" form:"content"`
	Important *bool  `json:"important" form:"important"`
}

// NoteDTO 笔记数据传输对象
type NoteDTO struct {
	ID        string `json:"id"`
	Content   string `json:"content"`
	Important bool   `json:"important"`
	// User 笔记所有者的用户 ID，创建时写入，之后不再变化
	User string `json:"user"`
}
