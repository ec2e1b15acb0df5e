package api_router

import (
	"github.com/opennotes/notes-service/internal/app"
	"github.com/opennotes/notes-service/internal/dto"
	"github.com/opennotes/notes-service/pkg/code"

	"github.com/gin-gonic/gin"

	pkgapp "github.com/opennotes/notes-service/pkg/app"
)

// NoteHandler note API router handler
// NoteHandler 笔记 API 路由处理器
// Uses App Container to inject dependencies, supports unified error handling
// 使用 App Container 注入依赖，支持统一错误处理
type NoteHandler struct {
	*Handler
}

// NewNoteHandler creates NoteHandler instance
// NewNoteHandler 创建 NoteHandler 实例
func NewNoteHandler(a *app.App) *NoteHandler {
	return &NoteHandler{
		Handler: NewHandler(a),
	}
}

// List returns all notes
// List 返回全部笔记列表
func (h *NoteHandler) List(c *gin.Context) {
	response := pkgapp.NewResponse(c)
	ctx := c.Request.Context()

	notes, cerr := h.App.NoteService.List(ctx)
	if cerr != nil {
		h.logError(ctx, "NoteHandler.List", cerr)
		response.ToResponse(cerr)
		return
	}

	response.ToResponse(code.Success.WithData(notes))
}

// Get returns a single note by id
// Get 按 ID 返回单条笔记
func (h *NoteHandler) Get(c *gin.Context) {
	response := pkgapp.NewResponse(c)
	ctx := c.Request.Context()
	id := c.Param("id")

	note, cerr := h.App.NoteService.Get(ctx, id)
	if cerr != nil {
		response.ToResponse(cerr)
		return
	}

	response.ToResponse(code.Success.WithData(note))
}

// Create creates a note owned by the authenticated user
// Create 创建笔记，归属当前认证用户
func (h *NoteHandler) Create(c *gin.Context) {
	response := pkgapp.NewResponse(c)
	params := &dto.NoteCreateRequest{}

	valid, errs := pkgapp.BindAndValid(c, params)
	if !valid {
		response.ToResponse(code.ErrorInvalidParams.WithDetails(errs.Errors()...))
		return
	}

	uid := pkgapp.GetUID(c)
	if uid == "" {
		response.ToResponse(code.ErrorNotUserAuthToken)
		return
	}

	ctx := c.Request.Context()
	note, cerr := h.App.NoteService.Create(ctx, uid, params)
	if cerr != nil {
		h.logError(ctx, "NoteHandler.Create", cerr)
		response.ToResponse(cerr)
		return
	}

	response.ToResponse(code.SuccessCreated.WithData(note))
}

// Update replaces the importance flag of a note
// Update 更新笔记的重要性标记
func (h *NoteHandler) Update(c *gin.Context) {
	response := pkgapp.NewResponse(c)
	params := &dto.NoteUpdateRequest{}

	valid, errs := pkgapp.BindAndValid(c, params)
	if !valid {
		response.ToResponse(code.ErrorInvalidParams.WithDetails(errs.Errors()...))
		return
	}

	ctx := c.Request.Context()
	id := c.Param("id")

	note, cerr := h.App.NoteService.UpdateImportance(ctx, id, params)
	if cerr != nil {
		response.ToResponse(cerr)
		return
	}

	response.ToResponse(code.Success.WithData(note))
}

// Delete removes a note, succeeding even when it is already gone
// Delete 删除笔记，重复删除同样成功
func (h *NoteHandler) Delete(c *gin.Context) {
	response := pkgapp.NewResponse(c)
	ctx := c.Request.Context()
	id := c.Param("id")

	if cerr := h.App.NoteService.Delete(ctx, id); cerr != nil {
		response.ToResponse(cerr)
		return
	}

	response.ToResponse(code.SuccessNoContent)
}
