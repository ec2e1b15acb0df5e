package api_router

import (
	"github.com/opennotes/notes-service/internal/app"
	"github.com/opennotes/notes-service/internal/dto"
	"github.com/opennotes/notes-service/pkg/code"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	pkgapp "github.com/opennotes/notes-service/pkg/app"
)

// UserHandler user API router handler
// UserHandler 用户 API 路由处理器
type UserHandler struct {
	*Handler
}

// NewUserHandler creates UserHandler instance
// NewUserHandler 创建 UserHandler 实例
func NewUserHandler(a *app.App) *UserHandler {
	return &UserHandler{
		Handler: NewHandler(a),
	}
}

// Register user registration
// Register 处理用户注册 HTTP 请求，验证参数并调用 UserService
func (h *UserHandler) Register(c *gin.Context) {
	response := pkgapp.NewResponse(c)
	params := &dto.UserCreateRequest{}

	// 参数绑定和验证
	valid, errs := pkgapp.BindAndValid(c, params)
	if !valid {
		h.App.Logger().Error("UserHandler.Register.BindAndValid errs", zap.Error(errs))
		response.ToResponse(code.ErrorInvalidParams.WithDetails(errs.Errors()...))
		return
	}

	ctx := c.Request.Context()
	userDTO, cerr := h.App.UserService.Register(ctx, params)
	if cerr != nil {
		h.logError(ctx, "UserHandler.Register", cerr)
		response.ToResponse(cerr)
		return
	}

	response.ToResponse(code.SuccessCreated.WithData(userDTO))
}

// Login user login
// Login 处理用户登录 HTTP 请求，验证参数并返回认证 Token
func (h *UserHandler) Login(c *gin.Context) {
	response := pkgapp.NewResponse(c)
	params := &dto.UserLoginRequest{}

	// 参数绑定和验证
	valid, _ := pkgapp.BindAndValid(c, params)
	if !valid {
		// 凭证缺失与凭证错误响应一致
		response.ToResponse(code.ErrorUserLoginFailed)
		return
	}

	ctx := c.Request.Context()
	loginDTO, cerr := h.App.UserService.Login(ctx, params)
	if cerr != nil {
		h.logError(ctx, "UserHandler.Login", cerr)
		response.ToResponse(cerr)
		return
	}

	response.ToResponse(code.Success.WithData(loginDTO))
}
