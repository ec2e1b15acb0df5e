package middleware

import (
	"strings"

	"github.com/opennotes/notes-service/internal/service"
	"github.com/opennotes/notes-service/pkg/app"
	"github.com/opennotes/notes-service/pkg/code"

	"github.com/gin-gonic/gin"
)

// UserAuthToken 用户 Token 认证中间件
// 令牌来源仅限 Authorization 请求头的 Bearer 方案，
// 缺失、格式错误、签名无效、过期或用户不存在均返回同一错误
func UserAuthToken(tokenManager app.TokenManager, userService service.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		response := app.NewResponse(c)

		token := extractBearerToken(c)
		if token == "" {
			response.ToResponse(code.ErrorNotUserAuthToken)
			c.Abort()
			return
		}

		user, err := tokenManager.Parse(token)
		if err != nil {
			response.ToResponse(code.ErrorNotUserAuthToken)
			c.Abort()
			return
		}

		// 令牌签发后用户可能已被删除
		if _, err := userService.GetByID(c.Request.Context(), user.UID); err != nil {
			response.ToResponse(code.ErrorNotUserAuthToken)
			c.Abort()
			return
		}

		c.Set("user_token", user)
		c.Next()
	}
}

// extractBearerToken 提取 Bearer 令牌，scheme 不区分大小写
func extractBearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
