// Package api_router 提供 HTTP API 路由处理器
package api_router

import (
	"net/http"
	"time"

	"github.com/opennotes/notes-service/internal/app"
	"github.com/opennotes/notes-service/pkg/code"

	"github.com/gin-gonic/gin"

	pkgapp "github.com/opennotes/notes-service/pkg/app"
)

// HealthHandler 健康检查处理器
type HealthHandler struct {
	*Handler
}

// NewHealthHandler 创建健康检查处理器实例
func NewHealthHandler(a *app.App) *HealthHandler {
	return &HealthHandler{Handler: NewHandler(a)}
}

// HealthResponse 健康检查响应
type HealthResponse struct {
	Status   string  `json:"status"`   // "healthy" 或 "unhealthy"
	Version  string  `json:"version"`  // 服务版本号
	Uptime   float64 `json:"uptime"`   // 运行时间（秒）
	Database string  `json:"database"` // "connected" 或 "error"
}

// Check 健康检查接口，包含数据库连通性
func (h *HealthHandler) Check(c *gin.Context) {
	response := HealthResponse{
		Status:   "healthy",
		Version:  h.App.Version().Version,
		Uptime:   time.Since(h.App.StartTime).Seconds(),
		Database: "connected",
	}

	var one int
	if err := h.App.DB().Raw("SELECT 1").Scan(&one).Error; err != nil {
		response.Status = "unhealthy"
		response.Database = "error"
		c.JSON(http.StatusServiceUnavailable, response)
		return
	}

	pkgapp.NewResponse(c).ToResponse(code.Success.WithData(response))
}
