// Package routers 组装 HTTP 路由
package routers

import (
	"net/http"
	"time"

	"github.com/opennotes/notes-service/internal/app"
	"github.com/opennotes/notes-service/internal/middleware"
	"github.com/opennotes/notes-service/internal/routers/api_router"
	"github.com/opennotes/notes-service/pkg/limiter"

	"github.com/gin-gonic/gin"
	ut "github.com/go-playground/universal-translator"
)

// 登录接口限流，避免口令暴力尝试
var methodLimiters = limiter.NewMethodLimiter().AddBuckets(
	limiter.BucketRule{
		Key:          "/api/login",
		FillInterval: time.Second,
		Capacity:     10,
		Quantum:      10,
	},
)

// NewRouter 创建 API 路由（注入 App Container 和翻译器）
func NewRouter(appContainer *app.App, uni *ut.UniversalTranslator) *gin.Engine {

	cfg := appContainer.Config()

	r := gin.New()

	api := r.Group("/api")
	{
		api.Use(middleware.TraceMiddleware())
		api.Use(middleware.RateLimiter(methodLimiters))
		api.Use(middleware.ContextTimeout(time.Duration(cfg.App.DefaultContextTimeout) * time.Second))
		api.Use(middleware.Cors())
		api.Use(middleware.LangWithTranslator(uni))
		api.Use(middleware.AccessLogWithLogger(appContainer.Logger()))
		api.Use(middleware.RecoveryWithLogger(appContainer.Logger()))

		// 创建 Handlers（注入 App Container）
		noteHandler := api_router.NewNoteHandler(appContainer)
		userHandler := api_router.NewUserHandler(appContainer)
		healthHandler := api_router.NewHealthHandler(appContainer)

		api.GET("/health", healthHandler.Check)

		api.POST("/login", userHandler.Login)
		api.POST("/users", userHandler.Register)

		api.GET("/notes", noteHandler.List)
		api.GET("/notes/:id", noteHandler.Get)
		api.PUT("/notes/:id", noteHandler.Update)
		api.DELETE("/notes/:id", noteHandler.Delete)

		// 写入需要认证
		authorized := api.Group("")
		authorized.Use(middleware.UserAuthToken(appContainer.TokenManager(), appContainer.UserService))
		{
			authorized.POST("/notes", noteHandler.Create)
		}
	}

	// 前端构建产物作为静态资源
	if cfg.App.StaticDistPath != "" {
		r.StaticFS("/dist", http.Dir(cfg.App.StaticDistPath))
	}
	r.Use(middleware.Cors())
	r.NoRoute(middleware.NoFound())

	return r
}
