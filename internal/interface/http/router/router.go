package router

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/xiebiao/bookshelf/docs" // swagger文档注册
	"github.com/xiebiao/bookshelf/internal/infrastructure/config"
	"github.com/xiebiao/bookshelf/internal/interface/http/handler"
	"github.com/xiebiao/bookshelf/internal/interface/http/middleware"
	apperrors "github.com/xiebiao/bookshelf/pkg/errors"
	"github.com/xiebiao/bookshelf/pkg/response"
)

// New 创建并配置Gin引擎
// 中间件顺序：
// 1. Logger:   最先执行,后面所有环节都能拿到带request_id的logger
// 2. Tracing/Metrics: 在Recovery之外,panic转成的500同样计入span与指标
// 3. Recovery: panic → 500统一响应
// 4. CORS:     预检请求在这里结束
func New(
	cfg *config.Config,
	log *zap.Logger,
	bookHandler *handler.BookHandler,
	healthHandler *handler.HealthHandler,
) *gin.Engine {
	// 设置运行模式
	switch cfg.Server.Mode {
	case gin.DebugMode, gin.TestMode:
		gin.SetMode(cfg.Server.Mode)
	default:
		gin.SetMode(gin.ReleaseMode)
	}

	handler.RegisterValidation()

	r := gin.New()
	r.Use(middleware.Logger(log))
	if cfg.Tracing.Enabled {
		r.Use(middleware.Tracing())
	}
	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics())
	}
	r.Use(middleware.Recovery(), middleware.CORS(cfg.CORS))

	// 未命中路由同样返回统一结构
	r.NoRoute(func(c *gin.Context) {
		response.Error(c, apperrors.ErrNotFound)
	})

	// 系统路由
	r.GET("/", healthHandler.Root)
	r.GET("/ping", healthHandler.Ping)
	r.GET("/readyz", healthHandler.Ready)
	if cfg.Metrics.Enabled {
		r.GET(cfg.Metrics.Path, gin.WrapH(promhttp.Handler()))
	}

	// Swagger文档路由
	// 访问 http://localhost:3009/swagger/index.html
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// 图书模块
	books := r.Group("/api/books")
	{
		books.GET("", bookHandler.ListAll)
		books.GET("/list", bookHandler.ListBooks)
		books.GET("/details/:id", bookHandler.GetBook)
		books.POST("/add", bookHandler.AddBook)
		books.POST("/item/:id/edit", bookHandler.EditBook)
		books.DELETE("/item/:id", bookHandler.DeleteBook)
	}

	return r
}
