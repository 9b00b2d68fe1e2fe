package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/xiebiao/bookshelf/internal/infrastructure/config"
	"github.com/xiebiao/bookshelf/pkg/tracing"
)

// @title           Bookshelf API
// @version         1.0
// @description     图书管理REST接口：分页、前缀检索、增删改查
// @host            localhost:3009
// @BasePath        /

// main 主程序入口
// 依赖由Wire生成的InitializeApp组装(见wire.go)
func main() {
	// 1. 加载配置
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("加载配置失败: %v", err)
	}

	// 2. 追踪(可选)
	if cfg.Tracing.Enabled {
		shutdown, err := tracing.InitTracer(cfg.Tracing.ServiceName, cfg.Tracing.Endpoint)
		if err != nil {
			log.Fatalf("初始化Tracer失败: %v", err)
		}
		defer func() {
			if err := shutdown(context.Background()); err != nil {
				log.Printf("关闭Tracer失败: %v", err)
			}
		}()
	}

	// 3. 依赖注入
	app, cleanup, err := InitializeApp(cfg)
	if err != nil {
		log.Fatalf("初始化应用失败: %v", err)
	}
	defer cleanup()

	// 4. 启动服务,收到SIGINT/SIGTERM后优雅关闭
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx); err != nil {
		app.log.Error("server exited", zap.Error(err))
		return
	}
	app.log.Info("server stopped")
}
