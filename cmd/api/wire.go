//go:build wireinject
// +build wireinject

// Wire依赖注入配置文件
//
// 修改本文件后运行 `wire gen ./cmd/api` 重新生成wire_gen.go
//
// 依赖链：
// *App → *gin.Engine → *handler.BookHandler → 用例 → book.Service → book.Repository → *gorm.DB → *config.Config

package main

import (
	"github.com/google/wire"

	appbook "github.com/xiebiao/bookshelf/internal/application/book"
	"github.com/xiebiao/bookshelf/internal/domain/book"
	"github.com/xiebiao/bookshelf/internal/infrastructure/config"
	"github.com/xiebiao/bookshelf/internal/infrastructure/persistence/gormstore"
	"github.com/xiebiao/bookshelf/internal/interface/http/handler"
	"github.com/xiebiao/bookshelf/internal/interface/http/router"
)

// infrastructureSet 基础设施层依赖
// 包含：日志、数据库连接
var infrastructureSet = wire.NewSet(
	provideLogger,
	gormstore.NewDB,
	provideSQLDB,
)

// repositorySet 仓储层依赖
var repositorySet = wire.NewSet(
	gormstore.NewBookRepository,
	gormstore.NewTxManager,
	wire.Bind(new(appbook.Transactor), new(*gormstore.TxManager)),
)

// domainSet 领域层依赖
var domainSet = wire.NewSet(
	book.NewService,
)

// applicationSet 应用层依赖
var applicationSet = wire.NewSet(
	appbook.NewListBooksUseCase,
	appbook.NewGetBookUseCase,
	appbook.NewAddBookUseCase,
	appbook.NewEditBookUseCase,
	appbook.NewDeleteBookUseCase,
)

// handlerSet HTTP处理器依赖
var handlerSet = wire.NewSet(
	handler.NewBookHandler,
	handler.NewHealthHandler,
	router.New,
)

// InitializeApp 初始化整个应用
// 返回的cleanup按依赖的逆序释放资源(数据库连接、日志缓冲)
func InitializeApp(cfg *config.Config) (*App, func(), error) {
	wire.Build(
		infrastructureSet,
		repositorySet,
		domainSet,
		applicationSet,
		handlerSet,
		newApp,
	)
	return nil, nil, nil
}
