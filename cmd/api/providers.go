package main

import (
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/xiebiao/bookshelf/internal/infrastructure/config"
	"github.com/xiebiao/bookshelf/internal/interface/http/handler"
	"github.com/xiebiao/bookshelf/pkg/logger"
)

// provideLogger 从配置创建zap Logger
// cleanup负责把缓冲中的日志刷出去
func provideLogger(cfg *config.Config) (*zap.Logger, func(), error) {
	log, err := logger.New(logger.Config(cfg.Log))
	if err != nil {
		return nil, nil, err
	}
	return log, func() { _ = log.Sync() }, nil
}

// provideSQLDB 取出底层*sql.DB,供就绪检查ping
func provideSQLDB(db *gorm.DB) (handler.Pinger, error) {
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get sql.DB: %w", err)
	}
	return sqlDB, nil
}
