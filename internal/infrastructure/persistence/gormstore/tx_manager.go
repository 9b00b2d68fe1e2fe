package gormstore

import (
	"context"

	"gorm.io/gorm"
)

// txKey Context中事务DB的key
type txKey struct{}

// TxManager 事务管理器
// 要点:
// 1. 封装GORM的Transaction方法
// 2. 通过context传递事务DB(避免全局变量)
// 3. 支持嵌套事务(GORM自动使用Savepoint)
type TxManager struct {
	db *gorm.DB
}

// NewTxManager 创建事务管理器
func NewTxManager(db *gorm.DB) *TxManager {
	return &TxManager{db: db}
}

// Transaction 执行事务
// fn返回error时自动ROLLBACK,返回nil时自动COMMIT
//
// 使用示例:
//
//	err := txManager.Transaction(ctx, func(ctx context.Context) error {
//	    _, err := bookService.Update(ctx, id, patch) // 查询与保存在同一事务中
//	    return err
//	})
func (m *TxManager) Transaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return dbFrom(ctx, m.db).WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Repository的getDB方法会从context提取事务DB
		return fn(context.WithValue(ctx, txKey{}, tx))
	})
}

// dbFrom 从context获取事务DB,如果没有则使用默认DB
func dbFrom(ctx context.Context, def *gorm.DB) *gorm.DB {
	if tx, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return tx
	}
	return def
}
