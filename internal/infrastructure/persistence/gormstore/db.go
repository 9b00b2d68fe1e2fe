package gormstore

import (
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/xiebiao/bookshelf/internal/infrastructure/config"
)

// NewDB 创建数据库连接
// 设计说明：
// 1. 使用GORM v2作为ORM框架，按配置选择postgres/mysql/sqlite驱动
// 2. 配置连接池参数（MaxOpenConns、MaxIdleConns、ConnMaxLifetime）
// 3. 开发环境开启SQL日志，生产环境关闭
// 4. 按配置自动建表（AutoMigrate）
func NewDB(cfg *config.Config, log *zap.Logger) (*gorm.DB, func(), error) {
	// 1. 选择驱动
	dialector, err := openDialector(cfg.Database)
	if err != nil {
		return nil, nil, err
	}

	// 2. 配置GORM日志
	logLevel := logger.Silent
	if cfg.Server.Mode == "debug" || cfg.Database.LogSQL {
		logLevel = logger.Info
	}

	// 3. 连接数据库
	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:  logger.Default.LogMode(logLevel),
		NowFunc: func() time.Time { return time.Now().UTC() },
	})
	if err != nil {
		return nil, nil, fmt.Errorf("open database: %w", err)
	}

	// 4. 配置连接池
	sqlDB, err := db.DB()
	if err != nil {
		return nil, nil, fmt.Errorf("get sql.DB: %w", err)
	}
	sqlDB.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

	// 5. 测试连接
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, nil, fmt.Errorf("ping database (%s): %w", cfg.Database.RedactedDSN(), err)
	}

	log.Info("database connected",
		zap.String("driver", cfg.Database.Driver),
		zap.String("dsn", cfg.Database.RedactedDSN()),
	)

	// 6. 自动建表（开发环境）
	if cfg.Database.AutoMigrate {
		if err := AutoMigrate(db); err != nil {
			_ = sqlDB.Close()
			return nil, nil, fmt.Errorf("auto migrate: %w", err)
		}
	}

	cleanup := func() {
		if err := sqlDB.Close(); err != nil {
			log.Warn("close database", zap.Error(err))
		}
	}
	return db, cleanup, nil
}

func openDialector(d config.DatabaseConfig) (gorm.Dialector, error) {
	switch d.Driver {
	case config.DriverPostgres:
		return postgres.Open(d.DSN()), nil
	case config.DriverMySQL:
		return mysql.Open(d.DSN()), nil
	case config.DriverSQLite:
		return sqlite.Open(d.DSN()), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %q", d.Driver)
	}
}

// AutoMigrate 自动建表
// 注意：AutoMigrate只会创建表、添加字段，不会删除或修改现有字段
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&BookModel{})
}

// BookModel GORM图书模型
// 设计说明:
// 1. 这是infrastructure层的数据模型，包含GORM tag
// 2. domain/book/entity.go是领域实体，不依赖GORM
// 3. title/author/isbn可为NULL，使用*string
// 4. 物理删除，不使用gorm.DeletedAt
type BookModel struct {
	ID        string    `gorm:"primaryKey;type:varchar(36)"`
	Title     *string   `gorm:"type:text"`
	Author    *string   `gorm:"type:text"`
	ISBN      *string   `gorm:"column:isbn;type:text"`
	CreatedAt time.Time `gorm:"index;autoCreateTime"` // 排序索引
}

// TableName 指定表名
func (BookModel) TableName() string {
	return "books"
}

// BeforeCreate 插入前生成UUID主键
func (m *BookModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = newID()
	}
	return nil
}
