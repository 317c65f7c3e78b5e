// Package repository 提供实体存储层实现
//
// 整个模型只存在于进程内存中：数据库使用 sqlite 的 :memory: DSN，
// 连接池限制为单连接（:memory: 数据库随连接存在，多连接会各自得到一个空库），
// 进程退出即丢弃。每次 New 都得到一个完全独立的实例，便于并行测试。
package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jimyag/vstor/internal/vstor/repository/model"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	_ "modernc.org/sqlite" // 纯 Go SQLite 驱动，不需要 CGO
)

// Repository 内存实体存储
type Repository struct {
	db *gorm.DB
}

// New 创建新的 Repository 实例
// 每个实例是一个独立的内存数据库
func New() (*Repository, error) {
	// 使用纯 Go SQLite 驱动创建内存数据库连接，传递给 GORM
	sqlDB, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	// :memory: 数据库与连接同生命周期，必须限制为单连接
	sqlDB.SetMaxOpenConns(1)

	db, err := gorm.Open(sqlite.Dialector{
		DriverName: "sqlite",
		DSN:        ":memory:",
		Conn:       sqlDB,
	}, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("open gorm database: %w", err)
	}

	// 自动迁移
	if err := db.AutoMigrate(
		&model.Pool{},
		&model.Replica{},
		&model.Nexus{},
		&model.NexusChild{},
	); err != nil {
		return nil, fmt.Errorf("auto migrate: %w", err)
	}

	// 同一 nexus 内 child URI 唯一
	if err := db.Exec(`
		CREATE UNIQUE INDEX IF NOT EXISTS idx_nexus_children_unique
		ON nexus_children(nexus_uuid, uri)
	`).Error; err != nil {
		return nil, fmt.Errorf("create unique index on nexus_children: %w", err)
	}

	return &Repository{db: db}, nil
}

// DB 返回 GORM 数据库实例
func (r *Repository) DB() *gorm.DB {
	return r.db
}

// WithContext 返回带上下文的数据库实例
func (r *Repository) WithContext(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx)
}

// Transaction 在一个事务中执行 fn，fn 返回错误则回滚
// 失败的操作不能在存储中留下部分写入
func (r *Repository) Transaction(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return r.db.WithContext(ctx).Transaction(fn)
}

// Close 关闭数据库连接，内存中的模型随之丢弃
func (r *Repository) Close() error {
	if r.db == nil {
		return nil
	}
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
