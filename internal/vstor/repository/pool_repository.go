package repository

import (
	"context"

	"github.com/jimyag/vstor/internal/vstor/repository/model"
	"gorm.io/gorm"
)

// PoolRepository 存储池仓库接口
type PoolRepository interface {
	Create(ctx context.Context, pool *model.Pool) error
	GetByName(ctx context.Context, name string) (*model.Pool, error)
	List(ctx context.Context) ([]*model.Pool, error)
	Update(ctx context.Context, pool *model.Pool) error
	Delete(ctx context.Context, name string) error
}

type poolRepository struct {
	db *gorm.DB
}

// NewPoolRepository 创建存储池仓库
func NewPoolRepository(db *gorm.DB) PoolRepository {
	return &poolRepository{db: db}
}

// Create 创建存储池
func (r *poolRepository) Create(ctx context.Context, pool *model.Pool) error {
	return r.db.WithContext(ctx).Create(pool).Error
}

// GetByName 根据名称获取存储池
func (r *poolRepository) GetByName(ctx context.Context, name string) (*model.Pool, error) {
	var pool model.Pool
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&pool).Error; err != nil {
		return nil, err
	}
	return &pool, nil
}

// List 按插入顺序列出所有存储池
// sqlite 表带隐式 rowid，按 rowid 排序保证枚举顺序稳定
func (r *poolRepository) List(ctx context.Context) ([]*model.Pool, error) {
	var pools []*model.Pool
	if err := r.db.WithContext(ctx).Order("rowid").Find(&pools).Error; err != nil {
		return nil, err
	}
	return pools, nil
}

// Update 更新存储池
func (r *poolRepository) Update(ctx context.Context, pool *model.Pool) error {
	return r.db.WithContext(ctx).Save(pool).Error
}

// Delete 删除存储池
func (r *poolRepository) Delete(ctx context.Context, name string) error {
	return r.db.WithContext(ctx).Delete(&model.Pool{}, "name = ?", name).Error
}
