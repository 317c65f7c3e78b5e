package repository

import (
	"context"

	"github.com/jimyag/vstor/internal/vstor/repository/model"
	"gorm.io/gorm"
)

// ReplicaRepository 副本仓库接口
type ReplicaRepository interface {
	Create(ctx context.Context, replica *model.Replica) error
	GetByUUID(ctx context.Context, uuid string) (*model.Replica, error)
	List(ctx context.Context) ([]*model.Replica, error)
	ListByPool(ctx context.Context, pool string) ([]*model.Replica, error)
	Update(ctx context.Context, replica *model.Replica) error
	Delete(ctx context.Context, uuid string) error
}

type replicaRepository struct {
	db *gorm.DB
}

// NewReplicaRepository 创建副本仓库
func NewReplicaRepository(db *gorm.DB) ReplicaRepository {
	return &replicaRepository{db: db}
}

// Create 创建副本
func (r *replicaRepository) Create(ctx context.Context, replica *model.Replica) error {
	return r.db.WithContext(ctx).Create(replica).Error
}

// GetByUUID 根据 UUID 获取副本
func (r *replicaRepository) GetByUUID(ctx context.Context, uuid string) (*model.Replica, error) {
	var replica model.Replica
	if err := r.db.WithContext(ctx).Where("uuid = ?", uuid).First(&replica).Error; err != nil {
		return nil, err
	}
	return &replica, nil
}

// List 按插入顺序列出所有副本
func (r *replicaRepository) List(ctx context.Context) ([]*model.Replica, error) {
	var replicas []*model.Replica
	if err := r.db.WithContext(ctx).Order("rowid").Find(&replicas).Error; err != nil {
		return nil, err
	}
	return replicas, nil
}

// ListByPool 按插入顺序列出指定存储池中的副本
func (r *replicaRepository) ListByPool(ctx context.Context, pool string) ([]*model.Replica, error) {
	var replicas []*model.Replica
	if err := r.db.WithContext(ctx).Where("pool = ?", pool).Order("rowid").Find(&replicas).Error; err != nil {
		return nil, err
	}
	return replicas, nil
}

// Update 更新副本
func (r *replicaRepository) Update(ctx context.Context, replica *model.Replica) error {
	return r.db.WithContext(ctx).Save(replica).Error
}

// Delete 删除副本
func (r *replicaRepository) Delete(ctx context.Context, uuid string) error {
	return r.db.WithContext(ctx).Delete(&model.Replica{}, "uuid = ?", uuid).Error
}
