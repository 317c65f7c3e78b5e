package repository

import (
	"context"

	"github.com/jimyag/vstor/internal/vstor/repository/model"
	"gorm.io/gorm"
)

// NexusRepository nexus 仓库接口
// child 随所属 nexus 管理，不单独暴露仓库
type NexusRepository interface {
	Create(ctx context.Context, nexus *model.Nexus) error
	GetByUUID(ctx context.Context, uuid string) (*model.Nexus, error)
	List(ctx context.Context) ([]*model.Nexus, error)
	Update(ctx context.Context, nexus *model.Nexus) error
	Delete(ctx context.Context, uuid string) error

	AddChild(ctx context.Context, child *model.NexusChild) error
	GetChild(ctx context.Context, nexusUUID string, uri string) (*model.NexusChild, error)
	ListChildren(ctx context.Context, nexusUUID string) ([]*model.NexusChild, error)
	UpdateChild(ctx context.Context, child *model.NexusChild) error
	RemoveChild(ctx context.Context, nexusUUID string, uri string) error
	DeleteChildren(ctx context.Context, nexusUUID string) error
}

type nexusRepository struct {
	db *gorm.DB
}

// NewNexusRepository 创建 nexus 仓库
func NewNexusRepository(db *gorm.DB) NexusRepository {
	return &nexusRepository{db: db}
}

// Create 创建 nexus
func (r *nexusRepository) Create(ctx context.Context, nexus *model.Nexus) error {
	return r.db.WithContext(ctx).Create(nexus).Error
}

// GetByUUID 根据 UUID 获取 nexus
func (r *nexusRepository) GetByUUID(ctx context.Context, uuid string) (*model.Nexus, error) {
	var nexus model.Nexus
	if err := r.db.WithContext(ctx).Where("uuid = ?", uuid).First(&nexus).Error; err != nil {
		return nil, err
	}
	return &nexus, nil
}

// List 按插入顺序列出所有 nexus
func (r *nexusRepository) List(ctx context.Context) ([]*model.Nexus, error) {
	var nexusList []*model.Nexus
	if err := r.db.WithContext(ctx).Order("rowid").Find(&nexusList).Error; err != nil {
		return nil, err
	}
	return nexusList, nil
}

// Update 更新 nexus
func (r *nexusRepository) Update(ctx context.Context, nexus *model.Nexus) error {
	return r.db.WithContext(ctx).Save(nexus).Error
}

// Delete 删除 nexus
func (r *nexusRepository) Delete(ctx context.Context, uuid string) error {
	return r.db.WithContext(ctx).Delete(&model.Nexus{}, "uuid = ?", uuid).Error
}

// AddChild 为 nexus 添加 child
func (r *nexusRepository) AddChild(ctx context.Context, child *model.NexusChild) error {
	return r.db.WithContext(ctx).Create(child).Error
}

// GetChild 根据 nexus UUID 和 URI 获取 child
func (r *nexusRepository) GetChild(ctx context.Context, nexusUUID string, uri string) (*model.NexusChild, error) {
	var child model.NexusChild
	if err := r.db.WithContext(ctx).
		Where("nexus_uuid = ? AND uri = ?", nexusUUID, uri).
		First(&child).Error; err != nil {
		return nil, err
	}
	return &child, nil
}

// ListChildren 按插入顺序列出 nexus 的所有 child
func (r *nexusRepository) ListChildren(ctx context.Context, nexusUUID string) ([]*model.NexusChild, error) {
	var children []*model.NexusChild
	if err := r.db.WithContext(ctx).
		Where("nexus_uuid = ?", nexusUUID).
		Order("id").
		Find(&children).Error; err != nil {
		return nil, err
	}
	return children, nil
}

// UpdateChild 更新 child
func (r *nexusRepository) UpdateChild(ctx context.Context, child *model.NexusChild) error {
	return r.db.WithContext(ctx).Save(child).Error
}

// RemoveChild 根据 nexus UUID 和 URI 删除 child
func (r *nexusRepository) RemoveChild(ctx context.Context, nexusUUID string, uri string) error {
	return r.db.WithContext(ctx).
		Where("nexus_uuid = ? AND uri = ?", nexusUUID, uri).
		Delete(&model.NexusChild{}).Error
}

// DeleteChildren 删除 nexus 的所有 child
func (r *nexusRepository) DeleteChildren(ctx context.Context, nexusUUID string) error {
	return r.db.WithContext(ctx).
		Where("nexus_uuid = ?", nexusUUID).
		Delete(&model.NexusChild{}).Error
}
