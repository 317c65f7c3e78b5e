// Package service 提供业务逻辑层的服务实现
//
// 每个实体族一个服务，所有服务共享同一把全局操作锁：
// 任何操作都在同一个临界区内完整执行，外部观察不到中间状态。
package service

import (
	"strings"
	"time"

	"github.com/jimyag/vstor/internal/vstor/entity"
	"github.com/jimyag/vstor/internal/vstor/repository/model"
	"github.com/jinzhu/copier"
)

// poolEntityToModel 将 entity.Pool 转换为 model.Pool
func poolEntityToModel(e *entity.Pool) (*model.Pool, error) {
	m := &model.Pool{}
	if err := copier.Copy(m, e); err != nil {
		return nil, err
	}

	// disks 在表里存为逗号连接的文本
	m.Disks = strings.Join(e.Disks, ",")
	m.CreatedAt = time.Now()
	m.UpdatedAt = time.Now()

	return m, nil
}

// poolModelToEntity 将 model.Pool 转换为 entity.Pool
func poolModelToEntity(m *model.Pool) (*entity.Pool, error) {
	e := &entity.Pool{}
	if err := copier.Copy(e, m); err != nil {
		return nil, err
	}

	if m.Disks != "" {
		e.Disks = strings.Split(m.Disks, ",")
	} else {
		e.Disks = []string{}
	}

	return e, nil
}

// replicaEntityToModel 将 entity.Replica 转换为 model.Replica
func replicaEntityToModel(e *entity.Replica) (*model.Replica, error) {
	m := &model.Replica{}
	if err := copier.Copy(m, e); err != nil {
		return nil, err
	}

	m.Share = string(e.Share)
	m.CreatedAt = time.Now()
	m.UpdatedAt = time.Now()

	return m, nil
}

// replicaModelToEntity 将 model.Replica 转换为 entity.Replica
func replicaModelToEntity(m *model.Replica) (*entity.Replica, error) {
	e := &entity.Replica{}
	if err := copier.Copy(e, m); err != nil {
		return nil, err
	}

	e.Share = entity.ShareProtocol(m.Share)

	return e, nil
}

// nexusModelToEntity 将 model.Nexus 和它的 children 转换为 entity.Nexus
func nexusModelToEntity(m *model.Nexus, children []*model.NexusChild) (*entity.Nexus, error) {
	e := &entity.Nexus{}
	if err := copier.Copy(e, m); err != nil {
		return nil, err
	}

	e.DeviceURI = m.DeviceURI
	e.Children = make([]entity.Child, 0, len(children))
	for _, child := range children {
		e.Children = append(e.Children, entity.Child{
			URI:             child.URI,
			State:           child.State,
			RebuildProgress: child.RebuildProgress,
		})
	}

	return e, nil
}
