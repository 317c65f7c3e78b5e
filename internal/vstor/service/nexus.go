package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/jimyag/vstor/internal/vstor/entity"
	"github.com/jimyag/vstor/internal/vstor/repository"
	"github.com/jimyag/vstor/internal/vstor/repository/model"
	"github.com/jimyag/vstor/pkg/apierror"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

// NexusService 复合卷服务
type NexusService struct {
	lock      *OpLock
	repo      *repository.Repository
	nexusRepo repository.NexusRepository
	host      string
}

// NewNexusService 创建复合卷服务
func NewNexusService(repo *repository.Repository, lock *OpLock, host string) *NexusService {
	return &NexusService{
		lock:      lock,
		repo:      repo,
		nexusRepo: repository.NewNexusRepository(repo.DB()),
		host:      host,
	}
}

// CreateNexus 创建 nexus
// 幂等：同 uuid 已存在时原样返回。
// 创建时给出的 children 视为数据一致，全部初始化为 ONLINE、进度 0。
func (s *NexusService) CreateNexus(ctx context.Context, req *entity.CreateNexusRequest) (*entity.Nexus, error) {
	logger := zerolog.Ctx(ctx)
	logger.Info().
		Str("uuid", req.UUID).
		Uint64("size", req.Size).
		Strs("children", req.Children).
		Msg("Creating nexus")

	if err := req.IsValid(); err != nil {
		return nil, err
	}

	s.lock.Lock()
	defer s.lock.Unlock()

	existing, err := s.nexusRepo.GetByUUID(ctx, req.UUID)
	if err == nil {
		logger.Info().Str("uuid", req.UUID).Msg("Nexus already exists, returning existing")
		return s.loadNexus(ctx, existing)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("get nexus: %w", err)
	}

	m := &model.Nexus{
		UUID:  req.UUID,
		Size:  req.Size,
		State: entity.NexusStateOnline,
	}

	// nexus 和它的 children 要么同时落库要么都不落库
	err = s.repo.Transaction(ctx, func(tx *gorm.DB) error {
		if err := tx.Create(m).Error; err != nil {
			return fmt.Errorf("create nexus: %w", err)
		}
		for _, uri := range req.Children {
			child := &model.NexusChild{
				NexusUUID: req.UUID,
				URI:       uri,
				State:     entity.ChildStateOnline,
			}
			if err := tx.Create(child).Error; err != nil {
				return fmt.Errorf("create nexus child: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info().Str("uuid", req.UUID).Msg("Nexus created successfully")
	return s.loadNexus(ctx, m)
}

// DestroyNexus 销毁 nexus 及其所有 children
// nexus 不存在时为成功的空操作
func (s *NexusService) DestroyNexus(ctx context.Context, req *entity.DestroyNexusRequest) error {
	logger := zerolog.Ctx(ctx)
	logger.Info().Str("uuid", req.UUID).Msg("Destroying nexus")

	if err := req.IsValid(); err != nil {
		return err
	}

	s.lock.Lock()
	defer s.lock.Unlock()

	err := s.repo.Transaction(ctx, func(tx *gorm.DB) error {
		if err := tx.Where("nexus_uuid = ?", req.UUID).Delete(&model.NexusChild{}).Error; err != nil {
			return fmt.Errorf("delete nexus children: %w", err)
		}
		if err := tx.Delete(&model.Nexus{}, "uuid = ?", req.UUID).Error; err != nil {
			return fmt.Errorf("delete nexus: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	logger.Info().Str("uuid", req.UUID).Msg("Nexus destroyed successfully")
	return nil
}

// ListNexus 按创建顺序列举所有 nexus（含 children）
func (s *NexusService) ListNexus(ctx context.Context) ([]entity.Nexus, error) {
	s.lock.Lock()
	defer s.lock.Unlock()

	models, err := s.nexusRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list nexus: %w", err)
	}

	nexusList := make([]entity.Nexus, 0, len(models))
	for _, m := range models {
		nexus, err := s.loadNexus(ctx, m)
		if err != nil {
			return nil, err
		}
		nexusList = append(nexusList, *nexus)
	}
	return nexusList, nil
}

// PublishNexus 发布 nexus，设置由 uuid 推导的设备 URI
func (s *NexusService) PublishNexus(ctx context.Context, req *entity.PublishNexusRequest) (string, error) {
	logger := zerolog.Ctx(ctx)
	logger.Info().Str("uuid", req.UUID).Msg("Publishing nexus")

	if err := req.IsValid(); err != nil {
		return "", err
	}

	s.lock.Lock()
	defer s.lock.Unlock()

	nexus, err := s.getNexus(ctx, req.UUID)
	if err != nil {
		return "", err
	}

	nexus.DeviceURI = nexusDeviceURI(s.host, req.UUID)
	if err := s.nexusRepo.Update(ctx, nexus); err != nil {
		return "", fmt.Errorf("update nexus: %w", err)
	}

	logger.Info().
		Str("uuid", req.UUID).
		Str("deviceUri", nexus.DeviceURI).
		Msg("Nexus published successfully")
	return nexus.DeviceURI, nil
}

// UnpublishNexus 取消发布 nexus，清除设备 URI
func (s *NexusService) UnpublishNexus(ctx context.Context, req *entity.UnpublishNexusRequest) error {
	logger := zerolog.Ctx(ctx)
	logger.Info().Str("uuid", req.UUID).Msg("Unpublishing nexus")

	if err := req.IsValid(); err != nil {
		return err
	}

	s.lock.Lock()
	defer s.lock.Unlock()

	nexus, err := s.getNexus(ctx, req.UUID)
	if err != nil {
		return err
	}

	nexus.DeviceURI = ""
	if err := s.nexusRepo.Update(ctx, nexus); err != nil {
		return fmt.Errorf("update nexus: %w", err)
	}

	logger.Info().Str("uuid", req.UUID).Msg("Nexus unpublished successfully")
	return nil
}

// AddChild 为 nexus 添加 child
// 新加入的 child 需要重建才能一致，初始化为 DEGRADED、进度 0。
// 幂等：URI 已存在时不做修改，但仍返回 DEGRADED 的 child 描述。
func (s *NexusService) AddChild(ctx context.Context, req *entity.AddChildRequest) (*entity.Child, error) {
	logger := zerolog.Ctx(ctx)
	logger.Info().
		Str("uuid", req.UUID).
		Str("uri", req.URI).
		Msg("Adding child to nexus")

	if err := req.IsValid(); err != nil {
		return nil, err
	}

	s.lock.Lock()
	defer s.lock.Unlock()

	if _, err := s.getNexus(ctx, req.UUID); err != nil {
		return nil, err
	}

	_, err := s.nexusRepo.GetChild(ctx, req.UUID, req.URI)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("get nexus child: %w", err)
		}
		child := &model.NexusChild{
			NexusUUID: req.UUID,
			URI:       req.URI,
			State:     entity.ChildStateDegraded,
		}
		if err := s.nexusRepo.AddChild(ctx, child); err != nil {
			return nil, fmt.Errorf("add nexus child: %w", err)
		}
		logger.Info().Str("uuid", req.UUID).Str("uri", req.URI).Msg("Child added successfully")
	} else {
		logger.Info().Str("uuid", req.UUID).Str("uri", req.URI).Msg("Child already present, nothing to add")
	}

	return &entity.Child{
		URI:             req.URI,
		State:           entity.ChildStateDegraded,
		RebuildProgress: 0,
	}, nil
}

// RemoveChild 从 nexus 移除 child
// URI 不存在时为成功的空操作
func (s *NexusService) RemoveChild(ctx context.Context, req *entity.RemoveChildRequest) error {
	logger := zerolog.Ctx(ctx)
	logger.Info().
		Str("uuid", req.UUID).
		Str("uri", req.URI).
		Msg("Removing child from nexus")

	if err := req.IsValid(); err != nil {
		return err
	}

	s.lock.Lock()
	defer s.lock.Unlock()

	if _, err := s.getNexus(ctx, req.UUID); err != nil {
		return err
	}

	if err := s.nexusRepo.RemoveChild(ctx, req.UUID, req.URI); err != nil {
		return fmt.Errorf("remove nexus child: %w", err)
	}

	logger.Info().Str("uuid", req.UUID).Str("uri", req.URI).Msg("Child removed successfully")
	return nil
}

// ChildOperation child 操作
// 预留接口：不做任何修改，直接返回成功
func (s *NexusService) ChildOperation(ctx context.Context, req *entity.ChildOperationRequest) error {
	logger := zerolog.Ctx(ctx)
	logger.Info().
		Str("uuid", req.UUID).
		Str("uri", req.URI).
		Int("action", req.Action).
		Msg("Child operation called, nothing to do")
	return nil
}

// getNexus 获取 nexus 模型，不存在时返回 NOT_FOUND 类错误
func (s *NexusService) getNexus(ctx context.Context, uuid string) (*model.Nexus, error) {
	nexus, err := s.nexusRepo.GetByUUID(ctx, uuid)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.WithMessagef(apierror.ErrNexusNotFound, "The nexus '%s' does not exist", uuid)
		}
		return nil, fmt.Errorf("get nexus: %w", err)
	}
	return nexus, nil
}

// loadNexus 加载 nexus 的 children 并转换为实体
func (s *NexusService) loadNexus(ctx context.Context, m *model.Nexus) (*entity.Nexus, error) {
	children, err := s.nexusRepo.ListChildren(ctx, m.UUID)
	if err != nil {
		return nil, fmt.Errorf("list nexus children: %w", err)
	}
	nexus, err := nexusModelToEntity(m, children)
	if err != nil {
		return nil, fmt.Errorf("convert nexus: %w", err)
	}
	return nexus, nil
}
