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

// ReplicaService 副本服务
// 持有全局统计计数器，计数器与实体表在同一个串行化边界内
type ReplicaService struct {
	lock        *OpLock
	repo        *repository.Repository
	replicaRepo repository.ReplicaRepository
	poolRepo    repository.PoolRepository
	host        string

	// statCounter 全局统计计数器，每次 stat 调用加固定增量
	// 由 lock 保护
	statCounter uint64
}

// NewReplicaService 创建副本服务
// host 是推导网络端点 URI 时使用的节点地址
func NewReplicaService(repo *repository.Repository, lock *OpLock, host string) *ReplicaService {
	return &ReplicaService{
		lock:        lock,
		repo:        repo,
		replicaRepo: repository.NewReplicaRepository(repo.DB()),
		poolRepo:    repository.NewPoolRepository(repo.DB()),
		host:        host,
	}
}

// CreateReplica 创建副本
// 所属存储池必须已存在；幂等：同 uuid 已存在时原样返回。
// 非瘦分配的副本在创建时向存储池预留容量。
func (s *ReplicaService) CreateReplica(ctx context.Context, req *entity.CreateReplicaRequest) (*entity.Replica, error) {
	logger := zerolog.Ctx(ctx)
	logger.Info().
		Str("uuid", req.UUID).
		Str("pool", req.Pool).
		Uint64("size", req.Size).
		Bool("thin", req.Thin).
		Msg("Creating replica")

	if err := req.IsValid(); err != nil {
		return nil, err
	}

	s.lock.Lock()
	defer s.lock.Unlock()

	existing, err := s.replicaRepo.GetByUUID(ctx, req.UUID)
	if err == nil {
		logger.Info().Str("uuid", req.UUID).Msg("Replica already exists, returning existing")
		return replicaModelToEntity(existing)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("get replica: %w", err)
	}

	pool, err := s.poolRepo.GetByName(ctx, req.Pool)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.WithMessagef(apierror.ErrPoolNotFound, "The pool '%s' does not exist", req.Pool)
		}
		return nil, fmt.Errorf("get pool: %w", err)
	}

	// share 为空默认 NONE；推导对枚举是全函数，未知值落到默认分支
	share := entity.ShareProtocol(req.Share)
	if req.Share == "" {
		share = entity.ShareNone
	}

	replica := &entity.Replica{
		UUID:  req.UUID,
		Pool:  req.Pool,
		Size:  req.Size,
		Thin:  req.Thin,
		Share: share,
		URI:   shareURI(s.host, req.UUID, share),
	}

	m, err := replicaEntityToModel(replica)
	if err != nil {
		return nil, fmt.Errorf("convert replica: %w", err)
	}

	// 副本插入和容量预留要么同时生效要么都不生效
	err = s.repo.Transaction(ctx, func(tx *gorm.DB) error {
		if err := tx.Create(m).Error; err != nil {
			return fmt.Errorf("create replica: %w", err)
		}
		if !req.Thin {
			pool.Used += req.Size
			if err := tx.Save(pool).Error; err != nil {
				return fmt.Errorf("reserve pool capacity: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info().
		Str("uuid", req.UUID).
		Str("uri", replica.URI).
		Msg("Replica created successfully")
	return replica, nil
}

// DestroyReplica 销毁副本
// 副本不存在时为成功的空操作；非瘦分配的副本把容量归还存储池
func (s *ReplicaService) DestroyReplica(ctx context.Context, req *entity.DestroyReplicaRequest) error {
	logger := zerolog.Ctx(ctx)
	logger.Info().Str("uuid", req.UUID).Msg("Destroying replica")

	if err := req.IsValid(); err != nil {
		return err
	}

	s.lock.Lock()
	defer s.lock.Unlock()

	replica, err := s.replicaRepo.GetByUUID(ctx, req.UUID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logger.Info().Str("uuid", req.UUID).Msg("Replica does not exist, nothing to destroy")
			return nil
		}
		return fmt.Errorf("get replica: %w", err)
	}

	err = s.repo.Transaction(ctx, func(tx *gorm.DB) error {
		if err := tx.Delete(&model.Replica{}, "uuid = ?", req.UUID).Error; err != nil {
			return fmt.Errorf("delete replica: %w", err)
		}
		if !replica.Thin {
			// 存储池可能已被销毁（销毁不级联，副本成为孤儿），此时没有容量可归还
			var pool model.Pool
			if err := tx.Where("name = ?", replica.Pool).First(&pool).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return nil
				}
				return fmt.Errorf("get pool: %w", err)
			}
			pool.Used -= replica.Size
			if err := tx.Save(&pool).Error; err != nil {
				return fmt.Errorf("release pool capacity: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	logger.Info().Str("uuid", req.UUID).Msg("Replica destroyed successfully")
	return nil
}

// ListReplicas 按创建顺序列举所有副本
func (s *ReplicaService) ListReplicas(ctx context.Context) ([]entity.Replica, error) {
	s.lock.Lock()
	defer s.lock.Unlock()

	models, err := s.replicaRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list replicas: %w", err)
	}

	replicas := make([]entity.Replica, 0, len(models))
	for _, m := range models {
		replica, err := replicaModelToEntity(m)
		if err != nil {
			return nil, fmt.Errorf("convert replica: %w", err)
		}
		replicas = append(replicas, *replica)
	}
	return replicas, nil
}

// StatReplicas 返回所有副本的统计快照
// 每次调用全局计数器加固定增量，快照里四个计数字段都取同一个计数值，
// 这样连续两次调用返回的计数严格递增，可以据此区分先后
func (s *ReplicaService) StatReplicas(ctx context.Context) ([]entity.ReplicaStats, error) {
	s.lock.Lock()
	defer s.lock.Unlock()

	s.statCounter += statDelta

	models, err := s.replicaRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list replicas: %w", err)
	}

	stats := make([]entity.ReplicaStats, 0, len(models))
	for _, m := range models {
		stats = append(stats, entity.ReplicaStats{
			UUID:         m.UUID,
			Pool:         m.Pool,
			NumReadOps:   s.statCounter,
			NumWriteOps:  s.statCounter,
			BytesRead:    s.statCounter,
			BytesWritten: s.statCounter,
		})
	}
	return stats, nil
}

// ShareReplica 更换副本的共享协议
// 重新推导 URI 并更新存储的协议，不改变大小、所属存储池和瘦分配标志
func (s *ReplicaService) ShareReplica(ctx context.Context, req *entity.ShareReplicaRequest) (string, error) {
	logger := zerolog.Ctx(ctx)
	logger.Info().
		Str("uuid", req.UUID).
		Str("share", req.Share).
		Msg("Sharing replica")

	if err := req.IsValid(); err != nil {
		return "", err
	}

	s.lock.Lock()
	defer s.lock.Unlock()

	replica, err := s.replicaRepo.GetByUUID(ctx, req.UUID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", apierror.WithMessagef(apierror.ErrReplicaNotFound, "The replica '%s' does not exist", req.UUID)
		}
		return "", fmt.Errorf("get replica: %w", err)
	}

	share := entity.ShareProtocol(req.Share)
	replica.Share = string(share)
	replica.URI = shareURI(s.host, req.UUID, share)
	if err := s.replicaRepo.Update(ctx, replica); err != nil {
		return "", fmt.Errorf("update replica: %w", err)
	}

	logger.Info().
		Str("uuid", req.UUID).
		Str("uri", replica.URI).
		Msg("Replica shared successfully")
	return replica.URI, nil
}
