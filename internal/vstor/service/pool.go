package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/jimyag/vstor/internal/vstor/entity"
	"github.com/jimyag/vstor/internal/vstor/repository"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

// PoolService 存储池服务
type PoolService struct {
	lock     *OpLock
	poolRepo repository.PoolRepository
}

// NewPoolService 创建存储池服务
func NewPoolService(repo *repository.Repository, lock *OpLock) *PoolService {
	return &PoolService{
		lock:     lock,
		poolRepo: repository.NewPoolRepository(repo.DB()),
	}
}

// CreatePool 创建存储池
// 幂等：同名存储池已存在时原样返回，不做任何修改
func (s *PoolService) CreatePool(ctx context.Context, req *entity.CreatePoolRequest) (*entity.Pool, error) {
	logger := zerolog.Ctx(ctx)
	logger.Info().
		Str("name", req.Name).
		Strs("disks", req.Disks).
		Msg("Creating pool")

	if err := req.IsValid(); err != nil {
		return nil, err
	}

	s.lock.Lock()
	defer s.lock.Unlock()

	existing, err := s.poolRepo.GetByName(ctx, req.Name)
	if err == nil {
		logger.Info().Str("name", req.Name).Msg("Pool already exists, returning existing")
		return poolModelToEntity(existing)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("get pool: %w", err)
	}

	disks := make([]string, 0, len(req.Disks))
	for _, disk := range req.Disks {
		disks = append(disks, diskURI(disk))
	}

	pool := &entity.Pool{
		Name:     req.Name,
		Disks:    disks,
		State:    entity.PoolStateOnline,
		Capacity: poolCapacity,
		Used:     poolUsedBaseline,
	}

	m, err := poolEntityToModel(pool)
	if err != nil {
		return nil, fmt.Errorf("convert pool: %w", err)
	}
	if err := s.poolRepo.Create(ctx, m); err != nil {
		return nil, fmt.Errorf("create pool: %w", err)
	}

	logger.Info().Str("name", req.Name).Msg("Pool created successfully")
	return pool, nil
}

// DestroyPool 销毁存储池
// 存储池不存在时为成功的空操作；不级联销毁其副本
func (s *PoolService) DestroyPool(ctx context.Context, req *entity.DestroyPoolRequest) error {
	logger := zerolog.Ctx(ctx)
	logger.Info().Str("name", req.Name).Msg("Destroying pool")

	if err := req.IsValid(); err != nil {
		return err
	}

	s.lock.Lock()
	defer s.lock.Unlock()

	if err := s.poolRepo.Delete(ctx, req.Name); err != nil {
		return fmt.Errorf("delete pool: %w", err)
	}

	logger.Info().Str("name", req.Name).Msg("Pool destroyed successfully")
	return nil
}

// ListPools 按创建顺序列举所有存储池
func (s *PoolService) ListPools(ctx context.Context) ([]entity.Pool, error) {
	s.lock.Lock()
	defer s.lock.Unlock()

	models, err := s.poolRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list pools: %w", err)
	}

	pools := make([]entity.Pool, 0, len(models))
	for _, m := range models {
		pool, err := poolModelToEntity(m)
		if err != nil {
			return nil, fmt.Errorf("convert pool: %w", err)
		}
		pools = append(pools, *pool)
	}
	return pools, nil
}
