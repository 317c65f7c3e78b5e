// Package vstor 提供服务器的主入口和初始化逻辑
package vstor

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/jimmicro/grace"
	"github.com/jimyag/vstor/internal/vstor/api"
	"github.com/jimyag/vstor/internal/vstor/config"
	"github.com/jimyag/vstor/internal/vstor/entity"
	"github.com/jimyag/vstor/internal/vstor/repository"
	"github.com/jimyag/vstor/internal/vstor/service"
	"github.com/rs/zerolog"
)

type Server struct {
	cfg  *config.Config
	repo *repository.Repository
	api  *api.API
}

func New(cfg *config.Config) (*Server, error) {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	zerolog.DefaultContextLogger = &logger

	// 1. 创建内存实体存储
	repo, err := repository.New()
	if err != nil {
		return nil, fmt.Errorf("create repository: %w", err)
	}

	// 2. 创建服务，共享同一把全局操作锁
	lock := service.NewOpLock()
	poolService := service.NewPoolService(repo, lock)
	replicaService := service.NewReplicaService(repo, lock, cfg.NodeHost)
	nexusService := service.NewNexusService(repo, lock, cfg.NodeHost)
	nodeService := service.NewNodeService(cfg.NodeName)

	// 3. 预置种子拓扑（可选，供测试框架准备固定数据）
	if cfg.SeedFile != "" {
		if err := primeSeed(cfg.SeedFile, poolService, replicaService); err != nil {
			return nil, fmt.Errorf("prime seed: %w", err)
		}
		logger.Info().Str("seed", cfg.SeedFile).Msg("Seed topology primed")
	}

	// 4. 创建 API
	apiInstance, err := api.New(cfg.Address, poolService, replicaService, nexusService, nodeService)
	if err != nil {
		return nil, fmt.Errorf("create api: %w", err)
	}

	server := &Server{
		cfg:  cfg,
		repo: repo,
		api:  apiInstance,
	}
	return server, nil
}

func (s *Server) Run(ctx context.Context) error {
	// 使用 grace.Shepherd 管理服务生命周期
	services := []grace.Grace{
		s.api,
	}

	shepherd := grace.NewShepherd(
		services,
		grace.WithTimeout(30*time.Second),
		grace.WithLogger(&zerologLogger{}),
	)

	shepherd.Start(ctx)
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	if err := s.api.Shutdown(ctx); err != nil {
		return err
	}
	// 关闭存储，整个内存模型随之丢弃
	return s.repo.Close()
}

// Name 实现 grace.Grace 接口
func (s *Server) Name() string {
	return "vstor Server"
}

// primeSeed 通过服务接口把种子文件里的拓扑写入存储
func primeSeed(path string, pools *service.PoolService, replicas *service.ReplicaService) error {
	seed, err := config.LoadSeed(path)
	if err != nil {
		return err
	}

	ctx := context.Background()
	for _, p := range seed.Pools {
		if _, err := pools.CreatePool(ctx, &entity.CreatePoolRequest{
			Name:  p.Name,
			Disks: p.Disks,
		}); err != nil {
			return fmt.Errorf("seed pool %s: %w", p.Name, err)
		}
	}
	for _, r := range seed.Replicas {
		if _, err := replicas.CreateReplica(ctx, &entity.CreateReplicaRequest{
			UUID:  r.UUID,
			Pool:  r.Pool,
			Size:  r.Size,
			Thin:  r.Thin,
			Share: r.Share,
		}); err != nil {
			return fmt.Errorf("seed replica %s: %w", r.UUID, err)
		}
	}
	return nil
}

// zerologLogger 实现 grace.Logger 接口
type zerologLogger struct{}

func (l *zerologLogger) Info(msg string, args ...interface{}) {
	logger := zerolog.DefaultContextLogger.Info()
	// 如果有参数，使用 Msgf 格式化消息
	if len(args) > 0 {
		logger.Msgf(msg, args...)
	} else {
		logger.Msg(msg)
	}
}

func (l *zerologLogger) Error(msg string, args ...interface{}) {
	logger := zerolog.DefaultContextLogger.Error()
	// 如果有参数，使用 Msgf 格式化消息
	if len(args) > 0 {
		logger.Msgf(msg, args...)
	} else {
		logger.Msg(msg)
	}
}
