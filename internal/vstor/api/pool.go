package api

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/jimyag/vstor/internal/vstor/entity"
	"github.com/jimyag/vstor/internal/vstor/service"
	"github.com/jimyag/vstor/pkg/ginx"
	"github.com/rs/zerolog"
)

// PoolServiceInterface 定义存储池服务的接口
type PoolServiceInterface interface {
	CreatePool(ctx context.Context, req *entity.CreatePoolRequest) (*entity.Pool, error)
	DestroyPool(ctx context.Context, req *entity.DestroyPoolRequest) error
	ListPools(ctx context.Context) ([]entity.Pool, error)
}

type Pool struct {
	poolService PoolServiceInterface
}

func NewPool(poolService *service.PoolService) *Pool {
	return &Pool{
		poolService: poolService,
	}
}

func (p *Pool) RegisterRoutes(router *gin.RouterGroup) {
	poolRouter := router.Group("/pools")
	poolRouter.POST("/create", ginx.Handle(p.CreatePool))
	poolRouter.POST("/destroy", ginx.Handle(p.DestroyPool))
	poolRouter.POST("/list", ginx.HandleNoArgs(p.ListPools))
}

func (p *Pool) CreatePool(ctx *gin.Context, req *entity.CreatePoolRequest) (*entity.CreatePoolResponse, error) {
	logger := zerolog.Ctx(ctx)
	logger.Info().
		Interface("request", req).
		Msg("CreatePool called")

	pool, err := p.poolService.CreatePool(ctx, req)
	if err != nil {
		logger.Error().
			Err(err).
			Msg("Failed to create pool")
		return nil, err
	}

	return &entity.CreatePoolResponse{
		Pool: pool,
	}, nil
}

func (p *Pool) DestroyPool(ctx *gin.Context, req *entity.DestroyPoolRequest) (*entity.DestroyPoolResponse, error) {
	logger := zerolog.Ctx(ctx)
	logger.Info().
		Str("name", req.Name).
		Msg("DestroyPool called")

	if err := p.poolService.DestroyPool(ctx, req); err != nil {
		logger.Error().
			Err(err).
			Msg("Failed to destroy pool")
		return nil, err
	}

	return &entity.DestroyPoolResponse{
		Return: true,
	}, nil
}

func (p *Pool) ListPools(ctx *gin.Context) (*entity.ListPoolsResponse, error) {
	logger := zerolog.Ctx(ctx)

	pools, err := p.poolService.ListPools(ctx)
	if err != nil {
		logger.Error().
			Err(err).
			Msg("Failed to list pools")
		return nil, err
	}

	return &entity.ListPoolsResponse{
		Pools: pools,
	}, nil
}
