package api

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/jimyag/vstor/internal/vstor/entity"
	"github.com/jimyag/vstor/internal/vstor/service"
	"github.com/jimyag/vstor/pkg/ginx"
	"github.com/rs/zerolog"
)

// ReplicaServiceInterface 定义副本服务的接口
type ReplicaServiceInterface interface {
	CreateReplica(ctx context.Context, req *entity.CreateReplicaRequest) (*entity.Replica, error)
	DestroyReplica(ctx context.Context, req *entity.DestroyReplicaRequest) error
	ListReplicas(ctx context.Context) ([]entity.Replica, error)
	StatReplicas(ctx context.Context) ([]entity.ReplicaStats, error)
	ShareReplica(ctx context.Context, req *entity.ShareReplicaRequest) (string, error)
}

type Replica struct {
	replicaService ReplicaServiceInterface
}

func NewReplica(replicaService *service.ReplicaService) *Replica {
	return &Replica{
		replicaService: replicaService,
	}
}

func (r *Replica) RegisterRoutes(router *gin.RouterGroup) {
	replicaRouter := router.Group("/replicas")
	replicaRouter.POST("/create", ginx.Handle(r.CreateReplica))
	replicaRouter.POST("/destroy", ginx.Handle(r.DestroyReplica))
	replicaRouter.POST("/list", ginx.HandleNoArgs(r.ListReplicas))
	replicaRouter.POST("/stat", ginx.HandleNoArgs(r.StatReplicas))
	replicaRouter.POST("/share", ginx.Handle(r.ShareReplica))
}

func (r *Replica) CreateReplica(ctx *gin.Context, req *entity.CreateReplicaRequest) (*entity.CreateReplicaResponse, error) {
	logger := zerolog.Ctx(ctx)
	logger.Info().
		Interface("request", req).
		Msg("CreateReplica called")

	replica, err := r.replicaService.CreateReplica(ctx, req)
	if err != nil {
		logger.Error().
			Err(err).
			Msg("Failed to create replica")
		return nil, err
	}

	return &entity.CreateReplicaResponse{
		Replica: replica,
	}, nil
}

func (r *Replica) DestroyReplica(ctx *gin.Context, req *entity.DestroyReplicaRequest) (*entity.DestroyReplicaResponse, error) {
	logger := zerolog.Ctx(ctx)
	logger.Info().
		Str("uuid", req.UUID).
		Msg("DestroyReplica called")

	if err := r.replicaService.DestroyReplica(ctx, req); err != nil {
		logger.Error().
			Err(err).
			Msg("Failed to destroy replica")
		return nil, err
	}

	return &entity.DestroyReplicaResponse{
		Return: true,
	}, nil
}

func (r *Replica) ListReplicas(ctx *gin.Context) (*entity.ListReplicasResponse, error) {
	logger := zerolog.Ctx(ctx)

	replicas, err := r.replicaService.ListReplicas(ctx)
	if err != nil {
		logger.Error().
			Err(err).
			Msg("Failed to list replicas")
		return nil, err
	}

	return &entity.ListReplicasResponse{
		Replicas: replicas,
	}, nil
}

func (r *Replica) StatReplicas(ctx *gin.Context) (*entity.StatReplicasResponse, error) {
	logger := zerolog.Ctx(ctx)

	stats, err := r.replicaService.StatReplicas(ctx)
	if err != nil {
		logger.Error().
			Err(err).
			Msg("Failed to stat replicas")
		return nil, err
	}

	return &entity.StatReplicasResponse{
		Replicas: stats,
	}, nil
}

func (r *Replica) ShareReplica(ctx *gin.Context, req *entity.ShareReplicaRequest) (*entity.ShareReplicaResponse, error) {
	logger := zerolog.Ctx(ctx)
	logger.Info().
		Str("uuid", req.UUID).
		Str("share", req.Share).
		Msg("ShareReplica called")

	uri, err := r.replicaService.ShareReplica(ctx, req)
	if err != nil {
		logger.Error().
			Err(err).
			Msg("Failed to share replica")
		return nil, err
	}

	return &entity.ShareReplicaResponse{
		URI: uri,
	}, nil
}
