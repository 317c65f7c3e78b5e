package api

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/jimyag/vstor/internal/vstor/entity"
	"github.com/jimyag/vstor/internal/vstor/service"
	"github.com/jimyag/vstor/pkg/ginx"
	"github.com/rs/zerolog"
)

// NexusServiceInterface 定义复合卷服务的接口
type NexusServiceInterface interface {
	CreateNexus(ctx context.Context, req *entity.CreateNexusRequest) (*entity.Nexus, error)
	DestroyNexus(ctx context.Context, req *entity.DestroyNexusRequest) error
	ListNexus(ctx context.Context) ([]entity.Nexus, error)
	PublishNexus(ctx context.Context, req *entity.PublishNexusRequest) (string, error)
	UnpublishNexus(ctx context.Context, req *entity.UnpublishNexusRequest) error
	AddChild(ctx context.Context, req *entity.AddChildRequest) (*entity.Child, error)
	RemoveChild(ctx context.Context, req *entity.RemoveChildRequest) error
	ChildOperation(ctx context.Context, req *entity.ChildOperationRequest) error
}

type Nexus struct {
	nexusService NexusServiceInterface
}

func NewNexus(nexusService *service.NexusService) *Nexus {
	return &Nexus{
		nexusService: nexusService,
	}
}

func (n *Nexus) RegisterRoutes(router *gin.RouterGroup) {
	nexusRouter := router.Group("/nexus")
	nexusRouter.POST("/create", ginx.Handle(n.CreateNexus))
	nexusRouter.POST("/destroy", ginx.Handle(n.DestroyNexus))
	nexusRouter.POST("/list", ginx.HandleNoArgs(n.ListNexus))
	nexusRouter.POST("/publish", ginx.Handle(n.PublishNexus))
	nexusRouter.POST("/unpublish", ginx.Handle(n.UnpublishNexus))
	nexusRouter.POST("/add-child", ginx.Handle(n.AddChild))
	nexusRouter.POST("/remove-child", ginx.Handle(n.RemoveChild))
	nexusRouter.POST("/child-operation", ginx.Handle(n.ChildOperation))
}

func (n *Nexus) CreateNexus(ctx *gin.Context, req *entity.CreateNexusRequest) (*entity.CreateNexusResponse, error) {
	logger := zerolog.Ctx(ctx)
	logger.Info().
		Interface("request", req).
		Msg("CreateNexus called")

	nexus, err := n.nexusService.CreateNexus(ctx, req)
	if err != nil {
		logger.Error().
			Err(err).
			Msg("Failed to create nexus")
		return nil, err
	}

	return &entity.CreateNexusResponse{
		Nexus: nexus,
	}, nil
}

func (n *Nexus) DestroyNexus(ctx *gin.Context, req *entity.DestroyNexusRequest) (*entity.DestroyNexusResponse, error) {
	logger := zerolog.Ctx(ctx)
	logger.Info().
		Str("uuid", req.UUID).
		Msg("DestroyNexus called")

	if err := n.nexusService.DestroyNexus(ctx, req); err != nil {
		logger.Error().
			Err(err).
			Msg("Failed to destroy nexus")
		return nil, err
	}

	return &entity.DestroyNexusResponse{
		Return: true,
	}, nil
}

func (n *Nexus) ListNexus(ctx *gin.Context) (*entity.ListNexusResponse, error) {
	logger := zerolog.Ctx(ctx)

	nexusList, err := n.nexusService.ListNexus(ctx)
	if err != nil {
		logger.Error().
			Err(err).
			Msg("Failed to list nexus")
		return nil, err
	}

	return &entity.ListNexusResponse{
		NexusList: nexusList,
	}, nil
}

func (n *Nexus) PublishNexus(ctx *gin.Context, req *entity.PublishNexusRequest) (*entity.PublishNexusResponse, error) {
	logger := zerolog.Ctx(ctx)
	logger.Info().
		Str("uuid", req.UUID).
		Msg("PublishNexus called")

	deviceURI, err := n.nexusService.PublishNexus(ctx, req)
	if err != nil {
		logger.Error().
			Err(err).
			Msg("Failed to publish nexus")
		return nil, err
	}

	return &entity.PublishNexusResponse{
		DeviceURI: deviceURI,
	}, nil
}

func (n *Nexus) UnpublishNexus(ctx *gin.Context, req *entity.UnpublishNexusRequest) (*entity.UnpublishNexusResponse, error) {
	logger := zerolog.Ctx(ctx)
	logger.Info().
		Str("uuid", req.UUID).
		Msg("UnpublishNexus called")

	if err := n.nexusService.UnpublishNexus(ctx, req); err != nil {
		logger.Error().
			Err(err).
			Msg("Failed to unpublish nexus")
		return nil, err
	}

	return &entity.UnpublishNexusResponse{
		Return: true,
	}, nil
}

func (n *Nexus) AddChild(ctx *gin.Context, req *entity.AddChildRequest) (*entity.AddChildResponse, error) {
	logger := zerolog.Ctx(ctx)
	logger.Info().
		Str("uuid", req.UUID).
		Str("uri", req.URI).
		Msg("AddChild called")

	child, err := n.nexusService.AddChild(ctx, req)
	if err != nil {
		logger.Error().
			Err(err).
			Msg("Failed to add child")
		return nil, err
	}

	return &entity.AddChildResponse{
		Child: child,
	}, nil
}

func (n *Nexus) RemoveChild(ctx *gin.Context, req *entity.RemoveChildRequest) (*entity.RemoveChildResponse, error) {
	logger := zerolog.Ctx(ctx)
	logger.Info().
		Str("uuid", req.UUID).
		Str("uri", req.URI).
		Msg("RemoveChild called")

	if err := n.nexusService.RemoveChild(ctx, req); err != nil {
		logger.Error().
			Err(err).
			Msg("Failed to remove child")
		return nil, err
	}

	return &entity.RemoveChildResponse{
		Return: true,
	}, nil
}

func (n *Nexus) ChildOperation(ctx *gin.Context, req *entity.ChildOperationRequest) (*entity.ChildOperationResponse, error) {
	logger := zerolog.Ctx(ctx)
	logger.Info().
		Str("uuid", req.UUID).
		Str("uri", req.URI).
		Msg("ChildOperation called")

	if err := n.nexusService.ChildOperation(ctx, req); err != nil {
		logger.Error().
			Err(err).
			Msg("Failed to perform child operation")
		return nil, err
	}

	return &entity.ChildOperationResponse{
		Return: true,
	}, nil
}
