package api

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/jimyag/vstor/internal/vstor/entity"
	"github.com/jimyag/vstor/internal/vstor/service"
	"github.com/jimyag/vstor/pkg/ginx"
	"github.com/rs/zerolog"
)

// NodeServiceInterface 定义节点服务的接口
type NodeServiceInterface interface {
	Ping(ctx context.Context) (*entity.NodePingResponse, error)
}

type Node struct {
	nodeService NodeServiceInterface
}

func NewNode(nodeService *service.NodeService) *Node {
	return &Node{
		nodeService: nodeService,
	}
}

func (n *Node) RegisterRoutes(router *gin.RouterGroup) {
	nodeRouter := router.Group("/node")
	nodeRouter.POST("/ping", ginx.HandleNoArgs(n.Ping))
}

func (n *Node) Ping(ctx *gin.Context) (*entity.NodePingResponse, error) {
	logger := zerolog.Ctx(ctx)

	resp, err := n.nodeService.Ping(ctx)
	if err != nil {
		logger.Error().
			Err(err).
			Msg("Failed to ping node")
		return nil, err
	}

	return resp, nil
}
