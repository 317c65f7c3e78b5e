package service

import (
	"context"

	"github.com/jimyag/vstor/internal/vstor/entity"
	"github.com/rs/zerolog"
)

// Version 构建版本，通过 ldflags 注入
var Version = "dev"

// NodeService 节点服务
type NodeService struct {
	nodeName string
}

// NewNodeService 创建节点服务
func NewNodeService(nodeName string) *NodeService {
	return &NodeService{nodeName: nodeName}
}

// Ping 节点存活探测
func (s *NodeService) Ping(ctx context.Context) (*entity.NodePingResponse, error) {
	logger := zerolog.Ctx(ctx)
	logger.Debug().Str("node", s.nodeName).Msg("Ping called")

	return &entity.NodePingResponse{
		Node:    s.nodeName,
		Version: Version,
	}, nil
}
