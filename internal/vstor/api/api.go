// Package api 提供 HTTP API 的路由和处理器
package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jimyag/vstor/internal/vstor/service"
	"github.com/jimyag/vstor/pkg/ginx"
	"github.com/jimyag/vstor/pkg/idgen"
)

// API HTTP 服务
type API struct {
	engine *gin.Engine
	server *http.Server

	pool    *Pool
	replica *Replica
	nexus   *Nexus
	node    *Node
}

// New 创建 API 服务
func New(
	addr string,
	poolService *service.PoolService,
	replicaService *service.ReplicaService,
	nexusService *service.NexusService,
	nodeService *service.NodeService,
) (*API, error) {
	engine := gin.Default()
	engine.Use(requestIDMiddleware())

	api := &API{
		engine:  engine,
		pool:    NewPool(poolService),
		replica: NewReplica(replicaService),
		nexus:   NewNexus(nexusService),
		node:    NewNode(nodeService),
	}

	apiGroup := engine.Group("/api")
	api.pool.RegisterRoutes(apiGroup)
	api.replica.RegisterRoutes(apiGroup)
	api.nexus.RegisterRoutes(apiGroup)
	api.node.RegisterRoutes(apiGroup)

	api.server = &http.Server{
		Addr:    addr,
		Handler: engine,
	}
	return api, nil
}

// Run 启动 HTTP 服务，实现 grace.Grace 接口
func (a *API) Run(ctx context.Context) error {
	if err := a.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown 优雅关闭 HTTP 服务，实现 grace.Grace 接口
func (a *API) Shutdown(ctx context.Context) error {
	return a.server.Shutdown(ctx)
}

// Name 实现 grace.Grace 接口
func (a *API) Name() string {
	return "vstor API"
}

// requestIDMiddleware 为每个请求分配一个 Request ID
// 错误响应会带上这个 ID，便于日志关联
func requestIDMiddleware() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		requestID, err := idgen.GenerateRequestID()
		if err == nil {
			ginx.SetRequestID(ctx, requestID)
			ctx.Header("X-Request-Id", requestID)
		}
		ctx.Next()
	}
}
