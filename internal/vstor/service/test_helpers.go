package service

import (
	"testing"

	"github.com/jimyag/vstor/internal/vstor/repository"
	"github.com/stretchr/testify/require"
)

// TestServices 包含测试所需的所有服务和依赖
type TestServices struct {
	Repo           *repository.Repository
	Lock           *OpLock
	PoolService    *PoolService
	ReplicaService *ReplicaService
	NexusService   *NexusService
	NodeService    *NodeService
}

// setupTestServices 为每个测试用例创建独立的测试环境
// 每个测试用例都会获得自己的内存数据库和 service 实例
func setupTestServices(t *testing.T) *TestServices {
	t.Helper()

	repo, err := repository.New()
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = repo.Close()
	})

	lock := NewOpLock()
	const host = "127.0.0.1"

	return &TestServices{
		Repo:           repo,
		Lock:           lock,
		PoolService:    NewPoolService(repo, lock),
		ReplicaService: NewReplicaService(repo, lock, host),
		NexusService:   NewNexusService(repo, lock, host),
		NodeService:    NewNodeService("test-node"),
	}
}
