package service

import (
	"context"
	"testing"

	"github.com/jimyag/vstor/internal/vstor/entity"
	"github.com/jimyag/vstor/pkg/apierror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNexusService_CreateNexus(t *testing.T) {
	t.Parallel()

	svc := setupTestServices(t)
	ctx := context.Background()

	t.Run("children start ONLINE with zero progress", func(t *testing.T) {
		nexus, err := svc.NexusService.CreateNexus(ctx, &entity.CreateNexusRequest{
			UUID:     "nexus-1",
			Size:     64 << 20,
			Children: []string{"bdev:///u1", "bdev:///u2"},
		})
		require.NoError(t, err)
		assert.Equal(t, "nexus-1", nexus.UUID)
		assert.Equal(t, entity.NexusStateOnline, nexus.State)
		assert.Empty(t, nexus.DeviceURI)
		require.Len(t, nexus.Children, 2)
		for i, uri := range []string{"bdev:///u1", "bdev:///u2"} {
			assert.Equal(t, uri, nexus.Children[i].URI)
			assert.Equal(t, entity.ChildStateOnline, nexus.Children[i].State)
			assert.Equal(t, 0, nexus.Children[i].RebuildProgress)
		}
	})

	t.Run("idempotent create returns existing unchanged", func(t *testing.T) {
		first, err := svc.NexusService.CreateNexus(ctx, &entity.CreateNexusRequest{
			UUID:     "nexus-idem",
			Size:     32 << 20,
			Children: []string{"bdev:///a"},
		})
		require.NoError(t, err)

		second, err := svc.NexusService.CreateNexus(ctx, &entity.CreateNexusRequest{
			UUID:     "nexus-idem",
			Size:     128 << 20,
			Children: []string{"bdev:///b", "bdev:///c"},
		})
		require.NoError(t, err)
		assert.Equal(t, first, second)

		nexusList, err := svc.NexusService.ListNexus(ctx)
		require.NoError(t, err)
		count := 0
		for _, n := range nexusList {
			if n.UUID == "nexus-idem" {
				count++
			}
		}
		assert.Equal(t, 1, count)
	})

	t.Run("missing children", func(t *testing.T) {
		_, err := svc.NexusService.CreateNexus(ctx, &entity.CreateNexusRequest{
			UUID: "nexus-no-children",
			Size: 1 << 20,
		})
		require.Error(t, err)
		assert.ErrorIs(t, err, apierror.ErrMissingParameter)
	})
}

func TestNexusService_ChildStateSplit(t *testing.T) {
	t.Parallel()

	svc := setupTestServices(t)
	ctx := context.Background()

	_, err := svc.NexusService.CreateNexus(ctx, &entity.CreateNexusRequest{
		UUID:     "nexus-split",
		Size:     64 << 20,
		Children: []string{"bdev:///u1", "bdev:///u2"},
	})
	require.NoError(t, err)

	// 创建后加入的 child 需要重建，初始 DEGRADED
	child, err := svc.NexusService.AddChild(ctx, &entity.AddChildRequest{
		UUID: "nexus-split",
		URI:  "bdev:///u3",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.ChildStateDegraded, child.State)
	assert.Equal(t, 0, child.RebuildProgress)

	nexusList, err := svc.NexusService.ListNexus(ctx)
	require.NoError(t, err)
	var nexus *entity.Nexus
	for i := range nexusList {
		if nexusList[i].UUID == "nexus-split" {
			nexus = &nexusList[i]
		}
	}
	require.NotNil(t, nexus)
	require.Len(t, nexus.Children, 3)
	assert.Equal(t, entity.ChildStateOnline, nexus.Children[0].State)
	assert.Equal(t, entity.ChildStateOnline, nexus.Children[1].State)
	assert.Equal(t, entity.ChildStateDegraded, nexus.Children[2].State)
}

func TestNexusService_AddRemoveChild(t *testing.T) {
	t.Parallel()

	svc := setupTestServices(t)
	ctx := context.Background()

	_, err := svc.NexusService.CreateNexus(ctx, &entity.CreateNexusRequest{
		UUID:     "nexus-ar",
		Size:     64 << 20,
		Children: []string{"bdev:///u1"},
	})
	require.NoError(t, err)

	t.Run("duplicate add is a no-op but still returns DEGRADED", func(t *testing.T) {
		// u1 在创建时加入，是 ONLINE 的
		child, err := svc.NexusService.AddChild(ctx, &entity.AddChildRequest{
			UUID: "nexus-ar",
			URI:  "bdev:///u1",
		})
		require.NoError(t, err)
		assert.Equal(t, entity.ChildStateDegraded, child.State)

		// 存储里 u1 不变，仍然是 ONLINE 且没有重复
		nexusList, err := svc.NexusService.ListNexus(ctx)
		require.NoError(t, err)
		for _, n := range nexusList {
			if n.UUID != "nexus-ar" {
				continue
			}
			require.Len(t, n.Children, 1)
			assert.Equal(t, entity.ChildStateOnline, n.Children[0].State)
		}
	})

	t.Run("remove absent URI is a no-op success", func(t *testing.T) {
		err := svc.NexusService.RemoveChild(ctx, &entity.RemoveChildRequest{
			UUID: "nexus-ar",
			URI:  "bdev:///never-added",
		})
		assert.NoError(t, err)
	})

	t.Run("remove existing child", func(t *testing.T) {
		_, err := svc.NexusService.AddChild(ctx, &entity.AddChildRequest{
			UUID: "nexus-ar",
			URI:  "bdev:///u2",
		})
		require.NoError(t, err)

		err = svc.NexusService.RemoveChild(ctx, &entity.RemoveChildRequest{
			UUID: "nexus-ar",
			URI:  "bdev:///u2",
		})
		require.NoError(t, err)

		nexusList, err := svc.NexusService.ListNexus(ctx)
		require.NoError(t, err)
		for _, n := range nexusList {
			if n.UUID != "nexus-ar" {
				continue
			}
			require.Len(t, n.Children, 1)
			assert.Equal(t, "bdev:///u1", n.Children[0].URI)
		}
	})

	t.Run("unknown nexus leaves store unchanged", func(t *testing.T) {
		before, err := svc.NexusService.ListNexus(ctx)
		require.NoError(t, err)

		_, err = svc.NexusService.AddChild(ctx, &entity.AddChildRequest{
			UUID: "no-such-nexus",
			URI:  "bdev:///u1",
		})
		require.Error(t, err)
		assert.ErrorIs(t, err, apierror.ErrNexusNotFound)

		err = svc.NexusService.RemoveChild(ctx, &entity.RemoveChildRequest{
			UUID: "no-such-nexus",
			URI:  "bdev:///u1",
		})
		require.Error(t, err)
		assert.ErrorIs(t, err, apierror.ErrNexusNotFound)

		after, err := svc.NexusService.ListNexus(ctx)
		require.NoError(t, err)
		assert.Equal(t, before, after)
	})
}

func TestNexusService_PublishUnpublish(t *testing.T) {
	t.Parallel()

	svc := setupTestServices(t)
	ctx := context.Background()

	_, err := svc.NexusService.CreateNexus(ctx, &entity.CreateNexusRequest{
		UUID:     "nexus-pub",
		Size:     64 << 20,
		Children: []string{"bdev:///u1"},
	})
	require.NoError(t, err)

	t.Run("publish sets derived device URI", func(t *testing.T) {
		deviceURI, err := svc.NexusService.PublishNexus(ctx, &entity.PublishNexusRequest{UUID: "nexus-pub"})
		require.NoError(t, err)
		assert.Equal(t, "nvmf://127.0.0.1:8420/nqn.2019-05.io.openebs:nexus-nexus-pub", deviceURI)

		nexusList, err := svc.NexusService.ListNexus(ctx)
		require.NoError(t, err)
		for _, n := range nexusList {
			if n.UUID == "nexus-pub" {
				assert.Equal(t, deviceURI, n.DeviceURI)
			}
		}
	})

	t.Run("unpublish clears device URI", func(t *testing.T) {
		err := svc.NexusService.UnpublishNexus(ctx, &entity.UnpublishNexusRequest{UUID: "nexus-pub"})
		require.NoError(t, err)

		nexusList, err := svc.NexusService.ListNexus(ctx)
		require.NoError(t, err)
		for _, n := range nexusList {
			if n.UUID == "nexus-pub" {
				assert.Empty(t, n.DeviceURI)
			}
		}
	})

	t.Run("publish unknown nexus", func(t *testing.T) {
		_, err := svc.NexusService.PublishNexus(ctx, &entity.PublishNexusRequest{UUID: "no-such-nexus"})
		require.Error(t, err)
		assert.ErrorIs(t, err, apierror.ErrNexusNotFound)
	})

	t.Run("unpublish unknown nexus", func(t *testing.T) {
		err := svc.NexusService.UnpublishNexus(ctx, &entity.UnpublishNexusRequest{UUID: "no-such-nexus"})
		require.Error(t, err)
		assert.ErrorIs(t, err, apierror.ErrNexusNotFound)
	})
}

func TestNexusService_DestroyNexus(t *testing.T) {
	t.Parallel()

	svc := setupTestServices(t)
	ctx := context.Background()

	t.Run("destroy removes nexus and children", func(t *testing.T) {
		_, err := svc.NexusService.CreateNexus(ctx, &entity.CreateNexusRequest{
			UUID:     "nexus-destroy",
			Size:     64 << 20,
			Children: []string{"bdev:///u1", "bdev:///u2"},
		})
		require.NoError(t, err)

		err = svc.NexusService.DestroyNexus(ctx, &entity.DestroyNexusRequest{UUID: "nexus-destroy"})
		require.NoError(t, err)

		nexusList, err := svc.NexusService.ListNexus(ctx)
		require.NoError(t, err)
		for _, n := range nexusList {
			assert.NotEqual(t, "nexus-destroy", n.UUID)
		}

		// 同 uuid 重建得到的是全新的 nexus
		nexus, err := svc.NexusService.CreateNexus(ctx, &entity.CreateNexusRequest{
			UUID:     "nexus-destroy",
			Size:     32 << 20,
			Children: []string{"bdev:///u3"},
		})
		require.NoError(t, err)
		assert.Equal(t, uint64(32<<20), nexus.Size)
		require.Len(t, nexus.Children, 1)
	})

	t.Run("destroy absent is a no-op success", func(t *testing.T) {
		err := svc.NexusService.DestroyNexus(ctx, &entity.DestroyNexusRequest{UUID: "no-such-nexus"})
		assert.NoError(t, err)
	})
}

func TestNexusService_ChildOperation(t *testing.T) {
	t.Parallel()

	svc := setupTestServices(t)
	ctx := context.Background()

	// 预留接口：什么都不做，直接成功
	err := svc.NexusService.ChildOperation(ctx, &entity.ChildOperationRequest{
		UUID:   "whatever",
		URI:    "bdev:///u1",
		Action: 1,
	})
	assert.NoError(t, err)
}

func TestNodeService_Ping(t *testing.T) {
	t.Parallel()

	svc := setupTestServices(t)

	resp, err := svc.NodeService.Ping(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "test-node", resp.Node)
	assert.NotEmpty(t, resp.Version)
}
