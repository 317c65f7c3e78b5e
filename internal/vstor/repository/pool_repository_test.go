package repository

import (
	"context"
	"testing"
	"time"

	"github.com/jimyag/vstor/internal/vstor/repository/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestDB(t *testing.T) *Repository {
	t.Helper()

	repo, err := New()
	require.NoError(t, err)

	// 使用 t.Cleanup 确保在测试真正结束时清理，支持并发测试
	t.Cleanup(func() {
		_ = repo.Close()
	})

	return repo
}

func TestPoolRepository(t *testing.T) {
	t.Parallel()

	repo := setupTestDB(t)

	poolRepo := NewPoolRepository(repo.DB())
	ctx := context.Background()

	t.Run("Create and GetByName", func(t *testing.T) {
		pool := &model.Pool{
			Name:      "pool-1",
			Disks:     "aio:///dev/sda,aio:///dev/sdb",
			State:     "ONLINE",
			Capacity:  100 << 30,
			Used:      4 << 20,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		}

		err := poolRepo.Create(ctx, pool)
		assert.NoError(t, err)

		got, err := poolRepo.GetByName(ctx, "pool-1")
		assert.NoError(t, err)
		assert.Equal(t, pool.Name, got.Name)
		assert.Equal(t, pool.Disks, got.Disks)
		assert.Equal(t, pool.Capacity, got.Capacity)
		assert.Equal(t, pool.Used, got.Used)
	})

	t.Run("GetByName not found", func(t *testing.T) {
		_, err := poolRepo.GetByName(ctx, "no-such-pool")
		assert.Error(t, err)
	})

	t.Run("Update", func(t *testing.T) {
		pool := &model.Pool{
			Name:      "pool-update",
			Disks:     "aio:///dev/sdc",
			State:     "ONLINE",
			Capacity:  100 << 30,
			Used:      4 << 20,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		}

		err := poolRepo.Create(ctx, pool)
		require.NoError(t, err)

		pool.Used += 1 << 30
		err = poolRepo.Update(ctx, pool)
		assert.NoError(t, err)

		got, err := poolRepo.GetByName(ctx, "pool-update")
		assert.NoError(t, err)
		assert.Equal(t, uint64(4<<20)+uint64(1<<30), got.Used)
	})

	t.Run("List preserves insertion order", func(t *testing.T) {
		names := []string{"pool-order-c", "pool-order-a", "pool-order-b"}
		for _, name := range names {
			err := poolRepo.Create(ctx, &model.Pool{
				Name:      name,
				Disks:     "aio:///dev/sdz",
				State:     "ONLINE",
				Capacity:  100 << 30,
				Used:      4 << 20,
				CreatedAt: time.Now(),
				UpdatedAt: time.Now(),
			})
			require.NoError(t, err)
		}

		pools, err := poolRepo.List(ctx)
		assert.NoError(t, err)

		// 只看本子测试创建的池，顺序必须与插入顺序一致
		got := make([]string, 0, len(names))
		for _, p := range pools {
			for _, name := range names {
				if p.Name == name {
					got = append(got, p.Name)
				}
			}
		}
		assert.Equal(t, names, got)
	})

	t.Run("Delete", func(t *testing.T) {
		pool := &model.Pool{
			Name:      "pool-delete",
			Disks:     "aio:///dev/sdd",
			State:     "ONLINE",
			Capacity:  100 << 30,
			Used:      4 << 20,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		}

		err := poolRepo.Create(ctx, pool)
		require.NoError(t, err)

		err = poolRepo.Delete(ctx, "pool-delete")
		assert.NoError(t, err)

		_, err = poolRepo.GetByName(ctx, "pool-delete")
		assert.Error(t, err)

		// 删除后可以重建同名池
		err = poolRepo.Create(ctx, pool)
		assert.NoError(t, err)
	})
}
