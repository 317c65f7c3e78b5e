package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path string, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestNew(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		t.Setenv("VSTOR_ADDRESS", "")
		t.Setenv("VSTOR_NODE_NAME", "")
		t.Setenv("VSTOR_NODE_HOST", "")
		t.Setenv("VSTOR_SEED", "")

		cfg, err := New()
		require.NoError(t, err)
		assert.Equal(t, "0.0.0.0:10124", cfg.Address)
		assert.Equal(t, "127.0.0.1", cfg.NodeHost)
		assert.NotEmpty(t, cfg.NodeName)
		assert.Empty(t, cfg.SeedFile)
	})

	t.Run("env overrides", func(t *testing.T) {
		t.Setenv("VSTOR_ADDRESS", "127.0.0.1:19999")
		t.Setenv("VSTOR_NODE_NAME", "node-a")
		t.Setenv("VSTOR_NODE_HOST", "10.0.0.5")
		t.Setenv("VSTOR_SEED", "/tmp/seed.yaml")

		cfg, err := New()
		require.NoError(t, err)
		assert.Equal(t, "127.0.0.1:19999", cfg.Address)
		assert.Equal(t, "node-a", cfg.NodeName)
		assert.Equal(t, "10.0.0.5", cfg.NodeHost)
		assert.Equal(t, "/tmp/seed.yaml", cfg.SeedFile)
	})
}

func TestLoadSeed(t *testing.T) {
	t.Parallel()

	t.Run("valid seed", func(t *testing.T) {
		t.Parallel()

		content := `
pools:
  - name: pool-1
    disks:
      - /dev/sda
      - /dev/sdb
replicas:
  - uuid: replica-1
    pool: pool-1
    size: 8388608
    thin: true
    share: NVMF
`
		path := filepath.Join(t.TempDir(), "seed.yaml")
		writeFile(t, path, content)

		seed, err := LoadSeed(path)
		require.NoError(t, err)
		require.Len(t, seed.Pools, 1)
		assert.Equal(t, "pool-1", seed.Pools[0].Name)
		assert.Equal(t, []string{"/dev/sda", "/dev/sdb"}, seed.Pools[0].Disks)
		require.Len(t, seed.Replicas, 1)
		assert.Equal(t, "replica-1", seed.Replicas[0].UUID)
		assert.Equal(t, uint64(8388608), seed.Replicas[0].Size)
		assert.True(t, seed.Replicas[0].Thin)
		assert.Equal(t, "NVMF", seed.Replicas[0].Share)
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()

		_, err := LoadSeed(filepath.Join(t.TempDir(), "no-such-file.yaml"))
		assert.Error(t, err)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "bad.yaml")
		writeFile(t, path, "pools: [unclosed")

		_, err := LoadSeed(path)
		assert.Error(t, err)
	})
}
