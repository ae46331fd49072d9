package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/multiversx/mx-chain-core-go/core"
	"github.com/pelletier/go-toml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testString = `
ListenAddress = "127.0.0.1:8090"
DatabasePath = "db/snapshots.db"
SnapshotsDirectory = "metrics"
`

func TestConfig(t *testing.T) {
	t.Parallel()

	expectedCfg := Config{
		ListenAddress:      "127.0.0.1:8090",
		DatabasePath:       "db/snapshots.db",
		SnapshotsDirectory: "metrics",
	}

	cfg := Config{}

	err := toml.Unmarshal([]byte(testString), &cfg)
	assert.Nil(t, err)
	assert.Equal(t, expectedCfg, cfg)
}

func TestLoadTomlFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(testString), 0644))

	cfg := Config{}
	err := core.LoadTomlFile(&cfg, path)
	require.NoError(t, err)
	assert.Equal(t, "metrics", cfg.SnapshotsDirectory)
}
