package commonGo

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadOptionalEnvFile(t *testing.T) {
	t.Run("empty path should not error", func(t *testing.T) {
		assert.Nil(t, LoadOptionalEnvFile(""))
	})
	t.Run("missing file should not error", func(t *testing.T) {
		assert.Nil(t, LoadOptionalEnvFile(filepath.Join(t.TempDir(), "missing.env")))
	})
	t.Run("existing file should load values", func(t *testing.T) {
		envFile := filepath.Join(t.TempDir(), ".env")
		err := os.WriteFile(envFile, []byte("COMMONGO_TEST_KEY=value-from-file\n"), 0644)
		require.NoError(t, err)
		defer func() {
			_ = os.Unsetenv("COMMONGO_TEST_KEY")
		}()

		err = LoadOptionalEnvFile(envFile)
		require.NoError(t, err)
		assert.Equal(t, "value-from-file", os.Getenv("COMMONGO_TEST_KEY"))
	})
}

func TestReadEnvValues(t *testing.T) {
	t.Setenv("COMMONGO_SET_KEY", "overridden")

	m := map[string]string{
		"COMMONGO_SET_KEY":   "default",
		"COMMONGO_UNSET_KEY": "default",
	}
	ReadEnvValues(m)

	assert.Equal(t, "overridden", m["COMMONGO_SET_KEY"])
	assert.Equal(t, "default", m["COMMONGO_UNSET_KEY"])
}
