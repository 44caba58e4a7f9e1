package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadEnvDefaults(t *testing.T) {
	t.Setenv(EnvServerURL, "")
	t.Setenv(EnvColor, "")
	t.Setenv(EnvLogFile, "")
	t.Setenv(EnvLogLevel, "")

	env, err := LoadEnv(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	assert.Equal(t, Network.ServerURL, env.ServerURL)
	assert.Equal(t, "", env.Color)
	assert.Equal(t, "cozypark.log", env.LogFile)
	assert.Equal(t, "info", env.LogLevel)
}

func TestLoadEnvFromFile(t *testing.T) {
	t.Setenv(EnvServerURL, "")
	t.Setenv(EnvColor, "")
	// godotenv.Load never overrides variables that are already set, so unset
	// them for the duration of the test.
	require.NoError(t, os.Unsetenv(EnvServerURL))
	require.NoError(t, os.Unsetenv(EnvColor))

	path := filepath.Join(t.TempDir(), "park.env")
	require.NoError(t, os.WriteFile(path, []byte("COZYPARK_SERVER_URL=ws://park:9000/ws\nCOZYPARK_COLOR=blue\n"), 0o600))

	env, err := LoadEnv(path)
	require.NoError(t, err)
	assert.Equal(t, "ws://park:9000/ws", env.ServerURL)
	assert.Equal(t, "blue", env.Color)

	require.NoError(t, os.Unsetenv(EnvServerURL))
	require.NoError(t, os.Unsetenv(EnvColor))
}

func TestActionOrder(t *testing.T) {
	assert.Equal(t, "w", ActionMoveUp.String())
	assert.Equal(t, "a", ActionMoveLeft.String())
	assert.Equal(t, "s", ActionMoveDown.String())
	assert.Equal(t, "d", ActionMoveRight.String())
	assert.Equal(t, "unknown", ActionCount.String())
}
