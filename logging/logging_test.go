package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLBeforeInitIsNop(t *testing.T) {
	require.NotNil(t, L())
	L().Infow("[test] discarded")
}

func TestInitWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "park.log")

	l, err := Init(Options{File: path, Level: "debug"})
	require.NoError(t, err)
	l.Infow("[test] hello", "id", "player_1")
	Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "[test] hello")
	assert.Contains(t, string(data), "player_1")
	assert.Same(t, l, L())
}

func TestInitRejectsBadLevel(t *testing.T) {
	_, err := Init(Options{Level: "loud"})
	assert.Error(t, err)
}
