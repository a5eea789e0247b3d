package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_WritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "gateway.log")

	log, err := New(path, "warn")
	require.NoError(t, err)

	log.Warn("draft busy: id=%s", "abc")
	log.Info("should be filtered out")
	require.NoError(t, log.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "draft busy: id=abc")
	assert.NotContains(t, string(data), "should be filtered out")
}

func TestNew_UnknownLevel(t *testing.T) {
	_, err := New("", "verbose")
	assert.Error(t, err)
}
