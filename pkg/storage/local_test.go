package storage

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"uatf-curricular/backend/config"
)

func TestLocalStorage_PutGetDelete(t *testing.T) {
	ctx := context.Background()
	s, err := NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	key, err := s.Put(ctx, strings.NewReader("acta de comision"), "comision_academica/2025/03/a.pdf")
	require.NoError(t, err)
	assert.Equal(t, "comision_academica/2025/03/a.pdf", key)

	rc, err := s.Get(ctx, key)
	require.NoError(t, err)
	body, err := io.ReadAll(rc)
	require.NoError(t, rc.Close())
	require.NoError(t, err)
	assert.Equal(t, "acta de comision", string(body))

	require.NoError(t, s.Delete(ctx, key))
	_, err = s.Get(ctx, key)
	assert.ErrorIs(t, err, ErrNotFound)

	// deleting again is fine
	assert.NoError(t, s.Delete(ctx, key))
}

func TestLocalStorage_RejectsEscapingKeys(t *testing.T) {
	ctx := context.Background()
	s, err := NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	for _, key := range []string{"", "../outside.txt", "/etc/passwd", "a/../../b"} {
		_, err := s.Put(ctx, strings.NewReader("x"), key)
		assert.Error(t, err, "key %q should be rejected", key)
	}
}

func TestLocalStorage_NoTempLeftovers(t *testing.T) {
	root := t.TempDir()
	s, err := NewLocalStorage(root)
	require.NoError(t, err)

	_, err = s.Put(context.Background(), strings.NewReader("x"), "dir/file.txt")
	require.NoError(t, err)

	entries, err := os.ReadDir(filepath.Join(root, "dir"))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "file.txt", entries[0].Name())
}

func TestLocalStorage_CanceledContext(t *testing.T) {
	s, err := NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = s.Put(ctx, strings.NewReader("x"), "a.txt")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestNew_SelectsDriver(t *testing.T) {
	s, err := New(context.Background(), &config.StorageConfig{Driver: "local", LocalRoot: t.TempDir()}, zap.NewNop())
	require.NoError(t, err)
	assert.IsType(t, &LocalStorage{}, s)

	_, err = New(context.Background(), &config.StorageConfig{Driver: "ftp"}, zap.NewNop())
	assert.Error(t, err)
}
