package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStorage_Put(t *testing.T) {
	dir := t.TempDir()
	store, err := NewLocalStorage(dir, "/uploads")
	require.NoError(t, err)

	url, err := store.Put(context.Background(), "photo.jpg", "image/jpeg",
		strings.NewReader("fake image bytes"), 16)

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(url, "/uploads/"))
	assert.True(t, strings.HasSuffix(url, ".jpg"))

	// The stored name is randomized, the extension preserved.
	name := strings.TrimPrefix(url, "/uploads/")
	assert.NotEqual(t, "photo.jpg", name)

	data, err := os.ReadFile(filepath.Join(dir, name))
	require.NoError(t, err)
	assert.Equal(t, "fake image bytes", string(data))
}

func TestLocalStorage_Put_UniqueNames(t *testing.T) {
	store, err := NewLocalStorage(t.TempDir(), "/uploads")
	require.NoError(t, err)

	first, err := store.Put(context.Background(), "photo.jpg", "image/jpeg", strings.NewReader("a"), 1)
	require.NoError(t, err)
	second, err := store.Put(context.Background(), "photo.jpg", "image/jpeg", strings.NewReader("b"), 1)
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestNewLocalStorage_CreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "uploads")

	_, err := NewLocalStorage(dir, "/uploads")

	require.NoError(t, err)
	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestValidateFileSize(t *testing.T) {
	assert.NoError(t, ValidateFileSize(100, 100))
	assert.Error(t, ValidateFileSize(101, 100))
}

func TestValidateContentType(t *testing.T) {
	allowed := []string{"image/jpeg", "image/png"}

	assert.NoError(t, ValidateContentType("image/png", allowed))
	assert.Error(t, ValidateContentType("application/pdf", allowed))
	assert.Error(t, ValidateContentType("", allowed))
}
