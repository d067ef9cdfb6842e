package storage_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/empresas-admin/internal/domain"
	"github.com/jhoicas/empresas-admin/internal/infrastructure/storage"
)

func TestDiskStorage_SaveYRemove(t *testing.T) {
	dir := t.TempDir()
	s, err := storage.NewDiskStorage(dir, "http://localhost:8080/imagenes/files/")
	require.NoError(t, err)

	url, err := s.Save(context.Background(), "buenSabor/abc.png", strings.NewReader("PNG"))
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080/imagenes/files/buenSabor/abc.png", url)

	content, err := os.ReadFile(filepath.Join(dir, "buenSabor", "abc.png"))
	require.NoError(t, err)
	assert.Equal(t, "PNG", string(content))

	require.NoError(t, s.Remove(context.Background(), "buenSabor/abc.png"))
	_, err = os.Stat(filepath.Join(dir, "buenSabor", "abc.png"))
	assert.True(t, os.IsNotExist(err))

	assert.NoError(t, s.Remove(context.Background(), "buenSabor/abc.png"), "borrar dos veces no falla")
}

func TestDiskStorage_RechazaRutasFuera(t *testing.T) {
	s, err := storage.NewDiskStorage(t.TempDir(), "http://x")
	require.NoError(t, err)

	for _, id := range []string{"", "../fuera.png", "/etc/passwd", "a/../../b"} {
		_, err := s.Save(context.Background(), id, strings.NewReader("x"))
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "publicID=%q", id)
	}
}
