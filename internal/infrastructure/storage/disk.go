// Package storage guarda en disco el contenido de las imágenes subidas.
package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/jhoicas/empresas-admin/internal/domain"
	"github.com/jhoicas/empresas-admin/internal/domain/repository"
)

var _ repository.FileStorage = (*DiskStorage)(nil)

// DiskStorage escribe cada imagen en <dir>/<publicID> y la publica en <baseURL>/<publicID>.
type DiskStorage struct {
	dir     string
	baseURL string
}

// NewDiskStorage crea la carpeta raíz si no existe.
func NewDiskStorage(dir, baseURL string) (*DiskStorage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: crear %s: %w", dir, err)
	}
	return &DiskStorage{dir: dir, baseURL: strings.TrimRight(baseURL, "/")}, nil
}

// Dir carpeta raíz (para servir los archivos estáticos).
func (s *DiskStorage) Dir() string { return s.dir }

func (s *DiskStorage) Save(ctx context.Context, publicID string, r io.Reader) (string, error) {
	target, err := s.path(publicID)
	if err != nil {
		return "", err
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return "", fmt.Errorf("storage: crear carpeta: %w", err)
	}
	f, err := os.Create(target)
	if err != nil {
		return "", fmt.Errorf("storage: crear archivo: %w", err)
	}
	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		_ = os.Remove(target)
		return "", fmt.Errorf("storage: escribir archivo: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("storage: cerrar archivo: %w", err)
	}
	return s.baseURL + "/" + publicID, nil
}

// Remove borra el archivo; si ya no existe no es error.
func (s *DiskStorage) Remove(_ context.Context, publicID string) error {
	target, err := s.path(publicID)
	if err != nil {
		return err
	}
	if err := os.Remove(target); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("storage: borrar archivo: %w", err)
	}
	return nil
}

// path resuelve el publicID dentro de dir y rechaza rutas que escapen de ella.
func (s *DiskStorage) path(publicID string) (string, error) {
	clean := filepath.Clean(filepath.FromSlash(publicID))
	if publicID == "" || filepath.IsAbs(clean) || clean == "." || strings.HasPrefix(clean, "..") {
		return "", domain.ErrInvalidInput
	}
	return filepath.Join(s.dir, clean), nil
}
