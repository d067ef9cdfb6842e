package repository

import (
	"context"
	"io"

	"github.com/jhoicas/empresas-admin/internal/domain/entity"
)

// ImagenRepository persiste los descriptores de imágenes subidas.
type ImagenRepository interface {
	Create(ctx context.Context, imagen *entity.Imagen) error
	GetByPublicID(ctx context.Context, publicID string, id int64) (*entity.Imagen, error)
	Delete(ctx context.Context, id int64) error
}

// FileStorage guarda y elimina el contenido binario de las imágenes.
// Save devuelve la URL pública del archivo guardado.
type FileStorage interface {
	Save(ctx context.Context, publicID string, r io.Reader) (string, error)
	Remove(ctx context.Context, publicID string) error
}
