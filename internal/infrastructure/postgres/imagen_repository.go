package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/empresas-admin/internal/domain"
	"github.com/jhoicas/empresas-admin/internal/domain/entity"
	"github.com/jhoicas/empresas-admin/internal/domain/repository"
)

var _ repository.ImagenRepository = (*ImagenRepo)(nil)

// ImagenRepo descriptores de imágenes sobre PostgreSQL.
type ImagenRepo struct {
	db DBTX
}

func NewImagenRepository(db DBTX) *ImagenRepo {
	return &ImagenRepo{db: db}
}

func (r *ImagenRepo) Create(ctx context.Context, i *entity.Imagen) error {
	query := `INSERT INTO imagenes (public_id, name, url) VALUES ($1, $2, $3) RETURNING id`
	if err := r.db.QueryRow(ctx, query, i.PublicID, i.Name, i.URL).Scan(&i.ID); err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert imagen: %w", err)
	}
	return nil
}

// GetByPublicID busca la imagen que coincide con ambos identificadores.
func (r *ImagenRepo) GetByPublicID(ctx context.Context, publicID string, id int64) (*entity.Imagen, error) {
	query := `SELECT id, public_id, name, url, eliminado FROM imagenes WHERE public_id = $1 AND id = $2`
	var i entity.Imagen
	if err := r.db.QueryRow(ctx, query, publicID, id).Scan(&i.ID, &i.PublicID, &i.Name, &i.URL, &i.Eliminado); err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get imagen: %w", err)
	}
	return &i, nil
}

func (r *ImagenRepo) Delete(ctx context.Context, id int64) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM imagenes WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete imagen: %w", err)
	}
	return nil
}
