package usecase

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/google/uuid"

	"github.com/jhoicas/empresas-admin/internal/application/dto"
	"github.com/jhoicas/empresas-admin/internal/domain"
	"github.com/jhoicas/empresas-admin/internal/domain/entity"
	"github.com/jhoicas/empresas-admin/internal/domain/repository"
)

// ImagenFile archivo recibido en un upload.
type ImagenFile struct {
	Name    string
	Content io.Reader
}

// ImagenUseCase guarda archivos en el storage y registra sus descriptores.
type ImagenUseCase struct {
	repo    repository.ImagenRepository
	storage repository.FileStorage
}

func NewImagenUseCase(repo repository.ImagenRepository, storage repository.FileStorage) *ImagenUseCase {
	return &ImagenUseCase{repo: repo, storage: storage}
}

// Upload guarda cada archivo bajo la carpeta del preset con un public id nuevo
// ("<preset>/<uuid>") y devuelve los descriptores en el mismo orden.
func (uc *ImagenUseCase) Upload(ctx context.Context, preset string, files []ImagenFile) ([]dto.ImagenDTO, error) {
	preset = strings.Trim(strings.TrimSpace(preset), "/")
	if preset == "" || strings.Contains(preset, "..") || len(files) == 0 {
		return nil, domain.ErrInvalidInput
	}
	out := make([]dto.ImagenDTO, 0, len(files))
	saved := make([]entity.Imagen, 0, len(files))
	for _, f := range files {
		publicID := preset + "/" + uuid.New().String() + strings.ToLower(path.Ext(f.Name))
		url, err := uc.storage.Save(ctx, publicID, f.Content)
		if err != nil {
			uc.rollback(ctx, saved)
			return nil, fmt.Errorf("guardar %s: %w", f.Name, err)
		}
		imagen := &entity.Imagen{PublicID: publicID, Name: path.Base(f.Name), URL: url}
		if err := uc.repo.Create(ctx, imagen); err != nil {
			_ = uc.storage.Remove(ctx, publicID)
			uc.rollback(ctx, saved)
			return nil, err
		}
		saved = append(saved, *imagen)
		out = append(out, dto.ImagenFromEntity(imagen))
	}
	return out, nil
}

// rollback deshace los archivos y descriptores ya guardados de un upload fallido.
func (uc *ImagenUseCase) rollback(ctx context.Context, saved []entity.Imagen) {
	for _, img := range saved {
		_ = uc.repo.Delete(ctx, img.ID)
		_ = uc.storage.Remove(ctx, img.PublicID)
	}
}

// Delete borra el descriptor y luego su archivo. publicId e id deben corresponder a la misma imagen.
func (uc *ImagenUseCase) Delete(ctx context.Context, publicID string, id int64) (*dto.DeleteImagenResponse, error) {
	if publicID == "" || id <= 0 {
		return nil, domain.ErrInvalidInput
	}
	imagen, err := uc.repo.GetByPublicID(ctx, publicID, id)
	if err != nil {
		return nil, err
	}
	if imagen == nil {
		return nil, domain.ErrNotFound
	}
	// primero el descriptor: si falla, el archivo sigue disponible
	if err := uc.repo.Delete(ctx, id); err != nil {
		return nil, err
	}
	if err := uc.storage.Remove(ctx, publicID); err != nil {
		return nil, fmt.Errorf("borrar archivo %s: %w", publicID, err)
	}
	return &dto.DeleteImagenResponse{PublicID: publicID, ID: id, Result: "ok"}, nil
}
