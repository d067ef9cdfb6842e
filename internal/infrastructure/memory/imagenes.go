package memory

import (
	"context"
	"sync"

	"github.com/jhoicas/empresas-admin/internal/domain/entity"
	"github.com/jhoicas/empresas-admin/internal/domain/repository"
)

var _ repository.ImagenRepository = (*ImagenStore)(nil)

// ImagenStore descriptores de imágenes en memoria.
type ImagenStore struct {
	mu      sync.Mutex
	nextID  int64
	imagens map[int64]entity.Imagen
}

// NewImagenStore crea el store vacío.
func NewImagenStore() *ImagenStore {
	return &ImagenStore{imagens: map[int64]entity.Imagen{}}
}

func (s *ImagenStore) Create(_ context.Context, i *entity.Imagen) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	i.ID = s.nextID
	s.imagens[i.ID] = *i
	return nil
}

func (s *ImagenStore) GetByPublicID(_ context.Context, publicID string, id int64) (*entity.Imagen, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i, ok := s.imagens[id]
	if !ok || i.PublicID != publicID {
		return nil, nil
	}
	return &i, nil
}

// Len cantidad de descriptores guardados.
func (s *ImagenStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.imagens)
}

func (s *ImagenStore) Delete(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.imagens, id)
	return nil
}
