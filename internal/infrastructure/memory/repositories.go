// Package memory implementa los repositorios en memoria. Se usa con DB_DRIVER=memory
// para desarrollo local y en los tests de los handlers.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/jhoicas/empresas-admin/internal/domain/entity"
	"github.com/jhoicas/empresas-admin/internal/domain/repository"
)

var (
	_ repository.EmpresaRepository  = (*Store)(nil)
	_ repository.SucursalRepository = (*Store)(nil)
)

// Store guarda empresas y sucursales. Seguro para uso concurrente.
type Store struct {
	mu         sync.RWMutex
	nextID     int64
	empresas   map[int64]entity.Empresa
	sucursales []entity.Sucursal
}

func NewStore() *Store {
	return &Store{empresas: map[int64]entity.Empresa{}}
}

// SeedSucursal agrega una sucursal (no hay alta de sucursales por API).
func (s *Store) SeedSucursal(suc entity.Sucursal) {
	s.mu.Lock()
	defer s.mu.Unlock()
	suc.ID = int64(len(s.sucursales) + 1)
	s.sucursales = append(s.sucursales, suc)
}

func (s *Store) Create(_ context.Context, e *entity.Empresa) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	e.ID = s.nextID
	s.empresas[e.ID] = *e
	return nil
}

func (s *Store) GetByID(_ context.Context, id int64) (*entity.Empresa, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.empresas[id]
	if !ok || e.Eliminado {
		return nil, nil
	}
	return &e, nil
}

func (s *Store) GetByCuil(_ context.Context, cuil int64) (*entity.Empresa, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, e := range s.empresas {
		if e.Cuil == cuil {
			e := e
			return &e, nil
		}
	}
	return nil, nil
}

func (s *Store) Update(_ context.Context, e *entity.Empresa) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.empresas[e.ID]; ok {
		s.empresas[e.ID] = *e
	}
	return nil
}

func (s *Store) List(_ context.Context) ([]*entity.Empresa, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	list := make([]*entity.Empresa, 0, len(s.empresas))
	for _, e := range s.empresas {
		if e.Eliminado {
			continue
		}
		e := e
		list = append(list, &e)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return list, nil
}

func (s *Store) SoftDelete(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if e, ok := s.empresas[id]; ok {
		e.Eliminado = true
		s.empresas[id] = e
	}
	return nil
}

func (s *Store) ListByEmpresa(_ context.Context, empresaID int64) ([]*entity.Sucursal, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var list []*entity.Sucursal
	for _, suc := range s.sucursales {
		if suc.EmpresaID == empresaID && !suc.Eliminado {
			suc := suc
			list = append(list, &suc)
		}
	}
	return list, nil
}
