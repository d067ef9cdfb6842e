package usecase

import (
	"context"

	"github.com/jhoicas/empresas-admin/internal/application/dto"
	"github.com/jhoicas/empresas-admin/internal/domain"
	"github.com/jhoicas/empresas-admin/internal/domain/repository"
)

// SucursalUseCase lectura de sucursales por empresa.
type SucursalUseCase struct {
	empresas   repository.EmpresaRepository
	sucursales repository.SucursalRepository
}

func NewSucursalUseCase(empresas repository.EmpresaRepository, sucursales repository.SucursalRepository) *SucursalUseCase {
	return &SucursalUseCase{empresas: empresas, sucursales: sucursales}
}

// ListByEmpresa devuelve domain.ErrNotFound si la empresa no existe.
func (uc *SucursalUseCase) ListByEmpresa(ctx context.Context, empresaID int64) ([]dto.SucursalDTO, error) {
	empresa, err := uc.empresas.GetByID(ctx, empresaID)
	if err != nil {
		return nil, err
	}
	if empresa == nil {
		return nil, domain.ErrNotFound
	}
	list, err := uc.sucursales.ListByEmpresa(ctx, empresaID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.SucursalDTO, 0, len(list))
	for _, s := range list {
		items = append(items, dto.SucursalFromEntity(s))
	}
	return items, nil
}
