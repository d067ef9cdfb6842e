package repository

import (
	"context"

	"github.com/jhoicas/empresas-admin/internal/domain/entity"
)

// EmpresaRepository define el puerto de persistencia para Empresa (DIP).
// La implementación vive en infrastructure.
type EmpresaRepository interface {
	Create(ctx context.Context, empresa *entity.Empresa) error
	GetByID(ctx context.Context, id int64) (*entity.Empresa, error)
	GetByCuil(ctx context.Context, cuil int64) (*entity.Empresa, error)
	Update(ctx context.Context, empresa *entity.Empresa) error
	// List devuelve las empresas no eliminadas ordenadas por ID.
	List(ctx context.Context) ([]*entity.Empresa, error)
	SoftDelete(ctx context.Context, id int64) error
}

// SucursalRepository define el puerto de lectura de sucursales por empresa.
type SucursalRepository interface {
	ListByEmpresa(ctx context.Context, empresaID int64) ([]*entity.Sucursal, error)
}
