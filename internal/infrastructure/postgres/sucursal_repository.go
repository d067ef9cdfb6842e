package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/empresas-admin/internal/domain/entity"
	"github.com/jhoicas/empresas-admin/internal/domain/repository"
)

var _ repository.SucursalRepository = (*SucursalRepo)(nil)

// SucursalRepo lectura de sucursales sobre PostgreSQL.
type SucursalRepo struct {
	db DBTX
}

func NewSucursalRepository(db DBTX) *SucursalRepo {
	return &SucursalRepo{db: db}
}

// ListByEmpresa sucursales activas de la empresa, ordenadas por ID.
func (r *SucursalRepo) ListByEmpresa(ctx context.Context, empresaID int64) ([]*entity.Sucursal, error) {
	query := `
		SELECT id, nombre, domicilio, horario_apertura, horario_cierre, empresa_id, eliminado
		FROM sucursales WHERE empresa_id = $1 AND NOT eliminado ORDER BY id`
	rows, err := r.db.Query(ctx, query, empresaID)
	if err != nil {
		return nil, fmt.Errorf("list sucursales: %w", err)
	}
	defer rows.Close()

	var list []*entity.Sucursal
	for rows.Next() {
		var s entity.Sucursal
		if err := rows.Scan(&s.ID, &s.Nombre, &s.Domicilio, &s.HorarioApertura, &s.HorarioCierre, &s.EmpresaID, &s.Eliminado); err != nil {
			return nil, fmt.Errorf("scan sucursal: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}
