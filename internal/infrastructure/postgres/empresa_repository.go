package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/empresas-admin/internal/domain"
	"github.com/jhoicas/empresas-admin/internal/domain/entity"
	"github.com/jhoicas/empresas-admin/internal/domain/repository"
)

// Asegura que EmpresaRepo implementa repository.EmpresaRepository.
var _ repository.EmpresaRepository = (*EmpresaRepo)(nil)

// EmpresaRepo implementación del puerto EmpresaRepository sobre PostgreSQL.
type EmpresaRepo struct {
	db DBTX
}

// NewEmpresaRepository construye el adaptador de persistencia para empresas.
func NewEmpresaRepository(db DBTX) *EmpresaRepo {
	return &EmpresaRepo{db: db}
}

const empresaColumns = `id, nombre, razon_social, cuil, eliminado`

// Create persiste una nueva empresa y completa su ID.
func (r *EmpresaRepo) Create(ctx context.Context, e *entity.Empresa) error {
	query := `
		INSERT INTO empresas (nombre, razon_social, cuil, eliminado)
		VALUES ($1, $2, $3, $4)
		RETURNING id`
	err := r.db.QueryRow(ctx, query, e.Nombre, e.RazonSocial, e.Cuil, e.Eliminado).Scan(&e.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert empresa: %w", err)
	}
	return nil
}

// GetByID obtiene una empresa no eliminada por ID. Devuelve (nil, nil) si no existe.
func (r *EmpresaRepo) GetByID(ctx context.Context, id int64) (*entity.Empresa, error) {
	query := `SELECT ` + empresaColumns + ` FROM empresas WHERE id = $1 AND NOT eliminado`
	var e entity.Empresa
	err := r.db.QueryRow(ctx, query, id).Scan(&e.ID, &e.Nombre, &e.RazonSocial, &e.Cuil, &e.Eliminado)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get empresa: %w", err)
	}
	return &e, nil
}

// GetByCuil obtiene una empresa por cuil, incluidas las dadas de baja.
func (r *EmpresaRepo) GetByCuil(ctx context.Context, cuil int64) (*entity.Empresa, error) {
	query := `SELECT ` + empresaColumns + ` FROM empresas WHERE cuil = $1`
	var e entity.Empresa
	err := r.db.QueryRow(ctx, query, cuil).Scan(&e.ID, &e.Nombre, &e.RazonSocial, &e.Cuil, &e.Eliminado)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get empresa by cuil: %w", err)
	}
	return &e, nil
}

// Update actualiza nombre y razón social. El cuil no se toca.
func (r *EmpresaRepo) Update(ctx context.Context, e *entity.Empresa) error {
	query := `UPDATE empresas SET nombre = $2, razon_social = $3 WHERE id = $1`
	cmd, err := r.db.Exec(ctx, query, e.ID, e.Nombre, e.RazonSocial)
	if err != nil {
		return fmt.Errorf("update empresa: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List devuelve las empresas no eliminadas ordenadas por ID.
func (r *EmpresaRepo) List(ctx context.Context) ([]*entity.Empresa, error) {
	query := `SELECT ` + empresaColumns + ` FROM empresas WHERE NOT eliminado ORDER BY id`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list empresas: %w", err)
	}
	defer rows.Close()

	var list []*entity.Empresa
	for rows.Next() {
		var e entity.Empresa
		if err := rows.Scan(&e.ID, &e.Nombre, &e.RazonSocial, &e.Cuil, &e.Eliminado); err != nil {
			return nil, fmt.Errorf("scan empresa: %w", err)
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}

// SoftDelete marca la empresa como eliminada.
func (r *EmpresaRepo) SoftDelete(ctx context.Context, id int64) error {
	_, err := r.db.Exec(ctx, `UPDATE empresas SET eliminado = true WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete empresa: %w", err)
	}
	return nil
}
