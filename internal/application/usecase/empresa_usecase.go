package usecase

import (
	"context"
	"strings"

	"github.com/jhoicas/empresas-admin/internal/application/dto"
	"github.com/jhoicas/empresas-admin/internal/domain"
	"github.com/jhoicas/empresas-admin/internal/domain/entity"
	"github.com/jhoicas/empresas-admin/internal/domain/repository"
)

// EmpresaUseCase aplica reglas de negocio para empresas (casos de uso).
type EmpresaUseCase struct {
	repo repository.EmpresaRepository
}

// NewEmpresaUseCase construye el caso de uso con el puerto de persistencia.
func NewEmpresaUseCase(repo repository.EmpresaRepository) *EmpresaUseCase {
	return &EmpresaUseCase{repo: repo}
}

// Create crea una nueva empresa. El ID del cuerpo se ignora y lo asigna la base.
// Devuelve domain.ErrInvalidInput si faltan datos y domain.ErrDuplicate si el cuil ya existe.
func (uc *EmpresaUseCase) Create(ctx context.Context, in dto.EmpresaDTO) (*dto.EmpresaDTO, error) {
	nombre, razon := strings.TrimSpace(in.Nombre), strings.TrimSpace(in.RazonSocial)
	if nombre == "" || razon == "" || in.Cuil <= 0 {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.repo.GetByCuil(ctx, in.Cuil)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	empresa := &entity.Empresa{
		Nombre:      nombre,
		RazonSocial: razon,
		Cuil:        in.Cuil,
	}
	if err := uc.repo.Create(ctx, empresa); err != nil {
		return nil, err
	}
	out := dto.EmpresaFromEntity(empresa)
	return &out, nil
}

// GetByID obtiene una empresa por ID. Devuelve domain.ErrNotFound si no existe.
func (uc *EmpresaUseCase) GetByID(ctx context.Context, id int64) (*dto.EmpresaDTO, error) {
	empresa, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if empresa == nil {
		return nil, domain.ErrNotFound
	}
	out := dto.EmpresaFromEntity(empresa)
	return &out, nil
}

// List lista las empresas no eliminadas en el orden del repositorio.
func (uc *EmpresaUseCase) List(ctx context.Context) ([]dto.EmpresaDTO, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.EmpresaDTO, 0, len(list))
	for _, e := range list {
		items = append(items, dto.EmpresaFromEntity(e))
	}
	return items, nil
}

// Update actualiza nombre y razón social. El cuil es inmutable: se conserva el almacenado.
func (uc *EmpresaUseCase) Update(ctx context.Context, id int64, in dto.EmpresaDTO) (*dto.EmpresaDTO, error) {
	nombre, razon := strings.TrimSpace(in.Nombre), strings.TrimSpace(in.RazonSocial)
	if nombre == "" || razon == "" {
		return nil, domain.ErrInvalidInput
	}
	empresa, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if empresa == nil {
		return nil, domain.ErrNotFound
	}
	empresa.Nombre = nombre
	empresa.RazonSocial = razon
	if err := uc.repo.Update(ctx, empresa); err != nil {
		return nil, err
	}
	out := dto.EmpresaFromEntity(empresa)
	return &out, nil
}

// Delete hace la baja lógica de la empresa.
func (uc *EmpresaUseCase) Delete(ctx context.Context, id int64) error {
	empresa, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if empresa == nil {
		return domain.ErrNotFound
	}
	return uc.repo.SoftDelete(ctx, id)
}
