package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/empresas-admin/internal/application/dto"
	"github.com/jhoicas/empresas-admin/internal/application/usecase"
	"github.com/jhoicas/empresas-admin/internal/domain"
	"github.com/jhoicas/empresas-admin/internal/domain/entity"
	"github.com/jhoicas/empresas-admin/internal/infrastructure/memory"
)

func TestEmpresaUseCase_CreateAsignaID(t *testing.T) {
	uc := usecase.NewEmpresaUseCase(memory.NewStore())

	out, err := uc.Create(context.Background(), dto.EmpresaDTO{ID: 99, Nombre: " Acme ", RazonSocial: "Acme SA", Cuil: 123})
	require.NoError(t, err)
	assert.Equal(t, int64(1), out.ID, "el id del cuerpo se ignora")
	assert.Equal(t, "Acme", out.Nombre)
	assert.False(t, out.Eliminado)
}

func TestEmpresaUseCase_CreateValida(t *testing.T) {
	uc := usecase.NewEmpresaUseCase(memory.NewStore())
	ctx := context.Background()

	cases := []dto.EmpresaDTO{
		{Nombre: "", RazonSocial: "x", Cuil: 1},
		{Nombre: "x", RazonSocial: " ", Cuil: 1},
		{Nombre: "x", RazonSocial: "x", Cuil: 0},
	}
	for _, in := range cases {
		_, err := uc.Create(ctx, in)
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "%+v", in)
	}
}

func TestEmpresaUseCase_CreateCuilDuplicado(t *testing.T) {
	uc := usecase.NewEmpresaUseCase(memory.NewStore())
	ctx := context.Background()
	_, err := uc.Create(ctx, dto.EmpresaDTO{Nombre: "A", RazonSocial: "A SA", Cuil: 1})
	require.NoError(t, err)

	_, err = uc.Create(ctx, dto.EmpresaDTO{Nombre: "B", RazonSocial: "B SA", Cuil: 1})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestEmpresaUseCase_UpdateConservaCuil(t *testing.T) {
	uc := usecase.NewEmpresaUseCase(memory.NewStore())
	ctx := context.Background()
	created, err := uc.Create(ctx, dto.EmpresaDTO{Nombre: "A", RazonSocial: "A SA", Cuil: 111})
	require.NoError(t, err)

	out, err := uc.Update(ctx, created.ID, dto.EmpresaDTO{Nombre: "A2", RazonSocial: "A2 SA", Cuil: 999})
	require.NoError(t, err)
	assert.Equal(t, "A2", out.Nombre)
	assert.Equal(t, int64(111), out.Cuil)

	_, err = uc.Update(ctx, 404, dto.EmpresaDTO{Nombre: "x", RazonSocial: "x"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestEmpresaUseCase_DeleteEsBajaLogica(t *testing.T) {
	store := memory.NewStore()
	uc := usecase.NewEmpresaUseCase(store)
	ctx := context.Background()
	a, _ := uc.Create(ctx, dto.EmpresaDTO{Nombre: "A", RazonSocial: "A SA", Cuil: 1})
	b, _ := uc.Create(ctx, dto.EmpresaDTO{Nombre: "B", RazonSocial: "B SA", Cuil: 2})

	require.NoError(t, uc.Delete(ctx, a.ID))

	list, err := uc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, b.ID, list[0].ID)

	_, err = uc.GetByID(ctx, a.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = uc.Create(ctx, dto.EmpresaDTO{Nombre: "C", RazonSocial: "C SA", Cuil: 1})
	assert.ErrorIs(t, err, domain.ErrDuplicate, "el cuil de una empresa dada de baja sigue reservado")
}

func TestSucursalUseCase_ListByEmpresa(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()
	empresas := usecase.NewEmpresaUseCase(store)
	a, _ := empresas.Create(ctx, dto.EmpresaDTO{Nombre: "A", RazonSocial: "A SA", Cuil: 1})
	store.SeedSucursal(entity.Sucursal{Nombre: "Centro", EmpresaID: a.ID})
	store.SeedSucursal(entity.Sucursal{Nombre: "Otra", EmpresaID: a.ID + 1})

	uc := usecase.NewSucursalUseCase(store, store)
	list, err := uc.ListByEmpresa(ctx, a.ID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Centro", list[0].Nombre)

	_, err = uc.ListByEmpresa(ctx, 404)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
