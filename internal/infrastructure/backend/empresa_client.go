package backend

import (
	"context"
	"net/http"
	"strconv"

	"github.com/jhoicas/empresas-admin/internal/application/dto"
	"github.com/jhoicas/empresas-admin/internal/application/ports"
	"github.com/jhoicas/empresas-admin/internal/domain/entity"
)

var (
	_ ports.EmpresaGateway  = (*Client)(nil)
	_ ports.SucursalGateway = (*Client)(nil)
)

const empresasPath = "/empresas"

// ListEmpresas GET /empresas. Respeta el orden devuelto por el servidor.
func (c *Client) ListEmpresas(ctx context.Context) ([]entity.Empresa, error) {
	var out []dto.EmpresaDTO
	if err := c.doJSON(ctx, http.MethodGet, empresasPath, "listar empresas", nil, &out); err != nil {
		return nil, err
	}
	list := make([]entity.Empresa, 0, len(out))
	for _, d := range out {
		list = append(list, d.ToEntity())
	}
	return list, nil
}

// GetEmpresa GET /empresas/{id}.
func (c *Client) GetEmpresa(ctx context.Context, id int64) (*entity.Empresa, error) {
	var out dto.EmpresaDTO
	if err := c.doJSON(ctx, http.MethodGet, empresaPath(id), "obtener empresa", nil, &out); err != nil {
		return nil, err
	}
	e := out.ToEntity()
	return &e, nil
}

// CreateEmpresa POST /empresas.
func (c *Client) CreateEmpresa(ctx context.Context, e entity.Empresa) (*entity.Empresa, error) {
	var out dto.EmpresaDTO
	if err := c.doJSON(ctx, http.MethodPost, empresasPath, "crear empresa", dto.EmpresaFromEntity(&e), &out); err != nil {
		return nil, err
	}
	created := out.ToEntity()
	return &created, nil
}

// UpdateEmpresa PUT /empresas/{id}.
func (c *Client) UpdateEmpresa(ctx context.Context, e entity.Empresa) (*entity.Empresa, error) {
	var out dto.EmpresaDTO
	if err := c.doJSON(ctx, http.MethodPut, empresaPath(e.ID), "actualizar empresa", dto.EmpresaFromEntity(&e), &out); err != nil {
		return nil, err
	}
	updated := out.ToEntity()
	return &updated, nil
}

// ListSucursales GET /empresas/{id}/sucursales.
func (c *Client) ListSucursales(ctx context.Context, empresaID int64) ([]entity.Sucursal, error) {
	var out []dto.SucursalDTO
	if err := c.doJSON(ctx, http.MethodGet, empresaPath(empresaID)+"/sucursales", "listar sucursales", nil, &out); err != nil {
		return nil, err
	}
	list := make([]entity.Sucursal, 0, len(out))
	for _, d := range out {
		list = append(list, d.ToEntity())
	}
	return list, nil
}

func empresaPath(id int64) string {
	return empresasPath + "/" + strconv.FormatInt(id, 10)
}
