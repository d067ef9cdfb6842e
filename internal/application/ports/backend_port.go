package ports

import (
	"context"
	"encoding/json"
	"io"

	"github.com/jhoicas/empresas-admin/internal/domain/entity"
)

// EmpresaGateway puerto de salida hacia el backend de empresas.
// La implementación HTTP vive en infrastructure/backend; los tests inyectan fakes.
type EmpresaGateway interface {
	ListEmpresas(ctx context.Context) ([]entity.Empresa, error)
	CreateEmpresa(ctx context.Context, e entity.Empresa) (*entity.Empresa, error)
	UpdateEmpresa(ctx context.Context, e entity.Empresa) (*entity.Empresa, error)
}

// SucursalGateway puerto de lectura de sucursales de una empresa.
type SucursalGateway interface {
	ListSucursales(ctx context.Context, empresaID int64) ([]entity.Sucursal, error)
}

// UploadFile archivo a enviar en el formulario multipart.
type UploadFile struct {
	Name    string
	Content io.Reader
}

// ImagenGateway puerto de salida hacia el servicio de imágenes.
type ImagenGateway interface {
	Upload(ctx context.Context, files ...UploadFile) ([]entity.Imagen, error)
	// Delete devuelve el cuerpo de la respuesta sin interpretarlo.
	Delete(ctx context.Context, publicID, id string) (json.RawMessage, error)
}
