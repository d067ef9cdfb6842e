package pdf_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/empresas-admin/internal/domain/entity"
	"github.com/jhoicas/empresas-admin/internal/infrastructure/pdf"
)

func TestEmpresaReport_GeneraPDF(t *testing.T) {
	out, err := pdf.NewEmpresaReport().Generate(context.Background(), []entity.Empresa{
		{ID: 1, Nombre: "Acme", RazonSocial: "Acme SA", Cuil: 123},
		{ID: 2, Nombre: "Beta", RazonSocial: "Beta SRL", Cuil: 456, Eliminado: true},
	})
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")), "debe ser un documento PDF")
}

func TestEmpresaReport_ListaVacia(t *testing.T) {
	out, err := pdf.NewEmpresaReport().Generate(context.Background(), nil)
	require.NoError(t, err)
	assert.NotEmpty(t, out)
}
