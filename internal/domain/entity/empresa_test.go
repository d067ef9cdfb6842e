package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/empresas-admin/internal/domain/entity"
)

func TestEmpresa_Exists(t *testing.T) {
	assert.False(t, entity.Empresa{}.Exists())
	assert.True(t, entity.Empresa{ID: 3}.Exists())
}
