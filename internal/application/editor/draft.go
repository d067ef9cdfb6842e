package editor

import (
	"strconv"
	"strings"

	"github.com/jhoicas/empresas-admin/internal/domain"
	"github.com/jhoicas/empresas-admin/internal/domain/entity"
)

// Nombres de campo del formulario (coinciden con las claves JSON del backend).
const (
	FieldNombre      = "nombre"
	FieldRazonSocial = "razonSocial"
	FieldCuil        = "cuil"
)

// Draft copia local de una empresa en edición dentro del modal.
// Un draft con ID 0 es un alta; con ID > 0 es una edición y el cuil queda bloqueado.
type Draft struct {
	entity.Empresa
}

// EmptyDraft devuelve el placeholder de alta.
func EmptyDraft() Draft {
	return Draft{}
}

// DraftFrom copia una empresa existente en un draft.
func DraftFrom(e entity.Empresa) Draft {
	return Draft{Empresa: e}
}

// IsNew informa si el draft corresponde a una empresa aún no creada.
func (d Draft) IsNew() bool {
	return !d.Exists()
}

// CuilLocked informa si el cuil ya no se puede editar.
func (d Draft) CuilLocked() bool {
	return d.Exists()
}

// With devuelve una copia del draft con el campo indicado reemplazado.
// El resto de los campos no se modifica.
func (d Draft) With(field, value string) (Draft, error) {
	switch field {
	case FieldNombre:
		d.Nombre = value
	case FieldRazonSocial:
		d.RazonSocial = value
	case FieldCuil:
		if d.CuilLocked() {
			return d, domain.ErrFieldLocked
		}
		cuil, err := parseCuil(value)
		if err != nil {
			return d, err
		}
		d.Cuil = cuil
	default:
		return d, domain.ErrUnknownField
	}
	return d, nil
}

func parseCuil(value string) (int64, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, nil
	}
	n, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0, domain.ErrInvalidInput
	}
	return n, nil
}
