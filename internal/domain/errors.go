package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrInvalidInput = errors.New("entrada inválida")
	ErrDuplicate    = errors.New("recurso duplicado")
	ErrUnauthorized = errors.New("no autorizado")
	ErrFieldLocked  = errors.New("el campo no se puede modificar")
	ErrUnknownField = errors.New("campo desconocido")
	// ErrHTTP es la causa de toda respuesta no exitosa del backend (ver backend.HTTPError).
	ErrHTTP = errors.New("respuesta HTTP no exitosa")
)
