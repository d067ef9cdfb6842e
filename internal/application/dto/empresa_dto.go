package dto

import "github.com/jhoicas/empresas-admin/internal/domain/entity"

// EmpresaDTO representación JSON de una empresa, tal como la intercambian panel y backend.
// En el alta el id se ignora; en la edición el cuil se ignora.
type EmpresaDTO struct {
	ID          int64  `json:"id"`
	Nombre      string `json:"nombre"`
	RazonSocial string `json:"razonSocial"`
	Cuil        int64  `json:"cuil"`
	Eliminado   bool   `json:"eliminado"`
}

// SucursalDTO representación JSON de una sucursal.
type SucursalDTO struct {
	ID              int64  `json:"id"`
	Nombre          string `json:"nombre"`
	Domicilio       string `json:"domicilio"`
	HorarioApertura string `json:"horarioApertura"`
	HorarioCierre   string `json:"horarioCierre"`
	EmpresaID       int64  `json:"empresaId"`
	Eliminado       bool   `json:"eliminado"`
}

// EmpresaFromEntity convierte la entidad a su forma de transporte.
func EmpresaFromEntity(e *entity.Empresa) EmpresaDTO {
	return EmpresaDTO{
		ID:          e.ID,
		Nombre:      e.Nombre,
		RazonSocial: e.RazonSocial,
		Cuil:        e.Cuil,
		Eliminado:   e.Eliminado,
	}
}

// ToEntity convierte el DTO en entidad de dominio.
func (d EmpresaDTO) ToEntity() entity.Empresa {
	return entity.Empresa{
		ID:          d.ID,
		Nombre:      d.Nombre,
		RazonSocial: d.RazonSocial,
		Cuil:        d.Cuil,
		Eliminado:   d.Eliminado,
	}
}

// SucursalFromEntity convierte la entidad a su forma de transporte.
func SucursalFromEntity(s *entity.Sucursal) SucursalDTO {
	return SucursalDTO{
		ID:              s.ID,
		Nombre:          s.Nombre,
		Domicilio:       s.Domicilio,
		HorarioApertura: s.HorarioApertura,
		HorarioCierre:   s.HorarioCierre,
		EmpresaID:       s.EmpresaID,
		Eliminado:       s.Eliminado,
	}
}

// ToEntity convierte el DTO en entidad de dominio.
func (d SucursalDTO) ToEntity() entity.Sucursal {
	return entity.Sucursal{
		ID:              d.ID,
		Nombre:          d.Nombre,
		Domicilio:       d.Domicilio,
		HorarioApertura: d.HorarioApertura,
		HorarioCierre:   d.HorarioCierre,
		EmpresaID:       d.EmpresaID,
		Eliminado:       d.Eliminado,
	}
}
