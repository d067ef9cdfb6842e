package entity

// Empresa representa una empresa administrada desde el panel.
// ID == 0 indica que todavía no fue creada en el backend.
type Empresa struct {
	ID          int64
	Nombre      string
	RazonSocial string
	Cuil        int64 // identificador tributario; inmutable una vez creada
	Eliminado   bool  // baja lógica, la gestiona el backend
}

// Exists informa si la empresa ya tiene un ID asignado por el servidor.
func (e Empresa) Exists() bool {
	return e.ID > 0
}

// Sucursal es una sede de una Empresa.
type Sucursal struct {
	ID              int64
	Nombre          string
	Domicilio       string
	HorarioApertura string // HH:MM
	HorarioCierre   string // HH:MM
	EmpresaID       int64
	Eliminado       bool
}
