package entity

// Imagen descriptor de un archivo subido. Lo define el backend; el cliente lo trata como opaco.
type Imagen struct {
	ID        int64
	PublicID  string
	Name      string
	URL       string
	Eliminado bool
}
