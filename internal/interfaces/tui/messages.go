package tui

import (
	"github.com/jhoicas/empresas-admin/internal/domain/entity"
)

type empresasLoadedMsg struct {
	items []entity.Empresa
	err   error
}

// empresaSavedMsg resultado del guardado más la recarga completa posterior.
type empresaSavedMsg struct {
	saveErr error
	items   []entity.Empresa
	loadErr error
}

type sucursalesLoadedMsg struct {
	empresaID int64
	items     []entity.Sucursal
	err       error
}

// NavigateMsg pide al App mostrar la pantalla de la ruta.
type NavigateMsg struct{ Route string }

// BackMsg vuelve a la pantalla anterior.
type BackMsg struct{}
