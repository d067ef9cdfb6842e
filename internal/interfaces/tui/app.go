// Package tui pantalla de administración de empresas en terminal (Bubble Tea).
package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/jhoicas/empresas-admin/internal/application/editor"
	"github.com/jhoicas/empresas-admin/internal/application/ports"
)

// Backend lo que la TUI necesita del backend remoto.
type Backend interface {
	ports.EmpresaGateway
	ports.SucursalGateway
}

// App modelo raíz: mantiene una pila de pantallas y resuelve la navegación por ruta.
type App struct {
	ctx    context.Context
	be     Backend
	log    zerolog.Logger
	stack  []tea.Model
	width  int
	height int
}

// NewApp arranca en la pantalla de empresas.
func NewApp(ctx context.Context, be Backend, log zerolog.Logger) *App {
	return &App{
		ctx:   ctx,
		be:    be,
		log:   log,
		stack: []tea.Model{NewEmpresaListModel(ctx, be, log)},
	}
}

// Current pantalla visible.
func (a *App) Current() tea.Model { return a.stack[len(a.stack)-1] }

func (a *App) Init() tea.Cmd {
	return a.Current().Init()
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height
		// todas las pantallas necesitan el ancho para distribuir tarjetas
		var cmds []tea.Cmd
		for i, m := range a.stack {
			var cmd tea.Cmd
			a.stack[i], cmd = m.Update(msg)
			cmds = append(cmds, cmd)
		}
		return a, tea.Batch(cmds...)

	case NavigateMsg:
		id, ok := editor.ParseSucursalesRoute(msg.Route)
		if !ok {
			a.log.Warn().Str("ruta", msg.Route).Msg("ruta desconocida")
			return a, nil
		}
		a.log.Debug().Str("ruta", msg.Route).Msg("navegando")
		next := NewSucursalListModel(a.ctx, a.be, id)
		a.stack = append(a.stack, next)
		return a, next.Init()

	case BackMsg:
		if len(a.stack) > 1 {
			a.stack = a.stack[:len(a.stack)-1]
		}
		return a, nil
	}

	top := len(a.stack) - 1
	var cmd tea.Cmd
	a.stack[top], cmd = a.stack[top].Update(msg)
	return a, cmd
}

func (a *App) View() string {
	return a.Current().View()
}
