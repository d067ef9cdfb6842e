package tui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jhoicas/empresas-admin/internal/application/ports"
	"github.com/jhoicas/empresas-admin/internal/domain/entity"
)

// SucursalListModel muestra las sucursales de una empresa. Solo lectura.
type SucursalListModel struct {
	ctx       context.Context
	gw        ports.SucursalGateway
	empresaID int64
	items     []entity.Sucursal
	cursor    int
	loading   bool
	err       error
}

// NewSucursalListModel pantalla de sucursales de empresaID. La carga la dispara Init.
func NewSucursalListModel(ctx context.Context, gw ports.SucursalGateway, empresaID int64) *SucursalListModel {
	return &SucursalListModel{ctx: ctx, gw: gw, empresaID: empresaID, loading: true}
}

// Items sucursales cargadas.
func (m *SucursalListModel) Items() []entity.Sucursal { return m.items }

// Err error de la última carga.
func (m *SucursalListModel) Err() error { return m.err }

func (m *SucursalListModel) Init() tea.Cmd {
	ctx, gw, id := m.ctx, m.gw, m.empresaID
	return func() tea.Msg {
		items, err := gw.ListSucursales(ctx, id)
		return sucursalesLoadedMsg{empresaID: id, items: items, err: err}
	}
}

func (m *SucursalListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case sucursalesLoadedMsg:
		if msg.empresaID != m.empresaID {
			return m, nil
		}
		m.loading = false
		m.items, m.err = msg.items, msg.err
		if m.err != nil {
			m.items = nil
		}
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "esc", "backspace":
			return m, func() tea.Msg { return BackMsg{} }
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.items)-1 {
				m.cursor++
			}
		case "r":
			m.loading = true
			return m, m.Init()
		}
	}
	return m, nil
}

func (m *SucursalListModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("Sucursales de la empresa %d", m.empresaID)))
	b.WriteString("\n")
	switch {
	case m.loading:
		b.WriteString(statusStyle.Render("cargando..."))
	case m.err != nil:
		b.WriteString(errorStyle.Render(errText(m.err)))
	case len(m.items) == 0:
		b.WriteString(statusStyle.Render("La empresa no tiene sucursales."))
	default:
		rows := make([]string, 0, len(m.items))
		for i, s := range m.items {
			style := cardStyle
			if i == m.cursor {
				style = selectedCardStyle
			}
			rows = append(rows, style.Render(lipgloss.JoinVertical(lipgloss.Left,
				cardTitleStyle.Render(s.Nombre),
				cardSubStyle.Render(s.Domicilio),
				cardSubStyle.Render(s.HorarioApertura+" - "+s.HorarioCierre),
			)))
		}
		b.WriteString(lipgloss.JoinVertical(lipgloss.Left, rows...))
	}
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("↑/↓: mover • r: recargar • esc: volver • q: salir"))
	return b.String()
}
