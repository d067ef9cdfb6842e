package tui

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"github.com/jhoicas/empresas-admin/internal/application/editor"
	"github.com/jhoicas/empresas-admin/internal/application/ports"
	"github.com/jhoicas/empresas-admin/internal/domain"
)

// Orden de los campos del modal.
var modalFields = []struct {
	name  string
	label string
}{
	{editor.FieldNombre, "Nombre"},
	{editor.FieldRazonSocial, "Razón Social"},
	{editor.FieldCuil, "Cuil"},
}

// EmpresaListModel pantalla de empresas: tarjetas + modal de alta/edición.
// Todo el estado de negocio vive en editor.Screen; este modelo solo lo dibuja
// y traduce teclas. La red se usa solo dentro de tea.Cmd.
type EmpresaListModel struct {
	ctx     context.Context
	gw      ports.EmpresaGateway
	log     zerolog.Logger
	screen  *editor.Screen
	route   string
	cursor  int
	width   int
	loading bool
	status  string

	inputs []textinput.Model
	focus  int
}

// NewEmpresaListModel construye la pantalla. La carga inicial la dispara Init.
func NewEmpresaListModel(ctx context.Context, gw ports.EmpresaGateway, log zerolog.Logger) *EmpresaListModel {
	m := &EmpresaListModel{ctx: ctx, gw: gw, log: log, width: 80, loading: true}
	m.screen = editor.New(gw,
		editor.WithLogger(log),
		editor.WithNavigator(editor.NavigatorFunc(func(route string) { m.route = route })),
	)
	return m
}

// Screen expone el estado (tests).
func (m *EmpresaListModel) Screen() *editor.Screen { return m.screen }

// Cursor índice de la tarjeta seleccionada.
func (m *EmpresaListModel) Cursor() int { return m.cursor }

func (m *EmpresaListModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m *EmpresaListModel) loadCmd() tea.Cmd {
	ctx, gw := m.ctx, m.gw
	return func() tea.Msg {
		items, err := gw.ListEmpresas(ctx)
		return empresasLoadedMsg{items: items, err: err}
	}
}

func (m *EmpresaListModel) saveCmd(d editor.Draft) tea.Cmd {
	ctx, gw, log := m.ctx, m.gw, m.log
	return func() tea.Msg {
		saveErr := editor.Dispatch(ctx, gw, d, log)
		items, loadErr := gw.ListEmpresas(ctx)
		return empresaSavedMsg{saveErr: saveErr, items: items, loadErr: loadErr}
	}
}

func (m *EmpresaListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case empresasLoadedMsg:
		m.loading = false
		m.screen.SetItems(msg.items, msg.err)
		m.clampCursor()
		m.status = errText(msg.err)
		return m, nil

	case empresaSavedMsg:
		m.loading = false
		m.screen.SetItems(msg.items, msg.loadErr)
		m.clampCursor()
		m.status = errText(msg.loadErr)
		if msg.saveErr != nil {
			m.screen.SetErr(msg.saveErr)
			m.status = errText(msg.saveErr)
		}
		return m, nil

	case tea.KeyMsg:
		if m.screen.IsOpen() {
			return m.updateModal(msg)
		}
		return m.updateList(msg)
	}
	return m, nil
}

func (m *EmpresaListModel) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	items := m.screen.Items()
	perRow := m.cardsPerRow()
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "left", "h":
		m.cursor--
	case "right", "l":
		m.cursor++
	case "up", "k":
		m.cursor -= perRow
	case "down", "j":
		m.cursor += perRow
	case "n":
		m.screen.OpenNew()
		return m, m.openInputs()
	case "e", "enter":
		if len(items) == 0 {
			return m, nil
		}
		m.screen.OpenEdit(items[m.cursor])
		return m, m.openInputs()
	case "s":
		if len(items) == 0 {
			return m, nil
		}
		m.screen.ViewSucursales(items[m.cursor].ID)
		route := m.route
		m.route = ""
		return m, func() tea.Msg { return NavigateMsg{Route: route} }
	case "r":
		m.loading = true
		return m, m.loadCmd()
	}
	m.clampCursor()
	return m, nil
}

func (m *EmpresaListModel) updateModal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.screen.Close()
		m.inputs = nil
		m.status = ""
		return m, nil
	case "ctrl+s":
		return m, m.save()
	case "tab", "down":
		return m, m.moveFocus(1)
	case "shift+tab", "up":
		return m, m.moveFocus(-1)
	case "enter":
		if m.focus == m.lastEditable() {
			return m, m.save()
		}
		return m, m.moveFocus(1)
	}

	field := modalFields[m.focus].name
	prev := m.inputs[m.focus].Value()
	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	if value := m.inputs[m.focus].Value(); value != prev {
		if err := m.screen.Change(field, value); err != nil {
			m.inputs[m.focus].SetValue(prev)
			if errors.Is(err, domain.ErrInvalidInput) {
				m.status = "el cuil debe ser numérico"
			} else {
				m.status = err.Error()
			}
		} else {
			m.status = ""
		}
	}
	return m, cmd
}

func (m *EmpresaListModel) save() tea.Cmd {
	d := m.screen.BeginSave()
	m.inputs = nil
	m.loading = true
	m.status = ""
	return m.saveCmd(d)
}

// openInputs arma los inputs del modal a partir del draft.
func (m *EmpresaListModel) openInputs() tea.Cmd {
	d := m.screen.Draft()
	values := map[string]string{
		editor.FieldNombre:      d.Nombre,
		editor.FieldRazonSocial: d.RazonSocial,
		editor.FieldCuil:        "",
	}
	if d.Cuil != 0 {
		values[editor.FieldCuil] = strconv.FormatInt(d.Cuil, 10)
	}
	m.inputs = make([]textinput.Model, len(modalFields))
	for i, f := range modalFields {
		in := textinput.New()
		in.Prompt = ""
		in.Placeholder = f.label
		in.CharLimit = 120
		in.SetValue(values[f.name])
		m.inputs[i] = in
	}
	m.focus = 0
	return m.inputs[0].Focus()
}

func (m *EmpresaListModel) lastEditable() int {
	if m.screen.Draft().CuilLocked() {
		return len(modalFields) - 2
	}
	return len(modalFields) - 1
}

func (m *EmpresaListModel) moveFocus(delta int) tea.Cmd {
	n := m.lastEditable() + 1
	m.inputs[m.focus].Blur()
	m.focus = ((m.focus+delta)%n + n) % n
	return m.inputs[m.focus].Focus()
}

func (m *EmpresaListModel) clampCursor() {
	n := len(m.screen.Items())
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m *EmpresaListModel) cardsPerRow() int {
	per := m.width / (cardWidth + 4)
	if per < 1 {
		return 1
	}
	return per
}

func (m *EmpresaListModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Seleccione una Empresa"))
	b.WriteString("\n")
	b.WriteString(actionStyle.Render("[n] Crear Empresa"))
	b.WriteString("\n\n")

	if m.screen.IsOpen() {
		b.WriteString(m.modalView())
	} else {
		b.WriteString(m.cardsView())
	}
	b.WriteString("\n")

	switch {
	case m.status != "":
		b.WriteString(errorStyle.Render(m.status))
	case m.loading:
		b.WriteString(statusStyle.Render("cargando..."))
	}
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help()))
	return b.String()
}

func (m *EmpresaListModel) cardsView() string {
	items := m.screen.Items()
	if len(items) == 0 {
		return statusStyle.Render("No hay empresas.")
	}
	perRow := m.cardsPerRow()
	var rows []string
	for start := 0; start < len(items); start += perRow {
		end := start + perRow
		if end > len(items) {
			end = len(items)
		}
		cards := make([]string, 0, end-start)
		for i := start; i < end; i++ {
			style := cardStyle
			if i == m.cursor {
				style = selectedCardStyle
			}
			body := lipgloss.JoinVertical(lipgloss.Left,
				cardTitleStyle.Render(items[i].Nombre),
				cardSubStyle.Render(items[i].RazonSocial),
				"",
				helpStyle.Render("[e] Editar   [s] Ver Sucursales"),
			)
			cards = append(cards, style.Render(body))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (m *EmpresaListModel) modalView() string {
	d := m.screen.Draft()
	lines := []string{modalTitleStyle.Render(m.screen.Title())}
	for i, f := range modalFields {
		if f.name == editor.FieldCuil && d.CuilLocked() {
			lines = append(lines,
				labelStyle.Render(f.label+" (bloqueado)"),
				disabledStyle.Render(strconv.FormatInt(d.Cuil, 10)),
			)
			continue
		}
		lines = append(lines, labelStyle.Render(f.label), m.inputs[i].View())
	}
	lines = append(lines, "", helpStyle.Render("[esc] Cancelar   [ctrl+s] Guardar"))
	return modalStyle.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func (m *EmpresaListModel) help() string {
	if m.screen.IsOpen() {
		return "tab: siguiente campo • enter: guardar en el último campo • esc: cancelar"
	}
	return fmt.Sprintf("←/→/↑/↓: mover • n: nueva • e: editar • s: sucursales • r: recargar • q: salir (%d empresas)", len(m.screen.Items()))
}

func errText(err error) string {
	if err == nil {
		return ""
	}
	return "error: " + err.Error()
}
