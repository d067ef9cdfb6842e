package tui

import (
	"context"
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/empresas-admin/internal/application/editor"
	"github.com/jhoicas/empresas-admin/internal/domain/entity"
)

type fakeBackend struct {
	items      []entity.Empresa
	sucursales map[int64][]entity.Sucursal
	saveErr    error
	creates    []entity.Empresa
	updates    []entity.Empresa
}

func (f *fakeBackend) ListEmpresas(context.Context) ([]entity.Empresa, error) {
	out := make([]entity.Empresa, len(f.items))
	copy(out, f.items)
	return out, nil
}

func (f *fakeBackend) CreateEmpresa(_ context.Context, e entity.Empresa) (*entity.Empresa, error) {
	f.creates = append(f.creates, e)
	if f.saveErr != nil {
		return nil, f.saveErr
	}
	e.ID = int64(len(f.items) + 1)
	f.items = append(f.items, e)
	return &e, nil
}

func (f *fakeBackend) UpdateEmpresa(_ context.Context, e entity.Empresa) (*entity.Empresa, error) {
	f.updates = append(f.updates, e)
	if f.saveErr != nil {
		return nil, f.saveErr
	}
	for i := range f.items {
		if f.items[i].ID == e.ID {
			f.items[i] = e
		}
	}
	return &e, nil
}

func (f *fakeBackend) ListSucursales(_ context.Context, id int64) ([]entity.Sucursal, error) {
	return f.sucursales[id], nil
}

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "ctrl+s":
		return tea.KeyMsg{Type: tea.KeyCtrlS}
	case "ctrl+u":
		return tea.KeyMsg{Type: tea.KeyCtrlU}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// run ejecuta el comando de forma síncrona y entrega su mensaje al modelo.
func run(t *testing.T, m tea.Model, cmd tea.Cmd) tea.Model {
	t.Helper()
	require.NotNil(t, cmd)
	m, _ = m.Update(cmd())
	return m
}

func typeText(m tea.Model, s string) tea.Model {
	for _, r := range s {
		m, _ = m.Update(key(string(r)))
	}
	return m
}

func newLoaded(t *testing.T, be *fakeBackend) *EmpresaListModel {
	t.Helper()
	m := NewEmpresaListModel(context.Background(), be, zerolog.Nop())
	run(t, m, m.Init())
	return m
}

func acme() entity.Empresa {
	return entity.Empresa{ID: 1, Nombre: "Acme", RazonSocial: "Acme SA", Cuil: 123}
}

func TestEmpresaList_RendersCards(t *testing.T) {
	m := newLoaded(t, &fakeBackend{items: []entity.Empresa{acme()}})

	view := m.View()
	assert.Contains(t, view, "Seleccione una Empresa")
	assert.Contains(t, view, "Crear Empresa")
	assert.Contains(t, view, "Acme")
	assert.Contains(t, view, "Acme SA")
	assert.False(t, m.Screen().IsOpen())
}

func TestEmpresaList_EditOpensPrefilledWithCuilLocked(t *testing.T) {
	m := newLoaded(t, &fakeBackend{items: []entity.Empresa{acme()}})

	m.Update(key("e"))

	require.True(t, m.Screen().IsOpen())
	assert.Equal(t, editor.ModeEdit, m.Screen().Mode())
	assert.Equal(t, acme(), m.Screen().Draft().Empresa)
	view := m.View()
	assert.Contains(t, view, "Editar Empresa")
	assert.Contains(t, view, "Cuil (bloqueado)")
	assert.Contains(t, view, "123")
}

func TestEmpresaList_CreateFlow(t *testing.T) {
	be := &fakeBackend{items: []entity.Empresa{acme()}}
	m := newLoaded(t, be)

	m.Update(key("n"))
	require.True(t, m.Screen().IsOpen())
	assert.Contains(t, m.View(), "Crear Empresa")

	typeText(m, "Beta")
	m.Update(key("tab"))
	typeText(m, "Beta SRL")
	m.Update(key("tab"))
	typeText(m, "27")

	_, cmd := m.Update(key("enter"))
	assert.False(t, m.Screen().IsOpen())
	run(t, m, cmd)

	require.Len(t, be.creates, 1)
	assert.Empty(t, be.updates)
	assert.Equal(t, entity.Empresa{Nombre: "Beta", RazonSocial: "Beta SRL", Cuil: 27}, be.creates[0])
	require.Len(t, m.Screen().Items(), 2)
	assert.Equal(t, "Beta", m.Screen().Items()[1].Nombre)
	assert.NoError(t, m.Screen().Err())
}

func TestEmpresaList_EditSavesUpdate(t *testing.T) {
	be := &fakeBackend{items: []entity.Empresa{acme()}}
	m := newLoaded(t, be)

	m.Update(key("e"))
	m.Update(key("ctrl+u"))
	typeText(m, "Acme Global")
	_, cmd := m.Update(key("ctrl+s"))
	run(t, m, cmd)

	assert.Empty(t, be.creates)
	require.Len(t, be.updates, 1)
	assert.Equal(t, int64(1), be.updates[0].ID)
	assert.Equal(t, "Acme Global", be.updates[0].Nombre)
	assert.Equal(t, int64(123), be.updates[0].Cuil)
	assert.Equal(t, "Acme Global", m.Screen().Items()[0].Nombre)
}

func TestEmpresaList_EscDiscardsDraft(t *testing.T) {
	be := &fakeBackend{items: []entity.Empresa{acme()}}
	m := newLoaded(t, be)

	m.Update(key("e"))
	typeText(m, "zzz")
	m.Update(key("esc"))

	assert.False(t, m.Screen().IsOpen())
	assert.Empty(t, be.updates)
	assert.Equal(t, "Acme", m.Screen().Items()[0].Nombre)

	m.Update(key("n"))
	assert.Equal(t, editor.EmptyDraft(), m.Screen().Draft())
}

func TestEmpresaList_CuilRejectsLetters(t *testing.T) {
	m := newLoaded(t, &fakeBackend{})

	m.Update(key("n"))
	m.Update(key("tab"))
	m.Update(key("tab"))
	typeText(m, "12x")

	assert.Equal(t, int64(12), m.Screen().Draft().Cuil)
	assert.Contains(t, m.View(), "numérico")
}

func TestEmpresaList_SaveErrorShown(t *testing.T) {
	be := &fakeBackend{items: []entity.Empresa{acme()}, saveErr: errors.New("boom")}
	m := newLoaded(t, be)

	m.Update(key("n"))
	_, cmd := m.Update(key("ctrl+s"))
	run(t, m, cmd)

	require.Error(t, m.Screen().Err())
	assert.Contains(t, m.View(), "boom")
	assert.Len(t, m.Screen().Items(), 1)
}

func TestEmpresaList_CursorMoves(t *testing.T) {
	be := &fakeBackend{items: []entity.Empresa{acme(), {ID: 2, Nombre: "Beta"}}}
	m := newLoaded(t, be)

	m.Update(key("l"))
	assert.Equal(t, 1, m.Cursor())
	m.Update(key("l"))
	assert.Equal(t, 1, m.Cursor())
	m.Update(key("h"))
	assert.Equal(t, 0, m.Cursor())
}

func TestApp_NavigatesToSucursalesAndBack(t *testing.T) {
	be := &fakeBackend{
		items: []entity.Empresa{acme()},
		sucursales: map[int64][]entity.Sucursal{
			1: {{ID: 7, Nombre: "Casa Central", Domicilio: "San Martín 100", EmpresaID: 1}},
		},
	}
	app := NewApp(context.Background(), be, zerolog.Nop())
	run(t, app, app.Init())

	_, cmd := app.Update(key("s"))
	msg := cmd()
	require.Equal(t, NavigateMsg{Route: "/empresa/1"}, msg)

	_, cmd = app.Update(msg)
	suc, ok := app.Current().(*SucursalListModel)
	require.True(t, ok)
	run(t, app, cmd)
	require.Len(t, suc.Items(), 1)
	assert.True(t, strings.Contains(app.View(), "Casa Central"))

	_, cmd = app.Update(key("esc"))
	run(t, app, cmd)
	_, ok = app.Current().(*EmpresaListModel)
	assert.True(t, ok)
}

func TestApp_IgnoresUnknownRoute(t *testing.T) {
	app := NewApp(context.Background(), &fakeBackend{}, zerolog.Nop())
	app.Update(NavigateMsg{Route: "/otra"})
	_, ok := app.Current().(*EmpresaListModel)
	assert.True(t, ok)
}
