// Package editor contiene el estado de la pantalla de listado y edición de empresas:
// la lista traída del backend, el draft del modal y el estado abierto/cerrado.
// No hace I/O por su cuenta más allá del gateway inyectado y no conoce la capa de presentación.
package editor

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/jhoicas/empresas-admin/internal/application/ports"
	"github.com/jhoicas/empresas-admin/internal/domain/entity"
)

// SucursalesRoutePrefix ruta de la pantalla de sucursales de una empresa.
const SucursalesRoutePrefix = "/empresa/"

// Modal estado del diálogo de alta/edición.
type Modal int

const (
	ModalClosed Modal = iota
	ModalOpen
)

// Mode sub-estado del modal abierto; depende solo de draft.ID.
type Mode int

const (
	ModeCreate Mode = iota
	ModeEdit
)

// Navigator recibe las rutas a las que la pantalla quiere navegar.
type Navigator interface {
	Navigate(route string)
}

// NavigatorFunc adapta una función a Navigator.
type NavigatorFunc func(route string)

// Navigate implementa Navigator.
func (f NavigatorFunc) Navigate(route string) { f(route) }

// Option configura un Screen.
type Option func(*Screen)

// WithNavigator inyecta el destino de la navegación a sucursales.
func WithNavigator(nav Navigator) Option {
	return func(s *Screen) { s.nav = nav }
}

// WithLogger inyecta el logger de la pantalla.
func WithLogger(l zerolog.Logger) Option {
	return func(s *Screen) { s.log = l }
}

// Screen estado de la pantalla de empresas.
type Screen struct {
	gw    ports.EmpresaGateway
	nav   Navigator
	log   zerolog.Logger
	items []entity.Empresa
	draft Draft
	modal Modal
	err   error
}

// New construye la pantalla con el modal cerrado y la lista vacía.
func New(gw ports.EmpresaGateway, opts ...Option) *Screen {
	s := &Screen{
		gw:    gw,
		log:   zerolog.Nop(),
		draft: EmptyDraft(),
		modal: ModalClosed,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Items devuelve las empresas en el orden en que las devolvió el backend.
func (s *Screen) Items() []entity.Empresa { return s.items }

// Draft devuelve el draft actual del modal.
func (s *Screen) Draft() Draft { return s.draft }

// Modal devuelve el estado del diálogo.
func (s *Screen) Modal() Modal { return s.modal }

// IsOpen informa si el modal está abierto.
func (s *Screen) IsOpen() bool { return s.modal == ModalOpen }

// Err devuelve el último error de carga o guardado (nil si no hubo).
func (s *Screen) Err() error { return s.err }

// Mode devuelve si el modal está en alta o en edición.
func (s *Screen) Mode() Mode {
	if s.draft.IsNew() {
		return ModeCreate
	}
	return ModeEdit
}

// Title título del modal según el modo.
func (s *Screen) Title() string {
	if s.Mode() == ModeEdit {
		return "Editar Empresa"
	}
	return "Crear Empresa"
}

// Load trae todas las empresas del backend. Si falla, la lista queda vacía y el error
// queda disponible en Err.
func (s *Screen) Load(ctx context.Context) error {
	items, err := s.gw.ListEmpresas(ctx)
	s.SetItems(items, err)
	return err
}

// SetItems aplica el resultado de un listado hecho fuera de la pantalla (p. ej. en un tea.Cmd).
func (s *Screen) SetItems(items []entity.Empresa, err error) {
	if err != nil {
		s.log.Warn().Err(err).Msg("listar empresas")
		s.items = nil
		s.err = err
		return
	}
	s.items = items
	s.err = nil
}

// SetErr registra un error para mostrarlo en la pantalla.
func (s *Screen) SetErr(err error) { s.err = err }

// OpenNew abre el modal de alta con el draft vacío, sin importar el draft anterior.
func (s *Screen) OpenNew() {
	s.draft = EmptyDraft()
	s.modal = ModalOpen
}

// OpenEdit abre el modal con una copia de la empresa seleccionada.
func (s *Screen) OpenEdit(e entity.Empresa) {
	s.draft = DraftFrom(e)
	s.modal = ModalOpen
}

// Close cierra el modal y descarta el draft.
func (s *Screen) Close() {
	s.modal = ModalClosed
	s.draft = EmptyDraft()
}

// Change aplica al draft el valor de un campo. Si devuelve error el draft no cambia.
func (s *Screen) Change(field, value string) error {
	d, err := s.draft.With(field, value)
	if err != nil {
		return fmt.Errorf("campo %q: %w", field, err)
	}
	s.draft = d
	return nil
}

// BeginSave toma una copia del draft y cierra el modal. Pensado para quien despacha
// el guardado de forma asíncrona con Dispatch y luego recarga con SetItems.
func (s *Screen) BeginSave() Draft {
	d := s.draft
	s.Close()
	return d
}

// Save guarda el draft (alta o edición según su ID), cierra el modal y recarga la lista
// completa desde el backend. Devuelve el error del guardado si lo hubo; si no, el de la recarga.
func (s *Screen) Save(ctx context.Context) error {
	d := s.BeginSave()
	saveErr := Dispatch(ctx, s.gw, d, s.log)
	loadErr := s.Load(ctx)
	if saveErr != nil {
		s.err = saveErr
		return saveErr
	}
	return loadErr
}

// Dispatch ejecuta el alta (ID == 0) o la edición (ID > 0) del draft. Nunca ambas.
func Dispatch(ctx context.Context, gw ports.EmpresaGateway, d Draft, log zerolog.Logger) error {
	if d.ID > 0 {
		log.Info().Int64("id", d.ID).Str("nombre", d.Nombre).Msg("guardando empresa")
		if _, err := gw.UpdateEmpresa(ctx, d.Empresa); err != nil {
			log.Error().Err(err).Int64("id", d.ID).Msg("actualizar empresa")
			return fmt.Errorf("actualizar empresa %d: %w", d.ID, err)
		}
		return nil
	}
	log.Info().Str("nombre", d.Nombre).Msg("creando nueva empresa")
	if _, err := gw.CreateEmpresa(ctx, d.Empresa); err != nil {
		log.Error().Err(err).Msg("crear empresa")
		return fmt.Errorf("crear empresa: %w", err)
	}
	return nil
}

// SucursalesRoute ruta de la pantalla de sucursales de la empresa.
func SucursalesRoute(id int64) string {
	return SucursalesRoutePrefix + strconv.FormatInt(id, 10)
}

// ParseSucursalesRoute extrae el ID de empresa de una ruta "/empresa/{id}".
func ParseSucursalesRoute(route string) (int64, bool) {
	if !strings.HasPrefix(route, SucursalesRoutePrefix) {
		return 0, false
	}
	id, err := strconv.ParseInt(strings.TrimPrefix(route, SucursalesRoutePrefix), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// ViewSucursales navega a las sucursales de la empresa.
func (s *Screen) ViewSucursales(id int64) {
	if s.nav == nil {
		return
	}
	s.nav.Navigate(SucursalesRoute(id))
}
