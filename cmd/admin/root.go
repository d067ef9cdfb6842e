package main

import (
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/jhoicas/empresas-admin/internal/infrastructure/backend"
	"github.com/jhoicas/empresas-admin/internal/interfaces/tui"
	"github.com/jhoicas/empresas-admin/pkg/config"
	"github.com/jhoicas/empresas-admin/pkg/logger"
)

// env estado compartido por los subcomandos.
type env struct {
	cfg       *config.Config
	log       zerolog.Logger
	client    *backend.Client
	logCloser io.Closer
}

// close libera el archivo de log. Se puede llamar más de una vez.
func (e *env) close() {
	if e.logCloser != nil {
		_ = e.logCloser.Close()
		e.logCloser = nil
	}
}

func newRootCmd(e *env) *cobra.Command {
	var baseURL string

	root := &cobra.Command{
		Use:           "admin",
		Short:         "Administración de empresas",
		Long:          "Sin subcomando abre la pantalla de empresas en la terminal.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("cargar configuración: %w", err)
			}
			if baseURL != "" {
				cfg.Backend.BaseURL = baseURL
			}
			e.cfg = cfg
			return e.setup()
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			app := tui.NewApp(cmd.Context(), e.client, e.log)
			p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithContext(cmd.Context()))
			_, err := p.Run()
			return err
		},
	}
	root.PersistentFlags().StringVar(&baseURL, "backend", "", "URL base del backend (default BACKEND_URL)")

	root.AddCommand(
		newImagenCmd(e),
		newReporteCmd(e),
		newTokenCmd(e),
	)
	return root
}

// setup arma logger y cliente. Los logs van a LOG_FILE para no pisar la TUI.
func (e *env) setup() error {
	l, closer, err := logger.NewFile(logger.Config{
		Env:   e.cfg.App.Env,
		Level: e.cfg.Log.Level,
	}, e.cfg.Log.File)
	if err != nil {
		return err
	}
	e.logCloser = closer
	e.log = l.Component("admin")

	e.client = backend.NewClient(e.cfg.Backend.BaseURL,
		backend.WithToken(e.cfg.Backend.Token),
		backend.WithUploadPreset(e.cfg.Backend.UploadPreset),
	)
	e.log.Info().Str("backend", e.client.BaseURL()).Msg("cliente configurado")
	return nil
}
