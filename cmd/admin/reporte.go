package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jhoicas/empresas-admin/internal/infrastructure/pdf"
)

func newReporteCmd(e *env) *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "reporte",
		Short: "Genera un PDF con el listado de empresas",
		RunE: func(cmd *cobra.Command, _ []string) error {
			empresas, err := e.client.ListEmpresas(cmd.Context())
			if err != nil {
				return err
			}
			b, err := pdf.NewEmpresaReport().Generate(cmd.Context(), empresas)
			if err != nil {
				return err
			}
			if err := os.WriteFile(out, b, 0o644); err != nil {
				return fmt.Errorf("escribir %s: %w", out, err)
			}
			e.log.Info().Int("empresas", len(empresas)).Str("archivo", out).Msg("reporte generado")
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "reporte con %d empresas en %s\n", len(empresas), out)
			return err
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "empresas.pdf", "archivo de salida")
	return cmd
}
