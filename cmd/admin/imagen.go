package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jhoicas/empresas-admin/internal/application/ports"
)

func newImagenCmd(e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "imagen",
		Short: "Subir y eliminar imágenes",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "upload <archivo>...",
			Short: "Sube uno o más archivos en una sola petición",
			Args:  cobra.MinimumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				files := make([]ports.UploadFile, 0, len(args))
				for _, path := range args {
					f, err := os.Open(path)
					if err != nil {
						return fmt.Errorf("abrir %s: %w", path, err)
					}
					defer f.Close()
					files = append(files, ports.UploadFile{Name: filepath.Base(path), Content: f})
				}
				imgs, err := e.client.Upload(cmd.Context(), files...)
				if err != nil {
					e.log.Error().Err(err).Int("archivos", len(files)).Msg("subir imágenes")
					return err
				}
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(imgs)
			},
		},
		&cobra.Command{
			Use:   "delete <publicId> <id>",
			Short: "Elimina una imagen por publicId e id",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				body, err := e.client.Delete(cmd.Context(), args[0], args[1])
				if err != nil {
					e.log.Error().Err(err).Str("public_id", args[0]).Msg("eliminar imagen")
					return err
				}
				_, err = fmt.Fprintln(cmd.OutOrStdout(), string(body))
				return err
			},
		},
	)
	return cmd
}
