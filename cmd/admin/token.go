package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jhoicas/empresas-admin/pkg/jwt"
)

func newTokenCmd(e *env) *cobra.Command {
	var subject, role string
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Emite un token Bearer firmado con JWT_SECRET",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if e.cfg.JWT.Secret == "" {
				return errors.New("JWT_SECRET no configurado")
			}
			tok, err := jwt.Generate(e.cfg.JWT.Secret, subject, role, e.cfg.JWT.Issuer, e.cfg.JWT.Expiration)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), tok)
			return err
		},
	}
	cmd.Flags().StringVar(&subject, "subject", "admin", "sujeto del token")
	cmd.Flags().StringVar(&role, "role", "admin", "rol (admin u operador)")
	return cmd
}
