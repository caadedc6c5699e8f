package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jhoicas/Activos-api/pkg/jwt"
)

func newTokenCmd(a *app) *cobra.Command {
	var (
		user    string
		role    string
		minutes int
	)
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Emite un JWT firmado con JWT_SECRET",
		RunE: func(cmd *cobra.Command, args []string) error {
			if role != jwt.RoleAdmin && role != jwt.RoleAuditor {
				return fmt.Errorf("rol inválido %q: use %s o %s", role, jwt.RoleAdmin, jwt.RoleAuditor)
			}
			if minutes <= 0 {
				minutes = a.cfg.JWT.Expiration
			}
			tok, err := jwt.Generate(a.cfg.JWT.Secret, user, role, a.cfg.JWT.Issuer, minutes)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), tok)
			return nil
		},
	}
	cmd.Flags().StringVar(&user, "user", "", "usuario que firmará las operaciones (performed_by)")
	cmd.Flags().StringVar(&role, "role", jwt.RoleAdmin, "admin | auditor")
	cmd.Flags().IntVar(&minutes, "minutes", 0, "vigencia en minutos (por defecto JWT_EXPIRATION_MINUTES)")
	_ = cmd.MarkFlagRequired("user")
	return cmd
}
