package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jhoicas/Activos-api/internal/infrastructure/postgres"
	"github.com/jhoicas/Activos-api/internal/infrastructure/sqlite"
	"github.com/jhoicas/Activos-api/pkg/config"
)

func newMigrateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:       "migrate [up|down]",
		Short:     "Aplica o revierte las migraciones del esquema",
		Long:      "En postgres ejecuta las migraciones embebidas (golang-migrate).\nEn sqlite el esquema se aplica al abrir el archivo; down no está soportado.",
		Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{postgres.MigrateUp, postgres.MigrateDown},
		RunE: func(cmd *cobra.Command, args []string) error {
			direction := postgres.MigrateUp
			if len(args) == 1 {
				direction = args[0]
			}

			if a.cfg.Store.Driver == config.DriverSQLite {
				if direction != postgres.MigrateUp {
					return fmt.Errorf("sqlite: solo se admite migrate up")
				}
				store, err := sqlite.Open(a.cfg.Store.SQLitePath)
				if err != nil {
					return err
				}
				defer store.Close()
				fmt.Fprintf(cmd.OutOrStdout(), "esquema sqlite al día en %s\n", a.cfg.Store.SQLitePath)
				return nil
			}

			version, err := postgres.Migrate(a.cfg.DB.ConnectionString(), direction, a.log)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "migración %s completada, versión %d\n", direction, version)
			return nil
		},
	}
}
