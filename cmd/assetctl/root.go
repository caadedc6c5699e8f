package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/jhoicas/Activos-api/pkg/config"
	"github.com/jhoicas/Activos-api/pkg/logger"
)

// app estado compartido por los subcomandos; lo llena PersistentPreRunE.
type app struct {
	cfg *config.Config
	log zerolog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}
	var logLevel string

	root := &cobra.Command{
		Use:   "assetctl",
		Short: "Operación del ledger de activos",
		Long: "assetctl administra el ledger de activos fijos.\n\n" +
			"Aplica migraciones, simula cronogramas de depreciación sin tocar la base\n" +
			"y emite tokens JWT para la API.",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if logLevel == "" {
				logLevel = cfg.Log.Level
			}
			a.cfg = cfg
			a.log = logger.New(logger.Config{Env: "production", Level: logLevel, App: "assetctl", Out: os.Stderr}).Zerolog()
			return nil
		},
	}
	root.PersistentFlags().StringVar(&logLevel, "log-level", "", "nivel de log (por defecto LOG_LEVEL)")

	root.AddCommand(newMigrateCmd(a))
	root.AddCommand(newScheduleCmd(a))
	root.AddCommand(newTokenCmd(a))
	return root
}
