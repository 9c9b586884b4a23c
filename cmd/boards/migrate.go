package main

import (
	"github.com/spf13/cobra"

	"github.com/heartmarshall/boards-backend/internal/app"
)

func migrateCmd(load configLoader) *cobra.Command {
	return &cobra.Command{
		Use:       "migrate up|down|status",
		Short:     "Apply, roll back or list schema migrations",
		Long:      "up applies every pending migration, down rolls back the latest one, status lists them all.",
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{app.MigrateUp, app.MigrateDown, app.MigrateStatus},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := load()
			if err != nil {
				return err
			}
			return app.Migrate(cmd.Context(), cfg.Database, args[0], cmd.OutOrStdout())
		},
	}
}
