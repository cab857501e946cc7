package cmd

import (
	"github.com/spf13/cobra"

	"github.com/DhavalSuthar-24/eplradar/config"
	"github.com/DhavalSuthar-24/eplradar/internal/database"
)

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, _, err := bootstrap()
			if err != nil {
				return err
			}
			db, err := config.ConnectDB(cfg)
			if err != nil {
				return err
			}
			defer database.Close(db)
			return database.Migrate(cmd.Context(), db)
		},
	}
}
