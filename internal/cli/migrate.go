package cli

import (
	"context"
	"time"

	"github.com/deppfellow/go-posts/internal/config"
	"github.com/deppfellow/go-posts/internal/database"
	"github.com/spf13/cobra"
)

const migrateTimeout = 2 * time.Minute

func newMigrateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply the embedded database migrations",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, loggerService, log, err := bootstrap()
			if err != nil {
				return err
			}
			defer loggerService.Shutdown()

			if cfg.Storage.Driver != config.StorageDriverPostgres {
				log.Info().Str("storage", cfg.Storage.Driver).Msg("nothing to migrate")
				return nil
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), migrateTimeout)
			defer cancel()

			return database.Migrate(ctx, &log, cfg)
		},
	}
}
