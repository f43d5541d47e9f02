// Command cleanup hard-deletes todos whose soft delete is older than the
// retention period. Their change records and comments go with them through
// the foreign key cascade. Run it from an external scheduler.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/spf13/cobra"

	"github.com/heartmarshall/taskflow-backend/internal/adapter/postgres"
	"github.com/heartmarshall/taskflow-backend/internal/adapter/postgres/todo"
	"github.com/heartmarshall/taskflow-backend/internal/app"
	"github.com/heartmarshall/taskflow-backend/internal/config"
)

func main() {
	var (
		retentionDays int
		timeout       time.Duration
	)

	cmd := &cobra.Command{
		Use:          "cleanup",
		Short:        "Purge soft-deleted todos past retention",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			if !cmd.Flags().Changed("retention-days") {
				retentionDays = cfg.Todo.PurgeRetentionDays
			}
			if retentionDays < 1 {
				return fmt.Errorf("retention-days must be at least 1, got %d", retentionDays)
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
			defer cancel()
			return purge(ctx, cfg, app.NewLogger(cfg.Log), clockwork.NewRealClock(), retentionDays)
		},
	}
	cmd.Flags().IntVar(&retentionDays, "retention-days", 0, "override todo.purge_retention_days")
	cmd.Flags().DurationVar(&timeout, "timeout", 5*time.Minute, "abort the purge after this long")

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func purge(ctx context.Context, cfg *config.Config, logger *slog.Logger, clock clockwork.Clock, retentionDays int) error {
	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		return err
	}
	defer pool.Close()

	threshold := clock.Now().UTC().AddDate(0, 0, -retentionDays)

	purged, err := todo.New(pool).PurgeDeleted(ctx, threshold)
	if err != nil {
		logger.Error("purge todos",
			slog.String("error", err.Error()),
			slog.Time("threshold", threshold),
		)
		return err
	}

	logger.Info("purged soft-deleted todos",
		slog.Int64("count", purged),
		slog.Time("threshold", threshold),
		slog.Int("retention_days", retentionDays),
	)
	return nil
}
