// Package cleanup implements the `cleanup` CLI command.
package cleanup

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/jmbbc/bc-visitor-dashboard/internal/infrastructure/config"
	"github.com/jmbbc/bc-visitor-dashboard/internal/infrastructure/database"
	"github.com/jmbbc/bc-visitor-dashboard/internal/infrastructure/repository"
	"github.com/jmbbc/bc-visitor-dashboard/internal/shared/biztime"
	"github.com/jmbbc/bc-visitor-dashboard/internal/shared/logger"
)

var (
	env    string
	maxAge time.Duration
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cleanup",
		Short: "Prune stale dedupe keys",
		Long:  `Delete dedupe keys older than the dedup window. Stale keys are harmless (they are overwritten on the next matching submission) but accumulate; run this periodically to keep the table small.`,
		RunE:  run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")
	cmd.Flags().DurationVar(&maxAge, "max-age", 0, "Delete keys older than this (default: the configured dedup window)")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger, cfg.Server.Mode); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer logger.Sync()

	if err := database.Init(&cfg.Database); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer database.Close()

	age := maxAge
	if age <= 0 {
		age = time.Duration(cfg.Engine.DedupeWindowMinutes) * time.Minute
	}
	cutoff := biztime.NowUTC().Add(-age)

	dedupeRepo := repository.NewDedupeKeyRepository(database.Get())
	deleted, err := dedupeRepo.DeleteOlderThan(context.Background(), cutoff)
	if err != nil {
		return fmt.Errorf("failed to prune dedupe keys: %w", err)
	}

	logger.Info("stale dedupe keys pruned",
		"deleted", deleted,
		"cutoff", cutoff.Format(time.RFC3339))
	fmt.Printf("Pruned %d dedupe keys older than %s\n", deleted, age)

	return nil
}
