package main

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"github.com/spf13/cobra"

	"blog-api/internal/infrastructure/database"
	"blog-api/internal/logger"
	"blog-api/internal/seed"
)

func newSeedCmd() *cobra.Command {
	var (
		reset    bool
		randSeed int64
	)

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Fill the database with demo users, articles and comments",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), 2*time.Minute)
			defer cancel()

			pool, err := database.NewPostgres(ctx, poolConfig(cfg))
			if err != nil {
				return fmt.Errorf("connect: %w", err)
			}
			defer pool.Close()

			if reset {
				if _, err := pool.Exec(ctx, "TRUNCATE comments, articles, users"); err != nil {
					return fmt.Errorf("reset: %w", err)
				}
				logger.Info("Cleared existing data")
			}

			deps, err := services(cfg, pool, nil)
			if err != nil {
				return err
			}

			if !cmd.Flags().Changed("rand-seed") {
				randSeed = time.Now().UnixNano()
			}
			logger.Info("Seeding", slog.Int64("rand_seed", randSeed))

			_, err = seed.Run(ctx, seed.Deps{
				Auth:     deps.Auth,
				Articles: deps.Articles,
				Comments: deps.Comments,
			}, rand.New(rand.NewSource(randSeed)))
			return err
		},
	}

	cmd.Flags().BoolVar(&reset, "reset", false, "delete all users, articles and comments first")
	cmd.Flags().Int64Var(&randSeed, "rand-seed", 0, "random seed for reproducible fixtures")
	return cmd
}
