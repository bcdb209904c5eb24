package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"blog-api/internal/config"
	"blog-api/internal/logger"
)

var cfgFile string

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "blog-api",
		Short:         "Blog backend: accounts, articles and comments over HTTP",
		SilenceUsage:  true,
		SilenceErrors: true,
		// running without a subcommand serves
		RunE: runServe,
	}
	root.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default ./blog-api.yaml)")

	root.AddCommand(newServeCmd(), newMigrateCmd(), newSeedCmd())
	return root
}

// loadConfig reads configuration and sets up logging for every subcommand.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, err
	}
	logger.Configure(os.Stdout, cfg.LogLevel)
	return cfg, nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		logger.Fatal("Command failed", slog.String("error", err.Error()))
	}
}
