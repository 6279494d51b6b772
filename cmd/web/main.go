package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"finitefield.org/lumen-web/internal/config"
	"finitefield.org/lumen-web/internal/observability"
)

// app carries what every subcommand needs once the root command has run.
type app struct {
	envFile string
	cfg     config.Config
	logger  *zap.Logger
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:           "web",
		Short:         "lumen storefront landing page",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init()
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}
	root.PersistentFlags().StringVar(&a.envFile, "env-file", ".env", "dotenv file with local overrides (empty disables)")
	root.AddCommand(newServeCmd(a), newBuildCmd(a))
	return root
}

func (a *app) init() error {
	cfg, err := config.Load(config.WithEnvFile(a.envFile))
	if err != nil {
		return err
	}
	logger, err := observability.NewLogger(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	a.cfg = cfg
	a.logger = logger.With(zap.String("env", cfg.Environment))
	return nil
}
