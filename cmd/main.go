package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"timesheet-bot/config"
	"timesheet-bot/internal/app/service"
	"timesheet-bot/internal/pdftext"
	"timesheet-bot/internal/timesheet"
	"timesheet-bot/pkg/workerpool"
)

var (
	verbose    bool
	configPath string

	logger *zap.Logger
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "timesheet",
		Short:        "Разбор табелей смен и расчёт зарплаты",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if logger != nil {
				return nil
			}
			cfg := zap.NewProductionConfig()
			if verbose {
				cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			}
			var err error
			logger, err = cfg.Build()
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logger != nil {
				_ = logger.Sync()
			}
		},
	}
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "TOML config file (overrides env)")

	rootCmd.AddCommand(newParseCmd())
	rootCmd.AddCommand(newBatchCmd())
	rootCmd.AddCommand(newBotCmd())
	return rootCmd
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	fc, err := config.LoadFile(configPath)
	if err != nil {
		return nil, err
	}
	if err := cfg.Apply(fc); err != nil {
		return nil, err
	}
	return cfg, nil
}

// newTimesheetService собирает разбор табелей. Пул закрывает вызывающий.
func newTimesheetService(cfg *config.Config, workers int) (*service.TimesheetService, *workerpool.WorkerPool) {
	pool := workerpool.NewWorkerPool(workers, cfg.QueueSize)
	svc := service.NewTimesheetService(
		pdftext.NewExtractor(pdftext.Config{Pdftotext: cfg.Pdftotext}, logger),
		timesheet.NewExtractor(cfg.Rates, logger),
		service.NewAsyncService(pool),
		logger,
	)
	return svc, pool
}
