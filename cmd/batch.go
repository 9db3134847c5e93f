package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"timesheet-bot/internal/model"
)

var batchWorkers int

func newBatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "batch <path>...",
		Short: "Разобрать несколько табелей параллельно и вывести массив отчётов",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runBatch,
	}
	cmd.Flags().IntVarP(&batchWorkers, "workers", "w", 0, "parallel documents (default: WORKERS from env)")
	return cmd
}

// runBatch печатает успешные отчёты в порядке аргументов; упавшие документы
// перечисляются в stderr, и команда завершается с ошибкой.
func runBatch(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	workers := cfg.Workers
	if batchWorkers > 0 {
		workers = batchWorkers
	}
	svc, pool := newTimesheetService(cfg, workers)
	defer pool.Close()

	results := svc.ParseBatch(cmd.Context(), args)
	reports := make([]model.Report, 0, len(results))
	failed := 0
	for _, res := range results {
		if res.Err != nil {
			failed++
			logger.Error("документ не разобран", zap.String("path", res.Path), zap.Error(res.Err))
			fmt.Fprintf(cmd.ErrOrStderr(), "%s: %v\n", res.Path, res.Err)
			continue
		}
		reports = append(reports, res.Report)
	}
	if err := writeReport(cmd.OutOrStdout(), "json", reports); err != nil {
		return err
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d documents failed", failed, len(results))
	}
	return nil
}
