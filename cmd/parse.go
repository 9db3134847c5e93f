package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"timesheet-bot/internal/export"
)

var (
	parseFormat string
	parseXLSX   string
)

func newParseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "parse <path>",
		Short: "Разобрать табель (PDF или TXT) и вывести отчёт",
		Args:  cobra.ExactArgs(1),
		RunE:  runParse,
	}
	cmd.Flags().StringVarP(&parseFormat, "format", "f", "json", "output format: json|yaml")
	cmd.Flags().StringVar(&parseXLSX, "xlsx", "", "also write the report to this XLSX file")
	return cmd
}

func runParse(cmd *cobra.Command, args []string) error {
	if err := validateFormat(parseFormat); err != nil {
		return err
	}
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	svc, pool := newTimesheetService(cfg, 1)
	defer pool.Close()

	report, err := svc.ParseFile(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	if parseXLSX != "" {
		data, err := export.ReportXLSX(report)
		if err != nil {
			return err
		}
		if err := os.WriteFile(parseXLSX, data, 0o644); err != nil {
			return fmt.Errorf("write xlsx: %w", err)
		}
		logger.Info("xlsx записан", zap.String("path", parseXLSX))
	}
	return writeReport(cmd.OutOrStdout(), parseFormat, report)
}

func validateFormat(format string) error {
	switch format {
	case "json", "yaml":
		return nil
	}
	return fmt.Errorf("unknown format %q (want json or yaml)", format)
}

func writeReport(w io.Writer, format string, v any) error {
	switch format {
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		return enc.Encode(v)
	}
}
