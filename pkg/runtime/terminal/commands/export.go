package commands

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/paylens/fee-insights/pkg/models/domain"
	"github.com/paylens/fee-insights/pkg/runtime/terminal/export"
	"github.com/paylens/fee-insights/pkg/services/datasource"
	"github.com/paylens/fee-insights/pkg/services/report"

	"github.com/spf13/cobra"
)

type ExportCmd struct {
	source     string
	configPath string
	format     string
	output     string
	registry   datasource.Registry
}

func NewExportCmd(registry datasource.Registry) *cobra.Command {
	ec := &ExportCmd{registry: registry}
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the analytics report to a file",
		RunE:  ec.run,
	}

	cmd.Flags().StringVar(&ec.source, "source", "sample", "Data source to analyze (e.g., sample, store)")
	cmd.Flags().StringVar(&ec.configPath, "config", "", "Path to the configuration file")
	cmd.Flags().StringVar(&ec.format, "format", "json", "Export format: csv, json or pdf")
	cmd.Flags().StringVar(&ec.output, "output", "", "Output file path")

	_ = cmd.MarkFlagRequired("output")

	return cmd
}

func (ec *ExportCmd) run(cmd *cobra.Command, args []string) error {
	writeReport, err := writerFor(ec.format)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), 60*time.Second)
	defer cancel()

	provider, err := ec.registry.Create(ec.source, ec.configPath)
	if err != nil {
		return fmt.Errorf("failed to create a provider for source %q: %w", ec.source, err)
	}

	records, err := provider.ListInvoices(ctx)
	if err != nil {
		return fmt.Errorf("failed to load invoice records: %w", err)
	}

	file, err := os.Create(ec.output)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer file.Close()

	if err := writeReport(file, report.BuildDashboardReport(records, time.Now())); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Report written to %s\n", ec.output)
	return nil
}

func writerFor(format string) (func(io.Writer, *domain.Report) error, error) {
	switch format {
	case "csv":
		return export.WriteCSV, nil
	case "json":
		return export.WriteJSON, nil
	case "pdf":
		return export.WritePDF, nil
	default:
		return nil, fmt.Errorf("unsupported format %q. Supported formats: csv, json, pdf", format)
	}
}
