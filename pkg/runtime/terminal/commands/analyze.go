package commands

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/paylens/fee-insights/pkg/models/domain"
	"github.com/paylens/fee-insights/pkg/services/datasource"
	"github.com/paylens/fee-insights/pkg/services/report"

	"github.com/spf13/cobra"
)

// ReportHandler renders a finished report document.
type ReportHandler interface {
	Handle(report *domain.Report) error
}

type AnalyzeCmd struct {
	source     string
	configPath string
	section    string
	plain      bool
	registry   datasource.Registry
	table      ReportHandler
	console    ReportHandler
}

func NewAnalyzeCmd(registry datasource.Registry, table, console ReportHandler) *cobra.Command {
	ac := &AnalyzeCmd{registry: registry, table: table, console: console}
	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Analyze scheme fee invoices",
		RunE:  ac.run,
	}

	cmd.Flags().StringVar(&ac.source, "source", "sample", "Data source to analyze (e.g., sample, store)")
	cmd.Flags().StringVar(&ac.configPath, "config", "", "Path to the configuration file")
	cmd.Flags().StringVar(&ac.section, "section", "", "Only show sections whose title contains this text")
	cmd.Flags().BoolVar(&ac.plain, "plain", false, "Plain text output instead of tables")

	return cmd
}

func (ac *AnalyzeCmd) run(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(cmd.Context(), 60*time.Second)
	defer cancel()

	provider, err := ac.registry.Create(ac.source, ac.configPath)
	if err != nil {
		return fmt.Errorf("failed to create a provider for source %q: %w", ac.source, err)
	}

	records, err := provider.ListInvoices(ctx)
	if err != nil {
		return fmt.Errorf("failed to load invoice records: %w", err)
	}

	rep := report.BuildDashboardReport(records, time.Now())
	if ac.section != "" {
		rep = filterSections(rep, ac.section)
		if len(rep.Sections) == 0 {
			return fmt.Errorf("no report section matches %q", ac.section)
		}
	}

	if ac.plain {
		return ac.console.Handle(rep)
	}
	return ac.table.Handle(rep)
}

func filterSections(rep *domain.Report, match string) *domain.Report {
	filtered := *rep
	filtered.Sections = nil
	for _, section := range rep.Sections {
		if strings.Contains(strings.ToLower(section.Title), strings.ToLower(match)) {
			filtered.Sections = append(filtered.Sections, section)
		}
	}
	return &filtered
}
