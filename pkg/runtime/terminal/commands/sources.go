package commands

import (
	"fmt"
	"strings"

	"github.com/paylens/fee-insights/pkg/services/datasource"
	"github.com/spf13/cobra"
)

type SourcesCmd struct {
	registry datasource.Registry
}

func NewSourcesCmd(registry datasource.Registry) *cobra.Command {
	sc := &SourcesCmd{registry: registry}
	cmd := &cobra.Command{
		Use:   "sources",
		Short: "List registered data sources",
		RunE:  sc.run,
	}

	return cmd
}

func (sc *SourcesCmd) run(cmd *cobra.Command, args []string) error {
	sources := sc.registry.ListSources()
	if len(sources) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No data sources registered")
		return nil
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Registered data sources:\n%s\n",
		strings.Join(sources, "\n"))

	return nil
}
