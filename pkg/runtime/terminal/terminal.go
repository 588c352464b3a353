package terminal

import (
	"io"
	"os"

	"github.com/paylens/fee-insights/pkg/runtime/terminal/commands"
	"github.com/paylens/fee-insights/pkg/runtime/terminal/export"

	"github.com/paylens/fee-insights/pkg/services/datasource"
	"github.com/spf13/cobra"
)

// CLI represents the command-line interface
type CLI struct {
	registry datasource.Registry
	reporter *export.Reporter
	console  *Reporter
	rootCmd  *cobra.Command
}

// Options contain configuration for the CLI
type Options struct {
	Registry datasource.Registry
	Output   io.Writer
}

// NewCLI creates a new CLI instance
func NewCLI(opts Options) *CLI {
	if opts.Output == nil {
		opts.Output = os.Stdout
	}

	cli := &CLI{
		registry: opts.Registry,
		reporter: export.NewReporter(opts.Output),
		console:  NewReporter(opts.Output),
	}

	cli.rootCmd = cli.newRootCmd()
	return cli
}

func (cli *CLI) Execute() error {
	return cli.rootCmd.Execute()
}

func (cli *CLI) newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fees",
		Short: "Scheme fee analytics tool",
	}

	cmd.AddCommand(commands.NewAnalyzeCmd(cli.registry, cli.reporter, cli.console))
	cmd.AddCommand(commands.NewExportCmd(cli.registry))
	cmd.AddCommand(commands.NewSourcesCmd(cli.registry))

	return cmd
}
