package main

import (
	"fmt"
	"os"

	"github.com/paylens/fee-insights/pkg/runtime/terminal"
	"github.com/paylens/fee-insights/pkg/services/datasource"
)

func main() {
	cli := terminal.NewCLI(terminal.Options{
		Registry: datasource.NewDefaultRegistry(),
		Output:   os.Stdout,
	})

	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
