package main

import (
	"fmt"
	"os"

	"github.com/de-tools/bug-trends/pkg/runtime/terminal"
	"github.com/de-tools/bug-trends/pkg/services/trend"
)

func main() {
	cli := terminal.NewCLI(terminal.Options{
		Registry:  trend.DefaultRegistry(),
		Output:    os.Stdout,
		ErrOutput: os.Stderr,
	})

	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
