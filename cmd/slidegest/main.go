package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	root := &cobra.Command{
		Use:   "slidegest",
		Short: "Convert slide-deck markdown into structured presentations",
	}

	root.AddCommand(convertCmd())
	root.AddCommand(inspectCmd())
	root.AddCommand(previewCmd())
	root.AddCommand(serveCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
