package main

import (
	"io"
	"os"

	"github.com/dgallion1/slidegest/internal/render"
	"github.com/spf13/cobra"
)

func previewCmd() *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "preview <deck.md>",
		Short: "Render an HTML preview of the deck",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}

			var w io.Writer = cmd.OutOrStdout()
			if out != "" {
				f, err := os.Create(out)
				if err != nil {
					return err
				}
				defer f.Close()
				w = f
			}
			return render.Preview(string(data), w)
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "", "output file (default: stdout)")
	return cmd
}
