package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/dgallion1/slidegest/internal/parser"
	"github.com/dgallion1/slidegest/internal/render"
	"github.com/spf13/cobra"
)

func convertCmd() *cobra.Command {
	var out string
	var format string
	var workers int
	var verbose bool

	cmd := &cobra.Command{
		Use:   "convert <deck.md>",
		Short: "Convert a markdown deck to json, docx or html",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log := slog.New(slog.NewTextHandler(io.Discard, nil))
			if verbose {
				log = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), nil))
			}

			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}

			cfg := parser.DefaultConfig()
			if workers > 0 {
				cfg.Workers = workers
			}
			start := time.Now()
			d := parser.ParseWith(string(data), cfg)
			log.Info("parsed deck",
				"input", args[0],
				"slides", len(d.Slides),
				"workers", cfg.Workers,
				"duration_ms", time.Since(start).Milliseconds(),
			)

			if out == "" {
				out = strings.TrimSuffix(args[0], filepath.Ext(args[0])) + render.Ext(format)
			}
			f, err := os.Create(out)
			if err != nil {
				return err
			}
			defer f.Close()

			if strings.EqualFold(format, "html") {
				err = render.Preview(string(data), f)
			} else {
				var rend render.Renderer
				rend, err = render.ForFormat(format)
				if err == nil {
					err = rend.Render(d, f)
				}
			}
			if err != nil {
				return err
			}
			log.Info("wrote output", "path", out, "format", format)

			fmt.Fprintf(cmd.OutOrStdout(), "Created: %s\n", out)
			fmt.Fprintf(cmd.OutOrStdout(), "Slides: %d\n", len(d.Slides))
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "", "output file (default: input name with the format's extension)")
	cmd.Flags().StringVar(&format, "format", "json", "output format: json|docx|html")
	cmd.Flags().IntVar(&workers, "parallel", 0, "parse blocks with N workers (default: sequential)")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log parse and render details to stderr")
	return cmd
}
