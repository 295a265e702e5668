package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dgallion1/slidegest/internal/deck"
	"github.com/dgallion1/slidegest/internal/parser"
	"github.com/spf13/cobra"
)

var (
	deckStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15")).Background(lipgloss.Color("61")).Padding(0, 1)
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	sectionStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214"))
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

func inspectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect <deck.md>",
		Short: "Print the parsed deck outline",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			d := parser.Parse(string(data))

			out := cmd.OutOrStdout()
			heading := d.Meta.Title
			if heading == "" {
				heading = args[0]
			}
			fmt.Fprintln(out, deckStyle.Render(heading))
			if d.Meta.Subtitle != "" {
				fmt.Fprintln(out, dimStyle.Render(d.Meta.Subtitle))
			}
			fmt.Fprintln(out)

			for i, s := range d.Slides {
				switch v := s.(type) {
				case deck.TitleSlide:
					fmt.Fprintf(out, "%2d  %s %s\n", i+1, titleStyle.Render(v.Title), dimStyle.Render(v.Subtitle))
				case deck.SectionSlide:
					label := fmt.Sprintf("SECTION %s: %s", v.Number, v.Name)
					if v.SlideCount != nil {
						label = fmt.Sprintf("%s (%d slides)", label, *v.SlideCount)
					}
					fmt.Fprintf(out, "%2d  %s\n", i+1, sectionStyle.Render(label))
				case deck.ContentSlide:
					fmt.Fprintf(out, "%2d  %s %s\n", i+1, v.Title, dimStyle.Render(summarizeBody(v.Body)))
				}
			}
			if len(d.Slides) == 0 {
				fmt.Fprintln(out, dimStyle.Render("no slides (document has no --- separators)"))
			}
			return nil
		},
	}
	return cmd
}

// summarizeBody counts a content slide's elements by kind, e.g.
// "2 paragraphs, 1 list, 1 table".
func summarizeBody(body []deck.Element) string {
	var paras, lists, tables, images int
	for _, e := range body {
		switch e.ElementKind() {
		case deck.KindParagraph:
			paras++
		case deck.KindBulletList, deck.KindNumberedList:
			lists++
		case deck.KindTable:
			tables++
		case deck.KindImagePlaceholder:
			images++
		}
	}

	var parts []string
	add := func(n int, singular string) {
		if n == 1 {
			parts = append(parts, fmt.Sprintf("1 %s", singular))
		} else if n > 1 {
			parts = append(parts, fmt.Sprintf("%d %ss", n, singular))
		}
	}
	add(paras, "paragraph")
	add(lists, "list")
	add(tables, "table")
	add(images, "image")
	if len(parts) == 0 {
		return "(empty)"
	}
	return "(" + strings.Join(parts, ", ") + ")"
}
