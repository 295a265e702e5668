package render

import (
	"fmt"
	"html"
	"io"
	"strings"

	"github.com/dgallion1/slidegest/internal/parser"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

const previewStyle = `body{font-family:sans-serif;background:#e8e8e8;margin:0;padding:2rem}
section.slide{background:#fff;max-width:52rem;margin:0 auto 2rem;padding:2rem;box-shadow:0 1px 4px rgba(0,0,0,.25)}
table{border-collapse:collapse}
td,th{border:1px solid #aab7b8;padding:.25rem .6rem}`

// Preview renders deck markdown into a standalone HTML page, one
// <section> per slide, using goldmark. The preview works from the raw
// slide text, so it is lower fidelity than the typed model: it exists
// for quickly eyeballing a deck in a browser, not as an output contract.
func Preview(text string, w io.Writer) error {
	d := parser.Parse(text)
	blocks := parser.Segment(text)

	md := goldmark.New(goldmark.WithExtensions(extension.GFM))

	title := d.Meta.Title
	if title == "" {
		title = "Deck preview"
	}
	_, err := fmt.Fprintf(w, "<!doctype html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n<title>%s</title>\n<style>%s</style>\n</head>\n<body>\n",
		html.EscapeString(title), previewStyle)
	if err != nil {
		return err
	}

	for _, b := range blocks {
		if _, err := fmt.Fprintf(w, "<section class=\"slide\" id=\"slide-%d\">\n", b.Index+1); err != nil {
			return err
		}
		src := strings.Join(b.Lines, "\n")
		if err := md.Convert([]byte(src), w); err != nil {
			return fmt.Errorf("render slide %d: %w", b.Index+1, err)
		}
		if _, err := io.WriteString(w, "</section>\n"); err != nil {
			return err
		}
	}

	_, err = io.WriteString(w, "</body>\n</html>\n")
	return err
}
