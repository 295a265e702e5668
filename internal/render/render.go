package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/dgallion1/slidegest/internal/deck"
)

// Renderer serializes a parsed deck into one output artifact. Renderers
// must emit slides in deck order.
type Renderer interface {
	Render(d *deck.Deck, w io.Writer) error
}

// SupportedFormats lists the output formats ForFormat accepts.
var SupportedFormats = []string{"json", "docx"}

// ForFormat returns the renderer for an output format name.
func ForFormat(format string) (Renderer, error) {
	switch strings.ToLower(format) {
	case "json":
		return &JSONRenderer{}, nil
	case "docx":
		return &DocxRenderer{}, nil
	default:
		return nil, fmt.Errorf("unsupported output format: %s", format)
	}
}

// Ext returns the file extension for a format, including the HTML
// preview which is produced by Preview rather than a Renderer.
func Ext(format string) string {
	switch strings.ToLower(format) {
	case "docx":
		return ".docx"
	case "html":
		return ".html"
	default:
		return ".json"
	}
}
