package render

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/dgallion1/slidegest/internal/deck"
)

// JSONRenderer writes the deck as kind-tagged JSON. This is the default
// output format and the one the HTTP API serves.
type JSONRenderer struct{}

type jsonDeck struct {
	Meta   jsonMeta    `json:"meta"`
	Slides []jsonSlide `json:"slides"`
}

type jsonMeta struct {
	Title    string `json:"title,omitempty"`
	Subtitle string `json:"subtitle,omitempty"`
}

type jsonSlide struct {
	Kind deck.SlideKind `json:"kind"`

	// Title slide.
	Title    string `json:"title,omitempty"`
	Subtitle string `json:"subtitle,omitempty"`

	// Section slide.
	Number     string `json:"number,omitempty"`
	Name       string `json:"name,omitempty"`
	SlideCount *int   `json:"slide_count,omitempty"`

	// Content slide.
	Body []jsonElement `json:"body,omitempty"`
}

type jsonElement struct {
	Kind    deck.ElementKind `json:"kind"`
	Spans   []jsonSpan       `json:"spans,omitempty"`
	Items   []jsonItem       `json:"items,omitempty"`
	Header  []string         `json:"header,omitempty"`
	Rows    [][]string       `json:"rows,omitempty"`
	Caption string           `json:"caption,omitempty"`
}

type jsonItem struct {
	Spans []jsonSpan `json:"spans"`
	Depth int        `json:"depth"`
	// Checked is present only for checkbox items, so an unchecked box
	// still serializes as "checked": false.
	Checked *bool `json:"checked,omitempty"`
}

type jsonSpan struct {
	Kind deck.SpanKind `json:"kind"`
	Text string        `json:"text"`
}

func (r *JSONRenderer) Render(d *deck.Deck, w io.Writer) error {
	out := jsonDeck{
		Meta:   jsonMeta{Title: d.Meta.Title, Subtitle: d.Meta.Subtitle},
		Slides: make([]jsonSlide, 0, len(d.Slides)),
	}

	for _, s := range d.Slides {
		switch v := s.(type) {
		case deck.TitleSlide:
			out.Slides = append(out.Slides, jsonSlide{
				Kind:     v.Kind(),
				Title:    v.Title,
				Subtitle: v.Subtitle,
			})
		case deck.SectionSlide:
			out.Slides = append(out.Slides, jsonSlide{
				Kind:       v.Kind(),
				Number:     v.Number,
				Name:       v.Name,
				SlideCount: v.SlideCount,
			})
		case deck.ContentSlide:
			js := jsonSlide{Kind: v.Kind(), Title: v.Title}
			for _, e := range v.Body {
				je, err := jsonElementFor(e)
				if err != nil {
					return err
				}
				js.Body = append(js.Body, je)
			}
			out.Slides = append(out.Slides, js)
		default:
			return fmt.Errorf("unhandled slide kind %T", s)
		}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func jsonElementFor(e deck.Element) (jsonElement, error) {
	switch v := e.(type) {
	case deck.Paragraph:
		return jsonElement{Kind: v.ElementKind(), Spans: jsonSpans(v.Spans)}, nil
	case deck.BulletList:
		return jsonElement{Kind: v.ElementKind(), Items: jsonItems(v.Items)}, nil
	case deck.NumberedList:
		return jsonElement{Kind: v.ElementKind(), Items: jsonItems(v.Items)}, nil
	case deck.Table:
		return jsonElement{Kind: v.ElementKind(), Header: v.Header, Rows: v.Rows}, nil
	case deck.ImagePlaceholder:
		return jsonElement{Kind: v.ElementKind(), Caption: v.Caption}, nil
	default:
		return jsonElement{}, fmt.Errorf("unhandled element kind %T", e)
	}
}

func jsonItems(items []deck.ListItem) []jsonItem {
	out := make([]jsonItem, 0, len(items))
	for _, it := range items {
		ji := jsonItem{Spans: jsonSpans(it.Spans), Depth: it.Depth}
		if it.Checkbox {
			checked := it.Checked
			ji.Checked = &checked
		}
		out = append(out, ji)
	}
	return out
}

func jsonSpans(spans []deck.Span) []jsonSpan {
	out := make([]jsonSpan, 0, len(spans))
	for _, s := range spans {
		out = append(out, jsonSpan{Kind: s.Kind, Text: s.Text})
	}
	return out
}
