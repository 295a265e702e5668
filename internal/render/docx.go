package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/dgallion1/slidegest/internal/deck"
	"github.com/fumiama/go-docx"
)

// DocxRenderer exports the deck as a Word outline document: a cover from
// the deck metadata, one heading per slide, and slide bodies as
// paragraphs, indented list lines and tables.
type DocxRenderer struct{}

func (r *DocxRenderer) Render(d *deck.Deck, w io.Writer) error {
	doc := docx.New().WithDefaultTheme()

	if d.Meta.Title != "" {
		doc.AddParagraph().AddText(d.Meta.Title).Size("36").Bold()
		if d.Meta.Subtitle != "" {
			doc.AddParagraph().AddText(d.Meta.Subtitle).Size("24").Italic()
		}
	}

	for _, s := range d.Slides {
		switch v := s.(type) {
		case deck.TitleSlide:
			doc.AddParagraph().AddText(v.Title).Size("32").Bold()
			if v.Subtitle != "" {
				doc.AddParagraph().AddText(v.Subtitle).Size("22").Italic()
			}

		case deck.SectionSlide:
			label := "SECTION " + v.Number
			if v.SlideCount != nil {
				label = fmt.Sprintf("%s (%d slides)", label, *v.SlideCount)
			}
			doc.AddParagraph().AddText(label).Size("16")
			doc.AddParagraph().AddText(v.Name).Size("28").Bold()

		case deck.ContentSlide:
			if v.Title != "" {
				doc.AddParagraph().AddText(v.Title).Size("24").Bold()
			}
			for _, e := range v.Body {
				if err := addElement(doc, e); err != nil {
					return err
				}
			}

		default:
			return fmt.Errorf("unhandled slide kind %T", s)
		}

		doc.AddParagraph()
	}

	_, err := doc.WriteTo(w)
	return err
}

func addElement(doc *docx.Docx, e deck.Element) error {
	switch v := e.(type) {
	case deck.Paragraph:
		addSpans(doc.AddParagraph(), v.Spans)

	case deck.BulletList:
		for _, it := range v.Items {
			p := doc.AddParagraph()
			p.AddText(strings.Repeat("    ", it.Depth) + bulletMarker(it))
			addSpans(p, it.Spans)
		}

	case deck.NumberedList:
		for i, it := range v.Items {
			p := doc.AddParagraph()
			p.AddText(fmt.Sprintf("%s%d. ", strings.Repeat("    ", it.Depth), i+1))
			addSpans(p, it.Spans)
		}

	case deck.Table:
		rows := len(v.Rows) + 1
		cols := len(v.Header)
		if cols == 0 {
			return nil
		}
		tbl := doc.AddTable(rows, cols, 8000, nil)
		fillRow(tbl.TableRows[0], v.Header, cols)
		for i, row := range v.Rows {
			fillRow(tbl.TableRows[i+1], row, cols)
		}

	case deck.ImagePlaceholder:
		doc.AddParagraph().AddText("[Screenshot: " + v.Caption + "]").Italic()

	default:
		return fmt.Errorf("unhandled element kind %T", e)
	}
	return nil
}

// addSpans writes spans as runs so bold and italic survive the export.
// Link spans keep display text only.
func addSpans(p *docx.Paragraph, spans []deck.Span) {
	for _, s := range spans {
		run := p.AddText(s.Text)
		switch s.Kind {
		case deck.SpanBold:
			run.Bold()
		case deck.SpanItalic:
			run.Italic()
		}
	}
}

// fillRow writes up to cols cells; ragged source rows leave the
// remaining docx cells empty.
func fillRow(row *docx.WTableRow, cells []string, cols int) {
	for i := 0; i < cols && i < len(cells); i++ {
		row.TableCells[i].AddParagraph().AddText(cells[i])
	}
}

func bulletMarker(it deck.ListItem) string {
	if !it.Checkbox {
		return "• "
	}
	if it.Checked {
		return "☑ "
	}
	return "☐ "
}
