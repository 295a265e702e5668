package parser

import (
	"strings"

	"github.com/dgallion1/slidegest/internal/deck"
)

// buildSlide assembles one slide record from a classified block.
func buildSlide(b Block, maxDepth int) deck.Slide {
	c := classify(b)
	switch c.kind {
	case deck.KindTitle:
		return deck.TitleSlide{Title: c.title, Subtitle: c.subtitle}
	case deck.KindSection:
		return deck.SectionSlide{Number: c.number, Name: c.name, SlideCount: c.count}
	default:
		body := b.Lines[c.headingLine+1:]
		return deck.ContentSlide{Title: c.contentTitle, Body: buildBody(body, maxDepth)}
	}
}

// buildBody walks a content block's body lines once, top to bottom, and
// dispatches each run of lines to the extractor that recognizes it.
// Precedence when a line could open several shapes: table, then list,
// then placeholder, then paragraph. A table only opens when the next
// line is a separator row, so a bullet containing pipes stays a bullet.
func buildBody(lines []string, maxDepth int) []deck.Element {
	var body []deck.Element
	var para []deck.Span

	flushPara := func() {
		if len(para) > 0 {
			body = append(body, deck.Paragraph{Spans: para})
			para = nil
		}
	}

	i := 0
	for i < len(lines) {
		line := lines[i]
		trimmed := strings.TrimSpace(line)

		// Blank lines force a paragraph break. Stray headings inside a
		// body carry no content shape of their own.
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			flushPara()
			i++
			continue
		}

		if tbl, consumed, ok := extractTable(lines, i); ok {
			flushPara()
			body = append(body, tbl)
			i += consumed
			continue
		}

		if isListLine(line) {
			start := i
			for i < len(lines) && isListLine(lines[i]) {
				i++
			}
			flushPara()
			body = append(body, extractLists(lines[start:i], maxDepth)...)
			continue
		}

		if caption, ok := placeholderCaption(line); ok {
			flushPara()
			body = append(body, deck.ImagePlaceholder{Caption: caption})
			i++
			continue
		}

		if len(para) > 0 {
			para = appendSpans(para, []deck.Span{{Kind: deck.SpanPlain, Text: " "}})
		}
		para = appendSpans(para, extractSpans(trimmed))
		i++
	}
	flushPara()
	return body
}
