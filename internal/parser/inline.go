package parser

import (
	"strings"

	"github.com/dgallion1/slidegest/internal/deck"
)

// extractSpans scans a line left to right and splits it into formatting
// runs. At each position bold wins over italic wins over link; anything
// unrecognized, including unbalanced delimiters, stays literal plain
// text. Emphasis does not nest.
func extractSpans(text string) []deck.Span {
	var spans []deck.Span
	var plain strings.Builder

	flush := func() {
		if plain.Len() > 0 {
			spans = append(spans, deck.Span{Kind: deck.SpanPlain, Text: plain.String()})
			plain.Reset()
		}
	}

	i := 0
	for i < len(text) {
		switch {
		case strings.HasPrefix(text[i:], "**"):
			end := strings.Index(text[i+2:], "**")
			if end <= 0 {
				// No closing pair (or empty bold): keep the stars.
				plain.WriteString("**")
				i += 2
				continue
			}
			flush()
			spans = append(spans, deck.Span{Kind: deck.SpanBold, Text: text[i+2 : i+2+end]})
			i += end + 4

		case text[i] == '*':
			end := strings.IndexByte(text[i+1:], '*')
			if end <= 0 {
				plain.WriteByte('*')
				i++
				continue
			}
			flush()
			spans = append(spans, deck.Span{Kind: deck.SpanItalic, Text: text[i+1 : i+1+end]})
			i += end + 2

		case text[i] == '[':
			display, consumed, ok := linkAt(text[i:])
			if !ok {
				plain.WriteByte('[')
				i++
				continue
			}
			flush()
			spans = append(spans, deck.Span{Kind: deck.SpanLink, Text: display})
			i += consumed

		default:
			plain.WriteByte(text[i])
			i++
		}
	}
	flush()
	return spans
}

// linkAt matches "[text](url)" at the start of s. The url is discarded;
// only the display text survives.
func linkAt(s string) (display string, consumed int, ok bool) {
	mid := strings.Index(s, "](")
	if mid <= 1 {
		return "", 0, false
	}
	end := strings.IndexByte(s[mid+2:], ')')
	if end < 0 {
		return "", 0, false
	}
	return s[1:mid], mid + 2 + end + 1, true
}

// flattenText strips markdown formatting from a line and returns the
// visible text.
func flattenText(text string) string {
	return deck.PlainText(extractSpans(text))
}

// appendSpans merges src onto dst, coalescing adjacent plain runs so a
// paragraph built from several lines still reads as one span sequence.
func appendSpans(dst, src []deck.Span) []deck.Span {
	for _, s := range src {
		if n := len(dst); n > 0 && s.Kind == deck.SpanPlain && dst[n-1].Kind == deck.SpanPlain {
			dst[n-1].Text += s.Text
			continue
		}
		dst = append(dst, s)
	}
	return dst
}
