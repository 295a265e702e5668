package parser

import (
	"regexp"
	"strings"

	"github.com/dgallion1/slidegest/internal/deck"
)

// maxListDepth bounds nesting so pathological indentation cannot push
// items arbitrarily deep.
const maxListDepth = 8

var (
	bulletRe   = regexp.MustCompile(`^[-*]\s+`)
	numberedRe = regexp.MustCompile(`^\d+\.\s+`)
	checkboxRe = regexp.MustCompile(`^\[( |x|X)\]\s+`)
)

// isListLine reports whether a line starts a bullet or numbered item
// once leading indentation is stripped.
func isListLine(line string) bool {
	t := strings.TrimLeft(line, " \t")
	return bulletRe.MatchString(t) || numberedRe.MatchString(t)
}

// extractLists converts a run of list lines into list elements. Items of
// the same kind accumulate into one element; a switch between bullet and
// numbered closes the current element and opens a new one. Lines that are
// not list lines are skipped, so callers may pass a raw run.
func extractLists(lines []string, maxDepth int) []deck.Element {
	var out []deck.Element
	var items []deck.ListItem
	var numbered bool

	flush := func() {
		if len(items) == 0 {
			return
		}
		if numbered {
			out = append(out, deck.NumberedList{Items: items})
		} else {
			out = append(out, deck.BulletList{Items: items})
		}
		items = nil
	}

	for _, line := range lines {
		body, isNum, depth, ok := splitListLine(line, maxDepth)
		if !ok {
			continue
		}
		if len(items) > 0 && isNum != numbered {
			flush()
		}
		numbered = isNum

		item := deck.ListItem{Depth: depth}
		if !isNum {
			if m := checkboxRe.FindStringSubmatch(body); m != nil {
				item.Checkbox = true
				item.Checked = m[1] == "x" || m[1] == "X"
				body = body[len(m[0]):]
			}
		}
		item.Spans = extractSpans(body)
		items = append(items, item)
	}
	flush()
	return out
}

// splitListLine strips the marker from a list line and computes its
// nesting depth: one level per two leading whitespace characters,
// clamped to maxDepth.
func splitListLine(line string, maxDepth int) (body string, numbered bool, depth int, ok bool) {
	trimmed := strings.TrimLeft(line, " \t")
	indent := len(line) - len(trimmed)

	var marker string
	switch {
	case bulletRe.MatchString(trimmed):
		marker = bulletRe.FindString(trimmed)
	case numberedRe.MatchString(trimmed):
		marker = numberedRe.FindString(trimmed)
		numbered = true
	default:
		return "", false, 0, false
	}

	depth = indent / 2
	if depth > maxDepth {
		depth = maxDepth
	}
	return trimmed[len(marker):], numbered, depth, true
}
