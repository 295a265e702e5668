package parser

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/dgallion1/slidegest/internal/deck"
)

// Block-heading patterns, in classification precedence order. Keep these
// in sync with buildSlide: silent precedence changes are the easiest bug
// to introduce here.
var (
	sectionRe   = regexp.MustCompile(`^#\s+SECTION\s+(\S+):\s+(.+?)(?:\s+\((\d+)\s+slides?\))?\s*$`)
	contentRe   = regexp.MustCompile(`^##\s+Slide\s+\d+:\s+(.+)$`)
	titlePairRe = regexp.MustCompile(`\*\*(.+?)\*\*\s*\*(.+?)\*`)
)

// classification is the outcome of inspecting a block's heading lines.
type classification struct {
	kind deck.SlideKind

	// Section fields. count is nil when the "(N slides)" annotation is
	// missing or does not parse.
	number string
	name   string
	count  *int

	// Title fields.
	title    string
	subtitle string

	// Content fields. headingLine is the index of the "## Slide N:" line,
	// or -1 when the block has none.
	contentTitle string
	headingLine  int
}

// classify decides which of the three slide kinds a block is. A block
// that matches neither the section nor the title pattern is always
// content; classification never fails.
func classify(b Block) classification {
	first, firstIdx := firstNonBlank(b.Lines)

	if m := sectionRe.FindStringSubmatch(first); m != nil {
		c := classification{
			kind:   deck.KindSection,
			number: m[1],
			name:   flattenText(strings.TrimSpace(m[2])),
		}
		if m[3] != "" {
			// A bad count is not fatal; the annotation is just dropped.
			if n, err := strconv.Atoi(m[3]); err == nil {
				c.count = &n
			}
		}
		return c
	}

	if isTitleHeading(first) {
		for _, line := range b.Lines[firstIdx+1:] {
			if m := titlePairRe.FindStringSubmatch(line); m != nil {
				return classification{
					kind:     deck.KindTitle,
					title:    strings.TrimSpace(m[1]),
					subtitle: strings.TrimSpace(m[2]),
				}
			}
		}
		// Heading says title slide but the **title** *subtitle* line is
		// missing: treat the block as ordinary content.
	}

	c := classification{kind: deck.KindContent, headingLine: -1}
	for i, line := range b.Lines {
		if m := contentRe.FindStringSubmatch(strings.TrimSpace(line)); m != nil {
			c.contentTitle = flattenText(strings.TrimSpace(m[1]))
			c.headingLine = i
			break
		}
	}
	return c
}

// isTitleHeading reports whether a line is a # or ## heading containing
// the phrase "Title Slide" in any casing.
func isTitleHeading(line string) bool {
	if !strings.HasPrefix(line, "#") {
		return false
	}
	return strings.Contains(strings.ToLower(line), "title slide")
}

func firstNonBlank(lines []string) (string, int) {
	for i, line := range lines {
		if t := strings.TrimSpace(line); t != "" {
			return t, i
		}
	}
	return "", len(lines) - 1
}
