package parser

import (
	"bufio"
	"strings"
)

// Block is a contiguous run of lines between two slide separators.
// Index is the block's rank among surviving blocks and fixes slide order.
type Block struct {
	Lines []string
	Index int
}

// Segment splits a document into slide blocks on horizontal-rule lines
// (three or more dashes alone on a line). The text before the first rule
// is document metadata and is not returned as a block; a document with no
// rules yields no blocks at all. Blocks with no non-blank lines are
// dropped.
func Segment(text string) []Block {
	_, blocks := splitDocument(text)
	return blocks
}

func splitDocument(text string) (head []string, blocks []Block) {
	scanner := bufio.NewScanner(strings.NewReader(text))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var segments [][]string
	var current []string
	for scanner.Scan() {
		line := scanner.Text()
		if isRule(line) {
			segments = append(segments, current)
			current = nil
			continue
		}
		current = append(current, line)
	}
	segments = append(segments, current)

	// One segment means no separator was seen: nothing to convert.
	if len(segments) == 1 {
		return segments[0], nil
	}

	head = segments[0]
	for _, seg := range segments[1:] {
		if !hasContent(seg) {
			continue
		}
		blocks = append(blocks, Block{Lines: seg, Index: len(blocks)})
	}
	return head, blocks
}

// isRule reports whether a line is a slide separator: three or more
// dashes with nothing else but surrounding whitespace.
func isRule(line string) bool {
	t := strings.TrimSpace(line)
	if len(t) < 3 {
		return false
	}
	for i := 0; i < len(t); i++ {
		if t[i] != '-' {
			return false
		}
	}
	return true
}

func hasContent(lines []string) bool {
	for _, line := range lines {
		if strings.TrimSpace(line) != "" {
			return true
		}
	}
	return false
}

// parseMeta pulls the deck title and subtitle out of the discarded
// metadata segment: the first "# " heading and the first "## " heading.
func parseMeta(head []string) (title, subtitle string) {
	for _, line := range head {
		t := strings.TrimSpace(line)
		switch {
		case title == "" && strings.HasPrefix(t, "# "):
			title = flattenText(strings.TrimSpace(t[2:]))
		case subtitle == "" && strings.HasPrefix(t, "## "):
			subtitle = flattenText(strings.TrimSpace(t[3:]))
		}
		if title != "" && subtitle != "" {
			break
		}
	}
	return title, subtitle
}
