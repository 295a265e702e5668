package parser

import (
	"strings"

	"github.com/dgallion1/slidegest/internal/deck"
)

// extractTable recognizes a pipe table starting at lines[start]: a
// pipe-delimited header row immediately followed by a separator row.
// It returns the table and the number of lines consumed. Rows with a
// different cell count than the header are kept as written.
func extractTable(lines []string, start int) (deck.Table, int, bool) {
	if !isPipeRow(lines[start]) {
		return deck.Table{}, 0, false
	}
	if start+1 >= len(lines) || !isSeparatorRow(lines[start+1]) {
		return deck.Table{}, 0, false
	}

	tbl := deck.Table{Header: splitCells(lines[start])}
	consumed := 2
	for start+consumed < len(lines) && isPipeRow(lines[start+consumed]) {
		line := lines[start+consumed]
		// Stray separator rows inside the body carry no cells.
		if !isSeparatorRow(line) {
			tbl.Rows = append(tbl.Rows, splitCells(line))
		}
		consumed++
	}
	return tbl, consumed, true
}

// isPipeRow reports whether a line looks like a table row. Leading and
// trailing pipes are optional, so any line containing a pipe qualifies;
// the separator-row requirement in extractTable keeps this from firing
// on ordinary prose.
func isPipeRow(line string) bool {
	return strings.Contains(strings.TrimSpace(line), "|")
}

// isSeparatorRow reports whether a line is a table separator: at least
// one dash and one pipe, and nothing but pipes, dashes, colons and
// whitespace. Alignment colons are accepted and ignored.
func isSeparatorRow(line string) bool {
	t := strings.TrimSpace(line)
	if !strings.Contains(t, "-") || !strings.Contains(t, "|") {
		return false
	}
	for i := 0; i < len(t); i++ {
		switch t[i] {
		case '|', '-', ':', ' ', '\t':
		default:
			return false
		}
	}
	return true
}

// splitCells splits a pipe row into trimmed, formatting-stripped cell
// text. Cells do not carry per-cell emphasis in the output model.
func splitCells(line string) []string {
	t := strings.TrimSpace(line)
	t = strings.TrimPrefix(t, "|")
	t = strings.TrimSuffix(t, "|")

	parts := strings.Split(t, "|")
	cells := make([]string, 0, len(parts))
	for _, p := range parts {
		cells = append(cells, flattenText(strings.TrimSpace(p)))
	}
	return cells
}
