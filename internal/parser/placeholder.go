package parser

import "strings"

const placeholderMarker = "SCREENSHOT PLACEHOLDER"

// placeholderCaption recognizes a screenshot-placeholder line, e.g.
//
//	📸 **[SCREENSHOT PLACEHOLDER]:** Login screen
//
// The marker match is case-insensitive and tolerates bracket, backslash
// and emphasis noise between the marker and the colon. The caption is
// everything after that colon, with formatting stripped.
func placeholderCaption(line string) (string, bool) {
	idx := strings.Index(strings.ToUpper(line), placeholderMarker)
	if idx < 0 {
		return "", false
	}

	rest := line[idx+len(placeholderMarker):]
	rest = strings.TrimLeft(rest, "]\\* ")
	if !strings.HasPrefix(rest, ":") {
		return "", false
	}

	caption := flattenText(strings.TrimSpace(rest[1:]))
	// A dangling bold-close from the label ends up ahead of the caption;
	// shed stray asterisks on both ends.
	caption = strings.TrimSpace(strings.Trim(caption, "*"))
	return caption, true
}
