package parser

import "testing"

func TestSegment_NoDelimitersYieldsNoBlocks(t *testing.T) {
	inputs := []string{
		"",
		"just a paragraph\nwith two lines\n",
		"# A heading\n\nSome text under it.\n",
	}
	for _, in := range inputs {
		if blocks := Segment(in); len(blocks) != 0 {
			t.Errorf("%q: expected 0 blocks, got %d", in, len(blocks))
		}
	}
}

func TestSegment_LeadingMetadataDiscarded(t *testing.T) {
	input := "# Deck Title\n## Deck Subtitle\n---\nfirst slide\n---\nsecond slide\n"
	blocks := Segment(input)
	if len(blocks) != 2 {
		t.Fatalf("expected 2 blocks, got %d", len(blocks))
	}
	if blocks[0].Lines[0] != "first slide" {
		t.Errorf("expected first block to start with slide content, got %q", blocks[0].Lines[0])
	}
	if blocks[0].Index != 0 || blocks[1].Index != 1 {
		t.Errorf("expected indexes 0,1 got %d,%d", blocks[0].Index, blocks[1].Index)
	}
}

func TestSegment_EmptySegmentsDropped(t *testing.T) {
	input := "meta\n---\n\n   \n---\nreal content\n---\n---\n"
	blocks := Segment(input)
	if len(blocks) != 1 {
		t.Fatalf("expected 1 block, got %d", len(blocks))
	}
	if blocks[0].Index != 0 {
		t.Errorf("survivor should be re-indexed to 0, got %d", blocks[0].Index)
	}
}

func TestSegment_RuleVariants(t *testing.T) {
	tests := []struct {
		line string
		rule bool
	}{
		{"---", true},
		{"----", true},
		{"----------", true},
		{"  ---  ", true},
		{"--", false},
		{"- - -", false},
		{"---x", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := isRule(tt.line); got != tt.rule {
			t.Errorf("isRule(%q): expected %v, got %v", tt.line, tt.rule, got)
		}
	}
}

func TestParseMeta_TitleAndSubtitle(t *testing.T) {
	head := []string{"# My **Deck**", "", "## The fine print"}
	title, subtitle := parseMeta(head)
	if title != "My Deck" {
		t.Errorf("expected title %q, got %q", "My Deck", title)
	}
	if subtitle != "The fine print" {
		t.Errorf("expected subtitle %q, got %q", "The fine print", subtitle)
	}
}

func TestParseMeta_Absent(t *testing.T) {
	title, subtitle := parseMeta([]string{"no headings here"})
	if title != "" || subtitle != "" {
		t.Errorf("expected empty meta, got %q / %q", title, subtitle)
	}
}
