package parser

import (
	"testing"

	"github.com/dgallion1/slidegest/internal/deck"
)

func block(lines ...string) Block {
	return Block{Lines: lines}
}

func TestClassify_SectionWithSlideCount(t *testing.T) {
	c := classify(block("# SECTION 1: INTRO (4 slides)"))
	if c.kind != deck.KindSection {
		t.Fatalf("expected section, got %v", c.kind)
	}
	if c.number != "1" || c.name != "INTRO" {
		t.Errorf("unexpected section fields: %+v", c)
	}
	if c.count == nil || *c.count != 4 {
		t.Errorf("expected count 4, got %v", c.count)
	}
}

func TestClassify_SectionWithoutCount(t *testing.T) {
	c := classify(block("# SECTION 2: DEEP DIVE"))
	if c.kind != deck.KindSection {
		t.Fatalf("expected section, got %v", c.kind)
	}
	if c.number != "2" || c.name != "DEEP DIVE" || c.count != nil {
		t.Errorf("unexpected section fields: %+v", c)
	}
}

func TestClassify_SectionSingularSlide(t *testing.T) {
	c := classify(block("# SECTION 3: WRAP UP (1 slide)"))
	if c.kind != deck.KindSection || c.count == nil || *c.count != 1 {
		t.Errorf("expected section with count 1, got %+v", c)
	}
}

func TestClassify_SectionZeroSlideCount(t *testing.T) {
	// An explicit "(0 slides)" is an annotation, not an absent one.
	c := classify(block("# SECTION 4: PLACEHOLDER (0 slides)"))
	if c.kind != deck.KindSection {
		t.Fatalf("expected section, got %v", c.kind)
	}
	if c.count == nil || *c.count != 0 {
		t.Errorf("expected count 0, got %v", c.count)
	}
}

func TestClassify_SectionTokenIdentifier(t *testing.T) {
	c := classify(block("# SECTION A: APPENDIX"))
	if c.kind != deck.KindSection || c.number != "A" {
		t.Errorf("expected section number %q, got %+v", "A", c)
	}
}

func TestClassify_TitleSlide(t *testing.T) {
	c := classify(block(
		"## Slide 1: Title Slide",
		"",
		"**My Deck** *A Subtitle*",
	))
	if c.kind != deck.KindTitle {
		t.Fatalf("expected title, got %v", c.kind)
	}
	if c.title != "My Deck" || c.subtitle != "A Subtitle" {
		t.Errorf("unexpected title fields: %+v", c)
	}
}

func TestClassify_TitleHeadingCaseInsensitive(t *testing.T) {
	c := classify(block("# TITLE SLIDE", "**Deck** *Sub*"))
	if c.kind != deck.KindTitle {
		t.Errorf("expected title, got %v", c.kind)
	}
}

func TestClassify_TitleWithoutPatternFallsThroughToContent(t *testing.T) {
	c := classify(block(
		"## Slide 1: Title Slide",
		"",
		"just some text, no bold/italic pair",
	))
	if c.kind != deck.KindContent {
		t.Fatalf("expected fallthrough to content, got %v", c.kind)
	}
	if c.contentTitle != "Title Slide" {
		t.Errorf("expected content title from heading, got %q", c.contentTitle)
	}
}

func TestClassify_ContentSlide(t *testing.T) {
	c := classify(block("## Slide 2: Overview", "", "Hello"))
	if c.kind != deck.KindContent {
		t.Fatalf("expected content, got %v", c.kind)
	}
	if c.contentTitle != "Overview" {
		t.Errorf("expected title %q, got %q", "Overview", c.contentTitle)
	}
	if c.headingLine != 0 {
		t.Errorf("expected heading on line 0, got %d", c.headingLine)
	}
}

func TestClassify_ContentWithoutHeading(t *testing.T) {
	c := classify(block("no heading at all", "just text"))
	if c.kind != deck.KindContent {
		t.Fatalf("expected content, got %v", c.kind)
	}
	if c.contentTitle != "" {
		t.Errorf("expected empty title, got %q", c.contentTitle)
	}
	if c.headingLine != -1 {
		t.Errorf("expected headingLine -1, got %d", c.headingLine)
	}
}

func TestClassify_SectionPrecedesTitle(t *testing.T) {
	// A section heading wins even if the block also mentions a title slide.
	c := classify(block(
		"# SECTION 1: Title Slide Design",
		"**Bold** *Italic*",
	))
	if c.kind != deck.KindSection {
		t.Errorf("expected section precedence, got %v", c.kind)
	}
}
