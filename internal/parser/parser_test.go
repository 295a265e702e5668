package parser

import (
	"fmt"
	"reflect"
	"strings"
	"testing"

	"github.com/dgallion1/slidegest/internal/deck"
)

func TestParse_SectionThenContent(t *testing.T) {
	input := "Meta\n---\n# SECTION 1: INTRO (4 slides)\n---\n## Slide 2: Overview\n\nHello *world*\n"
	d := Parse(input)

	if len(d.Slides) != 2 {
		t.Fatalf("expected 2 slides, got %d", len(d.Slides))
	}

	sec, ok := d.Slides[0].(deck.SectionSlide)
	if !ok {
		t.Fatalf("slide[0]: expected SectionSlide, got %T", d.Slides[0])
	}
	if sec.Number != "1" || sec.Name != "INTRO" {
		t.Errorf("unexpected section: %+v", sec)
	}
	if sec.SlideCount == nil || *sec.SlideCount != 4 {
		t.Errorf("expected slide count 4, got %v", sec.SlideCount)
	}

	cs, ok := d.Slides[1].(deck.ContentSlide)
	if !ok {
		t.Fatalf("slide[1]: expected ContentSlide, got %T", d.Slides[1])
	}
	if cs.Title != "Overview" {
		t.Errorf("expected title %q, got %q", "Overview", cs.Title)
	}
	if len(cs.Body) != 1 {
		t.Fatalf("expected 1 body element, got %d", len(cs.Body))
	}
	p := cs.Body[0].(deck.Paragraph)
	want := []deck.Span{
		{Kind: deck.SpanPlain, Text: "Hello "},
		{Kind: deck.SpanItalic, Text: "world"},
	}
	if !reflect.DeepEqual(p.Spans, want) {
		t.Errorf("expected spans %#v, got %#v", want, p.Spans)
	}
}

func TestParse_TitleSlide(t *testing.T) {
	input := "---\n## Slide 1: Title Slide\n\n**My Deck** *A Subtitle*\n"
	d := Parse(input)

	if len(d.Slides) != 1 {
		t.Fatalf("expected 1 slide, got %d", len(d.Slides))
	}
	ts, ok := d.Slides[0].(deck.TitleSlide)
	if !ok {
		t.Fatalf("expected TitleSlide, got %T", d.Slides[0])
	}
	if ts.Title != "My Deck" || ts.Subtitle != "A Subtitle" {
		t.Errorf("unexpected title slide: %+v", ts)
	}
}

func TestParse_NoDelimiters(t *testing.T) {
	d := Parse("# Just a document\n\nWith some text.\n")
	if len(d.Slides) != 0 {
		t.Errorf("expected empty deck, got %d slides", len(d.Slides))
	}
	if d.Meta.Title != "Just a document" {
		t.Errorf("expected metadata title captured, got %q", d.Meta.Title)
	}
}

func TestParse_DeckMeta(t *testing.T) {
	input := "# Q3 Review\n## Engineering all-hands\n---\n## Slide 1: Agenda\n\ntext\n"
	d := Parse(input)
	if d.Meta.Title != "Q3 Review" {
		t.Errorf("expected meta title, got %q", d.Meta.Title)
	}
	if d.Meta.Subtitle != "Engineering all-hands" {
		t.Errorf("expected meta subtitle, got %q", d.Meta.Subtitle)
	}
}

func TestParse_UnclassifiableBlockBecomesContent(t *testing.T) {
	input := "meta\n---\nsome loose text\nthat matches nothing\n"
	d := Parse(input)
	if len(d.Slides) != 1 {
		t.Fatalf("expected 1 slide, got %d", len(d.Slides))
	}
	cs, ok := d.Slides[0].(deck.ContentSlide)
	if !ok {
		t.Fatalf("expected ContentSlide, got %T", d.Slides[0])
	}
	if cs.Title != "" {
		t.Errorf("expected empty title, got %q", cs.Title)
	}
	if len(cs.Body) != 1 {
		t.Fatalf("content must never be discarded, got %d elements", len(cs.Body))
	}
}

func TestParseWith_ParallelMatchesSequential(t *testing.T) {
	var sb strings.Builder
	sb.WriteString("# Big Deck\n")
	for i := 1; i <= 40; i++ {
		fmt.Fprintf(&sb, "---\n## Slide %d: Part %d\n\nParagraph for slide %d with **bold**.\n\n- item one\n- [x] item two\n\n| K | V |\n|---|---|\n| a | %d |\n", i, i, i, i)
	}
	input := sb.String()

	seq := ParseWith(input, Config{Workers: 1})
	par := ParseWith(input, Config{Workers: 8})

	if !reflect.DeepEqual(seq, par) {
		t.Fatal("parallel parse must produce identical output to sequential parse")
	}
	if len(par.Slides) != 40 {
		t.Fatalf("expected 40 slides, got %d", len(par.Slides))
	}
	for i, s := range par.Slides {
		cs := s.(deck.ContentSlide)
		want := fmt.Sprintf("Part %d", i+1)
		if cs.Title != want {
			t.Errorf("slide[%d]: expected title %q, got %q — order not preserved", i, want, cs.Title)
		}
	}
}

func TestParse_FullDeck(t *testing.T) {
	input := strings.Join([]string{
		"# Release Review",
		"## 2026 Q3",
		"---",
		"## Slide 1: Title Slide",
		"",
		"**Release Review** *What shipped and what slipped*",
		"---",
		"# SECTION 1: SHIPPED (2 slides)",
		"---",
		"## Slide 2: Features",
		"",
		"Highlights from the quarter:",
		"",
		"- [x] checkout flow",
		"- [ ] mobile rewrite",
		"  - blocked on design",
		"",
		"| Feature | Owner |",
		"|---------|-------|",
		"| Search  | Ada   |",
		"",
		"📸 **[SCREENSHOT PLACEHOLDER]:** New checkout page",
		"",
	}, "\n")

	d := Parse(input)
	if len(d.Slides) != 3 {
		t.Fatalf("expected 3 slides, got %d", len(d.Slides))
	}
	if _, ok := d.Slides[0].(deck.TitleSlide); !ok {
		t.Errorf("slide[0]: expected TitleSlide, got %T", d.Slides[0])
	}
	if _, ok := d.Slides[1].(deck.SectionSlide); !ok {
		t.Errorf("slide[1]: expected SectionSlide, got %T", d.Slides[1])
	}
	cs, ok := d.Slides[2].(deck.ContentSlide)
	if !ok {
		t.Fatalf("slide[2]: expected ContentSlide, got %T", d.Slides[2])
	}
	kinds := make([]deck.ElementKind, len(cs.Body))
	for i, e := range cs.Body {
		kinds[i] = e.ElementKind()
	}
	want := []deck.ElementKind{
		deck.KindParagraph,
		deck.KindBulletList,
		deck.KindTable,
		deck.KindImagePlaceholder,
	}
	if !reflect.DeepEqual(kinds, want) {
		t.Errorf("expected element kinds %v, got %v", want, kinds)
	}
}
