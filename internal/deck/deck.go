package deck

// Deck is a fully parsed slide deck.
type Deck struct {
	Meta   Meta    // Document-level metadata from the leading segment
	Slides []Slide // Slides in source order
}

// Meta holds deck-level metadata scraped from the text before the first
// slide separator. Both fields may be empty.
type Meta struct {
	Title    string
	Subtitle string
}

// SlideKind discriminates the concrete Slide types.
type SlideKind string

const (
	KindTitle   SlideKind = "title"
	KindSection SlideKind = "section"
	KindContent SlideKind = "content"
)

// Slide is one slide record. The concrete types are TitleSlide,
// SectionSlide and ContentSlide; nothing else implements this interface.
type Slide interface {
	Kind() SlideKind
}

// TitleSlide is the deck's opening slide.
type TitleSlide struct {
	Title    string
	Subtitle string
}

func (TitleSlide) Kind() SlideKind { return KindTitle }

// SectionSlide introduces a named group of subsequent slides.
type SectionSlide struct {
	Number string // Section identifier, e.g. "1" or "A"
	Name   string
	// SlideCount is the announced number of slides in the section.
	// Nil means the annotation was absent or unparseable, which keeps
	// an explicit "(0 slides)" distinguishable from no annotation.
	SlideCount *int
}

func (SectionSlide) Kind() SlideKind { return KindSection }

// ContentSlide carries a title and an ordered body of elements.
type ContentSlide struct {
	Title string
	Body  []Element
}

func (ContentSlide) Kind() SlideKind { return KindContent }

// ElementKind discriminates the concrete Element types.
type ElementKind string

const (
	KindParagraph        ElementKind = "paragraph"
	KindBulletList       ElementKind = "bullet_list"
	KindNumberedList     ElementKind = "numbered_list"
	KindTable            ElementKind = "table"
	KindImagePlaceholder ElementKind = "image_placeholder"
)

// Element is one structured unit of slide body content.
type Element interface {
	ElementKind() ElementKind
}

// Paragraph is a run of plain text lines, flattened into inline spans.
type Paragraph struct {
	Spans []Span
}

func (Paragraph) ElementKind() ElementKind { return KindParagraph }

// BulletList is a run of consecutive bulleted items.
type BulletList struct {
	Items []ListItem
}

func (BulletList) ElementKind() ElementKind { return KindBulletList }

// NumberedList is a run of consecutive numbered items. The printed
// numbers are discarded; item order is the only ordering that matters.
type NumberedList struct {
	Items []ListItem
}

func (NumberedList) ElementKind() ElementKind { return KindNumberedList }

// Table is a pipe table. Rows may be ragged relative to the header;
// they are preserved as written.
type Table struct {
	Header []string
	Rows   [][]string
}

func (Table) ElementKind() ElementKind { return KindTable }

// ImagePlaceholder marks where a screenshot or image should be dropped in.
type ImagePlaceholder struct {
	Caption string
}

func (ImagePlaceholder) ElementKind() ElementKind { return KindImagePlaceholder }

// ListItem is a single list entry at a nesting depth. Checkbox items
// additionally carry their checked state.
type ListItem struct {
	Spans    []Span
	Depth    int  // 0 = top level
	Checkbox bool // True for "[ ]" / "[x]" task items
	Checked  bool // Meaningful only when Checkbox is set
}

// SpanKind discriminates inline formatting runs.
type SpanKind string

const (
	SpanPlain  SpanKind = "plain"
	SpanBold   SpanKind = "bold"
	SpanItalic SpanKind = "italic"
	SpanLink   SpanKind = "link"
)

// Span is a run of text tagged with one formatting kind. Link spans carry
// display text only; URLs are dropped during parsing.
type Span struct {
	Kind SpanKind
	Text string
}

// PlainText concatenates the display text of spans in order. For any
// parsed line this reconstructs the line with markdown syntax removed.
func PlainText(spans []Span) string {
	if len(spans) == 1 {
		return spans[0].Text
	}
	var out []byte
	for _, s := range spans {
		out = append(out, s.Text...)
	}
	return string(out)
}
