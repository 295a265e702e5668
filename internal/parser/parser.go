package parser

import (
	"sync"

	"github.com/dgallion1/slidegest/internal/deck"
)

// Config controls parsing behavior.
type Config struct {
	MaxListDepth int // Deepest list nesting level to record.
	Workers      int // Blocks parsed concurrently; 1 = sequential.
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{
		MaxListDepth: maxListDepth,
		Workers:      1,
	}
}

// Parse converts slide-deck markdown into a Deck using defaults.
// Parsing never fails: malformed input degrades to plainer content
// rather than producing an error.
func Parse(text string) *deck.Deck {
	return ParseWith(text, DefaultConfig())
}

// ParseWith converts slide-deck markdown into a Deck. Blocks are
// independent, so with Workers > 1 they are parsed concurrently; the
// output slide order always matches block order either way.
func ParseWith(text string, cfg Config) *deck.Deck {
	if cfg.MaxListDepth <= 0 {
		cfg.MaxListDepth = maxListDepth
	}
	if cfg.Workers <= 0 {
		cfg.Workers = 1
	}

	head, blocks := splitDocument(text)

	d := &deck.Deck{}
	d.Meta.Title, d.Meta.Subtitle = parseMeta(head)
	if len(blocks) == 0 {
		return d
	}

	d.Slides = make([]deck.Slide, len(blocks))
	if cfg.Workers == 1 || len(blocks) == 1 {
		for _, b := range blocks {
			d.Slides[b.Index] = buildSlide(b, cfg.MaxListDepth)
		}
		return d
	}

	// Fan out with bounded concurrency. Each block writes to its own
	// slot, keyed by block index, so document order is restored at the
	// output boundary regardless of completion order.
	sem := make(chan struct{}, cfg.Workers)
	var wg sync.WaitGroup
	for _, b := range blocks {
		wg.Add(1)
		sem <- struct{}{}
		go func(b Block) {
			defer wg.Done()
			defer func() { <-sem }()
			d.Slides[b.Index] = buildSlide(b, cfg.MaxListDepth)
		}(b)
	}
	wg.Wait()
	return d
}
