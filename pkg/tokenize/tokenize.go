// Package tokenize turns Markdown source into the structural event stream
// consumed by the renderer. It is the only package that touches source
// bytes; downstream consumers see decoded Unicode text on events and never
// re-scan the input.
package tokenize

import (
	"errors"
	"unicode/utf8"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"

	"md-render/pkg/event"
)

// ErrInvalidEncoding is returned when the input is not valid UTF-8.
var ErrInvalidEncoding = errors.New("input is not valid UTF-8")

// Tokenizer parses Markdown and flattens the resulting tree into one
// finite event stream per document. A Tokenizer is stateless between
// calls and safe for concurrent use.
type Tokenizer struct {
	parser parser.Parser
}

// New returns a Tokenizer backed by goldmark's CommonMark parser.
func New() *Tokenizer {
	return &Tokenizer{parser: goldmark.DefaultParser()}
}

// Tokenize produces the event stream for one document. The stream is
// finite, ordered, and yields each event exactly once.
func (t *Tokenizer) Tokenize(source []byte) (event.Stream, error) {
	if !utf8.Valid(source) {
		return nil, ErrInvalidEncoding
	}

	doc := t.parser.Parse(text.NewReader(source))

	events := make([]event.Event, 0, 64)
	events = append(events, event.Event{Kind: event.KindStartDocument})
	for c := doc.FirstChild(); c != nil; c = c.NextSibling() {
		events = emitBlock(c, source, events)
	}
	events = append(events, event.Event{Kind: event.KindEndDocument})

	return event.NewSliceStream(events), nil
}

func emitBlock(node ast.Node, source []byte, events []event.Event) []event.Event {
	switch n := node.(type) {
	case *ast.Heading:
		events = append(events, event.Event{Kind: event.KindStartHeading, Level: n.Level})
		events = emitChildren(n, source, events)
		events = append(events, event.Event{Kind: event.KindEndHeading})

	case *ast.Paragraph:
		events = append(events, event.Event{Kind: event.KindStartParagraph})
		events = emitChildren(n, source, events)
		events = append(events, event.Event{Kind: event.KindEndParagraph})

	case *ast.TextBlock:
		events = append(events, event.Event{Kind: event.KindStartParagraph})
		events = emitChildren(n, source, events)
		events = append(events, event.Event{Kind: event.KindEndParagraph})

	case *ast.ThematicBreak:
		events = append(events, event.Event{Kind: event.KindThematicBreak})

	case *ast.FencedCodeBlock:
		events = emitRawLines(n, source, events)

	case *ast.CodeBlock:
		events = emitRawLines(n, source, events)

	case *ast.HTMLBlock:
		events = emitRawLines(n, source, events)

	case *ast.Blockquote:
		for c := n.FirstChild(); c != nil; c = c.NextSibling() {
			events = emitBlock(c, source, events)
		}

	default:
		// Lists and any construct without a dedicated rule degrade to
		// their text content so new block kinds never break rendering.
		for c := node.FirstChild(); c != nil; c = c.NextSibling() {
			events = emitBlock(c, source, events)
		}
	}
	return events
}

// emitRawLines surfaces a literal block's lines as escaped paragraph text.
// No markup is synthesized for constructs outside the supported subset.
func emitRawLines(node ast.Node, source []byte, events []event.Event) []event.Event {
	lines := node.Lines()
	if lines.Len() == 0 {
		return events
	}
	events = append(events, event.Event{Kind: event.KindStartParagraph})
	for i := 0; i < lines.Len(); i++ {
		line := lines.At(i)
		events = append(events, event.Event{Kind: event.KindText, Text: string(line.Value(source))})
	}
	events = append(events, event.Event{Kind: event.KindEndParagraph})
	return events
}

func emitChildren(node ast.Node, source []byte, events []event.Event) []event.Event {
	for c := node.FirstChild(); c != nil; c = c.NextSibling() {
		events = emitInline(c, source, events)
	}
	return events
}

func emitInline(node ast.Node, source []byte, events []event.Event) []event.Event {
	switch n := node.(type) {
	case *ast.Text:
		events = append(events, event.Event{Kind: event.KindText, Text: string(n.Segment.Value(source))})
		if n.HardLineBreak() {
			events = append(events, event.Event{Kind: event.KindHardBreak})
		} else if n.SoftLineBreak() {
			events = append(events, event.Event{Kind: event.KindSoftBreak})
		}

	case *ast.String:
		events = append(events, event.Event{Kind: event.KindText, Text: string(n.Value)})

	case *ast.Emphasis:
		level := n.Level
		if level > 2 {
			level = 2
		}
		events = append(events, event.Event{Kind: event.KindStartEmphasis, Level: level})
		events = emitChildren(n, source, events)
		events = append(events, event.Event{Kind: event.KindEndEmphasis, Level: level})

	case *ast.CodeSpan:
		events = append(events, event.Event{Kind: event.KindStartCodeSpan})
		events = emitChildren(n, source, events)
		events = append(events, event.Event{Kind: event.KindEndCodeSpan})

	case *ast.AutoLink:
		events = append(events, event.Event{Kind: event.KindText, Text: string(n.URL(source))})

	case *ast.RawHTML:
		for i := 0; i < n.Segments.Len(); i++ {
			seg := n.Segments.At(i)
			events = append(events, event.Event{Kind: event.KindText, Text: string(seg.Value(source))})
		}

	default:
		// Links and images degrade to their inner text until they get
		// rules of their own.
		events = emitChildren(node, source, events)
	}
	return events
}
