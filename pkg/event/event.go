// Package event defines the structural event stream the renderer consumes.
// A tokenizer produces one finite, ordered stream per document; the renderer
// reads it exactly once and never asks for the source bytes back.
package event

// Kind identifies the structural role of an event within the document.
type Kind int

const (
	KindStartDocument Kind = iota
	KindEndDocument
	KindStartHeading
	KindEndHeading
	KindStartParagraph
	KindEndParagraph
	KindStartEmphasis
	KindEndEmphasis
	KindStartCodeSpan
	KindEndCodeSpan
	KindText
	KindSoftBreak
	KindHardBreak
	KindThematicBreak
)

// String returns a short name for the kind, used in diagnostics.
func (k Kind) String() string {
	switch k {
	case KindStartDocument:
		return "StartDocument"
	case KindEndDocument:
		return "EndDocument"
	case KindStartHeading:
		return "StartHeading"
	case KindEndHeading:
		return "EndHeading"
	case KindStartParagraph:
		return "StartParagraph"
	case KindEndParagraph:
		return "EndParagraph"
	case KindStartEmphasis:
		return "StartEmphasis"
	case KindEndEmphasis:
		return "EndEmphasis"
	case KindStartCodeSpan:
		return "StartCodeSpan"
	case KindEndCodeSpan:
		return "EndCodeSpan"
	case KindText:
		return "Text"
	case KindSoftBreak:
		return "SoftBreak"
	case KindHardBreak:
		return "HardBreak"
	case KindThematicBreak:
		return "ThematicBreak"
	}
	return "Unknown"
}

// Event is one item of the stream.
//
// Level carries the heading level (1-6) for StartHeading and the emphasis
// level (1 = em, 2 = strong) for StartEmphasis; it is zero otherwise.
// Text carries decoded Unicode text for Text events only.
type Event struct {
	Kind  Kind
	Level int
	Text  string
}

// Stream is a finite, ordered, single-traversal sequence of events.
// Next returns the next event and true, or a zero event and false once the
// stream is exhausted. Streams are not restartable.
type Stream interface {
	Next() (Event, bool)
}

// SliceStream adapts a pre-built event slice to the Stream interface.
type SliceStream struct {
	events []Event
	pos    int
}

// NewSliceStream returns a Stream that yields the given events in order.
func NewSliceStream(events []Event) *SliceStream {
	return &SliceStream{events: events}
}

// Next implements Stream.
func (s *SliceStream) Next() (Event, bool) {
	if s.pos >= len(s.events) {
		return Event{}, false
	}
	ev := s.events[s.pos]
	s.pos++
	return ev, true
}
