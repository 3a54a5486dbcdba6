// Package render converts a Markdown event stream into HTML while building
// a slug-indexed table of headings in the same single pass.
//
// All mutable state lives inside one call, so independent renders may run
// concurrently with no locking. Rendering never spawns goroutines, performs
// no I/O, and holds no state between calls.
package render

import (
	"fmt"

	"md-render/pkg/event"
	"md-render/pkg/tokenize"
)

// Render converts Markdown source into HTML plus the heading index.
// On failure it returns exactly one error and no partial HTML.
func Render(source []byte, opts ...Option) (*Result, error) {
	o := newOptions(opts)

	if o.maxInputBytes > 0 && int64(len(source)) > o.maxInputBytes {
		return nil, fmt.Errorf("%w: %d bytes (limit %d)", ErrInputTooLarge, len(source), o.maxInputBytes)
	}

	stream, err := tokenize.New().Tokenize(source)
	if err != nil {
		return nil, fmt.Errorf("tokenize: %w", err)
	}

	return Consume(stream, opts...)
}

// Consume renders a pre-built event stream. It exists so embedders with
// their own tokenizer can reuse the consumer, and so tests can drive the
// state machine directly; Render is Tokenize followed by Consume.
func Consume(stream event.Stream, opts ...Option) (*Result, error) {
	return newConsumer(newOptions(opts)).consume(stream)
}
