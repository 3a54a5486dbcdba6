package render

import "errors"

// --- Sentinel Errors for Categorization ---
var (
	// ErrInvariant marks a structural impossibility in the event stream,
	// such as an end-heading event with no open heading. It indicates a
	// tokenizer contract breach, never bad user input.
	ErrInvariant = errors.New("renderer invariant violation")

	// ErrInputTooLarge is returned when the source exceeds the configured
	// input-size ceiling before any parsing happens.
	ErrInputTooLarge = errors.New("input exceeds configured size limit")
)
