package render

// Heading is one entry of the heading index, in document order.
// Text is the raw (unescaped) inline text of the heading; Slug is the
// unique id attribute injected into the rendered tag.
type Heading struct {
	Level int    `json:"level" yaml:"level"`
	Text  string `json:"text" yaml:"text"`
	Slug  string `json:"slug" yaml:"slug"`
}

// Result bundles the output of one render call. The caller owns it
// exclusively; the renderer keeps no reference once it returns.
type Result struct {
	HTML     string    `json:"html" yaml:"html"`
	Headings []Heading `json:"headings" yaml:"headings"`

	// Notes carries non-fatal diagnostics (e.g. a heading falling back
	// to the default slug). Populated only with WithDiagnostics.
	Notes []string `json:"notes,omitempty" yaml:"notes,omitempty"`
}
