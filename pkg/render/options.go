package render

import "md-render/pkg/slug"

// options holds per-call renderer settings. All fields have working
// zero-value defaults filled in by newOptions.
type options struct {
	fallbackSlug  string
	diagnostics   bool
	maxInputBytes int64 // 0 = unlimited
}

// Option customizes a single render call.
type Option func(*options)

func newOptions(opts []Option) options {
	o := options{fallbackSlug: slug.Fallback}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithFallbackSlug overrides the slug used for headings whose text has no
// sluggable content. The empty string restores the default.
func WithFallbackSlug(s string) Option {
	return func(o *options) {
		if s != "" {
			o.fallbackSlug = s
		}
	}
}

// WithDiagnostics enables non-fatal notes on the Result, such as fallback
// slug usage.
func WithDiagnostics() Option {
	return func(o *options) { o.diagnostics = true }
}

// WithMaxInputBytes rejects sources larger than n bytes before parsing.
// Rendering is CPU-bound and proportional to input size, so callers that
// need a latency bound should cap input here rather than cancel mid-call.
func WithMaxInputBytes(n int64) Option {
	return func(o *options) { o.maxInputBytes = n }
}
