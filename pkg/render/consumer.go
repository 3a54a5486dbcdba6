package render

import (
	"fmt"
	"strings"

	"md-render/pkg/event"
	"md-render/pkg/slug"
)

// htmlEscaper covers text and attribute contexts alike.
var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#39;",
)

// maxIndexedLevel is the deepest heading level that participates in the
// heading index. Deeper headings render as plain tags with no id.
const maxIndexedLevel = 3

type consumerState int

const (
	stateIdle consumerState = iota
	stateInHeading
)

// consumer walks the event stream exactly once, interleaving forward HTML
// emission with a single-item lookahead for open headings: while a heading
// of level 1-3 is open, its inline HTML and raw text accumulate in side
// buffers so the opening tag can be flushed with the resolved id at the
// heading's end event. No event is read twice and the source is never
// re-tokenized.
type consumer struct {
	out      strings.Builder
	state    consumerState
	resolver *slug.Resolver
	headings []Heading
	notes    []string
	opts     options

	// Open-heading lookahead buffers. At most one heading is open at a
	// time since headings do not nest.
	headingLevel int
	headingText  strings.Builder
	headingHTML  strings.Builder

	// Non-zero while inside a heading deeper than maxIndexedLevel, which
	// passes straight through to the output with no buffering.
	plainLevel int
}

func newConsumer(opts options) *consumer {
	return &consumer{resolver: slug.NewResolver(), opts: opts}
}

// sink returns the builder inline output currently targets.
func (c *consumer) sink() *strings.Builder {
	if c.state == stateInHeading {
		return &c.headingHTML
	}
	return &c.out
}

// consume drains the stream and returns the assembled result, or exactly
// one error and no partial HTML.
func (c *consumer) consume(stream event.Stream) (*Result, error) {
	for {
		ev, ok := stream.Next()
		if !ok {
			break
		}
		if err := c.handle(ev); err != nil {
			return nil, err
		}
	}
	if c.state == stateInHeading || c.plainLevel != 0 {
		return nil, fmt.Errorf("%w: stream ended inside an open heading", ErrInvariant)
	}
	return &Result{
		HTML:     c.out.String(),
		Headings: c.headings,
		Notes:    c.notes,
	}, nil
}

func (c *consumer) handle(ev event.Event) error {
	switch ev.Kind {
	case event.KindStartDocument, event.KindEndDocument:
		// Structural brackets with no markup of their own.

	case event.KindStartHeading:
		if c.state == stateInHeading || c.plainLevel != 0 {
			return fmt.Errorf("%w: nested heading start (level %d)", ErrInvariant, ev.Level)
		}
		if ev.Level > maxIndexedLevel {
			c.plainLevel = ev.Level
			fmt.Fprintf(&c.out, "<h%d>", ev.Level)
			return nil
		}
		c.state = stateInHeading
		c.headingLevel = ev.Level
		c.headingText.Reset()
		c.headingHTML.Reset()

	case event.KindEndHeading:
		if c.plainLevel != 0 {
			fmt.Fprintf(&c.out, "</h%d>\n", c.plainLevel)
			c.plainLevel = 0
			return nil
		}
		if c.state != stateInHeading {
			return fmt.Errorf("%w: end-heading event with no open heading", ErrInvariant)
		}
		c.closeHeading()

	case event.KindText:
		if c.state == stateInHeading {
			c.headingText.WriteString(ev.Text)
		}
		c.sink().WriteString(htmlEscaper.Replace(ev.Text))

	case event.KindSoftBreak:
		if c.state == stateInHeading {
			c.headingText.WriteByte('\n')
		}
		c.sink().WriteByte('\n')

	case event.KindHardBreak:
		if c.state == stateInHeading {
			c.headingText.WriteByte('\n')
		}
		c.sink().WriteString("<br />\n")

	case event.KindStartParagraph:
		c.sink().WriteString("<p>")

	case event.KindEndParagraph:
		c.sink().WriteString("</p>\n")

	case event.KindStartEmphasis:
		if ev.Level >= 2 {
			c.sink().WriteString("<strong>")
		} else {
			c.sink().WriteString("<em>")
		}

	case event.KindEndEmphasis:
		if ev.Level >= 2 {
			c.sink().WriteString("</strong>")
		} else {
			c.sink().WriteString("</em>")
		}

	case event.KindStartCodeSpan:
		c.sink().WriteString("<code>")

	case event.KindEndCodeSpan:
		c.sink().WriteString("</code>")

	case event.KindThematicBreak:
		c.sink().WriteString("<hr />\n")

	default:
		return fmt.Errorf("%w: unknown event kind %v", ErrInvariant, ev.Kind)
	}
	return nil
}

// closeHeading resolves the slug for the buffered heading, flushes the
// deferred opening tag with its id, then the buffered inline HTML and the
// closing tag, and records the heading.
func (c *consumer) closeHeading() {
	raw := c.headingText.String()

	candidate := slug.Generate(raw)
	if !slug.HasContent(raw) {
		candidate = c.opts.fallbackSlug
		if c.opts.diagnostics {
			c.notes = append(c.notes, fmt.Sprintf(
				"level %d heading %q has no sluggable text, using fallback %q",
				c.headingLevel, raw, candidate))
		}
	}
	resolved := c.resolver.Resolve(candidate)

	fmt.Fprintf(&c.out, `<h%d id="%s">`, c.headingLevel, htmlEscaper.Replace(resolved))
	c.out.WriteString(c.headingHTML.String())
	fmt.Fprintf(&c.out, "</h%d>\n", c.headingLevel)

	c.headings = append(c.headings, Heading{
		Level: c.headingLevel,
		Text:  raw,
		Slug:  resolved,
	})
	c.state = stateIdle
	c.headingLevel = 0
}
