package render_test

import (
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"md-render/pkg/event"
	"md-render/pkg/render"
	"md-render/pkg/tokenize"
)

func TestRender_SingleHeading(t *testing.T) {
	res, err := render.Render([]byte("# A"))
	require.NoError(t, err)

	assert.Contains(t, res.HTML, `<h1 id="a">A</h1>`)
	assert.Equal(t, []render.Heading{{Level: 1, Text: "A", Slug: "a"}}, res.Headings)
}

func TestRender_CJKHeading(t *testing.T) {
	res, err := render.Render([]byte("## 日本語"))
	require.NoError(t, err)

	require.Len(t, res.Headings, 1)
	assert.Equal(t, "日本語", res.Headings[0].Slug)
	assert.Contains(t, res.HTML, `<h2 id="日本語">日本語</h2>`)
}

func TestRender_MixedScriptHeadings(t *testing.T) {
	res, err := render.Render([]byte("### Hello 世界"))
	require.NoError(t, err)
	require.Len(t, res.Headings, 1)
	assert.Equal(t, "hello-世界", res.Headings[0].Slug)

	res, err = render.Render([]byte("# 世界 Hello 世界"))
	require.NoError(t, err)
	require.Len(t, res.Headings, 1)
	assert.Equal(t, "世界-hello-世界", res.Headings[0].Slug)
}

func TestRender_DuplicateHeadings(t *testing.T) {
	res, err := render.Render([]byte("# A\n\ntext\n\n# A\n"))
	require.NoError(t, err)

	require.Len(t, res.Headings, 2)
	assert.Equal(t, "a", res.Headings[0].Slug)
	assert.Equal(t, "a-2", res.Headings[1].Slug)
	assert.Contains(t, res.HTML, `<h1 id="a">A</h1>`)
	assert.Contains(t, res.HTML, `<h1 id="a-2">A</h1>`)
}

func TestRender_DeepHeadingNotIndexed(t *testing.T) {
	res, err := render.Render([]byte("#### Deep"))
	require.NoError(t, err)

	assert.Empty(t, res.Headings)
	assert.Contains(t, res.HTML, "<h4>Deep</h4>")
	assert.NotContains(t, res.HTML, "id=")
}

func TestRender_DocumentOrder(t *testing.T) {
	src := `# One

## Two

### Three

#### Four

## Five
`
	res, err := render.Render([]byte(src))
	require.NoError(t, err)

	var got []string
	for _, h := range res.Headings {
		got = append(got, h.Slug)
	}
	assert.Equal(t, []string{"one", "two", "three", "five"}, got)
}

func TestRender_Escaping(t *testing.T) {
	res, err := render.Render([]byte(`# AT&T <"quotes" & 'apostrophes'>`))
	require.NoError(t, err)

	require.Len(t, res.Headings, 1)
	// Raw text for slug derivation stays unescaped.
	assert.Equal(t, `AT&T <"quotes" & 'apostrophes'>`, res.Headings[0].Text)
	assert.Equal(t, "at-t-quotes-apostrophes", res.Headings[0].Slug)
	// The same text inside the tag is escaped.
	assert.Contains(t, res.HTML, "AT&amp;T &lt;&quot;quotes&quot; &amp; &#39;apostrophes&#39;&gt;")
	assert.NotContains(t, res.HTML, `<"quotes"`)
}

func TestRender_InlineMarkup(t *testing.T) {
	res, err := render.Render([]byte("Some *em* and **strong** and `code`.\n"))
	require.NoError(t, err)

	assert.Equal(t, "<p>Some <em>em</em> and <strong>strong</strong> and <code>code</code>.</p>\n", res.HTML)
}

func TestRender_HeadingWithInlineMarkup(t *testing.T) {
	res, err := render.Render([]byte("## Using *goldmark* here"))
	require.NoError(t, err)

	require.Len(t, res.Headings, 1)
	assert.Equal(t, "Using goldmark here", res.Headings[0].Text)
	assert.Equal(t, "using-goldmark-here", res.Headings[0].Slug)
	assert.Contains(t, res.HTML, `<h2 id="using-goldmark-here">Using <em>goldmark</em> here</h2>`)
}

func TestRender_ThematicBreakAndParagraphs(t *testing.T) {
	res, err := render.Render([]byte("first\n\n---\n\nsecond\n"))
	require.NoError(t, err)

	assert.Equal(t, "<p>first</p>\n<hr />\n<p>second</p>\n", res.HTML)
}

func TestRender_FallbackSlug(t *testing.T) {
	res, err := render.Render([]byte("# !!!"), render.WithDiagnostics())
	require.NoError(t, err)

	require.Len(t, res.Headings, 1)
	assert.Equal(t, "section", res.Headings[0].Slug)
	require.Len(t, res.Notes, 1)
	assert.Contains(t, res.Notes[0], "fallback")

	res, err = render.Render([]byte("# !!!"), render.WithFallbackSlug("untitled"))
	require.NoError(t, err)
	assert.Equal(t, "untitled", res.Headings[0].Slug)
}

func TestRender_NoDiagnosticsByDefault(t *testing.T) {
	res, err := render.Render([]byte("# !!!"))
	require.NoError(t, err)
	assert.Empty(t, res.Notes)
}

func TestRender_Idempotent(t *testing.T) {
	src := []byte("# 見出し\n\nbody *text* here\n\n## Sub 節\n")

	first, err := render.Render(src)
	require.NoError(t, err)
	second, err := render.Render(src)
	require.NoError(t, err)

	assert.Equal(t, first.HTML, second.HTML)
	assert.Equal(t, first.Headings, second.Headings)
}

func TestRender_SlugsPairwiseDistinct(t *testing.T) {
	src := []byte("# A\n\n# A\n\n# A-2\n\n# a 2\n\n## A\n")
	res, err := render.Render(src)
	require.NoError(t, err)

	seen := make(map[string]bool)
	for _, h := range res.Headings {
		assert.False(t, seen[h.Slug], "duplicate slug %q", h.Slug)
		seen[h.Slug] = true
	}
}

func TestRender_InvalidEncoding(t *testing.T) {
	res, err := render.Render([]byte{'#', ' ', 0xff, 0xfe})
	assert.ErrorIs(t, err, tokenize.ErrInvalidEncoding)
	assert.Nil(t, res)
}

func TestRender_InputTooLarge(t *testing.T) {
	res, err := render.Render([]byte("# small"), render.WithMaxInputBytes(3))
	assert.ErrorIs(t, err, render.ErrInputTooLarge)
	assert.Nil(t, res)

	_, err = render.Render([]byte("# ok"), render.WithMaxInputBytes(1024))
	assert.NoError(t, err)
}

func TestConsume_EndHeadingWithoutOpen(t *testing.T) {
	stream := event.NewSliceStream([]event.Event{
		{Kind: event.KindStartDocument},
		{Kind: event.KindEndHeading},
	})
	res, err := render.Consume(stream)
	assert.ErrorIs(t, err, render.ErrInvariant)
	assert.Nil(t, res)
}

func TestConsume_NestedHeadingStart(t *testing.T) {
	stream := event.NewSliceStream([]event.Event{
		{Kind: event.KindStartHeading, Level: 1},
		{Kind: event.KindStartHeading, Level: 2},
	})
	_, err := render.Consume(stream)
	assert.ErrorIs(t, err, render.ErrInvariant)
}

func TestConsume_StreamEndsInsideHeading(t *testing.T) {
	stream := event.NewSliceStream([]event.Event{
		{Kind: event.KindStartHeading, Level: 2},
		{Kind: event.KindText, Text: "dangling"},
	})
	_, err := render.Consume(stream)
	assert.ErrorIs(t, err, render.ErrInvariant)
}

// countingStream proves the consumer makes exactly one pass: each event is
// handed out once and Next is called once more to observe exhaustion.
type countingStream struct {
	inner event.Stream
	calls int
}

func (s *countingStream) Next() (event.Event, bool) {
	s.calls++
	return s.inner.Next()
}

func TestConsume_SingleTraversal(t *testing.T) {
	events := []event.Event{
		{Kind: event.KindStartDocument},
		{Kind: event.KindStartHeading, Level: 1},
		{Kind: event.KindText, Text: "One"},
		{Kind: event.KindEndHeading},
		{Kind: event.KindStartHeading, Level: 2},
		{Kind: event.KindText, Text: "Two"},
		{Kind: event.KindEndHeading},
		{Kind: event.KindStartParagraph},
		{Kind: event.KindText, Text: "body"},
		{Kind: event.KindEndParagraph},
		{Kind: event.KindEndDocument},
	}
	cs := &countingStream{inner: event.NewSliceStream(events)}

	res, err := render.Consume(cs)
	require.NoError(t, err)
	require.Len(t, res.Headings, 2)

	// One call per event plus the final exhaustion check, regardless of
	// how many headings the document contains.
	assert.Equal(t, len(events)+1, cs.calls)
}

func TestRender_ConcurrentCallsIndependent(t *testing.T) {
	src := []byte("# Shared Title\n\n## Shared Title\n")

	var wg sync.WaitGroup
	results := make([]*render.Result, 16)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			res, err := render.Render(src)
			assert.NoError(t, err)
			results[i] = res
		}(i)
	}
	wg.Wait()

	for _, res := range results {
		require.NotNil(t, res)
		require.Len(t, res.Headings, 2)
		// Counters reset per call: the duplicate is always "-2", never
		// a number leaked from a sibling render.
		assert.Equal(t, "shared-title", res.Headings[0].Slug)
		assert.Equal(t, "shared-title-2", res.Headings[1].Slug)
	}
}

func TestRender_SlugValidityProperty(t *testing.T) {
	src := []byte(strings.Join([]string{
		"# Plain", "## 日本語", "### Hello 世界", "# 世界 Hello 世界",
		"## a  b", "### !!!", "# !!!", "## A-2", "### A", "# A",
	}, "\n\n"))
	res, err := render.Render(src)
	require.NoError(t, err)

	for _, h := range res.Headings {
		s := h.Slug
		assert.NotEmpty(t, s)
		assert.False(t, strings.HasPrefix(s, "-"), "slug %q", s)
		assert.False(t, strings.HasSuffix(s, "-"), "slug %q", s)
		assert.NotContains(t, s, "--", "slug %q", s)
	}
}
