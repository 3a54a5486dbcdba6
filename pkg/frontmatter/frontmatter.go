// Package frontmatter extracts a leading YAML metadata block from Markdown
// source before it reaches the renderer.
package frontmatter

import (
	"bytes"
	"fmt"

	"gopkg.in/yaml.v3"
)

var delimiter = []byte("---")

// Extract splits src into its YAML front matter and the remaining body.
// A front matter block is an opening "---" on the very first line and a
// closing "---" (or "...") line; anything else returns a nil metadata map
// and src unchanged. Malformed YAML inside a well-delimited block is an
// error rather than silently treated as content.
func Extract(src []byte) (map[string]any, []byte, error) {
	block, body, found := split(src)
	if !found {
		return nil, src, nil
	}

	meta := make(map[string]any)
	if err := yaml.Unmarshal(block, &meta); err != nil {
		return nil, nil, fmt.Errorf("front matter: %w", err)
	}
	if len(meta) == 0 {
		meta = nil
	}
	return meta, body, nil
}

// Detect reports whether src begins with a well-delimited front matter
// block, without parsing it.
func Detect(src []byte) bool {
	_, _, found := split(src)
	return found
}

func split(src []byte) (block, body []byte, found bool) {
	rest, ok := cutLine(src, delimiter)
	if !ok {
		return nil, nil, false
	}

	offset := len(src) - len(rest)
	for len(rest) > 0 {
		line := rest
		next := []byte(nil)
		if i := bytes.IndexByte(rest, '\n'); i >= 0 {
			line = rest[:i]
			next = rest[i+1:]
		}
		trimmed := bytes.TrimRight(line, " \t\r")
		if bytes.Equal(trimmed, delimiter) || bytes.Equal(trimmed, []byte("...")) {
			end := len(src) - len(rest)
			return src[offset:end], next, true
		}
		rest = next
	}
	return nil, nil, false
}

// cutLine consumes the first line of src if it equals prefix exactly
// (ignoring trailing whitespace) and returns the remainder.
func cutLine(src, prefix []byte) ([]byte, bool) {
	i := bytes.IndexByte(src, '\n')
	if i < 0 {
		return nil, false
	}
	line := bytes.TrimRight(src[:i], " \t\r")
	if !bytes.Equal(line, prefix) {
		return nil, false
	}
	return src[i+1:], true
}
