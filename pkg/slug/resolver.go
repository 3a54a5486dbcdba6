package slug

import "strconv"

// Resolver disambiguates slug collisions within a single render call.
// It is not safe for concurrent use; each render owns its own Resolver.
type Resolver struct {
	seen map[string]int // slug -> highest suffix handed out (1 = bare form)
}

// NewResolver returns an empty resolver.
func NewResolver() *Resolver {
	return &Resolver{seen: make(map[string]int)}
}

// Resolve returns candidate unchanged on first sight. Repeats get a
// "-N" suffix with N >= 2, skipping any numbered form that an earlier
// heading already claimed as its own slug so two headings never share
// an id.
func (r *Resolver) Resolve(candidate string) string {
	n, ok := r.seen[candidate]
	if !ok {
		r.seen[candidate] = 1
		return candidate
	}
	for i := n + 1; ; i++ {
		numbered := candidate + "-" + strconv.Itoa(i)
		if _, taken := r.seen[numbered]; taken {
			continue
		}
		r.seen[candidate] = i
		r.seen[numbered] = 1
		return numbered
	}
}
