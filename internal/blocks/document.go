package blocks

import "strings"

// document accumulates rendered fragments in insertion order. It never
// inspects, merges, or reorders what it holds.
type document struct {
	fragments []string
}

// add appends fragments in call order. Duplicates are kept.
func (d *document) add(fragments ...string) {
	d.fragments = append(d.fragments, fragments...)
}

// html returns the accumulated fragments joined with no separator.
func (d *document) html() string {
	return strings.Join(d.fragments, "")
}
