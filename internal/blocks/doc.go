// Package blocks renders markdown as HTML one line at a time.
//
// Each input line maps to exactly one HTML fragment: a heading line to
// <h1> through <h6>, a "---" line to a horizontal rule, and any other
// line (including an empty one) to a paragraph. There is no inline
// markup, no block nesting, and no escaping: line content is copied
// into its fragment verbatim.
//
// Classification is a fixed prefix table evaluated top to bottom with
// first match winning, so the grammar is total: every line classifies,
// and conversion can never fail.
package blocks
