package blocks

import "strings"

// matchPrefix reports whether line starts with prefix and returns the
// rest of the line after it. The comparison is a literal whole-prefix
// check: no trimming, no case folding. An empty line never matches, and
// on a miss the line comes back unchanged. The remainder keeps all of
// its whitespace because content is emitted verbatim.
func matchPrefix(line, prefix string) (bool, string) {
	if line == "" {
		return false, line
	}
	if !strings.HasPrefix(line, prefix) {
		return false, line
	}
	return true, line[len(prefix):]
}
