package blocks

import "strings"

// Convert renders markdown text as a flat sequence of HTML fragments.
// The input is split on "\n", each line is classified and rendered
// independently, and the fragments are concatenated without separators.
// Splitting an empty string still yields one empty line, so Convert("")
// returns "<p></p>".
//
// Convert is deterministic and total: the same input always produces
// byte-identical output, and no input can make it fail.
func Convert(text string) string {
	lines := strings.Split(text, "\n")
	doc := document{fragments: make([]string, 0, len(lines))}
	for _, line := range lines {
		doc.add(renderLine(line))
	}
	return doc.html()
}
