package md2html

import "github.com/alnah/go-md2html/internal/blocks"

// ToHTML renders markdown text as a sequence of HTML blocks, one per input
// line. It is the fragment-level entry point; use Converter for complete
// documents.
//
// The function is total: it accepts any string, never fails, and never
// panics. Splitting "" on newlines yields a single empty line, so the empty
// input renders as "<p></p>". Output depends only on the input, and the
// function is safe for concurrent use.
//
// Text is emitted verbatim inside the tags. No inline markup is interpreted
// and no HTML escaping is applied, so input containing markup renders as
// that markup.
func ToHTML(text string) string {
	return blocks.Convert(text)
}
