package blocks

// rule pairs a line prefix with the Kind it produces.
type rule struct {
	prefix string
	kind   Kind
}

// rules is evaluated in order with first match winning. Heading prefixes
// are longest first so "### " is tested before "## "; each includes the
// trailing space, which is why "####heading" classifies as a paragraph.
// "---" matches any line starting with three dashes, so "----" is a rule
// with remainder "-". Lines matching no rule are paragraphs.
//
// The table is fixed at init and never mutated, so classification is
// safe for concurrent use.
var rules = []rule{
	{"###### ", KindHeading6},
	{"##### ", KindHeading5},
	{"#### ", KindHeading4},
	{"### ", KindHeading3},
	{"## ", KindHeading2},
	{"# ", KindHeading1},
	{"---", KindHorizontalRule},
}

// classify maps a line to its Kind and content remainder. The paragraph
// default keeps the whole line as content, so classification is total.
func classify(line string) (Kind, string) {
	for _, r := range rules {
		if ok, rest := matchPrefix(line, r.prefix); ok {
			return r.kind, rest
		}
	}
	return KindParagraph, line
}

// renderLine wraps a line's classified content in its element tags.
func renderLine(line string) string {
	kind, content := classify(line)
	return openingTag(kind) + content + closingTag(kind)
}
