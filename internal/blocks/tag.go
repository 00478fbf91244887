package blocks

// Kind identifies a block-level element produced by line classification.
type Kind int

// Block kinds recognized by the classifier.
const (
	KindParagraph Kind = iota
	KindHeading1
	KindHeading2
	KindHeading3
	KindHeading4
	KindHeading5
	KindHeading6
	KindHorizontalRule
)

// fallbackElement is the element name for kinds missing from the catalog.
const fallbackElement = "p"

// elementNames maps each Kind to its HTML element name. Horizontal rules
// share the uniform open/close fragment shape of every other kind, so a
// rule renders as <hr></hr>; browsers ignore the redundant closing tag.
var elementNames = map[Kind]string{
	KindParagraph:      "p",
	KindHeading1:       "h1",
	KindHeading2:       "h2",
	KindHeading3:       "h3",
	KindHeading4:       "h4",
	KindHeading5:       "h5",
	KindHeading6:       "h6",
	KindHorizontalRule: "hr",
}

// elementName returns the HTML element name for k. Unknown kinds fall
// back to a paragraph so rendering stays total.
func elementName(k Kind) string {
	if name, ok := elementNames[k]; ok {
		return name
	}
	return fallbackElement
}

// openingTag returns the opening tag for k, e.g. "<h2>".
func openingTag(k Kind) string {
	return "<" + elementName(k) + ">"
}

// closingTag returns the closing tag for k, e.g. "</h2>".
func closingTag(k Kind) string {
	return "</" + elementName(k) + ">"
}
