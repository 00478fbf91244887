package pipeline

import (
	"context"
	"fmt"
	"html"
	"strings"
)

// DefaultTitle is used when neither input nor front matter provides one.
const DefaultTitle = "Document"

// documentTemplate is the HTML5 skeleton around converted fragments.
// Slots: html attributes, head metadata, escaped title, body content.
const documentTemplate = `<!DOCTYPE html>
<html%s>
<head>
<meta charset="utf-8">
%s<title>%s</title>
</head>
<body>
%s
</body>
</html>`

// DocumentMeta carries the head fields for a wrapped document.
type DocumentMeta struct {
	Title  string
	Author string
	Date   string
	Lang   string
}

// DocumentWrapper defines the contract for wrapping fragments in a document.
type DocumentWrapper interface {
	WrapDocument(ctx context.Context, fragments string, meta DocumentMeta) string
}

// HTML5Wrapper wraps fragment streams in a minimal HTML5 document.
type HTML5Wrapper struct{}

// WrapDocument builds a standalone HTML5 document around fragments.
// Title, author, date, and lang are HTML-escaped on the way into the
// head; the fragments are inserted as-is since the block converter
// already produced the final body markup.
func (w *HTML5Wrapper) WrapDocument(ctx context.Context, fragments string, meta DocumentMeta) string {
	if ctx.Err() != nil {
		return fragments
	}

	var attrs string
	if meta.Lang != "" {
		attrs = ` lang="` + html.EscapeString(meta.Lang) + `"`
	}

	var head strings.Builder
	if meta.Author != "" {
		head.WriteString(`<meta name="author" content="` + html.EscapeString(meta.Author) + "\">\n")
	}
	if meta.Date != "" {
		head.WriteString(`<meta name="date" content="` + html.EscapeString(meta.Date) + "\">\n")
	}

	title := meta.Title
	if title == "" {
		title = DefaultTitle
	}

	return fmt.Sprintf(documentTemplate, attrs, head.String(), html.EscapeString(title), fragments)
}
