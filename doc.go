// Package md2html converts line-oriented Markdown documents to HTML.
//
// # Quick Start
//
// For plain fragment output, call ToHTML:
//
//	html := md2html.ToHTML("# Hello World\n\nSome text.")
//	// <h1>Hello World</h1><p></p><p>Some text.</p>
//
// For complete documents with front matter, styling, and metadata, create
// a Converter:
//
//	conv, err := md2html.NewConverter(md2html.WithStyle("document"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	result, err := conv.Convert(ctx, md2html.Input{
//	    Markdown: "# Hello\n\nWorld",
//	    Title:    "Greeting",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("output.html", result.HTML, 0644)
//
// # Line Grammar
//
// Every line of input produces exactly one HTML block. A line starting
// with one to six '#' characters followed by a space renders as the
// matching heading level, a line starting with "---" renders as a
// horizontal rule, and every other line, including the empty line,
// renders as a paragraph. Inline markup is not interpreted and text is
// not HTML-escaped; what you write inside a line is what appears inside
// the tag.
//
// # Conversion Pipeline
//
// Converter.Convert runs these stages:
//
//  1. Preprocessing (newline normalization, blank line compression)
//  2. YAML front matter extraction
//  3. Line-by-line block conversion
//  4. HTML5 document wrapping with title, author, date, and lang metadata
//  5. CSS injection into the document head
//
// ToHTML runs only stage 3 and never fails.
//
// # Configuration
//
// Use functional options to customize the converter:
//
//	conv, err := md2html.NewConverter(
//	    md2html.WithStyle("dark"),
//	    md2html.WithDocumentLang("en"),
//	    md2html.WithAssetPath("/path/to/custom/assets"),
//	)
//
// WithStyle accepts a built-in style name, a path to a CSS file, or
// literal CSS content. Per-conversion options are passed via Input:
//
//	result, err := conv.Convert(ctx, md2html.Input{
//	    Markdown: content,
//	    Title:    "Report",
//	    Author:   "Jane Doe",
//	    Date:     "2025-03-07",
//	    CSS:      "p { line-height: 1.8; }",
//	    Fragment: false,
//	})
//
// # Front Matter
//
// Documents may open with a YAML block delimited by "---" lines:
//
//	---
//	title: My Document
//	author: Jane Doe
//	style: dark
//	---
//	# Content starts here
//
// Front matter fields take precedence over Input fields and converter
// options for that document. Disable extraction with WithFrontMatter(false)
// or per call with Input.NoFrontMatter.
//
// # Custom Assets
//
// Override built-in styles and templates using an asset directory:
//
//	conv, err := md2html.NewConverter(md2html.WithAssetPath("/path/to/assets"))
//
// Asset directory structure:
//
//	assets/
//	├── styles/
//	│   └── custom.css
//	└── templates/
//	    └── editor.html
//
// Built-in styles are listed by BuiltinStyles. Implement AssetLoader for
// other backends.
package md2html
