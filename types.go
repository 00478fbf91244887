package md2html

// MaxTitleLength bounds Input.Title. Longer titles are almost certainly
// a caller passing document content by mistake.
const MaxTitleLength = 200

// Input contains conversion parameters.
type Input struct {
	Markdown string // Markdown content (required)
	Title    string // Document title (optional, falls back to "Document")
	Author   string // Author meta tag (optional)
	Date     string // Date meta tag, passed through as given (optional)
	CSS      string // Extra CSS appended after the converter style (optional)
	Lang     string // html lang attribute for this document (optional)

	// Fragment skips document wrapping and CSS injection, returning only
	// the rendered blocks.
	Fragment bool

	// NoFrontMatter skips front matter extraction for this document even
	// when the converter has it enabled.
	NoFrontMatter bool
}

// Meta describes the document metadata that produced a conversion,
// merged from front matter, Input fields, and converter options.
type Meta struct {
	Title  string
	Author string
	Date   string
	Lang   string
	Style  string // style requested by front matter, empty otherwise
}

// ConvertResult holds the conversion output.
type ConvertResult struct {
	HTML []byte // rendered document, or bare fragments in Fragment mode
	Meta *Meta  // effective metadata for the document
}

// Option configures a Converter.
type Option func(*Converter)

// converterConfig holds internal configuration for Converter.
type converterConfig struct {
	styleInput    string // style name, file path, or CSS content as given
	resolvedStyle string // CSS content after resolution
	assetPath     string // custom asset directory
	lang          string // default html lang attribute
	frontMatter   bool   // extract YAML front matter
}

// WithStyle sets the base stylesheet. Accepts a built-in style name
// (e.g. "document"), a path to a CSS file, or literal CSS content.
func WithStyle(style string) Option {
	return func(c *Converter) {
		c.cfg.styleInput = style
	}
}

// WithAssetPath sets a directory to load custom styles and templates from,
// with fallback to the embedded assets.
func WithAssetPath(path string) Option {
	return func(c *Converter) {
		c.cfg.assetPath = path
	}
}

// WithAssetLoader sets a custom asset loader. Takes precedence over
// WithAssetPath.
func WithAssetLoader(loader AssetLoader) Option {
	return func(c *Converter) {
		c.publicAssetLoader = loader
	}
}

// WithDocumentLang sets the default lang attribute for wrapped documents.
// Front matter and Input.Lang override it per document.
func WithDocumentLang(lang string) Option {
	return func(c *Converter) {
		c.cfg.lang = lang
	}
}

// WithFrontMatter enables or disables YAML front matter extraction.
// Enabled by default.
func WithFrontMatter(enabled bool) Option {
	return func(c *Converter) {
		c.cfg.frontMatter = enabled
	}
}
