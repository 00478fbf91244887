package md2html

import (
	"context"
	"fmt"
	"os"
	"regexp"

	"github.com/alnah/go-md2html/internal/assets"
	"github.com/alnah/go-md2html/internal/fileutil"
	"github.com/alnah/go-md2html/internal/pipeline"
)

// Compile-time interface implementation checks.
// These ensure implementations satisfy their interfaces at compile time,
// catching signature mismatches before runtime.
var (
	_ pipeline.MarkdownPreprocessor = (*pipeline.LinePreprocessor)(nil)
	_ pipeline.FrontMatterExtractor = (*pipeline.YAMLFrontMatter)(nil)
	_ pipeline.HTMLConverter        = (*pipeline.BlockConverter)(nil)
	_ pipeline.DocumentWrapper      = (*pipeline.HTML5Wrapper)(nil)
	_ pipeline.CSSInjector          = (*pipeline.CSSInjection)(nil)
)

// langPattern matches BCP 47 style language tags: a 2-3 letter primary
// subtag followed by optional alphanumeric subtags ("en", "en-US", "pt-BR").
var langPattern = regexp.MustCompile(`^[A-Za-z]{2,3}(-[A-Za-z0-9]{2,8})*$`)

// Converter orchestrates the markdown-to-HTML conversion pipeline.
// Create with NewConverter and use Convert for conversion. A Converter is
// safe for concurrent use.
type Converter struct {
	cfg               converterConfig
	assetLoader       assets.AssetLoader
	publicAssetLoader AssetLoader // from WithAssetLoader
	preprocessor      pipeline.MarkdownPreprocessor
	frontMatter       pipeline.FrontMatterExtractor
	htmlConverter     pipeline.HTMLConverter
	wrapper           pipeline.DocumentWrapper
	cssInjector       pipeline.CSSInjector
}

// NewConverter creates a Converter with default configuration.
// Use options to customize behavior (e.g., WithStyle, WithAssetPath).
// Returns an error if asset loading or style resolution fails.
func NewConverter(opts ...Option) (*Converter, error) {
	c := &Converter{
		cfg:           converterConfig{frontMatter: true},
		assetLoader:   assets.NewEmbeddedLoader(),
		preprocessor:  &pipeline.LinePreprocessor{},
		frontMatter:   &pipeline.YAMLFrontMatter{},
		htmlConverter: pipeline.NewBlockConverter(),
		wrapper:       &pipeline.HTML5Wrapper{},
		cssInjector:   &pipeline.CSSInjection{},
	}

	for _, opt := range opts {
		opt(c)
	}

	// Handle WithAssetPath: resolve to internal loader
	if c.cfg.assetPath != "" {
		resolver, err := assets.NewAssetResolver(c.cfg.assetPath)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidAssetPath, err)
		}
		c.assetLoader = resolver
	}

	// Handle WithAssetLoader: the public interface carries the same method
	// set as the internal one, so the value is assignable directly.
	if c.publicAssetLoader != nil {
		c.assetLoader = c.publicAssetLoader
	}

	if c.cfg.lang != "" && !langPattern.MatchString(c.cfg.lang) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidLang, c.cfg.lang)
	}

	// Resolve style input (name, path, or CSS content) to CSS content
	if err := c.resolveStyle(); err != nil {
		return nil, err
	}

	return c, nil
}

// Convert runs the full pipeline and returns the result containing HTML
// and the effective document metadata.
// The context is used for cancellation.
// Recovers from internal panics to prevent crashes from propagating to callers.
func (c *Converter) Convert(ctx context.Context, input Input) (result *ConvertResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("internal error: %v", r)
		}
	}()

	if err := c.validateInput(input); err != nil {
		return nil, err
	}

	// Preprocess markdown
	mdContent := c.preprocessor.PreprocessMarkdown(ctx, input.Markdown)
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	// Extract front matter
	var fm *pipeline.Meta
	if c.cfg.frontMatter && !input.NoFrontMatter {
		fm, mdContent, err = c.frontMatter.ExtractFrontMatter(ctx, mdContent)
		if err != nil {
			return nil, fmt.Errorf("extracting front matter: %w", err)
		}
	}

	// Convert to HTML fragments
	htmlContent, err := c.htmlConverter.ToHTML(ctx, mdContent)
	if err != nil {
		return nil, fmt.Errorf("converting to HTML: %w", err)
	}

	meta, err := c.documentMeta(input, fm)
	if err != nil {
		return nil, err
	}

	// Fragment mode: no document wrap, no CSS
	if input.Fragment {
		return &ConvertResult{HTML: []byte(htmlContent), Meta: meta}, nil
	}

	// Wrap fragments in a complete HTML5 document
	htmlContent = c.wrapper.WrapDocument(ctx, htmlContent, pipeline.DocumentMeta{
		Title:  meta.Title,
		Author: meta.Author,
		Date:   meta.Date,
		Lang:   meta.Lang,
	})
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	// Build combined CSS (converter style + user CSS)
	// Order matters: converter style first (base), user CSS last (can override)
	cssContent := c.cfg.resolvedStyle
	if meta.Style != "" {
		styleCSS, err := c.styleContent(meta.Style)
		if err != nil {
			return nil, fmt.Errorf("loading front matter style %q: %w", meta.Style, err)
		}
		cssContent = styleCSS
	}
	if input.CSS != "" {
		cssContent += "\n" + input.CSS
	}

	// Inject CSS
	htmlContent = c.cssInjector.InjectCSS(ctx, htmlContent, cssContent)
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	return &ConvertResult{HTML: []byte(htmlContent), Meta: meta}, nil
}

// resolveStyle resolves the style input (name, path, or CSS content) to CSS
// content. Called during NewConverter after options are applied and the
// asset loader is configured.
func (c *Converter) resolveStyle() error {
	if c.cfg.styleInput == "" {
		return nil // no style specified
	}

	content, err := c.styleContent(c.cfg.styleInput)
	if err != nil {
		return fmt.Errorf("loading style %q: %w", c.cfg.styleInput, err)
	}
	c.cfg.resolvedStyle = content
	return nil
}

// styleContent resolves a style reference to CSS content.
// A reference containing a path separator is read as a file, one containing
// '{' is taken as literal CSS, and anything else is looked up by name
// through the asset loader.
func (c *Converter) styleContent(ref string) (string, error) {
	if fileutil.IsFilePath(ref) {
		content, err := os.ReadFile(ref) // #nosec G304 -- user-provided path
		if err != nil {
			return "", err
		}
		return string(content), nil
	}

	if fileutil.IsCSS(ref) {
		return ref, nil
	}

	css, err := c.assetLoader.LoadStyle(ref)
	if err != nil {
		return "", convertAssetError(err)
	}
	return css, nil
}

// documentMeta merges metadata for one conversion. Front matter fields win
// over Input fields, which win over converter defaults.
func (c *Converter) documentMeta(input Input, fm *pipeline.Meta) (*Meta, error) {
	meta := &Meta{
		Title:  input.Title,
		Author: input.Author,
		Date:   input.Date,
		Lang:   input.Lang,
	}
	if meta.Lang == "" {
		meta.Lang = c.cfg.lang
	}

	if fm != nil {
		if fm.Title != "" {
			meta.Title = fm.Title
		}
		if fm.Author != "" {
			meta.Author = fm.Author
		}
		if fm.Date != "" {
			meta.Date = fm.Date
		}
		if fm.Lang != "" {
			meta.Lang = fm.Lang
		}
		meta.Style = fm.Style
	}

	// Front matter lang comes from the document, so it gets the same
	// validation as caller-provided values.
	if meta.Lang != "" && !langPattern.MatchString(meta.Lang) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidLang, meta.Lang)
	}

	return meta, nil
}

// validateInput checks that required fields are present and valid.
//
// This is a TRUST BOUNDARY for direct library users who build Input manually.
// CLI users have their input validated earlier by Config.Validate() at config
// load time. Both paths converge here.
func (c *Converter) validateInput(input Input) error {
	if input.Markdown == "" {
		return ErrEmptyMarkdown
	}
	if len(input.Title) > MaxTitleLength {
		return fmt.Errorf("%w: %d chars, max %d", ErrTitleTooLong, len(input.Title), MaxTitleLength)
	}
	if input.Lang != "" && !langPattern.MatchString(input.Lang) {
		return fmt.Errorf("%w: %q", ErrInvalidLang, input.Lang)
	}
	return nil
}
