package main

import (
	"os"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// documentFlags holds document metadata flags.
type documentFlags struct {
	title  string
	author string
	date   string
	lang   string
}

// assetFlags holds asset-related flags (CSS styles, custom asset path).
type assetFlags struct {
	style     string // Name, path, or inline CSS
	assetPath string // Override asset directory
	noStyle   bool   // Disable CSS styling
}

// renderFlags holds flags that alter the shape of the rendered output.
type renderFlags struct {
	fragment      bool // Emit fragments only, no document wrap
	noFrontMatter bool // Do not parse leading YAML front matter
}

// convertFlags holds all flags for the convert command.
type convertFlags struct {
	common   commonFlags
	output   string
	workers  int
	document documentFlags
	assets   assetFlags
	render   renderFlags
}

// previewFlags holds all flags for the preview command.
type previewFlags struct {
	common   commonFlags
	document documentFlags
	assets   assetFlags
	render   renderFlags
	theme    string // chroma style for terminal colors
	plain    bool   // disable coloring
}

// serveFlags holds all flags for the serve command.
type serveFlags struct {
	common   commonFlags
	addr     string
	origins  []string
	logLevel string
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show detailed timing")
}

// addDocumentFlags adds document metadata flags to a FlagSet.
func addDocumentFlags(fs *flag.FlagSet, f *documentFlags) {
	fs.StringVar(&f.title, "doc-title", "", "document title (\"\" = auto from H1)")
	fs.StringVar(&f.author, "doc-author", "", "author meta tag")
	fs.StringVar(&f.date, "doc-date", "", "document date (\"auto\" = today)")
	fs.StringVar(&f.lang, "lang", "", "html lang attribute (e.g., en, pt-BR)")
}

// addAssetFlags adds asset-related flags to a FlagSet.
func addAssetFlags(fs *flag.FlagSet, f *assetFlags) {
	fs.StringVarP(&f.style, "style", "s", "", "CSS style name, file path, or inline CSS")
	fs.StringVar(&f.assetPath, "asset-path", "", "custom asset directory")
	fs.BoolVar(&f.noStyle, "no-style", false, "disable CSS styling")
}

// addRenderFlags adds output shape flags to a FlagSet.
func addRenderFlags(fs *flag.FlagSet, f *renderFlags) {
	fs.BoolVar(&f.fragment, "fragment", false, "emit HTML fragments without the document shell")
	fs.BoolVar(&f.noFrontMatter, "no-front-matter", false, "treat leading --- blocks as content")
}

// parseConvertFlags parses convert command flags and returns positional args.
func parseConvertFlags(args []string) (*convertFlags, []string, error) {
	fs := flag.NewFlagSet("convert", flag.ContinueOnError)
	f := &convertFlags{}

	fs.StringVarP(&f.output, "output", "o", "", "output file or directory (\"-\" = stdout)")
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel workers (0 = auto)")

	addCommonFlags(fs, &f.common)
	addDocumentFlags(fs, &f.document)
	addAssetFlags(fs, &f.assets)
	addRenderFlags(fs, &f.render)

	fs.Usage = func() { printConvertUsage(os.Stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	return f, fs.Args(), nil
}

// parsePreviewFlags parses preview command flags and returns positional args.
func parsePreviewFlags(args []string) (*previewFlags, []string, error) {
	fs := flag.NewFlagSet("preview", flag.ContinueOnError)
	f := &previewFlags{}

	fs.StringVar(&f.theme, "theme", defaultPreviewTheme, "chroma color theme")
	fs.BoolVar(&f.plain, "plain", false, "disable terminal colors")

	addCommonFlags(fs, &f.common)
	addDocumentFlags(fs, &f.document)
	addAssetFlags(fs, &f.assets)
	addRenderFlags(fs, &f.render)

	fs.Usage = func() { printPreviewUsage(os.Stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	return f, fs.Args(), nil
}

// parseServeFlags parses serve command flags and returns positional args.
func parseServeFlags(args []string) (*serveFlags, []string, error) {
	fs := flag.NewFlagSet("serve", flag.ContinueOnError)
	f := &serveFlags{}

	fs.StringVar(&f.addr, "addr", "", "listen address (default :8423)")
	fs.StringSliceVar(&f.origins, "allowed-origins", nil, "CORS origins (default: allow all)")
	fs.StringVar(&f.logLevel, "log-level", "", "log level: debug, info, warn, error")

	addCommonFlags(fs, &f.common)

	fs.Usage = func() { printServeUsage(os.Stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	return f, fs.Args(), nil
}
