package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/alecthomas/chroma/v2/quick"
	flag "github.com/spf13/pflag"

	md2html "github.com/alnah/go-md2html"
	"github.com/alnah/go-md2html/internal/config"
)

// defaultPreviewTheme is the chroma style used when --theme is not given.
const defaultPreviewTheme = "monokai"

// runPreviewCmd parses arguments and runs the preview command.
func runPreviewCmd(args []string, env *Environment) int {
	flags, positional, err := parsePreviewFlags(args)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return ExitSuccess
		}
		fmt.Fprintln(env.Stderr, "Error:", err)
		return ExitUsage
	}

	ctx, stop := notifyContext(context.Background())
	defer stop()

	if err := runPreview(ctx, flags, positional, env); err != nil {
		fmt.Fprintln(env.Stderr, "Error:", err)
		return exitCodeFor(err)
	}
	return ExitSuccess
}

// runPreview converts a single file and writes syntax-highlighted HTML
// to stdout. The highlighting changes only the terminal presentation,
// never the HTML itself.
func runPreview(ctx context.Context, flags *previewFlags, args []string, env *Environment) error {
	if len(args) == 0 {
		return ErrNoInput
	}
	inputPath := args[0]
	if err := validateMarkdownExtension(inputPath); err != nil {
		return err
	}

	cfg, err := loadMergedConfig(flags.common.config, env)
	if err != nil {
		return err
	}
	mergePreviewFlags(flags, cfg)

	resolvedDate, err := md2html.ResolveDate(cfg.Document.Date, env.Now())
	if err != nil {
		return err
	}
	cfg.Document.Date = resolvedDate

	content, err := os.ReadFile(inputPath) // #nosec G304 -- user-provided path
	if err != nil {
		return fmt.Errorf("%w: %v", ErrReadMarkdown, err)
	}

	conv, err := buildConverter(cfg)
	if err != nil {
		return err
	}

	result, err := conv.Convert(ctx, buildInput(string(content), inputPath, cfg))
	if err != nil {
		return err
	}

	if flags.plain {
		_, err = env.Stdout.Write(result.HTML)
		return err
	}

	if err := quick.Highlight(env.Stdout, string(result.HTML), "html", "terminal256", flags.theme); err != nil {
		// Highlighting failure degrades to uncolored output.
		_, werr := env.Stdout.Write(result.HTML)
		return werr
	}
	return nil
}

// mergePreviewFlags merges preview CLI flags into config.
func mergePreviewFlags(flags *previewFlags, cfg *config.Config) {
	mergeDocumentFlags(&flags.document, cfg)
	mergeAssetFlags(&flags.assets, cfg)
	mergeRenderFlags(&flags.render, cfg)
}
