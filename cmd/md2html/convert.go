package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	flag "github.com/spf13/pflag"

	md2html "github.com/alnah/go-md2html"
	"github.com/alnah/go-md2html/internal/config"
	"github.com/alnah/go-md2html/internal/hints"
)

// runConvertCmd parses arguments and runs the convert command.
func runConvertCmd(args []string, env *Environment) int {
	flags, positional, err := parseConvertFlags(args)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return ExitSuccess
		}
		fmt.Fprintln(env.Stderr, "Error:", err)
		return ExitUsage
	}

	setupMaxProcs(flags.common.verbose, env)

	ctx, stop := notifyContext(context.Background())
	defer stop()

	if err := runConvert(ctx, flags, positional, env); err != nil {
		fmt.Fprintln(env.Stderr, "Error:", err)
		return exitCodeFor(err)
	}
	return ExitSuccess
}

// runConvert orchestrates the conversion process.
func runConvert(ctx context.Context, flags *convertFlags, args []string, env *Environment) error {
	if err := validateWorkers(flags.workers); err != nil {
		return err
	}

	cfg, err := loadMergedConfig(flags.common.config, env)
	if err != nil {
		return err
	}

	// Merge CLI flags into config (CLI wins)
	mergeConvertFlags(flags, cfg)

	// Resolve "auto" dates once so every file in the batch gets the same day.
	resolvedDate, err := md2html.ResolveDate(cfg.Document.Date, env.Now())
	if err != nil {
		return err
	}
	cfg.Document.Date = resolvedDate

	inputPath, err := resolveInputPath(args, cfg)
	if err != nil {
		return err
	}

	if flags.output == "-" {
		return convertToStdout(ctx, inputPath, cfg, env)
	}

	outputDir := resolveOutputDir(flags.output, cfg)

	files, err := discoverFiles(inputPath, outputDir)
	if err != nil {
		return fmt.Errorf("discovering files: %w", err)
	}
	if len(files) == 0 {
		return fmt.Errorf("no markdown files found in %s", inputPath)
	}

	conv, err := buildConverter(cfg)
	if err != nil {
		return err
	}

	workers := md2html.ResolvePoolSize(flags.workers)
	results := convertBatch(ctx, conv, workers, files, cfg)

	failed := printResultsWithWriter(results, flags.common.quiet, flags.common.verbose, env)
	if failed > 0 {
		return fmt.Errorf("%d conversion(s) failed", failed)
	}
	return nil
}

// loadMergedConfig builds the effective configuration: defaults, then the
// config file (from --config or MD2HTML_CONFIG), then environment
// variables on top of whatever the file left empty.
func loadMergedConfig(configFlag string, env *Environment) (*config.Config, error) {
	envCfg := loadEnvConfig()
	warnUnknownEnvVars(env.Stderr)

	name := configFlag
	if name == "" {
		name = envCfg.ConfigPath
	}

	cfg := config.DefaultConfig()
	if name != "" {
		loaded, err := config.LoadConfig(name)
		if err != nil {
			if errors.Is(err, config.ErrConfigNotFound) {
				return nil, fmt.Errorf("loading config: %w%s", err, hints.ForConfigNotFound(config.SearchPaths(name)))
			}
			return nil, fmt.Errorf("loading config: %w", err)
		}
		cfg = loaded
	}

	applyEnvConfig(envCfg, cfg)
	return cfg, nil
}

// mergeConvertFlags merges CLI flags into config. CLI values override
// config and environment values.
func mergeConvertFlags(flags *convertFlags, cfg *config.Config) {
	mergeDocumentFlags(&flags.document, cfg)
	mergeAssetFlags(&flags.assets, cfg)
	mergeRenderFlags(&flags.render, cfg)
}

// mergeDocumentFlags merges document metadata flags into config.
func mergeDocumentFlags(flags *documentFlags, cfg *config.Config) {
	if flags.title != "" {
		cfg.Document.Title = flags.title
	}
	if flags.author != "" {
		cfg.Document.Author = flags.author
	}
	if flags.date != "" {
		cfg.Document.Date = flags.date
	}
	if flags.lang != "" {
		cfg.Document.Lang = flags.lang
	}
}

// mergeAssetFlags merges style and asset flags into config.
func mergeAssetFlags(flags *assetFlags, cfg *config.Config) {
	if flags.style != "" {
		cfg.CSS.Style = flags.style
	}
	if flags.assetPath != "" {
		cfg.Assets.BasePath = flags.assetPath
	}

	// --no-style wins over any configured style.
	if flags.noStyle {
		cfg.CSS.Style = ""
	}
}

// mergeRenderFlags merges output shape flags into config.
func mergeRenderFlags(flags *renderFlags, cfg *config.Config) {
	if flags.fragment {
		cfg.Document.Fragment = true
	}
	if flags.noFrontMatter {
		cfg.Document.FrontMatter = false
	}
}

// resolveInputPath determines the input path from args or config.
func resolveInputPath(args []string, cfg *config.Config) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	if cfg.Input.DefaultDir != "" {
		return cfg.Input.DefaultDir, nil
	}
	return "", ErrNoInput
}

// resolveOutputDir determines the output directory from flag or config.
func resolveOutputDir(flagOutput string, cfg *config.Config) string {
	if flagOutput != "" {
		return flagOutput
	}
	return cfg.Output.DefaultDir
}

// buildConverter constructs the library converter from the merged config.
func buildConverter(cfg *config.Config) (*md2html.Converter, error) {
	var opts []md2html.Option
	if cfg.CSS.Style != "" {
		opts = append(opts, md2html.WithStyle(cfg.CSS.Style))
	}
	if cfg.Assets.BasePath != "" {
		opts = append(opts, md2html.WithAssetPath(cfg.Assets.BasePath))
	}
	if cfg.Document.Lang != "" {
		opts = append(opts, md2html.WithDocumentLang(cfg.Document.Lang))
	}
	opts = append(opts, md2html.WithFrontMatter(cfg.Document.FrontMatter))

	conv, err := md2html.NewConverter(opts...)
	if err != nil {
		if errors.Is(err, md2html.ErrStyleNotFound) {
			return nil, fmt.Errorf("%w%s", err, hints.ForStyleNotFound(md2html.BuiltinStyles()))
		}
		return nil, err
	}
	return conv, nil
}

// convertToStdout converts a single file and writes the HTML to stdout.
// Directory inputs are rejected through the extension check.
func convertToStdout(ctx context.Context, inputPath string, cfg *config.Config, env *Environment) error {
	if err := validateMarkdownExtension(inputPath); err != nil {
		return err
	}

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

	_, err = env.Stdout.Write(result.HTML)
	return err
}

// documentTitle resolves the title for one document: config value first,
// then the file's first # heading, then the file name.
func documentTitle(cfg *config.Config, content, inputPath string) string {
	if cfg.Document.Title != "" {
		return cfg.Document.Title
	}
	if h := extractFirstHeading(content); h != "" {
		return h
	}
	return strings.TrimSuffix(filepath.Base(inputPath), filepath.Ext(inputPath))
}

// extractFirstHeading returns the text of the first H1 line. Only the
// literal "# " prefix counts, matching what the renderer treats as H1.
func extractFirstHeading(markdown string) string {
	for _, line := range strings.Split(markdown, "\n") {
		if text, ok := strings.CutPrefix(line, "# "); ok {
			return strings.TrimSpace(text)
		}
	}
	return ""
}
