package main

import (
	"errors"
	"os"

	md2html "github.com/alnah/go-md2html"
	"github.com/alnah/go-md2html/internal/config"
	"github.com/alnah/go-md2html/internal/dateutil"
	"github.com/alnah/go-md2html/internal/pipeline"
)

// Exit codes returned by the CLI.
const (
	ExitSuccess = 0 // conversion completed
	ExitGeneral = 1 // unexpected failure
	ExitUsage   = 2 // bad flags, config, or input values
	ExitIO      = 3 // file system errors
)

// exitCodeFor maps an error to a process exit code.
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	switch {
	case errors.Is(err, os.ErrNotExist),
		errors.Is(err, os.ErrPermission),
		errors.Is(err, ErrNoInput),
		errors.Is(err, ErrReadMarkdown),
		errors.Is(err, ErrWriteHTML):
		return ExitIO

	case errors.Is(err, config.ErrConfigNotFound),
		errors.Is(err, config.ErrConfigParse),
		errors.Is(err, config.ErrFieldTooLong),
		errors.Is(err, config.ErrEmptyConfigName),
		errors.Is(err, config.ErrInvalidValue),
		errors.Is(err, md2html.ErrEmptyMarkdown),
		errors.Is(err, md2html.ErrTitleTooLong),
		errors.Is(err, md2html.ErrInvalidLang),
		errors.Is(err, md2html.ErrStyleNotFound),
		errors.Is(err, md2html.ErrTemplateNotFound),
		errors.Is(err, md2html.ErrInvalidAssetPath),
		errors.Is(err, pipeline.ErrFrontMatterParse),
		errors.Is(err, dateutil.ErrInvalidDateFormat),
		errors.Is(err, ErrInvalidExtension),
		errors.Is(err, ErrInvalidWorkerCount),
		errors.Is(err, ErrUnsupportedShell):
		return ExitUsage
	}

	return ExitGeneral
}
