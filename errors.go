package md2html

import "errors"

// Sentinel errors for library operations.
var (
	ErrEmptyMarkdown = errors.New("markdown content cannot be empty")

	// Input validation errors.
	ErrTitleTooLong = errors.New("title exceeds maximum length")
	ErrInvalidLang  = errors.New("invalid language tag")

	// Asset loading errors.
	ErrStyleNotFound    = errors.New("style not found")
	ErrTemplateNotFound = errors.New("template not found")
	ErrInvalidAssetPath = errors.New("invalid asset path")
)
