// Package pipeline implements the markdown-to-HTML conversion stages.
//
// The stages cover the full path from raw text to a styled document:
//   - Markdown preprocessing (line ending normalization, blank line limits)
//   - YAML front matter detection and parsing
//   - Line-by-line block conversion to HTML fragments
//   - Wrapping fragments in a complete HTML5 document
//   - CSS injection into wrapped documents
//
// Each stage carries its own small contract interface so the converter in
// the root package can swap implementations in tests. Stages take a
// context and honor cancellation, but none of them block: conversion is
// pure string work.
package pipeline
