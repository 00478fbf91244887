package pipeline

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/alnah/go-md2html/internal/yamlutil"
)

// ErrFrontMatterParse indicates a front matter block that is not valid YAML.
var ErrFrontMatterParse = errors.New("front matter parse failed")

// Meta holds document metadata parsed from YAML front matter. Unknown
// keys in the block are ignored.
type Meta struct {
	Title  string `yaml:"title"`
	Author string `yaml:"author"`
	Date   string `yaml:"date"`
	Lang   string `yaml:"lang"`
	Style  string `yaml:"style"`
}

// FrontMatterExtractor defines the contract for front matter extraction.
type FrontMatterExtractor interface {
	ExtractFrontMatter(ctx context.Context, content string) (*Meta, string, error)
}

// YAMLFrontMatter extracts a leading YAML metadata block.
type YAMLFrontMatter struct{}

// ExtractFrontMatter splits content into parsed metadata and body.
//
// A front matter block opens only when the very first line is exactly
// "---" and closes at the next line that is exactly "---" or "...". Any
// other leading "---" line keeps its horizontal rule meaning, as does an
// opener with no closer: in both cases the content comes back unchanged
// with nil metadata. The returned body starts at the line after the
// closer.
func (f *YAMLFrontMatter) ExtractFrontMatter(ctx context.Context, content string) (*Meta, string, error) {
	if err := ctx.Err(); err != nil {
		return nil, content, err
	}

	lines := strings.Split(content, "\n")
	if lines[0] != "---" {
		return nil, content, nil
	}

	closer := -1
	for i := 1; i < len(lines); i++ {
		if lines[i] == "---" || lines[i] == "..." {
			closer = i
			break
		}
	}
	if closer == -1 {
		return nil, content, nil
	}

	body := strings.Join(lines[closer+1:], "\n")

	meta := &Meta{}
	block := strings.Join(lines[1:closer], "\n")
	if strings.TrimSpace(block) == "" {
		return meta, body, nil
	}
	if err := yamlutil.Unmarshal([]byte(block), meta); err != nil {
		return nil, "", fmt.Errorf("%w: %v", ErrFrontMatterParse, err)
	}
	return meta, body, nil
}
