package pipeline

import (
	"context"

	"github.com/alnah/go-md2html/internal/blocks"
)

// HTMLConverter defines the contract for markdown-to-HTML conversion.
type HTMLConverter interface {
	ToHTML(ctx context.Context, content string) (string, error)
}

// BlockConverter converts markdown to HTML fragments one line at a time.
type BlockConverter struct{}

// NewBlockConverter creates the line-oriented converter stage.
func NewBlockConverter() *BlockConverter {
	return &BlockConverter{}
}

// ToHTML renders content as a flat stream of HTML fragments. The
// conversion itself is total and cannot fail; the error return satisfies
// the stage contract and reports context cancellation only.
func (c *BlockConverter) ToHTML(ctx context.Context, content string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return blocks.Convert(content), nil
}
