// Package render provides output renderers for the htmldown pipeline.
// This file implements the Markdown renderer, backed by the core converter.
package render

import (
	"github.com/gaurav-prasanna/htmldown/core"
	"github.com/gaurav-prasanna/htmldown/core/markdown"
	"golang.org/x/net/html"
)

// MarkdownRenderer renders a document tree as Markdown text.
type MarkdownRenderer struct {
	converter *markdown.Converter
}

// NewMarkdownRenderer creates a MarkdownRenderer. Options are passed
// through to the converter.
func NewMarkdownRenderer(opts ...markdown.Option) *MarkdownRenderer {
	return &MarkdownRenderer{converter: markdown.New(opts...)}
}

// Render converts the document to Markdown bytes.
func (r *MarkdownRenderer) Render(doc *html.Node) ([]byte, error) {
	return []byte(r.converter.Convert(doc)), nil
}

// Format returns the Markdown format name.
func (r *MarkdownRenderer) Format() core.Format {
	return core.FormatMarkdown
}
