// Package core defines the pipeline interfaces for htmldown.
// Each stage of the pipeline is a clean, testable interface.
package core

import (
	"io"

	"golang.org/x/net/html"
)

// Format names an output format selectable from the CLI.
type Format string

// FormatMarkdown is the Markdown output format (the default).
const FormatMarkdown Format = "markdown"

// Parser turns a raw HTML stream into a document tree.
type Parser interface {
	Parse(r io.Reader) (*html.Node, error)
}

// Renderer converts a parsed document tree into a final output format.
type Renderer interface {
	Render(doc *html.Node) ([]byte, error)
	// Format returns the format this renderer produces.
	Format() Format
}
