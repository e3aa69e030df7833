package render

import (
	"fmt"
	"strings"

	"github.com/gaurav-prasanna/htmldown/core"
	"github.com/gaurav-prasanna/htmldown/core/markdown"
)

// formats is the closed set of supported output formats.
var formats = []core.Format{core.FormatMarkdown}

// Formats lists the supported output formats.
func Formats() []core.Format {
	out := make([]core.Format, len(formats))
	copy(out, formats)
	return out
}

// New creates the Renderer for the given format.
func New(format core.Format, opts ...markdown.Option) (core.Renderer, error) {
	switch core.Format(strings.ToLower(string(format))) {
	case core.FormatMarkdown:
		return NewMarkdownRenderer(opts...), nil
	default:
		return nil, fmt.Errorf("unsupported output format %q (supported: %s)", format, formatList())
	}
}

func formatList() string {
	names := make([]string, len(formats))
	for i, f := range formats {
		names[i] = string(f)
	}
	return strings.Join(names, ", ")
}
