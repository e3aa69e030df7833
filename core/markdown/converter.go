// Package markdown converts parsed HTML trees into Markdown text.
//
// The conversion is a single depth-first walk over the tree. Element
// behavior is looked up in a dispatch table keyed on the lowercased tag
// name; every call owns its own render state, so a Converter can be shared
// between goroutines.
package markdown

import (
	"io"
	"strings"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/html"
)

// Converter renders HTML document trees as Markdown.
// It is immutable once built and safe for concurrent use.
type Converter struct {
	rules   map[string]rule
	skipped map[string]bool
	escape  bool
	log     logrus.FieldLogger
}

// Option configures a Converter.
type Option func(*Converter)

// WithLogger sets the logger used for debug diagnostics about the input,
// such as skipped subtrees and unbalanced closing tags.
func WithLogger(log logrus.FieldLogger) Option {
	return func(c *Converter) {
		if log != nil {
			c.log = log
		}
	}
}

// WithEscaping enables backslash-escaping of Markdown metacharacters
// found in text. Escaping is off by default.
func WithEscaping(enabled bool) Option {
	return func(c *Converter) {
		c.escape = enabled
	}
}

// WithSkippedTags adds elements whose whole subtree is dropped from the
// output, in addition to head, style and script.
func WithSkippedTags(tags ...string) Option {
	return func(c *Converter) {
		for _, t := range tags {
			c.skipped[strings.ToLower(t)] = true
		}
	}
}

// New creates a Converter with the default dispatch table.
func New(opts ...Option) *Converter {
	discard := logrus.New()
	discard.SetOutput(io.Discard)

	c := &Converter{
		rules:   defaultRules(),
		skipped: make(map[string]bool, len(defaultSkipped)),
		log:     discard,
	}
	for _, t := range defaultSkipped {
		c.skipped[t] = true
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Convert renders the tree rooted at root. A nil root renders as "".
func (c *Converter) Convert(root *html.Node) string {
	w := c.newWalker()
	w.walk(root)
	return w.String()
}

// walker pairs a Converter with the state of one conversion run.
type walker struct {
	*state
	conv *Converter
}

func (c *Converter) newWalker() *walker {
	return &walker{state: newState(), conv: c}
}

func (w *walker) walk(n *html.Node) {
	if n == nil {
		return
	}
	switch n.Type {
	case html.DocumentNode:
		w.children(n)
	case html.TextNode:
		w.writeText(n.Data, w.conv.escape)
	case html.ElementNode:
		w.element(n)
	default:
		// Comments, doctypes and anything else never render.
	}
}

func (w *walker) children(n *html.Node) {
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		w.walk(child)
	}
}

func (w *walker) element(n *html.Node) {
	name := strings.ToLower(n.Data)
	if w.conv.skipped[name] {
		w.conv.log.WithField("tag", name).Debug("Skipping element subtree")
		return
	}

	r := w.conv.rules[name]
	if r.start != nil {
		r.start(w, n)
	}
	w.children(n)
	if r.end != nil {
		r.end(w, n)
	}
}
