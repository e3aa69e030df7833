// Package parse implements the Parser interface.
// It decodes a UTF-8 byte stream into an HTML5 document tree using
// golang.org/x/net/html. The tree is handed to the converter read-only.
package parse

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"golang.org/x/net/html"
)

// ErrInvalidUTF8 is returned when the input is not valid UTF-8.
var ErrInvalidUTF8 = errors.New("input is not valid UTF-8")

// HTMLParser parses HTML documents.
type HTMLParser struct{}

// New creates an HTMLParser.
func New() *HTMLParser {
	return &HTMLParser{}
}

// Parse reads r to the end and parses it as an HTML document.
func (p *HTMLParser) Parse(r io.Reader) (*html.Node, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading input: %w", err)
	}
	if !utf8.Valid(data) {
		return nil, fmt.Errorf("decoding input: %w", ErrInvalidUTF8)
	}

	doc, err := html.Parse(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}
	return doc, nil
}

// ParseString parses an in-memory HTML document.
func (p *HTMLParser) ParseString(s string) (*html.Node, error) {
	return p.Parse(strings.NewReader(s))
}
