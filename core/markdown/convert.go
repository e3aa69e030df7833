package markdown

import (
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/gaurav-prasanna/htmldown/core/parse"
	"golang.org/x/net/html"
)

var defaultConverter = New()

// ConvertTree renders an already parsed document with the default options.
func ConvertTree(root *html.Node) string {
	return defaultConverter.Convert(root)
}

// ConvertString parses s as an HTML document and renders it with the
// default options.
func ConvertString(s string) (string, error) {
	return defaultConverter.ConvertString(s)
}

// ConvertReader parses the HTML document read from r and renders it with
// the default options.
func ConvertReader(r io.Reader) (string, error) {
	return defaultConverter.ConvertReader(r)
}

// ConvertSelection renders the nodes of sel, in order, with the default
// options.
func ConvertSelection(sel *goquery.Selection) string {
	return defaultConverter.ConvertSelection(sel)
}

// ConvertString parses s as an HTML document and renders it.
func (c *Converter) ConvertString(s string) (string, error) {
	return c.ConvertReader(strings.NewReader(s))
}

// ConvertReader parses the HTML document read from r and renders it.
// Parse failures are returned; nothing is rendered in that case.
func (c *Converter) ConvertReader(r io.Reader) (string, error) {
	doc, err := parse.New().Parse(r)
	if err != nil {
		return "", fmt.Errorf("converting HTML: %w", err)
	}
	return c.Convert(doc), nil
}

// ConvertSelection renders every node of sel in document order, sharing
// one render state so that the fragments join up as a single document.
// Nodes nested inside another selected node are rendered once, as part of
// their outermost selected ancestor.
func (c *Converter) ConvertSelection(sel *goquery.Selection) string {
	w := c.newWalker()
	if sel == nil {
		return w.String()
	}

	selected := make(map[*html.Node]bool, len(sel.Nodes))
	for _, n := range sel.Nodes {
		selected[n] = true
	}
	for _, n := range sel.Nodes {
		if hasSelectedAncestor(n, selected) {
			continue
		}
		w.walk(n)
	}
	return w.String()
}

func hasSelectedAncestor(n *html.Node, selected map[*html.Node]bool) bool {
	for p := n.Parent; p != nil; p = p.Parent {
		if selected[p] {
			return true
		}
	}
	return false
}
