package markdown

import (
	"strings"

	"golang.org/x/net/html"
)

const defaultAlt = "no alt text"

// rule is the start/end behavior of one tag. Either side may be nil.
type rule struct {
	start func(w *walker, n *html.Node)
	end   func(w *walker, n *html.Node)
}

// defaultSkipped are elements whose subtrees never produce output.
var defaultSkipped = []string{"head", "style", "script"}

// defaultRules is the tag dispatch table. Tags not listed here are
// transparent: their children render inline with no markup around them.
func defaultRules() map[string]rule {
	bold := rule{start: emit("**"), end: emit("**")}
	emphasis := rule{start: emit("*"), end: emit("*")}
	paragraph := rule{start: func(w *walker, _ *html.Node) { w.beginParagraph() }}
	list := rule{end: listEnd}

	ul := list
	ul.start = listStart(false)
	ol := list
	ol.start = listStart(true)

	return map[string]rule{
		"b":          bold,
		"strong":     bold,
		"i":          emphasis,
		"em":         emphasis,
		"p":          paragraph,
		"div":        paragraph,
		"br":         {start: func(w *walker, _ *html.Node) { w.lineBreak() }},
		"blockquote": {start: blockquoteStart, end: blockquoteEnd},
		"a":          {start: emit("["), end: linkEnd},
		"img":        {end: image},
		"ul":         ul,
		"ol":         ol,
		"li":         {start: itemStart, end: itemEnd},
	}
}

func emit(s string) func(w *walker, _ *html.Node) {
	return func(w *walker, _ *html.Node) {
		w.write(s)
	}
}

func blockquoteStart(w *walker, _ *html.Node) {
	w.ensureNewline()
	w.pushQuote()
}

func blockquoteEnd(w *walker, n *html.Node) {
	if !w.popQuote() {
		w.conv.log.WithField("tag", n.Data).Debug("Closing blockquote with no open quote")
	}
	w.ensureNewline()
}

func linkEnd(w *walker, n *html.Node) {
	w.write("](")
	w.write(attr(n, "href", ""))
	w.write(")")
}

func image(w *walker, n *html.Node) {
	w.write("![")
	w.write(attr(n, "alt", defaultAlt))
	w.write("](")
	w.write(attr(n, "src", ""))
	w.write(")")
}

func listStart(ordered bool) func(w *walker, _ *html.Node) {
	return func(w *walker, _ *html.Node) {
		w.ensureDoubleNewline()
		m := listMarker{ordered: ordered}
		if ordered {
			m.index = 1
		}
		w.pushList(m)
	}
}

func listEnd(w *walker, n *html.Node) {
	w.ensureDoubleNewline()
	if !w.popList() {
		w.conv.log.WithField("tag", n.Data).Debug("Closing list with no open list")
	}
	w.indent(w.lists)
}

func itemStart(w *walker, _ *html.Node) {
	top, ok := w.topList()
	if !ok {
		return
	}
	w.indent(w.lists[:len(w.lists)-1])
	w.write(top.text())
}

func itemEnd(w *walker, n *html.Node) {
	if _, ok := w.topList(); !ok {
		w.conv.log.WithField("tag", n.Data).Debug("List item outside of a list")
		return
	}
	w.ensureNewline()
	w.advanceList()
}

// attr returns the value of the named attribute, matched
// case-insensitively, or fallback when the element has none.
func attr(n *html.Node, name, fallback string) string {
	for _, a := range n.Attr {
		if strings.EqualFold(a.Key, name) {
			return a.Val
		}
	}
	return fallback
}
