package markdown

import (
	"bytes"
	"strconv"
)

const quotePrefix = ">"

// listMarker is the per-level state of an open list.
// For ordered lists index is the ordinal of the current item, starting at 1.
type listMarker struct {
	ordered bool
	index   int
}

// text returns the marker written in front of a list item.
func (m listMarker) text() string {
	if m.ordered {
		return strconv.Itoa(m.index) + ". "
	}
	return "* "
}

// width is the indentation a level contributes to nested content.
// Ordered levels always count as "n. ", whatever the digit count.
func (m listMarker) width() int {
	if m.ordered {
		return 3
	}
	return 2
}

// state is the mutable context of a single conversion run.
type state struct {
	buf    []byte
	quotes []string
	lists  []listMarker
}

func newState() *state {
	return &state{}
}

func (s *state) String() string {
	return string(s.buf)
}

func (s *state) write(str string) {
	s.buf = append(s.buf, str...)
}

func (s *state) writeByte(c byte) {
	s.buf = append(s.buf, c)
}

func (s *state) endsWith(suffix string) bool {
	return bytes.HasSuffix(s.buf, []byte(suffix))
}

// atSeparator reports whether the next text run may drop its leading space.
func (s *state) atSeparator() bool {
	return len(s.buf) == 0 || s.endsWith(" ") || s.endsWith("\n")
}

func (s *state) trimTrailingBlanks() {
	n := len(s.buf)
	for n > 0 && (s.buf[n-1] == ' ' || s.buf[n-1] == '\t') {
		n--
	}
	s.buf = s.buf[:n]
}

// ensureNewline terminates the current line unless the output is empty
// or already ends with a newline.
func (s *state) ensureNewline() {
	s.trimTrailingBlanks()
	if len(s.buf) == 0 || s.endsWith("\n") {
		return
	}
	s.writeByte('\n')
}

// ensureDoubleNewline makes the output end with exactly one blank line.
// Nothing is added to an empty output.
func (s *state) ensureDoubleNewline() {
	s.trimTrailingBlanks()
	switch {
	case len(s.buf) == 0, s.endsWith("\n\n"):
	case s.endsWith("\n"):
		s.writeByte('\n')
	default:
		s.write("\n\n")
	}
}

// onEmptyItemLine reports whether the output ends with the marker of the
// innermost list, i.e. the current item has no content yet.
func (s *state) onEmptyItemLine() bool {
	m, ok := s.topList()
	return ok && s.endsWith(m.text())
}

func (s *state) beginParagraph() {
	if s.onEmptyItemLine() {
		return
	}
	s.ensureDoubleNewline()
	s.indent(s.lists)
}

func (s *state) lineBreak() {
	if s.onEmptyItemLine() {
		return
	}
	s.ensureNewline()
	s.indent(s.lists)
}

// indent writes the padding for content nested under the given levels.
func (s *state) indent(levels []listMarker) {
	n := 0
	for _, m := range levels {
		n += m.width()
	}
	for i := 0; i < n; i++ {
		s.writeByte(' ')
	}
}

func (s *state) pushQuote() {
	s.quotes = append(s.quotes, quotePrefix)
}

func (s *state) popQuote() bool {
	if len(s.quotes) == 0 {
		return false
	}
	s.quotes = s.quotes[:len(s.quotes)-1]
	return true
}

func (s *state) pushList(m listMarker) {
	s.lists = append(s.lists, m)
}

func (s *state) popList() bool {
	if len(s.lists) == 0 {
		return false
	}
	s.lists = s.lists[:len(s.lists)-1]
	return true
}

func (s *state) topList() (listMarker, bool) {
	if len(s.lists) == 0 {
		return listMarker{}, false
	}
	return s.lists[len(s.lists)-1], true
}

// advanceList moves an ordered innermost list to its next ordinal.
func (s *state) advanceList() {
	if len(s.lists) == 0 {
		return
	}
	top := &s.lists[len(s.lists)-1]
	if top.ordered {
		top.index++
	}
}
