package markdown

import "strings"

// markdownSpecials are escaped in text runs when escaping is enabled.
const markdownSpecials = "\\*_[]`"

// writeText appends a text run to the output. Active quote prefixes come
// first, then the text with runs of spaces and newlines folded into one
// space. A leading separator is dropped when the output already ends in
// whitespace.
func (s *state) writeText(text string, escape bool) {
	for _, p := range s.quotes {
		s.write(p)
	}
	if len(s.quotes) > 0 {
		s.writeByte(' ')
	}

	prevSpace := s.atSeparator()
	// Bytes are enough here: no ASCII byte occurs inside a multi-byte
	// UTF-8 sequence.
	for i := 0; i < len(text); i++ {
		c := text[i]
		switch c {
		case ' ', '\n':
			if !prevSpace {
				prevSpace = true
				s.writeByte(' ')
			}
		default:
			prevSpace = false
			if escape && strings.IndexByte(markdownSpecials, c) >= 0 {
				s.writeByte('\\')
			}
			s.writeByte(c)
		}
	}
}
