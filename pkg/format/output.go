package format

import (
	"unicode"
	"unicode/utf8"
)

// output is the query being built. It only ever grows at the end or has
// trailing whitespace trimmed.
type output struct {
	buf []byte
}

func (o *output) write(s string) {
	o.buf = append(o.buf, s...)
}

func (o *output) Len() int {
	return len(o.buf)
}

func (o *output) String() string {
	return string(o.buf)
}

func (o *output) hasSuffix(s string) bool {
	return len(o.buf) >= len(s) && string(o.buf[len(o.buf)-len(s):]) == s
}

// trimSpaces drops trailing spaces and tabs. When the output then ends with a
// newline, the spaces and tabs before that newline are dropped too.
func (o *output) trimSpaces() {
	o.buf = trimBlanks(o.buf)

	if n := len(o.buf); n > 0 && o.buf[n-1] == '\n' {
		line := trimBlanks(o.buf[:n-1])
		o.buf = append(line, '\n')
	}
}

// trimAll drops every trailing whitespace rune, newlines included.
func (o *output) trimAll() {
	for len(o.buf) > 0 {
		r, size := utf8.DecodeLastRune(o.buf)
		if !unicode.IsSpace(r) {
			return
		}

		o.buf = o.buf[:len(o.buf)-size]
	}
}

// newline ends the current line (unless it is already empty) and starts the
// next one at indent.
func (o *output) newline(indent string) {
	o.trimSpaces()
	if !o.hasSuffix("\n") {
		o.write("\n")
	}

	o.write(indent)
}

// lineLength is the number of runes after the last newline.
func (o *output) lineLength() int {
	start := 0
	for i := len(o.buf) - 1; i >= 0; i-- {
		if o.buf[i] == '\n' {
			start = i + 1
			break
		}
	}

	return utf8.RuneCount(o.buf[start:])
}

func trimBlanks(b []byte) []byte {
	for len(b) > 0 && (b[len(b)-1] == ' ' || b[len(b)-1] == '\t') {
		b = b[:len(b)-1]
	}

	return b
}
