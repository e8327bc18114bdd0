package prettyprint

import "strings"

// quotedCursor walks a string while treating quoted runs as opaque: every
// time its offset changes it eagerly jumps over any maximal run of adjacent
// quoted spans, so front and empty always describe a position outside a
// quote. Three quote styles are recognised: double and single quotes with
// backslash escaping, and backticks without.
//
// The cursor keeps two offsets. pos is the position after quote skipping;
// mark is the position before the most recent skip was applied. Text in
// buf[mark:pos] is quoted material the cursor jumped over, and textUntil
// includes it so no input bytes are ever lost between two cursors.
type quotedCursor struct {
	buf  string
	mark int
	pos  int
}

func newCursor(text string) quotedCursor {
	c := quotedCursor{buf: text}
	c.skipQuoted()
	return c
}

func (c *quotedCursor) empty() bool {
	return c.pos >= len(c.buf)
}

// front returns the byte at the current position. Calling it on an empty
// cursor is a programming error.
func (c *quotedCursor) front() byte {
	return c.buf[c.pos]
}

// advance moves one byte forward and re-applies quote skipping.
func (c *quotedCursor) advance() {
	c.mark = c.pos + 1
	c.pos = c.mark
	c.skipQuoted()
}

func (c *quotedCursor) skipQuoted() {
	for c.pos < len(c.buf) && isQuote(c.buf[c.pos]) {
		c.pos = skipQuote(c.buf, c.pos)
	}
}

// findAmong returns a cursor positioned at the first unquoted occurrence of
// any byte in set, or an exhausted cursor if there is none.
func (c quotedCursor) findAmong(set string) quotedCursor {
	for !c.empty() && strings.IndexByte(set, c.front()) < 0 {
		c.advance()
	}
	return c
}

// textUntil returns the input between c and other, starting at c's offset
// before its own quote skip and ending at other's skipped position. Both
// cursors must share a buffer and other must not precede c.
func (c quotedCursor) textUntil(other quotedCursor) string {
	if c.buf != other.buf || other.pos < c.mark {
		panic("prettyprint: textUntil cursors out of order")
	}
	return c.buf[c.mark:other.pos]
}

// skippedText returns the quoted run the cursor jumped over to reach its
// current position, or "" when it sits directly on an unquoted byte.
func (c quotedCursor) skippedText() string {
	return c.buf[c.mark:c.pos]
}

// collapse discards the skipped-run window, for when the text before the
// current position has already been consumed into a node.
func (c *quotedCursor) collapse() {
	c.mark = c.pos
}

func isQuote(b byte) bool {
	return b == '"' || b == '\'' || b == '`'
}

// skipQuote returns the offset just past one quoted span starting at start.
// Backslash escapes protect the next byte inside " and ' quotes; backticks
// run to the next backtick with no escape processing. An unterminated span
// extends to the end of the buffer.
func skipQuote(buf string, start int) int {
	q := buf[start]
	i := start + 1
	for i < len(buf) {
		switch {
		case buf[i] == q:
			return i + 1
		case buf[i] == '\\' && q != '`':
			i += 2
		default:
			i++
		}
	}
	return len(buf)
}
