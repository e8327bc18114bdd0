package prettyprint

import "strings"

// remainingAfter estimates the column budget left after printing n inline.
// Spacing between siblings is only as wide as whatever literal text sits in
// each child's own prefix and suffix, so it is an estimate rather than an
// exact measurement; the renderer's layout decisions rely on matching it
// byte for byte, under-counting included.
func remainingAfter(n *node, budget int) int {
	budget -= len(n.prefix) + len(n.suffix)
	if n.delim != delimNone {
		budget -= 2
	}
	for _, c := range n.children {
		if budget < 0 {
			break
		}
		budget = remainingAfter(c, budget)
	}
	return budget
}

func fitsInline(n *node, budget int) bool {
	return remainingAfter(n, budget) >= 0
}

// outputBuffer accumulates rendered text while tracking the current line
// length in O(1) via the offset just past the most recent newline.
type outputBuffer struct {
	buf    []byte
	lastNL int
}

func (b *outputBuffer) lineLen() int { return len(b.buf) - b.lastNL }

func (b *outputBuffer) writeString(s string) { b.buf = append(b.buf, s...) }

func (b *outputBuffer) writeByte(c byte) { b.buf = append(b.buf, c) }

func (b *outputBuffer) newline() {
	b.buf = append(b.buf, '\n')
	b.lastNL = len(b.buf)
}

func (b *outputBuffer) reset() {
	b.buf = b.buf[:0]
	b.lastNL = 0
}

func (b *outputBuffer) String() string { return string(b.buf) }

// renderer converts a forest into text, choosing per node between a single
// line and one-child-per-line emission. It owns its outputBuffer for the
// lifetime of one render, so no synchronisation is needed.
type renderer struct {
	width  int
	indent string
	out    outputBuffer
}

func (r *renderer) renderForest(forest []*node) {
	// Roots render back to back with no separator; each one re-measures
	// its remaining width from the live line position.
	for _, n := range forest {
		r.renderIndented(n, 0)
	}
}

// renderInline emits n and its whole subtree on the current line, ignoring
// width entirely.
func (r *renderer) renderInline(n *node) {
	r.out.writeString(n.prefix)
	r.renderInlineTail(n)
}

// renderInlineTail emits everything after the prefix: the delimited child
// sequence, if any, and the suffix.
func (r *renderer) renderInlineTail(n *node) {
	if n.delim != delimNone {
		r.out.writeByte(delimChars[n.delim].open)
		for _, c := range n.children {
			r.renderInline(c)
		}
		r.out.writeByte(delimChars[n.delim].close)
	}
	r.out.writeString(n.suffix)
}

func (r *renderer) renderIndented(n *node, level int) {
	remaining := r.width - r.out.lineLen()
	prefix := n.prefix
	if level > 0 {
		// The caller's indentation already supplies the leading space.
		prefix = strings.TrimLeft(prefix, " \t")
	}
	r.out.writeString(prefix)
	if fitsInline(n, remaining) {
		r.renderInlineTail(n)
		return
	}
	if n.delim == delimNone {
		// Overlong leaves stay on one line; they are never split.
		r.out.writeString(n.suffix)
		return
	}
	r.out.writeByte(delimChars[n.delim].open)
	for _, c := range n.children {
		r.out.newline()
		r.writeIndent(level + 1)
		r.renderIndented(c, level+1)
	}
	r.out.newline()
	r.writeIndent(level)
	r.out.writeByte(delimChars[n.delim].close)
	r.out.writeString(n.suffix)
}

func (r *renderer) writeIndent(level int) {
	for i := 0; i < level; i++ {
		r.out.writeString(r.indent)
	}
}
