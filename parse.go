package prettyprint

// parseForest splits text into an ordered sequence of top-level nodes.
// Concatenated segments parse to siblings, so "Foo() Bar()" yields two
// roots. A nil result means the text has no recoverable structure and the
// caller should fall back to emitting it unchanged.
func parseForest(text string) []*node {
	cur := newCursor(text)
	var forest []*node
	for !cur.empty() {
		n := parseNode(&cur, ",")
		if n == nil {
			return nil
		}
		forest = append(forest, n)
	}
	return forest
}

// parseNode consumes one node from cur. terminators is "," at top level, or
// comma plus the enclosing container's closer when parsing children.
//
// A nil return carries two meanings the caller cannot tell apart: "nothing
// to emit here" (an empty segment before a terminator) and "parse failed
// somewhere below". Both abort the whole top-level parse, which is the
// contract Format's identity fallback depends on.
func parseNode(cur *quotedCursor, terminators string) *node {
	openCur := cur.findAmong(openers)
	termCur := cur.findAmong(terminators)

	if termCur.pos < openCur.pos {
		// Terminator before any opener: a leaf. A comma is consumed and
		// recorded as the suffix; a closing delimiter is left for the
		// enclosing container to consume.
		prefix := cur.textUntil(termCur)
		*cur = termCur
		cur.collapse()
		n := &node{prefix: prefix}
		if cur.front() == ',' {
			cur.advance()
			n.suffix = ","
		}
		if prefix == "" {
			return nil
		}
		return n
	}

	if openCur.empty() {
		// Neither an opener nor a terminator remains: the rest of the
		// input is one leaf.
		prefix := cur.textUntil(openCur)
		*cur = openCur
		cur.collapse()
		if prefix == "" {
			return nil
		}
		return &node{prefix: prefix}
	}

	// An opener comes first: parse a container.
	d := delimFor(openCur.front())
	n := &node{prefix: cur.textUntil(openCur), delim: d}
	*cur = openCur
	cur.advance()
	for {
		if cur.empty() {
			// No closer before end of input.
			return nil
		}
		if cur.front() == delimChars[d].close {
			// Only quoted text, or nothing, remained before the closer.
			if span := cur.skippedText(); span != "" {
				n.children = append(n.children, &node{prefix: span})
			}
			cur.advance()
			break
		}
		child := parseNode(cur, delimChars[d].terminators)
		if child == nil {
			return nil
		}
		n.children = append(n.children, child)
	}
	if !cur.empty() && cur.front() == ',' {
		cur.advance()
		n.suffix = ","
	}
	return n
}
