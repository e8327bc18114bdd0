package prettyprint

// delim identifies one of the three delimiter pairs a container can use.
// delimNone marks a leaf.
type delim int

const (
	delimNone delim = iota
	delimParen
	delimSquare
	delimCurly
)

// delimChars fixes, per delimiter kind, the opening byte, the closing byte,
// and the terminator set used while scanning for that kind's children.
var delimChars = [...]struct {
	open, close byte
	terminators string
}{
	delimParen:  {'(', ')', ",)"},
	delimSquare: {'[', ']', ",]"},
	delimCurly:  {'{', '}', ",}"},
}

const openers = "([{"

func delimFor(b byte) delim {
	switch b {
	case '(':
		return delimParen
	case '[':
		return delimSquare
	case '{':
		return delimCurly
	default:
		return delimNone
	}
}

// node is one parsed segment of the input. prefix is the literal text before
// the node's delimiters, or its entire content for a leaf. suffix is either
// empty or "," when a comma followed the node in its parent's sequence.
// children is non-empty only when delim is set; a container whose body is
// empty keeps delim with no children.
//
// Nodes are built bottom-up in a single parse pass and never mutated after.
type node struct {
	prefix   string
	delim    delim
	children []*node
	suffix   string
}
