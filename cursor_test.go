package prettyprint

import "testing"

func TestCursorAdvance(t *testing.T) {
	c := newCursor("ab")
	if c.empty() {
		t.Fatalf("cursor empty on non-empty input")
	}
	if got := c.front(); got != 'a' {
		t.Fatalf("front = %q, want 'a'", got)
	}
	c.advance()
	if got := c.front(); got != 'b' {
		t.Fatalf("front after advance = %q, want 'b'", got)
	}
	c.advance()
	if !c.empty() {
		t.Fatalf("cursor not empty after consuming all input")
	}
}

func TestCursorSkipsQuotesOnConstruction(t *testing.T) {
	c := newCursor(`"x"a`)
	if got := c.front(); got != 'a' {
		t.Fatalf("front = %q, want 'a'", got)
	}
	if got := c.skippedText(); got != `"x"` {
		t.Fatalf("skippedText = %q, want %q", got, `"x"`)
	}
}

func TestCursorSkipsAdjacentQuoteRuns(t *testing.T) {
	c := newCursor(`"a"'b'c`)
	if got := c.front(); got != 'c' {
		t.Fatalf("front = %q, want 'c'", got)
	}
	if got := c.skippedText(); got != `"a"'b'` {
		t.Fatalf("skippedText = %q, want %q", got, `"a"'b'`)
	}
}

func TestCursorBackslashEscapes(t *testing.T) {
	// The escaped quote must not close the span.
	c := newCursor(`"a\"b"c`)
	if got := c.front(); got != 'c' {
		t.Fatalf("front = %q, want 'c'", got)
	}
}

func TestCursorBacktickHasNoEscapes(t *testing.T) {
	// A backslash inside backticks is ordinary text, so the span ends at
	// the first backtick after it.
	c := newCursor("`a\\`b")
	if got := c.front(); got != 'b' {
		t.Fatalf("front = %q, want 'b'", got)
	}
}

func TestCursorUnterminatedQuoteRunsToEnd(t *testing.T) {
	c := newCursor(`"abc`)
	if !c.empty() {
		t.Fatalf("cursor should be exhausted by an unterminated quote")
	}
}

func TestCursorFindAmongIgnoresQuotedDelimiters(t *testing.T) {
	start := newCursor(`a"(,"b(`)
	found := start.findAmong(openers)
	if found.empty() {
		t.Fatalf("findAmong missed the unquoted opener")
	}
	if got := found.front(); got != '(' {
		t.Fatalf("front = %q, want '('", got)
	}
	if got := start.textUntil(found); got != `a"(,"b` {
		t.Fatalf("textUntil = %q, want %q", got, `a"(,"b`)
	}
}

func TestCursorFindAmongExhaustsWithoutMatch(t *testing.T) {
	start := newCursor("plain text")
	found := start.findAmong(openers)
	if !found.empty() {
		t.Fatalf("findAmong should exhaust the buffer, stopped at %q", found.front())
	}
	if got := start.textUntil(found); got != "plain text" {
		t.Fatalf("textUntil = %q, want %q", got, "plain text")
	}
}

func TestCursorTextUntilIncludesOwnSkippedQuotes(t *testing.T) {
	// mark stays put while pos jumps the quoted run, so the run belongs to
	// the text between the two cursors.
	start := newCursor(`"q"b`)
	end := start
	end.advance()
	if got := start.textUntil(end); got != `"q"b` {
		t.Fatalf("textUntil = %q, want %q", got, `"q"b`)
	}
}

func TestCursorTextUntilOutOfOrderPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic for out-of-order cursors")
		}
	}()
	start := newCursor("abc")
	end := start
	end.advance()
	_ = end.textUntil(start)
}
