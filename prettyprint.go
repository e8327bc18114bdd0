package prettyprint

import (
	"bufio"
	"io"
)

const (
	defaultWidth  = 80
	defaultIndent = "    "

	// maxLineBytes bounds a single input line in FormatStream.
	maxLineBytes = 1 << 20
)

// Options controls formatting behavior.
type Options struct {
	// Width is the column budget a node must fit in to stay on one line.
	// Values <= 0 fall back to 80.
	Width int
	// Indent is one indentation unit. Default four spaces.
	Indent string
	// Palette names the color palette applied by FormatStream and the CLI.
	// Empty or "none" disables coloring; see PaletteNames for the rest.
	// Colors are applied after layout and never affect width decisions.
	Palette string
}

// DefaultOptions holds the fallback configuration.
var DefaultOptions = &Options{Width: defaultWidth, Indent: defaultIndent}

// Format renders text, which is expected to hold a single-line nested
// structure such as "Foo(Bar(Baz()), Baq())", as a width-bounded multi-line
// string. Nesting is inferred purely from parentheses, brackets, braces and
// commas; quoted substrings are opaque. When text has no recoverable
// structure (unbalanced delimiters, empty input) it is returned unchanged,
// byte for byte.
//
// Format is a pure function of its inputs and safe for concurrent use.
func Format(text string, columnWidth int) string {
	return FormatOptions(text, &Options{Width: columnWidth, Indent: defaultIndent})
}

// FormatOptions is Format with the full option surface. A nil opts means
// DefaultOptions. The Palette option is ignored here; coloring is a
// post-pass owned by Colorize and FormatStream.
func FormatOptions(text string, opts *Options) string {
	if opts == nil {
		opts = DefaultOptions
	}
	forest := parseForest(text)
	if len(forest) == 0 {
		return text
	}
	r := acquireRenderer(opts)
	r.renderForest(forest)
	out := r.out.String()
	releaseRenderer(r)
	return out
}

// FormatTo writes the formatted rendering of text to w.
func FormatTo(w io.Writer, text string, opts *Options) error {
	_, err := io.WriteString(w, FormatOptions(text, opts))
	return err
}

// FormatStream reads r line by line, formats each line independently, and
// writes every result followed by a newline. When opts selects a palette
// other than "none", each formatted line is colorized before writing. An
// unknown palette name is reported before any input is consumed.
func FormatStream(w io.Writer, r io.Reader, opts *Options) error {
	if opts == nil {
		opts = DefaultOptions
	}
	pal, err := resolvePalette(opts.Palette)
	if err != nil {
		return err
	}
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	bw := bufio.NewWriter(w)
	for sc.Scan() {
		out := FormatOptions(sc.Text(), opts)
		if !pal.isZero() {
			out = Colorize(out, pal)
		}
		if _, err := bw.WriteString(out); err != nil {
			return err
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	if err := sc.Err(); err != nil {
		return err
	}
	return bw.Flush()
}
