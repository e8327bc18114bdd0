package prettyprint

import (
	"strings"

	"github.com/funkwerk/prettyprint/internal/ansi"
)

// ColorPalette holds the raw ANSI style prefix for each structural token
// class. Empty strings leave the class unstyled.
type ColorPalette struct {
	Brackets    string
	Punctuation string
	Quoted      string
	Text        string
}

func (p ColorPalette) isZero() bool {
	return p == ColorPalette{}
}

// NoColorPalette disables all styling while keeping the output path shared.
func NoColorPalette() ColorPalette {
	return ColorPalette{}
}

// Colorize applies pal to formatted output. It uses the same quote rules as
// the parser, so a quoted span is styled as one unit and delimiter bytes
// inside it are never treated as structure. Styling is strictly a post-pass
// over already laid-out text; it never changes where lines break.
func Colorize(s string, pal ColorPalette) string {
	if pal.isZero() {
		return s
	}
	var sb strings.Builder
	sb.Grow(len(s) + len(s)/2)
	for i := 0; i < len(s); {
		b := s[i]
		switch {
		case isQuote(b):
			end := skipQuote(s, i)
			writeStyled(&sb, pal.Quoted, s[i:end])
			i = end
		case b == '(' || b == ')' || b == '[' || b == ']' || b == '{' || b == '}':
			writeStyled(&sb, pal.Brackets, s[i:i+1])
			i++
		case b == ',':
			writeStyled(&sb, pal.Punctuation, s[i:i+1])
			i++
		case b == '\n' || b == ' ' || b == '\t':
			sb.WriteByte(b)
			i++
		default:
			end := i + 1
			for end < len(s) && !colorBoundary(s[end]) {
				end++
			}
			writeStyled(&sb, pal.Text, s[i:end])
			i = end
		}
	}
	return sb.String()
}

func colorBoundary(b byte) bool {
	switch b {
	case '(', ')', '[', ']', '{', '}', ',', '\n', ' ', '\t':
		return true
	}
	return isQuote(b)
}

func writeStyled(sb *strings.Builder, style, s string) {
	if style == "" {
		sb.WriteString(s)
		return
	}
	sb.WriteString(style)
	sb.WriteString(s)
	sb.WriteString(ansi.Reset)
}
