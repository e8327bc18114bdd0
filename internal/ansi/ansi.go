// Package ansi provides ANSI escape sequences and palette presets for the
// prettyprint colorizer. Only the data prettyprint needs is included here to
// avoid an external styling dependency.
package ansi

// Base ANSI escape codes.
const (
	Reset        = "\x1b[0m"
	Bold         = "\x1b[1m"
	Faint        = "\x1b[90m"
	Red          = "\x1b[31m"
	Green        = "\x1b[32m"
	Yellow       = "\x1b[33m"
	Blue         = "\x1b[34m"
	Magenta      = "\x1b[35m"
	Cyan         = "\x1b[36m"
	Gray         = "\x1b[37m"
	BrightGreen  = "\x1b[1;32m"
	BrightYellow = "\x1b[1;33m"
	BrightBlue   = "\x1b[1;34m"
	BrightCyan   = "\x1b[1;36m"
	BrightWhite  = "\x1b[1;37m"
)

// Palette carries the style prefix per structural token class.
type Palette struct {
	Brackets    string
	Punctuation string
	Quoted      string
	Text        string
}

// PaletteDefault is 16-colour friendly and survives limited terminals.
var PaletteDefault = Palette{
	Brackets:    BrightCyan,
	Punctuation: Faint,
	Quoted:      Green,
	Text:        "",
}

// PaletteGruvbox uses earthy ambers and greens.
var PaletteGruvbox = Palette{
	Brackets:    "\x1b[38;5;172m",
	Punctuation: "\x1b[38;5;101m",
	Quoted:      "\x1b[38;5;178m",
	Text:        "\x1b[38;5;223m",
}

// PaletteNord keeps to cool glacier blues.
var PaletteNord = Palette{
	Brackets:    "\x1b[38;5;110m",
	Punctuation: "\x1b[38;5;245m",
	Quoted:      "\x1b[38;5;152m",
	Text:        "\x1b[38;5;195m",
}

// PaletteDracula leans on pink, purple, and cyan accents.
var PaletteDracula = Palette{
	Brackets:    "\x1b[38;5;147m",
	Punctuation: "\x1b[38;5;95m",
	Quoted:      "\x1b[38;5;141m",
	Text:        "\x1b[38;5;225m",
}

// PaletteTokyoNight draws on neon blues and violets.
var PaletteTokyoNight = Palette{
	Brackets:    "\x1b[38;5;69m",
	Punctuation: "\x1b[38;5;244m",
	Quoted:      "\x1b[38;5;110m",
	Text:        "\x1b[38;5;189m",
}
