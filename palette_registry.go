package prettyprint

import (
	"fmt"
	"sort"
	"strings"

	"github.com/funkwerk/prettyprint/internal/ansi"
)

const (
	paletteDefaultName = "default"
	paletteNoneName    = "none"
)

var paletteRegistry = map[string]ansi.Palette{
	paletteDefaultName: ansi.PaletteDefault,
	"classic":          ansi.PaletteDefault,
	"dracula":          ansi.PaletteDracula,
	"gruvbox":          ansi.PaletteGruvbox,
	"nord":             ansi.PaletteNord,
	"tokyo-night":      ansi.PaletteTokyoNight,
}

// PaletteNames returns the sorted list of palette names, including "none".
func PaletteNames() []string {
	names := make([]string, 0, len(paletteRegistry)+1)
	for name := range paletteRegistry {
		names = append(names, name)
	}
	names = append(names, paletteNoneName)
	sort.Strings(names)
	return names
}

// resolvePalette maps a palette name to its ColorPalette. The empty name and
// "none" both disable coloring.
func resolvePalette(name string) (ColorPalette, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" || name == paletteNoneName {
		return NoColorPalette(), nil
	}
	ap, ok := paletteRegistry[name]
	if !ok {
		return ColorPalette{}, fmt.Errorf("unknown palette %q (use one of: %s)", name, strings.Join(PaletteNames(), ", "))
	}
	return colorPaletteFromAnsi(ap), nil
}

func colorPaletteFromAnsi(ap ansi.Palette) ColorPalette {
	punct := ap.Punctuation
	if punct == "" {
		punct = ap.Brackets
	}
	return ColorPalette{
		Brackets:    ap.Brackets,
		Punctuation: punct,
		Quoted:      ap.Quoted,
		Text:        ap.Text,
	}
}
