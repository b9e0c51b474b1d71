package grid

import (
	"fmt"
	"strconv"
)

// Color is a hex color string such as "#ff5733".
type Color string

// DefaultPalette is the fixed set of tile colors.
var DefaultPalette = Palette{
	"#ff5733",
	"#33ff57",
	"#3357ff",
	"#ff33a1",
	"#a133ff",
	"#33f0ff",
	"#ffd433",
	"#ff8f33",
	"#75ff33",
}

// Palette is an ordered list of colors indexed by label value.
type Palette []Color

// ColorFor maps a counter value onto the palette.
func (p Palette) ColorFor(value int) Color {
	if len(p) == 0 {
		return ""
	}
	idx := value % len(p)
	if idx < 0 {
		idx += len(p)
	}
	return p[idx]
}

// ParseColor validates a "#rrggbb" string.
func ParseColor(s string) (Color, error) {
	if len(s) != 7 || s[0] != '#' {
		return "", fmt.Errorf("invalid color %q: want #rrggbb", s)
	}
	if _, err := strconv.ParseUint(s[1:], 16, 32); err != nil {
		return "", fmt.Errorf("invalid color %q: %w", s, err)
	}
	return Color(s), nil
}

// Tile is the movable unit held by a cell. Label and Color are stored
// independently: a swap moves both without re-deriving the color.
type Tile struct {
	Label string
	Color Color
}

// Value is a snapshot of a tile's content.
type Value struct {
	Label string
	Color Color
}

// Value returns the current content of the tile.
func (t *Tile) Value() Value {
	if t == nil {
		return Value{}
	}
	return Value{Label: t.Label, Color: t.Color}
}

// Set overwrites the tile content.
func (t *Tile) Set(v Value) {
	if t == nil {
		return
	}
	t.Label = v.Label
	t.Color = v.Color
}

// Swap exchanges label and color between two tiles in place. Applying it
// twice restores both tiles.
func Swap(a, b *Tile) {
	if a == nil || b == nil || a == b {
		return
	}
	a.Label, b.Label = b.Label, a.Label
	a.Color, b.Color = b.Color, a.Color
}
