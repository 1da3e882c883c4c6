// Package palette defines the fixed set of cube colours.
package palette

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

// Size is the number of colours in a palette.
const Size = 9

// RGB is a colour with channels in [0, 1].
type RGB struct {
	R, G, B float32
}

// Palette maps colour indices stored in the grid to RGB values.
type Palette [Size]RGB

// Default returns the stock palette.
func Default() Palette {
	return Palette{
		{1.0, 0.0, 0.0},    // red
		{0.0, 0.74, 1.0},   // blue
		{0.13, 0.54, 0.13}, // green
		{1.0, 0.54, 0.0},   // orange
		{1.0, 1.0, 0.0},    // yellow
		{0.54, 0.0, 0.54},  // purple
		{0.0, 1.0, 1.0},    // cyan
		{0.66, 0.66, 0.66}, // grey
		{0.72, 0.52, 0.04}, // brown
	}
}

// ButtonOrder lists palette indices in the order the control panel lays out
// its radio buttons, three per row.
var ButtonOrder = [Size]int{0, 2, 5, 1, 8, 4, 6, 7, 3}

// Parse overrides the default palette with "#rrggbb" entries. Entries past
// the end of hex keep their default value.
func Parse(hex []string) (Palette, error) {
	p := Default()
	if len(hex) > Size {
		return p, fmt.Errorf("palette: %d colours given, at most %d allowed", len(hex), Size)
	}
	for i, h := range hex {
		c, err := colorful.Hex(h)
		if err != nil {
			return p, fmt.Errorf("palette: entry %d: %w", i, err)
		}
		p[i] = RGB{R: float32(c.R), G: float32(c.G), B: float32(c.B)}
	}
	return p, nil
}

// Valid reports whether i names a palette entry.
func Valid(i int) bool { return i >= 0 && i < Size }

// At returns colour i. Indices outside the palette are clamped so that stray
// values in the grid still draw.
func (p *Palette) At(i int) RGB {
	if i < 0 {
		i = 0
	}
	if i >= Size {
		i = Size - 1
	}
	return p[i]
}

// Set replaces colour i, clamping each channel to [0, 1]. Out-of-range
// indices are ignored.
func (p *Palette) Set(i int, c RGB) {
	if !Valid(i) {
		return
	}
	p[i] = RGB{R: clamp01(c.R), G: clamp01(c.G), B: clamp01(c.B)}
}

// Hex renders every entry as "#rrggbb".
func (p *Palette) Hex() []string {
	out := make([]string, Size)
	for i, c := range p {
		out[i] = colorful.Color{R: float64(c.R), G: float64(c.G), B: float64(c.B)}.Hex()
	}
	return out
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
