// Package theme maps a placement rank to the palette used across a document.
package theme

import (
	"fmt"
	"image/color"
)

// Palette is the five-color scheme shared by background, frame, accents and badge.
type Palette struct {
	Primary   color.NRGBA
	Secondary color.NRGBA
	Accent    color.NRGBA
	Text      color.NRGBA
	Shadow    color.NRGBA
}

var (
	gold = Palette{
		Primary:   hex(0xFFD700),
		Secondary: hex(0xFFF8DC),
		Accent:    hex(0xB8860B),
		Text:      hex(0x3E2F00),
		Shadow:    color.NRGBA{R: 0xB8, G: 0x86, B: 0x0B, A: 0x59},
	}
	silver = Palette{
		Primary:   hex(0xC0C0C0),
		Secondary: hex(0xF5F5F5),
		Accent:    hex(0x708090),
		Text:      hex(0x2F2F2F),
		Shadow:    color.NRGBA{R: 0x70, G: 0x80, B: 0x90, A: 0x59},
	}
	bronze = Palette{
		Primary:   hex(0xCD7F32),
		Secondary: hex(0xFBE9DA),
		Accent:    hex(0x8B4513),
		Text:      hex(0x3B2414),
		Shadow:    color.NRGBA{R: 0x8B, G: 0x45, B: 0x13, A: 0x59},
	}
	standard = Palette{
		Primary:   hex(0x1E3A8A),
		Secondary: hex(0xE0E7FF),
		Accent:    hex(0x2563EB),
		Text:      hex(0x1F2937),
		Shadow:    color.NRGBA{R: 0x1E, G: 0x3A, B: 0x8A, A: 0x40},
	}
)

// ForRank returns the palette for a placement. Every value outside 1..3 gets the
// standard palette.
func ForRank(rank int) Palette {
	switch rank {
	case 1:
		return gold
	case 2:
		return silver
	case 3:
		return bronze
	default:
		return standard
	}
}

// ForRankPtr is ForRank for an optional rank; nil means no placement.
func ForRankPtr(rank *int) Palette {
	if rank == nil {
		return standard
	}
	return ForRank(*rank)
}

// Default returns the palette of an unranked document.
func Default() Palette { return standard }

// Hex formats c as #RRGGBB.
func Hex(c color.NRGBA) string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

func hex(v uint32) color.NRGBA {
	return color.NRGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xFF}
}
