package render

import (
	"fmt"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// FontStyle selects one of the faces of a FontSet.
type FontStyle int

const (
	Regular FontStyle = iota
	Bold
	Italic
)

// FontSet holds parsed fonts. Parsed fonts are safe to share between renders;
// the faces created from them are not, so every canvas builds its own.
type FontSet struct {
	fonts map[FontStyle]*opentype.Font
}

// DefaultFonts returns the embedded Go font family.
func DefaultFonts() (*FontSet, error) {
	return NewFontSet(map[FontStyle][]byte{
		Regular: goregular.TTF,
		Bold:    gobold.TTF,
		Italic:  goitalic.TTF,
	})
}

// LoadFonts reads TTF/OTF files from disk, falling back to the embedded Go font
// for every style whose path is empty.
func LoadFonts(paths map[FontStyle]string) (*FontSet, error) {
	data := map[FontStyle][]byte{
		Regular: goregular.TTF,
		Bold:    gobold.TTF,
		Italic:  goitalic.TTF,
	}
	for style, path := range paths {
		if path == "" {
			continue
		}
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read font %q: %w", path, err)
		}
		data[style] = raw
	}
	return NewFontSet(data)
}

// NewFontSet parses raw font data per style.
func NewFontSet(data map[FontStyle][]byte) (*FontSet, error) {
	fs := &FontSet{fonts: make(map[FontStyle]*opentype.Font, len(data))}
	for style, raw := range data {
		parsed, err := opentype.Parse(raw)
		if err != nil {
			return nil, fmt.Errorf("parse font: %w", err)
		}
		fs.fonts[style] = parsed
	}
	if _, ok := fs.fonts[Regular]; !ok {
		return nil, fmt.Errorf("font set has no regular face")
	}
	return fs, nil
}

// Face returns a new face at size points (72 DPI, so points equal pixels).
// Missing styles fall back to Regular.
func (fs *FontSet) Face(size float64, style FontStyle) (font.Face, error) {
	f, ok := fs.fonts[style]
	if !ok {
		f = fs.fonts[Regular]
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("create font face at %.1fpt: %w", size, err)
	}
	return face, nil
}
