package render

import (
	"image"
	"image/color"
	"math"
	"strconv"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"
	"golang.org/x/image/font"
)

// Canvas wraps a gg context with the drawing primitives the templates share.
// A Canvas belongs to exactly one render. The first font error is kept and
// reported by Err; drawing continues with the previous face.
type Canvas struct {
	dc    *gg.Context
	fonts *FontSet
	faces map[faceKey]font.Face
	err   error

	W, H float64
}

type faceKey struct {
	size  float64
	style FontStyle
}

func newCanvas(width, height int, fonts *FontSet) *Canvas {
	return &Canvas{
		dc:    gg.NewContext(width, height),
		fonts: fonts,
		faces: make(map[faceKey]font.Face),
		W:     float64(width),
		H:     float64(height),
	}
}

// Err returns the first error met while drawing.
func (c *Canvas) Err() error { return c.err }

// Image returns the composed raster.
func (c *Canvas) Image() image.Image { return c.dc.Image() }

func (c *Canvas) setFont(size float64, style FontStyle) {
	key := faceKey{size: size, style: style}
	face, ok := c.faces[key]
	if !ok {
		var err error
		face, err = c.fonts.Face(size, style)
		if err != nil {
			if c.err == nil {
				c.err = err
			}
			return
		}
		c.faces[key] = face
	}
	c.dc.SetFontFace(face)
}

// VerticalGradient fills the whole canvas from top to bottom.
func (c *Canvas) VerticalGradient(top, bottom color.Color) {
	grad := gg.NewLinearGradient(0, 0, 0, c.H)
	grad.AddColorStop(0, top)
	grad.AddColorStop(1, bottom)
	c.dc.SetFillStyle(grad)
	c.dc.DrawRectangle(0, 0, c.W, c.H)
	c.dc.Fill()
}

// Watermark draws img centered and faded. scale is relative to the larger canvas side.
func (c *Canvas) Watermark(img image.Image, opacity, scale float64) {
	side := int(math.Max(c.W, c.H) * scale)
	scaled := scaleLongSide(img, side)
	faded := imaging.AdjustFunc(scaled, func(px color.NRGBA) color.NRGBA {
		px.A = uint8(float64(px.A) * opacity)
		return px
	})
	c.dc.DrawImageAnchored(faded, int(c.W/2), int(c.H/2), 0.5, 0.5)
}

// Panel draws a rounded card with a soft drop shadow and a stroked border.
func (c *Canvas) Panel(x, y, w, h, radius float64, fill, border, shadow color.Color, borderWidth float64) {
	sr, sg, sb, sa := nrgba(shadow)
	for i := 4; i >= 1; i-- {
		off := float64(i) * 3
		c.dc.SetColor(color.NRGBA{R: sr, G: sg, B: sb, A: uint8(float64(sa) / float64(i+1))})
		c.dc.DrawRoundedRectangle(x+off, y+off, w, h, radius)
		c.dc.Fill()
	}
	c.dc.SetColor(fill)
	c.dc.DrawRoundedRectangle(x, y, w, h, radius)
	c.dc.Fill()

	c.dc.SetColor(border)
	c.dc.SetLineWidth(borderWidth)
	c.dc.DrawRoundedRectangle(x, y, w, h, radius)
	c.dc.Stroke()
}

// CornerAccents strokes an L-shaped polyline inside each corner of the rectangle.
func (c *Canvas) CornerAccents(x, y, w, h, inset, length float64, col color.Color, width float64) {
	c.dc.SetColor(col)
	c.dc.SetLineWidth(width)
	c.dc.SetLineCapRound()
	corners := [4][2]float64{
		{x + inset, y + inset},
		{x + w - inset, y + inset},
		{x + inset, y + h - inset},
		{x + w - inset, y + h - inset},
	}
	for _, p := range corners {
		dx := length
		if p[0] > x+w/2 {
			dx = -length
		}
		dy := length
		if p[1] > y+h/2 {
			dy = -length
		}
		c.dc.MoveTo(p[0]+dx, p[1])
		c.dc.LineTo(p[0], p[1])
		c.dc.LineTo(p[0], p[1]+dy)
		c.dc.Stroke()
	}
}

// Rect fills an axis-aligned rectangle.
func (c *Canvas) Rect(x, y, w, h float64, col color.Color) {
	c.dc.SetColor(col)
	c.dc.DrawRectangle(x, y, w, h)
	c.dc.Fill()
}

// ClipRounded restricts drawing to a rounded rectangle until Unclip.
func (c *Canvas) ClipRounded(x, y, w, h, radius float64) {
	c.dc.DrawRoundedRectangle(x, y, w, h, radius)
	c.dc.Clip()
}

// Unclip removes any clip region.
func (c *Canvas) Unclip() { c.dc.ResetClip() }

// ImageFit draws img centered on (cx, cy) scaled to fit inside maxW x maxH.
func (c *Canvas) ImageFit(img image.Image, cx, cy, maxW, maxH float64) {
	b := img.Bounds()
	ratio := math.Min(maxW/float64(b.Dx()), maxH/float64(b.Dy()))
	w := int(math.Round(float64(b.Dx()) * ratio))
	h := int(math.Round(float64(b.Dy()) * ratio))
	if w < 1 || h < 1 {
		return
	}
	c.dc.DrawImageAnchored(imaging.Resize(img, w, h, imaging.Lanczos), int(cx), int(cy), 0.5, 0.5)
}

// CircleImage crop-fills img into a circle of radius r centered on (cx, cy).
func (c *Canvas) CircleImage(img image.Image, cx, cy, r float64) {
	d := int(2 * r)
	filled := imaging.Fill(img, d, d, imaging.Center, imaging.Lanczos)
	c.dc.DrawCircle(cx, cy, r)
	c.dc.Clip()
	c.dc.DrawImageAnchored(filled, int(cx), int(cy), 0.5, 0.5)
	c.dc.ResetClip()
}

// Silhouette draws a generic head-and-shoulders placeholder inside a disc.
func (c *Canvas) Silhouette(cx, cy, r float64, bg, fg color.Color) {
	c.dc.SetColor(bg)
	c.dc.DrawCircle(cx, cy, r)
	c.dc.Fill()

	c.dc.DrawCircle(cx, cy, r)
	c.dc.Clip()
	c.dc.SetColor(fg)
	c.dc.DrawCircle(cx, cy-r*0.22, r*0.36)
	c.dc.Fill()
	c.dc.DrawEllipse(cx, cy+r*0.78, r*0.72, r*0.56)
	c.dc.Fill()
	c.dc.ResetClip()
}

// Ring strokes a circle.
func (c *Canvas) Ring(cx, cy, r float64, col color.Color, width float64) {
	c.dc.SetColor(col)
	c.dc.SetLineWidth(width)
	c.dc.DrawCircle(cx, cy, r)
	c.dc.Stroke()
}

// Text draws a single line anchored at (x, y); ax/ay follow gg's anchor convention.
func (c *Canvas) Text(s string, x, y, ax, ay, size float64, style FontStyle, col color.Color) {
	c.setFont(size, style)
	c.dc.SetColor(col)
	c.dc.DrawStringAnchored(s, x, y, ax, ay)
}

// FitText draws one line, shrinking the font down to minSize until it fits maxW.
// Text that still does not fit is cut with an ellipsis.
func (c *Canvas) FitText(s string, x, y, ax, ay, size, minSize, maxW float64, style FontStyle, col color.Color) {
	for ; size > minSize; size -= 2 {
		c.setFont(size, style)
		if w, _ := c.dc.MeasureString(s); w <= maxW {
			break
		}
	}
	if size < minSize {
		size = minSize
	}
	c.setFont(size, style)
	c.dc.SetColor(col)
	c.dc.DrawStringAnchored(c.ellipsize(s, maxW), x, y, ax, ay)
}

// WrapCentered word-wraps s to maxW and centers each line on cx, starting at
// baseline-center y. At most maxLines lines are drawn, the last one ellipsized.
// It returns the y coordinate following the last line.
func (c *Canvas) WrapCentered(s string, cx, y, maxW, lineHeight, size float64, style FontStyle, col color.Color, maxLines int) float64 {
	c.setFont(size, style)
	c.dc.SetColor(col)
	for _, line := range c.wrapLines(s, maxW, maxLines) {
		c.dc.DrawStringAnchored(line, cx, y, 0.5, 0.5)
		y += lineHeight
	}
	return y
}

// wrapLines breaks s at spaces into lines no wider than maxW with the current face.
// A word wider than maxW is cut with an ellipsis on its own line.
func (c *Canvas) wrapLines(s string, maxW float64, maxLines int) []string {
	lines := c.dc.WordWrap(s, maxW)
	if maxLines > 0 && len(lines) > maxLines {
		rest := strings.Join(lines[maxLines-1:], " ")
		lines = append(lines[:maxLines-1], rest)
	}
	for i, line := range lines {
		lines[i] = c.ellipsize(line, maxW)
	}
	return lines
}

// Underline draws a short centered rule.
func (c *Canvas) Underline(cx, y, w float64, col color.Color, width float64) {
	c.dc.SetColor(col)
	c.dc.SetLineWidth(width)
	c.dc.SetLineCapRound()
	c.dc.DrawLine(cx-w/2, y, cx+w/2, y)
	c.dc.Stroke()
}

// Badge draws a filled disc with the rank number and a RANK caption.
func (c *Canvas) Badge(cx, cy, r float64, rank int, fill, ring, text color.Color) {
	c.dc.SetColor(fill)
	c.dc.DrawCircle(cx, cy, r)
	c.dc.Fill()
	c.Ring(cx, cy, r-6, ring, 3)

	c.Text(strconv.Itoa(rank), cx, cy-r*0.12, 0.5, 0.5, r*0.8, Bold, text)
	c.Text("RANK", cx, cy+r*0.5, 0.5, 0.5, r*0.24, Bold, text)
}

// ellipsize returns the longest prefix of s that fits maxW once "…" is appended,
// or s itself when it already fits. The cut point is found by binary search.
func (c *Canvas) ellipsize(s string, maxW float64) string {
	if w, _ := c.dc.MeasureString(s); w <= maxW {
		return s
	}
	runes := []rune(s)
	best := ""
	lo, hi := 0, len(runes)-1
	for lo <= hi {
		mid := (lo + hi) / 2
		candidate := strings.TrimSpace(string(runes[:mid])) + "…"
		if w, _ := c.dc.MeasureString(candidate); w <= maxW {
			best = candidate
			lo = mid + 1
		} else {
			hi = mid - 1
		}
	}
	return best
}

func scaleLongSide(img image.Image, side int) image.Image {
	b := img.Bounds()
	if b.Dx() >= b.Dy() {
		return imaging.Resize(img, side, 0, imaging.Lanczos)
	}
	return imaging.Resize(img, 0, side, imaging.Lanczos)
}

func nrgba(c color.Color) (r, g, b, a uint8) {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return n.R, n.G, n.B, n.A
}
