// Package render composes certificates, ID cards and invitation letters as rasters.
//
// Every document kind is a template over the same Canvas primitives and the
// rank palette. Layout coordinates are absolute: an element whose asset cannot
// be loaded is skipped and nothing else moves.
package render

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"

	"github.com/rs/zerolog"

	"campusdocs/internal/config"
	"campusdocs/internal/model"
	"campusdocs/internal/theme"
)

// template is one document layout.
type template struct {
	width, height int
	draw          func(s *scene, req model.RenderRequest)
}

var templates = map[model.Kind]template{
	model.KindCertificate: {width: certificateWidth, height: certificateHeight, draw: drawCertificate},
	model.KindIDCard:      {width: idCardWidth, height: idCardHeight, draw: drawIDCard},
	model.KindInvitation:  {width: invitationWidth, height: invitationHeight, draw: drawInvitation},
}

// scene is the per-render state handed to a template.
type scene struct {
	*Canvas
	palette  theme.Palette
	branding config.Branding
	asset    func(name string) image.Image
	photo    func(name string) image.Image
	log      zerolog.Logger
}

var white = color.NRGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}

// Options configures a Renderer. Nil loaders disable the elements that need them.
type Options struct {
	Fonts    *FontSet
	Assets   AssetLoader
	Photos   AssetLoader
	Branding config.Branding
	Logger   zerolog.Logger
}

// Renderer draws documents. It holds no per-render state and is safe for
// concurrent use.
type Renderer struct {
	fonts    *FontSet
	assets   AssetLoader
	photos   AssetLoader
	branding config.Branding
	log      zerolog.Logger
}

// New returns a Renderer, using the embedded Go fonts when opt.Fonts is nil.
func New(opt Options) (*Renderer, error) {
	fonts := opt.Fonts
	if fonts == nil {
		var err error
		if fonts, err = DefaultFonts(); err != nil {
			return nil, err
		}
	}
	return &Renderer{
		fonts:    fonts,
		assets:   opt.Assets,
		photos:   opt.Photos,
		branding: opt.Branding,
		log:      opt.Logger.With().Str("component", "renderer").Logger(),
	}, nil
}

// Render draws req onto a fresh canvas. A panic inside drawing is returned as an error
// so the caller never receives a partially drawn image.
func (r *Renderer) Render(req model.RenderRequest) (img image.Image, err error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	tpl, ok := templates[req.Kind]
	if !ok {
		return nil, fmt.Errorf("no template for %q", req.Kind)
	}

	defer func() {
		if rec := recover(); rec != nil {
			img = nil
			err = fmt.Errorf("draw %s: %v", req.Kind, rec)
		}
	}()

	c := newCanvas(tpl.width, tpl.height, r.fonts)
	s := &scene{
		Canvas:   c,
		palette:  theme.ForRank(req.Rank),
		branding: r.branding,
		asset:    r.loader(r.assets, req.Kind, "asset"),
		photo:    r.loader(r.photos, req.Kind, "photo"),
		log:      r.log.With().Str("kind", string(req.Kind)).Logger(),
	}
	tpl.draw(s, req)
	if err := c.Err(); err != nil {
		return nil, fmt.Errorf("draw %s: %w", req.Kind, err)
	}
	return c.Image(), nil
}

// loader wraps an AssetLoader with the skip-and-log policy.
func (r *Renderer) loader(l AssetLoader, kind model.Kind, what string) func(string) image.Image {
	return func(name string) image.Image {
		if l == nil || name == "" {
			return nil
		}
		img, err := l.Load(name)
		if err != nil {
			ev := r.log.Warn()
			if !errors.Is(err, ErrAssetNotFound) {
				ev = r.log.Error()
			}
			ev.Err(err).Str("kind", string(kind)).Str(what, name).Msg("asset_skipped")
			return nil
		}
		return img
	}
}

// EncodePNG writes img as PNG.
func EncodePNG(w io.Writer, img image.Image) error {
	enc := png.Encoder{CompressionLevel: png.BestSpeed}
	return enc.Encode(w, img)
}

// frame draws the layers every document shares: background, watermark,
// card panel and corner accents.
func (s *scene) frame(x, y, w, h, radius float64) {
	s.VerticalGradient(white, s.palette.Secondary)
	if s.branding.Watermark {
		if logo := s.asset(s.branding.LogoFile); logo != nil {
			s.Watermark(logo, 0.06, 1.0)
		}
	}
	s.Panel(x, y, w, h, radius, color.NRGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xEB}, s.palette.Primary, s.palette.Shadow, 6)
	s.CornerAccents(x, y, w, h, 22, 64, s.palette.Primary, 5)
}

// signature draws the optional signature image above a rule and two attribution lines.
func (s *scene) signature(cx, y float64) {
	if sig := s.asset(s.branding.SignatureFile); sig != nil {
		s.ImageFit(sig, cx, y, 220, 70)
	}
	s.Underline(cx, y+45, 240, s.palette.Text, 2)
	s.Text(s.branding.SignatoryName, cx, y+75, 0.5, 0.5, 22, Bold, s.palette.Text)
	s.Text(s.branding.SignatoryTitle, cx, y+105, 0.5, 0.5, 18, Regular, s.palette.Text)
}
