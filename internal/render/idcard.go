package render

import (
	"image"
	"image/color"
	"strings"

	qrcode "github.com/skip2/go-qrcode"

	"campusdocs/internal/model"
)

const (
	idCardWidth  = 1012
	idCardHeight = 638
)

// idCardFields is the fixed order of the label/value table.
var idCardFields = []struct {
	label string
	key   string
}{
	{"Department", model.ExtraDepartment},
	{"Event", model.ExtraEventName},
	{"Contact", model.ExtraContact},
	{"ID No", model.ExtraHeldNo},
}

func drawIDCard(s *scene, req model.RenderRequest) {
	const (
		margin  = 20.0
		radius  = 24.0
		header  = 110.0
		photoX  = 200.0
		photoY  = 340.0
		photoR  = 118.0
		columnX = 380.0
		valueX  = 560.0
	)
	p := s.palette
	panelW, panelH := s.W-2*margin, s.H-2*margin

	s.frame(margin, margin, panelW, panelH, radius)

	// header bar, clipped to the rounded panel
	s.ClipRounded(margin, margin, panelW, panelH, radius)
	s.Rect(margin, margin, panelW, header, p.Primary)
	s.Unclip()
	if logo := s.asset(s.branding.LogoFile); logo != nil {
		s.ImageFit(logo, margin+70, margin+header/2, 80, 80)
	}
	s.FitText(s.branding.IDCardHeader, s.W/2+40, margin+42, 0.5, 0.5, 36, 24, panelW-240, Bold, white)
	s.FitText(s.branding.Organization, s.W/2+40, margin+84, 0.5, 0.5, 20, 14, panelW-240, Regular, white)

	// left column
	if photo := s.photo(req.Extra[model.ExtraPhoto]); photo != nil {
		s.CircleImage(photo, photoX, photoY, photoR)
	} else {
		s.Silhouette(photoX, photoY, photoR, p.Secondary, p.Primary)
		s.Ring(photoX, photoY, photoR+16, p.Accent, 2)
	}
	s.Ring(photoX, photoY, photoR+6, p.Primary, 6)
	s.Text("Valid: "+req.Extra[model.ExtraYear], photoX, photoY+photoR+56, 0.5, 0.5, 24, Bold, p.Primary)

	// right column
	s.FitText(req.RecipientName, columnX, 215, 0, 0.5, 44, 26, s.W-margin-40-columnX, Bold, p.Accent)
	s.Underline(columnX+60, 250, 120, p.Primary, 3)

	y := 300.0
	for _, f := range idCardFields {
		v := req.Extra[f.key]
		if v == "" {
			continue
		}
		s.Text(f.label, columnX, y, 0, 0.5, 22, Bold, p.Text)
		s.Text(":", valueX-20, y, 0, 0.5, 22, Bold, p.Text)
		s.FitText(v, valueX, y, 0, 0.5, 22, 16, s.W-margin-190-valueX, Regular, p.Text)
		y += 48
	}

	q, err := idCardQR(req)
	if err != nil {
		s.log.Warn().Err(err).Msg("qr_skipped")
		return
	}
	const size = 130
	s.Rect(s.W-margin-size-24, s.H-margin-size-24, size+8, size+8, white)
	s.ImageFit(q, s.W-margin-size/2-20, s.H-margin-size/2-20, size, size)
}

// idCardQR encodes the card holder for door checks.
func idCardQR(req model.RenderRequest) (image.Image, error) {
	content := strings.Join([]string{
		req.RecipientName,
		req.Extra[model.ExtraDepartment],
		req.Extra[model.ExtraEventName],
		req.Extra[model.ExtraContact],
	}, "|")
	q, err := qrcode.New(content, qrcode.Medium)
	if err != nil {
		return nil, err
	}
	q.DisableBorder = true
	q.ForegroundColor = color.Black
	return q.Image(256), nil
}
