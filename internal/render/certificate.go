package render

import (
	"campusdocs/internal/model"
)

const (
	certificateWidth  = 1400
	certificateHeight = 990
)

var placeNames = map[int]string{1: "first", 2: "second", 3: "third"}

func drawCertificate(s *scene, req model.RenderRequest) {
	const margin = 60.0
	cx := s.W / 2
	p := s.palette

	s.frame(margin, margin, s.W-2*margin, s.H-2*margin, 28)

	if logo := s.asset(s.branding.LogoFile); logo != nil {
		s.ImageFit(logo, cx, 160, 120, 120)
	}

	title := "CERTIFICATE OF PARTICIPATION"
	if req.Rank > 0 {
		title = "CERTIFICATE OF ACHIEVEMENT"
	}
	s.FitText(title, cx, 270, 0.5, 0.5, 54, 36, s.W-2*margin-320, Bold, p.Primary)
	s.Underline(cx, 310, 220, p.Primary, 4)

	s.Text("This certificate is proudly presented to", cx, 380, 0.5, 0.5, 26, Italic, p.Text)
	s.FitText(req.RecipientName, cx, 460, 0.5, 0.5, 64, 36, s.W-2*margin-160, Bold, p.Accent)

	context := "for participating in"
	if place, ok := placeNames[req.Rank]; ok {
		context = "for securing " + place + " place in"
	}
	s.Text(context, cx, 535, 0.5, 0.5, 26, Regular, p.Text)
	s.WrapCentered(req.Title, cx, 590, s.W-2*margin-300, 46, 36, Bold, p.Primary, 2)

	s.Text("Date: "+req.Date.Format("2 January 2006"), cx, 715, 0.5, 0.5, 24, Regular, p.Text)

	if req.Rank >= 1 && req.Rank <= 3 {
		s.Badge(s.W-margin-150, margin+150, 78, req.Rank, p.Primary, white, white)
	}

	s.Text(s.branding.Organization, margin+260, 850, 0.5, 0.5, 22, Bold, p.Primary)
	s.signature(s.W-margin-260, 790)
}
