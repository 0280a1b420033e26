package render

import (
	"fmt"

	"campusdocs/internal/model"
)

const (
	invitationWidth  = 1240
	invitationHeight = 1754
)

func drawInvitation(s *scene, req model.RenderRequest) {
	const margin = 60.0
	cx := s.W / 2
	textW := s.W - 2*margin - 240
	p := s.palette

	s.frame(margin, margin, s.W-2*margin, s.H-2*margin, 32)

	if logo := s.asset(s.branding.LogoFile); logo != nil {
		s.ImageFit(logo, cx, 200, 150, 150)
	}

	s.Text("INVITATION", cx, 350, 0.5, 0.5, 72, Bold, p.Primary)
	s.Underline(cx, 395, 260, p.Primary, 4)

	s.Text("Respected", cx, 480, 0.5, 0.5, 28, Italic, p.Text)
	s.FitText(req.RecipientName, cx, 550, 0.5, 0.5, 50, 30, textW, Bold, p.Accent)
	s.FitText("Department of "+req.Extra[model.ExtraDepartment], cx, 610, 0.5, 0.5, 28, 20, textW, Regular, p.Primary)

	body := fmt.Sprintf("We are delighted to invite you to serve as a judge for %s, organized by the %s. "+
		"Your expertise and guidance will inspire our participants and help us recognize outstanding work.",
		req.Title, s.branding.Organization)
	y := s.WrapCentered(body, cx, 720, textW, 46, 28, Regular, p.Text, 5)

	s.WrapCentered(req.Title, cx, y+50, textW, 52, 40, Bold, p.Primary, 2)

	s.Text("Date: "+req.Date.Format("Monday, 2 January 2006"), cx, 1120, 0.5, 0.5, 30, Bold, p.Text)
	s.Text("Time: "+req.Extra[model.ExtraEventTime], cx, 1170, 0.5, 0.5, 30, Bold, p.Text)

	s.Text("We look forward to your gracious presence.", cx, 1270, 0.5, 0.5, 28, Italic, p.Text)

	s.Text(s.branding.InvitationFrom, margin+280, 1490, 0.5, 0.5, 24, Bold, p.Primary)
	s.signature(s.W-margin-280, 1430)
}
