package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Branding holds the static texts and asset names printed on every document.
type Branding struct {
	Organization   string `yaml:"organization"`
	LogoFile       string `yaml:"logo_file"`
	SignatureFile  string `yaml:"signature_file"`
	SignatoryName  string `yaml:"signatory_name"`
	SignatoryTitle string `yaml:"signatory_title"`
	Watermark      bool   `yaml:"watermark"`
	IDCardHeader   string `yaml:"id_card_header"`
	InvitationFrom string `yaml:"invitation_from"`
}

// DefaultBranding is used when no branding file is configured.
func DefaultBranding() Branding {
	return Branding{
		Organization:   "Campus Events Committee",
		LogoFile:       "logo.png",
		SignatureFile:  "signature.png",
		SignatoryName:  "Event Coordinator",
		SignatoryTitle: "Campus Events Committee",
		Watermark:      true,
		IDCardHeader:   "EVENT ID CARD",
		InvitationFrom: "Organizing Committee",
	}
}

// LoadBranding reads a YAML branding file on top of DefaultBranding.
// An empty path returns the defaults.
func LoadBranding(path string) (Branding, error) {
	b := DefaultBranding()
	if path == "" {
		return b, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return b, fmt.Errorf("read branding file: %w", err)
	}
	if err := yaml.Unmarshal(raw, &b); err != nil {
		return b, fmt.Errorf("parse branding file: %w", err)
	}
	return b, nil
}
