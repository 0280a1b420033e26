package model

import "time"

// Kind discriminates the document templates the renderer knows about.
type Kind string

const (
	KindCertificate Kind = "certificate"
	KindIDCard      Kind = "id_card"
	KindInvitation  Kind = "invitation"
)

// Valid reports whether k names a known document kind.
func (k Kind) Valid() bool {
	switch k {
	case KindCertificate, KindIDCard, KindInvitation:
		return true
	}
	return false
}

// RenderedDocument is the record kept for every generated PNG.
// It is written once and never updated; a resubmission produces a new record and file.
type RenderedDocument struct {
	ID            string            `json:"id"`
	Kind          Kind              `json:"kind"`
	RecipientName string            `json:"recipientName"`
	EventName     string            `json:"eventName"`
	Date          string            `json:"date,omitempty"`
	Rank          *int              `json:"rank,omitempty"`
	FilePath      string            `json:"filePath"`
	Fields        map[string]string `json:"fields,omitempty"`
	CreatedAt     time.Time         `json:"createdAt"`
}
