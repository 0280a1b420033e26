package model

import (
	"fmt"
	"strconv"
	"time"
	"unicode/utf8"
)

// Keys of RenderRequest.Extra.
const (
	ExtraDepartment = "department"
	ExtraEventName  = "eventName"
	ExtraContact    = "contact"
	ExtraHeldNo     = "heldNo"
	ExtraYear       = "year"
	ExtraPhoto      = "photo"
	ExtraEventTime  = "eventTime"
)

// Longest recipient name and title a template accepts, in runes.
const (
	MaxNameLen  = 120
	MaxTitleLen = 200
)

// RenderRequest is the kind-tagged input of the renderer. HTTP payloads are validated
// at the boundary and converted into a RenderRequest before rendering starts.
type RenderRequest struct {
	Kind          Kind
	RecipientName string
	// Title is the course or event the document is about.
	Title string
	Date  time.Time
	// Rank is 0 for a standard participant document, 1..3 for placements.
	Rank  int
	Extra map[string]string
}

// Validate checks what every template relies on.
func (r RenderRequest) Validate() error {
	if !r.Kind.Valid() {
		return &ValidationError{Field: "kind", Message: "is unknown"}
	}
	if r.RecipientName == "" {
		return &ValidationError{Field: "recipientName", Message: "is required"}
	}
	if r.Title == "" {
		return &ValidationError{Field: "eventOrCourseTitle", Message: "is required"}
	}
	if utf8.RuneCountInString(r.RecipientName) > MaxNameLen {
		return &ValidationError{Field: "recipientName", Message: fmt.Sprintf("must be at most %d characters", MaxNameLen)}
	}
	if utf8.RuneCountInString(r.Title) > MaxTitleLen {
		return &ValidationError{Field: "eventOrCourseTitle", Message: fmt.Sprintf("must be at most %d characters", MaxTitleLen)}
	}
	if r.Rank < 0 || r.Rank > 3 {
		return &ValidationError{Field: "rank", Message: "must be between 0 and 3"}
	}
	return nil
}

// CertificateRequest is the payload of POST /certificate and one item of POST /certificate/bulk.
type CertificateRequest struct {
	RecipientName string `json:"recipientName" validate:"required,max=120"`
	CourseTitle   string `json:"courseTitle" validate:"required,max=200"`
	Date          string `json:"date" validate:"required,max=40"`
	Rank          *int   `json:"rank,omitempty" validate:"omitempty,min=0,max=3"`
}

// Validate trims the payload and returns the render request it describes.
func (r *CertificateRequest) Validate() (RenderRequest, error) {
	trim(&r.RecipientName, &r.CourseTitle, &r.Date)
	if err := validateStruct(r); err != nil {
		return RenderRequest{}, err
	}
	date, err := ParseDate(r.Date)
	if err != nil {
		return RenderRequest{}, &ValidationError{Field: "date", Message: "is not a valid date"}
	}
	rank := 0
	if r.Rank != nil {
		rank = *r.Rank
	}
	return RenderRequest{
		Kind:          KindCertificate,
		RecipientName: r.RecipientName,
		Title:         r.CourseTitle,
		Date:          date,
		Rank:          rank,
	}, nil
}

// IDCardRequest is one item of POST /id-cards. Field names follow the spreadsheet
// export the coordinators upload.
type IDCardRequest struct {
	Name             Text   `json:"Name" validate:"required,max=120"`
	Department       Text   `json:"Department" validate:"required,max=120"`
	EventName        Text   `json:"EventName" validate:"max=200"`
	Year             Text   `json:"Year" validate:"max=10"`
	ContactNo        Text   `json:"ContactNo" validate:"required,max=40"`
	HeldNo           Text   `json:"HeldNo" validate:"max=40"`
	ProfileImagePath string `json:"profileImagePath" validate:"max=512"`
}

// Validate checks one card. now supplies the validity year when Year is absent.
func (r *IDCardRequest) Validate(now time.Time) (RenderRequest, error) {
	r.Name, r.Department, r.EventName = Text(r.Name.String()), Text(r.Department.String()), Text(r.EventName.String())
	r.Year, r.ContactNo, r.HeldNo = Text(r.Year.String()), Text(r.ContactNo.String()), Text(r.HeldNo.String())
	trim(&r.ProfileImagePath)
	if err := validateStruct(r); err != nil {
		return RenderRequest{}, err
	}
	year := string(r.Year)
	if year == "" {
		year = strconv.Itoa(now.Year())
	}
	title := string(r.EventName)
	if title == "" {
		title = string(r.Department)
	}
	return RenderRequest{
		Kind:          KindIDCard,
		RecipientName: string(r.Name),
		Title:         title,
		Date:          now,
		Extra: map[string]string{
			ExtraDepartment: string(r.Department),
			ExtraEventName:  string(r.EventName),
			ExtraContact:    string(r.ContactNo),
			ExtraHeldNo:     string(r.HeldNo),
			ExtraYear:       year,
			ExtraPhoto:      r.ProfileImagePath,
		},
	}, nil
}

// InvitationRequest is the payload of POST /invitation.
type InvitationRequest struct {
	JudgeName      string `json:"judgeName" validate:"required,max=120"`
	DepartmentName string `json:"departmentName" validate:"required,max=120"`
	EventName      string `json:"eventName" validate:"required,max=200"`
	EventDate      string `json:"eventDate" validate:"required,max=40"`
	EventTime      string `json:"eventTime" validate:"required,max=40"`
}

// Validate trims the payload and returns the render request it describes.
func (r *InvitationRequest) Validate() (RenderRequest, error) {
	trim(&r.JudgeName, &r.DepartmentName, &r.EventName, &r.EventDate, &r.EventTime)
	if err := validateStruct(r); err != nil {
		return RenderRequest{}, err
	}
	date, err := ParseDate(r.EventDate)
	if err != nil {
		return RenderRequest{}, &ValidationError{Field: "eventDate", Message: "is not a valid date"}
	}
	return RenderRequest{
		Kind:          KindInvitation,
		RecipientName: r.JudgeName,
		Title:         r.EventName,
		Date:          date,
		Extra: map[string]string{
			ExtraDepartment: r.DepartmentName,
			ExtraEventTime:  r.EventTime,
		},
	}, nil
}
