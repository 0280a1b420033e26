package model

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report fields by their JSON names so messages match the payload the client sent.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// ValidationError reports a missing or malformed input field.
// It is raised before any rendering or I/O happens.
type ValidationError struct {
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return e.Field + ": " + e.Message
}

// AtIndex returns a copy of e whose field is qualified with a batch position.
func (e *ValidationError) AtIndex(i int) *ValidationError {
	field := fmt.Sprintf("[%d]", i)
	if e.Field != "" {
		field += "." + e.Field
	}
	return &ValidationError{Field: field, Message: e.Message}
}

func validateStruct(s any) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return &ValidationError{Message: err.Error()}
	}
	fe := fieldErrs[0]
	switch fe.Tag() {
	case "required":
		return &ValidationError{Field: fe.Field(), Message: "is required"}
	case "max":
		if fe.Kind() == reflect.String {
			return &ValidationError{Field: fe.Field(), Message: "must be at most " + fe.Param() + " characters"}
		}
		return &ValidationError{Field: fe.Field(), Message: "must be between 0 and 3"}
	case "min":
		return &ValidationError{Field: fe.Field(), Message: "must be between 0 and 3"}
	default:
		return &ValidationError{Field: fe.Field(), Message: "is invalid"}
	}
}

func trim(fields ...*string) {
	for _, f := range fields {
		*f = strings.TrimSpace(*f)
	}
}

var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02T15:04:05",
	"01/02/2006",
	"January 2, 2006",
	"2 January 2006",
}

// ParseDate accepts the date formats browsers and spreadsheets commonly send.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", s)
}

// Text is a string field that also accepts JSON numbers, as form tools often send
// phone numbers and years unquoted.
type Text string

func (t *Text) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*t = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*t = Text(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("expected string or number, got %s", string(b))
	}
	*t = Text(n.String())
	return nil
}

func (t Text) String() string { return strings.TrimSpace(string(t)) }
