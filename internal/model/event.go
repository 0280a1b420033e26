package model

import "time"

// Event is a scheduled campus event scanned by the notifier.
type Event struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	Venue      string     `json:"venue"`
	StartsAt   time.Time  `json:"startsAt"`
	NotifiedAt *time.Time `json:"notifiedAt,omitempty"`
	CreatedAt  time.Time  `json:"createdAt"`
}

// EventRequest is the payload of POST /events.
type EventRequest struct {
	Name     string `json:"name" validate:"required,max=200"`
	Venue    string `json:"venue" validate:"max=200"`
	StartsAt string `json:"startsAt" validate:"required,max=64"`
}

// Validate trims the payload and returns the parsed start time.
func (r *EventRequest) Validate() (time.Time, error) {
	trim(&r.Name, &r.Venue, &r.StartsAt)
	if err := validateStruct(r); err != nil {
		return time.Time{}, err
	}
	at, err := time.Parse(time.RFC3339, r.StartsAt)
	if err != nil {
		return time.Time{}, &ValidationError{Field: "startsAt", Message: "must be an RFC 3339 timestamp"}
	}
	return at.UTC(), nil
}
