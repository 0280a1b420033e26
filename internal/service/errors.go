package service

import "errors"

var (
	ErrIDRequired = errors.New("id is required")
	ErrNotFound   = errors.New("document not found")

	// ErrRender wraps drawing and encoding failures.
	ErrRender = errors.New("render failed")
	// ErrStore wraps file write failures.
	ErrStore = errors.New("storage write failed")
	// ErrPersistence wraps failures to record a rendered document.
	ErrPersistence = errors.New("persistence failed")
)
