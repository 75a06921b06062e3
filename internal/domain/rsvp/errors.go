package rsvp

import "errors"

var (
	ErrSessionNotFound    = errors.New("rsvp session not found")
	ErrInvalidTransition  = errors.New("invalid rsvp flow transition")
	ErrAttendanceRequired = errors.New("attendance answer is required")
)
