package guest

import (
	"strings"
	"time"
)

// Answer keys the default question set writes under. Custom questions use
// their generated question ids.
const (
	AnswerKeyAttending = "attending"
	AnswerKeyPlusOne   = "plusOne"
)

// Canonical attendance answers. They double as derived statuses.
const (
	AttendingYes   = "Joyfully Accept"
	AttendingNo    = "Regretfully Decline"
	AttendingMaybe = "Not Sure Yet"
)

type Guest struct {
	ID          string            `gorm:"primaryKey"`
	WeddingID   string            `gorm:"not null;index"`
	FirstName   string            ``
	LastName    string            ``
	Name        string            ``
	Email       string            ``
	Phone       string            ``
	Answers     map[string]string `gorm:"serializer:json"`
	EmailSentAt *time.Time        ``
	SMSSentAt   *time.Time        ``
	LinkClicked bool              ``
	RespondedAt *time.Time        ``
	CreatedAt   time.Time         `gorm:"autoCreateTime"`
}

// Attending returns the recorded attendance answer, empty when unanswered.
func (g Guest) Attending() string {
	return g.Answers[AnswerKeyAttending]
}

func fullName(firstName, lastName string) string {
	return strings.TrimSpace(strings.TrimSpace(firstName) + " " + strings.TrimSpace(lastName))
}
