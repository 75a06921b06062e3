package rsvp

import "time"

// State tags a session's position in the submission flow. Transitions only
// ever move SelectingGuest → FillingForm → Submitted, with FillingForm →
// SelectingGuest as the single backward edge.
type State string

const (
	StateSelectingGuest State = "selecting_guest"
	StateFillingForm    State = "filling_form"
	StateSubmitted      State = "submitted"
)

// Session is one guest-facing RSVP interaction. Answers are a working set
// held on the session; nothing touches the guest record until submission,
// except the link-click marker applied on selection.
type Session struct {
	ID        string
	WeddingID string
	State     State
	GuestID   string
	Answers   map[string]string
	CreatedAt time.Time
}

func (s *Session) selectGuest(guestID string) error {
	if s.State != StateSelectingGuest {
		return ErrInvalidTransition
	}
	s.GuestID = guestID
	s.Answers = make(map[string]string)
	s.State = StateFillingForm
	return nil
}

func (s *Session) setAnswer(questionID, value string) error {
	if s.State != StateFillingForm {
		return ErrInvalidTransition
	}
	if value == "" {
		delete(s.Answers, questionID)
		return nil
	}
	s.Answers[questionID] = value
	return nil
}

// back discards the working answer set. The link-click marker already applied
// to the guest is deliberately left in place.
func (s *Session) back() error {
	if s.State != StateFillingForm {
		return ErrInvalidTransition
	}
	s.GuestID = ""
	s.Answers = nil
	s.State = StateSelectingGuest
	return nil
}

func (s *Session) markSubmitted() error {
	if s.State != StateFillingForm {
		return ErrInvalidTransition
	}
	s.State = StateSubmitted
	return nil
}
