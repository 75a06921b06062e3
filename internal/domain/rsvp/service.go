package rsvp

import (
	"context"
	"crypto/rand"
	"fmt"
	"sync"
	"time"

	guestdomain "wedding-rsvp-go/internal/domain/guest"
	weddingdomain "wedding-rsvp-go/internal/domain/wedding"
)

// WeddingDirectory resolves a shareable rsvp code to its wedding.
type WeddingDirectory interface {
	GetWeddingByCode(ctx context.Context, code string) (*weddingdomain.Wedding, error)
}

// Roster is the slice of the guest service the flow needs.
type Roster interface {
	SearchGuests(ctx context.Context, weddingID, query string) ([]guestdomain.Guest, error)
	GetGuest(ctx context.Context, weddingID, id string) (*guestdomain.Guest, error)
	MarkLinkClicked(ctx context.Context, weddingID, id string) error
	SubmitAnswers(ctx context.Context, weddingID, id string, answers map[string]string, respondedAt time.Time) (*guestdomain.Guest, error)
}

// Service drives the guest-facing submission flow. Sessions live in memory;
// each is a single-actor interaction, so one lock over the session table is
// all the coordination required.
type Service struct {
	weddings WeddingDirectory
	roster   Roster

	mu       sync.Mutex
	sessions map[string]*Session
}

func NewService(weddings WeddingDirectory, roster Roster) *Service {
	return &Service{
		weddings: weddings,
		roster:   roster,
		sessions: make(map[string]*Session),
	}
}

// Open starts a session for the wedding behind the rsvp code.
func (s *Service) Open(ctx context.Context, code string) (*Session, error) {
	w, err := s.weddings.GetWeddingByCode(ctx, code)
	if err != nil {
		return nil, err
	}

	id, err := newSessionID()
	if err != nil {
		return nil, err
	}

	session := &Session{
		ID:        id,
		WeddingID: w.ID,
		State:     StateSelectingGuest,
		CreatedAt: time.Now(),
	}

	s.mu.Lock()
	s.sessions[id] = session
	snapshot := *session
	s.mu.Unlock()

	return &snapshot, nil
}

func (s *Service) Get(sessionID string) (*Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[sessionID]
	if !ok {
		return nil, ErrSessionNotFound
	}
	snapshot := *session
	return &snapshot, nil
}

// SearchGuests filters the wedding's roster by case-insensitive name
// substring, for the guest to find themselves.
func (s *Service) SearchGuests(ctx context.Context, sessionID, query string) ([]guestdomain.Guest, error) {
	s.mu.Lock()
	session, ok := s.sessions[sessionID]
	if !ok {
		s.mu.Unlock()
		return nil, ErrSessionNotFound
	}
	if session.State != StateSelectingGuest {
		s.mu.Unlock()
		return nil, ErrInvalidTransition
	}
	weddingID := session.WeddingID
	s.mu.Unlock()

	return s.roster.SearchGuests(ctx, weddingID, query)
}

// SelectGuest moves the session to FillingForm and records that the guest
// opened the form. Re-selecting after a back-navigation re-applies the marker
// idempotently.
func (s *Service) SelectGuest(ctx context.Context, sessionID, guestID string) (*Session, error) {
	s.mu.Lock()
	session, ok := s.sessions[sessionID]
	if !ok {
		s.mu.Unlock()
		return nil, ErrSessionNotFound
	}
	weddingID := session.WeddingID
	s.mu.Unlock()

	if _, err := s.roster.GetGuest(ctx, weddingID, guestID); err != nil {
		return nil, err
	}
	if err := s.roster.MarkLinkClicked(ctx, weddingID, guestID); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	session, ok = s.sessions[sessionID]
	if !ok {
		return nil, ErrSessionNotFound
	}
	if err := session.selectGuest(guestID); err != nil {
		return nil, err
	}
	snapshot := *session
	return &snapshot, nil
}

// SetAnswer stores an answer in the session's working set. An empty value
// clears the answer, which re-blocks submission when it was the attendance
// answer.
func (s *Service) SetAnswer(sessionID, questionID, value string) (*Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[sessionID]
	if !ok {
		return nil, ErrSessionNotFound
	}
	if err := session.setAnswer(questionID, value); err != nil {
		return nil, err
	}
	snapshot := *session
	return &snapshot, nil
}

// Back returns to guest selection, discarding uncommitted answers.
func (s *Service) Back(sessionID string) (*Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[sessionID]
	if !ok {
		return nil, ErrSessionNotFound
	}
	if err := session.back(); err != nil {
		return nil, err
	}
	snapshot := *session
	return &snapshot, nil
}

// Submit commits the working answers to the guest record and stamps the
// response time. Submission without an attendance answer is rejected before
// anything is written.
func (s *Service) Submit(ctx context.Context, sessionID string) (*guestdomain.Guest, error) {
	s.mu.Lock()
	session, ok := s.sessions[sessionID]
	if !ok {
		s.mu.Unlock()
		return nil, ErrSessionNotFound
	}
	if session.State != StateFillingForm {
		s.mu.Unlock()
		return nil, ErrInvalidTransition
	}
	if session.Answers[guestdomain.AnswerKeyAttending] == "" {
		s.mu.Unlock()
		return nil, ErrAttendanceRequired
	}

	weddingID := session.WeddingID
	guestID := session.GuestID
	answers := make(map[string]string, len(session.Answers))
	for key, value := range session.Answers {
		answers[key] = value
	}
	s.mu.Unlock()

	g, err := s.roster.SubmitAnswers(ctx, weddingID, guestID, answers, time.Now())
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	if session, ok := s.sessions[sessionID]; ok {
		_ = session.markSubmitted()
	}
	s.mu.Unlock()

	return g, nil
}

// Close drops the session. Closing after submission does not return the
// guest to selection; the flow is over.
func (s *Service) Close(sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[sessionID]; !ok {
		return ErrSessionNotFound
	}
	delete(s.sessions, sessionID)
	return nil
}

func newSessionID() (string, error) {
	var b [16]byte
	if _, err := rand.Read(b[:]); err != nil {
		return "", err
	}

	b[6] = (b[6] & 0x0f) | 0x40
	b[8] = (b[8] & 0x3f) | 0x80

	return fmt.Sprintf("%x-%x-%x-%x-%x", b[0:4], b[4:6], b[6:8], b[8:10], b[10:16]), nil
}
