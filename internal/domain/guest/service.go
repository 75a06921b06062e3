package guest

import (
	"context"
	"crypto/rand"
	"math/big"
	"strconv"
	"strings"
	"time"
)

type Channel string

const (
	ChannelEmail Channel = "email"
	ChannelSMS   Channel = "sms"
)

// Sender delivers an invitation over a channel. The default implementation
// only simulates delivery; the authoritative record of a send is the
// timestamp stamped on the guest.
type Sender interface {
	Send(ctx context.Context, g Guest, channel Channel, message string) error
}

type Service struct {
	repo   Repository
	sender Sender
}

func NewService(repo Repository, sender Sender) *Service {
	return &Service{repo: repo, sender: sender}
}

func (s *Service) AddGuest(ctx context.Context, weddingID, firstName, lastName, email, phone string) (*Guest, error) {
	firstName = strings.TrimSpace(firstName)
	lastName = strings.TrimSpace(lastName)
	if firstName == "" && lastName == "" {
		return nil, ErrNameRequired
	}

	id, err := newID()
	if err != nil {
		return nil, err
	}

	g := &Guest{
		ID:        id,
		WeddingID: weddingID,
		FirstName: firstName,
		LastName:  lastName,
		Name:      fullName(firstName, lastName),
		Email:     strings.TrimSpace(email),
		Phone:     strings.TrimSpace(phone),
		CreatedAt: time.Now(),
	}
	if err := s.repo.CreateGuest(ctx, g); err != nil {
		return nil, err
	}
	return g, nil
}

func (s *Service) ListGuests(ctx context.Context, weddingID string) ([]Guest, error) {
	return s.repo.ListGuests(ctx, weddingID)
}

// ListGuestsByStatus filters the roster by derived status. An empty filter
// returns everyone.
func (s *Service) ListGuestsByStatus(ctx context.Context, weddingID string, status Status) ([]Guest, error) {
	guests, err := s.repo.ListGuests(ctx, weddingID)
	if err != nil {
		return nil, err
	}
	if status == "" {
		return guests, nil
	}

	filtered := make([]Guest, 0, len(guests))
	for _, g := range guests {
		if DeriveStatus(g) == status {
			filtered = append(filtered, g)
		}
	}
	return filtered, nil
}

// SearchGuests matches guests by case-insensitive name substring.
func (s *Service) SearchGuests(ctx context.Context, weddingID, query string) ([]Guest, error) {
	guests, err := s.repo.ListGuests(ctx, weddingID)
	if err != nil {
		return nil, err
	}

	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return guests, nil
	}

	matched := make([]Guest, 0, len(guests))
	for _, g := range guests {
		if strings.Contains(strings.ToLower(g.Name), query) {
			matched = append(matched, g)
		}
	}
	return matched, nil
}

func (s *Service) GetGuest(ctx context.Context, weddingID, id string) (*Guest, error) {
	return s.repo.GetGuest(ctx, weddingID, id)
}

func (s *Service) DeleteGuest(ctx context.Context, weddingID, id string) error {
	return s.repo.DeleteGuest(ctx, weddingID, id)
}

// Stats recomputes roster aggregates on every call.
func (s *Service) Stats(ctx context.Context, weddingID string) (Stats, error) {
	guests, err := s.repo.ListGuests(ctx, weddingID)
	if err != nil {
		return Stats{}, err
	}
	return ComputeStats(guests), nil
}

// ImportGuests runs the confirm phase of a CSV import: rows without a mapped,
// non-empty first or last name are dropped, survivors get fresh ids and
// timestamps.
func (s *Service) ImportGuests(ctx context.Context, weddingID string, rows []map[string]string, mapping ColumnMapping) ([]Guest, error) {
	imported, err := buildImportedGuests(weddingID, rows, mapping)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	for _, g := range imported {
		g.CreatedAt = now
	}
	if err := s.repo.CreateGuests(ctx, imported); err != nil {
		return nil, err
	}

	guests := make([]Guest, len(imported))
	for i, g := range imported {
		guests[i] = *g
	}
	return guests, nil
}

// SendInvitations stamps the channel's delivery marker for each targeted
// guest that has the relevant contact field. With no explicit ids, all
// eligible guests are targeted. Re-sending overwrites the previous timestamp;
// an earlier send never suppresses a new one.
func (s *Service) SendInvitations(ctx context.Context, weddingID string, channel Channel, guestIDs []string, message func(Guest) string) (int, error) {
	if channel != ChannelEmail && channel != ChannelSMS {
		return 0, ErrInvalidChannel
	}

	guests, err := s.repo.ListGuests(ctx, weddingID)
	if err != nil {
		return 0, err
	}

	var selected map[string]struct{}
	if guestIDs != nil {
		selected = make(map[string]struct{}, len(guestIDs))
		for _, id := range guestIDs {
			selected[id] = struct{}{}
		}
	}

	now := time.Now()
	sent := 0
	for i := range guests {
		g := guests[i]
		if selected != nil {
			if _, ok := selected[g.ID]; !ok {
				continue
			}
		}
		if !eligible(g, channel) {
			continue
		}

		if s.sender != nil {
			if err := s.sender.Send(ctx, g, channel, message(g)); err != nil {
				return sent, err
			}
		}

		stamp := now
		if channel == ChannelEmail {
			g.EmailSentAt = &stamp
		} else {
			g.SMSSentAt = &stamp
		}
		if err := s.repo.UpdateGuest(ctx, &g); err != nil {
			return sent, err
		}
		sent++
	}

	return sent, nil
}

// MarkLinkClicked records that the guest opened the RSVP form. Idempotent.
func (s *Service) MarkLinkClicked(ctx context.Context, weddingID, id string) error {
	g, err := s.repo.GetGuest(ctx, weddingID, id)
	if err != nil {
		return err
	}
	if g.LinkClicked {
		return nil
	}
	g.LinkClicked = true
	return s.repo.UpdateGuest(ctx, g)
}

// SubmitAnswers merges a completed answer set into the guest record and
// stamps the response time.
func (s *Service) SubmitAnswers(ctx context.Context, weddingID, id string, answers map[string]string, respondedAt time.Time) (*Guest, error) {
	g, err := s.repo.GetGuest(ctx, weddingID, id)
	if err != nil {
		return nil, err
	}

	if g.Answers == nil {
		g.Answers = make(map[string]string, len(answers))
	}
	for key, value := range answers {
		g.Answers[key] = value
	}
	g.RespondedAt = &respondedAt

	if err := s.repo.UpdateGuest(ctx, g); err != nil {
		return nil, err
	}
	return g, nil
}

func eligible(g Guest, channel Channel) bool {
	if channel == ChannelEmail {
		return g.Email != ""
	}
	return g.Phone != ""
}

const idAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

func newID() (string, error) {
	var builder strings.Builder
	builder.WriteString(strconv.FormatInt(time.Now().UnixMilli(), 10))

	max := big.NewInt(int64(len(idAlphabet)))
	for i := 0; i < 5; i++ {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		builder.WriteByte(idAlphabet[n.Int64()])
	}
	return builder.String(), nil
}
