package guest

import (
	"context"
	"errors"
	"testing"
	"time"
)

type fakeGuestRepo struct {
	guests map[string]*Guest
	order  []string
}

func newFakeGuestRepo() *fakeGuestRepo {
	return &fakeGuestRepo{guests: make(map[string]*Guest)}
}

func (r *fakeGuestRepo) CreateGuest(ctx context.Context, g *Guest) error {
	copied := *g
	r.guests[g.ID] = &copied
	r.order = append(r.order, g.ID)
	return nil
}

func (r *fakeGuestRepo) CreateGuests(ctx context.Context, guests []*Guest) error {
	for _, g := range guests {
		if err := r.CreateGuest(ctx, g); err != nil {
			return err
		}
	}
	return nil
}

func (r *fakeGuestRepo) ListGuests(ctx context.Context, weddingID string) ([]Guest, error) {
	out := make([]Guest, 0, len(r.order))
	for _, id := range r.order {
		if g := r.guests[id]; g.WeddingID == weddingID {
			out = append(out, *g)
		}
	}
	return out, nil
}

func (r *fakeGuestRepo) GetGuest(ctx context.Context, weddingID, id string) (*Guest, error) {
	g, ok := r.guests[id]
	if !ok || g.WeddingID != weddingID {
		return nil, ErrGuestNotFound
	}
	copied := *g
	return &copied, nil
}

func (r *fakeGuestRepo) UpdateGuest(ctx context.Context, g *Guest) error {
	if _, ok := r.guests[g.ID]; !ok {
		return ErrGuestNotFound
	}
	copied := *g
	r.guests[g.ID] = &copied
	return nil
}

func (r *fakeGuestRepo) DeleteGuest(ctx context.Context, weddingID, id string) error {
	g, ok := r.guests[id]
	if !ok || g.WeddingID != weddingID {
		return ErrGuestNotFound
	}
	delete(r.guests, id)
	for i, existing := range r.order {
		if existing == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

type recordedSend struct {
	guestID string
	channel Channel
	message string
}

type fakeSender struct {
	sends []recordedSend
	err   error
}

func (s *fakeSender) Send(ctx context.Context, g Guest, channel Channel, message string) error {
	if s.err != nil {
		return s.err
	}
	s.sends = append(s.sends, recordedSend{guestID: g.ID, channel: channel, message: message})
	return nil
}

func TestAddGuest(t *testing.T) {
	repo := newFakeGuestRepo()
	svc := NewService(repo, &fakeSender{})

	g, err := svc.AddGuest(context.Background(), "w1", " John ", "Smith", " john@example.com ", "")
	if err != nil {
		t.Fatalf("AddGuest: %v", err)
	}

	if g.Name != "John Smith" {
		t.Errorf("Name = %q", g.Name)
	}
	if g.Email != "john@example.com" {
		t.Errorf("Email = %q, must be trimmed", g.Email)
	}
	if _, ok := repo.guests[g.ID]; !ok {
		t.Error("guest not stored")
	}
	if DeriveStatus(*g) != StatusNotInvited {
		t.Errorf("fresh guest status = %q", DeriveStatus(*g))
	}
}

func TestAddGuestRequiresAName(t *testing.T) {
	svc := NewService(newFakeGuestRepo(), &fakeSender{})

	if _, err := svc.AddGuest(context.Background(), "w1", "  ", "", "a@example.com", ""); !errors.Is(err, ErrNameRequired) {
		t.Errorf("err = %v, want ErrNameRequired", err)
	}
}

func TestListGuestsByStatus(t *testing.T) {
	repo := newFakeGuestRepo()
	svc := NewService(repo, &fakeSender{})
	ctx := context.Background()

	invited, _ := svc.AddGuest(ctx, "w1", "Ann", "", "ann@example.com", "")
	fresh, _ := svc.AddGuest(ctx, "w1", "Bob", "", "", "")

	sent := time.Now()
	stored := repo.guests[invited.ID]
	stored.EmailSentAt = &sent

	got, err := svc.ListGuestsByStatus(ctx, "w1", StatusInvited)
	if err != nil {
		t.Fatalf("ListGuestsByStatus: %v", err)
	}
	if len(got) != 1 || got[0].ID != invited.ID {
		t.Errorf("invited filter returned %v", got)
	}

	got, _ = svc.ListGuestsByStatus(ctx, "w1", StatusNotInvited)
	if len(got) != 1 || got[0].ID != fresh.ID {
		t.Errorf("not-invited filter returned %v", got)
	}

	all, _ := svc.ListGuestsByStatus(ctx, "w1", "")
	if len(all) != 2 {
		t.Errorf("empty filter returned %d guests", len(all))
	}
}

func TestSearchGuests(t *testing.T) {
	svc := NewService(newFakeGuestRepo(), &fakeSender{})
	ctx := context.Background()

	svc.AddGuest(ctx, "w1", "John", "Smith", "", "")
	svc.AddGuest(ctx, "w1", "Jane", "Johnson", "", "")
	svc.AddGuest(ctx, "w1", "Maria", "Garcia", "", "")

	got, err := svc.SearchGuests(ctx, "w1", "JOHN")
	if err != nil {
		t.Fatalf("SearchGuests: %v", err)
	}
	if len(got) != 2 {
		t.Errorf("matched %d guests, want 2 (substring, case-insensitive)", len(got))
	}

	all, _ := svc.SearchGuests(ctx, "w1", "  ")
	if len(all) != 3 {
		t.Errorf("blank query returned %d guests, want all", len(all))
	}

	none, _ := svc.SearchGuests(ctx, "w1", "zzz")
	if len(none) != 0 {
		t.Errorf("matched %d guests, want 0", len(none))
	}
}

func TestSendInvitationsAllEligible(t *testing.T) {
	repo := newFakeGuestRepo()
	sender := &fakeSender{}
	svc := NewService(repo, sender)
	ctx := context.Background()

	withEmail, _ := svc.AddGuest(ctx, "w1", "Ann", "", "ann@example.com", "")
	svc.AddGuest(ctx, "w1", "Bob", "", "", "555-0101")
	svc.AddGuest(ctx, "w1", "Cat", "", "", "")

	sent, err := svc.SendInvitations(ctx, "w1", ChannelEmail, nil, func(g Guest) string {
		return "Hi " + g.Name
	})
	if err != nil {
		t.Fatalf("SendInvitations: %v", err)
	}

	if sent != 1 {
		t.Fatalf("sent = %d, only guests with an email are eligible", sent)
	}
	if len(sender.sends) != 1 || sender.sends[0].guestID != withEmail.ID {
		t.Fatalf("sends = %v", sender.sends)
	}
	if sender.sends[0].message != "Hi Ann" {
		t.Errorf("message = %q, must be rendered per guest", sender.sends[0].message)
	}

	stored := repo.guests[withEmail.ID]
	if stored.EmailSentAt == nil {
		t.Error("email marker not stamped")
	}
	if stored.SMSSentAt != nil {
		t.Error("sms marker must stay unset")
	}
}

func TestSendInvitationsTargetsSelectedIDs(t *testing.T) {
	repo := newFakeGuestRepo()
	svc := NewService(repo, &fakeSender{})
	ctx := context.Background()

	first, _ := svc.AddGuest(ctx, "w1", "Ann", "", "", "555-0101")
	second, _ := svc.AddGuest(ctx, "w1", "Bob", "", "", "555-0102")

	sent, err := svc.SendInvitations(ctx, "w1", ChannelSMS, []string{second.ID}, func(Guest) string { return "hi" })
	if err != nil {
		t.Fatalf("SendInvitations: %v", err)
	}
	if sent != 1 {
		t.Fatalf("sent = %d", sent)
	}
	if repo.guests[first.ID].SMSSentAt != nil {
		t.Error("unselected guest was stamped")
	}
	if repo.guests[second.ID].SMSSentAt == nil {
		t.Error("selected guest was not stamped")
	}
}

func TestSendInvitationsResendOverwritesMarker(t *testing.T) {
	repo := newFakeGuestRepo()
	svc := NewService(repo, &fakeSender{})
	ctx := context.Background()

	g, _ := svc.AddGuest(ctx, "w1", "Ann", "", "ann@example.com", "")

	old := time.Now().Add(-time.Hour)
	repo.guests[g.ID].EmailSentAt = &old

	sent, err := svc.SendInvitations(ctx, "w1", ChannelEmail, nil, func(Guest) string { return "hi" })
	if err != nil || sent != 1 {
		t.Fatalf("SendInvitations = %d, %v", sent, err)
	}
	if !repo.guests[g.ID].EmailSentAt.After(old) {
		t.Error("re-send must overwrite the previous timestamp")
	}
}

func TestSendInvitationsRejectsUnknownChannel(t *testing.T) {
	svc := NewService(newFakeGuestRepo(), &fakeSender{})

	if _, err := svc.SendInvitations(context.Background(), "w1", "carrier-pigeon", nil, func(Guest) string { return "" }); !errors.Is(err, ErrInvalidChannel) {
		t.Errorf("err = %v, want ErrInvalidChannel", err)
	}
}

func TestSendInvitationsStopsOnSenderError(t *testing.T) {
	repo := newFakeGuestRepo()
	sender := &fakeSender{err: errors.New("smtp down")}
	svc := NewService(repo, sender)
	ctx := context.Background()

	g, _ := svc.AddGuest(ctx, "w1", "Ann", "", "ann@example.com", "")

	sent, err := svc.SendInvitations(ctx, "w1", ChannelEmail, nil, func(Guest) string { return "hi" })
	if err == nil {
		t.Fatal("want error from sender")
	}
	if sent != 0 {
		t.Errorf("sent = %d", sent)
	}
	if repo.guests[g.ID].EmailSentAt != nil {
		t.Error("failed send must not stamp the marker")
	}
}

func TestMarkLinkClickedIdempotent(t *testing.T) {
	repo := newFakeGuestRepo()
	svc := NewService(repo, &fakeSender{})
	ctx := context.Background()

	g, _ := svc.AddGuest(ctx, "w1", "Ann", "", "", "")

	if err := svc.MarkLinkClicked(ctx, "w1", g.ID); err != nil {
		t.Fatalf("MarkLinkClicked: %v", err)
	}
	if !repo.guests[g.ID].LinkClicked {
		t.Fatal("link click not recorded")
	}
	if err := svc.MarkLinkClicked(ctx, "w1", g.ID); err != nil {
		t.Fatalf("second MarkLinkClicked: %v", err)
	}

	if err := svc.MarkLinkClicked(ctx, "w1", "missing"); !errors.Is(err, ErrGuestNotFound) {
		t.Errorf("missing guest err = %v", err)
	}
}

func TestSubmitAnswersMerges(t *testing.T) {
	repo := newFakeGuestRepo()
	svc := NewService(repo, &fakeSender{})
	ctx := context.Background()

	g, _ := svc.AddGuest(ctx, "w1", "Ann", "", "", "")
	respondedAt := time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)

	updated, err := svc.SubmitAnswers(ctx, "w1", g.ID, map[string]string{
		AnswerKeyAttending: AttendingNo,
		"message":          "So sorry to miss it!",
	}, respondedAt)
	if err != nil {
		t.Fatalf("SubmitAnswers: %v", err)
	}

	if updated.Attending() != AttendingNo {
		t.Errorf("attending = %q", updated.Attending())
	}
	if _, ok := updated.Answers[AnswerKeyPlusOne]; ok {
		t.Error("unanswered questions must stay absent")
	}
	if updated.RespondedAt == nil || !updated.RespondedAt.Equal(respondedAt) {
		t.Errorf("RespondedAt = %v", updated.RespondedAt)
	}
	if DeriveStatus(*updated) != StatusAttendingNo {
		t.Errorf("status = %q", DeriveStatus(*updated))
	}
}

func TestImportGuests(t *testing.T) {
	repo := newFakeGuestRepo()
	svc := NewService(repo, &fakeSender{})

	rows := []map[string]string{
		{"First Name": "John", "Last Name": "Smith"},
		{"First Name": "Jane", "Last Name": "Doe"},
	}
	mapping := ColumnMapping{FirstName: "First Name", LastName: "Last Name"}

	imported, err := svc.ImportGuests(context.Background(), "w1", rows, mapping)
	if err != nil {
		t.Fatalf("ImportGuests: %v", err)
	}
	if len(imported) != 2 {
		t.Fatalf("imported %d guests", len(imported))
	}
	if len(repo.guests) != 2 {
		t.Errorf("stored %d guests", len(repo.guests))
	}
}
