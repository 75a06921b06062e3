package inmemory

import (
	"context"

	guestdomain "wedding-rsvp-go/internal/domain/guest"
	weddingdomain "wedding-rsvp-go/internal/domain/wedding"
)

func (s *Store) CreateGuest(_ context.Context, g *guestdomain.Guest) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.createGuestLocked(g)
}

func (s *Store) CreateGuests(_ context.Context, guests []*guestdomain.Guest) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, g := range guests {
		if err := s.createGuestLocked(g); err != nil {
			return err
		}
	}
	return nil
}

func (s *Store) createGuestLocked(g *guestdomain.Guest) error {
	if _, ok := s.weddings[g.WeddingID]; !ok {
		return weddingdomain.ErrWeddingNotFound
	}
	s.guests[g.ID] = cloneGuest(g)
	s.guestOrder[g.WeddingID] = append(s.guestOrder[g.WeddingID], g.ID)
	return nil
}

func (s *Store) ListGuests(_ context.Context, weddingID string) ([]guestdomain.Guest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := s.guestOrder[weddingID]
	guests := make([]guestdomain.Guest, 0, len(ids))
	for _, id := range ids {
		if g, ok := s.guests[id]; ok {
			guests = append(guests, *cloneGuest(g))
		}
	}
	return guests, nil
}

func (s *Store) GetGuest(_ context.Context, weddingID, id string) (*guestdomain.Guest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	g, ok := s.guests[id]
	if !ok || g.WeddingID != weddingID {
		return nil, guestdomain.ErrGuestNotFound
	}
	return cloneGuest(g), nil
}

func (s *Store) UpdateGuest(_ context.Context, g *guestdomain.Guest) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored, ok := s.guests[g.ID]
	if !ok || stored.WeddingID != g.WeddingID {
		return guestdomain.ErrGuestNotFound
	}
	s.guests[g.ID] = cloneGuest(g)
	return nil
}

func (s *Store) DeleteGuest(_ context.Context, weddingID, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	g, ok := s.guests[id]
	if !ok || g.WeddingID != weddingID {
		return guestdomain.ErrGuestNotFound
	}
	delete(s.guests, id)
	s.guestOrder[weddingID] = removeID(s.guestOrder[weddingID], id)
	return nil
}
