package inmemory

import (
	"context"

	weddingdomain "wedding-rsvp-go/internal/domain/wedding"
)

func (s *Store) CreateWedding(_ context.Context, w *weddingdomain.Wedding) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.weddings[w.ID] = cloneWedding(w)
	s.weddingOrder = append([]string{w.ID}, s.weddingOrder...)
	return nil
}

func (s *Store) ListWeddings(_ context.Context) ([]weddingdomain.Wedding, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	weddings := make([]weddingdomain.Wedding, 0, len(s.weddingOrder))
	for _, id := range s.weddingOrder {
		if w, ok := s.weddings[id]; ok {
			weddings = append(weddings, *cloneWedding(w))
		}
	}
	return weddings, nil
}

func (s *Store) GetWedding(_ context.Context, id string) (*weddingdomain.Wedding, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	w, ok := s.weddings[id]
	if !ok {
		return nil, weddingdomain.ErrWeddingNotFound
	}
	return cloneWedding(w), nil
}

func (s *Store) GetWeddingByCode(_ context.Context, code string) (*weddingdomain.Wedding, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, w := range s.weddings {
		if w.RSVPCode == code {
			return cloneWedding(w), nil
		}
	}
	return nil, weddingdomain.ErrCodeNotFound
}

func (s *Store) UpdateWedding(_ context.Context, w *weddingdomain.Wedding) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored, ok := s.weddings[w.ID]
	if !ok {
		return weddingdomain.ErrWeddingNotFound
	}

	updated := cloneWedding(w)
	updated.Questions = stored.Questions
	s.weddings[w.ID] = updated
	return nil
}

func (s *Store) ReplaceQuestions(_ context.Context, weddingID string, questions []weddingdomain.Question) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	w, ok := s.weddings[weddingID]
	if !ok {
		return weddingdomain.ErrWeddingNotFound
	}
	w.Questions = cloneQuestions(questions)
	return nil
}

func (s *Store) DeleteWedding(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.weddings[id]; !ok {
		return weddingdomain.ErrWeddingNotFound
	}

	delete(s.weddings, id)
	s.weddingOrder = removeID(s.weddingOrder, id)

	for _, guestID := range s.guestOrder[id] {
		delete(s.guests, guestID)
	}
	delete(s.guestOrder, id)
	return nil
}

func (s *Store) IsCodeTaken(_ context.Context, code string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, w := range s.weddings {
		if w.RSVPCode == code {
			return true, nil
		}
	}
	return false, nil
}
