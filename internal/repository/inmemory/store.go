package inmemory

import (
	"sync"

	guestdomain "wedding-rsvp-go/internal/domain/guest"
	weddingdomain "wedding-rsvp-go/internal/domain/wedding"
)

// Store is the default, process-local backing for the wedding registry and
// guest rosters. One store holds both so deleting a wedding can drop its
// guests atomically. Collections keep insertion order: weddings newest first,
// guests oldest first, matching how the manager displays them.
type Store struct {
	mu           sync.RWMutex
	weddings     map[string]*weddingdomain.Wedding
	weddingOrder []string
	guests       map[string]*guestdomain.Guest
	guestOrder   map[string][]string
}

func NewStore() *Store {
	return &Store{
		weddings:   make(map[string]*weddingdomain.Wedding),
		guests:     make(map[string]*guestdomain.Guest),
		guestOrder: make(map[string][]string),
	}
}

func cloneWedding(w *weddingdomain.Wedding) *weddingdomain.Wedding {
	clone := *w
	clone.Questions = cloneQuestions(w.Questions)
	return &clone
}

func cloneQuestions(questions []weddingdomain.Question) []weddingdomain.Question {
	if questions == nil {
		return nil
	}
	cloned := make([]weddingdomain.Question, len(questions))
	copy(cloned, questions)
	for i := range cloned {
		if cloned[i].Options != nil {
			options := make([]string, len(cloned[i].Options))
			copy(options, cloned[i].Options)
			cloned[i].Options = options
		}
	}
	return cloned
}

func cloneGuest(g *guestdomain.Guest) *guestdomain.Guest {
	clone := *g
	if g.Answers != nil {
		clone.Answers = make(map[string]string, len(g.Answers))
		for key, value := range g.Answers {
			clone.Answers[key] = value
		}
	}
	return &clone
}

func removeID(ids []string, id string) []string {
	for i, candidate := range ids {
		if candidate == id {
			return append(ids[:i], ids[i+1:]...)
		}
	}
	return ids
}
