package handler

import (
	guestdomain "wedding-rsvp-go/internal/domain/guest"
	rsvpdomain "wedding-rsvp-go/internal/domain/rsvp"
	weddingdomain "wedding-rsvp-go/internal/domain/wedding"
	"wedding-rsvp-go/pkg/logger"
)

type Handlers struct {
	Weddings *weddingdomain.Service
	Guests   *guestdomain.Service
	RSVP     *rsvpdomain.Service
	log      logger.Logger
}

func New(weddings *weddingdomain.Service, guests *guestdomain.Service, rsvp *rsvpdomain.Service, log logger.Logger) *Handlers {
	return &Handlers{
		Weddings: weddings,
		Guests:   guests,
		RSVP:     rsvp,
		log:      log,
	}
}
