package messaging

import (
	"context"

	guestdomain "wedding-rsvp-go/internal/domain/guest"
	"wedding-rsvp-go/pkg/logger"
)

// SimulatedSender logs the rendered invitation instead of delivering it. The
// timestamp stamped on the guest record is the only durable trace of a send.
type SimulatedSender struct {
	log logger.Logger
}

func NewSimulatedSender(log logger.Logger) *SimulatedSender {
	return &SimulatedSender{log: log}
}

func (s *SimulatedSender) Send(_ context.Context, g guestdomain.Guest, channel guestdomain.Channel, message string) error {
	contact := g.Email
	if channel == guestdomain.ChannelSMS {
		contact = g.Phone
	}

	s.log.Info("messaging: simulated send",
		"channel", string(channel),
		"guest", g.Name,
		"contact", contact,
		"chars", len(message),
	)
	return nil
}
