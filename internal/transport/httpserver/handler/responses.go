package handler

import (
	"time"

	guestdomain "wedding-rsvp-go/internal/domain/guest"
	rsvpdomain "wedding-rsvp-go/internal/domain/rsvp"
	weddingdomain "wedding-rsvp-go/internal/domain/wedding"
)

type weddingResponse struct {
	ID             string                      `json:"id"`
	RSVPCode       string                      `json:"rsvpCode"`
	RSVPLink       string                      `json:"rsvpLink"`
	BrideName      string                      `json:"brideName"`
	GroomName      string                      `json:"groomName"`
	CoupleName     string                      `json:"coupleName"`
	Date           string                      `json:"date"`
	Time           string                      `json:"time"`
	VenueName      string                      `json:"venueName"`
	VenueAddress   string                      `json:"venueAddress"`
	ThemeColor     weddingdomain.ThemeColor    `json:"themeColor"`
	Customization  weddingdomain.Customization `json:"customization"`
	EmailTemplate  weddingdomain.EmailTemplate `json:"emailTemplate"`
	SMSTemplate    weddingdomain.SMSTemplate   `json:"smsTemplate"`
	Questions      []questionResponse          `json:"questions"`
	ScheduleStatus string                      `json:"scheduleStatus"`
	CreatedAt      time.Time                   `json:"createdAt"`
}

type questionResponse struct {
	ID       string   `json:"id"`
	Type     string   `json:"type"`
	Label    string   `json:"label"`
	Required bool     `json:"required"`
	Options  []string `json:"options,omitempty"`
	Editable bool     `json:"editable"`
}

type guestResponse struct {
	ID          string            `json:"id"`
	FirstName   string            `json:"firstName"`
	LastName    string            `json:"lastName"`
	Name        string            `json:"name"`
	Email       string            `json:"email,omitempty"`
	Phone       string            `json:"phone,omitempty"`
	Answers     map[string]string `json:"answers,omitempty"`
	EmailSentAt *time.Time        `json:"emailSentAt,omitempty"`
	SMSSentAt   *time.Time        `json:"smsSentAt,omitempty"`
	LinkClicked bool              `json:"linkClicked"`
	RespondedAt *time.Time        `json:"respondedAt,omitempty"`
	Status      string            `json:"status"`
	StatusColor string            `json:"statusColor"`
	StatusEmoji string            `json:"statusEmoji"`
	CreatedAt   time.Time         `json:"createdAt"`
}

type sessionResponse struct {
	ID      string            `json:"id"`
	State   string            `json:"state"`
	GuestID string            `json:"guestId,omitempty"`
	Answers map[string]string `json:"answers,omitempty"`
}

// rsvpWeddingResponse is the guest-facing invitation view: customization and
// questions, without management fields like templates or the roster.
type rsvpWeddingResponse struct {
	CoupleName    string                      `json:"coupleName"`
	Date          string                      `json:"date"`
	DateDisplay   string                      `json:"dateDisplay"`
	Time          string                      `json:"time"`
	VenueName     string                      `json:"venueName"`
	Customization weddingdomain.Customization `json:"customization"`
	Questions     []questionResponse          `json:"questions"`
}

func toWeddingResponse(w *weddingdomain.Wedding) weddingResponse {
	return weddingResponse{
		ID:             w.ID,
		RSVPCode:       w.RSVPCode,
		RSVPLink:       w.RSVPLink,
		BrideName:      w.BrideName,
		GroomName:      w.GroomName,
		CoupleName:     w.CoupleName,
		Date:           w.Date,
		Time:           w.Time,
		VenueName:      w.VenueName,
		VenueAddress:   w.VenueAddress,
		ThemeColor:     w.ThemeColor,
		Customization:  w.Customization,
		EmailTemplate:  w.EmailTemplate,
		SMSTemplate:    w.SMSTemplate,
		Questions:      toQuestionResponses(w.Questions),
		ScheduleStatus: weddingdomain.ScheduleStatus(w, time.Now()),
		CreatedAt:      w.CreatedAt,
	}
}

func toQuestionResponses(questions []weddingdomain.Question) []questionResponse {
	result := make([]questionResponse, 0, len(questions))
	for _, q := range questions {
		result = append(result, toQuestionResponse(&q))
	}
	return result
}

func toQuestionResponse(q *weddingdomain.Question) questionResponse {
	return questionResponse{
		ID:       q.ID,
		Type:     q.Type,
		Label:    q.Label,
		Required: q.Required,
		Options:  q.Options,
		Editable: q.Editable,
	}
}

func toGuestResponse(g *guestdomain.Guest) guestResponse {
	status := guestdomain.DeriveStatus(*g)
	return guestResponse{
		ID:          g.ID,
		FirstName:   g.FirstName,
		LastName:    g.LastName,
		Name:        g.Name,
		Email:       g.Email,
		Phone:       g.Phone,
		Answers:     g.Answers,
		EmailSentAt: g.EmailSentAt,
		SMSSentAt:   g.SMSSentAt,
		LinkClicked: g.LinkClicked,
		RespondedAt: g.RespondedAt,
		Status:      string(status),
		StatusColor: guestdomain.StatusColor(status),
		StatusEmoji: guestdomain.StatusEmoji(status),
		CreatedAt:   g.CreatedAt,
	}
}

func toGuestResponses(guests []guestdomain.Guest) []guestResponse {
	result := make([]guestResponse, 0, len(guests))
	for i := range guests {
		result = append(result, toGuestResponse(&guests[i]))
	}
	return result
}

func toSessionResponse(s *rsvpdomain.Session) sessionResponse {
	return sessionResponse{
		ID:      s.ID,
		State:   string(s.State),
		GuestID: s.GuestID,
		Answers: s.Answers,
	}
}
