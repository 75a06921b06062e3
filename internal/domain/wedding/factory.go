package wedding

import (
	"crypto/rand"
	"math/big"
	"strconv"
	"strings"
	"time"
)

const (
	codeRandomLength = 4
	codeIDFragment   = 6
	codeAlphabet     = "abcdefghijklmnopqrstuvwxyz0123456789"

	defaultDaysAhead = 90
	defaultTime      = "16:00"
)

var themePalette = []ThemeColor{
	{Name: "Rose", Primary: "#e11d48", Light: "#ffe4e6"},
	{Name: "Purple", Primary: "#7c3aed", Light: "#ede9fe"},
	{Name: "Blue", Primary: "#2563eb", Light: "#dbeafe"},
	{Name: "Teal", Primary: "#0d9488", Light: "#ccfbf1"},
	{Name: "Green", Primary: "#16a34a", Light: "#dcfce7"},
	{Name: "Orange", Primary: "#ea580c", Light: "#ffedd5"},
	{Name: "Pink", Primary: "#db2777", Light: "#fce7f3"},
	{Name: "Indigo", Primary: "#4f46e5", Light: "#e0e7ff"},
}

func defaultQuestions(weddingID string) []Question {
	return []Question{
		{ID: QuestionAttending, WeddingID: weddingID, Position: 0, Type: QuestionTypeRadio, Label: "Will you be attending?", Required: true, Options: []string{"Joyfully Accept", "Regretfully Decline", "Not Sure Yet"}, Editable: false},
		{ID: "plusOne", WeddingID: weddingID, Position: 1, Type: QuestionTypeRadio, Label: "Will you bring a plus one?", Options: []string{"Yes", "No"}, Editable: true},
		{ID: "plusOneName", WeddingID: weddingID, Position: 2, Type: QuestionTypeText, Label: "Plus One's Name", Editable: true},
		{ID: "dietaryRestrictions", WeddingID: weddingID, Position: 3, Type: QuestionTypeText, Label: "Dietary Restrictions / Allergies", Editable: true},
		{ID: "message", WeddingID: weddingID, Position: 4, Type: QuestionTypeTextarea, Label: "Message for the Couple", Editable: true},
	}
}

func defaultCustomization() Customization {
	return Customization{
		PrimaryColor:    "#e11d48",
		SecondaryColor:  "#be185d",
		BGStart:         "#fff1f2",
		BGEnd:           "#fce7f3",
		FontStyle:       "serif",
		HeaderText:      "You Are Cordially Invited To The Wedding Of",
		FooterText:      "We can't wait to celebrate with you!",
		RSVPTitle:       "Please RSVP",
		RSVPSubtitle:    "Let us know if you can make it",
		ThankYouTitle:   "Thank You!",
		ThankYouMessage: "Your RSVP has been submitted. We look forward to celebrating with you!",
	}
}

func defaultEmailTemplate() EmailTemplate {
	return EmailTemplate{
		Subject: "You're Invited! {{couple}}'s Wedding",
		Body: "Dear {{name}},\n\n" +
			"We are delighted to invite you to celebrate our wedding!\n\n" +
			"Date: {{date}}\nTime: {{time}}\nVenue: {{venue}}\n\n" +
			"Please RSVP using the link below:\n{{rsvpLink}}\n\n" +
			"We can't wait to celebrate with you!\n\nWith love,\n{{couple}}",
	}
}

func defaultSMSTemplate() SMSTemplate {
	return SMSTemplate{
		Body: "Hi {{name}}! You're invited to {{couple}}'s wedding on {{date}} at {{venue}}. Please RSVP here: {{rsvpLink}}",
	}
}

// newWedding builds a wedding with full defaults. The rsvp code is derived
// from the tail of the time-based id plus random alphanumerics; uniqueness
// against the registry is enforced by the service.
func newWedding(baseURL string, now time.Time) (*Wedding, error) {
	id := strconv.FormatInt(now.UnixMilli(), 10)

	code, err := generateCode(id)
	if err != nil {
		return nil, err
	}

	theme, err := randomTheme()
	if err != nil {
		return nil, err
	}

	return &Wedding{
		ID:            id,
		RSVPCode:      code,
		RSVPLink:      baseURL + "/rsvp/" + code,
		Date:          now.AddDate(0, 0, defaultDaysAhead).Format(dateLayout),
		Time:          defaultTime,
		ThemeColor:    theme,
		Customization: defaultCustomization(),
		EmailTemplate: defaultEmailTemplate(),
		SMSTemplate:   defaultSMSTemplate(),
		Questions:     defaultQuestions(id),
		CreatedAt:     now,
	}, nil
}

func generateCode(id string) (string, error) {
	fragment := id
	if len(fragment) > codeIDFragment {
		fragment = fragment[len(fragment)-codeIDFragment:]
	}

	suffix, err := randomString(codeRandomLength)
	if err != nil {
		return "", err
	}

	return strings.ToUpper(fragment + suffix), nil
}

func randomString(length int) (string, error) {
	max := big.NewInt(int64(len(codeAlphabet)))

	var builder strings.Builder
	builder.Grow(length)

	for i := 0; i < length; i++ {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		builder.WriteByte(codeAlphabet[n.Int64()])
	}

	return builder.String(), nil
}

func randomTheme() (ThemeColor, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(int64(len(themePalette))))
	if err != nil {
		return ThemeColor{}, err
	}
	return themePalette[n.Int64()], nil
}
