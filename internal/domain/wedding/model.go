package wedding

import "time"

const (
	QuestionTypeText     = "text"
	QuestionTypeTextarea = "textarea"
	QuestionTypeSelect   = "select"
	QuestionTypeRadio    = "radio"
)

// QuestionAttending is the id of the mandatory attendance question every
// wedding is seeded with.
const QuestionAttending = "attending"

const (
	ScheduleUpcoming  = "Upcoming"
	ScheduleThisMonth = "This Month"
	ScheduleThisWeek  = "This Week"
	ScheduleCompleted = "Completed"
)

type Wedding struct {
	ID            string        `gorm:"primaryKey"`
	RSVPCode      string        `gorm:"size:16;not null;uniqueIndex"`
	RSVPLink      string        `gorm:"not null"`
	BrideName     string        ``
	GroomName     string        ``
	CoupleName    string        ``
	Date          string        `gorm:"size:10"`
	Time          string        `gorm:"size:8"`
	VenueName     string        ``
	VenueAddress  string        ``
	ThemeColor    ThemeColor    `gorm:"serializer:json"`
	Customization Customization `gorm:"serializer:json"`
	EmailTemplate EmailTemplate `gorm:"serializer:json"`
	SMSTemplate   SMSTemplate   `gorm:"serializer:json"`
	Questions     []Question    `gorm:"foreignKey:WeddingID;references:ID;constraint:OnDelete:CASCADE"`
	CreatedAt     time.Time     `gorm:"autoCreateTime"`
}

type Question struct {
	ID        string   `gorm:"primaryKey"`
	WeddingID string   `gorm:"primaryKey"`
	Position  int      `gorm:"not null"`
	Type      string   `gorm:"size:16;not null"`
	Label     string   `gorm:"not null"`
	Required  bool     ``
	Options   []string `gorm:"serializer:json"`
	Editable  bool     ``
}

type ThemeColor struct {
	Name    string `json:"name"`
	Primary string `json:"primary"`
	Light   string `json:"light"`
}

type Customization struct {
	PrimaryColor    string `json:"primaryColor"`
	SecondaryColor  string `json:"secondaryColor"`
	BGStart         string `json:"bgStart"`
	BGEnd           string `json:"bgEnd"`
	BGPhoto         string `json:"bgPhoto"`
	FontStyle       string `json:"fontStyle"`
	HeaderText      string `json:"headerText"`
	FooterText      string `json:"footerText"`
	RSVPTitle       string `json:"rsvpTitle"`
	RSVPSubtitle    string `json:"rsvpSubtitle"`
	ThankYouTitle   string `json:"thankYouTitle"`
	ThankYouMessage string `json:"thankYouMessage"`
}

type EmailTemplate struct {
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

type SMSTemplate struct {
	Body string `json:"body"`
}

// HasOptions reports whether the question type carries an options list.
func HasOptions(questionType string) bool {
	return questionType == QuestionTypeSelect || questionType == QuestionTypeRadio
}

// ScheduleStatus buckets a wedding by how far out its date is. Weddings with
// an unparseable date count as upcoming.
func ScheduleStatus(w *Wedding, now time.Time) string {
	date, err := time.Parse(dateLayout, w.Date)
	if err != nil {
		return ScheduleUpcoming
	}

	days := int(date.Sub(now).Hours() / 24)
	if date.Before(now) {
		return ScheduleCompleted
	}
	switch {
	case days <= 7:
		return ScheduleThisWeek
	case days <= 30:
		return ScheduleThisMonth
	default:
		return ScheduleUpcoming
	}
}

// combineCoupleName derives the display name from the two partner names.
func combineCoupleName(bride, groom string) string {
	switch {
	case bride != "" && groom != "":
		return bride + " & " + groom
	case bride != "":
		return bride
	default:
		return groom
	}
}
