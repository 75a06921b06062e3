package wedding

import (
	"strings"
	"time"
)

const (
	dateLayout     = "2006-01-02"
	longDateLayout = "Monday, January 2, 2006"
)

// Recipient carries the guest fields the renderer personalizes with.
type Recipient struct {
	Name      string
	FirstName string
}

// Render substitutes the six recognized placeholders in a single pass.
// Substituted values are never re-scanned, so placeholder syntax inside a
// field (or in the rendered output) stays literal. Unrecognized placeholders
// pass through unchanged.
func Render(template string, w *Wedding, rcpt Recipient) string {
	if w == nil {
		return template
	}

	replacer := strings.NewReplacer(
		"{{name}}", fallback(rcpt.Name, fallback(rcpt.FirstName, "[Guest Name]")),
		"{{couple}}", fallback(w.CoupleName, "[Couple]"),
		"{{date}}", FormatLongDate(w.Date),
		"{{time}}", fallback(w.Time, "[Time]"),
		"{{venue}}", fallback(w.VenueName, "[Venue]"),
		"{{rsvpLink}}", fallback(w.RSVPLink, "[RSVP Link]"),
	)
	return replacer.Replace(template)
}

// FormatLongDate renders a stored YYYY-MM-DD date in the long display form,
// with the bracketed fallback for empty or unparseable values.
func FormatLongDate(date string) string {
	parsed, err := time.Parse(dateLayout, date)
	if err != nil {
		return "[Date]"
	}
	return parsed.Format(longDateLayout)
}

func fallback(value, alt string) string {
	if value == "" {
		return alt
	}
	return value
}
