package wedding

import (
	"strings"
	"testing"
	"time"
)

func TestNewWeddingDefaults(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	w, err := newWedding("https://yourdomain.com", now)
	if err != nil {
		t.Fatalf("newWedding: %v", err)
	}

	if w.Date != "2026-06-08" {
		t.Errorf("default date = %q, want 90 days out (2026-06-08)", w.Date)
	}
	if w.Time != "16:00" {
		t.Errorf("default time = %q", w.Time)
	}
	if w.CoupleName != "" || w.BrideName != "" || w.GroomName != "" {
		t.Errorf("new wedding must start without names, got %q/%q/%q", w.BrideName, w.GroomName, w.CoupleName)
	}
	if w.RSVPLink != "https://yourdomain.com/rsvp/"+w.RSVPCode {
		t.Errorf("rsvp link %q does not embed code %q", w.RSVPLink, w.RSVPCode)
	}
	if w.Customization.HeaderText == "" || w.EmailTemplate.Body == "" || w.SMSTemplate.Body == "" {
		t.Error("customization and templates must be seeded")
	}

	found := false
	for _, theme := range themePalette {
		if theme == w.ThemeColor {
			found = true
		}
	}
	if !found {
		t.Errorf("theme %+v not from the palette", w.ThemeColor)
	}
}

func TestNewWeddingCodeShape(t *testing.T) {
	w, err := newWedding("https://yourdomain.com", time.Now())
	if err != nil {
		t.Fatalf("newWedding: %v", err)
	}

	if len(w.RSVPCode) != codeIDFragment+codeRandomLength {
		t.Fatalf("code %q has length %d, want %d", w.RSVPCode, len(w.RSVPCode), codeIDFragment+codeRandomLength)
	}
	if w.RSVPCode != strings.ToUpper(w.RSVPCode) {
		t.Errorf("code %q must be uppercase", w.RSVPCode)
	}
	for _, r := range w.RSVPCode {
		if !strings.ContainsRune(strings.ToUpper(codeAlphabet), r) {
			t.Errorf("code %q contains unexpected rune %q", w.RSVPCode, r)
		}
	}
}

func TestDefaultQuestions(t *testing.T) {
	questions := defaultQuestions("w1")

	if len(questions) != 5 {
		t.Fatalf("got %d default questions, want 5", len(questions))
	}

	attending := questions[0]
	if attending.ID != QuestionAttending {
		t.Fatalf("first question id = %q, want %q", attending.ID, QuestionAttending)
	}
	if attending.Editable {
		t.Error("attendance question must not be editable")
	}
	if !attending.Required {
		t.Error("attendance question must be required")
	}
	wantOptions := []string{"Joyfully Accept", "Regretfully Decline", "Not Sure Yet"}
	if len(attending.Options) != len(wantOptions) {
		t.Fatalf("attendance options = %v", attending.Options)
	}
	for i, option := range wantOptions {
		if attending.Options[i] != option {
			t.Errorf("attendance option[%d] = %q, want %q", i, attending.Options[i], option)
		}
	}

	for i, q := range questions {
		if q.Position != i {
			t.Errorf("question %q position = %d, want %d", q.ID, q.Position, i)
		}
		if i > 0 && !q.Editable {
			t.Errorf("question %q must be editable", q.ID)
		}
	}
}

func TestScheduleStatus(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	cases := []struct {
		date string
		want string
	}{
		{"2026-03-12", ScheduleThisWeek},
		{"2026-03-30", ScheduleThisMonth},
		{"2026-08-01", ScheduleUpcoming},
		{"2026-01-01", ScheduleCompleted},
		{"not-a-date", ScheduleUpcoming},
	}
	for _, tc := range cases {
		if got := ScheduleStatus(&Wedding{Date: tc.date}, now); got != tc.want {
			t.Errorf("ScheduleStatus(%q) = %q, want %q", tc.date, got, tc.want)
		}
	}
}

func TestCombineCoupleName(t *testing.T) {
	if got := combineCoupleName("Sarah", "David"); got != "Sarah & David" {
		t.Errorf("combineCoupleName = %q", got)
	}
	if got := combineCoupleName("Sarah", ""); got != "Sarah" {
		t.Errorf("combineCoupleName bride only = %q", got)
	}
	if got := combineCoupleName("", "David"); got != "David" {
		t.Errorf("combineCoupleName groom only = %q", got)
	}
	if got := combineCoupleName("", ""); got != "" {
		t.Errorf("combineCoupleName empty = %q", got)
	}
}
