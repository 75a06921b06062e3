package guest

import (
	"testing"
	"time"
)

func TestDeriveStatusPrecedence(t *testing.T) {
	sent := time.Now()

	cases := []struct {
		name  string
		guest Guest
		want  Status
	}{
		{"untouched", Guest{}, StatusNotInvited},
		{"email sent", Guest{EmailSentAt: &sent}, StatusInvited},
		{"sms sent", Guest{SMSSentAt: &sent}, StatusInvited},
		{"viewed beats invited", Guest{EmailSentAt: &sent, LinkClicked: true}, StatusViewed},
		{"viewed without send", Guest{LinkClicked: true}, StatusViewed},
		{
			"answer beats everything",
			Guest{EmailSentAt: &sent, LinkClicked: true, Answers: map[string]string{AnswerKeyAttending: AttendingYes}},
			StatusAttendingYes,
		},
		{
			"decline is an answer too",
			Guest{Answers: map[string]string{AnswerKeyAttending: AttendingNo}},
			StatusAttendingNo,
		},
		{
			"maybe is an answer too",
			Guest{LinkClicked: true, Answers: map[string]string{AnswerKeyAttending: AttendingMaybe}},
			StatusAttendingMaybe,
		},
		{
			"other answers do not count",
			Guest{Answers: map[string]string{AnswerKeyPlusOne: "Yes"}},
			StatusNotInvited,
		},
	}
	for _, tc := range cases {
		if got := DeriveStatus(tc.guest); got != tc.want {
			t.Errorf("%s: DeriveStatus = %q, want %q", tc.name, got, tc.want)
		}
	}
}

func TestDeriveStatusNeverDowngrades(t *testing.T) {
	sent := time.Now()
	g := Guest{Answers: map[string]string{AnswerKeyAttending: AttendingYes}}

	before := DeriveStatus(g)
	g.EmailSentAt = &sent
	g.SMSSentAt = &sent
	g.LinkClicked = true

	if after := DeriveStatus(g); after != before {
		t.Errorf("marker changes downgraded status %q -> %q", before, after)
	}
}

func TestStatusDisplayLookups(t *testing.T) {
	known := []Status{StatusAttendingYes, StatusAttendingNo, StatusAttendingMaybe, StatusViewed, StatusInvited, StatusNotInvited}

	seenColors := make(map[string]Status, len(known))
	for _, s := range known {
		color := StatusColor(s)
		if color == unknownStatusColor {
			t.Errorf("status %q resolves to the unknown color", s)
		}
		if prev, dup := seenColors[color]; dup {
			t.Errorf("statuses %q and %q share color %q", prev, s, color)
		}
		seenColors[color] = s

		if StatusEmoji(s) == unknownStatusEmoji {
			t.Errorf("status %q resolves to the unknown emoji", s)
		}
	}

	if StatusColor("Ghosted") != unknownStatusColor {
		t.Error("unknown status must get the fallback color")
	}
	if StatusEmoji("Ghosted") != unknownStatusEmoji {
		t.Error("unknown status must get the fallback emoji")
	}
}
