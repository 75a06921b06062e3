package guest

import (
	"testing"
	"time"
)

func TestComputeStats(t *testing.T) {
	sent := time.Now()

	guests := []Guest{
		{Answers: map[string]string{AnswerKeyAttending: AttendingYes, AnswerKeyPlusOne: "Yes"}, EmailSentAt: &sent},
		{Answers: map[string]string{AnswerKeyAttending: AttendingYes, AnswerKeyPlusOne: "No"}, EmailSentAt: &sent},
		{Answers: map[string]string{AnswerKeyAttending: AttendingNo}, SMSSentAt: &sent},
		{Answers: map[string]string{AnswerKeyAttending: AttendingMaybe}},
		{EmailSentAt: &sent},
		{LinkClicked: true},
		{},
	}

	stats := ComputeStats(guests)

	if stats.Total != 7 {
		t.Errorf("Total = %d", stats.Total)
	}
	if stats.Yes != 2 || stats.No != 1 || stats.Maybe != 1 {
		t.Errorf("Yes/No/Maybe = %d/%d/%d", stats.Yes, stats.No, stats.Maybe)
	}
	if stats.Responded != 4 {
		t.Errorf("Responded = %d, want 4", stats.Responded)
	}
	if stats.PlusOnes != 1 {
		t.Errorf("PlusOnes = %d, only accepted guests bringing one count", stats.PlusOnes)
	}
	// The maybe guest, the viewer, and the untouched guest have no delivery
	// marker; the viewer still counts here even though their status is not
	// "Not Invited".
	if stats.NotInvited != 3 {
		t.Errorf("NotInvited = %d, want 3", stats.NotInvited)
	}
}

func TestComputeStatsDeclinedPlusOneDoesNotCount(t *testing.T) {
	guests := []Guest{
		{Answers: map[string]string{AnswerKeyAttending: AttendingNo, AnswerKeyPlusOne: "Yes"}},
		{Answers: map[string]string{AnswerKeyPlusOne: "Yes"}},
	}

	if stats := ComputeStats(guests); stats.PlusOnes != 0 {
		t.Errorf("PlusOnes = %d, want 0", stats.PlusOnes)
	}
}

func TestComputeStatsEmptyRoster(t *testing.T) {
	if stats := ComputeStats(nil); stats != (Stats{}) {
		t.Errorf("stats over empty roster = %+v", stats)
	}
}

func TestComputeStatsReflectsMutation(t *testing.T) {
	guests := []Guest{{Answers: map[string]string{AnswerKeyAttending: AttendingMaybe}}}

	before := ComputeStats(guests)
	if before.Maybe != 1 || before.Yes != 0 {
		t.Fatalf("before = %+v", before)
	}

	guests[0].Answers[AnswerKeyAttending] = AttendingYes
	guests[0].Answers[AnswerKeyPlusOne] = "Yes"

	after := ComputeStats(guests)
	if after.Maybe != 0 || after.Yes != 1 || after.PlusOnes != 1 {
		t.Errorf("after = %+v, aggregates must be recomputed from scratch", after)
	}
}
