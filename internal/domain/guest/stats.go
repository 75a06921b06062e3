package guest

type Stats struct {
	Total      int `json:"total"`
	Yes        int `json:"yes"`
	No         int `json:"no"`
	Maybe      int `json:"maybe"`
	PlusOnes   int `json:"plusOnes"`
	NotInvited int `json:"notInvited"`
	Responded  int `json:"responded"`
}

// ComputeStats recomputes aggregates from scratch over the roster. PlusOnes
// is the only conjunctive count (accepted and bringing a plus one). The
// NotInvited count deliberately checks delivery markers only, unlike the
// derived status, which lets a form view take precedence.
func ComputeStats(guests []Guest) Stats {
	stats := Stats{Total: len(guests)}
	for _, g := range guests {
		switch g.Attending() {
		case AttendingYes:
			stats.Yes++
		case AttendingNo:
			stats.No++
		case AttendingMaybe:
			stats.Maybe++
		}
		if g.Attending() == AttendingYes && g.Answers[AnswerKeyPlusOne] == "Yes" {
			stats.PlusOnes++
		}
		if g.EmailSentAt == nil && g.SMSSentAt == nil {
			stats.NotInvited++
		}
		if g.Attending() != "" {
			stats.Responded++
		}
	}
	return stats
}
