package guest

// Status is a guest's displayed state, derived from the record on every read
// rather than stored.
type Status string

const (
	StatusAttendingYes   Status = Status(AttendingYes)
	StatusAttendingNo    Status = Status(AttendingNo)
	StatusAttendingMaybe Status = Status(AttendingMaybe)
	StatusViewed         Status = "Viewed Form"
	StatusInvited        Status = "Invited"
	StatusNotInvited     Status = "Not Invited"
)

// DeriveStatus applies the strict precedence: a recorded attendance answer
// wins over a form view, which wins over any delivery marker. A guest who
// answered is never downgraded by later marker changes.
func DeriveStatus(g Guest) Status {
	if answer := g.Attending(); answer != "" {
		return Status(answer)
	}
	if g.LinkClicked {
		return StatusViewed
	}
	if g.EmailSentAt != nil || g.SMSSentAt != nil {
		return StatusInvited
	}
	return StatusNotInvited
}

const (
	unknownStatusColor = "bg-slate-100 text-slate-500"
	unknownStatusEmoji = "❓"
)

var statusColors = map[Status]string{
	StatusAttendingYes:   "bg-emerald-100 text-emerald-700",
	StatusAttendingNo:    "bg-red-100 text-red-700",
	StatusAttendingMaybe: "bg-amber-100 text-amber-700",
	StatusViewed:         "bg-blue-100 text-blue-700",
	StatusInvited:        "bg-cyan-100 text-cyan-700",
	StatusNotInvited:     "bg-gray-100 text-gray-600",
}

var statusEmojis = map[Status]string{
	StatusAttendingYes:   "✅",
	StatusAttendingNo:    "❌",
	StatusAttendingMaybe: "🤔",
	StatusViewed:         "👀",
	StatusInvited:        "📤",
	StatusNotInvited:     "⏳",
}

// StatusColor returns the display color class, with a fallback distinct from
// every known status for unknown values.
func StatusColor(s Status) string {
	if color, ok := statusColors[s]; ok {
		return color
	}
	return unknownStatusColor
}

func StatusEmoji(s Status) string {
	if emoji, ok := statusEmojis[s]; ok {
		return emoji
	}
	return unknownStatusEmoji
}
