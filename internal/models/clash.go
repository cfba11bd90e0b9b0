package models

// ClashType classifies what resource two slots are fighting over.
type ClashType string

const (
	ClashTypeTime  ClashType = "time"
	ClashTypeVenue ClashType = "venue"
)

// ClashSeverity ranks how blocking a clash is for the student.
type ClashSeverity string

const (
	ClashSeverityError   ClashSeverity = "error"
	ClashSeverityWarning ClashSeverity = "warning"
)

// Clash is a derived conflict between two selected slots. It is recomputed on
// demand and never persisted; the ID is a deterministic function of the two
// participant slot IDs and the type, so repeated detection runs over the same
// selection yield identical records. Slot1 always carries the lexically
// smaller slot ID.
type Clash struct {
	ID       string        `json:"id"`
	Type     ClashType     `json:"type"`
	Severity ClashSeverity `json:"severity"`
	Slot1    TimeSlot      `json:"slot1"`
	Slot2    TimeSlot      `json:"slot2"`
	Message  string        `json:"message"`
}

// Involves reports whether the given slot ID is one of the two participants.
func (c Clash) Involves(slotID string) bool {
	return c.Slot1.ID == slotID || c.Slot2.ID == slotID
}

// ResolutionAction is a user decision applied to a clash.
type ResolutionAction string

const (
	ResolutionActionRemove ResolutionAction = "remove"
	ResolutionActionIgnore ResolutionAction = "ignore"
)
