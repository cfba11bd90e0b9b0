package models

// SlotKind distinguishes required lectures from tutorial-group sessions.
type SlotKind string

const (
	SlotKindLecture  SlotKind = "lecture"
	SlotKindTutorial SlotKind = "tutorial"
)

// DayOfWeek bounds, zero-based on Sunday.
const (
	DaySunday   = 0
	DaySaturday = 6
)

// TimeSlot is a single scheduled session selected by the student. Identity
// never changes after creation; all derived values (clashes, placements) are
// recomputed from the current selection rather than cached on the slot.
type TimeSlot struct {
	ID          string   `json:"id"`
	SubjectID   string   `json:"subject_id"`
	SubjectCode string   `json:"subject_code"`
	SubjectName string   `json:"subject_name"`
	DayOfWeek   int      `json:"day_of_week"`
	StartTime   string   `json:"start_time"`
	EndTime     string   `json:"end_time"`
	Venue       string   `json:"venue"`
	Kind        SlotKind `json:"kind"`
}

// SameRequirement reports whether two slots are alternative offerings of the
// same subject requirement. Alternatives are mutually exclusive choices and
// are never compared for clashes.
func (t TimeSlot) SameRequirement(other TimeSlot) bool {
	return t.SubjectID == other.SubjectID && t.Kind == other.Kind
}
