package dto

import "github.com/danishayman/Timetable-Webapp-sub002/internal/models"

// TimeSlotPayload carries one selected session from the slot source.
type TimeSlotPayload struct {
	ID          string `json:"id" validate:"required"`
	SubjectID   string `json:"subjectId" validate:"required"`
	SubjectCode string `json:"subjectCode"`
	SubjectName string `json:"subjectName"`
	DayOfWeek   int    `json:"dayOfWeek" validate:"min=0,max=6"`
	StartTime   string `json:"startTime" validate:"required"`
	EndTime     string `json:"endTime" validate:"required"`
	Venue       string `json:"venue"`
	Kind        string `json:"kind" validate:"required,oneof=lecture tutorial"`
}

// GridOverrides adjusts the configured time axis for a single build call.
type GridOverrides struct {
	ShowWeekends *bool  `json:"showWeekends,omitempty"`
	StartTime    string `json:"startTime,omitempty"`
	EndTime      string `json:"endTime,omitempty"`
	StepMinutes  int    `json:"stepMinutes,omitempty" validate:"omitempty,min=5,max=120"`
}

// BuildTimetableRequest asks for clash detection and grid layout over the
// current selection. IgnoredClashIds lists venue clashes the student chose to
// keep; matching records are filtered from the response.
type BuildTimetableRequest struct {
	Slots           []TimeSlotPayload `json:"slots" validate:"dive"`
	Grid            *GridOverrides    `json:"grid,omitempty"`
	IgnoredClashIDs []string          `json:"ignoredClashIds,omitempty"`
}

// TimetableResponse is the full derived view for one selection snapshot.
type TimetableResponse struct {
	Clashes       []models.Clash         `json:"clashes"`
	Placements    []models.GridPlacement `json:"placements"`
	HiddenSlotIDs []string               `json:"hiddenSlotIds,omitempty"`
}

// ResolveClashRequest applies a user's resolution decision to the selection.
type ResolveClashRequest struct {
	Slots        []TimeSlotPayload `json:"slots" validate:"dive"`
	ClashID      string            `json:"clashId" validate:"required"`
	Action       string            `json:"action" validate:"required,oneof=remove ignore"`
	TargetSlotID string            `json:"targetSlotId,omitempty"`
}

// ResolveClashResponse returns the post-resolution selection and clash set so
// the caller can re-render from a single response.
type ResolveClashResponse struct {
	Slots          []models.TimeSlot `json:"slots"`
	Clashes        []models.Clash    `json:"clashes"`
	IgnoredClashID string            `json:"ignoredClashId,omitempty"`
}

// ToModel converts a payload into the domain slot type.
func (p TimeSlotPayload) ToModel() models.TimeSlot {
	return models.TimeSlot{
		ID:          p.ID,
		SubjectID:   p.SubjectID,
		SubjectCode: p.SubjectCode,
		SubjectName: p.SubjectName,
		DayOfWeek:   p.DayOfWeek,
		StartTime:   p.StartTime,
		EndTime:     p.EndTime,
		Venue:       p.Venue,
		Kind:        models.SlotKind(p.Kind),
	}
}
