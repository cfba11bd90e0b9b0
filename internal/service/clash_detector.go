package service

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/danishayman/Timetable-Webapp-sub002/internal/models"
	appErrors "github.com/danishayman/Timetable-Webapp-sub002/pkg/errors"
)

// clashNamespace seeds name-based clash IDs. Fixed forever: changing it would
// break the determinism contract callers rely on for ignored-clash sets.
var clashNamespace = uuid.MustParse("7f1a6c3e-94d2-4a07-9c51-2b8f0e5d6a34")

type slotInterval struct {
	start int
	end   int
}

// clashID derives a stable identifier from the unordered participant pair and
// the clash type. Both orderings of the same pair yield the same ID.
func clashID(a, b models.TimeSlot, kind models.ClashType) string {
	first, second := a.ID, b.ID
	if second < first {
		first, second = second, first
	}
	name := first + "|" + second + "|" + string(kind)
	return uuid.NewSHA1(clashNamespace, []byte(name)).String()
}

// detectClashes scans every unordered pair of distinct slots and reports time
// and venue conflicts. Pairs are visited in lexical slot-ID order so IDs,
// orientation, and message wording are reproducible across runs. A malformed
// time string aborts the whole batch: it signals upstream data corruption,
// not a per-pair condition.
func detectClashes(selection models.Selection, venueTolerance int) ([]models.Clash, error) {
	slots := selection.SortedSlots()

	intervals := make(map[string]slotInterval, len(slots))
	for _, slot := range slots {
		start, err := toMinutes(slot.StartTime)
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInvalidTimeFormat.Code, appErrors.ErrInvalidTimeFormat.Status, fmt.Sprintf("slot %s has a malformed start time", slot.ID))
		}
		end, err := toMinutes(slot.EndTime)
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInvalidTimeFormat.Code, appErrors.ErrInvalidTimeFormat.Status, fmt.Sprintf("slot %s has a malformed end time", slot.ID))
		}
		if end <= start {
			return nil, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("slot %s must end after it starts (%s-%s)", slot.ID, slot.StartTime, slot.EndTime))
		}
		intervals[slot.ID] = slotInterval{start: start, end: end}
	}

	clashes := make([]models.Clash, 0)
	for i := 0; i < len(slots); i++ {
		for j := i + 1; j < len(slots); j++ {
			a, b := slots[i], slots[j]
			if a.SameRequirement(b) {
				// Alternative offerings of one requirement are mutually
				// exclusive choices, never conflicts.
				continue
			}
			if a.DayOfWeek != b.DayOfWeek {
				continue
			}
			at, bt := intervals[a.ID], intervals[b.ID]
			sharedVenue := a.Venue != "" && a.Venue == b.Venue

			if intervalsOverlap(at.start, at.end, bt.start, bt.end) {
				clashes = append(clashes, newTimeClash(a, b, at, bt, sharedVenue))
				continue
			}
			if sharedVenue && overlapsWithin(at.start, at.end, bt.start, bt.end, venueTolerance) {
				clashes = append(clashes, newVenueClash(a, b, at, bt))
			}
		}
	}
	return clashes, nil
}

// newTimeClash builds a blocking conflict. When the pair also shares a venue
// the detail is folded into the message: a pair yields at most one record per
// clash type, and the time clash outranks the venue warning.
func newTimeClash(a, b models.TimeSlot, at, bt slotInterval, sharedVenue bool) models.Clash {
	message := fmt.Sprintf("%s clashes with %s on %s (%s vs %s)",
		displayLabel(a), displayLabel(b), formatDay(a.DayOfWeek),
		formatRange(at.start, at.end), formatRange(bt.start, bt.end))
	if sharedVenue {
		message += fmt.Sprintf(" - both in %s", a.Venue)
	}
	return models.Clash{
		ID:       clashID(a, b, models.ClashTypeTime),
		Type:     models.ClashTypeTime,
		Severity: models.ClashSeverityError,
		Slot1:    a,
		Slot2:    b,
		Message:  message,
	}
}

func newVenueClash(a, b models.TimeSlot, at, bt slotInterval) models.Clash {
	message := fmt.Sprintf("%s and %s are both in %s on %s (%s vs %s)",
		displayLabel(a), displayLabel(b), a.Venue, formatDay(a.DayOfWeek),
		formatRange(at.start, at.end), formatRange(bt.start, bt.end))
	return models.Clash{
		ID:       clashID(a, b, models.ClashTypeVenue),
		Type:     models.ClashTypeVenue,
		Severity: models.ClashSeverityWarning,
		Slot1:    a,
		Slot2:    b,
		Message:  message,
	}
}

func displayLabel(slot models.TimeSlot) string {
	if slot.SubjectCode != "" {
		return slot.SubjectCode
	}
	if slot.SubjectName != "" {
		return slot.SubjectName
	}
	return slot.ID
}
