package service

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/danishayman/Timetable-Webapp-sub002/pkg/config"
	appErrors "github.com/danishayman/Timetable-Webapp-sub002/pkg/errors"
)

var dayNames = [7]string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}

// toMinutes parses a 24-hour "HH:MM" string into minutes since midnight.
func toMinutes(raw string) (int, error) {
	trimmed := strings.TrimSpace(raw)
	parts := strings.Split(trimmed, ":")
	if len(parts) != 2 || len(parts[0]) == 0 || len(parts[0]) > 2 || len(parts[1]) != 2 {
		return 0, appErrors.Clone(appErrors.ErrInvalidTimeFormat, fmt.Sprintf("invalid time %q: expected HH:MM", raw))
	}
	hours, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, appErrors.Clone(appErrors.ErrInvalidTimeFormat, fmt.Sprintf("invalid time %q: expected HH:MM", raw))
	}
	minutes, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, appErrors.Clone(appErrors.ErrInvalidTimeFormat, fmt.Sprintf("invalid time %q: expected HH:MM", raw))
	}
	if hours < 0 || hours > 23 || minutes < 0 || minutes > 59 {
		return 0, appErrors.Clone(appErrors.ErrInvalidTimeFormat, fmt.Sprintf("time %q out of range", raw))
	}
	return hours*60 + minutes, nil
}

// minutesToClock renders minutes since midnight back as "HH:MM".
func minutesToClock(minute int) string {
	return fmt.Sprintf("%02d:%02d", minute/60, minute%60)
}

// closestGridLine snaps a minute offset to the nearest grid boundary. Ties
// round toward the earlier boundary; values outside the configured day range
// clamp to the nearest bound.
func closestGridLine(minute int, grid config.GridConfig) int {
	if minute <= grid.StartMinute {
		return grid.StartMinute
	}
	if minute >= grid.EndMinute {
		return grid.EndMinute
	}
	offset := minute - grid.StartMinute
	remainder := offset % grid.StepMinutes
	snapped := minute - remainder
	if remainder*2 > grid.StepMinutes {
		snapped += grid.StepMinutes
	}
	if snapped > grid.EndMinute {
		snapped = grid.EndMinute
	}
	return snapped
}

// formatRange renders a start/end minute pair for display.
func formatRange(startMinute, endMinute int) string {
	return minutesToClock(startMinute) + "-" + minutesToClock(endMinute)
}

// formatDay renders a zero-based day-of-week (0=Sunday) for display.
func formatDay(day int) string {
	if day < 0 || day >= len(dayNames) {
		return "Unknown"
	}
	return dayNames[day]
}

// intervalsOverlap applies half-open interval semantics: back-to-back slots
// where one ends exactly as the other begins do not overlap.
func intervalsOverlap(aStart, aEnd, bStart, bEnd int) bool {
	return aStart < bEnd && bStart < aEnd
}

// overlapsWithin widens the overlap test by a tolerance in minutes, used for
// adjacent bookings of the same venue.
func overlapsWithin(aStart, aEnd, bStart, bEnd, tolerance int) bool {
	return aStart < bEnd+tolerance && bStart < aEnd+tolerance
}
