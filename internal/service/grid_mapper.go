package service

import (
	"fmt"

	"github.com/danishayman/Timetable-Webapp-sub002/internal/models"
	"github.com/danishayman/Timetable-Webapp-sub002/pkg/config"
	appErrors "github.com/danishayman/Timetable-Webapp-sub002/pkg/errors"
)

// mapToGrid converts a slot's day and time range into grid coordinates on the
// configured time axis. The mapping is pure and consults no other slots;
// lateral splitting for clashing siblings is a separate pass. Weekend slots
// while weekends are hidden are a caller error.
func mapToGrid(slot models.TimeSlot, grid config.GridConfig) (models.GridPlacement, error) {
	if hiddenDay(slot.DayOfWeek, grid) {
		return models.GridPlacement{}, appErrors.Clone(appErrors.ErrUnmappableSlot,
			fmt.Sprintf("slot %s falls on %s while weekends are hidden", slot.ID, formatDay(slot.DayOfWeek)))
	}

	start, err := toMinutes(slot.StartTime)
	if err != nil {
		return models.GridPlacement{}, err
	}
	end, err := toMinutes(slot.EndTime)
	if err != nil {
		return models.GridPlacement{}, err
	}

	column := slot.DayOfWeek
	if !grid.ShowWeekends {
		// Monday-first, zero-based once Sunday is gone.
		column = slot.DayOfWeek - 1
	}

	snappedStart := closestGridLine(start, grid)
	snappedEnd := closestGridLine(end, grid)
	rowStart := (snappedStart - grid.StartMinute) / grid.StepMinutes
	rowSpan := (snappedEnd - snappedStart) / grid.StepMinutes
	if rowSpan < 1 {
		// Snapping may collapse a short slot; keep it visible.
		rowSpan = 1
	}

	return models.GridPlacement{
		SlotID:       slot.ID,
		ColumnIndex:  column,
		RowStart:     rowStart,
		RowSpan:      rowSpan,
		LateralIndex: 0,
		LateralTotal: 1,
	}, nil
}

func hiddenDay(day int, grid config.GridConfig) bool {
	if grid.ShowWeekends {
		return false
	}
	return day == models.DaySunday || day == models.DaySaturday
}
