package service

import (
	"fmt"

	"github.com/danishayman/Timetable-Webapp-sub002/internal/models"
	appErrors "github.com/danishayman/Timetable-Webapp-sub002/pkg/errors"
)

// applyResolution applies a user's clash decision and returns the resulting
// selection. The update is whole-selection replacement: the input snapshot is
// never mutated, so detection and layout passes downstream always work from a
// fresh selection.
func applyResolution(selection models.Selection, clash models.Clash, action models.ResolutionAction, targetSlotID string) (models.Selection, error) {
	switch action {
	case models.ResolutionActionRemove:
		if targetSlotID == "" || !clash.Involves(targetSlotID) {
			return selection, appErrors.Clone(appErrors.ErrInvalidTarget,
				fmt.Sprintf("slot %q is not a participant of clash %s", targetSlotID, clash.ID))
		}
		return selection.Remove(targetSlotID), nil
	case models.ResolutionActionIgnore:
		if clash.Type != models.ClashTypeVenue {
			return selection, appErrors.Clone(appErrors.ErrValidation,
				fmt.Sprintf("only venue clashes can be ignored, clash %s is a %s clash", clash.ID, clash.Type))
		}
		// The selection is untouched; the caller records the clash ID in its
		// ignored set and filters future detection output by it.
		return selection, nil
	default:
		return selection, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("unsupported resolution action %q", action))
	}
}
