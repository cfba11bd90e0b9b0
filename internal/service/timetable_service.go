package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/danishayman/Timetable-Webapp-sub002/internal/dto"
	"github.com/danishayman/Timetable-Webapp-sub002/internal/models"
	"github.com/danishayman/Timetable-Webapp-sub002/pkg/config"
	appErrors "github.com/danishayman/Timetable-Webapp-sub002/pkg/errors"
)

// TimetableService orchestrates the planner core: it validates incoming slot
// payloads, runs clash detection, grid mapping and lateral layout, and shapes
// the combined response for the rendering collaborator. The core passes are
// pure; logging and metrics here are the only side effects.
type TimetableService struct {
	grid      config.GridConfig
	clash     config.ClashConfig
	validator *validator.Validate
	logger    *zap.Logger
	metrics   *MetricsService
}

// NewTimetableService wires the planner dependencies.
func NewTimetableService(cfg *config.Config, validate *validator.Validate, logger *zap.Logger, metrics *MetricsService) *TimetableService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	grid := config.GridConfig{StartMinute: 8 * 60, EndMinute: 22 * 60, StepMinutes: 30}
	clash := config.ClashConfig{}
	if cfg != nil {
		grid = cfg.Grid
		clash = cfg.Clash
	}
	return &TimetableService{
		grid:      grid,
		clash:     clash,
		validator: validate,
		logger:    logger,
		metrics:   metrics,
	}
}

// BuildTimetable computes the full derived view for a selection snapshot:
// clash records (minus ignored venue clashes), grid placements with lateral
// splitting, and the weekend slots hidden by the current grid settings.
// Identical requests produce identical responses.
func (s *TimetableService) BuildTimetable(ctx context.Context, req dto.BuildTimetableRequest) (*dto.TimetableResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid timetable payload")
	}

	grid, err := s.gridFor(req.Grid)
	if err != nil {
		return nil, err
	}

	selection, err := buildSelection(req.Slots)
	if err != nil {
		return nil, err
	}

	detectStart := time.Now()
	clashes, err := detectClashes(selection, s.clash.VenueToleranceMinutes)
	if err != nil {
		return nil, err
	}
	s.metrics.ObserveDetection(time.Since(detectStart), clashes)

	visible := filterIgnored(clashes, req.IgnoredClashIDs)

	layoutStart := time.Now()
	lateral := resolveLayout(selection.SortedSlots(), clashes)

	placements := make([]models.GridPlacement, 0, selection.Len())
	hidden := make([]string, 0)
	for _, slot := range selection.SortedSlots() {
		if hiddenDay(slot.DayOfWeek, grid) {
			hidden = append(hidden, slot.ID)
			continue
		}
		placement, err := mapToGrid(slot, grid)
		if err != nil {
			return nil, err
		}
		if share, ok := lateral[slot.ID]; ok {
			placement.LateralIndex = share.LateralIndex
			placement.LateralTotal = share.LateralTotal
		}
		placements = append(placements, placement)
	}
	s.metrics.ObserveLayout(time.Since(layoutStart))
	s.metrics.IncBuild()

	s.logger.Debug("timetable_built",
		zap.Int("slots", selection.Len()),
		zap.Int("clashes", len(visible)),
		zap.Int("hidden_slots", len(hidden)),
	)

	return &dto.TimetableResponse{
		Clashes:       visible,
		Placements:    placements,
		HiddenSlotIDs: hidden,
	}, nil
}

// ResolveClash applies a remove or ignore decision against the current
// selection and returns the refreshed selection and clash set.
func (s *TimetableService) ResolveClash(ctx context.Context, req dto.ResolveClashRequest) (*dto.ResolveClashResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid resolution payload")
	}

	selection, err := buildSelection(req.Slots)
	if err != nil {
		return nil, err
	}

	clashes, err := detectClashes(selection, s.clash.VenueToleranceMinutes)
	if err != nil {
		return nil, err
	}

	var target *models.Clash
	for i := range clashes {
		if clashes[i].ID == req.ClashID {
			target = &clashes[i]
			break
		}
	}
	if target == nil {
		return nil, appErrors.Clone(appErrors.ErrNotFound, fmt.Sprintf("clash %s does not exist for this selection", req.ClashID))
	}

	action := models.ResolutionAction(req.Action)
	next, err := applyResolution(selection, *target, action, req.TargetSlotID)
	if err != nil {
		return nil, err
	}

	if action == models.ResolutionActionIgnore {
		s.logger.Debug("clash_ignored", zap.String("clash_id", target.ID))
		return &dto.ResolveClashResponse{
			Slots:          selection.Slots(),
			Clashes:        clashes,
			IgnoredClashID: target.ID,
		}, nil
	}

	remaining, err := detectClashes(next, s.clash.VenueToleranceMinutes)
	if err != nil {
		return nil, err
	}

	s.logger.Debug("clash_resolved",
		zap.String("clash_id", target.ID),
		zap.String("removed_slot", req.TargetSlotID),
		zap.Int("remaining_clashes", len(remaining)),
	)

	return &dto.ResolveClashResponse{
		Slots:   next.Slots(),
		Clashes: remaining,
	}, nil
}

// DetectClashes exposes the pure detection pass on a prebuilt selection.
func (s *TimetableService) DetectClashes(ctx context.Context, selection models.Selection) ([]models.Clash, error) {
	start := time.Now()
	clashes, err := detectClashes(selection, s.clash.VenueToleranceMinutes)
	if err != nil {
		return nil, err
	}
	s.metrics.ObserveDetection(time.Since(start), clashes)
	return clashes, nil
}

// MapToGrid exposes the pure per-slot placement pass using the configured
// grid. Callers must filter weekend slots beforehand when weekends are
// hidden; mapping one is an error, not a silent drop.
func (s *TimetableService) MapToGrid(slot models.TimeSlot) (models.GridPlacement, error) {
	return mapToGrid(slot, s.grid)
}

// ResolveLayout exposes the pure lateral-partition pass.
func (s *TimetableService) ResolveLayout(slots []models.TimeSlot, clashes []models.Clash) map[string]models.LateralPlacement {
	return resolveLayout(slots, clashes)
}

// ApplyResolution exposes the pure resolution-action pass.
func (s *TimetableService) ApplyResolution(selection models.Selection, clash models.Clash, action models.ResolutionAction, targetSlotID string) (models.Selection, error) {
	return applyResolution(selection, clash, action, targetSlotID)
}

func (s *TimetableService) gridFor(overrides *dto.GridOverrides) (config.GridConfig, error) {
	grid := s.grid
	if overrides != nil {
		if overrides.ShowWeekends != nil {
			grid.ShowWeekends = *overrides.ShowWeekends
		}
		if overrides.StartTime != "" {
			start, err := toMinutes(overrides.StartTime)
			if err != nil {
				return config.GridConfig{}, err
			}
			grid.StartMinute = start
		}
		if overrides.EndTime != "" {
			end, err := toMinutes(overrides.EndTime)
			if err != nil {
				return config.GridConfig{}, err
			}
			grid.EndMinute = end
		}
		if overrides.StepMinutes > 0 {
			grid.StepMinutes = overrides.StepMinutes
		}
	}
	if err := grid.Validate(); err != nil {
		return config.GridConfig{}, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid grid settings")
	}
	return grid, nil
}

func buildSelection(payloads []dto.TimeSlotPayload) (models.Selection, error) {
	slots := make([]models.TimeSlot, 0, len(payloads))
	for _, payload := range payloads {
		slots = append(slots, payload.ToModel())
	}
	selection, duplicates := models.NewSelection(slots...)
	if len(duplicates) > 0 {
		return models.Selection{}, appErrors.Clone(appErrors.ErrValidation,
			fmt.Sprintf("duplicate slot ids in selection: %s", strings.Join(duplicates, ", ")))
	}
	return selection, nil
}

func filterIgnored(clashes []models.Clash, ignoredIDs []string) []models.Clash {
	if len(ignoredIDs) == 0 {
		return clashes
	}
	ignored := make(map[string]bool, len(ignoredIDs))
	for _, id := range ignoredIDs {
		ignored[id] = true
	}
	visible := make([]models.Clash, 0, len(clashes))
	for _, clash := range clashes {
		// Only venue warnings are ignorable; a blocking time clash is always
		// reported even if its ID somehow made it into the ignored set.
		if clash.Type == models.ClashTypeVenue && ignored[clash.ID] {
			continue
		}
		visible = append(visible, clash)
	}
	return visible
}
