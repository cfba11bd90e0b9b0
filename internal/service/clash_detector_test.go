package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danishayman/Timetable-Webapp-sub002/internal/models"
	appErrors "github.com/danishayman/Timetable-Webapp-sub002/pkg/errors"
)

func slotFixture(id, subjectID string, kind models.SlotKind, day int, start, end, venue string) models.TimeSlot {
	return models.TimeSlot{
		ID:          id,
		SubjectID:   subjectID,
		SubjectCode: subjectID,
		SubjectName: "Subject " + subjectID,
		DayOfWeek:   day,
		StartTime:   start,
		EndTime:     end,
		Venue:       venue,
		Kind:        kind,
	}
}

func selectionFixture(t *testing.T, slots ...models.TimeSlot) models.Selection {
	t.Helper()
	selection, duplicates := models.NewSelection(slots...)
	require.Empty(t, duplicates)
	return selection
}

func TestDetectClashesReportsOverlapAsTimeError(t *testing.T) {
	selection := selectionFixture(t,
		slotFixture("a", "WIA1002", models.SlotKindLecture, 1, "09:00", "10:30", "R1"),
		slotFixture("b", "WIA1003", models.SlotKindLecture, 1, "10:00", "11:00", "R2"),
	)

	clashes, err := detectClashes(selection, 0)
	require.NoError(t, err)
	require.Len(t, clashes, 1)

	clash := clashes[0]
	assert.Equal(t, models.ClashTypeTime, clash.Type)
	assert.Equal(t, models.ClashSeverityError, clash.Severity)
	assert.Equal(t, "a", clash.Slot1.ID)
	assert.Equal(t, "b", clash.Slot2.ID)
	assert.NotEmpty(t, clash.ID)
	assert.Contains(t, clash.Message, "WIA1002")
	assert.Contains(t, clash.Message, "WIA1003")
	assert.Contains(t, clash.Message, "Monday")
}

func TestDetectClashesIsDeterministic(t *testing.T) {
	selection := selectionFixture(t,
		slotFixture("a", "WIA1002", models.SlotKindLecture, 1, "09:00", "10:30", "R1"),
		slotFixture("b", "WIA1003", models.SlotKindLecture, 1, "10:00", "11:00", "R2"),
		slotFixture("c", "WIA1004", models.SlotKindTutorial, 1, "10:15", "11:15", "R3"),
	)

	first, err := detectClashes(selection, 0)
	require.NoError(t, err)
	second, err := detectClashes(selection, 0)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestDetectClashesSymmetryCollapsesToOneRecord(t *testing.T) {
	a := slotFixture("a", "WIA1002", models.SlotKindLecture, 1, "09:00", "10:30", "R1")
	b := slotFixture("b", "WIA1003", models.SlotKindLecture, 1, "10:00", "11:00", "R2")

	forward, err := detectClashes(selectionFixture(t, a, b), 0)
	require.NoError(t, err)
	reversed, err := detectClashes(selectionFixture(t, b, a), 0)
	require.NoError(t, err)

	require.Len(t, forward, 1)
	require.Len(t, reversed, 1)
	assert.Equal(t, forward[0].ID, reversed[0].ID, "insertion order must not change the clash identity")
	assert.Equal(t, forward[0], reversed[0])
}

func TestDetectClashesSingleSlotNeverSelfClashes(t *testing.T) {
	selection := selectionFixture(t,
		slotFixture("a", "WIA1002", models.SlotKindLecture, 1, "09:00", "10:30", "R1"),
	)

	clashes, err := detectClashes(selection, 0)
	require.NoError(t, err)
	assert.Empty(t, clashes)
}

func TestDetectClashesHalfOpenIntervalLaw(t *testing.T) {
	selection := selectionFixture(t,
		slotFixture("a", "WIA1002", models.SlotKindLecture, 1, "09:00", "10:00", "R1"),
		slotFixture("b", "WIA1003", models.SlotKindLecture, 1, "10:00", "11:00", "R1"),
	)

	clashes, err := detectClashes(selection, 0)
	require.NoError(t, err)
	assert.Empty(t, clashes, "back-to-back slots must not clash, even in the same venue, at zero tolerance")
}

func TestDetectClashesSeverityPrecedenceFoldsVenueIntoTimeClash(t *testing.T) {
	selection := selectionFixture(t,
		slotFixture("a", "WIA1002", models.SlotKindLecture, 1, "09:00", "10:30", "DK1"),
		slotFixture("b", "WIA1003", models.SlotKindLecture, 1, "10:00", "11:00", "DK1"),
	)

	clashes, err := detectClashes(selection, 0)
	require.NoError(t, err)
	require.Len(t, clashes, 1, "the pair must produce one record, not a time clash plus a venue clash")

	clash := clashes[0]
	assert.Equal(t, models.ClashTypeTime, clash.Type)
	assert.Equal(t, models.ClashSeverityError, clash.Severity)
	assert.Contains(t, clash.Message, "both in DK1")
}

func TestDetectClashesVenueWarningWithinTolerance(t *testing.T) {
	selection := selectionFixture(t,
		slotFixture("a", "WIA1002", models.SlotKindLecture, 1, "09:00", "10:00", "DK1"),
		slotFixture("b", "WIA1003", models.SlotKindLecture, 1, "10:00", "11:00", "DK1"),
	)

	clashes, err := detectClashes(selection, 15)
	require.NoError(t, err)
	require.Len(t, clashes, 1)

	clash := clashes[0]
	assert.Equal(t, models.ClashTypeVenue, clash.Type)
	assert.Equal(t, models.ClashSeverityWarning, clash.Severity)
	assert.Contains(t, clash.Message, "DK1")
}

func TestDetectClashesIgnoresEmptyVenues(t *testing.T) {
	selection := selectionFixture(t,
		slotFixture("a", "WIA1002", models.SlotKindLecture, 1, "09:00", "10:00", ""),
		slotFixture("b", "WIA1003", models.SlotKindLecture, 1, "10:00", "11:00", ""),
	)

	clashes, err := detectClashes(selection, 60)
	require.NoError(t, err)
	assert.Empty(t, clashes, "empty venue strings never match each other")
}

func TestDetectClashesSkipsAlternativesOfSameRequirement(t *testing.T) {
	selection := selectionFixture(t,
		slotFixture("t1", "WIA1002", models.SlotKindTutorial, 2, "14:00", "15:00", "BK1"),
		slotFixture("t2", "WIA1002", models.SlotKindTutorial, 2, "14:00", "15:00", "BK1"),
	)

	clashes, err := detectClashes(selection, 0)
	require.NoError(t, err)
	assert.Empty(t, clashes, "tutorial alternatives of the same subject are exclusive choices, not conflicts")
}

func TestDetectClashesComparesLectureAgainstOwnTutorial(t *testing.T) {
	selection := selectionFixture(t,
		slotFixture("lec", "WIA1002", models.SlotKindLecture, 2, "14:00", "16:00", "DK1"),
		slotFixture("tut", "WIA1002", models.SlotKindTutorial, 2, "15:00", "16:00", "BK1"),
	)

	clashes, err := detectClashes(selection, 0)
	require.NoError(t, err)
	require.Len(t, clashes, 1, "a subject's lecture and tutorial are both required and can clash")
	assert.Equal(t, models.ClashTypeTime, clashes[0].Type)
}

func TestDetectClashesSkipsDifferentDays(t *testing.T) {
	selection := selectionFixture(t,
		slotFixture("a", "WIA1002", models.SlotKindLecture, 1, "09:00", "10:30", "DK1"),
		slotFixture("b", "WIA1003", models.SlotKindLecture, 2, "09:00", "10:30", "DK1"),
	)

	clashes, err := detectClashes(selection, 0)
	require.NoError(t, err)
	assert.Empty(t, clashes)
}

func TestDetectClashesFailsFastOnMalformedTime(t *testing.T) {
	selection := selectionFixture(t,
		slotFixture("a", "WIA1002", models.SlotKindLecture, 1, "09:00", "10:30", "R1"),
		slotFixture("b", "WIA1003", models.SlotKindLecture, 1, "9am", "11:00", "R2"),
	)

	clashes, err := detectClashes(selection, 0)
	require.Error(t, err)
	assert.True(t, appErrors.HasCode(err, appErrors.ErrInvalidTimeFormat))
	assert.Nil(t, clashes, "the whole batch aborts, no partial results")
}

func TestClashIDIsOrderIndependent(t *testing.T) {
	a := slotFixture("a", "WIA1002", models.SlotKindLecture, 1, "09:00", "10:30", "R1")
	b := slotFixture("b", "WIA1003", models.SlotKindLecture, 1, "10:00", "11:00", "R2")

	assert.Equal(t, clashID(a, b, models.ClashTypeTime), clashID(b, a, models.ClashTypeTime))
	assert.NotEqual(t, clashID(a, b, models.ClashTypeTime), clashID(a, b, models.ClashTypeVenue))
}
