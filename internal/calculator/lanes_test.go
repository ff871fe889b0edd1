package calculator

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/trackmeet/internal/models"
)

func TestSeedLanes(t *testing.T) {
	t.Parallel()

	var ranked []models.EntrantRef
	for _, id := range []string{"r1", "r2", "r3", "r4", "r5", "r6", "r7", "r8", "r9"} {
		ranked = append(ranked, models.AthleteEntrant(id))
	}

	finalists := SeedLanes(ranked)

	require.Len(t, finalists, LanesPerHeat)
	want := map[string]int{"r1": 4, "r2": 5, "r3": 3, "r4": 6, "r5": 7, "r6": 2, "r7": 8, "r8": 1}
	for _, f := range finalists {
		assert.Equal(t, want[f.Entrant.ID], f.Lane, f.Entrant.ID)
	}
}

func TestSeedFinalists_FromHeats(t *testing.T) {
	t.Parallel()

	heats := []models.Heat{
		{ID: "h1", EventID: "ev", HeatNumber: 1, Lanes: []models.Lane{
			{Lane: 1, Entrant: models.AthleteEntrant("a"), Position: 2},
			{Lane: 2, Entrant: models.AthleteEntrant("b"), Position: 1},
			{Lane: 3, Entrant: models.AthleteEntrant("c")},
		}},
		{ID: "h2", EventID: "ev", HeatNumber: 2, Lanes: []models.Lane{
			{Lane: 1, Entrant: models.AthleteEntrant("d"), Position: 1},
			{Lane: 2, Entrant: models.AthleteEntrant("e"), Position: 2},
		}},
		{ID: "other", EventID: "other", HeatNumber: 1, Lanes: []models.Lane{
			{Lane: 1, Entrant: models.AthleteEntrant("x"), Position: 1},
		}},
	}
	ledger := models.FinalPositions{{EventID: "ev", EntrantID: "d"}: 1}

	finalists := SeedFinalists("ev", heats, ledger)

	require.Len(t, finalists, 4)
	// Ties on heat position resolve by heat number.
	assert.Equal(t, "b", finalists[0].Entrant.ID)
	assert.Equal(t, 4, finalists[0].Lane)
	assert.Equal(t, "d", finalists[1].Entrant.ID)
	assert.Equal(t, 5, finalists[1].Lane)
	assert.Equal(t, 1, finalists[1].FinalPosition)
	assert.Equal(t, 2, finalists[1].HeatNumber)
	assert.Equal(t, "a", finalists[2].Entrant.ID)
	assert.Equal(t, 3, finalists[2].Lane)
	assert.Equal(t, "e", finalists[3].Entrant.ID)
	assert.Equal(t, 6, finalists[3].Lane)
}

func TestSeedFinalists_DirectFinals(t *testing.T) {
	t.Parallel()

	heats := []models.Heat{{ID: "f", EventID: "ev", HeatNumber: 1, IsFinals: true, Lanes: []models.Lane{
		{Lane: 1, Entrant: models.SchoolEntrant("s1")},
		{Lane: 2, Entrant: models.SchoolEntrant("s2")},
	}}}
	ledger := models.FinalPositions{{EventID: "ev", EntrantID: "s2"}: 1}

	finalists := SeedFinalists("ev", heats, ledger)
	require.Len(t, finalists, 2)
	assert.Equal(t, 1, finalists[0].Lane)
	assert.Equal(t, 2, finalists[1].Lane)

	OrderByResult(finalists)
	assert.Equal(t, "s2", finalists[0].Entrant.ID)
	assert.Equal(t, "s1", finalists[1].Entrant.ID)
}

func TestSeedFinalists_NoPositions(t *testing.T) {
	t.Parallel()

	heats := []models.Heat{
		{ID: "h1", EventID: "ev", HeatNumber: 1, Lanes: []models.Lane{{Lane: 1, Entrant: models.AthleteEntrant("a")}}},
		{ID: "h2", EventID: "ev", HeatNumber: 2, Lanes: []models.Lane{{Lane: 1, Entrant: models.AthleteEntrant("b")}}},
	}
	assert.Empty(t, SeedFinalists("ev", heats, nil))
}

func heatFixture() []models.Heat {
	return []models.Heat{
		{ID: "h1", EventID: "ev", HeatNumber: 1, Status: models.HeatPending, Lanes: []models.Lane{
			{Lane: 1, Entrant: models.AthleteEntrant("a")},
			{Lane: 2, Entrant: models.AthleteEntrant("b")},
		}},
		{ID: "h2", EventID: "ev", HeatNumber: 2, Status: models.HeatPending, Lanes: []models.Lane{
			{Lane: 1, Entrant: models.AthleteEntrant("c")},
		}},
	}
}

func TestRecordHeatPosition(t *testing.T) {
	t.Parallel()

	heats := heatFixture()
	require.NoError(t, RecordHeatPosition(heats, "h1", 1, 2))
	assert.Equal(t, models.HeatPending, heats[0].Status)
	require.NoError(t, RecordHeatPosition(heats, "h1", 2, 1))
	assert.Equal(t, models.HeatCompleted, heats[0].Status)

	require.NoError(t, RecordHeatPosition(heats, "h1", 2, 0))
	assert.Equal(t, 0, heats[0].Lanes[1].Position)
	assert.Equal(t, models.HeatPending, heats[0].Status)

	assert.ErrorIs(t, RecordHeatPosition(heats, "h1", 1, 9), ErrPositionOutOfRange)
	assert.ErrorIs(t, RecordHeatPosition(heats, "h1", 7, 1), ErrLaneNotFound)
	assert.ErrorIs(t, RecordHeatPosition(heats, "nope", 1, 1), ErrHeatNotFound)
}

func TestAddAndRemoveEntrant(t *testing.T) {
	t.Parallel()

	heats := heatFixture()
	require.NoError(t, RemoveEntrant(heats, "h1", "a"))
	require.Len(t, heats[0].Lanes, 1)
	assert.Equal(t, 2, heats[0].Lanes[0].Lane)

	require.NoError(t, AddEntrant(heats, "h1", models.AthleteEntrant("d")))
	assert.Equal(t, 1, heats[0].Lanes[1].Lane, "lowest free lane is reused")

	err := AddEntrant(heats, "h1", models.AthleteEntrant("c"))
	assert.True(t, errors.Is(err, ErrDuplicateEntrant))

	assert.ErrorIs(t, RemoveEntrant(heats, "h2", "zzz"), ErrEntrantNotInHeat)

	for i := 0; i < 7; i++ {
		require.NoError(t, AddEntrant(heats, "h2", models.AthleteEntrant(string(rune('k'+i)))))
	}
	assert.Len(t, heats[1].Lanes, LanesPerHeat)
	assert.ErrorIs(t, AddEntrant(heats, "h2", models.AthleteEntrant("late")), ErrHeatFull)
}

func TestSchoolFinalistsReport(t *testing.T) {
	t.Parallel()

	events := []models.TrackEvent{
		{ID: "ev", Name: "100m", Type: models.EventTrack, AgeGroup: models.AgeU11, Gender: models.GenderMale},
		{ID: "rl", Name: "4x100m Relay", Type: models.EventRelay, AgeGroup: models.AgeU9, Gender: models.GenderFemale},
	}
	athletes := []models.Athlete{{ID: "a", Name: "Ann", SchoolID: "s1"}, {ID: "b", Name: "Ben", SchoolID: "s2"}}
	schools := []models.School{{ID: "s1", Name: "One"}, {ID: "s2", Name: "Two"}, {ID: "s3", Name: "Three"}}
	heats := []models.Heat{
		{ID: "f1", EventID: "ev", HeatNumber: 1, IsFinals: true, Lanes: []models.Lane{
			{Lane: 1, Entrant: models.AthleteEntrant("a")},
			{Lane: 2, Entrant: models.AthleteEntrant("b")},
			{Lane: 3, Entrant: models.AthleteEntrant("ghost")},
		}},
		{ID: "f2", EventID: "rl", HeatNumber: 1, IsFinals: true, Lanes: []models.Lane{
			{Lane: 1, Entrant: models.SchoolEntrant("s1")},
		}},
	}
	ledger := models.FinalPositions{{EventID: "ev", EntrantID: "a"}: 2}

	report := SchoolFinalistsReport(events, heats, athletes, schools, ledger)

	require.Len(t, report, 2)
	assert.Equal(t, "s1", report[0].SchoolID)
	require.Len(t, report[0].Finalists, 2)
	// Relay U9 girls comes before U11 boys in programme order.
	assert.Equal(t, "rl", report[0].Finalists[0].EventID)
	assert.Equal(t, "Ann", report[0].Finalists[1].AthleteName)
	assert.Equal(t, 2, report[0].Finalists[1].FinalPosition)
	assert.Equal(t, "s2", report[1].SchoolID)
	assert.Len(t, report[1].Finalists, 1, "unknown athletes are skipped")
}
