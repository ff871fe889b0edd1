package calculator

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/mmynk/trackmeet/internal/models"
)

// Points awarded per final position, indexed by position. Index 0 is unused.
var (
	individualPoints = [LanesPerHeat + 1]int{0, 9, 7, 6, 5, 4, 3, 2, 1}
	relayPoints      = [LanesPerHeat + 1]int{0, 12, 10, 8, 6, 5, 4, 3, 2}
)

// IndividualPoints returns the points for a placing in an individual event.
// Positions outside 1..8 score 0.
func IndividualPoints(position int) int {
	if position < 1 || position > LanesPerHeat {
		return 0
	}
	return individualPoints[position]
}

// RelayPoints returns the points for a placing in a relay event.
// Positions outside 1..8 score 0.
func RelayPoints(position int) int {
	if position < 1 || position > LanesPerHeat {
		return 0
	}
	return relayPoints[position]
}

// PointsFor returns the points for a placing under the scale of eventType.
func PointsFor(eventType models.EventType, position int) int {
	if eventType == models.EventRelay {
		return RelayPoints(position)
	}
	return IndividualPoints(position)
}

// PointAward is one scoring placing credited to a school.
type PointAward struct {
	EventID   string
	EventName string
	EventType models.EventType
	Gender    models.Gender
	AgeGroup  models.AgeCategory

	// EntrantID is the athlete id, or the school id for relays.
	EntrantID string

	// AthleteName is empty for relays.
	AthleteName string

	Position int
	Points   int
}

// TeamStanding is one school's row of the points table.
type TeamStanding struct {
	SchoolID    string
	SchoolName  string
	TotalPoints int
	Breakdown   []PointAward
}

// Warning flags a ledger row that could not score as recorded.
type Warning struct {
	EventID   string
	EntrantID string
	Position  int
	Message   string
}

// CalculateTeamPoints aggregates the final positions ledger into team standings.
//
// Algorithm:
//   - Walk the ledger in (event id, entrant id) order
//   - Skip rows whose event is unknown, and individual rows whose athlete is unknown
//   - Relay rows credit the entrant school with RelayPoints
//   - Individual rows credit the athlete's school with IndividualPoints
//   - Positions outside 1..8 score nothing and are reported as warnings
//
// Only schools in the schools list appear in the result, and only those with
// points. Rows are sorted by total points descending, then school name, then id.
// The function is pure: the same inputs always give the same output.
func CalculateTeamPoints(ledger models.FinalPositions, events []models.TrackEvent, athletes []models.Athlete, schools []models.School) ([]TeamStanding, []Warning) {
	eventsByID := make(map[string]*models.TrackEvent, len(events))
	for i := range events {
		eventsByID[events[i].ID] = &events[i]
	}
	athletesByID := make(map[string]*models.Athlete, len(athletes))
	for i := range athletes {
		athletesByID[athletes[i].ID] = &athletes[i]
	}

	standings := make(map[string]*TeamStanding, len(schools))
	for _, s := range schools {
		standings[s.ID] = &TeamStanding{SchoolID: s.ID, SchoolName: s.Name}
	}

	var warnings []Warning
	for _, row := range ledger.Rows() {
		if row.Position == 0 {
			continue
		}
		event, ok := eventsByID[row.EventID]
		if !ok {
			continue
		}

		award := PointAward{
			EventID:   event.ID,
			EventName: event.Name,
			EventType: event.Type,
			Gender:    event.Gender,
			AgeGroup:  event.AgeGroup,
			EntrantID: row.EntrantID,
			Position:  row.Position,
		}

		schoolID := row.EntrantID
		if !event.IsRelay() {
			athlete, ok := athletesByID[row.EntrantID]
			if !ok {
				continue
			}
			schoolID = athlete.SchoolID
			award.AthleteName = athlete.Name
		}

		if ValidatePosition(row.Position) != nil {
			warnings = append(warnings, Warning{
				EventID:   row.EventID,
				EntrantID: row.EntrantID,
				Position:  row.Position,
				Message:   fmt.Sprintf("position %d is outside 1..%d and scores no points", row.Position, LanesPerHeat),
			})
			continue
		}

		standing, ok := standings[schoolID]
		if !ok {
			continue
		}
		award.Points = PointsFor(event.Type, row.Position)
		standing.TotalPoints += award.Points
		standing.Breakdown = append(standing.Breakdown, award)
	}

	result := make([]TeamStanding, 0, len(standings))
	for _, s := range schools {
		if st := standings[s.ID]; st != nil && st.TotalPoints > 0 {
			result = append(result, *st)
			// Duplicate school ids in the input are counted once.
			delete(standings, s.ID)
		}
	}
	slices.SortStableFunc(result, func(a, b TeamStanding) int {
		if c := cmp.Compare(b.TotalPoints, a.TotalPoints); c != 0 {
			return c
		}
		if c := cmp.Compare(a.SchoolName, b.SchoolName); c != 0 {
			return c
		}
		return cmp.Compare(a.SchoolID, b.SchoolID)
	})
	return result, warnings
}
