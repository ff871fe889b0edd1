package calculator

import (
	"fmt"

	"github.com/mmynk/trackmeet/internal/models"
)

// ValidatePosition checks that a recorded position lies in 1..LanesPerHeat.
func ValidatePosition(position int) error {
	if position < 1 || position > LanesPerHeat {
		return fmt.Errorf("%w: got %d", ErrPositionOutOfRange, position)
	}
	return nil
}

func findHeat(heats []models.Heat, heatID string) (*models.Heat, error) {
	for i := range heats {
		if heats[i].ID == heatID {
			return &heats[i], nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrHeatNotFound, heatID)
}

// RecordHeatPosition sets the finishing position of a lane. Position zero
// clears it. The heat becomes completed once every lane has a position.
func RecordHeatPosition(heats []models.Heat, heatID string, lane, position int) error {
	heat, err := findHeat(heats, heatID)
	if err != nil {
		return err
	}
	if position != 0 {
		if err := ValidatePosition(position); err != nil {
			return err
		}
	}
	for i := range heat.Lanes {
		if heat.Lanes[i].Lane == lane {
			heat.Lanes[i].Position = position
			refreshStatus(heat)
			return nil
		}
	}
	return fmt.Errorf("%w: heat %s lane %d", ErrLaneNotFound, heatID, lane)
}

// AddEntrant puts an entrant into the lowest free lane of a heat. The entrant
// must not already be placed in any heat of the same event, and must be of
// the same kind as the heat's other occupants.
func AddEntrant(heats []models.Heat, heatID string, entrant models.EntrantRef) error {
	heat, err := findHeat(heats, heatID)
	if err != nil {
		return err
	}
	if len(heat.Lanes) > 0 && heat.Lanes[0].Entrant.Kind != entrant.Kind {
		return fmt.Errorf("%w: %s in a heat of %s entrants", ErrEntrantKind, entrant.Kind, heat.Lanes[0].Entrant.Kind)
	}
	for i := range heats {
		if heats[i].EventID == heat.EventID && heats[i].FindLane(entrant.ID) != nil {
			return fmt.Errorf("%w: %s", ErrDuplicateEntrant, entrant.ID)
		}
	}
	if len(heat.Lanes) >= LanesPerHeat {
		return fmt.Errorf("%w: heat %d", ErrHeatFull, heat.HeatNumber)
	}

	used := make(map[int]bool, len(heat.Lanes))
	for _, l := range heat.Lanes {
		used[l.Lane] = true
	}
	lane := 1
	for used[lane] {
		lane++
	}
	heat.Lanes = append(heat.Lanes, models.Lane{Lane: lane, Entrant: entrant})
	refreshStatus(heat)
	return nil
}

// RemoveEntrant drops an entrant's lane from a heat. Other lanes keep their numbers.
func RemoveEntrant(heats []models.Heat, heatID, entrantID string) error {
	heat, err := findHeat(heats, heatID)
	if err != nil {
		return err
	}
	for i := range heat.Lanes {
		if heat.Lanes[i].Entrant.ID == entrantID {
			heat.Lanes = append(heat.Lanes[:i], heat.Lanes[i+1:]...)
			refreshStatus(heat)
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrEntrantNotInHeat, entrantID)
}

func refreshStatus(heat *models.Heat) {
	heat.Status = models.HeatPending
	if len(heat.Lanes) == 0 {
		return
	}
	for _, l := range heat.Lanes {
		if l.Position == 0 {
			return
		}
	}
	heat.Status = models.HeatCompleted
}
