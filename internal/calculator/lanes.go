package calculator

import (
	"cmp"
	"slices"

	"github.com/mmynk/trackmeet/internal/models"
)

// SeedingPattern maps qualifier rank (index 0 = fastest) to final lane,
// putting the fastest qualifiers in the centre lanes.
var SeedingPattern = [LanesPerHeat]int{4, 5, 3, 6, 7, 2, 8, 1}

// Finalist is one entrant of an event's final.
type Finalist struct {
	// Lane is the lane in the final.
	Lane int

	Entrant models.EntrantRef

	// HeatNumber and HeatPosition record how the finalist qualified. Both are
	// zero-valued for direct finals where no qualifying heat was run.
	HeatNumber   int
	HeatPosition int

	// FinalPosition is the recorded final placing, or 0.
	FinalPosition int
}

// SeedLanes assigns ranked qualifiers to final lanes. Qualifiers beyond
// LanesPerHeat are dropped.
func SeedLanes(ranked []models.EntrantRef) []Finalist {
	n := min(len(ranked), LanesPerHeat)
	finalists := make([]Finalist, n)
	for i := 0; i < n; i++ {
		finalists[i] = Finalist{Lane: SeedingPattern[i], Entrant: ranked[i]}
	}
	return finalists
}

type qualifier struct {
	lane       models.Lane
	heatNumber int
}

// SeedFinalists builds the final of an event from its heats.
//
// A direct-finals event keeps every lane of its single finals heat as is.
// Otherwise every lane with a recorded heat position qualifies; they are
// ranked by heat position, then heat number, then heat lane, and the top
// eight are seeded with SeedingPattern. Final positions come from ledger.
func SeedFinalists(eventID string, heats []models.Heat, ledger models.FinalPositions) []Finalist {
	var eventHeats []models.Heat
	for _, h := range heats {
		if h.EventID == eventID {
			eventHeats = append(eventHeats, h)
		}
	}

	if len(eventHeats) == 1 && eventHeats[0].IsFinals {
		lanes := eventHeats[0].Lanes
		finalists := make([]Finalist, len(lanes))
		for i, l := range lanes {
			finalists[i] = Finalist{
				Lane:          l.Lane,
				Entrant:       l.Entrant,
				FinalPosition: ledger.Get(eventID, l.Entrant.ID),
			}
		}
		return finalists
	}

	var qualifiers []qualifier
	for _, h := range eventHeats {
		for _, l := range h.Lanes {
			if l.Position > 0 {
				qualifiers = append(qualifiers, qualifier{lane: l, heatNumber: h.HeatNumber})
			}
		}
	}
	slices.SortStableFunc(qualifiers, func(a, b qualifier) int {
		if c := cmp.Compare(a.lane.Position, b.lane.Position); c != 0 {
			return c
		}
		if c := cmp.Compare(a.heatNumber, b.heatNumber); c != 0 {
			return c
		}
		return cmp.Compare(a.lane.Lane, b.lane.Lane)
	})

	ranked := make([]models.EntrantRef, len(qualifiers))
	for i, q := range qualifiers {
		ranked[i] = q.lane.Entrant
	}
	finalists := SeedLanes(ranked)
	for i := range finalists {
		q := qualifiers[i]
		finalists[i].HeatNumber = q.heatNumber
		finalists[i].HeatPosition = q.lane.Position
		finalists[i].FinalPosition = ledger.Get(eventID, q.lane.Entrant.ID)
	}
	return finalists
}

// OrderByResult sorts finalists for a results sheet: recorded final
// positions first in ascending order, the rest by lane.
func OrderByResult(finalists []Finalist) {
	slices.SortStableFunc(finalists, func(a, b Finalist) int {
		switch {
		case a.FinalPosition > 0 && b.FinalPosition > 0:
			if c := cmp.Compare(a.FinalPosition, b.FinalPosition); c != 0 {
				return c
			}
		case a.FinalPosition > 0:
			return -1
		case b.FinalPosition > 0:
			return 1
		}
		return cmp.Compare(a.Lane, b.Lane)
	})
}
