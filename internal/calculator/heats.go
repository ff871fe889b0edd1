package calculator

import (
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/mmynk/trackmeet/internal/models"
)

const (
	// LanesPerHeat bounds the number of entrants in any heat or final.
	LanesPerHeat = 8

	// MinEntriesForHeats is the smallest field that needs qualifying heats.
	MinEntriesForHeats = LanesPerHeat + 1
)

// distanceEvents always run as a single final regardless of field size.
var distanceEvents = []string{"1200m", "800m"}

// IsDistanceEvent reports whether the event name marks an 800m or 1200m race.
func IsDistanceEvent(name string) bool {
	for _, d := range distanceEvents {
		if strings.Contains(name, d) {
			return true
		}
	}
	return false
}

// ShouldSkipHeats reports whether an event goes straight to a single final.
func ShouldSkipHeats(event *models.TrackEvent, entryCount int) bool {
	return IsDistanceEvent(event.Name) || entryCount < MinEntriesForHeats
}

// HeatCount returns the number of heats needed for entryCount entrants.
func HeatCount(entryCount int) int {
	return (entryCount + LanesPerHeat - 1) / LanesPerHeat
}

// HeatAllocator splits an event's entrants into heats. Shuffling draws from
// the injected random source, so a fixed seed reproduces the same partition.
type HeatAllocator struct {
	rng *rand.Rand
}

// NewHeatAllocator creates an allocator over src. A nil src uses a freshly
// seeded PCG source.
func NewHeatAllocator(src rand.Source) *HeatAllocator {
	if src == nil {
		src = rand.NewPCG(rand.Uint64(), rand.Uint64())
	}
	return &HeatAllocator{rng: rand.New(src)}
}

// Generate builds the heats of an event from its resolved entries.
//
// Events that skip qualifying get one finals heat with lanes in entry order.
// Larger fields get HeatCount(len(entries)) heats filled school by school in
// round-robin so that teammates land in different heats where possible.
// An empty entry list yields no heats.
func (a *HeatAllocator) Generate(event *models.TrackEvent, entries []Entry) []models.Heat {
	if len(entries) == 0 {
		return nil
	}
	if ShouldSkipHeats(event, len(entries)) {
		return []models.Heat{DirectFinals(event, entries)}
	}

	groups := a.distribute(entries, HeatCount(len(entries)))
	heats := make([]models.Heat, len(groups))
	for i, group := range groups {
		heats[i] = models.Heat{
			ID:         fmt.Sprintf("%s-heat-%d", event.ID, i+1),
			EventID:    event.ID,
			HeatNumber: i + 1,
			Lanes:      numberLanes(group),
			Status:     models.HeatPending,
		}
	}
	return heats
}

// DirectFinals builds the single finals heat of an event that skips qualifying.
func DirectFinals(event *models.TrackEvent, entries []Entry) models.Heat {
	return models.Heat{
		ID:              event.ID + "-finals",
		EventID:         event.ID,
		HeatNumber:      1,
		Lanes:           numberLanes(entries),
		Status:          models.HeatPending,
		IsFinals:        true,
		IsDistanceEvent: IsDistanceEvent(event.Name),
	}
}

func numberLanes(entries []Entry) []models.Lane {
	lanes := make([]models.Lane, len(entries))
	for i, e := range entries {
		lanes[i] = models.Lane{Lane: i + 1, Entrant: e.Entrant}
	}
	return lanes
}

// distribute partitions entries into numHeats groups of at most LanesPerHeat.
func (a *HeatAllocator) distribute(entries []Entry, numHeats int) [][]Entry {
	// Schools in order of first appearance keep seeded runs reproducible.
	var order []string
	bySchool := make(map[string][]Entry)
	for _, e := range entries {
		if _, ok := bySchool[e.SchoolID]; !ok {
			order = append(order, e.SchoolID)
		}
		bySchool[e.SchoolID] = append(bySchool[e.SchoolID], e)
	}

	heats := make([][]Entry, numHeats)
	var remaining []Entry
	current := 0

	// First pass: deal each school's shuffled entrants round-robin.
	for _, school := range order {
		group := bySchool[school]
		a.shuffle(group)
		for _, e := range group {
			if len(heats[current]) < LanesPerHeat {
				heats[current] = append(heats[current], e)
				current = (current + 1) % numHeats
			} else {
				remaining = append(remaining, e)
			}
		}
	}

	// Second pass: each leftover goes to the open heat holding the fewest
	// of its teammates, lowest heat index first.
	a.shuffle(remaining)
	for _, e := range remaining {
		best := -1
		bestCount := 0
		for i, heat := range heats {
			if len(heat) >= LanesPerHeat {
				continue
			}
			count := countSchool(heat, e.SchoolID)
			if best == -1 || count < bestCount {
				best, bestCount = i, count
			}
		}
		if best >= 0 {
			heats[best] = append(heats[best], e)
		}
	}

	for _, heat := range heats {
		a.shuffle(heat)
	}
	return heats
}

func (a *HeatAllocator) shuffle(entries []Entry) {
	a.rng.Shuffle(len(entries), func(i, j int) {
		entries[i], entries[j] = entries[j], entries[i]
	})
}

func countSchool(heat []Entry, schoolID string) int {
	n := 0
	for _, e := range heat {
		if e.SchoolID == schoolID {
			n++
		}
	}
	return n
}
