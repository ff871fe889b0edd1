package calculator

import (
	"cmp"
	"slices"

	"github.com/mmynk/trackmeet/internal/models"
)

// SortEvents returns a copy of events ordered for the programme:
// youngest age group first, girls before boys, then by name.
func SortEvents(events []models.TrackEvent) []models.TrackEvent {
	sorted := slices.Clone(events)
	slices.SortStableFunc(sorted, func(a, b models.TrackEvent) int {
		if c := cmp.Compare(ageOrder(a.AgeGroup), ageOrder(b.AgeGroup)); c != 0 {
			return c
		}
		if a.Gender != b.Gender {
			if a.Gender == models.GenderFemale {
				return -1
			}
			if b.Gender == models.GenderFemale {
				return 1
			}
		}
		return cmp.Compare(a.Name, b.Name)
	})
	return sorted
}

// ageOrder puts unknown categories last.
func ageOrder(c models.AgeCategory) int {
	if r := c.Rank(); r > 0 {
		return r
	}
	return 999
}
