package calculator

import (
	"github.com/mmynk/trackmeet/internal/models"
)

// DefaultRelayEvents returns the standard relay programme: a 4x100m relay for
// every age group and gender, and a medley relay from U13 upwards.
func DefaultRelayEvents(newID func() string) []models.TrackEvent {
	genders := []models.Gender{models.GenderMale, models.GenderFemale}
	var events []models.TrackEvent
	for _, age := range models.AgeCategories {
		for _, g := range genders {
			events = append(events, models.TrackEvent{
				ID:        newID(),
				Name:      "4x100m Relay",
				Type:      models.EventRelay,
				Gender:    g,
				AgeGroup:  age,
				RelayType: models.Relay4x100,
			})
		}
	}
	for _, age := range []models.AgeCategory{models.AgeU13, models.AgeU15, models.AgeOpen} {
		for _, g := range genders {
			events = append(events, models.TrackEvent{
				ID:        newID(),
				Name:      "Medley Relay",
				Type:      models.EventRelay,
				Gender:    g,
				AgeGroup:  age,
				RelayType: models.RelayMedley,
			})
		}
	}
	return events
}
