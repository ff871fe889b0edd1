package calculator

import (
	"github.com/mmynk/trackmeet/internal/models"
)

// Entry is one eligible entrant of an event.
type Entry struct {
	Entrant models.EntrantRef
	Name    string

	// SchoolID is the athlete's school, or the entrant itself for relays.
	SchoolID string
}

// ResolveEntries lists the eligible entrants of an event in roster order.
//
// Individual and field events take every athlete entered in the event by name
// whose gender and age category match the event. Relay events take the
// registered school ids as given; registration already encodes gender and age.
// Unknown school ids resolve with an empty name.
func ResolveEntries(event *models.TrackEvent, athletes []models.Athlete, relaySchoolIDs []string, schools []models.School) []Entry {
	if event.IsRelay() {
		names := make(map[string]string, len(schools))
		for _, s := range schools {
			names[s.ID] = s.Name
		}
		entries := make([]Entry, 0, len(relaySchoolIDs))
		for _, id := range relaySchoolIDs {
			entries = append(entries, Entry{
				Entrant:  models.SchoolEntrant(id),
				Name:     names[id],
				SchoolID: id,
			})
		}
		return entries
	}

	var entries []Entry
	for i := range athletes {
		a := &athletes[i]
		if !a.EnteredIn(event.Name) || a.Gender != event.Gender || a.AgeCategory != event.AgeGroup {
			continue
		}
		entries = append(entries, Entry{
			Entrant:  models.AthleteEntrant(a.ID),
			Name:     a.Name,
			SchoolID: a.SchoolID,
		})
	}
	return entries
}
