package calculator

import (
	"github.com/mmynk/trackmeet/internal/models"
)

// FinalistEntry is one final a school has an entrant in.
type FinalistEntry struct {
	EventID   string
	EventName string
	EventType models.EventType
	AgeGroup  models.AgeCategory
	Gender    models.Gender

	// AthleteName is empty for relays.
	AthleteName string

	Lane          int
	FinalPosition int
}

// SchoolFinalists groups a school's finalists across the meet.
type SchoolFinalists struct {
	SchoolID   string
	SchoolName string
	Finalists  []FinalistEntry
}

// SchoolFinalistsReport lists, per school, every final it has an entrant in.
// Events are walked in programme order. Schools without finalists are omitted.
func SchoolFinalistsReport(events []models.TrackEvent, heats []models.Heat, athletes []models.Athlete, schools []models.School, ledger models.FinalPositions) []SchoolFinalists {
	athletesByID := make(map[string]*models.Athlete, len(athletes))
	for i := range athletes {
		athletesByID[athletes[i].ID] = &athletes[i]
	}
	bySchool := make(map[string][]FinalistEntry, len(schools))

	for _, event := range SortEvents(events) {
		for _, f := range SeedFinalists(event.ID, heats, ledger) {
			entry := FinalistEntry{
				EventID:       event.ID,
				EventName:     event.Name,
				EventType:     event.Type,
				AgeGroup:      event.AgeGroup,
				Gender:        event.Gender,
				Lane:          f.Lane,
				FinalPosition: f.FinalPosition,
			}
			schoolID := f.Entrant.ID
			if !event.IsRelay() {
				athlete, ok := athletesByID[f.Entrant.ID]
				if !ok {
					continue
				}
				schoolID = athlete.SchoolID
				entry.AthleteName = athlete.Name
			}
			bySchool[schoolID] = append(bySchool[schoolID], entry)
		}
	}

	var report []SchoolFinalists
	for _, s := range schools {
		if finalists := bySchool[s.ID]; len(finalists) > 0 {
			report = append(report, SchoolFinalists{SchoolID: s.ID, SchoolName: s.Name, Finalists: finalists})
		}
	}
	return report
}
