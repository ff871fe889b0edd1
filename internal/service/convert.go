package service

import (
	"github.com/mmynk/trackmeet/internal/calculator"
	"github.com/mmynk/trackmeet/internal/models"
	"github.com/mmynk/trackmeet/pkg/meetapi"
)

func toAPISchool(s models.School) meetapi.School {
	return meetapi.School{ID: s.ID, Name: s.Name}
}

func toAPISchools(schools []models.School) []meetapi.School {
	out := make([]meetapi.School, len(schools))
	for i, s := range schools {
		out[i] = toAPISchool(s)
	}
	return out
}

func toAPIAthlete(a models.Athlete) meetapi.Athlete {
	return meetapi.Athlete{
		ID:                    a.ID,
		Name:                  a.Name,
		DateOfBirth:           a.DateOfBirth,
		Gender:                string(a.Gender),
		AgeCategory:           string(a.AgeCategory),
		AgeCategoryOverridden: a.AgeCategoryOverridden,
		SchoolID:              a.SchoolID,
		Events:                a.Events,
		PersonalBests:         a.PersonalBests,
	}
}

func toAPIEvent(e models.TrackEvent) meetapi.TrackEvent {
	return meetapi.TrackEvent{
		ID:          e.ID,
		Name:        e.Name,
		DisplayName: e.DisplayName(),
		Type:        string(e.Type),
		Gender:      string(e.Gender),
		AgeGroup:    string(e.AgeGroup),
		RelayType:   string(e.RelayType),
	}
}

func toAPIEvents(events []models.TrackEvent) []meetapi.TrackEvent {
	out := make([]meetapi.TrackEvent, len(events))
	for i, e := range events {
		out[i] = toAPIEvent(e)
	}
	return out
}

// toAPIEntrant resolves the entrant's display name from snap.
func toAPIEntrant(snap *models.Snapshot, ref models.EntrantRef) meetapi.Entrant {
	entrant := meetapi.Entrant{Kind: string(ref.Kind), ID: ref.ID}
	switch ref.Kind {
	case models.EntrantAthlete:
		if a := snap.Athlete(ref.ID); a != nil {
			entrant.Name = a.Name
		}
	case models.EntrantSchool:
		if s := snap.School(ref.ID); s != nil {
			entrant.Name = s.Name
		}
	}
	return entrant
}

func toAPIHeat(snap *models.Snapshot, h models.Heat) meetapi.Heat {
	lanes := make([]meetapi.Lane, len(h.Lanes))
	for i, l := range h.Lanes {
		lanes[i] = meetapi.Lane{
			Lane:     l.Lane,
			Entrant:  toAPIEntrant(snap, l.Entrant),
			Position: l.Position,
		}
	}
	return meetapi.Heat{
		ID:              h.ID,
		EventID:         h.EventID,
		HeatNumber:      h.HeatNumber,
		Lanes:           lanes,
		Status:          string(h.Status),
		IsFinals:        h.IsFinals,
		IsDistanceEvent: h.IsDistanceEvent,
	}
}

func toAPIHeats(snap *models.Snapshot, heats []models.Heat) []meetapi.Heat {
	out := make([]meetapi.Heat, len(heats))
	for i, h := range heats {
		out[i] = toAPIHeat(snap, h)
	}
	return out
}

func toAPIRelayTeam(t models.RelayTeam) meetapi.RelayTeam {
	legs := make([]meetapi.RelayLeg, len(t.Athletes))
	for i, l := range t.Athletes {
		legs[i] = meetapi.RelayLeg{AthleteID: l.AthleteID, Position: l.Position}
	}
	return meetapi.RelayTeam{
		ID:       t.ID,
		SchoolID: t.SchoolID,
		EventID:  t.EventID,
		AgeGroup: string(t.AgeGroup),
		Gender:   string(t.Gender),
		Athletes: legs,
	}
}

func fromAPIRelayTeam(t meetapi.RelayTeam) models.RelayTeam {
	legs := make([]models.RelayLeg, len(t.Athletes))
	for i, l := range t.Athletes {
		legs[i] = models.RelayLeg{AthleteID: l.AthleteID, Position: l.Position}
	}
	return models.RelayTeam{
		ID:       t.ID,
		SchoolID: t.SchoolID,
		EventID:  t.EventID,
		AgeGroup: models.AgeCategory(t.AgeGroup),
		Gender:   models.Gender(t.Gender),
		Athletes: legs,
	}
}

func toAPIFinalists(snap *models.Snapshot, finalists []calculator.Finalist) []meetapi.Finalist {
	out := make([]meetapi.Finalist, len(finalists))
	for i, f := range finalists {
		out[i] = meetapi.Finalist{
			Lane:          f.Lane,
			Entrant:       toAPIEntrant(snap, f.Entrant),
			HeatNumber:    f.HeatNumber,
			HeatPosition:  f.HeatPosition,
			FinalPosition: f.FinalPosition,
		}
	}
	return out
}

func toAPIStandings(standings []calculator.TeamStanding) []meetapi.TeamStanding {
	out := make([]meetapi.TeamStanding, len(standings))
	for i, s := range standings {
		breakdown := make([]meetapi.PointAward, len(s.Breakdown))
		for j, a := range s.Breakdown {
			breakdown[j] = meetapi.PointAward{
				EventID:     a.EventID,
				EventName:   a.EventName,
				EventType:   string(a.EventType),
				Gender:      string(a.Gender),
				AgeGroup:    string(a.AgeGroup),
				EntrantID:   a.EntrantID,
				AthleteName: a.AthleteName,
				Position:    a.Position,
				Points:      a.Points,
			}
		}
		out[i] = meetapi.TeamStanding{
			SchoolID:    s.SchoolID,
			SchoolName:  s.SchoolName,
			TotalPoints: s.TotalPoints,
			Breakdown:   breakdown,
		}
	}
	return out
}

func toAPIWarnings(warnings []calculator.Warning) []meetapi.Warning {
	if len(warnings) == 0 {
		return nil
	}
	out := make([]meetapi.Warning, len(warnings))
	for i, w := range warnings {
		out[i] = meetapi.Warning{
			EventID:   w.EventID,
			EntrantID: w.EntrantID,
			Position:  w.Position,
			Message:   w.Message,
		}
	}
	return out
}

func toAPISchoolFinalists(report []calculator.SchoolFinalists) []meetapi.SchoolFinalists {
	out := make([]meetapi.SchoolFinalists, len(report))
	for i, s := range report {
		entries := make([]meetapi.FinalistEntry, len(s.Finalists))
		for j, f := range s.Finalists {
			entries[j] = meetapi.FinalistEntry{
				EventID:       f.EventID,
				EventName:     f.EventName,
				EventType:     string(f.EventType),
				AgeGroup:      string(f.AgeGroup),
				Gender:        string(f.Gender),
				AthleteName:   f.AthleteName,
				Lane:          f.Lane,
				FinalPosition: f.FinalPosition,
			}
		}
		out[i] = meetapi.SchoolFinalists{SchoolID: s.SchoolID, SchoolName: s.SchoolName, Finalists: entries}
	}
	return out
}
