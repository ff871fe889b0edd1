package service

import (
	"context"
	"log/slog"
	"slices"
	"strings"

	"connectrpc.com/connect"
	"github.com/google/uuid"

	"github.com/mmynk/trackmeet/internal/calculator"
	"github.com/mmynk/trackmeet/internal/models"
	"github.com/mmynk/trackmeet/internal/storage"
	"github.com/mmynk/trackmeet/pkg/meetapi"
	"github.com/mmynk/trackmeet/pkg/meetapi/meetapiconnect"
)

// maxRelayLegs is the number of runners in a relay team.
const maxRelayLegs = 4

// RosterService implements the Connect RosterService: schools, athletes,
// events and relay entries.
type RosterService struct {
	meetapiconnect.UnimplementedRosterServiceHandler
	state         *State
	referenceYear int
}

// NewRosterService creates a RosterService deriving age categories against
// referenceYear (zero means the current year).
func NewRosterService(state *State, referenceYear int) *RosterService {
	return &RosterService{state: state, referenceYear: referenceYear}
}

// CreateSchool adds a school to the roster.
func (s *RosterService) CreateSchool(ctx context.Context, req *connect.Request[meetapi.CreateSchoolRequest]) (*connect.Response[meetapi.CreateSchoolResponse], error) {
	slog.Info("CreateSchool request received", "name", req.Msg.Name)

	name := strings.TrimSpace(req.Msg.Name)
	if name == "" {
		return nil, connectError(invalidf("school name required"))
	}

	school := models.School{ID: uuid.NewString(), Name: name}
	err := s.state.Update(ctx, func(snap *models.Snapshot) ([]string, error) {
		snap.Schools = append(snap.Schools, school)
		return []string{storage.KeySchools}, nil
	})
	if err != nil {
		slog.Error("CreateSchool failed", "error", err)
		return nil, connectError(err)
	}

	slog.Info("School created", "school_id", school.ID)
	return connect.NewResponse(&meetapi.CreateSchoolResponse{School: toAPISchool(school)}), nil
}

// ListSchools returns every school in roster order.
func (s *RosterService) ListSchools(ctx context.Context, req *connect.Request[meetapi.ListSchoolsRequest]) (*connect.Response[meetapi.ListSchoolsResponse], error) {
	var schools []meetapi.School
	err := s.state.View(ctx, func(snap *models.Snapshot) error {
		schools = toAPISchools(snap.Schools)
		return nil
	})
	if err != nil {
		slog.Error("ListSchools failed", "error", err)
		return nil, connectError(err)
	}
	return connect.NewResponse(&meetapi.ListSchoolsResponse{Schools: schools}), nil
}

// DeleteSchool removes a school with its athletes, relay entries, relay teams
// and the final positions of every removed entrant.
func (s *RosterService) DeleteSchool(ctx context.Context, req *connect.Request[meetapi.DeleteSchoolRequest]) (*connect.Response[meetapi.DeleteSchoolResponse], error) {
	schoolID := req.Msg.SchoolID
	slog.Info("DeleteSchool request received", "school_id", schoolID)

	var removed int
	err := s.state.Update(ctx, func(snap *models.Snapshot) ([]string, error) {
		if snap.School(schoolID) == nil {
			return nil, notFound("school", schoolID)
		}
		snap.Schools = slices.DeleteFunc(snap.Schools, func(sc models.School) bool { return sc.ID == schoolID })

		snap.Athletes = slices.DeleteFunc(snap.Athletes, func(a models.Athlete) bool {
			if a.SchoolID != schoolID {
				return false
			}
			snap.FinalPositions.DeleteEntrant(a.ID)
			removed++
			return true
		})
		snap.FinalPositions.DeleteEntrant(schoolID)

		for eventID, schoolIDs := range snap.RelayEntries {
			snap.RelayEntries[eventID] = slices.DeleteFunc(schoolIDs, func(id string) bool { return id == schoolID })
		}
		snap.RelayTeams = slices.DeleteFunc(snap.RelayTeams, func(t models.RelayTeam) bool { return t.SchoolID == schoolID })

		return []string{
			storage.KeySchools,
			storage.KeyAthletes,
			storage.KeyRelayEntries,
			storage.KeyRelayTeams,
			storage.KeyFinalPositions,
		}, nil
	})
	if err != nil {
		slog.Error("DeleteSchool failed", "school_id", schoolID, "error", err)
		return nil, connectError(err)
	}

	slog.Info("School deleted", "school_id", schoolID, "removed_athletes", removed)
	return connect.NewResponse(&meetapi.DeleteSchoolResponse{RemovedAthletes: removed}), nil
}

// athleteCategory returns the category for an athlete born on dob. An
// explicit category wins and is flagged as overridden when it differs from
// the derived one.
func (s *RosterService) athleteCategory(dob, explicit string) (models.AgeCategory, bool, error) {
	derived, err := calculator.AgeCategoryFor(dob, s.referenceYear)
	if err != nil {
		return "", false, invalidf("%v", err)
	}
	if explicit == "" {
		return derived, false, nil
	}
	category := models.AgeCategory(explicit)
	if !category.Valid() {
		return "", false, invalidf("unknown age category %q", explicit)
	}
	return category, category != derived, nil
}

func cleanEvents(events []string) []string {
	out := make([]string, 0, len(events))
	for _, e := range events {
		e = strings.TrimSpace(e)
		if e != "" && !slices.Contains(out, e) {
			out = append(out, e)
		}
	}
	return out
}

func validateAthlete(snap *models.Snapshot, name string, gender models.Gender, schoolID string) error {
	if strings.TrimSpace(name) == "" {
		return invalidf("athlete name required")
	}
	if !gender.Valid() {
		return invalidf("gender must be M or F, got %q", gender)
	}
	if snap.School(schoolID) == nil {
		return notFound("school", schoolID)
	}
	return nil
}

// CreateAthlete adds an athlete. The age category is derived from the date
// of birth unless one is given explicitly.
func (s *RosterService) CreateAthlete(ctx context.Context, req *connect.Request[meetapi.CreateAthleteRequest]) (*connect.Response[meetapi.CreateAthleteResponse], error) {
	msg := req.Msg
	slog.Info("CreateAthlete request received",
		"name", msg.Name,
		"school_id", msg.SchoolID,
		"events", msg.Events,
	)

	var athlete models.Athlete
	err := s.state.Update(ctx, func(snap *models.Snapshot) ([]string, error) {
		gender := models.Gender(msg.Gender)
		if err := validateAthlete(snap, msg.Name, gender, msg.SchoolID); err != nil {
			return nil, err
		}
		category, overridden, err := s.athleteCategory(msg.DateOfBirth, msg.AgeCategory)
		if err != nil {
			return nil, err
		}

		athlete = models.Athlete{
			ID:                    uuid.NewString(),
			Name:                  strings.TrimSpace(msg.Name),
			DateOfBirth:           msg.DateOfBirth,
			Gender:                gender,
			AgeCategory:           category,
			AgeCategoryOverridden: overridden,
			SchoolID:              msg.SchoolID,
			Events:                cleanEvents(msg.Events),
			PersonalBests:         msg.PersonalBests,
		}
		snap.Athletes = append(snap.Athletes, athlete)
		return []string{storage.KeyAthletes}, nil
	})
	if err != nil {
		slog.Error("CreateAthlete failed", "error", err)
		return nil, connectError(err)
	}

	slog.Info("Athlete created",
		"athlete_id", athlete.ID,
		"age_category", athlete.AgeCategory,
		"overridden", athlete.AgeCategoryOverridden,
	)
	return connect.NewResponse(&meetapi.CreateAthleteResponse{Athlete: toAPIAthlete(athlete)}), nil
}

// UpdateAthlete replaces an athlete's details. Without a new age category an
// overridden category is kept and a derived one is recomputed from the date
// of birth. A category is flagged as overridden when it differs from the
// derived one.
func (s *RosterService) UpdateAthlete(ctx context.Context, req *connect.Request[meetapi.UpdateAthleteRequest]) (*connect.Response[meetapi.UpdateAthleteResponse], error) {
	in := req.Msg.Athlete
	slog.Info("UpdateAthlete request received", "athlete_id", in.ID)

	var updated models.Athlete
	err := s.state.Update(ctx, func(snap *models.Snapshot) ([]string, error) {
		athlete := snap.Athlete(in.ID)
		if athlete == nil {
			return nil, notFound("athlete", in.ID)
		}
		gender := models.Gender(in.Gender)
		if err := validateAthlete(snap, in.Name, gender, in.SchoolID); err != nil {
			return nil, err
		}

		explicit := in.AgeCategory
		if explicit == "" && athlete.AgeCategoryOverridden {
			explicit = string(athlete.AgeCategory)
		}
		category, overridden, err := s.athleteCategory(in.DateOfBirth, explicit)
		if err != nil {
			return nil, err
		}

		athlete.Name = strings.TrimSpace(in.Name)
		athlete.DateOfBirth = in.DateOfBirth
		athlete.Gender = gender
		athlete.AgeCategory = category
		athlete.AgeCategoryOverridden = overridden
		athlete.SchoolID = in.SchoolID
		athlete.Events = cleanEvents(in.Events)
		athlete.PersonalBests = in.PersonalBests
		updated = *athlete
		return []string{storage.KeyAthletes}, nil
	})
	if err != nil {
		slog.Error("UpdateAthlete failed", "athlete_id", in.ID, "error", err)
		return nil, connectError(err)
	}

	slog.Info("Athlete updated", "athlete_id", updated.ID)
	return connect.NewResponse(&meetapi.UpdateAthleteResponse{Athlete: toAPIAthlete(updated)}), nil
}

// DeleteAthlete removes an athlete, its final positions and its relay legs.
func (s *RosterService) DeleteAthlete(ctx context.Context, req *connect.Request[meetapi.DeleteAthleteRequest]) (*connect.Response[meetapi.DeleteAthleteResponse], error) {
	athleteID := req.Msg.AthleteID
	slog.Info("DeleteAthlete request received", "athlete_id", athleteID)

	err := s.state.Update(ctx, func(snap *models.Snapshot) ([]string, error) {
		if snap.Athlete(athleteID) == nil {
			return nil, notFound("athlete", athleteID)
		}
		snap.Athletes = slices.DeleteFunc(snap.Athletes, func(a models.Athlete) bool { return a.ID == athleteID })
		snap.FinalPositions.DeleteEntrant(athleteID)
		for i := range snap.RelayTeams {
			team := &snap.RelayTeams[i]
			team.Athletes = slices.DeleteFunc(team.Athletes, func(l models.RelayLeg) bool { return l.AthleteID == athleteID })
		}
		return []string{storage.KeyAthletes, storage.KeyFinalPositions, storage.KeyRelayTeams}, nil
	})
	if err != nil {
		slog.Error("DeleteAthlete failed", "athlete_id", athleteID, "error", err)
		return nil, connectError(err)
	}

	slog.Info("Athlete deleted", "athlete_id", athleteID)
	return connect.NewResponse(&meetapi.DeleteAthleteResponse{}), nil
}

// ListAthletes returns the athletes of one school, or all of them.
func (s *RosterService) ListAthletes(ctx context.Context, req *connect.Request[meetapi.ListAthletesRequest]) (*connect.Response[meetapi.ListAthletesResponse], error) {
	athletes := []meetapi.Athlete{}
	err := s.state.View(ctx, func(snap *models.Snapshot) error {
		for _, a := range snap.Athletes {
			if req.Msg.SchoolID == "" || a.SchoolID == req.Msg.SchoolID {
				athletes = append(athletes, toAPIAthlete(a))
			}
		}
		return nil
	})
	if err != nil {
		slog.Error("ListAthletes failed", "error", err)
		return nil, connectError(err)
	}
	return connect.NewResponse(&meetapi.ListAthletesResponse{Athletes: athletes}), nil
}

// CreateEvent adds an event to the programme.
func (s *RosterService) CreateEvent(ctx context.Context, req *connect.Request[meetapi.CreateEventRequest]) (*connect.Response[meetapi.CreateEventResponse], error) {
	msg := req.Msg
	slog.Info("CreateEvent request received",
		"name", msg.Name,
		"type", msg.Type,
		"gender", msg.Gender,
		"age_group", msg.AgeGroup,
	)

	event := models.TrackEvent{
		ID:        uuid.NewString(),
		Name:      strings.TrimSpace(msg.Name),
		Type:      models.EventType(msg.Type),
		Gender:    models.Gender(msg.Gender),
		AgeGroup:  models.AgeCategory(msg.AgeGroup),
		RelayType: models.RelayType(msg.RelayType),
	}
	if err := validateEvent(&event); err != nil {
		return nil, connectError(err)
	}

	err := s.state.Update(ctx, func(snap *models.Snapshot) ([]string, error) {
		snap.Events = append(snap.Events, event)
		return []string{storage.KeyTrackEvents}, nil
	})
	if err != nil {
		slog.Error("CreateEvent failed", "error", err)
		return nil, connectError(err)
	}

	slog.Info("Event created", "event_id", event.ID, "event", event.DisplayName())
	return connect.NewResponse(&meetapi.CreateEventResponse{Event: toAPIEvent(event)}), nil
}

func validateEvent(e *models.TrackEvent) error {
	switch {
	case e.Name == "":
		return invalidf("event name required")
	case !e.Type.Valid():
		return invalidf("event type must be track, field or relay, got %q", e.Type)
	case !e.Gender.Valid():
		return invalidf("gender must be M or F, got %q", e.Gender)
	case !e.AgeGroup.Valid():
		return invalidf("unknown age group %q", e.AgeGroup)
	}
	if !e.IsRelay() {
		e.RelayType = ""
		return nil
	}
	switch e.RelayType {
	case "":
		e.RelayType = models.Relay4x100
	case models.Relay4x100, models.RelayMedley:
	default:
		return invalidf("unknown relay type %q", e.RelayType)
	}
	return nil
}

// ListEvents returns the programme: age group, girls before boys, then name.
func (s *RosterService) ListEvents(ctx context.Context, req *connect.Request[meetapi.ListEventsRequest]) (*connect.Response[meetapi.ListEventsResponse], error) {
	var events []meetapi.TrackEvent
	err := s.state.View(ctx, func(snap *models.Snapshot) error {
		events = toAPIEvents(calculator.SortEvents(snap.Events))
		return nil
	})
	if err != nil {
		slog.Error("ListEvents failed", "error", err)
		return nil, connectError(err)
	}
	return connect.NewResponse(&meetapi.ListEventsResponse{Events: events}), nil
}

// removeEvents drops the events matching drop together with their heats,
// relay entries, relay teams and final positions.
func removeEvents(snap *models.Snapshot, drop func(models.TrackEvent) bool) int {
	removed := make(map[string]bool)
	snap.Events = slices.DeleteFunc(snap.Events, func(e models.TrackEvent) bool {
		if !drop(e) {
			return false
		}
		removed[e.ID] = true
		return true
	})
	for id := range removed {
		delete(snap.RelayEntries, id)
		snap.FinalPositions.DeleteEvent(id)
	}
	snap.Heats = slices.DeleteFunc(snap.Heats, func(h models.Heat) bool { return removed[h.EventID] })
	snap.RelayTeams = slices.DeleteFunc(snap.RelayTeams, func(t models.RelayTeam) bool { return removed[t.EventID] })
	return len(removed)
}

var eventKeys = []string{
	storage.KeyTrackEvents,
	storage.KeyHeats,
	storage.KeyRelayEntries,
	storage.KeyRelayTeams,
	storage.KeyFinalPositions,
}

// DeleteEvent removes an event and everything recorded for it.
func (s *RosterService) DeleteEvent(ctx context.Context, req *connect.Request[meetapi.DeleteEventRequest]) (*connect.Response[meetapi.DeleteEventResponse], error) {
	eventID := req.Msg.EventID
	slog.Info("DeleteEvent request received", "event_id", eventID)

	err := s.state.Update(ctx, func(snap *models.Snapshot) ([]string, error) {
		if snap.Event(eventID) == nil {
			return nil, notFound("event", eventID)
		}
		removeEvents(snap, func(e models.TrackEvent) bool { return e.ID == eventID })
		return eventKeys, nil
	})
	if err != nil {
		slog.Error("DeleteEvent failed", "event_id", eventID, "error", err)
		return nil, connectError(err)
	}

	slog.Info("Event deleted", "event_id", eventID)
	return connect.NewResponse(&meetapi.DeleteEventResponse{}), nil
}

// InitializeRelayEvents replaces every relay event with the standard relay
// programme. Entries and results of the old relay events are dropped.
func (s *RosterService) InitializeRelayEvents(ctx context.Context, req *connect.Request[meetapi.InitializeRelayEventsRequest]) (*connect.Response[meetapi.InitializeRelayEventsResponse], error) {
	slog.Info("InitializeRelayEvents request received")

	var created []models.TrackEvent
	err := s.state.Update(ctx, func(snap *models.Snapshot) ([]string, error) {
		removed := removeEvents(snap, func(e models.TrackEvent) bool { return e.IsRelay() })
		created = calculator.DefaultRelayEvents(uuid.NewString)
		snap.Events = append(snap.Events, created...)
		slog.Debug("Relay events replaced", "removed", removed, "created", len(created))
		return eventKeys, nil
	})
	if err != nil {
		slog.Error("InitializeRelayEvents failed", "error", err)
		return nil, connectError(err)
	}

	slog.Info("Relay events initialized", "count", len(created))
	return connect.NewResponse(&meetapi.InitializeRelayEventsResponse{
		Events: toAPIEvents(calculator.SortEvents(created)),
	}), nil
}

// SetRelayEntries replaces the schools entered in a relay event.
func (s *RosterService) SetRelayEntries(ctx context.Context, req *connect.Request[meetapi.SetRelayEntriesRequest]) (*connect.Response[meetapi.SetRelayEntriesResponse], error) {
	eventID := req.Msg.EventID
	slog.Info("SetRelayEntries request received", "event_id", eventID, "schools", len(req.Msg.SchoolIDs))

	var entries []string
	err := s.state.Update(ctx, func(snap *models.Snapshot) ([]string, error) {
		event := snap.Event(eventID)
		if event == nil {
			return nil, notFound("event", eventID)
		}
		if !event.IsRelay() {
			return nil, invalidf("event %s is not a relay", event.DisplayName())
		}
		entries = make([]string, 0, len(req.Msg.SchoolIDs))
		for _, id := range req.Msg.SchoolIDs {
			if snap.School(id) == nil {
				return nil, notFound("school", id)
			}
			if !slices.Contains(entries, id) {
				entries = append(entries, id)
			}
		}
		snap.RelayEntries[eventID] = entries
		return []string{storage.KeyRelayEntries}, nil
	})
	if err != nil {
		slog.Error("SetRelayEntries failed", "event_id", eventID, "error", err)
		return nil, connectError(err)
	}

	slog.Info("Relay entries saved", "event_id", eventID, "count", len(entries))
	return connect.NewResponse(&meetapi.SetRelayEntriesResponse{SchoolIDs: entries}), nil
}

func validateRelayTeam(snap *models.Snapshot, team *models.RelayTeam) error {
	event := snap.Event(team.EventID)
	if event == nil {
		return notFound("event", team.EventID)
	}
	if !event.IsRelay() {
		return invalidf("event %s is not a relay", event.DisplayName())
	}
	if snap.School(team.SchoolID) == nil {
		return notFound("school", team.SchoolID)
	}
	if len(team.Athletes) > maxRelayLegs {
		return invalidf("a relay team has at most %d athletes, got %d", maxRelayLegs, len(team.Athletes))
	}

	positions := make(map[int]bool, len(team.Athletes))
	athletes := make(map[string]bool, len(team.Athletes))
	for _, leg := range team.Athletes {
		if leg.Position < 1 || leg.Position > maxRelayLegs {
			return invalidf("relay leg must be between 1 and %d, got %d", maxRelayLegs, leg.Position)
		}
		if positions[leg.Position] {
			return invalidf("relay leg %d assigned twice", leg.Position)
		}
		if athletes[leg.AthleteID] {
			return invalidf("athlete %s runs more than one leg", leg.AthleteID)
		}
		a := snap.Athlete(leg.AthleteID)
		if a == nil {
			return notFound("athlete", leg.AthleteID)
		}
		if a.SchoolID != team.SchoolID {
			return invalidf("athlete %s is not from this school", a.Name)
		}
		positions[leg.Position] = true
		athletes[leg.AthleteID] = true
	}

	team.AgeGroup = event.AgeGroup
	team.Gender = event.Gender
	slices.SortFunc(team.Athletes, func(a, b models.RelayLeg) int { return a.Position - b.Position })
	return nil
}

// SaveRelayTeam stores a school's running order for a relay event, replacing
// any earlier team of that school in the event.
func (s *RosterService) SaveRelayTeam(ctx context.Context, req *connect.Request[meetapi.SaveRelayTeamRequest]) (*connect.Response[meetapi.SaveRelayTeamResponse], error) {
	team := fromAPIRelayTeam(req.Msg.Team)
	slog.Info("SaveRelayTeam request received",
		"event_id", team.EventID,
		"school_id", team.SchoolID,
		"legs", len(team.Athletes),
	)

	err := s.state.Update(ctx, func(snap *models.Snapshot) ([]string, error) {
		if err := validateRelayTeam(snap, &team); err != nil {
			return nil, err
		}
		idx := slices.IndexFunc(snap.RelayTeams, func(t models.RelayTeam) bool {
			return t.EventID == team.EventID && t.SchoolID == team.SchoolID
		})
		if idx >= 0 {
			team.ID = snap.RelayTeams[idx].ID
			snap.RelayTeams[idx] = team
		} else {
			team.ID = uuid.NewString()
			snap.RelayTeams = append(snap.RelayTeams, team)
		}
		return []string{storage.KeyRelayTeams}, nil
	})
	if err != nil {
		slog.Error("SaveRelayTeam failed", "error", err)
		return nil, connectError(err)
	}

	slog.Info("Relay team saved", "team_id", team.ID)
	return connect.NewResponse(&meetapi.SaveRelayTeamResponse{Team: toAPIRelayTeam(team)}), nil
}

// ListRelayTeams returns the relay teams of one event, or all of them.
func (s *RosterService) ListRelayTeams(ctx context.Context, req *connect.Request[meetapi.ListRelayTeamsRequest]) (*connect.Response[meetapi.ListRelayTeamsResponse], error) {
	teams := []meetapi.RelayTeam{}
	err := s.state.View(ctx, func(snap *models.Snapshot) error {
		for _, t := range snap.RelayTeams {
			if req.Msg.EventID == "" || t.EventID == req.Msg.EventID {
				teams = append(teams, toAPIRelayTeam(t))
			}
		}
		return nil
	})
	if err != nil {
		slog.Error("ListRelayTeams failed", "error", err)
		return nil, connectError(err)
	}
	return connect.NewResponse(&meetapi.ListRelayTeamsResponse{Teams: teams}), nil
}
