package service

import (
	"context"
	"testing"

	"connectrpc.com/connect"

	"github.com/mmynk/trackmeet/pkg/meetapi"
)

func TestRosterService_Athletes(t *testing.T) {
	c := setupTestServer(t)
	ctx := context.Background()

	school := c.createSchool(t, "Hillside Primary")

	t.Run("age category derived from date of birth", func(t *testing.T) {
		tests := []struct {
			dob  string
			want string
		}{
			{"2016-01-01", "U9"},
			{"2014-03-02", "U11"},
			{"2012-12-31", "U13"},
			{"2010-06-15", "U15"},
			{"2008-09-09", "Open"},
		}
		for _, tt := range tests {
			a := c.createAthlete(t, "Kid "+tt.dob, tt.dob, "M", school.ID, "100m")
			if a.AgeCategory != tt.want {
				t.Errorf("dob %s: got category %s, want %s", tt.dob, a.AgeCategory, tt.want)
			}
			if a.AgeCategoryOverridden {
				t.Errorf("dob %s: derived category flagged as overridden", tt.dob)
			}
		}
	})

	t.Run("explicit category is flagged as override", func(t *testing.T) {
		resp, err := c.roster.CreateAthlete(ctx, connect.NewRequest(&meetapi.CreateAthleteRequest{
			Name:        "Older Sibling",
			DateOfBirth: "2012-04-04",
			Gender:      "F",
			SchoolID:    school.ID,
			AgeCategory: "Open",
			Events:      []string{"800m", " 800m ", ""},
		}))
		if err != nil {
			t.Fatalf("CreateAthlete failed: %v", err)
		}
		a := resp.Msg.Athlete
		if a.AgeCategory != "Open" || !a.AgeCategoryOverridden {
			t.Errorf("got %s overridden=%v, want Open overridden=true", a.AgeCategory, a.AgeCategoryOverridden)
		}
		if len(a.Events) != 1 || a.Events[0] != "800m" {
			t.Errorf("events not cleaned: %v", a.Events)
		}
	})

	t.Run("validation", func(t *testing.T) {
		tests := []struct {
			name string
			req  *meetapi.CreateAthleteRequest
			code connect.Code
		}{
			{"missing name", &meetapi.CreateAthleteRequest{DateOfBirth: "2014-01-01", Gender: "M", SchoolID: school.ID}, connect.CodeInvalidArgument},
			{"bad gender", &meetapi.CreateAthleteRequest{Name: "X", DateOfBirth: "2014-01-01", Gender: "X", SchoolID: school.ID}, connect.CodeInvalidArgument},
			{"bad date", &meetapi.CreateAthleteRequest{Name: "X", DateOfBirth: "01/01/2014", Gender: "M", SchoolID: school.ID}, connect.CodeInvalidArgument},
			{"bad category", &meetapi.CreateAthleteRequest{Name: "X", DateOfBirth: "2014-01-01", Gender: "M", SchoolID: school.ID, AgeCategory: "U17"}, connect.CodeInvalidArgument},
			{"unknown school", &meetapi.CreateAthleteRequest{Name: "X", DateOfBirth: "2014-01-01", Gender: "M", SchoolID: "nope"}, connect.CodeNotFound},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				_, err := c.roster.CreateAthlete(ctx, connect.NewRequest(tt.req))
				wantCode(t, err, tt.code)
			})
		}
	})

	t.Run("update with same date of birth keeps category", func(t *testing.T) {
		a := c.createAthlete(t, "Mover", "2014-01-01", "M", school.ID, "100m")
		a.Name = "Mover Renamed"
		a.Events = []string{"200m"}
		a.AgeCategory = ""

		resp, err := c.roster.UpdateAthlete(ctx, connect.NewRequest(&meetapi.UpdateAthleteRequest{Athlete: a}))
		if err != nil {
			t.Fatalf("UpdateAthlete failed: %v", err)
		}
		got := resp.Msg.Athlete
		if got.Name != "Mover Renamed" || got.AgeCategory != "U11" || got.Events[0] != "200m" {
			t.Errorf("unexpected update result: %+v", got)
		}

		a.ID = "missing"
		_, err = c.roster.UpdateAthlete(ctx, connect.NewRequest(&meetapi.UpdateAthleteRequest{Athlete: a}))
		wantCode(t, err, connect.CodeNotFound)
	})

	t.Run("update recomputes derived category from new date of birth", func(t *testing.T) {
		a := c.createAthlete(t, "Late Entry", "2014-05-01", "F", school.ID, "100m")
		if a.AgeCategory != "U11" {
			t.Fatalf("got category %s, want U11", a.AgeCategory)
		}
		a.DateOfBirth = "2012-05-01"
		a.AgeCategory = ""

		resp, err := c.roster.UpdateAthlete(ctx, connect.NewRequest(&meetapi.UpdateAthleteRequest{Athlete: a}))
		if err != nil {
			t.Fatalf("UpdateAthlete failed: %v", err)
		}
		got := resp.Msg.Athlete
		if got.AgeCategory != "U13" || got.AgeCategoryOverridden {
			t.Errorf("got %s overridden=%v, want U13 overridden=false", got.AgeCategory, got.AgeCategoryOverridden)
		}
	})

	t.Run("update keeps overridden category", func(t *testing.T) {
		resp, err := c.roster.CreateAthlete(ctx, connect.NewRequest(&meetapi.CreateAthleteRequest{
			Name:        "Moved Up",
			DateOfBirth: "2014-05-01",
			Gender:      "F",
			SchoolID:    school.ID,
			AgeCategory: "U13",
			Events:      []string{"100m"},
		}))
		if err != nil {
			t.Fatalf("CreateAthlete failed: %v", err)
		}
		a := resp.Msg.Athlete
		a.DateOfBirth = "2016-05-01"
		a.AgeCategory = ""

		updated, err := c.roster.UpdateAthlete(ctx, connect.NewRequest(&meetapi.UpdateAthleteRequest{Athlete: a}))
		if err != nil {
			t.Fatalf("UpdateAthlete failed: %v", err)
		}
		got := updated.Msg.Athlete
		if got.AgeCategory != "U13" || !got.AgeCategoryOverridden {
			t.Errorf("got %s overridden=%v, want U13 overridden=true", got.AgeCategory, got.AgeCategoryOverridden)
		}
	})

	t.Run("list and delete", func(t *testing.T) {
		before, err := c.roster.ListAthletes(ctx, connect.NewRequest(&meetapi.ListAthletesRequest{SchoolID: school.ID}))
		if err != nil {
			t.Fatalf("ListAthletes failed: %v", err)
		}
		victim := before.Msg.Athletes[0]

		if _, err := c.roster.DeleteAthlete(ctx, connect.NewRequest(&meetapi.DeleteAthleteRequest{AthleteID: victim.ID})); err != nil {
			t.Fatalf("DeleteAthlete failed: %v", err)
		}
		after, _ := c.roster.ListAthletes(ctx, connect.NewRequest(&meetapi.ListAthletesRequest{}))
		if len(after.Msg.Athletes) != len(before.Msg.Athletes)-1 {
			t.Errorf("expected %d athletes, got %d", len(before.Msg.Athletes)-1, len(after.Msg.Athletes))
		}

		_, err = c.roster.DeleteAthlete(ctx, connect.NewRequest(&meetapi.DeleteAthleteRequest{AthleteID: victim.ID}))
		wantCode(t, err, connect.CodeNotFound)
	})
}

func TestRosterService_Events(t *testing.T) {
	c := setupTestServer(t)
	ctx := context.Background()

	c.createEvent(t, "200m", "track", "M", "Open")
	c.createEvent(t, "100m", "track", "M", "U9")
	c.createEvent(t, "Long Jump", "field", "F", "U9")
	c.createEvent(t, "100m", "track", "F", "U9")

	resp, err := c.roster.ListEvents(ctx, connect.NewRequest(&meetapi.ListEventsRequest{}))
	if err != nil {
		t.Fatalf("ListEvents failed: %v", err)
	}
	var got []string
	for _, e := range resp.Msg.Events {
		got = append(got, e.DisplayName)
	}
	want := []string{"Girls U9 - 100m", "Girls U9 - Long Jump", "Boys U9 - 100m", "Boys Open - 200m"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("event %d: got %q, want %q", i, got[i], want[i])
		}
	}

	_, err = c.roster.CreateEvent(ctx, connect.NewRequest(&meetapi.CreateEventRequest{Name: "Hurdles", Type: "swim", Gender: "M", AgeGroup: "U9"}))
	wantCode(t, err, connect.CodeInvalidArgument)

	t.Run("relay events", func(t *testing.T) {
		created, err := c.roster.InitializeRelayEvents(ctx, connect.NewRequest(&meetapi.InitializeRelayEventsRequest{}))
		if err != nil {
			t.Fatalf("InitializeRelayEvents failed: %v", err)
		}
		if len(created.Msg.Events) != 16 {
			t.Errorf("expected 16 relay events, got %d", len(created.Msg.Events))
		}

		// A second run replaces rather than duplicates.
		if _, err := c.roster.InitializeRelayEvents(ctx, connect.NewRequest(&meetapi.InitializeRelayEventsRequest{})); err != nil {
			t.Fatalf("InitializeRelayEvents failed: %v", err)
		}
		all, _ := c.roster.ListEvents(ctx, connect.NewRequest(&meetapi.ListEventsRequest{}))
		if len(all.Msg.Events) != 4+16 {
			t.Errorf("expected 20 events, got %d", len(all.Msg.Events))
		}
	})
}

func TestRosterService_RelayTeams(t *testing.T) {
	c := setupTestServer(t)
	ctx := context.Background()

	school := c.createSchool(t, "Hillside")
	other := c.createSchool(t, "Riverside")
	relay := c.createEvent(t, "4x100m Relay", "relay", "F", "U11")
	if relay.RelayType != "4x100" {
		t.Errorf("expected default relay type 4x100, got %q", relay.RelayType)
	}

	var legs []meetapi.RelayLeg
	for i, name := range []string{"A", "B", "C", "D"} {
		a := c.createAthlete(t, name, "2014-01-01", "F", school.ID)
		legs = append(legs, meetapi.RelayLeg{AthleteID: a.ID, Position: 4 - i})
	}
	outsider := c.createAthlete(t, "E", "2014-01-01", "F", other.ID)

	resp, err := c.roster.SaveRelayTeam(ctx, connect.NewRequest(&meetapi.SaveRelayTeamRequest{Team: meetapi.RelayTeam{
		SchoolID: school.ID,
		EventID:  relay.ID,
		Athletes: legs,
	}}))
	if err != nil {
		t.Fatalf("SaveRelayTeam failed: %v", err)
	}
	team := resp.Msg.Team
	if team.ID == "" || team.Gender != "F" || team.AgeGroup != "U11" {
		t.Errorf("unexpected team: %+v", team)
	}
	for i, leg := range team.Athletes {
		if leg.Position != i+1 {
			t.Errorf("legs not in running order: %+v", team.Athletes)
			break
		}
	}

	invalid := []struct {
		name string
		legs []meetapi.RelayLeg
		code connect.Code
	}{
		{"five runners", append(append([]meetapi.RelayLeg{}, legs...), meetapi.RelayLeg{AthleteID: outsider.ID, Position: 1}), connect.CodeInvalidArgument},
		{"leg out of range", []meetapi.RelayLeg{{AthleteID: legs[0].AthleteID, Position: 5}}, connect.CodeInvalidArgument},
		{"duplicate leg", []meetapi.RelayLeg{{AthleteID: legs[0].AthleteID, Position: 1}, {AthleteID: legs[1].AthleteID, Position: 1}}, connect.CodeInvalidArgument},
		{"other school", []meetapi.RelayLeg{{AthleteID: outsider.ID, Position: 1}}, connect.CodeInvalidArgument},
		{"unknown athlete", []meetapi.RelayLeg{{AthleteID: "ghost", Position: 1}}, connect.CodeNotFound},
	}
	for _, tt := range invalid {
		t.Run(tt.name, func(t *testing.T) {
			_, err := c.roster.SaveRelayTeam(ctx, connect.NewRequest(&meetapi.SaveRelayTeamRequest{Team: meetapi.RelayTeam{
				SchoolID: school.ID,
				EventID:  relay.ID,
				Athletes: tt.legs,
			}}))
			wantCode(t, err, tt.code)
		})
	}

	// Saving again replaces the school's team.
	_, err = c.roster.SaveRelayTeam(ctx, connect.NewRequest(&meetapi.SaveRelayTeamRequest{Team: meetapi.RelayTeam{
		SchoolID: school.ID,
		EventID:  relay.ID,
		Athletes: legs[:2],
	}}))
	if err != nil {
		t.Fatalf("SaveRelayTeam failed: %v", err)
	}
	teams, _ := c.roster.ListRelayTeams(ctx, connect.NewRequest(&meetapi.ListRelayTeamsRequest{EventID: relay.ID}))
	if len(teams.Msg.Teams) != 1 || teams.Msg.Teams[0].ID != team.ID || len(teams.Msg.Teams[0].Athletes) != 2 {
		t.Errorf("expected the team to be replaced, got %+v", teams.Msg.Teams)
	}

	// Deleting the school drops its team.
	if _, err := c.roster.DeleteSchool(ctx, connect.NewRequest(&meetapi.DeleteSchoolRequest{SchoolID: school.ID})); err != nil {
		t.Fatalf("DeleteSchool failed: %v", err)
	}
	teams, _ = c.roster.ListRelayTeams(ctx, connect.NewRequest(&meetapi.ListRelayTeamsRequest{}))
	if len(teams.Msg.Teams) != 0 {
		t.Errorf("expected no teams after school deletion, got %d", len(teams.Msg.Teams))
	}
}
