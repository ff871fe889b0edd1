package service

import (
	"context"
	"testing"

	"connectrpc.com/connect"

	"github.com/mmynk/trackmeet/internal/calculator"
	"github.com/mmynk/trackmeet/pkg/meetapi"
)

func TestHeatService_GenerateAndScore(t *testing.T) {
	c := setupTestServer(t)
	ctx := context.Background()

	event, schoolOf := c.seedField(t, 16)

	gen, err := c.heats.GenerateHeats(ctx, connect.NewRequest(&meetapi.GenerateHeatsRequest{EventID: event.ID}))
	if err != nil {
		t.Fatalf("GenerateHeats failed: %v", err)
	}
	if gen.Msg.DirectFinals {
		t.Fatal("16 entrants should run qualifying heats")
	}
	if len(gen.Msg.Heats) != 2 {
		t.Fatalf("expected 2 heats, got %d", len(gen.Msg.Heats))
	}

	seen := make(map[string]bool)
	for _, h := range gen.Msg.Heats {
		if len(h.Lanes) != 8 {
			t.Errorf("heat %d has %d lanes, want 8", h.HeatNumber, len(h.Lanes))
		}
		perSchool := make(map[string]int)
		for _, l := range h.Lanes {
			if seen[l.Entrant.ID] {
				t.Errorf("entrant %s placed twice", l.Entrant.ID)
			}
			seen[l.Entrant.ID] = true
			perSchool[schoolOf[l.Entrant.ID]]++
			if l.Entrant.Name == "" {
				t.Errorf("lane %d entrant has no name", l.Lane)
			}
		}
		for school, n := range perSchool {
			if n != 4 {
				t.Errorf("heat %d has %d runners from %s, want 4", h.HeatNumber, n, school)
			}
		}
	}
	if len(seen) != 16 {
		t.Errorf("expected all 16 entrants placed, got %d", len(seen))
	}

	t.Run("regenerating requires confirmation", func(t *testing.T) {
		_, err := c.heats.GenerateHeats(ctx, connect.NewRequest(&meetapi.GenerateHeatsRequest{EventID: event.ID}))
		wantCode(t, err, connect.CodeFailedPrecondition)

		again, err := c.heats.GenerateHeats(ctx, connect.NewRequest(&meetapi.GenerateHeatsRequest{EventID: event.ID, Confirm: true}))
		if err != nil {
			t.Fatalf("confirmed GenerateHeats failed: %v", err)
		}
		gen = again
	})

	// Record heat positions in lane order.
	for _, h := range gen.Msg.Heats {
		for _, l := range h.Lanes {
			resp, err := c.heats.RecordHeatPosition(ctx, connect.NewRequest(&meetapi.RecordHeatPositionRequest{
				HeatID: h.ID, Lane: l.Lane, Position: l.Lane,
			}))
			if err != nil {
				t.Fatalf("RecordHeatPosition failed: %v", err)
			}
			if l.Lane == len(h.Lanes) && resp.Msg.Heat.Status != "completed" {
				t.Errorf("heat %d should be completed, got %s", h.HeatNumber, resp.Msg.Heat.Status)
			}
		}
	}

	finalists, err := c.finals.ListFinalists(ctx, connect.NewRequest(&meetapi.ListFinalistsRequest{EventID: event.ID}))
	if err != nil {
		t.Fatalf("ListFinalists failed: %v", err)
	}
	if len(finalists.Msg.Finalists) != 8 {
		t.Fatalf("expected 8 finalists, got %d", len(finalists.Msg.Finalists))
	}
	lanes := make(map[int]bool)
	for _, f := range finalists.Msg.Finalists {
		if f.HeatPosition > 4 {
			t.Errorf("finalist qualified from heat position %d", f.HeatPosition)
		}
		lanes[f.Lane] = true
	}
	if len(lanes) != 8 {
		t.Errorf("finalists share lanes: %+v", finalists.Msg.Finalists)
	}

	// Place the finalists in lane order and check the points table.
	wantPoints := make(map[string]int)
	for i, f := range finalists.Msg.Finalists {
		pos := i + 1
		if _, err := c.finals.SetFinalPosition(ctx, connect.NewRequest(&meetapi.SetFinalPositionRequest{
			EventID: event.ID, EntrantID: f.Entrant.ID, Position: pos,
		})); err != nil {
			t.Fatalf("SetFinalPosition failed: %v", err)
		}
		wantPoints[schoolOf[f.Entrant.ID]] += calculator.IndividualPoints(pos)
	}

	points, err := c.standings.GetTeamPoints(ctx, connect.NewRequest(&meetapi.GetTeamPointsRequest{}))
	if err != nil {
		t.Fatalf("GetTeamPoints failed: %v", err)
	}
	total := 0
	for _, s := range points.Msg.Standings {
		if s.TotalPoints != wantPoints[s.SchoolID] {
			t.Errorf("%s: got %d points, want %d", s.SchoolName, s.TotalPoints, wantPoints[s.SchoolID])
		}
		total += s.TotalPoints
	}
	if total != 37 {
		t.Errorf("expected 37 points awarded, got %d", total)
	}
	if len(points.Msg.Warnings) != 0 {
		t.Errorf("unexpected warnings: %+v", points.Msg.Warnings)
	}

	t.Run("regenerating clears final positions", func(t *testing.T) {
		if _, err := c.heats.GenerateHeats(ctx, connect.NewRequest(&meetapi.GenerateHeatsRequest{EventID: event.ID, Confirm: true})); err != nil {
			t.Fatalf("GenerateHeats failed: %v", err)
		}
		points, err := c.standings.GetTeamPoints(ctx, connect.NewRequest(&meetapi.GetTeamPointsRequest{}))
		if err != nil {
			t.Fatalf("GetTeamPoints failed: %v", err)
		}
		if len(points.Msg.Standings) != 0 {
			t.Errorf("expected empty standings, got %+v", points.Msg.Standings)
		}
	})
}

func TestHeatService_DirectFinals(t *testing.T) {
	c := setupTestServer(t)
	ctx := context.Background()

	event, _ := c.seedField(t, 5)

	gen, err := c.heats.GenerateHeats(ctx, connect.NewRequest(&meetapi.GenerateHeatsRequest{EventID: event.ID}))
	if err != nil {
		t.Fatalf("GenerateHeats failed: %v", err)
	}
	if !gen.Msg.DirectFinals || len(gen.Msg.Heats) != 1 || !gen.Msg.Heats[0].IsFinals {
		t.Fatalf("expected a single finals heat, got %+v", gen.Msg)
	}
	heat := gen.Msg.Heats[0]

	finalists, err := c.finals.ListFinalists(ctx, connect.NewRequest(&meetapi.ListFinalistsRequest{EventID: event.ID}))
	if err != nil {
		t.Fatalf("ListFinalists failed: %v", err)
	}
	if len(finalists.Msg.Finalists) != 5 {
		t.Fatalf("expected 5 finalists, got %d", len(finalists.Msg.Finalists))
	}
	for _, f := range finalists.Msg.Finalists {
		var lane int
		for _, l := range heat.Lanes {
			if l.Entrant.ID == f.Entrant.ID {
				lane = l.Lane
			}
		}
		if f.Lane != lane {
			t.Errorf("direct finalist %s moved from lane %d to %d", f.Entrant.Name, lane, f.Lane)
		}
	}

	t.Run("final position validation", func(t *testing.T) {
		entrant := finalists.Msg.Finalists[0].Entrant.ID
		for _, pos := range []int{-1, 9} {
			_, err := c.finals.SetFinalPosition(ctx, connect.NewRequest(&meetapi.SetFinalPositionRequest{
				EventID: event.ID, EntrantID: entrant, Position: pos,
			}))
			wantCode(t, err, connect.CodeInvalidArgument)
		}

		_, err := c.finals.SetFinalPosition(ctx, connect.NewRequest(&meetapi.SetFinalPositionRequest{
			EventID: "nope", EntrantID: entrant, Position: 1,
		}))
		wantCode(t, err, connect.CodeNotFound)

		set := func(pos int) {
			t.Helper()
			if _, err := c.finals.SetFinalPosition(ctx, connect.NewRequest(&meetapi.SetFinalPositionRequest{
				EventID: event.ID, EntrantID: entrant, Position: pos,
			})); err != nil {
				t.Fatalf("SetFinalPosition(%d) failed: %v", pos, err)
			}
		}
		set(3)
		list, _ := c.finals.ListFinalists(ctx, connect.NewRequest(&meetapi.ListFinalistsRequest{EventID: event.ID}))
		if list.Msg.Finalists[0].Entrant.ID != entrant || list.Msg.Finalists[0].FinalPosition != 3 {
			t.Errorf("placed finalist should lead the results: %+v", list.Msg.Finalists[0])
		}

		set(0)
		list, _ = c.finals.ListFinalists(ctx, connect.NewRequest(&meetapi.ListFinalistsRequest{EventID: event.ID}))
		for _, f := range list.Msg.Finalists {
			if f.FinalPosition != 0 {
				t.Errorf("expected position cleared, got %+v", f)
			}
		}
	})
}

func TestHeatService_EditHeats(t *testing.T) {
	c := setupTestServer(t)
	ctx := context.Background()

	event, _ := c.seedField(t, 9)
	latecomer := c.createAthlete(t, "Latecomer", "2014-02-02", "F", c.createSchool(t, "Lakeside").ID)

	gen, err := c.heats.GenerateHeats(ctx, connect.NewRequest(&meetapi.GenerateHeatsRequest{EventID: event.ID}))
	if err != nil {
		t.Fatalf("GenerateHeats failed: %v", err)
	}
	if len(gen.Msg.Heats) != 2 {
		t.Fatalf("expected 2 heats, got %d", len(gen.Msg.Heats))
	}
	small := gen.Msg.Heats[0]
	if len(gen.Msg.Heats[1].Lanes) < len(small.Lanes) {
		small = gen.Msg.Heats[1]
	}
	other := gen.Msg.Heats[0]
	if other.ID == small.ID {
		other = gen.Msg.Heats[1]
	}

	added, err := c.heats.AddEntrant(ctx, connect.NewRequest(&meetapi.AddEntrantRequest{HeatID: small.ID, EntrantID: latecomer.ID}))
	if err != nil {
		t.Fatalf("AddEntrant failed: %v", err)
	}
	if len(added.Msg.Heat.Lanes) != len(small.Lanes)+1 {
		t.Errorf("expected %d lanes, got %d", len(small.Lanes)+1, len(added.Msg.Heat.Lanes))
	}

	_, err = c.heats.AddEntrant(ctx, connect.NewRequest(&meetapi.AddEntrantRequest{HeatID: other.ID, EntrantID: latecomer.ID}))
	wantCode(t, err, connect.CodeInvalidArgument)

	_, err = c.heats.AddEntrant(ctx, connect.NewRequest(&meetapi.AddEntrantRequest{HeatID: "missing", EntrantID: latecomer.ID}))
	wantCode(t, err, connect.CodeNotFound)

	_, err = c.heats.RecordHeatPosition(ctx, connect.NewRequest(&meetapi.RecordHeatPositionRequest{HeatID: small.ID, Lane: 1, Position: 9}))
	wantCode(t, err, connect.CodeInvalidArgument)

	removed, err := c.heats.RemoveEntrant(ctx, connect.NewRequest(&meetapi.RemoveEntrantRequest{HeatID: small.ID, EntrantID: latecomer.ID}))
	if err != nil {
		t.Fatalf("RemoveEntrant failed: %v", err)
	}
	if len(removed.Msg.Heat.Lanes) != len(small.Lanes) {
		t.Errorf("expected %d lanes after removal, got %d", len(small.Lanes), len(removed.Msg.Heat.Lanes))
	}

	_, err = c.heats.RemoveEntrant(ctx, connect.NewRequest(&meetapi.RemoveEntrantRequest{HeatID: small.ID, EntrantID: latecomer.ID}))
	wantCode(t, err, connect.CodeNotFound)

	list, err := c.heats.ListHeats(ctx, connect.NewRequest(&meetapi.ListHeatsRequest{EventID: event.ID}))
	if err != nil {
		t.Fatalf("ListHeats failed: %v", err)
	}
	if len(list.Msg.Heats) != 2 || list.Msg.Heats[0].HeatNumber != 1 || list.Msg.Heats[1].HeatNumber != 2 {
		t.Errorf("unexpected heats: %+v", list.Msg.Heats)
	}
}

func TestHeatService_Relay(t *testing.T) {
	c := setupTestServer(t)
	ctx := context.Background()

	hill := c.createSchool(t, "Hillside")
	river := c.createSchool(t, "Riverside")
	lake := c.createSchool(t, "Lakeside")

	created, err := c.roster.InitializeRelayEvents(ctx, connect.NewRequest(&meetapi.InitializeRelayEventsRequest{}))
	if err != nil {
		t.Fatalf("InitializeRelayEvents failed: %v", err)
	}
	var relay meetapi.TrackEvent
	for _, e := range created.Msg.Events {
		if e.Name == "4x100m Relay" && e.Gender == "M" && e.AgeGroup == "U11" {
			relay = e
		}
	}
	if relay.ID == "" {
		t.Fatal("boys U11 4x100m relay not created")
	}

	if _, err := c.roster.SetRelayEntries(ctx, connect.NewRequest(&meetapi.SetRelayEntriesRequest{
		EventID: relay.ID, SchoolIDs: []string{hill.ID, river.ID, hill.ID},
	})); err != nil {
		t.Fatalf("SetRelayEntries failed: %v", err)
	}

	gen, err := c.heats.GenerateHeats(ctx, connect.NewRequest(&meetapi.GenerateHeatsRequest{EventID: relay.ID}))
	if err != nil {
		t.Fatalf("GenerateHeats failed: %v", err)
	}
	if !gen.Msg.DirectFinals || len(gen.Msg.Heats[0].Lanes) != 2 {
		t.Fatalf("expected a 2-lane direct final, got %+v", gen.Msg.Heats)
	}
	finalsHeat := gen.Msg.Heats[0]
	if finalsHeat.Lanes[0].Entrant.Kind != "school" || finalsHeat.Lanes[0].Entrant.Name != "Hillside" {
		t.Errorf("unexpected relay entrant: %+v", finalsHeat.Lanes[0].Entrant)
	}

	// Adding a school to the heat also enters it in the relay.
	if _, err := c.heats.AddEntrant(ctx, connect.NewRequest(&meetapi.AddEntrantRequest{HeatID: finalsHeat.ID, EntrantID: lake.ID})); err != nil {
		t.Fatalf("AddEntrant failed: %v", err)
	}
	regen, err := c.heats.GenerateHeats(ctx, connect.NewRequest(&meetapi.GenerateHeatsRequest{EventID: relay.ID, Confirm: true}))
	if err != nil {
		t.Fatalf("GenerateHeats failed: %v", err)
	}
	if n := len(regen.Msg.Heats[0].Lanes); n != 3 {
		t.Errorf("expected 3 relay lanes after AddEntrant, got %d", n)
	}

	for id, pos := range map[string]int{hill.ID: 1, river.ID: 2} {
		if _, err := c.finals.SetFinalPosition(ctx, connect.NewRequest(&meetapi.SetFinalPositionRequest{
			EventID: relay.ID, EntrantID: id, Position: pos,
		})); err != nil {
			t.Fatalf("SetFinalPosition failed: %v", err)
		}
	}

	points, err := c.standings.GetTeamPoints(ctx, connect.NewRequest(&meetapi.GetTeamPointsRequest{}))
	if err != nil {
		t.Fatalf("GetTeamPoints failed: %v", err)
	}
	if len(points.Msg.Standings) != 2 {
		t.Fatalf("expected 2 scoring schools, got %+v", points.Msg.Standings)
	}
	if s := points.Msg.Standings[0]; s.SchoolID != hill.ID || s.TotalPoints != 12 {
		t.Errorf("expected Hillside on 12, got %s on %d", s.SchoolName, s.TotalPoints)
	}
	if s := points.Msg.Standings[1]; s.SchoolID != river.ID || s.TotalPoints != 10 {
		t.Errorf("expected Riverside on 10, got %s on %d", s.SchoolName, s.TotalPoints)
	}

	report, err := c.finals.SchoolFinalistsReport(ctx, connect.NewRequest(&meetapi.SchoolFinalistsReportRequest{}))
	if err != nil {
		t.Fatalf("SchoolFinalistsReport failed: %v", err)
	}
	if len(report.Msg.Schools) != 3 {
		t.Errorf("expected 3 schools in the finalists report, got %d", len(report.Msg.Schools))
	}

	// Removing a school from the heat withdraws it from the relay.
	if _, err := c.heats.RemoveEntrant(ctx, connect.NewRequest(&meetapi.RemoveEntrantRequest{HeatID: finalsHeat.ID, EntrantID: lake.ID})); err != nil {
		t.Fatalf("RemoveEntrant failed: %v", err)
	}
	regen, err = c.heats.GenerateHeats(ctx, connect.NewRequest(&meetapi.GenerateHeatsRequest{EventID: relay.ID, Confirm: true}))
	if err != nil {
		t.Fatalf("GenerateHeats failed: %v", err)
	}
	if n := len(regen.Msg.Heats[0].Lanes); n != 2 {
		t.Errorf("expected 2 relay lanes after RemoveEntrant, got %d", n)
	}
}
