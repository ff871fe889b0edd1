package sqlite

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/mmynk/trackmeet/internal/models"
	"github.com/mmynk/trackmeet/internal/storage"
)

func newTestStore(t *testing.T) (*SQLiteStore, string) {
	t.Helper()

	// Create temp directory for test database
	tempDir, err := os.MkdirTemp("", "trackmeet-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	t.Cleanup(func() { os.RemoveAll(tempDir) })

	dbPath := filepath.Join(tempDir, "nested", "test.db")
	store, err := New(dbPath)
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	return store, dbPath
}

func TestSQLiteStore(t *testing.T) {
	store, _ := newTestStore(t)
	defer store.Close()

	ctx := context.Background()

	t.Run("Read of unwritten key returns nil", func(t *testing.T) {
		got, err := store.Read(ctx, storage.KeySchools)
		if err != nil {
			t.Fatalf("Read failed: %v", err)
		}
		if got != nil {
			t.Errorf("Expected nil, got %q", got)
		}
	})

	t.Run("Write then Read", func(t *testing.T) {
		if err := store.Write(ctx, storage.KeyMeetName, []byte(`"Spring Meet"`)); err != nil {
			t.Fatalf("Write failed: %v", err)
		}
		got, err := store.Read(ctx, storage.KeyMeetName)
		if err != nil {
			t.Fatalf("Read failed: %v", err)
		}
		if string(got) != `"Spring Meet"` {
			t.Errorf("Read = %s, want %q", got, `"Spring Meet"`)
		}
	})

	t.Run("Write replaces previous value", func(t *testing.T) {
		if err := store.Write(ctx, storage.KeyMeetName, []byte(`"Autumn Meet"`)); err != nil {
			t.Fatalf("Write failed: %v", err)
		}
		got, _ := store.Read(ctx, storage.KeyMeetName)
		if string(got) != `"Autumn Meet"` {
			t.Errorf("Read = %s, want %q", got, `"Autumn Meet"`)
		}
	})

	t.Run("WriteSlices stores every key", func(t *testing.T) {
		values := map[string][]byte{
			storage.KeyHeats:          []byte(`[]`),
			storage.KeyFinalPositions: []byte(`[{"eventId":"e1","entrantId":"a1","position":1}]`),
		}
		if err := store.WriteSlices(ctx, values); err != nil {
			t.Fatalf("WriteSlices failed: %v", err)
		}
		for key, want := range values {
			got, err := store.Read(ctx, key)
			if err != nil {
				t.Fatalf("Read(%s) failed: %v", key, err)
			}
			if string(got) != string(want) {
				t.Errorf("Read(%s) = %s, want %s", key, got, want)
			}
		}
	})

	t.Run("WriteSlices with cancelled context writes nothing", func(t *testing.T) {
		cancelled, cancel := context.WithCancel(ctx)
		cancel()
		err := store.WriteSlices(cancelled, map[string][]byte{
			storage.KeyHeats:   []byte(`[{"id":"x"}]`),
			storage.KeySchools: []byte(`[{"id":"s"}]`),
		})
		if err == nil {
			t.Fatal("Expected error for cancelled context")
		}
		got, _ := store.Read(ctx, storage.KeyHeats)
		if string(got) != `[]` {
			t.Errorf("heats changed to %s", got)
		}
		got, _ = store.Read(ctx, storage.KeySchools)
		if got != nil {
			t.Errorf("schools written: %s", got)
		}
	})

	t.Run("Clear deletes keys", func(t *testing.T) {
		if err := store.Clear(ctx, storage.KeyHeats, storage.KeyFinalPositions, "unknown"); err != nil {
			t.Fatalf("Clear failed: %v", err)
		}
		for _, key := range []string{storage.KeyHeats, storage.KeyFinalPositions} {
			got, _ := store.Read(ctx, key)
			if got != nil {
				t.Errorf("Expected %s to be cleared, got %s", key, got)
			}
		}
		got, _ := store.Read(ctx, storage.KeyMeetName)
		if got == nil {
			t.Error("Clear removed a key it was not asked to")
		}
	})
}

func TestSnapshotRoundTrip(t *testing.T) {
	store, dbPath := newTestStore(t)
	ctx := context.Background()

	snap := models.NewSnapshot()
	snap.MeetName = "District Champs"
	snap.Schools = []models.School{{ID: "s-1", Name: "Hillside"}}
	snap.Athletes = []models.Athlete{{
		ID: "a-1", Name: "Ada", DateOfBirth: "2014-03-02", Gender: models.GenderFemale,
		AgeCategory: models.AgeU11, SchoolID: "s-1", Events: []string{"100m"},
	}}
	snap.Events = []models.TrackEvent{{ID: "e-1", Name: "100m", Type: models.EventTrack, Gender: models.GenderFemale, AgeGroup: models.AgeU11}}
	snap.Heats = []models.Heat{{
		ID: "e-1-finals", EventID: "e-1", HeatNumber: 1, IsFinals: true, Status: models.HeatPending,
		Lanes: []models.Lane{{Lane: 1, Entrant: models.AthleteEntrant("a-1")}},
	}}
	snap.RelayEntries["r-1"] = []string{"s-1"}
	// Ids containing the old "-" separator must survive.
	snap.FinalPositions[models.FinalKey{EventID: "e-1", EntrantID: "a-1"}] = 2

	if err := storage.SaveSnapshot(ctx, store, snap); err != nil {
		t.Fatalf("SaveSnapshot failed: %v", err)
	}
	store.Close()

	// Reopen to prove the state is on disk.
	reopened, err := New(dbPath)
	if err != nil {
		t.Fatalf("Failed to reopen store: %v", err)
	}
	defer reopened.Close()

	got, err := storage.LoadSnapshot(ctx, reopened)
	if err != nil {
		t.Fatalf("LoadSnapshot failed: %v", err)
	}

	if got.MeetName != snap.MeetName {
		t.Errorf("MeetName = %q, want %q", got.MeetName, snap.MeetName)
	}
	if len(got.Schools) != 1 || got.Schools[0].Name != "Hillside" {
		t.Errorf("Schools = %+v", got.Schools)
	}
	if len(got.Athletes) != 1 || got.Athletes[0].AgeCategory != models.AgeU11 {
		t.Errorf("Athletes = %+v", got.Athletes)
	}
	if len(got.Heats) != 1 || got.Heats[0].Lanes[0].Entrant != models.AthleteEntrant("a-1") {
		t.Errorf("Heats = %+v", got.Heats)
	}
	if pos := got.FinalPositions[models.FinalKey{EventID: "e-1", EntrantID: "a-1"}]; pos != 2 {
		t.Errorf("final position = %d, want 2", pos)
	}
	if entries := got.RelayEntries["r-1"]; len(entries) != 1 || entries[0] != "s-1" {
		t.Errorf("RelayEntries = %+v", got.RelayEntries)
	}

	raw, _ := reopened.Read(ctx, storage.KeyFinalPositions)
	var rows []models.FinalPosition
	if err := json.Unmarshal(raw, &rows); err != nil {
		t.Fatalf("finalPositions is not an array of rows: %v (%s)", err, raw)
	}
	if len(rows) != 1 || rows[0].EntrantID != "a-1" {
		t.Errorf("rows = %+v", rows)
	}
}

func TestLoadSnapshotEmptyStore(t *testing.T) {
	store, _ := newTestStore(t)
	defer store.Close()

	snap, err := storage.LoadSnapshot(context.Background(), store)
	if err != nil {
		t.Fatalf("LoadSnapshot failed: %v", err)
	}
	if len(snap.Schools) != 0 || len(snap.Heats) != 0 {
		t.Errorf("Expected empty snapshot, got %+v", snap)
	}
	if snap.RelayEntries == nil || snap.FinalPositions == nil {
		t.Error("Expected maps to be initialized")
	}
}
