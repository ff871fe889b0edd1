package main

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/mmynk/trackmeet/internal/models"
	"github.com/mmynk/trackmeet/internal/storage"
	"github.com/mmynk/trackmeet/internal/storage/sqlite"
)

func TestBackupRestore(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	src := filepath.Join(dir, "src.db")

	store, err := sqlite.New(src)
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	snap := models.NewSnapshot()
	snap.MeetName = "Spring Meet"
	snap.Schools = []models.School{{ID: "s1", Name: "Hillside"}}
	snap.FinalPositions[models.FinalKey{EventID: "e1", EntrantID: "a1"}] = 2
	if err := storage.SaveSnapshot(ctx, store, snap, storage.Keys...); err != nil {
		t.Fatalf("SaveSnapshot failed: %v", err)
	}
	store.Close()

	file := filepath.Join(dir, "backup.json")
	if err := runBackup(ctx, src, file, nil); err != nil {
		t.Fatalf("runBackup failed: %v", err)
	}

	var stdout bytes.Buffer
	if err := runBackup(ctx, src, "", &stdout); err != nil {
		t.Fatalf("runBackup to stdout failed: %v", err)
	}
	written, _ := os.ReadFile(file)
	if !bytes.Equal(bytes.TrimSpace(stdout.Bytes()), written) {
		t.Error("stdout backup differs from file backup")
	}

	dst := filepath.Join(dir, "dst.db")
	if err := runRestore(ctx, dst, file); err != nil {
		t.Fatalf("runRestore failed: %v", err)
	}

	restored, err := sqlite.New(dst)
	if err != nil {
		t.Fatalf("failed to open restored store: %v", err)
	}
	defer restored.Close()
	got, err := storage.LoadSnapshot(ctx, restored)
	if err != nil {
		t.Fatalf("LoadSnapshot failed: %v", err)
	}
	if got.MeetName != "Spring Meet" || len(got.Schools) != 1 || got.FinalPositions.Get("e1", "a1") != 2 {
		t.Errorf("unexpected restored state: %+v", got)
	}

	if err := runRestore(ctx, dst, filepath.Join(dir, "missing.json")); err == nil {
		t.Error("expected error restoring a missing file")
	}
}

func TestCorsMiddleware(t *testing.T) {
	called := false
	handler := corsMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodOptions, "/trackmeet.v1.HeatService/ListHeats", nil))
	if rec.Code != http.StatusOK || called {
		t.Errorf("preflight should be answered directly, got %d (called=%v)", rec.Code, called)
	}
	if rec.Header().Get("Access-Control-Allow-Origin") != "*" {
		t.Error("missing Access-Control-Allow-Origin")
	}

	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/trackmeet.v1.HeatService/ListHeats", nil))
	if !called {
		t.Error("expected POST to reach the wrapped handler")
	}
}
