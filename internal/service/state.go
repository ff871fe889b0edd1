package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/mmynk/trackmeet/internal/metrics"
	"github.com/mmynk/trackmeet/internal/models"
	"github.com/mmynk/trackmeet/internal/storage"
)

// State serializes every read and write of the meet. Each call loads the
// stored slices into a snapshot; updates write back only the slices they
// changed, all in one atomic write.
type State struct {
	mu       sync.Mutex
	store    storage.Store
	metrics  *metrics.MeetMetrics
	onChange []func()
}

// NewState wraps store. m may be nil.
func NewState(store storage.Store, m *metrics.MeetMetrics) *State {
	return &State{store: store, metrics: m}
}

// OnChange registers fn to run after every successful write.
func (s *State) OnChange(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onChange = append(s.onChange, fn)
}

// View runs fn on a freshly loaded snapshot. Changes fn makes are discarded.
func (s *State) View(ctx context.Context, fn func(*models.Snapshot) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap, err := storage.LoadSnapshot(ctx, s.store)
	if err != nil {
		return fmt.Errorf("failed to load meet state: %w", err)
	}
	return fn(snap)
}

// Update runs fn on a freshly loaded snapshot and saves the slices fn reports
// as changed. Nothing is saved when fn fails.
func (s *State) Update(ctx context.Context, fn func(*models.Snapshot) ([]string, error)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap, err := storage.LoadSnapshot(ctx, s.store)
	if err != nil {
		return fmt.Errorf("failed to load meet state: %w", err)
	}
	keys, err := fn(snap)
	if err != nil {
		return err
	}
	if len(keys) == 0 {
		return nil
	}

	err = storage.SaveSnapshot(ctx, s.store, snap, keys...)
	s.recordWrites(keys, err)
	if err != nil {
		return err
	}
	s.changed()
	return nil
}

// Clear deletes whole state slices.
func (s *State) Clear(ctx context.Context, keys ...string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := s.store.Clear(ctx, keys...)
	s.recordWrites(keys, err)
	if err != nil {
		return fmt.Errorf("failed to clear meet state: %w", err)
	}
	s.changed()
	return nil
}

func (s *State) recordWrites(keys []string, err error) {
	status := metrics.StatusSuccess
	if err != nil {
		status = metrics.StatusError
	}
	for _, key := range keys {
		s.metrics.RecordStateWrite(key, status)
	}
}

func (s *State) changed() {
	for _, fn := range s.onChange {
		fn()
	}
}
