package models

import (
	"cmp"
	"encoding/json"
	"slices"
)

// FinalKey identifies one entrant's result in one event. For relay events
// EntrantID is a school id, otherwise an athlete id.
type FinalKey struct {
	EventID   string `json:"eventId"`
	EntrantID string `json:"entrantId"`
}

// FinalPositions is the ledger of recorded final placings. An absent key means
// no final position has been recorded for that entrant.
type FinalPositions map[FinalKey]int

// FinalPosition is one ledger row, used for the persisted form and for
// deterministic iteration.
type FinalPosition struct {
	EventID   string `json:"eventId"`
	EntrantID string `json:"entrantId"`
	Position  int    `json:"position"`
}

// Rows returns the ledger sorted by event id, then entrant id.
func (p FinalPositions) Rows() []FinalPosition {
	rows := make([]FinalPosition, 0, len(p))
	for k, pos := range p {
		rows = append(rows, FinalPosition{EventID: k.EventID, EntrantID: k.EntrantID, Position: pos})
	}
	slices.SortFunc(rows, func(a, b FinalPosition) int {
		if c := cmp.Compare(a.EventID, b.EventID); c != 0 {
			return c
		}
		return cmp.Compare(a.EntrantID, b.EntrantID)
	})
	return rows
}

// Get returns the recorded position for an entrant, or 0.
func (p FinalPositions) Get(eventID, entrantID string) int {
	return p[FinalKey{EventID: eventID, EntrantID: entrantID}]
}

// DeleteEvent drops every row of the event.
func (p FinalPositions) DeleteEvent(eventID string) {
	for k := range p {
		if k.EventID == eventID {
			delete(p, k)
		}
	}
}

// DeleteEntrant drops every row of the entrant, across events.
func (p FinalPositions) DeleteEntrant(entrantID string) {
	for k := range p {
		if k.EntrantID == entrantID {
			delete(p, k)
		}
	}
}

// MarshalJSON stores the ledger as an array of rows so that ids containing
// separators survive the round trip.
func (p FinalPositions) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.Rows())
}

// UnmarshalJSON reads the array form written by MarshalJSON.
func (p *FinalPositions) UnmarshalJSON(data []byte) error {
	var rows []FinalPosition
	if err := json.Unmarshal(data, &rows); err != nil {
		return err
	}
	ledger := make(FinalPositions, len(rows))
	for _, r := range rows {
		ledger[FinalKey{EventID: r.EventID, EntrantID: r.EntrantID}] = r.Position
	}
	*p = ledger
	return nil
}
