package models

// Snapshot is the whole meet state, read and written wholesale around each
// user action.
type Snapshot struct {
	MeetName string `json:"meetName"`

	Schools  []School     `json:"schools"`
	Athletes []Athlete    `json:"athletes"`
	Events   []TrackEvent `json:"trackEvents"`
	Heats    []Heat       `json:"heats"`

	// RelayEntries maps event id to the ids of the schools entered in it.
	RelayEntries map[string][]string `json:"relayEntries"`

	RelayTeams     []RelayTeam    `json:"relayTeams"`
	FinalPositions FinalPositions `json:"finalPositions"`
}

// NewSnapshot returns an empty snapshot with initialized maps.
func NewSnapshot() *Snapshot {
	return &Snapshot{
		RelayEntries:   make(map[string][]string),
		FinalPositions: make(FinalPositions),
	}
}

// School returns the school with the given id, or nil.
func (s *Snapshot) School(id string) *School {
	for i := range s.Schools {
		if s.Schools[i].ID == id {
			return &s.Schools[i]
		}
	}
	return nil
}

// Athlete returns the athlete with the given id, or nil.
func (s *Snapshot) Athlete(id string) *Athlete {
	for i := range s.Athletes {
		if s.Athletes[i].ID == id {
			return &s.Athletes[i]
		}
	}
	return nil
}

// Event returns the event with the given id, or nil.
func (s *Snapshot) Event(id string) *TrackEvent {
	for i := range s.Events {
		if s.Events[i].ID == id {
			return &s.Events[i]
		}
	}
	return nil
}

// Heat returns the heat with the given id, or nil.
func (s *Snapshot) Heat(id string) *Heat {
	for i := range s.Heats {
		if s.Heats[i].ID == id {
			return &s.Heats[i]
		}
	}
	return nil
}

// EventHeats returns the heats of an event ordered as stored.
func (s *Snapshot) EventHeats(eventID string) []Heat {
	var heats []Heat
	for _, h := range s.Heats {
		if h.EventID == eventID {
			heats = append(heats, h)
		}
	}
	return heats
}

// ReplaceEventHeats swaps every heat of eventID for heats.
func (s *Snapshot) ReplaceEventHeats(eventID string, heats []Heat) {
	kept := make([]Heat, 0, len(s.Heats)+len(heats))
	for _, h := range s.Heats {
		if h.EventID != eventID {
			kept = append(kept, h)
		}
	}
	s.Heats = append(kept, heats...)
}
