package models

// EventType distinguishes individual track, field and relay events.
type EventType string

const (
	EventTrack EventType = "track"
	EventField EventType = "field"
	EventRelay EventType = "relay"
)

// Valid reports whether t is one of the known event types.
func (t EventType) Valid() bool {
	return t == EventTrack || t == EventField || t == EventRelay
}

// RelayType identifies the relay format. Empty for non-relay events.
type RelayType string

const (
	Relay4x100  RelayType = "4x100"
	RelayMedley RelayType = "medley"
)

// TrackEvent is one event of the meet for a single gender and age group.
// (Name, Gender, AgeGroup) is expected to be unique per type but is not enforced.
type TrackEvent struct {
	ID        string      `json:"id"`
	Name      string      `json:"name"`
	Type      EventType   `json:"type"`
	Gender    Gender      `json:"gender"`
	AgeGroup  AgeCategory `json:"ageGroup"`
	RelayType RelayType   `json:"relayType,omitempty"`
}

// IsRelay reports whether entrants of this event are schools.
func (e *TrackEvent) IsRelay() bool {
	return e.Type == EventRelay
}

// EntrantKind returns the kind of entrant this event takes.
func (e *TrackEvent) EntrantKind() EntrantKind {
	if e.IsRelay() {
		return EntrantSchool
	}
	return EntrantAthlete
}

// Entrant builds the EntrantRef for id according to the event type.
func (e *TrackEvent) Entrant(id string) EntrantRef {
	return EntrantRef{Kind: e.EntrantKind(), ID: id}
}

// DisplayName renders the event the way start lists show it, e.g. "Girls U11 - 100m".
func (e *TrackEvent) DisplayName() string {
	return e.Gender.Label() + " " + string(e.AgeGroup) + " - " + e.Name
}
