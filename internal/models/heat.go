package models

// EntrantKind tags an EntrantRef.
type EntrantKind string

const (
	EntrantAthlete EntrantKind = "athlete"
	EntrantSchool  EntrantKind = "school"
)

// EntrantRef identifies who occupies a lane: an athlete in individual events,
// a school in relay events.
type EntrantRef struct {
	Kind EntrantKind `json:"kind"`
	ID   string      `json:"id"`
}

// AthleteEntrant returns a reference to an individual entrant.
func AthleteEntrant(athleteID string) EntrantRef {
	return EntrantRef{Kind: EntrantAthlete, ID: athleteID}
}

// SchoolEntrant returns a reference to a relay entrant.
func SchoolEntrant(schoolID string) EntrantRef {
	return EntrantRef{Kind: EntrantSchool, ID: schoolID}
}

// HeatStatus tracks whether every lane of a heat has a recorded position.
type HeatStatus string

const (
	HeatPending   HeatStatus = "pending"
	HeatCompleted HeatStatus = "completed"
)

// Lane is one slot of a heat.
type Lane struct {
	// Lane is the 1-based lane number, unique within the heat.
	Lane int `json:"lane"`

	Entrant EntrantRef `json:"entrant"`

	// Position is the finishing position within the heat. Zero means not recorded.
	Position int `json:"position,omitempty"`
}

// Heat groups up to eight entrants of one event.
type Heat struct {
	ID         string     `json:"id"`
	EventID    string     `json:"eventId"`
	HeatNumber int        `json:"heatNumber"`
	Lanes      []Lane     `json:"lanes"`
	Status     HeatStatus `json:"status"`

	// IsFinals marks a heat that is itself the final (events that skip qualifying).
	IsFinals bool `json:"isFinals,omitempty"`

	// IsDistanceEvent marks the 800m/1200m events that always run as a single final.
	IsDistanceEvent bool `json:"isDistanceEvent,omitempty"`
}

// FindLane returns the lane holding entrantID, or nil.
func (h *Heat) FindLane(entrantID string) *Lane {
	for i := range h.Lanes {
		if h.Lanes[i].Entrant.ID == entrantID {
			return &h.Lanes[i]
		}
	}
	return nil
}
