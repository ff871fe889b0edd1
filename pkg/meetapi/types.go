package meetapi

// School is a participating school.
type School struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Athlete is an individual entrant.
type Athlete struct {
	ID                    string             `json:"id"`
	Name                  string             `json:"name"`
	DateOfBirth           string             `json:"dateOfBirth"`
	Gender                string             `json:"gender"`
	AgeCategory           string             `json:"ageCategory"`
	AgeCategoryOverridden bool               `json:"ageCategoryOverridden,omitempty"`
	SchoolID              string             `json:"schoolId"`
	Events                []string           `json:"events"`
	PersonalBests         map[string]float64 `json:"personalBests,omitempty"`
}

// TrackEvent is one event of the meet.
type TrackEvent struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	DisplayName string `json:"displayName"`
	Type        string `json:"type"`
	Gender      string `json:"gender"`
	AgeGroup    string `json:"ageGroup"`
	RelayType   string `json:"relayType,omitempty"`
}

// Entrant is the occupant of a lane: an athlete, or a school in relays.
type Entrant struct {
	Kind string `json:"kind"`
	ID   string `json:"id"`
	Name string `json:"name,omitempty"`
}

// Lane is a heat lane. Position zero means not recorded.
type Lane struct {
	Lane     int     `json:"lane"`
	Entrant  Entrant `json:"entrant"`
	Position int     `json:"position,omitempty"`
}

// Heat is a qualifying heat or a direct final.
type Heat struct {
	ID              string `json:"id"`
	EventID         string `json:"eventId"`
	HeatNumber      int    `json:"heatNumber"`
	Lanes           []Lane `json:"lanes"`
	Status          string `json:"status"`
	IsFinals        bool   `json:"isFinals,omitempty"`
	IsDistanceEvent bool   `json:"isDistanceEvent,omitempty"`
}

// RelayLeg places an athlete in the running order (1..4).
type RelayLeg struct {
	AthleteID string `json:"athleteId"`
	Position  int    `json:"position"`
}

// RelayTeam is a school's squad for a relay event.
type RelayTeam struct {
	ID       string     `json:"id"`
	SchoolID string     `json:"schoolId"`
	EventID  string     `json:"eventId"`
	AgeGroup string     `json:"ageGroup"`
	Gender   string     `json:"gender"`
	Athletes []RelayLeg `json:"athletes"`
}

// Finalist is a seeded final lane with its recorded result.
type Finalist struct {
	Lane          int     `json:"lane"`
	Entrant       Entrant `json:"entrant"`
	HeatNumber    int     `json:"heatNumber,omitempty"`
	HeatPosition  int     `json:"heatPosition,omitempty"`
	FinalPosition int     `json:"finalPosition,omitempty"`
}

// PointAward is one scoring result in a school's breakdown.
type PointAward struct {
	EventID     string `json:"eventId"`
	EventName   string `json:"eventName"`
	EventType   string `json:"eventType"`
	Gender      string `json:"gender"`
	AgeGroup    string `json:"ageGroup"`
	EntrantID   string `json:"entrantId"`
	AthleteName string `json:"athleteName,omitempty"`
	Position    int    `json:"position"`
	Points      int    `json:"points"`
}

// TeamStanding is a school's total and the awards making it up.
type TeamStanding struct {
	SchoolID    string       `json:"schoolId"`
	SchoolName  string       `json:"schoolName"`
	TotalPoints int          `json:"totalPoints"`
	Breakdown   []PointAward `json:"breakdown"`
}

// Warning reports a ledger row that could not be scored.
type Warning struct {
	EventID   string `json:"eventId"`
	EntrantID string `json:"entrantId"`
	Position  int    `json:"position"`
	Message   string `json:"message"`
}

// FinalistEntry is one final a school has an entrant in.
type FinalistEntry struct {
	EventID       string `json:"eventId"`
	EventName     string `json:"eventName"`
	EventType     string `json:"eventType"`
	AgeGroup      string `json:"ageGroup"`
	Gender        string `json:"gender"`
	AthleteName   string `json:"athleteName,omitempty"`
	Lane          int    `json:"lane"`
	FinalPosition int    `json:"finalPosition,omitempty"`
}

// SchoolFinalists groups a school's finalists across events.
type SchoolFinalists struct {
	SchoolID   string          `json:"schoolId"`
	SchoolName string          `json:"schoolName"`
	Finalists  []FinalistEntry `json:"finalists"`
}

// RowError explains why an import row (1-based) was rejected.
type RowError struct {
	Row     int    `json:"row"`
	Message string `json:"message"`
}
