package models

// RelayLeg places one athlete in a relay running order.
type RelayLeg struct {
	AthleteID string `json:"athleteId"`

	// Position is the running order, 1 to 4.
	Position int `json:"position"`
}

// RelayTeam is the running order of a school's relay entry. Heats only track
// the school; this records which athletes run which leg.
type RelayTeam struct {
	ID       string      `json:"id"`
	SchoolID string      `json:"schoolId"`
	EventID  string      `json:"eventId"`
	AgeGroup AgeCategory `json:"ageGroup"`
	Gender   Gender      `json:"gender"`
	Athletes []RelayLeg  `json:"athletes"`
}
