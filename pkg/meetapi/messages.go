package meetapi

import "encoding/json"

// Roster

type CreateSchoolRequest struct {
	Name string `json:"name"`
}

type CreateSchoolResponse struct {
	School School `json:"school"`
}

type ListSchoolsRequest struct{}

type ListSchoolsResponse struct {
	Schools []School `json:"schools"`
}

type DeleteSchoolRequest struct {
	SchoolID string `json:"schoolId"`
}

type DeleteSchoolResponse struct {
	RemovedAthletes int `json:"removedAthletes"`
}

// CreateAthleteRequest creates an athlete. AgeCategory is optional: when
// empty the category is derived from DateOfBirth.
type CreateAthleteRequest struct {
	Name          string             `json:"name"`
	DateOfBirth   string             `json:"dateOfBirth"`
	Gender        string             `json:"gender"`
	SchoolID      string             `json:"schoolId"`
	AgeCategory   string             `json:"ageCategory,omitempty"`
	Events        []string           `json:"events"`
	PersonalBests map[string]float64 `json:"personalBests,omitempty"`
}

type CreateAthleteResponse struct {
	Athlete Athlete `json:"athlete"`
}

// UpdateAthleteRequest replaces an athlete's details. An empty AgeCategory
// keeps the stored category.
type UpdateAthleteRequest struct {
	Athlete Athlete `json:"athlete"`
}

type UpdateAthleteResponse struct {
	Athlete Athlete `json:"athlete"`
}

type DeleteAthleteRequest struct {
	AthleteID string `json:"athleteId"`
}

type DeleteAthleteResponse struct{}

// ListAthletesRequest optionally filters by school.
type ListAthletesRequest struct {
	SchoolID string `json:"schoolId,omitempty"`
}

type ListAthletesResponse struct {
	Athletes []Athlete `json:"athletes"`
}

type CreateEventRequest struct {
	Name      string `json:"name"`
	Type      string `json:"type"`
	Gender    string `json:"gender"`
	AgeGroup  string `json:"ageGroup"`
	RelayType string `json:"relayType,omitempty"`
}

type CreateEventResponse struct {
	Event TrackEvent `json:"event"`
}

type ListEventsRequest struct{}

type ListEventsResponse struct {
	Events []TrackEvent `json:"events"`
}

type DeleteEventRequest struct {
	EventID string `json:"eventId"`
}

type DeleteEventResponse struct{}

type InitializeRelayEventsRequest struct{}

type InitializeRelayEventsResponse struct {
	Events []TrackEvent `json:"events"`
}

type SetRelayEntriesRequest struct {
	EventID   string   `json:"eventId"`
	SchoolIDs []string `json:"schoolIds"`
}

type SetRelayEntriesResponse struct {
	SchoolIDs []string `json:"schoolIds"`
}

type SaveRelayTeamRequest struct {
	Team RelayTeam `json:"team"`
}

type SaveRelayTeamResponse struct {
	Team RelayTeam `json:"team"`
}

type ListRelayTeamsRequest struct {
	EventID string `json:"eventId,omitempty"`
}

type ListRelayTeamsResponse struct {
	Teams []RelayTeam `json:"teams"`
}

// Heats

// GenerateHeatsRequest builds the heats of an event. Confirm must be set to
// replace heats that already exist.
type GenerateHeatsRequest struct {
	EventID string `json:"eventId"`
	Confirm bool   `json:"confirm"`
}

type GenerateHeatsResponse struct {
	Heats        []Heat `json:"heats"`
	DirectFinals bool   `json:"directFinals"`
}

type ListHeatsRequest struct {
	EventID string `json:"eventId"`
}

type ListHeatsResponse struct {
	Heats []Heat `json:"heats"`
}

// RecordHeatPositionRequest sets a lane's finishing position. Zero clears it.
type RecordHeatPositionRequest struct {
	HeatID   string `json:"heatId"`
	Lane     int    `json:"lane"`
	Position int    `json:"position"`
}

type RecordHeatPositionResponse struct {
	Heat Heat `json:"heat"`
}

// AddEntrantRequest adds an athlete (or, in relays, a school) to a heat.
type AddEntrantRequest struct {
	HeatID    string `json:"heatId"`
	EntrantID string `json:"entrantId"`
}

type AddEntrantResponse struct {
	Heat Heat `json:"heat"`
}

type RemoveEntrantRequest struct {
	HeatID    string `json:"heatId"`
	EntrantID string `json:"entrantId"`
}

type RemoveEntrantResponse struct {
	Heat Heat `json:"heat"`
}

// Finals

type ListFinalistsRequest struct {
	EventID string `json:"eventId"`
}

type ListFinalistsResponse struct {
	Finalists []Finalist `json:"finalists"`
}

// SetFinalPositionRequest records a final placing. Zero clears it.
type SetFinalPositionRequest struct {
	EventID   string `json:"eventId"`
	EntrantID string `json:"entrantId"`
	Position  int    `json:"position"`
}

type SetFinalPositionResponse struct{}

type SchoolFinalistsReportRequest struct{}

type SchoolFinalistsReportResponse struct {
	Schools []SchoolFinalists `json:"schools"`
}

// Standings

type GetTeamPointsRequest struct{}

type GetTeamPointsResponse struct {
	Standings []TeamStanding `json:"standings"`
	Warnings  []Warning      `json:"warnings,omitempty"`
}

// Imports

// IndividualRow is one row of an individual entries sheet.
type IndividualRow struct {
	Name        string `json:"name"`
	School      string `json:"school"`
	Team        string `json:"team"`
	DOB         string `json:"dob"`
	Gender      string `json:"gender"`
	AgeCategory string `json:"ageCategory"`
	Event       string `json:"event"`
}

// RelayRow is one row of a relay entries sheet.
type RelayRow struct {
	Team        string `json:"team"`
	Gender      string `json:"gender"`
	AgeCategory string `json:"ageCategory"`
	Event       string `json:"event"`
}

type ImportIndividualEntriesRequest struct {
	Rows []IndividualRow `json:"rows"`
}

type ImportRelayEntriesRequest struct {
	Rows []RelayRow `json:"rows"`
}

// ImportResponse summarizes an import. Rows that failed are listed in Errors;
// the others were saved.
type ImportResponse struct {
	Succeeded  int        `json:"succeeded"`
	Duplicates int        `json:"duplicates"`
	Failed     int        `json:"failed"`
	Errors     []RowError `json:"errors,omitempty"`
}

// Settings

type BackupRequest struct{}

// BackupResponse carries the whole meet state as a JSON document.
type BackupResponse struct {
	Data json.RawMessage `json:"data"`
}

// RestoreRequest replaces the whole meet state. Confirm must be set.
type RestoreRequest struct {
	Data    json.RawMessage `json:"data"`
	Confirm bool            `json:"confirm"`
}

type RestoreResponse struct{}

// ClearDataRequest empties the named state slices. Confirm must be set.
type ClearDataRequest struct {
	Slices  []string `json:"slices"`
	Confirm bool     `json:"confirm"`
}

type ClearDataResponse struct {
	Cleared []string `json:"cleared"`
}

type GetMeetNameRequest struct{}

type SetMeetNameRequest struct {
	Name string `json:"name"`
}

type MeetNameResponse struct {
	Name string `json:"name"`
}
