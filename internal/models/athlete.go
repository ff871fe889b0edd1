package models

// Gender of an athlete or event.
type Gender string

const (
	GenderMale   Gender = "M"
	GenderFemale Gender = "F"
)

// Valid reports whether g is one of the known genders.
func (g Gender) Valid() bool {
	return g == GenderMale || g == GenderFemale
}

// Label returns the report label used on start lists ("Boys" / "Girls").
func (g Gender) Label() string {
	if g == GenderFemale {
		return "Girls"
	}
	return "Boys"
}

// AgeCategory is the competition age group of an athlete or event.
type AgeCategory string

const (
	AgeU9   AgeCategory = "U9"
	AgeU11  AgeCategory = "U11"
	AgeU13  AgeCategory = "U13"
	AgeU15  AgeCategory = "U15"
	AgeOpen AgeCategory = "Open"
)

// AgeCategories lists every category from youngest to oldest.
var AgeCategories = []AgeCategory{AgeU9, AgeU11, AgeU13, AgeU15, AgeOpen}

// Valid reports whether c is one of the known categories.
func (c AgeCategory) Valid() bool {
	return c.Rank() > 0
}

// Rank orders categories from youngest (1) to oldest (5). Unknown categories rank 0.
func (c AgeCategory) Rank() int {
	for i, known := range AgeCategories {
		if c == known {
			return i + 1
		}
	}
	return 0
}

// DateLayout is the format of Athlete.DateOfBirth.
const DateLayout = "2006-01-02"

// Athlete represents an individual competitor.
type Athlete struct {
	// ID is the unique identifier for the athlete (UUID format).
	ID string `json:"id"`

	// Name is the athlete's full name.
	Name string `json:"name"`

	// DateOfBirth is formatted with DateLayout.
	DateOfBirth string `json:"dateOfBirth"`

	Gender Gender `json:"gender"`

	// AgeCategory is derived from DateOfBirth when the athlete is created and
	// stored from then on. It is not recomputed when the reference year changes.
	AgeCategory AgeCategory `json:"ageCategory"`

	// AgeCategoryOverridden is set when AgeCategory was supplied explicitly
	// (manual edit or import) and differs from the derived category.
	AgeCategoryOverridden bool `json:"ageCategoryOverridden,omitempty"`

	SchoolID string `json:"schoolId"`

	// Events holds the names of the individual events the athlete is entered in.
	Events []string `json:"events"`

	// PersonalBests maps event name to the athlete's best mark.
	PersonalBests map[string]float64 `json:"personalBests,omitempty"`
}

// EnteredIn reports whether the athlete is entered in the named event.
func (a *Athlete) EnteredIn(eventName string) bool {
	for _, e := range a.Events {
		if e == eventName {
			return true
		}
	}
	return false
}
