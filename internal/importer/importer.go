// Package importer ingests entry rows that a spreadsheet reader has already
// split into columns. Rows are validated one by one: a bad row is reported and
// skipped, the rest of the import goes ahead.
package importer

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/mmynk/trackmeet/internal/calculator"
	"github.com/mmynk/trackmeet/internal/models"
)

// IndividualRow carries the columns Name, School (or Team), DOB, Gender,
// Age Category and Event of an individual entries sheet.
type IndividualRow struct {
	Name        string `json:"name"`
	School      string `json:"school"`
	Team        string `json:"team"`
	DOB         string `json:"dob"`
	Gender      string `json:"gender"`
	AgeCategory string `json:"ageCategory"`
	Event       string `json:"event"`
}

// RelayRow carries the columns Team, Gender, Age Category and Event of a
// relay entries sheet.
type RelayRow struct {
	Team        string `json:"team"`
	Gender      string `json:"gender"`
	AgeCategory string `json:"ageCategory"`
	Event       string `json:"event"`
}

// RowError describes why a row (1-based) or one of its events was not imported.
type RowError struct {
	Row     int
	Message string
}

func (e RowError) Error() string {
	return fmt.Sprintf("row %d: %s", e.Row, e.Message)
}

// Result summarizes an import. Succeeded and Duplicates count event entries,
// Failed counts rejected rows or events.
type Result struct {
	Succeeded  int
	Duplicates int
	Failed     int
	Errors     []RowError
}

func (r *Result) fail(row int, format string, args ...any) {
	r.Failed++
	r.Errors = append(r.Errors, RowError{Row: row, Message: fmt.Sprintf(format, args...)})
}

func (r *Result) duplicate(row int, format string, args ...any) {
	r.Duplicates++
	r.Errors = append(r.Errors, RowError{Row: row, Message: fmt.Sprintf(format, args...)})
}

// Importer applies entry rows to a snapshot.
type Importer struct {
	referenceYear int
	newID         func() string
}

// New creates an Importer deriving age categories against referenceYear
// (zero means the current year).
func New(referenceYear int) *Importer {
	return &Importer{referenceYear: referenceYear, newID: uuid.NewString}
}

// ImportIndividual adds athletes and their event entries to snap. Athletes
// are matched by name (case-insensitive) within their school; unknown ones
// are created.
func (im *Importer) ImportIndividual(snap *models.Snapshot, rows []IndividualRow) Result {
	var res Result
	for i, row := range rows {
		n := i + 1
		name := strings.TrimSpace(row.Name)
		if name == "" {
			res.fail(n, "missing athlete name")
			continue
		}

		schoolName := row.School
		if strings.TrimSpace(schoolName) == "" {
			schoolName = row.Team
		}
		school := FindMatchingSchool(schoolName, snap.Schools)
		if school == nil {
			res.fail(n, "school not found: %s", schoolName)
			continue
		}

		gender, ok := ParseGender(row.Gender)
		if !ok {
			res.fail(n, "invalid gender for %s: %s", name, row.Gender)
			continue
		}

		events := ParseEvents(row.Event)
		if len(events) == 0 {
			res.fail(n, "no valid events found for %s", name)
			continue
		}

		dob, err := ParseDate(row.DOB)
		if err != nil {
			res.fail(n, "invalid date format for %s: %v", name, err)
			continue
		}

		category, overridden, err := im.resolveCategory(dob, row.AgeCategory)
		if err != nil {
			res.fail(n, "%s: %v", name, err)
			continue
		}

		athlete := findAthlete(snap, name, school.ID)
		if athlete == nil {
			snap.Athletes = append(snap.Athletes, models.Athlete{
				ID:                    im.newID(),
				Name:                  name,
				DateOfBirth:           dob,
				Gender:                gender,
				AgeCategory:           category,
				AgeCategoryOverridden: overridden,
				SchoolID:              school.ID,
				Events:                []string{},
			})
			athlete = &snap.Athletes[len(snap.Athletes)-1]
		}

		for _, event := range events {
			if athlete.EnteredIn(event) {
				res.duplicate(n, "duplicate entry: %s - %s", athlete.Name, event)
				continue
			}
			athlete.Events = append(athlete.Events, event)
			res.Succeeded++
		}
	}
	return res
}

// resolveCategory derives the category from the date of birth. A category
// given in the sheet wins when it differs, provided the birth year is inside
// that category's accepted range; the athlete is then flagged as overridden.
func (im *Importer) resolveCategory(dob, given string) (models.AgeCategory, bool, error) {
	derived, err := calculator.AgeCategoryFor(dob, im.referenceYear)
	if err != nil {
		return "", false, err
	}
	if strings.TrimSpace(given) == "" {
		return derived, false, nil
	}
	category := ParseAgeCategory(given)
	if category == derived {
		return derived, false, nil
	}
	born, _ := time.Parse(models.DateLayout, dob)
	if !calculator.AgeCategoryYears(im.referenceYear)[category].Contains(born.Year()) {
		return "", false, fmt.Errorf("age category %s does not match date of birth %s (expected %s)", category, dob, derived)
	}
	return category, true, nil
}

func findAthlete(snap *models.Snapshot, name, schoolID string) *models.Athlete {
	for i := range snap.Athletes {
		a := &snap.Athletes[i]
		if a.SchoolID == schoolID && strings.EqualFold(a.Name, name) {
			return a
		}
	}
	return nil
}

// ImportRelay registers schools in relay events. Each event named in a row
// must exist as a relay event for the row's gender and age category.
func (im *Importer) ImportRelay(snap *models.Snapshot, rows []RelayRow) Result {
	var res Result
	if snap.RelayEntries == nil {
		snap.RelayEntries = make(map[string][]string)
	}
	for i, row := range rows {
		n := i + 1
		school := FindMatchingSchool(row.Team, snap.Schools)
		if school == nil {
			res.fail(n, "school not found: %s", row.Team)
			continue
		}

		gender, ok := ParseGender(row.Gender)
		if !ok {
			res.fail(n, "invalid gender for %s: %s", row.Team, row.Gender)
			continue
		}

		category := ParseAgeCategory(row.AgeCategory)
		events := ParseEvents(row.Event)
		if len(events) == 0 {
			res.fail(n, "no valid events found for %s", row.Team)
			continue
		}

		for _, name := range events {
			event := findRelayEvent(snap.Events, name, gender, category)
			if event == nil {
				res.fail(n, "no matching relay event found for %s (%s, %s)", name, gender, category)
				continue
			}
			if slices.Contains(snap.RelayEntries[event.ID], school.ID) {
				res.duplicate(n, "duplicate relay entry: %s - %s (%s, %s)", school.Name, name, gender, category)
				continue
			}
			snap.RelayEntries[event.ID] = append(snap.RelayEntries[event.ID], school.ID)
			res.Succeeded++
		}
	}
	return res
}

func findRelayEvent(events []models.TrackEvent, name string, gender models.Gender, category models.AgeCategory) *models.TrackEvent {
	for i := range events {
		e := &events[i]
		if e.IsRelay() && strings.EqualFold(e.Name, name) && e.Gender == gender && e.AgeGroup == category {
			return e
		}
	}
	return nil
}
