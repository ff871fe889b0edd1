package importer

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/mmynk/trackmeet/internal/models"
)

// ParseGender reads the gender column. Accepts M/F, Male/Female, Boys/Girls
// in any case.
func ParseGender(s string) (models.Gender, bool) {
	g := strings.ToLower(strings.TrimSpace(s))
	switch {
	case g == "f" || strings.Contains(g, "girl") || strings.Contains(g, "female"):
		return models.GenderFemale, true
	case g == "m" || strings.Contains(g, "boy") || strings.Contains(g, "male"):
		return models.GenderMale, true
	}
	return "", false
}

// ParseAgeCategory reads the age category column. Anything unrecognised is Open.
func ParseAgeCategory(s string) models.AgeCategory {
	c := strings.ToUpper(strings.TrimSpace(s))
	switch {
	case strings.Contains(c, "OPEN"):
		return models.AgeOpen
	case strings.Contains(c, "U9"):
		return models.AgeU9
	case strings.Contains(c, "U11"):
		return models.AgeU11
	case strings.Contains(c, "U13"):
		return models.AgeU13
	case strings.Contains(c, "U15"):
		return models.AgeU15
	}
	return models.AgeOpen
}

var eventSeparator = regexp.MustCompile(`(?i)[,;\n]|\s+(?:and|or)\s+`)

// ParseEvents splits an event cell such as "100m, 200m and Long Jump" into
// distinct event names, keeping their order.
func ParseEvents(s string) []string {
	var events []string
	seen := make(map[string]bool)
	for _, part := range eventSeparator.Split(s, -1) {
		e := strings.TrimSpace(part)
		if e == "" || seen[e] {
			continue
		}
		seen[e] = true
		events = append(events, e)
	}
	return events
}

// excelEpoch is day zero of spreadsheet serial dates (1900 date system).
var excelEpoch = time.Date(1899, time.December, 30, 0, 0, 0, 0, time.UTC)

// minSerial is the smallest number read as a serial date (1908-03-18).
// Smaller numbers are bare years or stray counts.
const minSerial = 3000

var dateLayouts = []string{
	models.DateLayout,
	"2006/01/02",
	"01/02/2006",
	"1/2/2006",
	"2 January 2006",
	"January 2, 2006",
	"Jan 2, 2006",
	time.RFC3339,
}

// ParseDate normalizes a date-of-birth cell to models.DateLayout. Numeric
// cells are spreadsheet serial dates; text cells may use any of the common
// layouts, with slashed dates read month first.
func ParseDate(s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", fmt.Errorf("empty date")
	}
	if serial, err := strconv.ParseFloat(s, 64); err == nil {
		if serial < minSerial {
			return "", fmt.Errorf("unrecognised date format %q", s)
		}
		return excelEpoch.AddDate(0, 0, int(serial)).Format(models.DateLayout), nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format(models.DateLayout), nil
		}
	}
	return "", fmt.Errorf("unrecognised date format %q", s)
}
