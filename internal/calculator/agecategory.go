package calculator

import (
	"fmt"
	"time"

	"github.com/mmynk/trackmeet/internal/models"
)

// ReferenceYear returns year, or the current calendar year when year is zero.
func ReferenceYear(year int) int {
	if year == 0 {
		return time.Now().Year()
	}
	return year
}

// CalculateAgeCategory derives the age category from a date of birth.
// Age is counted at the end of the reference year: age = year - birth year.
func CalculateAgeCategory(dateOfBirth time.Time, year int) models.AgeCategory {
	age := ReferenceYear(year) - dateOfBirth.Year()
	switch {
	case age <= 8:
		return models.AgeU9
	case age <= 10:
		return models.AgeU11
	case age <= 12:
		return models.AgeU13
	case age <= 14:
		return models.AgeU15
	default:
		return models.AgeOpen
	}
}

// AgeCategoryFor parses a DateLayout date of birth and derives its category.
func AgeCategoryFor(dateOfBirth string, year int) (models.AgeCategory, error) {
	dob, err := time.Parse(models.DateLayout, dateOfBirth)
	if err != nil {
		return "", fmt.Errorf("invalid date of birth %q: %w", dateOfBirth, err)
	}
	return CalculateAgeCategory(dob, year), nil
}

// YearRange is an inclusive range of birth years.
type YearRange struct {
	Start int
	End   int
}

// Contains reports whether birthYear falls in the range.
func (r YearRange) Contains(birthYear int) bool {
	return birthYear >= r.Start && birthYear <= r.End
}

// AgeCategoryYears returns the birth years accepted for each category in the
// reference year. Open accepts any athlete born between U15 and U13 years,
// so older children may enter Open events.
func AgeCategoryYears(year int) map[models.AgeCategory]YearRange {
	y := ReferenceYear(year)
	return map[models.AgeCategory]YearRange{
		models.AgeU9:   {Start: y - 8, End: y - 7},
		models.AgeU11:  {Start: y - 10, End: y - 9},
		models.AgeU13:  {Start: y - 12, End: y - 11},
		models.AgeU15:  {Start: y - 14, End: y - 13},
		models.AgeOpen: {Start: y - 14, End: y - 11},
	}
}
