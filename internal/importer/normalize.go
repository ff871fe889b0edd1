package importer

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/mmynk/trackmeet/internal/models"
)

var (
	nonAlnum = regexp.MustCompile(`[^a-z0-9]+`)

	// schoolWords are dropped so "Hillside Primary School" matches "Hillside".
	schoolWords = map[string]bool{
		"primary": true, "prep": true, "academy": true, "school": true,
		"high": true, "elementary": true, "junior": true, "senior": true,
	}

	lower = cases.Lower(language.Und)
)

// foldAccents strips combining marks: "Sainte-Thérèse" becomes "Sainte-Therese".
func foldAccents(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}

// NormalizeSchoolName reduces a school name to a comparable key: lower case,
// accents and apostrophes removed, punctuation collapsed to single spaces,
// generic school words dropped and "saint" spelled "st".
func NormalizeSchoolName(name string) string {
	s := lower.String(foldAccents(name))
	s = strings.NewReplacer("'", "", "‘", "", "’", "").Replace(s)
	s = nonAlnum.ReplaceAllString(s, " ")

	var words []string
	for _, w := range strings.Fields(s) {
		if schoolWords[w] {
			continue
		}
		if w == "saint" {
			w = "st"
		}
		words = append(words, w)
	}
	return strings.Join(words, " ")
}

// FindMatchingSchool resolves a school name from a spreadsheet against the
// roster. It tries an exact normalized match, then containment either way,
// then any word (or the space-free form) longer than three characters.
// Returns nil when nothing matches.
func FindMatchingSchool(name string, schools []models.School) *models.School {
	input := NormalizeSchoolName(name)
	if input == "" {
		return nil
	}

	normalized := make([]string, len(schools))
	for i, s := range schools {
		normalized[i] = NormalizeSchoolName(s.Name)
	}

	for i, n := range normalized {
		if n == input {
			return &schools[i]
		}
	}
	for i, n := range normalized {
		if n != "" && (strings.Contains(n, input) || strings.Contains(input, n)) {
			return &schools[i]
		}
	}

	variations := append([]string{strings.ReplaceAll(input, " ", "")}, strings.Fields(input)...)
	for i, n := range normalized {
		for _, v := range variations {
			if len(v) > 3 && strings.Contains(n, v) {
				return &schools[i]
			}
		}
	}
	return nil
}
