// Package normalizer maps scraped shelter tokens to canonical values.
// All functions are pure and total.
package normalizer

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/MichalMitros/shelter-scraper/internal/platform/models"
	"github.com/samber/lo"
)

// BirthDateLayout is the only accepted birth date format (DD/MM/YYYY).
const BirthDateLayout = "02/01/2006"

// stems match anywhere in text, words only as whole words ("animales" isn't male).
var genderTokens = []struct {
	gender models.Gender
	stems  []string
	words  []string
}{
	{models.GenderFemale, []string{"hembra"}, []string{"female"}},
	{models.GenderMale, []string{"macho"}, []string{"male"}},
}

// order matters: "adulto mayor" is senior, "joven adulto" is young.
var ageTokens = []struct {
	age    models.AgeCategory
	tokens []string
}{
	{models.AgeKitten, []string{"cachorr", "gatit", "bebé", "bebe", "kitten"}},
	{models.AgeYoung, []string{"joven", "junior", "young"}},
	{models.AgeSenior, []string{"senior", "sénior", "anciano", "anciana", "mayor"}},
	{models.AgeAdult, []string{"adult"}},
}

// digits around the match belong to some other number.
var datePattern = regexp.MustCompile(`(?:^|\D)(\d{1,2})\s*/\s*(\d{1,2})\s*/\s*(\d{4})(?:\D|$)`)

// Gender returns gender matching known tokens in text or GenderUnknown.
func Gender(text string) models.Gender {
	text = strings.ToLower(text)
	words := strings.FieldsFunc(text, func(r rune) bool {
		return !unicode.IsLetter(r)
	})

	for _, g := range genderTokens {
		for _, stem := range g.stems {
			if strings.Contains(text, stem) {
				return g.gender
			}
		}
		if lo.Some(words, g.words) {
			return g.gender
		}
	}
	return models.GenderUnknown
}

// AgeCategory returns age category matching known tokens in text or AgeUnknown.
func AgeCategory(text string) models.AgeCategory {
	text = strings.ToLower(text)
	for _, a := range ageTokens {
		for _, token := range a.tokens {
			if strings.Contains(text, token) {
				return a.age
			}
		}
	}
	return models.AgeUnknown
}

// ParseBirthDate parses DD/MM/YYYY date. Any other input returns nil.
func ParseBirthDate(text string) *time.Time {
	d, err := time.Parse(BirthDateLayout, strings.TrimSpace(text))
	if err != nil {
		return nil
	}
	return &d
}

// FindBirthDate finds first D/M/YYYY shaped substring of text and returns it
// zero padded to DD/MM/YYYY. Returns nil if there is no such substring.
func FindBirthDate(text string) *string {
	match := datePattern.FindStringSubmatch(text)
	if match == nil {
		return nil
	}
	day, _ := strconv.Atoi(match[1])
	month, _ := strconv.Atoi(match[2])
	s := fmt.Sprintf("%02d/%02d/%s", day, month, match[3])
	return &s
}
