package normalizer

import (
	"strings"

	"github.com/MichalMitros/shelter-scraper/internal/platform/models"
	"github.com/samber/lo"
)

// Merge merges card with its detail record. Detail values take precedence.
func Merge(card models.CardRecord, detail models.DetailRecord) models.Draft {
	name := strings.TrimSpace(lo.FromPtr(card.Name))
	if name == "" {
		name = models.UnknownName
	}

	return models.Draft{
		Name:          name,
		CardGender:    card.GenderHint,
		CardAge:       card.AgeHint,
		GenderText:    detail.GenderText,
		AgeText:       detail.AgeText,
		BirthDateText: detail.BirthDateText,
		Description:   detail.Description,
		ImageURL:      card.ImageURL,
		SourceURL:     card.DetailURL,
	}
}

// Animal converts draft into canonical animal.
// Detail derived gender and age win over card hints when they are resolvable.
func Animal(draft models.Draft) models.Animal {
	gender := Gender(lo.FromPtr(draft.GenderText))
	if gender == models.GenderUnknown {
		gender = Gender(lo.FromPtr(draft.CardGender))
	}

	age := AgeCategory(lo.FromPtr(draft.AgeText))
	if age == models.AgeUnknown {
		age = AgeCategory(lo.FromPtr(draft.CardAge))
	}

	animal := models.Animal{
		Name:        draft.Name,
		Gender:      gender,
		AgeCategory: age,
		Description: strings.TrimSpace(lo.FromPtr(draft.Description)),
		ImageURL:    draft.ImageURL,
		SourceURL:   draft.SourceURL,
	}

	if draft.BirthDateText != nil {
		animal.BirthDate = ParseBirthDate(*draft.BirthDateText)
	}

	return animal
}
