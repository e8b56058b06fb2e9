package normalizer_test

import (
	"testing"
	"time"

	"github.com/MichalMitros/shelter-scraper/internal/normalizer"
	"github.com/MichalMitros/shelter-scraper/internal/platform/models"
	"github.com/MichalMitros/shelter-scraper/internal/platform/models/modelstesting"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnitMerge(t *testing.T) {
	card := modelstesting.FakeCard(func(c *models.CardRecord) {
		c.GenderHint = lo.ToPtr("macho")
		c.AgeHint = lo.ToPtr("cachorro")
	})
	detail := models.DetailRecord{
		Description:   lo.ToPtr("Muy cariñoso"),
		GenderText:    lo.ToPtr("Hembra"),
		BirthDateText: lo.ToPtr("05/03/2021"),
	}

	draft := normalizer.Merge(card, detail)

	assert.Equal(t, *card.Name, draft.Name, "should keep card name")
	assert.Equal(t, card.DetailURL, draft.SourceURL, "should use detail URL as source URL")
	assert.Equal(t, card.ImageURL, draft.ImageURL, "should keep card image")
	assert.Equal(t, detail.GenderText, draft.GenderText, "should keep detail gender")
	assert.Equal(t, card.AgeHint, draft.CardAge, "should keep card age hint")
	assert.Nil(t, draft.AgeText, "should not invent detail age")
}

func TestUnitMergeUnknownName(t *testing.T) {
	for name, cardName := range map[string]*string{"nil": nil, "blank": lo.ToPtr("  ")} {
		t.Run(name, func(t *testing.T) {
			card := modelstesting.FakeCard(func(c *models.CardRecord) { c.Name = cardName })

			draft := normalizer.Merge(card, models.DetailRecord{})

			assert.Equal(t, models.UnknownName, draft.Name, "should fall back to unknown name")
		})
	}
}

func TestUnitAnimal(t *testing.T) {
	tests := map[string]struct {
		card       models.CardRecord
		detail     models.DetailRecord
		wantGender models.Gender
		wantAge    models.AgeCategory
	}{
		"detail overrides unknown card hint": {
			card:       modelstesting.FakeCard(func(c *models.CardRecord) { c.GenderHint = lo.ToPtr("unknown") }),
			detail:     models.DetailRecord{GenderText: lo.ToPtr("Sexo: hembra")},
			wantGender: models.GenderFemale,
			wantAge:    models.AgeUnknown,
		},
		"detail overrides conflicting card hint": {
			card: modelstesting.FakeCard(func(c *models.CardRecord) {
				c.GenderHint = lo.ToPtr("macho")
				c.AgeHint = lo.ToPtr("cachorro")
			}),
			detail:     models.DetailRecord{GenderText: lo.ToPtr("hembra"), AgeText: lo.ToPtr("adulta")},
			wantGender: models.GenderFemale,
			wantAge:    models.AgeAdult,
		},
		"card hint used when detail unresolvable": {
			card: modelstesting.FakeCard(func(c *models.CardRecord) {
				c.GenderHint = lo.ToPtr("macho")
				c.AgeHint = lo.ToPtr("adulto")
			}),
			detail:     models.DetailRecord{GenderText: lo.ToPtr("no consta"), AgeText: lo.ToPtr("3 años")},
			wantGender: models.GenderMale,
			wantAge:    models.AgeAdult,
		},
		"nothing resolvable": {
			card:       modelstesting.FakeCard(),
			wantGender: models.GenderUnknown,
			wantAge:    models.AgeUnknown,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			animal := normalizer.Animal(normalizer.Merge(tt.card, tt.detail))

			assert.Equal(t, tt.wantGender, animal.Gender, "should return correct gender")
			assert.Equal(t, tt.wantAge, animal.AgeCategory, "should return correct age category")
			assert.Equal(t, tt.card.DetailURL, animal.SourceURL, "should set source URL")
			assert.False(t, animal.IsAdopted, "should not be adopted")
		})
	}
}

func TestUnitAnimalBirthDate(t *testing.T) {
	card := modelstesting.FakeCard()

	animal := normalizer.Animal(normalizer.Merge(card, models.DetailRecord{BirthDateText: lo.ToPtr("05/03/2021")}))
	require.NotNil(t, animal.BirthDate, "should parse birth date")
	assert.True(t, time.Date(2021, time.March, 5, 0, 0, 0, 0, time.UTC).Equal(*animal.BirthDate),
		"should parse correct birth date",
	)

	animal = normalizer.Animal(normalizer.Merge(card, models.DetailRecord{BirthDateText: lo.ToPtr("2021-03-05")}))
	assert.Nil(t, animal.BirthDate, "should ignore malformed birth date")
}
