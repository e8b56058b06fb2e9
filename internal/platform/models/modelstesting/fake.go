package modelstesting

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/MichalMitros/shelter-scraper/internal/platform/models"
	"github.com/go-faker/faker/v4"
	"github.com/samber/lo"
)

var (
	genders = []models.Gender{models.GenderMale, models.GenderFemale, models.GenderUnknown}
	ages    = []models.AgeCategory{
		models.AgeKitten,
		models.AgeYoung,
		models.AgeAdult,
		models.AgeSenior,
		models.AgeUnknown,
	}
)

// FakeShelter returns models.Shelter with fake data.
func FakeShelter(ops ...func(s *models.Shelter)) models.Shelter {
	shelter := models.Shelter{
		Name:        faker.Name(),
		Address:     faker.Sentence(),
		Description: faker.Paragraph(),
		Website:     faker.URL(),
	}

	for _, op := range ops {
		op(&shelter)
	}

	return shelter
}

// FakeAnimal returns models.Animal with fake data and unique source URL.
func FakeAnimal(ops ...func(a *models.Animal)) models.Animal {
	animal := models.Animal{
		Name:        faker.FirstName(),
		Gender:      genders[rand.Intn(len(genders))],
		AgeCategory: ages[rand.Intn(len(ages))],
		BirthDate:   fakeBirthDate(),
		Description: faker.Paragraph(),
		ImageURL:    lo.ToPtr(faker.URL()),
		SourceURL:   fmt.Sprintf("%s/%d", faker.URL(), rand.Int63()),
	}

	for _, op := range ops {
		op(&animal)
	}

	return animal
}

// FakeCard returns models.CardRecord with fake data and unique detail URL.
func FakeCard(ops ...func(c *models.CardRecord)) models.CardRecord {
	card := models.CardRecord{
		Name:      lo.ToPtr(faker.FirstName()),
		ImageURL:  lo.ToPtr(faker.URL()),
		DetailURL: fmt.Sprintf("%s/%d", faker.URL(), rand.Int63()),
	}

	for _, op := range ops {
		op(&card)
	}

	return card
}

func fakeBirthDate() *time.Time {
	if rand.Intn(2) == 0 {
		return nil
	}
	d := time.Date(2010+rand.Intn(14), time.Month(1+rand.Intn(12)), 1+rand.Intn(28), 0, 0, 0, 0, time.UTC)
	return &d
}
