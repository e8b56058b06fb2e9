package storage

import (
	"github.com/MichalMitros/shelter-scraper/internal/platform/models"

	pgmodels "github.com/MichalMitros/shelter-scraper/internal/platform/storage/gen/postgres/public/model"
)

//go:generate jet -dsn=${DATABASE_URL} -schema=public -path=./gen

func toDBRun(run *models.Run) *pgmodels.Run {
	return &pgmodels.Run{
		Site:           run.Site,
		Policy:         string(run.Policy),
		FinishedAt:     run.FinishedAt,
		Success:        run.IsSuccess,
		StatusMessage:  run.StatusMessage,
		FoundAnimals:   run.Summary.Found,
		CreatedAnimals: run.Summary.Created,
		UpdatedAnimals: run.Summary.Updated,
		SkippedAnimals: run.Summary.Skipped,
		FailedAnimals:  run.Summary.Failed,
		DeletedAnimals: run.Summary.Deleted,
	}
}

// FromDBRun converts postgres run model into models.Run.
func FromDBRun(run *pgmodels.Run) *models.Run {
	return &models.Run{
		ID:            int(run.ID),
		Site:          run.Site,
		Policy:        models.DedupPolicy(run.Policy),
		CreatedAt:     run.CreatedAt,
		FinishedAt:    run.FinishedAt,
		IsSuccess:     run.Success,
		StatusMessage: run.StatusMessage,
		Summary: models.Summary{
			Found:   run.FoundAnimals,
			Created: run.CreatedAnimals,
			Updated: run.UpdatedAnimals,
			Skipped: run.SkippedAnimals,
			Failed:  run.FailedAnimals,
			Deleted: run.DeletedAnimals,
		},
	}
}

func toDBShelter(shelter *models.Shelter) *pgmodels.Shelter {
	return &pgmodels.Shelter{
		Name:        shelter.Name,
		Address:     shelter.Address,
		Description: shelter.Description,
		Website:     shelter.Website,
	}
}

func fromDBShelter(shelter *pgmodels.Shelter) *models.Shelter {
	return &models.Shelter{
		ID:          int(shelter.ID),
		Name:        shelter.Name,
		Address:     shelter.Address,
		Description: shelter.Description,
		Website:     shelter.Website,
		CreatedAt:   shelter.CreatedAt,
	}
}

// ToDBAnimal converts models.Animal into postgres animal model.
func ToDBAnimal(animal *models.Animal) *pgmodels.Animal {
	return &pgmodels.Animal{
		ID:          int32(animal.ID),
		ShelterID:   int32(animal.ShelterID),
		Name:        animal.Name,
		Gender:      string(animal.Gender),
		AgeCategory: string(animal.AgeCategory),
		BirthDate:   animal.BirthDate,
		Description: animal.Description,
		ImageURL:    animal.ImageURL,
		SourceURL:   animal.SourceURL,
		IsAdopted:   animal.IsAdopted,
		CreatedAt:   animal.CreatedAt,
		UpdatedAt:   animal.UpdatedAt,
	}
}

// FromDBAnimal converts postgres animal model into models.Animal.
func FromDBAnimal(animal *pgmodels.Animal) *models.Animal {
	return &models.Animal{
		ID:          int(animal.ID),
		ShelterID:   int(animal.ShelterID),
		Name:        animal.Name,
		Gender:      models.Gender(animal.Gender),
		AgeCategory: models.AgeCategory(animal.AgeCategory),
		BirthDate:   animal.BirthDate,
		Description: animal.Description,
		ImageURL:    animal.ImageURL,
		SourceURL:   animal.SourceURL,
		IsAdopted:   animal.IsAdopted,
		CreatedAt:   animal.CreatedAt,
		UpdatedAt:   animal.UpdatedAt,
	}
}
