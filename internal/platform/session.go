package platform

import (
	"context"

	"github.com/MichalMitros/shelter-scraper/internal/platform/models"
)

//go:generate mockery --name Session --filename session.go

// Session is run-scoped storage session.
// Shelter must be resolved before the first animal write, animal writes are
// staged until Commit.
type Session interface {
	// LookupOrCreateShelter returns stored shelter with the same name or creates it.
	// Created shelter is committed immediately.
	LookupOrCreateShelter(ctx context.Context, shelter models.Shelter) (*models.Shelter, error)
	// FindAnimalBySourceURL returns animal with provided source URL or ErrNotFound.
	FindAnimalBySourceURL(ctx context.Context, sourceURL string) (*models.Animal, error)
	// FindAnimalByName returns shelter's animal with provided name or ErrNotFound.
	FindAnimalByName(ctx context.Context, shelterID int, name string) (*models.Animal, error)
	// CreateAnimal stages new animal and returns it with its ID.
	CreateAnimal(ctx context.Context, animal models.Animal) (*models.Animal, error)
	// UpdateAnimal stages update of scraped fields of animal with animal.ID.
	UpdateAnimal(ctx context.Context, animal models.Animal) error
	// DeleteAnimalsByShelter stages removal of all shelter's animals and returns their number.
	DeleteAnimalsByShelter(ctx context.Context, shelterID int) (int32, error)
	// Commit commits staged writes.
	Commit(ctx context.Context) error
	// Rollback discards staged writes.
	Rollback() error
	// Close releases the session, discarding uncommitted writes.
	Close() error
}
