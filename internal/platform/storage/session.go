package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MichalMitros/shelter-scraper/internal/platform"
	"github.com/MichalMitros/shelter-scraper/internal/platform/models"
	"github.com/MichalMitros/shelter-scraper/internal/platform/storage/gen/postgres/public/table"

	pgmodels "github.com/MichalMitros/shelter-scraper/internal/platform/storage/gen/postgres/public/model"
	pg "github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"
	"github.com/samber/lo"
)

const animalSavepoint = "animal_write"

// session is Postgres storage session bound to a single connection.
// Animal reads and writes share one transaction started by the first of them,
// every write runs in a savepoint so failed write doesn't abort the transaction.
type session struct {
	conn   *sql.Conn
	tx     *sql.Tx
	closed bool
}

// LookupOrCreateShelter returns shelter with the same name or inserts it in its own transaction.
func (s *session) LookupOrCreateShelter(ctx context.Context, shelter models.Shelter) (*models.Shelter, error) {
	if s.closed {
		return nil, platform.ErrSessionClosed
	}

	if s.tx != nil {
		return nil, platform.ErrAnimalWritesStarted
	}

	var stored pgmodels.Shelter
	err := runInTransaction(ctx, s.conn, func(tx *sql.Tx) error {
		_, err := table.Shelter.INSERT(
			table.Shelter.Name,
			table.Shelter.Address,
			table.Shelter.Description,
			table.Shelter.Website,
		).
			MODEL(toDBShelter(&shelter)).
			ON_CONFLICT(table.Shelter.Name).
			DO_NOTHING().
			ExecContext(ctx, tx)
		if err != nil {
			return fmt.Errorf("can't insert shelter: %w", err)
		}

		err = table.Shelter.SELECT(table.Shelter.AllColumns).
			WHERE(table.Shelter.Name.EQ(pg.String(shelter.Name))).
			QueryContext(ctx, tx, &stored)
		if err != nil {
			return fmt.Errorf("can't get shelter: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("can't lookup or create shelter: %w", err)
	}

	return fromDBShelter(&stored), nil
}

// FindAnimalBySourceURL returns animal scraped from sourceURL.
func (s *session) FindAnimalBySourceURL(ctx context.Context, sourceURL string) (*models.Animal, error) {
	return s.findAnimal(ctx, table.Animal.SourceURL.EQ(pg.String(sourceURL)))
}

// FindAnimalByName returns the oldest shelter's animal with provided name.
func (s *session) FindAnimalByName(ctx context.Context, shelterID int, name string) (*models.Animal, error) {
	return s.findAnimal(ctx, pg.AND(
		table.Animal.ShelterID.EQ(pg.Int32(int32(shelterID))),
		table.Animal.Name.EQ(pg.String(name)),
	))
}

func (s *session) findAnimal(ctx context.Context, condition pg.BoolExpression) (*models.Animal, error) {
	tx, err := s.transaction(ctx)
	if err != nil {
		return nil, err
	}

	var animal pgmodels.Animal
	err = table.Animal.SELECT(table.Animal.AllColumns).
		WHERE(condition).
		ORDER_BY(table.Animal.ID.ASC()).
		LIMIT(1).
		QueryContext(ctx, tx, &animal)
	if errors.Is(err, qrm.ErrNoRows) {
		return nil, platform.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("can't get animal: %w", err)
	}

	return FromDBAnimal(&animal), nil
}

// CreateAnimal inserts new animal.
func (s *session) CreateAnimal(ctx context.Context, animal models.Animal) (*models.Animal, error) {
	var created pgmodels.Animal
	err := s.write(ctx, func(tx *sql.Tx) error {
		return table.Animal.INSERT(table.Animal.MutableColumns.Except(table.Animal.CreatedAt, table.Animal.UpdatedAt)).
			MODEL(ToDBAnimal(&animal)).
			RETURNING(table.Animal.AllColumns).
			QueryContext(ctx, tx, &created)
	})
	if err != nil {
		return nil, fmt.Errorf("can't insert animal: %w", err)
	}

	return FromDBAnimal(&created), nil
}

// UpdateAnimal updates scraped fields of the animal. Adoption status is left untouched.
func (s *session) UpdateAnimal(ctx context.Context, animal models.Animal) error {
	animal.UpdatedAt = lo.ToPtr(time.Now().UTC())

	return s.write(ctx, func(tx *sql.Tx) error {
		result, err := table.Animal.UPDATE(
			table.Animal.Name,
			table.Animal.Gender,
			table.Animal.AgeCategory,
			table.Animal.BirthDate,
			table.Animal.Description,
			table.Animal.ImageURL,
			table.Animal.UpdatedAt,
		).
			MODEL(ToDBAnimal(&animal)).
			WHERE(table.Animal.ID.EQ(pg.Int32(int32(animal.ID)))).
			ExecContext(ctx, tx)
		if err != nil {
			return fmt.Errorf("can't update animal: %w", err)
		}

		if rows, err := result.RowsAffected(); err != nil || rows == 0 {
			return fmt.Errorf("can't update animal %d: %w", animal.ID, errors.Join(platform.ErrNotFound, err))
		}

		return nil
	})
}

// DeleteAnimalsByShelter deletes all animals of the shelter.
func (s *session) DeleteAnimalsByShelter(ctx context.Context, shelterID int) (int32, error) {
	deleted := int64(0)
	err := s.write(ctx, func(tx *sql.Tx) error {
		result, err := table.Animal.DELETE().
			WHERE(table.Animal.ShelterID.EQ(pg.Int32(int32(shelterID)))).
			ExecContext(ctx, tx)
		if err != nil {
			return fmt.Errorf("can't delete animals: %w", err)
		}

		deleted, err = result.RowsAffected()

		return err
	})
	if err != nil {
		return 0, err
	}

	return int32(deleted), nil
}

// Commit commits animal writes.
func (s *session) Commit(_ context.Context) error {
	if s.closed {
		return platform.ErrSessionClosed
	}

	if s.tx == nil {
		return nil
	}

	tx := s.tx
	s.tx = nil
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("can't commit transaction: %w", err)
	}

	return nil
}

// Rollback discards animal writes.
func (s *session) Rollback() error {
	if s.tx == nil {
		return nil
	}

	tx := s.tx
	s.tx = nil
	if err := tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
		return fmt.Errorf("can't rollback transaction: %w", err)
	}

	return nil
}

// Close discards uncommitted writes and returns connection to the pool.
func (s *session) Close() error {
	if s.closed {
		return nil
	}

	rbErr := s.Rollback()
	s.closed = true

	return errors.Join(rbErr, s.conn.Close())
}

// transaction returns session's transaction, beginning it if needed.
func (s *session) transaction(ctx context.Context) (*sql.Tx, error) {
	if s.closed {
		return nil, platform.ErrSessionClosed
	}

	if s.tx != nil {
		return s.tx, nil
	}

	// transaction outlives contexts of single calls, it ends with Commit or Rollback.
	tx, err := s.conn.BeginTx(context.WithoutCancel(ctx), nil)
	if err != nil {
		return nil, fmt.Errorf("can't begin transaction: %w", err)
	}
	s.tx = tx

	return tx, nil
}

// write runs fn in a savepoint of session's transaction.
func (s *session) write(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := s.transaction(ctx)
	if err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx, "SAVEPOINT "+animalSavepoint); err != nil {
		return fmt.Errorf("can't create savepoint: %w", err)
	}

	if err := fn(tx); err != nil {
		if _, rbErr := tx.ExecContext(ctx, "ROLLBACK TO SAVEPOINT "+animalSavepoint); rbErr != nil {
			return fmt.Errorf("can't rollback to savepoint: %w (rollback reason: %w)", rbErr, err)
		}
		return err
	}

	if _, err := tx.ExecContext(ctx, "RELEASE SAVEPOINT "+animalSavepoint); err != nil {
		return fmt.Errorf("can't release savepoint: %w", err)
	}

	return nil
}
