package storage

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"fmt"

	"github.com/MichalMitros/shelter-scraper/internal/platform"
	"github.com/MichalMitros/shelter-scraper/internal/platform/models"
	"github.com/MichalMitros/shelter-scraper/internal/platform/storage/gen/postgres/public/table"

	pgmodels "github.com/MichalMitros/shelter-scraper/internal/platform/storage/gen/postgres/public/model"
	pg "github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"
)

//go:embed schema.sql
var schema string

// Postgres is storage for shelters, animals and runs.
type Postgres struct {
	db *sql.DB
}

// NewPostgres returns new Postgres.
func NewPostgres(db *sql.DB) Postgres {
	return Postgres{
		db: db,
	}
}

// Migrate creates missing tables.
func (p Postgres) Migrate(ctx context.Context) error {
	if _, err := p.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("can't apply database schema: %w", err)
	}
	return nil
}

// StartRun creates new unfinished run in database and returns it.
// It returns ErrAlreadyRunning if previous run of the site is not finished yet.
func (p Postgres) StartRun(ctx context.Context, site string, policy models.DedupPolicy) (*models.Run, error) {
	run := &models.Run{
		Site:   site,
		Policy: policy,
	}

	err := runInTransaction(ctx, p.db, func(tx *sql.Tx) error {
		lastRun, err := getLastRun(ctx, tx, site)
		if err != nil && !errors.Is(err, qrm.ErrNoRows) {
			return fmt.Errorf("can't get last run from database: %w", err)
		}

		if lastRun != nil && lastRun.FinishedAt == nil && lastRun.Success == nil {
			return platform.ErrAlreadyRunning
		}

		newRun := toDBRun(run)
		err = table.Run.INSERT(
			table.Run.Site,
			table.Run.Policy,
		).
			MODEL(newRun).
			RETURNING(table.Run.ID, table.Run.CreatedAt).
			QueryContext(ctx, tx, newRun)
		if err != nil {
			return fmt.Errorf("can't insert run into database: %w", err)
		}

		run.ID = int(newRun.ID)
		run.CreatedAt = newRun.CreatedAt

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("can't add run: %w", err)
	}

	return run, nil
}

// FinishRun sets run as finished and updates run's statistics.
func (p Postgres) FinishRun(ctx context.Context, run *models.Run) error {
	columnList := table.Run.MutableColumns.Except(table.Run.Site, table.Run.Policy, table.Run.CreatedAt)

	result, err := table.Run.UPDATE(columnList).
		MODEL(toDBRun(run)).
		WHERE(table.Run.ID.EQ(pg.Int32(int32(run.ID)))).
		ExecContext(ctx, p.db)
	if err != nil {
		return fmt.Errorf("can't update run: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("can't update run: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("can't update run %d: %w", run.ID, platform.ErrNotFound)
	}

	return nil
}

// LastRun returns the latest run of the site.
func (p Postgres) LastRun(ctx context.Context, site string) (*models.Run, error) {
	run, err := getLastRun(ctx, p.db, site)
	if errors.Is(err, qrm.ErrNoRows) {
		return nil, platform.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("can't get last run: %w", err)
	}

	return FromDBRun(run), nil
}

// OpenSession opens storage session on a dedicated connection.
func (p Postgres) OpenSession(ctx context.Context) (platform.Session, error) {
	conn, err := p.db.Conn(ctx)
	if err != nil {
		return nil, fmt.Errorf("can't get database connection: %w", err)
	}

	return &session{conn: conn}, nil
}

func getLastRun(ctx context.Context, db qrm.DB, site string) (*pgmodels.Run, error) {
	var run pgmodels.Run
	err := table.Run.SELECT(table.Run.AllColumns).
		WHERE(table.Run.Site.EQ(pg.String(site))).
		ORDER_BY(table.Run.CreatedAt.DESC(), table.Run.ID.DESC()).
		LIMIT(1).
		QueryContext(ctx, db, &run)
	if err != nil {
		return nil, err
	}

	return &run, nil
}

type txBeginner interface {
	BeginTx(ctx context.Context, opts *sql.TxOptions) (*sql.Tx, error)
}

func runInTransaction(ctx context.Context, db txBeginner, fn func(tx *sql.Tx) error) error {
	var (
		tx  *sql.Tx
		err error
	)

	if tx, err = db.BeginTx(ctx, nil); err != nil {
		return fmt.Errorf("can't begin transaction: %w", err)
	}

	if err = fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("can't rollback transaction: %w (rollback reason: %w)", rbErr, err)
		}
		return err
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("can't commit transaction: %w", err)
	}

	return nil
}
