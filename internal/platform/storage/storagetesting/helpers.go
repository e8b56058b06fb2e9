package storagetesting

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"testing"

	"github.com/MichalMitros/shelter-scraper/internal/platform/models"
	"github.com/MichalMitros/shelter-scraper/internal/platform/storage"
	pgmodels "github.com/MichalMitros/shelter-scraper/internal/platform/storage/gen/postgres/public/model"
	"github.com/MichalMitros/shelter-scraper/internal/platform/storage/gen/postgres/public/table"
	pg "github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"

	_ "github.com/lib/pq"
)

// Open opens connection to DB and creates missing tables.
func Open(t *testing.T) *sql.DB {
	t.Helper()

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		t.Fatal("please provide database URL via DATABASE_URL environment variable")
	}

	db, err := sql.Open("postgres", dbURL)
	if err != nil {
		t.Fatalf("can't open connection to %q: %s", dbURL, err)
	}

	if err := storage.NewPostgres(db).Migrate(context.Background()); err != nil {
		t.Fatal("can't migrate database", err)
	}

	return db
}

// InsertShelters is a helper test function to insert shelters.
func InsertShelters(t *testing.T, exc qrm.Executable, shelters ...pgmodels.Shelter) {
	t.Helper()

	if len(shelters) == 0 {
		return
	}

	_, err := table.Shelter.INSERT(table.Shelter.AllColumns).MODELS(shelters).Exec(exc)
	if err != nil {
		t.Fatal("can't insert shelters", err)
	}
}

// InsertRuns is a helper test function to insert runs.
func InsertRuns(t *testing.T, exc qrm.Executable, runs ...pgmodels.Run) {
	t.Helper()

	if len(runs) == 0 {
		return
	}

	_, err := table.Run.INSERT(table.Run.AllColumns.Except(table.Run.ID)).MODELS(runs).Exec(exc)
	if err != nil {
		t.Fatal("can't insert runs", err)
	}
}

// InsertAnimals is a helper test function to insert animals.
func InsertAnimals(t *testing.T, exc qrm.Executable, animals ...pgmodels.Animal) {
	t.Helper()

	if len(animals) == 0 {
		return
	}

	_, err := table.Animal.INSERT(table.Animal.AllColumns.Except(table.Animal.ID, table.Animal.UpdatedAt)).
		MODELS(animals).
		Exec(exc)
	if err != nil {
		t.Fatal("can't insert animals", err)
	}
}

// GetRuns is a helper test function to get all runs.
func GetRuns(t *testing.T, queryable qrm.Queryable) []pgmodels.Run {
	t.Helper()

	runs := []pgmodels.Run{}
	err := table.Run.SELECT(table.Run.AllColumns).
		WHERE(table.Run.ID.IS_NOT_NULL()).
		ORDER_BY(table.Run.ID.ASC()).
		Query(queryable, &runs)
	if err != nil {
		t.Fatal("can't get runs", err)
	}

	return runs
}

// GetAnimals is a helper test function to get all animals of the shelter.
func GetAnimals(t *testing.T, queryable qrm.Queryable, shelterID int) []pgmodels.Animal {
	t.Helper()

	animals := []pgmodels.Animal{}
	err := table.Animal.SELECT(table.Animal.AllColumns).
		WHERE(table.Animal.ShelterID.EQ(pg.Int32(int32(shelterID)))).
		ORDER_BY(table.Animal.ID.ASC()).
		Query(queryable, &animals)
	if err != nil {
		t.Fatal("can't get animals", err)
	}

	return animals
}

// GetShelterID is a helper test function to get shelter ID by shelter name.
func GetShelterID(t *testing.T, queryable qrm.Queryable, name string) int {
	t.Helper()

	var shelter pgmodels.Shelter
	err := table.Shelter.SELECT(table.Shelter.ID).
		WHERE(table.Shelter.Name.EQ(pg.String(name))).
		Query(queryable, &shelter)

	if err != nil && !errors.Is(err, qrm.ErrNoRows) {
		t.Fatal("can't get shelter ID", err)
	}

	return int(shelter.ID)
}

// GetLatestRun is a helper test function to get latest run of the site.
func GetLatestRun(t *testing.T, queryable qrm.Queryable, site string) *models.Run {
	t.Helper()

	var runs []pgmodels.Run
	err := table.Run.SELECT(table.Run.AllColumns).
		WHERE(table.Run.Site.EQ(pg.String(site))).
		ORDER_BY(table.Run.CreatedAt.DESC(), table.Run.ID.DESC()).
		LIMIT(1).
		Query(queryable, &runs)

	if err != nil || len(runs) == 0 {
		t.Fatal("can't get latest run", err)
	}

	return storage.FromDBRun(&runs[0])
}

// CleanupData is a helper test function to delete all data.
func CleanupData(t *testing.T, exc qrm.Executable) {
	t.Helper()

	_, err := table.Animal.DELETE().WHERE(table.Animal.ID.IS_NOT_NULL()).Exec(exc)
	if err != nil {
		t.Fatal("can't delete animals data", err)
	}

	_, err = table.Run.DELETE().WHERE(table.Run.ID.IS_NOT_NULL()).Exec(exc)
	if err != nil {
		t.Fatal("can't delete runs data", err)
	}

	_, err = table.Shelter.DELETE().WHERE(table.Shelter.ID.IS_NOT_NULL()).Exec(exc)
	if err != nil {
		t.Fatal("can't delete shelters data", err)
	}
}
