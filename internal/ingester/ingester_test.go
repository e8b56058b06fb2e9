package ingester_test

import (
	"context"
	"math/rand"
	"testing"
	"time"

	"github.com/MichalMitros/shelter-scraper/internal/ingester"
	"github.com/MichalMitros/shelter-scraper/internal/ingester/mocks"
	"github.com/MichalMitros/shelter-scraper/internal/platform"
	platformmocks "github.com/MichalMitros/shelter-scraper/internal/platform/mocks"
	"github.com/MichalMitros/shelter-scraper/internal/platform/models"
	"github.com/MichalMitros/shelter-scraper/internal/platform/models/modelstesting"
	"github.com/go-faker/faker/v4"
	"github.com/rs/zerolog"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// reusable test data
var (
	site      = faker.Word()
	runID     = rand.Int()
	shelterID = rand.Int()
	createdAt = time.Date(2020, time.April, 1, 1, 1, 1, 0, time.UTC)
	now       = time.Date(2022, time.April, 1, 1, 1, 1, 0, time.UTC)
	shelter   = modelstesting.FakeShelter()
	detail    = models.DetailRecord{
		Description:   lo.ToPtr("Muy cariñosa"),
		GenderText:    lo.ToPtr("Hembra"),
		AgeText:       lo.ToPtr("Cachorro"),
		BirthDateText: lo.ToPtr("05/03/2021"),
	}
	birthDate = time.Date(2021, time.March, 5, 0, 0, 0, 0, time.UTC)

	errShouldContainAssertErrorMsg = "should return error containing assert.AnError"
)

func TestUnitRun(t *testing.T) {
	cards := []models.CardResult{
		{Card: modelstesting.FakeCard()},
		{Card: modelstesting.FakeCard()},
		{Error: assert.AnError},
		{},
		{Card: modelstesting.FakeCard(func(c *models.CardRecord) { c.GenderHint = lo.ToPtr("macho") })},
	}
	// duplicate of the first card
	cards[3].Card = cards[0].Card

	existing := modelstesting.FakeAnimal(func(a *models.Animal) { a.SourceURL = cards[1].Card.DetailURL })

	wantCreated := []models.Animal{
		fromDetail(cards[0].Card),
		{
			ShelterID:   shelterID,
			Name:        *cards[4].Card.Name,
			Gender:      models.GenderMale,
			AgeCategory: models.AgeUnknown,
			ImageURL:    cards[4].Card.ImageURL,
			SourceURL:   cards[4].Card.DetailURL,
		},
	}
	wantSummary := models.Summary{Found: 5, Created: 2, Skipped: 2, Failed: 1}

	run := newRun(models.PolicySkip)
	wantRun := finishedRun(models.PolicySkip, wantSummary, nil)

	storage := mocks.NewStorage(t)
	scraper := newScraper(t)
	session := platformmocks.NewSession(t)

	mockStorageStartRun(storage, models.PolicySkip, run, nil)
	mockStorageOpenSession(storage, session, nil)
	mockSessionShelter(session, nil)
	mockScraperListing(scraper, cards, nil)
	mockScraperDetail(scraper, cards[0].Card.DetailURL, detail, nil)
	mockScraperDetail(scraper, cards[1].Card.DetailURL, detail, nil)
	mockScraperDetail(scraper, cards[4].Card.DetailURL, models.DetailRecord{}, assert.AnError)
	mockSessionFind(session, cards[0].Card.DetailURL, nil, platform.ErrNotFound)
	mockSessionFind(session, cards[1].Card.DetailURL, &existing, nil)
	mockSessionFind(session, cards[4].Card.DetailURL, nil, platform.ErrNotFound)
	for _, animal := range wantCreated {
		mockSessionCreate(session, animal, nil)
	}
	session.On("Commit", mock.Anything).Return(nil).Once()
	session.On("Close").Return(nil).Once()
	mockStorageFinishRun(storage, wantRun, nil)

	summary, err := newIngester(storage).Run(context.TODO(), scraper, models.PolicySkip)

	require.NoError(t, err, "shouldn't return any error")
	assert.Equal(t, wantSummary, summary, "should return correct summary")
	assert.Equal(t,
		summary.Found,
		summary.Created+summary.Updated+summary.Skipped+summary.Failed,
		"every found card should be counted once",
	)
}

func TestUnitRunOverwrite(t *testing.T) {
	cards := []models.CardResult{{Card: modelstesting.FakeCard()}}
	existing := modelstesting.FakeAnimal(func(a *models.Animal) {
		a.ID = rand.Int()
		a.SourceURL = cards[0].Card.DetailURL
		a.IsAdopted = true
	})

	wantUpdated := fromDetail(cards[0].Card)
	wantUpdated.ID = existing.ID
	wantUpdated.IsAdopted = true
	wantSummary := models.Summary{Found: 1, Updated: 1}

	storage := mocks.NewStorage(t)
	scraper := newScraper(t)
	session := platformmocks.NewSession(t)

	mockStorageStartRun(storage, models.PolicyOverwrite, newRun(models.PolicyOverwrite), nil)
	mockStorageOpenSession(storage, session, nil)
	mockSessionShelter(session, nil)
	mockScraperListing(scraper, cards, nil)
	mockScraperDetail(scraper, cards[0].Card.DetailURL, detail, nil)
	mockSessionFind(session, cards[0].Card.DetailURL, &existing, nil)
	session.On("UpdateAnimal", mock.Anything, wantUpdated).Return(nil).Once()
	session.On("Commit", mock.Anything).Return(nil).Once()
	session.On("Close").Return(nil).Once()
	mockStorageFinishRun(storage, finishedRun(models.PolicyOverwrite, wantSummary, nil), nil)

	summary, err := newIngester(storage).Run(context.TODO(), scraper, models.PolicyOverwrite)

	require.NoError(t, err, "shouldn't return any error")
	assert.Equal(t, wantSummary, summary, "should return correct summary")
}

func TestUnitRunRefresh(t *testing.T) {
	cards := []models.CardResult{
		{Card: modelstesting.FakeCard()},
		{Card: modelstesting.FakeCard()},
	}
	wantDeleted := rand.Int31()
	wantSummary := models.Summary{Found: 2, Created: 2, Deleted: wantDeleted}

	storage := mocks.NewStorage(t)
	scraper := newScraper(t)
	session := platformmocks.NewSession(t)

	mockStorageStartRun(storage, models.PolicyRefresh, newRun(models.PolicyRefresh), nil)
	mockStorageOpenSession(storage, session, nil)
	mockSessionShelter(session, nil)
	mockScraperListing(scraper, cards, nil)
	for _, card := range cards {
		mockScraperDetail(scraper, card.Card.DetailURL, detail, nil)
		mockSessionCreate(session, fromDetail(card.Card), nil)
	}
	session.On("DeleteAnimalsByShelter", mock.Anything, shelterID).Return(wantDeleted, nil).Once()
	session.On("Commit", mock.Anything).Return(nil).Once()
	session.On("Close").Return(nil).Once()
	mockStorageFinishRun(storage, finishedRun(models.PolicyRefresh, wantSummary, nil), nil)

	summary, err := newIngester(storage).Run(context.TODO(), scraper, models.PolicyRefresh)

	require.NoError(t, err, "shouldn't return any error")
	assert.Equal(t, wantSummary, summary, "should return correct summary")
	session.AssertNotCalled(t, "FindAnimalBySourceURL", mock.Anything, mock.Anything)
}

func TestUnitRunListingUnavailable(t *testing.T) {
	for _, policy := range []models.DedupPolicy{models.PolicySkip, models.PolicyRefresh} {
		t.Run(string(policy), func(t *testing.T) {
			wantRun := finishedRun(
				policy,
				models.Summary{},
				lo.ToPtr("listing page unavailable: assert.AnError general error for testing"),
			)

			storage := mocks.NewStorage(t)
			scraper := newScraper(t)
			session := platformmocks.NewSession(t)

			mockStorageStartRun(storage, policy, newRun(policy), nil)
			mockStorageOpenSession(storage, session, nil)
			mockSessionShelter(session, nil)
			mockScraperListing(scraper, nil, assert.AnError)
			session.On("Close").Return(nil).Once()
			mockStorageFinishRun(storage, wantRun, nil)

			summary, err := newIngester(storage).Run(context.TODO(), scraper, policy)

			require.NoError(t, err, "shouldn't return any error")
			assert.Zero(t, summary, "should return empty summary")
			session.AssertNotCalled(t, "DeleteAnimalsByShelter", mock.Anything, mock.Anything)
			session.AssertNotCalled(t, "Commit", mock.Anything)
		})
	}
}

func TestUnitRunPersistError(t *testing.T) {
	cards := []models.CardResult{
		{Card: modelstesting.FakeCard()},
		{Card: modelstesting.FakeCard()},
	}
	wantSummary := models.Summary{Found: 2, Created: 1, Failed: 1}

	storage := mocks.NewStorage(t)
	scraper := newScraper(t)
	session := platformmocks.NewSession(t)

	mockStorageStartRun(storage, models.PolicySkip, newRun(models.PolicySkip), nil)
	mockStorageOpenSession(storage, session, nil)
	mockSessionShelter(session, nil)
	mockScraperListing(scraper, cards, nil)
	for _, card := range cards {
		mockScraperDetail(scraper, card.Card.DetailURL, detail, nil)
		mockSessionFind(session, card.Card.DetailURL, nil, platform.ErrNotFound)
	}
	mockSessionCreate(session, fromDetail(cards[0].Card), assert.AnError)
	mockSessionCreate(session, fromDetail(cards[1].Card), nil)
	session.On("Commit", mock.Anything).Return(nil).Once()
	session.On("Close").Return(nil).Once()
	mockStorageFinishRun(storage, finishedRun(models.PolicySkip, wantSummary, nil), nil)

	summary, err := newIngester(storage).Run(context.TODO(), scraper, models.PolicySkip)

	require.NoError(t, err, "shouldn't return any error")
	assert.Equal(t, wantSummary, summary, "should count failed animal and continue")
}

func TestUnitRunStorageError(t *testing.T) {
	t.Run("start run error", func(t *testing.T) {
		storage := mocks.NewStorage(t)
		scraper := mocks.NewSiteScraper(t)
		scraper.On("Name").Return(site)

		mockStorageStartRun(storage, models.PolicySkip, nil, platform.ErrAlreadyRunning)

		_, err := newIngester(storage).Run(context.TODO(), scraper, models.PolicySkip)

		require.ErrorContains(t, err, "can't start run", "should return error about failed run start")
		require.ErrorIs(t, err, platform.ErrAlreadyRunning, "should return already running error")
	})

	t.Run("open session error", func(t *testing.T) {
		wantRun := finishedRun(
			models.PolicySkip,
			models.Summary{},
			lo.ToPtr("can't open storage session: assert.AnError general error for testing"),
		)

		storage := mocks.NewStorage(t)
		scraper := mocks.NewSiteScraper(t)
		scraper.On("Name").Return(site)

		mockStorageStartRun(storage, models.PolicySkip, newRun(models.PolicySkip), nil)
		mockStorageOpenSession(storage, nil, assert.AnError)
		mockStorageFinishRun(storage, wantRun, nil)

		_, err := newIngester(storage).Run(context.TODO(), scraper, models.PolicySkip)

		require.ErrorContains(t, err, "can't open storage session", "should return error about failed session opening")
		require.ErrorIs(t, err, assert.AnError, errShouldContainAssertErrorMsg)
	})

	t.Run("shelter error", func(t *testing.T) {
		wantRun := finishedRun(
			models.PolicySkip,
			models.Summary{},
			lo.ToPtr("can't resolve shelter: assert.AnError general error for testing"),
		)

		storage := mocks.NewStorage(t)
		scraper := newScraper(t)
		session := platformmocks.NewSession(t)

		mockStorageStartRun(storage, models.PolicySkip, newRun(models.PolicySkip), nil)
		mockStorageOpenSession(storage, session, nil)
		mockSessionShelter(session, assert.AnError)
		session.On("Rollback").Return(nil).Once()
		session.On("Close").Return(nil).Once()
		mockStorageFinishRun(storage, wantRun, nil)

		_, err := newIngester(storage).Run(context.TODO(), scraper, models.PolicySkip)

		require.ErrorContains(t, err, "can't resolve shelter", "should return error about failed shelter resolving")
		require.ErrorIs(t, err, assert.AnError, errShouldContainAssertErrorMsg)
	})

	t.Run("refresh delete error", func(t *testing.T) {
		cards := []models.CardResult{{Card: modelstesting.FakeCard()}}
		wantRun := finishedRun(
			models.PolicyRefresh,
			models.Summary{Found: 1},
			lo.ToPtr("can't delete shelter animals: assert.AnError general error for testing"),
		)

		storage := mocks.NewStorage(t)
		scraper := newScraper(t)
		session := platformmocks.NewSession(t)

		mockStorageStartRun(storage, models.PolicyRefresh, newRun(models.PolicyRefresh), nil)
		mockStorageOpenSession(storage, session, nil)
		mockSessionShelter(session, nil)
		mockScraperListing(scraper, cards, nil)
		session.On("DeleteAnimalsByShelter", mock.Anything, shelterID).Return(int32(0), assert.AnError).Once()
		session.On("Rollback").Return(nil).Once()
		session.On("Close").Return(nil).Once()
		mockStorageFinishRun(storage, wantRun, nil)

		_, err := newIngester(storage).Run(context.TODO(), scraper, models.PolicyRefresh)

		require.ErrorContains(t, err, "can't delete shelter animals", "should return error about failed deleting")
		require.ErrorIs(t, err, assert.AnError, errShouldContainAssertErrorMsg)
		session.AssertNotCalled(t, "CreateAnimal", mock.Anything, mock.Anything)
		scraper.AssertNotCalled(t, "FetchDetail", mock.Anything, mock.Anything)
	})

	t.Run("commit error", func(t *testing.T) {
		cards := []models.CardResult{{Card: modelstesting.FakeCard()}}
		wantSummary := models.Summary{Found: 1, Created: 1}
		wantRun := finishedRun(
			models.PolicySkip,
			wantSummary,
			lo.ToPtr("can't commit animals: assert.AnError general error for testing"),
		)

		storage := mocks.NewStorage(t)
		scraper := newScraper(t)
		session := platformmocks.NewSession(t)

		mockStorageStartRun(storage, models.PolicySkip, newRun(models.PolicySkip), nil)
		mockStorageOpenSession(storage, session, nil)
		mockSessionShelter(session, nil)
		mockScraperListing(scraper, cards, nil)
		mockScraperDetail(scraper, cards[0].Card.DetailURL, detail, nil)
		mockSessionFind(session, cards[0].Card.DetailURL, nil, platform.ErrNotFound)
		mockSessionCreate(session, fromDetail(cards[0].Card), nil)
		session.On("Commit", mock.Anything).Return(assert.AnError).Once()
		session.On("Rollback").Return(nil).Once()
		session.On("Close").Return(nil).Once()
		mockStorageFinishRun(storage, wantRun, nil)

		summary, err := newIngester(storage).Run(context.TODO(), scraper, models.PolicySkip)

		require.ErrorContains(t, err, "can't commit animals", "should return error about failed commit")
		require.ErrorIs(t, err, assert.AnError, errShouldContainAssertErrorMsg)
		assert.Equal(t, wantSummary, summary, "should return summary of failed run")
	})

	t.Run("finish run error", func(t *testing.T) {
		wantRun := finishedRun(
			models.PolicySkip,
			models.Summary{},
			lo.ToPtr("can't resolve shelter: assert.AnError general error for testing"),
		)

		storage := mocks.NewStorage(t)
		scraper := newScraper(t)
		session := platformmocks.NewSession(t)

		mockStorageStartRun(storage, models.PolicySkip, newRun(models.PolicySkip), nil)
		mockStorageOpenSession(storage, session, nil)
		mockSessionShelter(session, assert.AnError)
		session.On("Rollback").Return(nil).Once()
		session.On("Close").Return(nil).Once()
		mockStorageFinishRun(storage, wantRun, assert.AnError)

		_, err := newIngester(storage).Run(context.TODO(), scraper, models.PolicySkip)

		require.ErrorContains(t, err, "can't finish failed run", "should return error about failed run finishing")
		require.ErrorContains(t, err, "can't resolve shelter", "should return error about failed shelter resolving")
		require.ErrorIs(t, err, assert.AnError, errShouldContainAssertErrorMsg)
	})
}

func TestUnitRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	wantRun := finishedRun(
		models.PolicySkip,
		models.Summary{},
		lo.ToPtr("can't fetch listing: context canceled"),
	)

	storage := mocks.NewStorage(t)
	scraper := newScraper(t)
	session := platformmocks.NewSession(t)

	mockStorageStartRun(storage, models.PolicySkip, newRun(models.PolicySkip), nil)
	mockStorageOpenSession(storage, session, nil)
	mockSessionShelter(session, nil)
	scraper.On("FetchListing", mock.Anything).
		Run(func(mock.Arguments) { cancel() }).
		Return(nil, context.Canceled).
		Once()
	session.On("Rollback").Return(nil).Once()
	session.On("Close").Return(nil).Once()
	mockStorageFinishRun(storage, wantRun, nil)

	_, err := newIngester(storage).Run(ctx, scraper, models.PolicySkip)

	require.ErrorIs(t, err, context.Canceled, "should return context error")
}

func newIngester(storage ingester.Storage) *ingester.Ingester {
	logger := zerolog.Nop()
	return ingester.NewIngester(storage, &logger, ingester.WithClock(fakeClock{now: &now}))
}

func newScraper(t *testing.T) *mocks.SiteScraper {
	scraper := mocks.NewSiteScraper(t)
	scraper.On("Name").Return(site)
	scraper.On("Shelter").Return(shelter)
	return scraper
}

func newRun(policy models.DedupPolicy) *models.Run {
	return &models.Run{
		ID:        runID,
		Site:      site,
		Policy:    policy,
		CreatedAt: createdAt,
	}
}

func finishedRun(policy models.DedupPolicy, summary models.Summary, statusMessage *string) *models.Run {
	run := newRun(policy)
	run.FinishedAt = &now
	run.IsSuccess = lo.ToPtr(statusMessage == nil)
	run.StatusMessage = statusMessage
	run.Summary = summary
	return run
}

// fromDetail returns animal expected from card merged with test detail record.
func fromDetail(card models.CardRecord) models.Animal {
	return models.Animal{
		ShelterID:   shelterID,
		Name:        *card.Name,
		Gender:      models.GenderFemale,
		AgeCategory: models.AgeKitten,
		BirthDate:   &birthDate,
		Description: *detail.Description,
		ImageURL:    card.ImageURL,
		SourceURL:   card.DetailURL,
	}
}

func mockStorageStartRun(storage *mocks.Storage, policy models.DedupPolicy, run *models.Run, err error) {
	storage.On("StartRun", mock.Anything, site, policy).Return(run, err).Once()
}

func mockStorageFinishRun(storage *mocks.Storage, run *models.Run, err error) {
	storage.On("FinishRun", mock.Anything, run).Return(err).Once()
}

func mockStorageOpenSession(storage *mocks.Storage, session platform.Session, err error) {
	if session == nil {
		storage.On("OpenSession", mock.Anything).Return(nil, err).Once()
		return
	}
	storage.On("OpenSession", mock.Anything).Return(session, err).Once()
}

func mockSessionShelter(session *platformmocks.Session, err error) {
	var stored *models.Shelter
	if err == nil {
		stored = lo.ToPtr(shelter)
		stored.ID = shelterID
	}
	session.On("LookupOrCreateShelter", mock.Anything, shelter).Return(stored, err).Once()
}

func mockSessionFind(session *platformmocks.Session, sourceURL string, animal *models.Animal, err error) {
	session.On("FindAnimalBySourceURL", mock.Anything, sourceURL).Return(animal, err).Once()
}

func mockSessionCreate(session *platformmocks.Session, animal models.Animal, err error) {
	var stored *models.Animal
	if err == nil {
		stored = lo.ToPtr(animal)
		stored.ID = rand.Int()
	}
	session.On("CreateAnimal", mock.Anything, animal).Return(stored, err).Once()
}

func mockScraperListing(scraper *mocks.SiteScraper, cards []models.CardResult, err error) {
	scraper.On("FetchListing", mock.Anything).Return(cards, err).Once()
}

func mockScraperDetail(scraper *mocks.SiteScraper, detailURL string, detail models.DetailRecord, err error) {
	scraper.On("FetchDetail", mock.Anything, detailURL).Return(detail, err).Once()
}

type fakeClock struct {
	now *time.Time
}

func (c fakeClock) Now() *time.Time {
	return c.now
}
