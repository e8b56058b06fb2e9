// Package ingester runs scraping of shelter sites and persists scraped animals.
package ingester

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MichalMitros/shelter-scraper/internal/normalizer"
	"github.com/MichalMitros/shelter-scraper/internal/platform"
	"github.com/MichalMitros/shelter-scraper/internal/platform/models"
	"github.com/rs/zerolog"
	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"
)

//go:generate mockery --name SiteScraper --filename site_scraper.go
//go:generate mockery --name Storage --filename storage.go

// SiteScraper scrapes single shelter site.
type SiteScraper interface {
	// Name returns site name.
	Name() string
	// Shelter returns shelter which publishes the site.
	Shelter() models.Shelter
	// FetchListing fetches listing page and extracts its cards.
	FetchListing(ctx context.Context) ([]models.CardResult, error)
	// FetchDetail fetches animal detail page.
	FetchDetail(ctx context.Context, detailURL string) (models.DetailRecord, error)
}

// Clock provides times.
type Clock interface {
	// Now returns current UTC time.
	Now() *time.Time
}

// Storage is runs storage and storage sessions factory.
type Storage interface {
	// StartRun creates new run if there is no run for provided site running.
	StartRun(ctx context.Context, site string, policy models.DedupPolicy) (*models.Run, error)
	// FinishRun finishes provided run and updates its statistics.
	FinishRun(ctx context.Context, run *models.Run) error
	// OpenSession opens storage session for animal writes of a single run.
	OpenSession(ctx context.Context) (platform.Session, error)
}

// Option is custom configuration of Ingester.
type Option func(i *Ingester)

// Ingester scrapes shelter sites and stores their animals.
type Ingester struct {
	storage Storage
	clock   Clock
	logger  *zerolog.Logger
}

// NewIngester returns new Ingester.
func NewIngester(storage Storage, logger *zerolog.Logger, ops ...Option) *Ingester {
	ing := &Ingester{
		storage: storage,
		clock:   systemClock{},
		logger:  logger,
	}

	for _, op := range ops {
		op(ing)
	}

	return ing
}

// runContext is state of a single run.
type runContext struct {
	scraper SiteScraper
	policy  models.DedupPolicy
	run     *models.Run
	session platform.Session
	logger  *zerolog.Logger
}

// Run scrapes site with scraper and persists its animals according to policy.
// Unavailable listing page finishes run as unsuccessful without touching
// stored animals and without returning error.
func (i Ingester) Run(ctx context.Context, scraper SiteScraper, policy models.DedupPolicy) (models.Summary, error) {
	run, err := i.storage.StartRun(ctx, scraper.Name(), policy)
	if err != nil {
		return models.Summary{}, fmt.Errorf("can't start run: %w", err)
	}

	logger := i.logger.With().
		Str("site", scraper.Name()).
		Int("runId", run.ID).
		Str("policy", string(policy)).
		Logger()
	logger.Info().Msg("run started")

	rc := &runContext{
		scraper: scraper,
		policy:  policy,
		run:     run,
		logger:  &logger,
	}

	rc.session, err = i.storage.OpenSession(ctx)
	if err != nil {
		return run.Summary, i.fail(ctx, rc, fmt.Errorf("can't open storage session: %w", err))
	}
	defer func() {
		if err := rc.session.Close(); err != nil {
			logger.Warn().Err(err).Msg("can't close storage session")
		}
	}()

	shelter, err := rc.session.LookupOrCreateShelter(ctx, scraper.Shelter())
	if err != nil {
		return run.Summary, i.fail(ctx, rc, fmt.Errorf("can't resolve shelter: %w", err))
	}

	cards, err := scraper.FetchListing(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return run.Summary, i.fail(ctx, rc, fmt.Errorf("can't fetch listing: %w", ctx.Err()))
		}
		logger.Error().Err(err).Msg("listing page unavailable, stored animals left untouched")
		return run.Summary, i.finishRun(ctx, rc, fmt.Errorf("listing page unavailable: %w", err))
	}

	run.Summary.Found = int32(len(cards))

	deleted, err := i.refresh(ctx, rc, shelter.ID)
	if err != nil {
		return run.Summary, i.fail(ctx, rc, err)
	}

	run.Summary, err = i.ingest(ctx, rc, shelter.ID, cards)
	run.Summary.Deleted = deleted
	if err != nil {
		return run.Summary, i.fail(ctx, rc, err)
	}

	if err := rc.session.Commit(ctx); err != nil {
		return run.Summary, i.fail(ctx, rc, fmt.Errorf("can't commit animals: %w", err))
	}

	logger.Info().
		Int32("found", run.Summary.Found).
		Int32("created", run.Summary.Created).
		Int32("updated", run.Summary.Updated).
		Int32("skipped", run.Summary.Skipped).
		Int32("failed", run.Summary.Failed).
		Int32("deleted", run.Summary.Deleted).
		Msg("run finished")

	return run.Summary, i.finishRun(ctx, rc, nil)
}

// refresh deletes shelter animals when run's policy is refresh.
// It runs once the listing is fetched, so an empty listing empties the shelter.
func (i Ingester) refresh(ctx context.Context, rc *runContext, shelterID int) (int32, error) {
	if rc.policy != models.PolicyRefresh {
		return 0, nil
	}

	deleted, err := rc.session.DeleteAnimalsByShelter(ctx, shelterID)
	if err != nil {
		return 0, fmt.Errorf("can't delete shelter animals: %w", err)
	}
	rc.logger.Info().Int32("deleted", deleted).Msg("shelter animals deleted")

	return deleted, nil
}

// ingest extracts drafts from cards and persists them.
// Extraction and persistence run concurrently, detail pages are fetched one by one.
func (i Ingester) ingest(ctx context.Context, rc *runContext, shelterID int, cards []models.CardResult) (models.Summary, error) {
	drafts := make(chan models.Draft)
	extracted := models.Summary{Found: int32(len(cards))}
	persisted := models.Summary{}

	errGroup, egCtx := errgroup.WithContext(ctx)

	// fetch details and merge them with cards.
	errGroup.Go(func() error {
		defer close(drafts)

		var err error
		extracted.Skipped, extracted.Failed, err = i.extractDrafts(egCtx, rc, cards, drafts)
		if err != nil {
			return fmt.Errorf("can't extract animals: %w", err)
		}

		return nil
	})

	// persist drafts.
	errGroup.Go(func() error {
		var err error
		persisted, err = i.persistDrafts(egCtx, rc, shelterID, drafts)
		if err != nil {
			return fmt.Errorf("can't persist animals: %w", err)
		}

		return nil
	})

	err := errGroup.Wait()

	return models.Summary{
		Found:   extracted.Found,
		Created: persisted.Created,
		Updated: persisted.Updated,
		Skipped: extracted.Skipped + persisted.Skipped,
		Failed:  extracted.Failed + persisted.Failed,
	}, err
}

// extractDrafts sends draft for every distinct valid card.
// Returns number of duplicated cards and number of failed cards.
func (i Ingester) extractDrafts(
	ctx context.Context,
	rc *runContext,
	cards []models.CardResult,
	output chan<- models.Draft,
) (int32, int32, error) {
	skipped, failed := int32(0), int32(0)
	seen := make(map[string]struct{}, len(cards))

	for ix := range cards {
		if err := ctx.Err(); err != nil {
			return skipped, failed, err
		}

		card := cards[ix].Card
		if cards[ix].Error != nil || card.DetailURL == "" {
			rc.logger.Warn().
				Err(cards[ix].Error).
				Int("card", ix).
				Msg("card dropped")
			failed++
			continue
		}

		if _, ok := seen[card.DetailURL]; ok {
			rc.logger.Debug().Str("url", card.DetailURL).Msg("duplicated card skipped")
			skipped++
			continue
		}
		seen[card.DetailURL] = struct{}{}

		detail, err := rc.scraper.FetchDetail(ctx, card.DetailURL)
		if err != nil {
			if ctx.Err() != nil {
				return skipped, failed, ctx.Err()
			}
			rc.logger.Warn().
				Err(err).
				Str("url", card.DetailURL).
				Msg("detail page unavailable, using card only")
			detail = models.DetailRecord{}
		}

		select {
		case <-ctx.Done():
			return skipped, failed, ctx.Err()
		case output <- normalizer.Merge(card, detail):
		}
	}

	return skipped, failed, nil
}

// persistDrafts normalizes drafts and writes them with run's dedup policy.
func (i Ingester) persistDrafts(
	ctx context.Context,
	rc *runContext,
	shelterID int,
	input <-chan models.Draft,
) (models.Summary, error) {
	summary := models.Summary{}

	for draft := range input {
		if err := ctx.Err(); err != nil {
			return summary, err
		}

		animal := normalizer.Animal(draft)
		animal.ShelterID = shelterID

		switch res, err := i.persist(ctx, rc, animal); {
		case err != nil:
			rc.logger.Error().
				Err(err).
				Str("name", animal.Name).
				Str("url", animal.SourceURL).
				Msg("can't persist animal")
			summary.Failed++
		case res == created:
			summary.Created++
		case res == updated:
			summary.Updated++
		default:
			summary.Skipped++
		}
	}

	return summary, nil
}

type outcome int

const (
	created outcome = iota
	updated
	skipped
)

func (i Ingester) persist(ctx context.Context, rc *runContext, animal models.Animal) (outcome, error) {
	if rc.policy == models.PolicyRefresh {
		return i.create(ctx, rc, animal)
	}

	existing, err := findExisting(ctx, rc.session, animal)
	if errors.Is(err, platform.ErrNotFound) {
		return i.create(ctx, rc, animal)
	}
	if err != nil {
		return skipped, fmt.Errorf("can't find existing animal: %w", err)
	}

	if rc.policy == models.PolicySkip {
		rc.logger.Debug().
			Str("name", animal.Name).
			Str("url", animal.SourceURL).
			Msg("animal already exists, skipped")
		return skipped, nil
	}

	animal.ID = existing.ID
	animal.IsAdopted = existing.IsAdopted
	if err := rc.session.UpdateAnimal(ctx, animal); err != nil {
		return skipped, fmt.Errorf("can't update animal: %w", err)
	}

	return updated, nil
}

func (i Ingester) create(ctx context.Context, rc *runContext, animal models.Animal) (outcome, error) {
	if _, err := rc.session.CreateAnimal(ctx, animal); err != nil {
		return skipped, fmt.Errorf("can't create animal: %w", err)
	}
	return created, nil
}

// findExisting looks animal up by source URL, or by name when it has none.
func findExisting(ctx context.Context, session platform.Session, animal models.Animal) (*models.Animal, error) {
	if animal.SourceURL != "" {
		return session.FindAnimalBySourceURL(ctx, animal.SourceURL)
	}
	return session.FindAnimalByName(ctx, animal.ShelterID, animal.Name)
}

// finishRun stores result of the run, status is nil for successful runs.
func (i Ingester) finishRun(ctx context.Context, rc *runContext, status error) error {
	if err := i.storeRun(ctx, rc, status); err != nil {
		return fmt.Errorf("can't finish run: %w", err)
	}
	return nil
}

// fail discards staged writes and stores failed run.
// Returns failure, wrapped with finishing error if there is any.
func (i Ingester) fail(ctx context.Context, rc *runContext, failure error) error {
	rc.logger.Error().Err(failure).Msg("run failed")

	if rc.session != nil {
		if err := rc.session.Rollback(); err != nil {
			rc.logger.Warn().Err(err).Msg("can't rollback storage session")
		}
	}

	if err := i.storeRun(ctx, rc, failure); err != nil {
		return fmt.Errorf("can't finish failed run: %w (fail reason: %w)", err, failure)
	}

	return failure
}

func (i Ingester) storeRun(ctx context.Context, rc *runContext, status error) error {
	if status != nil {
		rc.run.StatusMessage = lo.ToPtr(status.Error())
	}
	rc.run.IsSuccess = lo.ToPtr(status == nil)
	rc.run.FinishedAt = i.clock.Now()

	// cancelled runs are finished too.
	return i.storage.FinishRun(context.WithoutCancel(ctx), rc.run)
}

// WithClock sets Ingester's custom Clock.
func WithClock(c Clock) Option {
	return func(i *Ingester) {
		i.clock = c
	}
}
