package storagetesting

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/MichalMitros/shelter-scraper/internal/platform"
	"github.com/MichalMitros/shelter-scraper/internal/platform/models"
	"github.com/samber/lo"
)

// ErrDuplicateSourceURL is returned by Memory when created animal's source URL is taken.
var ErrDuplicateSourceURL = errors.New("duplicate animal source url")

// Memory is in-memory runs and animals storage.
// Sessions stage animal writes on a copy of stored animals until Commit.
type Memory struct {
	mu       sync.Mutex
	lastID   int
	shelters []models.Shelter
	animals  map[int]models.Animal
	runs     []models.Run
	failures map[string]error
}

// NewMemory returns empty Memory.
func NewMemory() *Memory {
	return &Memory{
		animals:  map[int]models.Animal{},
		failures: map[string]error{},
	}
}

// FailWrites makes writes of animal with sourceURL fail with err.
func (m *Memory) FailWrites(sourceURL string, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.failures[sourceURL] = err
}

// StartRun creates new unfinished run.
// It returns ErrAlreadyRunning if previous run of the site is not finished yet.
func (m *Memory) StartRun(_ context.Context, site string, policy models.DedupPolicy) (*models.Run, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for ix := range m.runs {
		if m.runs[ix].Site == site && m.runs[ix].FinishedAt == nil {
			return nil, platform.ErrAlreadyRunning
		}
	}

	run := models.Run{
		ID:        m.nextID(),
		Site:      site,
		Policy:    policy,
		CreatedAt: time.Now().UTC(),
	}
	m.runs = append(m.runs, run)

	return &run, nil
}

// FinishRun stores finished run.
func (m *Memory) FinishRun(_ context.Context, run *models.Run) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for ix := range m.runs {
		if m.runs[ix].ID == run.ID {
			m.runs[ix] = *run
			return nil
		}
	}

	return fmt.Errorf("can't update run %d: %w", run.ID, platform.ErrNotFound)
}

// OpenSession opens new storage session.
func (m *Memory) OpenSession(_ context.Context) (platform.Session, error) {
	return &memorySession{m: m}, nil
}

// Runs returns all runs in start order.
func (m *Memory) Runs() []models.Run {
	m.mu.Lock()
	defer m.mu.Unlock()

	return append([]models.Run{}, m.runs...)
}

// Shelters returns all shelters.
func (m *Memory) Shelters() []models.Shelter {
	m.mu.Lock()
	defer m.mu.Unlock()

	return append([]models.Shelter{}, m.shelters...)
}

// Animals returns committed animals of the shelter ordered by ID.
func (m *Memory) Animals(shelterID int) []models.Animal {
	m.mu.Lock()
	defer m.mu.Unlock()

	return sortedAnimals(m.animals, shelterID)
}

// SetAdopted marks committed animal as adopted.
func (m *Memory) SetAdopted(animalID int) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if animal, ok := m.animals[animalID]; ok {
		animal.IsAdopted = true
		m.animals[animalID] = animal
	}
}

func (m *Memory) nextID() int {
	m.lastID++
	return m.lastID
}

func sortedAnimals(animals map[int]models.Animal, shelterID int) []models.Animal {
	result := lo.Filter(lo.Values(animals), func(a models.Animal, _ int) bool {
		return a.ShelterID == shelterID
	})
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result
}

type memorySession struct {
	m      *Memory
	staged map[int]models.Animal
	closed bool
}

func (s *memorySession) LookupOrCreateShelter(_ context.Context, shelter models.Shelter) (*models.Shelter, error) {
	if s.closed {
		return nil, platform.ErrSessionClosed
	}

	if s.staged != nil {
		return nil, platform.ErrAnimalWritesStarted
	}

	s.m.mu.Lock()
	defer s.m.mu.Unlock()

	if stored, ok := lo.Find(s.m.shelters, func(sh models.Shelter) bool { return sh.Name == shelter.Name }); ok {
		return &stored, nil
	}

	shelter.ID = s.m.nextID()
	shelter.CreatedAt = time.Now().UTC()
	s.m.shelters = append(s.m.shelters, shelter)

	return &shelter, nil
}

func (s *memorySession) FindAnimalBySourceURL(_ context.Context, sourceURL string) (*models.Animal, error) {
	return s.find(func(a models.Animal) bool { return a.SourceURL == sourceURL })
}

func (s *memorySession) FindAnimalByName(_ context.Context, shelterID int, name string) (*models.Animal, error) {
	return s.find(func(a models.Animal) bool { return a.ShelterID == shelterID && a.Name == name })
}

func (s *memorySession) find(match func(models.Animal) bool) (*models.Animal, error) {
	if err := s.begin(); err != nil {
		return nil, err
	}

	var found *models.Animal
	for _, animal := range s.staged {
		if match(animal) && (found == nil || animal.ID < found.ID) {
			found = lo.ToPtr(animal)
		}
	}

	if found == nil {
		return nil, platform.ErrNotFound
	}

	return found, nil
}

func (s *memorySession) CreateAnimal(_ context.Context, animal models.Animal) (*models.Animal, error) {
	if err := s.check(animal.SourceURL); err != nil {
		return nil, err
	}

	for _, stored := range s.staged {
		if stored.SourceURL == animal.SourceURL {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateSourceURL, animal.SourceURL)
		}
	}

	s.m.mu.Lock()
	animal.ID = s.m.nextID()
	s.m.mu.Unlock()

	animal.CreatedAt = time.Now().UTC()
	s.staged[animal.ID] = animal

	return &animal, nil
}

func (s *memorySession) UpdateAnimal(_ context.Context, animal models.Animal) error {
	if err := s.check(animal.SourceURL); err != nil {
		return err
	}

	stored, ok := s.staged[animal.ID]
	if !ok {
		return fmt.Errorf("can't update animal %d: %w", animal.ID, platform.ErrNotFound)
	}

	stored.Name = animal.Name
	stored.Gender = animal.Gender
	stored.AgeCategory = animal.AgeCategory
	stored.BirthDate = animal.BirthDate
	stored.Description = animal.Description
	stored.ImageURL = animal.ImageURL
	stored.UpdatedAt = lo.ToPtr(time.Now().UTC())
	s.staged[animal.ID] = stored

	return nil
}

func (s *memorySession) DeleteAnimalsByShelter(_ context.Context, shelterID int) (int32, error) {
	if err := s.begin(); err != nil {
		return 0, err
	}

	deleted := int32(0)
	for id, animal := range s.staged {
		if animal.ShelterID == shelterID {
			delete(s.staged, id)
			deleted++
		}
	}

	return deleted, nil
}

func (s *memorySession) Commit(_ context.Context) error {
	if s.closed {
		return platform.ErrSessionClosed
	}

	if s.staged == nil {
		return nil
	}

	s.m.mu.Lock()
	s.m.animals = s.staged
	s.m.mu.Unlock()
	s.staged = nil

	return nil
}

func (s *memorySession) Rollback() error {
	s.staged = nil
	return nil
}

func (s *memorySession) Close() error {
	s.staged = nil
	s.closed = true
	return nil
}

// begin copies committed animals into the session on its first animal access.
func (s *memorySession) begin() error {
	if s.closed {
		return platform.ErrSessionClosed
	}

	if s.staged == nil {
		s.m.mu.Lock()
		s.staged = make(map[int]models.Animal, len(s.m.animals))
		for id, animal := range s.m.animals {
			s.staged[id] = animal
		}
		s.m.mu.Unlock()
	}

	return nil
}

// check begins session and returns injected failure of the write.
func (s *memorySession) check(sourceURL string) error {
	if err := s.begin(); err != nil {
		return err
	}

	s.m.mu.Lock()
	defer s.m.mu.Unlock()

	return s.m.failures[sourceURL]
}
