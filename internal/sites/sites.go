// Package sites contains registry of supported shelter sites.
package sites

import (
	"errors"
	"fmt"
	"sort"

	"github.com/MichalMitros/shelter-scraper/internal/ingester"
	"github.com/MichalMitros/shelter-scraper/internal/sites/nuevavida"
	"github.com/rs/zerolog"
	"github.com/samber/lo"
)

// ErrUnknownSite is returned when there is no scraper registered under site name.
var ErrUnknownSite = errors.New("unknown site")

// Fetcher fetches pages for site scrapers.
type Fetcher interface {
	nuevavida.Fetcher
}

type constructor func(fetcher Fetcher, listingURL string, logger *zerolog.Logger) (ingester.SiteScraper, error)

type site struct {
	listingURL string
	build      constructor
}

var supported = map[string]site{
	nuevavida.SiteName: {
		listingURL: nuevavida.DefaultListingURL,
		build: func(fetcher Fetcher, listingURL string, logger *zerolog.Logger) (ingester.SiteScraper, error) {
			return nuevavida.NewScraper(fetcher, listingURL, logger)
		},
	},
}

// Option is custom configuration of Registry.
type Option func(r *Registry)

// Registry builds scrapers of supported sites.
type Registry struct {
	fetcher     Fetcher
	listingURLs map[string]string
	logger      *zerolog.Logger
}

// NewRegistry returns new Registry with scrapers using fetcher.
func NewRegistry(fetcher Fetcher, logger *zerolog.Logger, ops ...Option) *Registry {
	r := &Registry{
		fetcher:     fetcher,
		listingURLs: map[string]string{},
		logger:      logger,
	}

	for name, s := range supported {
		r.listingURLs[name] = s.listingURL
	}

	for _, op := range ops {
		op(r)
	}

	return r
}

// Scraper returns scraper of the site.
func (r *Registry) Scraper(name string) (ingester.SiteScraper, error) {
	s, ok := supported[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q, supported sites: %v", ErrUnknownSite, name, Names())
	}

	scraper, err := s.build(r.fetcher, r.listingURLs[name], r.logger)
	if err != nil {
		return nil, fmt.Errorf("can't create %s scraper: %w", name, err)
	}

	return scraper, nil
}

// Names returns sorted names of supported sites.
func Names() []string {
	names := lo.Keys(supported)
	sort.Strings(names)
	return names
}

// WithListingURL overrides listing page url of the site.
// Unknown sites are ignored.
func WithListingURL(name, listingURL string) Option {
	return func(r *Registry) {
		if _, ok := supported[name]; ok && listingURL != "" {
			r.listingURLs[name] = listingURL
		}
	}
}
