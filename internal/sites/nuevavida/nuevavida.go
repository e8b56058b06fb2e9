// Package nuevavida scrapes cats for adoption from NUEVAVIDA Adopciones website.
// The site is WooCommerce catalogue with Elementor product pages.
package nuevavida

import (
	"context"
	"fmt"
	"net/url"

	"github.com/MichalMitros/shelter-scraper/internal/platform/models"
	"github.com/rs/zerolog"
)

const (
	// SiteName is the name the scraper is registered under.
	SiteName = "nuevavida"
	// DefaultListingURL is the cats for adoption listing page.
	DefaultListingURL = "https://adoptargatosmadrid-nuevavida.org/gatos-en-adopcion/"
)

//go:generate mockery --name Fetcher --filename fetcher.go

// Fetcher fetches pages.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (string, bool)
}

// Scraper scrapes NUEVAVIDA listing and detail pages.
type Scraper struct {
	fetcher    Fetcher
	listingURL *url.URL
	logger     *zerolog.Logger
}

// NewScraper returns new Scraper for listing page at listingURL.
func NewScraper(fetcher Fetcher, listingURL string, logger *zerolog.Logger) (*Scraper, error) {
	u, err := url.Parse(listingURL)
	if err != nil {
		return nil, fmt.Errorf("can't parse listing url: %w", err)
	}

	l := logger.With().Str("site", SiteName).Logger()

	return &Scraper{
		fetcher:    fetcher,
		listingURL: u,
		logger:     &l,
	}, nil
}

// Name returns site name.
func (s *Scraper) Name() string {
	return SiteName
}

// Shelter returns shelter which publishes the site.
func (s *Scraper) Shelter() models.Shelter {
	return models.Shelter{
		Name:        "NUEVAVIDA Adopciones",
		Address:     "Apartado de correos, 58 - 28220 Majadahonda, Madrid",
		Description: "NUEVAVIDA Adopciones es una asociación sin ánimo de lucro que se dedica a la protección y adopción de gatos.",
		Website:     s.listingURL.String(),
	}
}

// FetchListing fetches listing page and extracts its cards.
func (s *Scraper) FetchListing(ctx context.Context) ([]models.CardResult, error) {
	html, ok := s.fetcher.Fetch(ctx, s.listingURL.String())
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrPageUnavailable, s.listingURL)
	}

	return ExtractListing(html, s.listingURL, s.logger), nil
}

// FetchDetail fetches animal detail page and extracts its fields.
func (s *Scraper) FetchDetail(ctx context.Context, detailURL string) (models.DetailRecord, error) {
	html, ok := s.fetcher.Fetch(ctx, detailURL)
	if !ok {
		return models.DetailRecord{}, fmt.Errorf("%w: %s", ErrPageUnavailable, detailURL)
	}

	logger := s.logger.With().Str("url", detailURL).Logger()

	return ExtractDetail(html, &logger), nil
}
