package sites_test

import (
	"testing"

	"github.com/MichalMitros/shelter-scraper/internal/sites"
	"github.com/MichalMitros/shelter-scraper/internal/sites/nuevavida"
	"github.com/MichalMitros/shelter-scraper/internal/sites/nuevavida/mocks"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnitRegistryScraper(t *testing.T) {
	tests := map[string]struct {
		site        string
		ops         []sites.Option
		wantWebsite string
		wantErr     error
		wantAnyErr  bool
	}{
		"default listing url": {
			site:        nuevavida.SiteName,
			wantWebsite: nuevavida.DefaultListingURL,
		},
		"overridden listing url": {
			site:        nuevavida.SiteName,
			ops:         []sites.Option{sites.WithListingURL(nuevavida.SiteName, "http://localhost:8080/gatos/")},
			wantWebsite: "http://localhost:8080/gatos/",
		},
		"empty override ignored": {
			site:        nuevavida.SiteName,
			ops:         []sites.Option{sites.WithListingURL(nuevavida.SiteName, "")},
			wantWebsite: nuevavida.DefaultListingURL,
		},
		"unknown site error": {
			site:    "perrera",
			wantErr: sites.ErrUnknownSite,
		},
		"invalid listing url error": {
			site:       nuevavida.SiteName,
			ops:        []sites.Option{sites.WithListingURL(nuevavida.SiteName, "http://[::1")},
			wantAnyErr: true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			logger := zerolog.Nop()
			registry := sites.NewRegistry(mocks.NewFetcher(t), &logger, tt.ops...)

			scraper, err := registry.Scraper(tt.site)

			switch {
			case tt.wantErr != nil:
				require.ErrorIs(t, err, tt.wantErr, "should return correct error")
			case tt.wantAnyErr:
				require.Error(t, err, "should return error")
			default:
				require.NoError(t, err, "shouldn't return any error")
				assert.Equal(t, tt.site, scraper.Name(), "should return scraper of the site")
				assert.Equal(t, tt.wantWebsite, scraper.Shelter().Website, "should use correct listing url")
			}
		})
	}
}

func TestUnitNames(t *testing.T) {
	assert.Equal(t, []string{nuevavida.SiteName}, sites.Names())
}
