package nuevavida_test

import (
	"testing"

	"github.com/MichalMitros/shelter-scraper/internal/platform/models"
	"github.com/MichalMitros/shelter-scraper/internal/sites/nuevavida"
	"github.com/rs/zerolog"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
)

func TestUnitExtractDetail(t *testing.T) {
	tests := map[string]struct {
		fixture string
		want    models.DetailRecord
	}{
		"elementor widgets": {
			fixture: "detail.html",
			want: models.DetailRecord{
				Description:   lo.ToPtr("Cleo es una gatita muy cariñosa. Le encanta jugar."),
				GenderText:    lo.ToPtr("Hembra"),
				AgeText:       lo.ToPtr("Cachorro"),
				BirthDateText: lo.ToPtr("05/03/2023"),
			},
		},
		"categories and page text": {
			fixture: "detail_legacy.html",
			want: models.DetailRecord{
				Description:   lo.ToPtr("Tom busca hogar."),
				GenderText:    lo.ToPtr("Macho"),
				AgeText:       lo.ToPtr("senior"),
				BirthDateText: lo.ToPtr("01/12/2012"),
			},
		},
		"nothing found": {
			fixture: "detail_empty.html",
			want:    models.DetailRecord{},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			logger := zerolog.Nop()
			got := nuevavida.ExtractDetail(readFixture(t, tt.fixture), &logger)

			assert.Equal(t, tt.want, got, "should extract correct detail")
		})
	}
}

func TestUnitExtractDetailLabels(t *testing.T) {
	tests := map[string]struct {
		page string
		want models.DetailRecord
	}{
		"label in separate element": {
			page: `<html><body><ul><li><b>Sexo</b><span>: Macho</span></li><li><b>Edad</b>: Joven</li></ul></body></html>`,
			want: models.DetailRecord{
				GenderText: lo.ToPtr("Macho"),
				AgeText:    lo.ToPtr("Joven"),
			},
		},
		"label in plain text": {
			page: `<html><body><p>Fecha de nacimiento: 1/2/2020<br>Sexo: hembra esterilizada</p></body></html>`,
			want: models.DetailRecord{
				GenderText:    lo.ToPtr("hembra esterilizada"),
				BirthDateText: lo.ToPtr("01/02/2020"),
			},
		},
		"non gender category first": {
			page: `<html><body><div class="product"><div class="product_meta"><span class="posted_in">Categorías: ` +
				`<a href="/c/animales/">Animales en adopción</a>, <a href="/c/hembras/">Hembras</a>, ` +
				`<a href="/c/adultos/">Adultos</a></span></div></div></body></html>`,
			want: models.DetailRecord{
				GenderText: lo.ToPtr("Hembras"),
				AgeText:    lo.ToPtr("Adultos"),
			},
		},
		"label without date": {
			page: `<html><body><p>Fecha de nacimiento: desconocida</p></body></html>`,
			want: models.DetailRecord{},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			logger := zerolog.Nop()
			got := nuevavida.ExtractDetail(tt.page, &logger)

			assert.Equal(t, tt.want, got, "should extract correct detail")
		})
	}
}
