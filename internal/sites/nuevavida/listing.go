package nuevavida

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/MichalMitros/shelter-scraper/internal/extract"
	"github.com/MichalMitros/shelter-scraper/internal/normalizer"
	"github.com/MichalMitros/shelter-scraper/internal/platform/models"
	"github.com/PuerkitoBio/goquery"
	"github.com/rs/zerolog"
	"github.com/samber/lo"
)

// card selectors of current and older catalogue layouts, most specific first.
var cardSelectors = []string{
	"li.product.type-product",
	"li.product",
	".products .product",
}

const categoryClassPrefix = "product_cat-"

// ExtractListing extracts card from every animal card on listing page.
// Relative detail links are resolved against base.
// Failure of one card is returned in its CardResult and does not stop extraction.
func ExtractListing(html string, base *url.URL, logger *zerolog.Logger) []models.CardResult {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		logger.Error().Err(err).Msg("can't parse listing page")
		return nil
	}

	var cards *goquery.Selection
	for _, selector := range cardSelectors {
		if cards = doc.Find(selector); cards.Length() > 0 {
			break
		}
	}

	if cards.Length() == 0 {
		logger.Warn().Msg("no cards found on listing page")
		return []models.CardResult{}
	}

	results := make([]models.CardResult, 0, cards.Length())
	cards.Each(func(ix int, sel *goquery.Selection) {
		card, err := extractCard(sel, base)
		if err != nil {
			logger.Warn().
				Err(err).
				Int("card", ix).
				Msg("can't extract card")
		}
		results = append(results, models.CardResult{Card: card, Error: err})
	})

	logger.Debug().Int("cards", len(results)).Msg("listing page extracted")

	return results
}

func extractCard(sel *goquery.Selection, base *url.URL) (card models.CardRecord, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrCorruptCard, r)
		}
	}()

	link := sel.Find("a.woocommerce-LoopProduct-link").First()
	if link.Length() == 0 {
		link = sel.Find("a[href]").First()
	}

	href := strings.TrimSpace(link.AttrOr("href", ""))
	if href == "" {
		return card, ErrMissingDetailURL
	}

	ref, err := url.Parse(href)
	if err != nil {
		return card, fmt.Errorf("%w: can't parse detail url: %w", ErrCorruptCard, err)
	}
	card.DetailURL = base.ResolveReference(ref).String()

	name := firstNonEmpty(
		sel.Find("h2.woocommerce-loop-product__title").First().Text(),
		sel.Find(".woocommerce-loop-product__title").First().Text(),
		link.AttrOr("title", ""),
		link.AttrOr("aria-label", ""),
	)

	card.Name = name
	if card.Name == nil {
		card.Name = lo.ToPtr(models.UnknownName)
	}

	card.ImageURL = cardImage(sel, base)
	card.GenderHint, card.AgeHint = cardHints(sel, name)

	return card, nil
}

func cardImage(sel *goquery.Selection, base *url.URL) *string {
	img := sel.Find("img.attachment-woocommerce_thumbnail").First()
	if img.Length() == 0 {
		img = sel.Find("img").First()
	}

	for _, attr := range []string{"src", "data-src", "data-lazy-src"} {
		src := strings.TrimSpace(img.AttrOr(attr, ""))
		if src == "" || strings.HasPrefix(src, "data:") {
			continue
		}
		ref, err := url.Parse(src)
		if err != nil {
			continue
		}
		resolved := base.ResolveReference(ref).String()
		return &resolved
	}

	return nil
}

// cardHints reads gender and age hints from category class tokens, then from
// card category text and name.
func cardHints(sel *goquery.Selection, name *string) (gender *string, age *string) {
	candidates := extract.ClassTokens(sel, categoryClassPrefix)
	candidates = append(candidates, extract.CollapseSpaces(sel.Find(".product-category, .posted_in").Text()))
	if name != nil {
		candidates = append(candidates, *name)
	}

	for _, c := range candidates {
		if gender == nil && normalizer.Gender(c) != models.GenderUnknown {
			gender = &c
		}
		if age == nil && normalizer.AgeCategory(c) != models.AgeUnknown {
			age = &c
		}
	}

	return gender, age
}

func firstNonEmpty(values ...string) *string {
	for _, v := range values {
		if v = extract.CollapseSpaces(v); v != "" {
			return &v
		}
	}
	return nil
}
