package nuevavida

import (
	"strings"

	"github.com/MichalMitros/shelter-scraper/internal/extract"
	"github.com/MichalMitros/shelter-scraper/internal/normalizer"
	"github.com/MichalMitros/shelter-scraper/internal/platform/models"
	"github.com/PuerkitoBio/goquery"
	"github.com/rs/zerolog"
)

const (
	descriptionWidget = ".elementor-element-7a01d681 .elementor-widget-container div"
	birthDateWidget   = ".elementor-element-479e4d06.elementor-widget-text-editor"
	textEditorWidget  = ".elementor-widget-text-editor"

	birthDateLabel = "Fecha de nacimiento"
	genderLabel    = "Sexo"
	ageLabel       = "Edad"

	// scanned values longer than that are page text, not field value
	maxScannedLen = 40
)

var (
	descriptionStrategies = []extract.Strategy{
		selectorText("description widget", descriptionWidget),
		selectorText("short description", ".woocommerce-product-details__short-description"),
		selectorText("description tab", "#tab-description"),
		selectorAttr("og description", `meta[property="og:description"]`, "content"),
	}

	birthDateStrategies = []extract.Strategy{
		dateOnly(labeledWidget("birth date widget", birthDateWidget, birthDateLabel)),
		dateOnly(labeledElement("labeled element", birthDateLabel)),
		dateOnly(pageScan("page scan", birthDateLabel, maxScannedLen)),
		dateOnly(pageText("date anywhere")),
	}

	genderStrategies = []extract.Strategy{
		labeledWidget("text widget", textEditorWidget, genderLabel),
		labeledElement("labeled element", genderLabel),
		known(categoryLinks("category links"), isGender),
		known(productClasses("product classes"), isGender),
		pageScan("page scan", genderLabel, maxScannedLen),
	}

	ageStrategies = []extract.Strategy{
		labeledWidget("text widget", textEditorWidget, ageLabel),
		labeledElement("labeled element", ageLabel),
		known(categoryLinks("category links"), isAge),
		known(productClasses("product classes"), isAge),
		pageScan("page scan", ageLabel, maxScannedLen),
	}
)

// ExtractDetail extracts description, gender, age and birth date texts from
// animal detail page. Fields which no strategy finds are nil.
func ExtractDetail(html string, logger *zerolog.Logger) models.DetailRecord {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		logger.Error().Err(err).Msg("can't parse detail page")
		return models.DetailRecord{}
	}

	return models.DetailRecord{
		Description:   extract.Resolve(doc, logger, "description", descriptionStrategies...).Ptr(),
		GenderText:    extract.Resolve(doc, logger, "gender", genderStrategies...).Ptr(),
		AgeText:       extract.Resolve(doc, logger, "age", ageStrategies...).Ptr(),
		BirthDateText: extract.Resolve(doc, logger, "birth date", birthDateStrategies...).Ptr(),
	}
}

func selectorText(name, selector string) extract.Strategy {
	return extract.Strategy{
		Name: name,
		Find: func(doc *goquery.Document) (string, error) {
			return extract.BlockText(doc.Find(selector).First()), nil
		},
	}
}

func selectorAttr(name, selector, attr string) extract.Strategy {
	return extract.Strategy{
		Name: name,
		Find: func(doc *goquery.Document) (string, error) {
			return doc.Find(selector).First().AttrOr(attr, ""), nil
		},
	}
}

// labeledWidget finds value after label in first widget mentioning the label.
func labeledWidget(name, selector, label string) extract.Strategy {
	return extract.Strategy{
		Name: name,
		Find: func(doc *goquery.Document) (string, error) {
			widget := doc.Find(selector).FilterFunction(func(_ int, s *goquery.Selection) bool {
				return containsFold(s.Text(), label)
			}).First()
			value, _ := extract.AfterLabel(extract.BlockText(widget), label)
			return value, nil
		},
	}
}

// labeledElement finds the innermost element mentioning the label and reads
// value after it, looking at parent element when label is wrapped alone.
func labeledElement(name, label string) extract.Strategy {
	return extract.Strategy{
		Name: name,
		Find: func(doc *goquery.Document) (string, error) {
			mentions := func(_ int, s *goquery.Selection) bool {
				return containsFold(s.Text(), label)
			}
			el := doc.Find("body *").
				FilterFunction(mentions).
				FilterFunction(func(_ int, s *goquery.Selection) bool {
					return s.Find("*").FilterFunction(mentions).Length() == 0
				}).First()
			if el.Length() == 0 {
				return "", nil
			}

			for _, s := range []*goquery.Selection{el, el.Parent()} {
				if value, ok := extract.AfterLabel(extract.BlockText(s), label); ok && value != "" {
					return value, nil
				}
			}
			return "", nil
		},
	}
}

// pageScan finds value after label anywhere in page text.
func pageScan(name, label string, maxLen int) extract.Strategy {
	return extract.Strategy{
		Name: name,
		Find: func(doc *goquery.Document) (string, error) {
			value, _ := extract.AfterLabel(extract.BlockText(doc.Find("body")), label)
			if runes := []rune(value); len(runes) > maxLen {
				value = string(runes[:maxLen])
			}
			return value, nil
		},
	}
}

func pageText(name string) extract.Strategy {
	return extract.Strategy{
		Name: name,
		Find: func(doc *goquery.Document) (string, error) {
			return extract.BlockText(doc.Find("body")), nil
		},
	}
}

// categoryLinks returns product category link texts.
func categoryLinks(name string) extract.Strategy {
	return extract.Strategy{
		Name: name,
		Find: func(doc *goquery.Document) (string, error) {
			return strings.Join(doc.Find(".posted_in a").Map(func(_ int, s *goquery.Selection) string {
				return s.Text()
			}), "\n"), nil
		},
	}
}

// productClasses returns category class tokens of product container.
func productClasses(name string) extract.Strategy {
	return extract.Strategy{
		Name: name,
		Find: func(doc *goquery.Document) (string, error) {
			return strings.Join(extract.ClassTokens(doc.Find("div.product").First(), categoryClassPrefix), "\n"), nil
		},
	}
}

// dateOnly narrows strategy result to the first dd/mm/yyyy date in it.
func dateOnly(s extract.Strategy) extract.Strategy {
	find := s.Find
	s.Find = func(doc *goquery.Document) (string, error) {
		value, err := find(doc)
		if err != nil {
			return "", err
		}
		if date := normalizer.FindBirthDate(value); date != nil {
			return *date, nil
		}
		return "", nil
	}
	return s
}

// known narrows newline separated strategy result to the first line accepted by ok.
func known(s extract.Strategy, ok func(string) bool) extract.Strategy {
	find := s.Find
	s.Find = func(doc *goquery.Document) (string, error) {
		value, err := find(doc)
		if err != nil {
			return "", err
		}
		for _, line := range strings.Split(value, "\n") {
			if ok(line) {
				return line, nil
			}
		}
		return "", nil
	}
	return s
}

func isGender(text string) bool {
	return normalizer.Gender(text) != models.GenderUnknown
}

func isAge(text string) bool {
	return normalizer.AgeCategory(text) != models.AgeUnknown
}

func containsFold(text, substr string) bool {
	return strings.Contains(strings.ToLower(text), strings.ToLower(substr))
}
