package helpers

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"sort"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/MichalMitros/shelter-scraper/internal/platform/models"
	"github.com/MichalMitros/shelter-scraper/internal/platform/storage"
	pgmodels "github.com/MichalMitros/shelter-scraper/internal/platform/storage/gen/postgres/public/model"
	"github.com/MichalMitros/shelter-scraper/internal/platform/storage/storagetesting"
	"github.com/go-jet/jet/v2/qrm"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/samber/lo"
	"github.com/stretchr/testify/require"
)

const (
	contentType = "Content-Type"
	// ListingPath is path of listing page served by shelter site mock.
	ListingPath = "/gatos-en-adopcion/"
	// runTimeout is maximum time of waiting for a run.
	runTimeout = 30 * time.Second
)

// Cat is a cat published on shelter site mock.
type Cat struct {
	Slug   string
	Name   string
	Gender string
	Age    string
	Born   string
}

// WaitForRun is blocking helper function, returns the first finished run of the site with ID greater than afterID.
func WaitForRun(t *testing.T, queryable qrm.Queryable, site string, afterID int) *models.Run {
	t.Helper()

	deadline := time.After(runTimeout)
	for {
		select {
		case <-deadline:
			require.FailNow(t, "run wasn't finished in time", site)
		case <-time.After(time.Millisecond * 250):
		}

		runs := lo.Filter(storagetesting.GetRuns(t, queryable), func(r pgmodels.Run, _ int) bool {
			return r.Site == site && int(r.ID) > afterID && r.FinishedAt != nil
		})
		if len(runs) > 0 {
			return storage.FromDBRun(&runs[0])
		}
	}
}

// GetAnimals is helper function for getting animals of the shelter ordered by name.
func GetAnimals(t *testing.T, queryable qrm.Queryable, shelterName string) []models.Animal {
	t.Helper()

	shelterID := storagetesting.GetShelterID(t, queryable, shelterName)
	dbAnimals := storagetesting.GetAnimals(t, queryable, shelterID)

	animals := make([]models.Animal, len(dbAnimals))
	for ix := range dbAnimals {
		animals[ix] = *storage.FromDBAnimal(&dbAnimals[ix])
	}

	sort.Slice(animals, func(i, j int) bool { return animals[i].Name < animals[j].Name })

	return animals
}

// PrepareShelterSite is helper function for mocking shelter site.
// Returns function for setting cats published on the site.
func PrepareShelterSite(t *testing.T) (*httptest.Server, func([]Cat)) {
	t.Helper()

	var (
		mu   sync.Mutex
		cats []Cat
	)

	srv := httptest.NewServer(http.HandlerFunc(func(wrt http.ResponseWriter, req *http.Request) {
		mu.Lock()
		published := cats
		mu.Unlock()

		wrt.Header().Add(contentType, "text/html; charset=utf-8")

		if req.URL.Path == ListingPath {
			_, _ = fmt.Fprint(wrt, listingPage(published))
			return
		}

		for _, cat := range published {
			if req.URL.Path == "/gato/"+cat.Slug+"/" {
				_, _ = fmt.Fprint(wrt, detailPage(cat))
				return
			}
		}

		wrt.WriteHeader(http.StatusNotFound)
	}))

	t.Cleanup(func() {
		srv.Close()
	})

	return srv, func(c []Cat) {
		mu.Lock()
		defer mu.Unlock()
		cats = c
	}
}

func listingPage(cats []Cat) string {
	var b strings.Builder
	b.WriteString(`<!DOCTYPE html><html lang="es"><body><ul class="products columns-4">`)
	for _, cat := range cats {
		fmt.Fprintf(&b, `<li class="product type-product status-publish has-post-thumbnail">`+
			`<a href="/gato/%s/" class="woocommerce-LoopProduct-link woocommerce-loop-product__link">`+
			`<img src="/wp-content/uploads/%s-300x300.jpg" class="attachment-woocommerce_thumbnail">`+
			`<h2 class="woocommerce-loop-product__title">%s</h2></a></li>`,
			cat.Slug, cat.Slug, cat.Name)
	}
	b.WriteString(`</ul></body></html>`)
	return b.String()
}

func detailPage(cat Cat) string {
	return fmt.Sprintf(`<!DOCTYPE html><html lang="es"><body><div class="product type-product">`+
		`<div class="elementor-element elementor-element-7a01d681 elementor-widget-text-editor">`+
		`<div class="elementor-widget-container"><div><p>%s busca hogar.</p></div></div></div>`+
		`<div class="elementor-element elementor-element-479e4d06 elementor-widget-text-editor">`+
		`<div class="elementor-widget-container"><p><strong>Fecha de nacimiento:</strong> %s</p></div></div>`+
		`<div class="elementor-element elementor-widget-text-editor"><div class="elementor-widget-container">`+
		`<p><strong>Sexo:</strong> %s</p><p><strong>Edad:</strong> %s</p></div></div>`+
		`</div></body></html>`, cat.Name, cat.Born, cat.Gender, cat.Age)
}

// DeclareRMQExchange is helper function for declaring RMQ exchange.
func DeclareRMQExchange(t *testing.T, ch *amqp.Channel, exchange string) {
	t.Helper()

	if err := ch.ExchangeDeclare(exchange, amqp.ExchangeDirect, true, false, false, false, nil); err != nil {
		require.FailNow(t, "can't declare exchange", exchange, err)
	}
}

// DeclareRMQQueue is helper function for declaring RMQ queue and binding and cleaning them after test is finished.
func DeclareRMQQueue(t *testing.T, channel *amqp.Channel, queueName, exchange, routingKey string) {
	t.Helper()

	_, err := channel.QueueDeclare(queueName, true, false, false, false, nil)
	if err != nil {
		require.FailNow(t, "can't declare queue", queueName, err)
	}

	err = channel.QueueBind(queueName, routingKey, exchange, false, nil)
	if err != nil {
		require.FailNow(t, "can't bind queue", queueName, routingKey, err)
	}

	t.Cleanup(func() {
		_, err := channel.QueueDelete(queueName, false, false, true)
		if err != nil {
			require.FailNow(t, "can't delete queue", queueName, err)
		}
	})
}
