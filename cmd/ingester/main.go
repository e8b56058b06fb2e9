package main

import (
	"context"
	"database/sql"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/MichalMitros/shelter-scraper/cmd/ingester/config"
	"github.com/MichalMitros/shelter-scraper/internal/fetcher"
	"github.com/MichalMitros/shelter-scraper/internal/handler"
	"github.com/MichalMitros/shelter-scraper/internal/ingester"
	"github.com/MichalMitros/shelter-scraper/internal/platform/models"
	"github.com/MichalMitros/shelter-scraper/internal/platform/rabbitmq"
	"github.com/MichalMitros/shelter-scraper/internal/platform/storage"
	"github.com/MichalMitros/shelter-scraper/internal/sites"
	_ "github.com/lib/pq"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()

	cfg, err := config.Parse()
	if err != nil {
		logger.Fatal().
			Err(err).
			Msg("can't parse configuration")
	}

	logger = logger.Level(cfg.Level())

	// policy is validated by config.Parse
	policy, _ := cfg.Policy()

	pgDB, err := sql.Open("postgres", cfg.DatabaseURL)
	if err != nil {
		logger.Fatal().
			Err(err).
			Msg("can't open Postgres connection")
	}

	pg := storage.NewPostgres(pgDB)
	if err := pg.Migrate(ctx); err != nil {
		logger.Fatal().
			Err(err).
			Msg("can't migrate database")
	}

	client := &http.Client{Timeout: cfg.HTTP.Timeout}
	if cfg.HTTP.CloudflareBypass {
		client = fetcher.WithCloudflareBypass(client)
	}

	registry := sites.NewRegistry(
		fetcher.NewFetcher(client, cfg.Fetcher(), &logger),
		&logger,
		sites.WithListingURL(cfg.Site, cfg.ListingURL),
	)
	ing := ingester.NewIngester(pg, &logger)

	// cancel on termination signal
	termChan := make(chan os.Signal, 1)
	signal.Notify(termChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		select {
		case <-termChan:
			logger.Info().Msg("graceful shutdown start")
			cancel()
		case <-ctx.Done():
		}
	}()

	exitCode := 0
	switch cfg.Mode {
	case config.ModeOnce:
		if err := runOnce(ctx, cfg.Site, policy, ing, registry, &logger); err != nil {
			logger.Error().
				Err(err).
				Msg("ingestion failed")
			exitCode = 1
		}
	case config.ModeConsume:
		consume(ctx, cfg, handler.NewRunHandler(ing, registry, policy, &logger), &logger)
	}

	if err := pgDB.Close(); err != nil {
		logger.Error().
			Err(err).
			Msg("can't close Postgres connection")
	}

	logger.Info().Msg("shutdown successful")
	os.Exit(exitCode)
}

// runOnce runs single ingestion of the site.
func runOnce(
	ctx context.Context,
	site string,
	policy models.DedupPolicy,
	ing *ingester.Ingester,
	registry *sites.Registry,
	logger *zerolog.Logger,
) error {
	scraper, err := registry.Scraper(site)
	if err != nil {
		return err
	}

	summary, err := ing.Run(ctx, scraper, policy)
	if err != nil {
		return err
	}

	logger.Info().
		Int32("found", summary.Found).
		Int32("persisted", summary.Persisted()).
		Int32("failed", summary.Failed).
		Msg("ingestion finished")

	return nil
}

// consume handles run commands from RabbitMQ until ctx is cancelled.
func consume(ctx context.Context, cfg config.Config, runHandler *handler.RunHandler, logger *zerolog.Logger) {
	amqpConnection, err := amqp.Dial(cfg.RabbitMQ.URL)
	if err != nil {
		logger.Fatal().
			Err(err).
			Msg("can't open RabbitMQ connection")
	}

	conn, err := rabbitmq.NewRabbitMQ(amqpConnection, cfg.RabbitMQ.Exchange)
	if err != nil {
		logger.Fatal().
			Err(err).
			Msg("can't open RabbitMQ channel")
	}

	if err := conn.DeclareQueue(cfg.RabbitMQ.Queue, cfg.RabbitMQ.RoutingKey); err != nil {
		logger.Fatal().
			Err(err).
			Msg("can't declare commands queue")
	}

	han := handler.NewHandler(conn, runHandler, logger)

	// start consuming and handling messages
	if err := han.Start(ctx, cfg.RabbitMQ.Queue); err != nil {
		logger.Fatal().
			Err(err).
			Msg("can't start consuming")
	}

	logger.Info().Msg("shelter scraper up and running")

	// wait for consumer to finish
	<-conn.Done()

	// close connections
	if err := conn.Close(); err != nil {
		logger.Error().
			Err(err).
			Msg("can't close RabbitMQ channel")
	}

	if err := amqpConnection.Close(); err != nil {
		logger.Error().
			Err(err).
			Msg("can't close RabbitMQ connection")
	}
}
