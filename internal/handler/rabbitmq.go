// Package handler handles scraper commands.
package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/MichalMitros/shelter-scraper/internal/ingester"
	"github.com/MichalMitros/shelter-scraper/internal/platform/models"
	"github.com/MichalMitros/shelter-scraper/internal/platform/rabbitmq"
	"github.com/MichalMitros/shelter-scraper/pkg/v1/commander"
	"github.com/rs/zerolog"
)

// ErrInvalidCommand is returned for commands which can't be decoded or have no site.
var ErrInvalidCommand = errors.New("invalid run command")

//go:generate mockery --name Ingester --filename ingester.go
//go:generate mockery --name Registry --filename registry.go

// Ingester runs ingestion of the site.
type Ingester interface {
	Run(ctx context.Context, scraper ingester.SiteScraper, policy models.DedupPolicy) (models.Summary, error)
}

// Registry returns scrapers of supported sites.
type Registry interface {
	Scraper(name string) (ingester.SiteScraper, error)
}

// RunHandler runs ingestion for run commands.
type RunHandler struct {
	ingester      Ingester
	registry      Registry
	defaultPolicy models.DedupPolicy
	logger        *zerolog.Logger
}

// NewRunHandler returns new RunHandler.
// Commands without policy run with defaultPolicy.
func NewRunHandler(
	ing Ingester,
	registry Registry,
	defaultPolicy models.DedupPolicy,
	logger *zerolog.Logger,
) *RunHandler {
	return &RunHandler{
		ingester:      ing,
		registry:      registry,
		defaultPolicy: defaultPolicy,
		logger:        logger,
	}
}

// Handle decodes run command and runs ingestion of its site.
func (h *RunHandler) Handle(ctx context.Context, message []byte) error {
	cmd, err := decodeMessage(message)
	if err != nil {
		return err
	}

	policy := h.defaultPolicy
	if cmd.Policy != "" {
		if policy, err = models.ParseDedupPolicy(cmd.Policy); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidCommand, err)
		}
	}

	scraper, err := h.registry.Scraper(cmd.Site)
	if err != nil {
		return fmt.Errorf("can't get scraper: %w", err)
	}

	h.logger.Debug().
		Str("site", cmd.Site).
		Str("policy", string(policy)).
		Msg("run command received")

	summary, err := h.ingester.Run(ctx, scraper, policy)
	if err != nil {
		return fmt.Errorf("run failed: %w", err)
	}

	h.logger.Debug().
		Str("site", cmd.Site).
		Int32("created", summary.Created).
		Int32("updated", summary.Updated).
		Msg("run command handled")

	return nil
}

// RMQHandler handles RMQ messages.
type RMQHandler struct {
	rmq     *rabbitmq.RabbitMQ
	handler *RunHandler
	logger  *zerolog.Logger
}

// NewHandler returns new RMQHandler.
func NewHandler(rmq *rabbitmq.RabbitMQ, handler *RunHandler, logger *zerolog.Logger) *RMQHandler {
	return &RMQHandler{
		rmq:     rmq,
		handler: handler,
		logger:  logger,
	}
}

// Start starts consuming and handling run commands from RMQ.
func (h *RMQHandler) Start(ctx context.Context, queue string) error {
	errorsChan, err := h.rmq.Consume(ctx, queue, h.handler.Handle)
	if err != nil {
		return err
	}

	go func() {
		for err := range errorsChan {
			h.logger.Error().
				Err(err).
				Msg("can't handle message")
		}
	}()

	return nil
}

func decodeMessage(msg []byte) (*commander.RunCommand, error) {
	var cmd commander.RunCommand
	if err := json.Unmarshal(msg, &cmd); err != nil {
		return nil, fmt.Errorf("%w: can't decode: %w", ErrInvalidCommand, err)
	}

	if cmd.Site == "" {
		return nil, fmt.Errorf("%w: site is empty", ErrInvalidCommand)
	}

	return &cmd, nil
}
