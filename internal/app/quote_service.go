// Package app contains application services that orchestrate use cases.
package app

import (
	"context"
	"log/slog"

	"github.com/jsamuelsen/homepage-gateway/internal/domain"
	"github.com/jsamuelsen/homepage-gateway/internal/ports"
)

// QuoteService serves the homepage quote widget.
// It depends on port interfaces, not concrete implementations.
type QuoteService struct {
	source ports.QuoteSource
	logger *slog.Logger
}

// QuoteServiceConfig contains configuration for the quote service.
type QuoteServiceConfig struct {
	Source ports.QuoteSource
	Logger *slog.Logger
}

// NewQuoteService creates a new quote service with the provided dependencies.
// Panics if Source is nil. Defaults logger to slog.Default() if nil.
func NewQuoteService(cfg QuoteServiceConfig) *QuoteService {
	if cfg.Source == nil {
		panic("QuoteService: Source is required")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &QuoteService{
		source: cfg.Source,
		logger: logger,
	}
}

// Hitokoto returns a random hitokoto sentence, unchanged.
func (s *QuoteService) Hitokoto(ctx context.Context) (domain.QuoteRecord, error) {
	quote, err := s.source.FetchQuote(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to fetch hitokoto quote", slog.Any("error", err))
		return nil, err
	}

	s.logger.DebugContext(ctx, "fetched hitokoto quote", slog.Int("fields", len(quote)))

	return quote, nil
}

// UserQuote returns a quote from the keyed quote service, unchanged.
func (s *QuoteService) UserQuote(ctx context.Context) (domain.QuoteRecord, error) {
	quote, err := s.source.FetchUserQuote(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to fetch user quote", slog.Any("error", err))
		return nil, err
	}

	s.logger.DebugContext(ctx, "fetched user quote", slog.Int("fields", len(quote)))

	return quote, nil
}
