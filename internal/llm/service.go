package llm

import (
	"context"
	"errors"
	"fmt"
	"iter"

	"go.uber.org/zap"
)

// ErrGenerationFailed wraps every provider or transport failure.
var ErrGenerationFailed = errors.New("generation failed")

// Service is the generation gateway: one provider call per conversation turn, never retried.
type Service interface {
	// Generate returns the whole reply at once.
	Generate(ctx context.Context, req *GenerationRequest) (string, error)

	// Stream yields the reply in fragments, in arrival order.
	Stream(ctx context.Context, req *GenerationRequest) iter.Seq2[string, error]
}

// service is the concrete implementation of the Service interface.
type service struct {
	provider ProviderClient // client for the external provider
	logger   *zap.Logger
}

// NewService is the constructor for the generation gateway.
func NewService(provider ProviderClient, logger *zap.Logger) Service {
	return &service{
		provider: provider,
		logger:   logger,
	}
}

// Generate implements the Service interface.
func (s *service) Generate(ctx context.Context, req *GenerationRequest) (string, error) {
	if len(req.Turns) == 0 {
		return "", fmt.Errorf("%w: request has no turns", ErrGenerationFailed)
	}

	text, err := s.provider.GenerateContent(ctx, req)
	if err != nil {
		s.logger.Error("provider call failed", zap.Int("turns", len(req.Turns)), zap.Error(err))
		return "", fmt.Errorf("%w: %w", ErrGenerationFailed, err)
	}

	s.logger.Debug("generated reply", zap.Int("turns", len(req.Turns)), zap.Int("chars", len(text)))
	return text, nil
}

// Stream implements the Service interface.
// Fragments are passed through untouched; the first error ends the sequence.
func (s *service) Stream(ctx context.Context, req *GenerationRequest) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		if len(req.Turns) == 0 {
			yield("", fmt.Errorf("%w: request has no turns", ErrGenerationFailed))
			return
		}

		fragments := 0
		for text, err := range s.provider.GenerateContentStream(ctx, req) {
			if err != nil {
				s.logger.Error("provider stream failed",
					zap.Int("turns", len(req.Turns)),
					zap.Int("fragments", fragments),
					zap.Error(err))
				yield("", fmt.Errorf("%w: %w", ErrGenerationFailed, err))
				return
			}
			fragments++
			if !yield(text, nil) {
				return
			}
		}

		s.logger.Debug("streamed reply", zap.Int("turns", len(req.Turns)), zap.Int("fragments", fragments))
	}
}
