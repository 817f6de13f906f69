package chat

//go:generate mockgen -destination=./service_mock_test.go -package=chat -source=service.go Service

import (
	"context"
	"iter"

	"portfolio-assistant/internal/llm"
	"portfolio-assistant/internal/profile"
	"portfolio-assistant/internal/prompt"

	"go.uber.org/zap"
)

// Service defines the business logic of the portfolio assistant.
type Service interface {
	// Reply answers the last visitor message in one piece.
	Reply(ctx context.Context, messages []Message) (string, error)

	// ReplyStream answers in fragments. The error is only for a request
	// that cannot be sent at all; provider failures arrive through the sequence.
	ReplyStream(ctx context.Context, messages []Message) (iter.Seq2[string, error], error)
}

// service is the concrete implementation of the Service interface.
type service struct {
	gateway     Gateway
	instruction string // grounding text, identical for every call
	logger      *zap.Logger
}

// NewService is the constructor for the chat service.
// The system instruction is rendered once from the profile.
func NewService(gateway Gateway, p *profile.Profile, logger *zap.Logger) Service {
	return &service{
		gateway:     gateway,
		instruction: prompt.Build(p),
		logger:      logger,
	}
}

// Reply implements the Service interface.
func (s *service) Reply(ctx context.Context, messages []Message) (string, error) {
	req, err := s.buildRequest(messages)
	if err != nil {
		return "", err
	}
	return s.gateway.Generate(ctx, req)
}

// ReplyStream implements the Service interface.
func (s *service) ReplyStream(ctx context.Context, messages []Message) (iter.Seq2[string, error], error) {
	req, err := s.buildRequest(messages)
	if err != nil {
		return nil, err
	}
	return s.gateway.Stream(ctx, req), nil
}

// buildRequest normalizes the history and attaches the grounding instruction.
// A conversation with no turns never reaches the gateway.
func (s *service) buildRequest(messages []Message) (*llm.GenerationRequest, error) {
	turns, err := NormalizeHistory(messages)
	if err != nil {
		s.logger.Warn("rejected conversation", zap.Int("messages", len(messages)), zap.Error(err))
		return nil, err
	}
	return &llm.GenerationRequest{
		SystemInstruction: s.instruction,
		Turns:             turns,
	}, nil
}
