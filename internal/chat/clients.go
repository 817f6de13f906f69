package chat

//go:generate mockgen -destination=./clients_mock_test.go -package=chat -source=clients.go

import (
	"context"
	"iter"

	"portfolio-assistant/internal/llm"
)

// Gateway is the contract for the generation gateway the chat service calls.
// llm.Service satisfies it.
type Gateway interface {
	// Generate returns the full reply.
	Generate(ctx context.Context, req *llm.GenerationRequest) (string, error)
	// Stream yields the reply in arrival order.
	Stream(ctx context.Context, req *llm.GenerationRequest) iter.Seq2[string, error]
}
