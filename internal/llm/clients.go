package llm

//go:generate mockgen -destination=./clients_mock_test.go -package=llm -source=clients.go

import (
	"context"
	"fmt"
	"iter"
	"strings"

	"google.golang.org/genai"
)

// ProviderClient defines the contract for an external text-generation provider.
type ProviderClient interface {
	// GenerateContent waits for the complete reply.
	GenerateContent(ctx context.Context, req *GenerationRequest) (string, error)
	// GenerateContentStream yields reply fragments in arrival order.
	GenerateContentStream(ctx context.Context, req *GenerationRequest) iter.Seq2[string, error]
}

// geminiClient talks to the Gemini API through the genai SDK.
type geminiClient struct {
	client *genai.Client
	model  string
}

// NewGeminiClient creates a real client for the given model.
func NewGeminiClient(ctx context.Context, apiKey, model string) (ProviderClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("Gemini API key is required")
	}
	if model == "" {
		return nil, fmt.Errorf("Gemini model is required")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &geminiClient{
		client: client,
		model:  model,
	}, nil
}

func (c *geminiClient) GenerateContent(ctx context.Context, req *GenerationRequest) (string, error) {
	resp, err := c.client.Models.GenerateContent(ctx, c.model, toContents(req.Turns), toConfig(req))
	if err != nil {
		return "", fmt.Errorf("Gemini generate failed: %w", err)
	}
	return resp.Text(), nil
}

func (c *geminiClient) GenerateContentStream(ctx context.Context, req *GenerationRequest) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		for resp, err := range c.client.Models.GenerateContentStream(ctx, c.model, toContents(req.Turns), toConfig(req)) {
			if err != nil {
				yield("", fmt.Errorf("Gemini stream failed: %w", err))
				return
			}
			text := resp.Text()
			if text == "" {
				// Chunks carrying only metadata have no text.
				continue
			}
			if !yield(text, nil) {
				return
			}
		}
	}
}

// toContents maps turns onto the provider's content list.
func toContents(turns []Turn) []*genai.Content {
	contents := make([]*genai.Content, len(turns))
	for i, t := range turns {
		var role genai.Role = genai.RoleModel
		if t.Role == RoleUser {
			role = genai.RoleUser
		}
		contents[i] = genai.NewContentFromText(t.Text, role)
	}
	return contents
}

// toConfig carries the grounding text as a system-level directive.
func toConfig(req *GenerationRequest) *genai.GenerateContentConfig {
	return &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(req.SystemInstruction, genai.RoleUser),
	}
}

// stubClient is a fake ProviderClient that always gives the same reply.
type stubClient struct {
	reply string
}

// NewStubClient creates a fake client. An empty reply gets a canned answer.
func NewStubClient(reply string) ProviderClient {
	if reply == "" {
		reply = "Hello! I can tell you about the owner's skills, projects and experience."
	}
	return &stubClient{reply: reply}
}

func (s *stubClient) GenerateContent(ctx context.Context, req *GenerationRequest) (string, error) {
	if len(req.Turns) == 0 {
		return "", fmt.Errorf("contents must not be empty")
	}
	return s.reply, nil
}

// GenerateContentStream yields the reply word by word, spaces kept.
func (s *stubClient) GenerateContentStream(ctx context.Context, req *GenerationRequest) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		if len(req.Turns) == 0 {
			yield("", fmt.Errorf("contents must not be empty"))
			return
		}
		for _, word := range strings.SplitAfter(s.reply, " ") {
			if err := ctx.Err(); err != nil {
				yield("", err)
				return
			}
			if !yield(word, nil) {
				return
			}
		}
	}
}
