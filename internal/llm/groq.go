package llm

import (
	"context"
	"fmt"
)

const groqBaseURL = "https://api.groq.com/openai/v1"

// groqModels maps friendly names to Groq model IDs.
var groqModels = map[string]string{
	"llama-3.3-70b-versatile": "llama-3.3-70b-versatile",
	"llama-3.1-8b-instant":    "llama-3.1-8b-instant",
}

// GroqProvider implements Provider using Groq's OpenAI-compatible API.
type GroqProvider struct {
	inner *OpenAIProvider
	model string
}

// NewGroqProvider creates a new Groq provider.
func NewGroqProvider(cfg GroqConfig) (*GroqProvider, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("groq API key is required")
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = groqBaseURL
	}
	model := resolveModel(cfg.Model, groqModels)

	inner, err := NewOpenAIProvider(OpenAIConfig{
		APIKey:  cfg.APIKey,
		Model:   model,
		BaseURL: baseURL,
	})
	if err != nil {
		return nil, err
	}

	return &GroqProvider{
		inner: inner,
		model: model,
	}, nil
}

func (p *GroqProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	return p.inner.Generate(ctx, req)
}

func (p *GroqProvider) ModelID() string {
	return p.model
}
