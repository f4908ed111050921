package llm

import "context"

// Provider is the core abstraction for text generation. The lesson and
// worksheet pipelines consume free-form prose and parse it defensively,
// so the contract is deliberately plain text in, plain text out.
type Provider interface {
	// Generate sends one prompt to the model and returns its text.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the model identifier this provider is configured to use.
	ModelID() string
}

// Request describes one generation call.
type Request struct {
	// System sets the model's role and constraints.
	System string

	// Prompt is the user message. Generation here is single-turn: the
	// dialogue that collects parameters never reaches the model.
	Prompt string

	// MaxTokens caps the response length.
	MaxTokens int

	// Temperature controls randomness, 0.0 - 1.0. Zero means deterministic.
	Temperature float64
}

// Response holds the model's output.
type Response struct {
	// Text is the generated prose.
	Text string

	// Usage reports token consumption for this request.
	Usage Usage

	// Model is the actual model that served the request.
	Model string

	// StopReason is normalized to: "end", "max_tokens".
	StopReason string
}

// Usage tracks token consumption for a single request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
