package llm

import (
	"fmt"
	"os"
	"time"
)

// Config holds all LLM provider configuration.
type Config struct {
	// Provider selects which LLM provider to use.
	// Values: "groq", "openai", "anthropic", "gemini", "mock"
	Provider string

	Groq      GroqConfig
	OpenAI    OpenAIConfig
	Anthropic AnthropicConfig
	Gemini    GeminiConfig
	Retry     RetryConfig

	// Timeout is the maximum duration for a single generation request
	// (including retries). Lesson and worksheet generation are long-form,
	// so the default is deliberately generous.
	Timeout time.Duration
}

// GroqConfig holds Groq-specific configuration. Groq exposes an
// OpenAI-compatible API, so only the key and model are needed.
type GroqConfig struct {
	APIKey  string
	Model   string // Default: "llama-3.3-70b-versatile"
	BaseURL string // Default: "https://api.groq.com/openai/v1"
}

// OpenAIConfig holds OpenAI-specific configuration.
type OpenAIConfig struct {
	APIKey  string
	Model   string // Default: "gpt-4o-mini"
	BaseURL string // Optional. Override for compatible APIs.
}

// AnthropicConfig holds Anthropic-specific configuration.
type AnthropicConfig struct {
	APIKey string
	Model  string // Default: "claude-haiku"
}

// GeminiConfig holds Gemini-specific configuration.
type GeminiConfig struct {
	APIKey string
	Model  string // Default: "gemini-flash"
}

// RetryConfig configures retry behavior for transient failures.
type RetryConfig struct {
	MaxAttempts int
	InitialWait time.Duration
	MaxWait     time.Duration
	Multiplier  float64
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Provider: "groq",
		Groq: GroqConfig{
			Model:   "llama-3.3-70b-versatile",
			BaseURL: "https://api.groq.com/openai/v1",
		},
		OpenAI: OpenAIConfig{
			Model: "gpt-4o-mini",
		},
		Anthropic: AnthropicConfig{
			Model: "claude-haiku",
		},
		Gemini: GeminiConfig{
			Model: "gemini-flash",
		},
		Retry: RetryConfig{
			MaxAttempts: 3,
			InitialWait: 1 * time.Second,
			MaxWait:     10 * time.Second,
			Multiplier:  2.0,
		},
		Timeout: 3 * time.Minute,
	}
}

// ConfigFromEnv builds a Config from environment variables, falling back
// to defaults for unset values.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()

	if p := os.Getenv("LESSONFORGE_LLM_PROVIDER"); p != "" {
		cfg.Provider = p
	}

	if k := os.Getenv("LESSONFORGE_GROQ_API_KEY"); k != "" {
		cfg.Groq.APIKey = k
	}
	if m := os.Getenv("LESSONFORGE_GROQ_MODEL"); m != "" {
		cfg.Groq.Model = m
	}

	if k := os.Getenv("LESSONFORGE_OPENAI_API_KEY"); k != "" {
		cfg.OpenAI.APIKey = k
	}
	if m := os.Getenv("LESSONFORGE_OPENAI_MODEL"); m != "" {
		cfg.OpenAI.Model = m
	}
	if u := os.Getenv("LESSONFORGE_OPENAI_BASE_URL"); u != "" {
		cfg.OpenAI.BaseURL = u
	}

	if k := os.Getenv("LESSONFORGE_ANTHROPIC_API_KEY"); k != "" {
		cfg.Anthropic.APIKey = k
	}
	if m := os.Getenv("LESSONFORGE_ANTHROPIC_MODEL"); m != "" {
		cfg.Anthropic.Model = m
	}

	if k := os.Getenv("LESSONFORGE_GEMINI_API_KEY"); k != "" {
		cfg.Gemini.APIKey = k
	}
	if m := os.Getenv("LESSONFORGE_GEMINI_MODEL"); m != "" {
		cfg.Gemini.Model = m
	}

	return cfg
}

// DiscoverConfig probes standard API key env vars in priority order
// (Groq → Gemini → OpenAI → Anthropic) and returns a Config for the
// first provider whose key is found. Returns (Config{}, false) if none.
func DiscoverConfig() (Config, bool) {
	cfg := DefaultConfig()

	if k := os.Getenv("GROQ_API_KEY"); k != "" {
		cfg.Provider = "groq"
		cfg.Groq.APIKey = k
		return cfg, true
	}
	if k := os.Getenv("GEMINI_API_KEY"); k != "" {
		cfg.Provider = "gemini"
		cfg.Gemini.APIKey = k
		return cfg, true
	}
	if k := os.Getenv("OPENAI_API_KEY"); k != "" {
		cfg.Provider = "openai"
		cfg.OpenAI.APIKey = k
		return cfg, true
	}
	if k := os.Getenv("ANTHROPIC_API_KEY"); k != "" {
		cfg.Provider = "anthropic"
		cfg.Anthropic.APIKey = k
		return cfg, true
	}

	return Config{}, false
}

// Validate checks that the selected provider has its required API key set.
func (c Config) Validate() error {
	switch c.Provider {
	case "groq":
		if c.Groq.APIKey == "" {
			return fmt.Errorf("LESSONFORGE_GROQ_API_KEY is required for the groq provider")
		}
	case "openai":
		if c.OpenAI.APIKey == "" {
			return fmt.Errorf("LESSONFORGE_OPENAI_API_KEY is required for the openai provider")
		}
	case "anthropic":
		if c.Anthropic.APIKey == "" {
			return fmt.Errorf("LESSONFORGE_ANTHROPIC_API_KEY is required for the anthropic provider")
		}
	case "gemini":
		if c.Gemini.APIKey == "" {
			return fmt.Errorf("LESSONFORGE_GEMINI_API_KEY is required for the gemini provider")
		}
	case "mock":
		// No API key needed.
	default:
		return fmt.Errorf("unknown LLM provider: %q", c.Provider)
	}
	return nil
}
