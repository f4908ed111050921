package stt

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

const groqBaseURL = "https://api.groq.com/openai/v1"

// Config holds transcription backend configuration.
type Config struct {
	APIKey  string
	Model   string        // Default: "whisper-large-v3"
	BaseURL string        // Default: Groq's OpenAI-compatible endpoint
	Timeout time.Duration // Per-transcription deadline
}

// DefaultConfig returns a Config with standard defaults.
func DefaultConfig() Config {
	return Config{
		Model:   "whisper-large-v3",
		BaseURL: groqBaseURL,
		Timeout: 2 * time.Minute,
	}
}

// ConfigFromEnv builds a Config from environment variables. The Groq key
// is shared with the LLM provider when no dedicated key is set.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()

	if k := os.Getenv("LESSONFORGE_STT_API_KEY"); k != "" {
		cfg.APIKey = k
	} else if k := os.Getenv("LESSONFORGE_GROQ_API_KEY"); k != "" {
		cfg.APIKey = k
	} else if k := os.Getenv("GROQ_API_KEY"); k != "" {
		cfg.APIKey = k
	}
	if m := os.Getenv("LESSONFORGE_STT_MODEL"); m != "" {
		cfg.Model = m
	}

	return cfg
}

// WhisperTranscriber implements Transcriber using Whisper served over
// Groq's OpenAI-compatible audio API.
type WhisperTranscriber struct {
	client  *openai.Client
	model   string
	timeout time.Duration
}

// NewWhisperTranscriber creates a Whisper-backed transcriber.
func NewWhisperTranscriber(cfg Config) (*WhisperTranscriber, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("stt API key is required")
	}

	config := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		config.BaseURL = cfg.BaseURL
	}

	model := cfg.Model
	if model == "" {
		model = "whisper-large-v3"
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 2 * time.Minute
	}

	return &WhisperTranscriber{
		client:  openai.NewClientWithConfig(config),
		model:   model,
		timeout: timeout,
	}, nil
}

func (t *WhisperTranscriber) Transcribe(ctx context.Context, audio []byte) (string, error) {
	if len(audio) == 0 {
		return "", &ErrTranscription{Err: fmt.Errorf("empty audio")}
	}

	ctx, cancel := context.WithTimeout(ctx, t.timeout)
	defer cancel()

	resp, err := t.client.CreateTranscription(ctx, openai.AudioRequest{
		Model:    t.model,
		Reader:   bytes.NewReader(audio),
		FilePath: "recording.webm",
	})
	if err != nil {
		return "", &ErrTranscription{Err: err}
	}

	return strings.TrimSpace(resp.Text), nil
}
