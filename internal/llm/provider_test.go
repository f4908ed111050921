package llm

import (
	"context"
	"errors"
	"testing"
)

func TestMockProvider_ReturnsCannedResponses(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Text: "first answer", Usage: Usage{InputTokens: 10, OutputTokens: 5, TotalTokens: 15}},
		MockResponse{Text: "second answer"},
	)

	resp1, err := mock.Generate(context.Background(), Request{Prompt: "first"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp1.Text != "first answer" {
		t.Fatalf("expected 'first answer', got %s", resp1.Text)
	}
	if resp1.Usage.InputTokens != 10 {
		t.Fatalf("expected 10 input tokens, got %d", resp1.Usage.InputTokens)
	}
	if resp1.StopReason != "end" {
		t.Fatalf("expected stop reason 'end', got %q", resp1.StopReason)
	}

	resp2, err := mock.Generate(context.Background(), Request{Prompt: "second"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp2.Text != "second answer" {
		t.Fatalf("expected 'second answer', got %s", resp2.Text)
	}
}

func TestMockProvider_EmptyQueueReturnsError(t *testing.T) {
	mock := NewMockProvider()
	_, err := mock.Generate(context.Background(), Request{})
	if err == nil {
		t.Fatal("expected error from empty queue")
	}
	var unavail *ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("expected ErrProviderUnavailable, got: %T", err)
	}
}

func TestMockProvider_RecordsCalls(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Text: "ok"},
	)

	req := Request{
		System: "sys",
		Prompt: "hello",
	}
	_, _ = mock.Generate(context.Background(), req)

	if mock.CallCount() != 1 {
		t.Fatalf("expected 1 call, got %d", mock.CallCount())
	}
	if mock.Calls[0].System != "sys" {
		t.Fatalf("expected system 'sys', got %q", mock.Calls[0].System)
	}
}

func TestMockProvider_ReturnsConfiguredError(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Err: &ErrRateLimit{RetryAfter: 0}},
	)

	_, err := mock.Generate(context.Background(), Request{})
	if err == nil {
		t.Fatal("expected error")
	}
	var rl *ErrRateLimit
	if !errors.As(err, &rl) {
		t.Fatalf("expected ErrRateLimit, got: %T", err)
	}
}

func TestMockProvider_ModelID(t *testing.T) {
	mock := NewMockProvider()
	if mock.ModelID() != "mock" {
		t.Fatalf("expected 'mock', got %q", mock.ModelID())
	}
}

func TestPurposeContext(t *testing.T) {
	ctx := context.Background()
	if p := PurposeFrom(ctx); p != "unknown" {
		t.Fatalf("expected 'unknown', got %q", p)
	}

	ctx = WithPurpose(ctx, "lesson-plan")
	if p := PurposeFrom(ctx); p != "lesson-plan" {
		t.Fatalf("expected 'lesson-plan', got %q", p)
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{
			name:    "groq without key",
			cfg:     Config{Provider: "groq"},
			wantErr: true,
		},
		{
			name:    "groq with key",
			cfg:     Config{Provider: "groq", Groq: GroqConfig{APIKey: "gsk-test"}},
			wantErr: false,
		},
		{
			name:    "anthropic without key",
			cfg:     Config{Provider: "anthropic"},
			wantErr: true,
		},
		{
			name:    "anthropic with key",
			cfg:     Config{Provider: "anthropic", Anthropic: AnthropicConfig{APIKey: "sk-test"}},
			wantErr: false,
		},
		{
			name:    "openai without key",
			cfg:     Config{Provider: "openai"},
			wantErr: true,
		},
		{
			name:    "mock needs no key",
			cfg:     Config{Provider: "mock"},
			wantErr: false,
		},
		{
			name:    "unknown provider",
			cfg:     Config{Provider: "unknown"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
