package llm

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"
)

// CallRecord captures a single LLM request for persistence.
type CallRecord struct {
	Provider     string
	Model        string
	Purpose      string
	LatencyMs    int64
	Success      bool
	InputTokens  int
	OutputTokens int
	RequestBody  string
	ResponseBody string
	ErrorMessage string
}

// CallLog persists LLM call records. Implemented by the store package.
type CallLog interface {
	AppendLLMCall(ctx context.Context, rec CallRecord) error
}

// LoggingProvider is a decorator that records every LLM request.
type LoggingProvider struct {
	inner Provider
	log   CallLog
}

// WithLogging wraps a Provider with call logging.
func WithLogging(p Provider, log CallLog) Provider {
	return &LoggingProvider{inner: p, log: log}
}

func (l *LoggingProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()
	purpose := PurposeFrom(ctx)

	resp, err := l.inner.Generate(ctx, req)

	latencyMs := time.Since(start).Milliseconds()

	rec := CallRecord{
		Provider:    l.inner.ModelID(),
		Model:       l.inner.ModelID(),
		Purpose:     purpose,
		LatencyMs:   latencyMs,
		Success:     err == nil,
		RequestBody: serializeRequest(req),
	}

	if resp != nil {
		rec.InputTokens = resp.Usage.InputTokens
		rec.OutputTokens = resp.Usage.OutputTokens
		rec.Model = resp.Model
		rec.ResponseBody = resp.Text
	}

	if err != nil {
		rec.ErrorMessage = err.Error()
	}

	// Log the call but don't fail the request if logging fails.
	if logErr := l.log.AppendLLMCall(ctx, rec); logErr != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to log LLM call: %v\n", logErr)
	}

	return resp, err
}

func (l *LoggingProvider) ModelID() string {
	return l.inner.ModelID()
}

// serializeRequest builds a readable representation of the LLM request.
func serializeRequest(req Request) string {
	var b strings.Builder

	if req.System != "" {
		b.WriteString("[system]\n")
		b.WriteString(req.System)
		b.WriteString("\n\n")
	}

	b.WriteString("[user]\n")
	b.WriteString(req.Prompt)
	b.WriteString("\n")

	return b.String()
}
