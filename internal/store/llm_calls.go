package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/lessonforge/lessonforge/internal/llm"
)

// LLMCallSummary is the list-view projection of a logged LLM call.
type LLMCallSummary struct {
	ID           int64
	Provider     string
	Model        string
	Purpose      string
	LatencyMs    int64
	Success      bool
	InputTokens  int
	OutputTokens int
	ErrorMessage string
	CreatedAt    time.Time
}

// CallLogRepo persists LLM call records. It satisfies llm.CallLog.
type CallLogRepo interface {
	llm.CallLog
	ListCalls(ctx context.Context, limit int) ([]LLMCallSummary, error)
}

// CallLogRepo returns a CallLogRepo backed by this store.
func (s *Store) CallLogRepo() CallLogRepo {
	return &callLogRepo{db: s.db}
}

type callLogRepo struct {
	db *sql.DB
}

func (r *callLogRepo) AppendLLMCall(ctx context.Context, rec llm.CallRecord) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO llm_calls
			(provider, model, purpose, latency_ms, success, input_tokens,
			 output_tokens, request_body, response_body, error_message, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.Provider, rec.Model, rec.Purpose, rec.LatencyMs, rec.Success,
		rec.InputTokens, rec.OutputTokens, rec.RequestBody, rec.ResponseBody,
		rec.ErrorMessage, time.Now(),
	)
	if err != nil {
		return fmt.Errorf("insert llm call: %w", err)
	}
	return nil
}

func (r *callLogRepo) ListCalls(ctx context.Context, limit int) ([]LLMCallSummary, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, provider, model, purpose, latency_ms, success,
		       input_tokens, output_tokens, error_message, created_at
		FROM llm_calls ORDER BY created_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query llm calls: %w", err)
	}
	defer rows.Close()

	var out []LLMCallSummary
	for rows.Next() {
		var s LLMCallSummary
		if err := rows.Scan(
			&s.ID, &s.Provider, &s.Model, &s.Purpose, &s.LatencyMs,
			&s.Success, &s.InputTokens, &s.OutputTokens, &s.ErrorMessage,
			&s.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan llm call: %w", err)
		}
		out = append(out, s)
	}
	return out, rows.Err()
}
