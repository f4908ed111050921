package lessonplan

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/lessonforge/lessonforge/internal/llm"
)

// GeneratorConfig controls token budgets and sampling for plan generation.
type GeneratorConfig struct {
	LessonMaxTokens    int
	WorksheetMaxTokens int
	Temperature        float64
}

// DefaultGeneratorConfig returns the standard generation budgets.
func DefaultGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{
		LessonMaxTokens:    2500,
		WorksheetMaxTokens: 4000,
		Temperature:        0.5,
	}
}

// Generator produces complete lesson plans from collected parameters.
// It runs two LLM calls (lesson text, then worksheets) and assembles the
// parsed result into a Plan.
type Generator struct {
	provider llm.Provider
	config   GeneratorConfig
	now      func() time.Time
}

// NewGenerator creates a Generator backed by the given provider.
func NewGenerator(provider llm.Provider, cfg GeneratorConfig) *Generator {
	return &Generator{
		provider: provider,
		config:   cfg,
		now:      time.Now,
	}
}

// Generate builds a full lesson plan for the request: formatted lesson
// text, per-session breakdown, worksheets, and curated resource links.
func (g *Generator) Generate(ctx context.Context, req Request) (*Plan, error) {
	now := g.now()

	lessonCtx := llm.WithPurpose(ctx, "lesson-plan")
	lessonResp, err := g.provider.Generate(lessonCtx, llm.Request{
		System:      lessonSystemPrompt,
		Prompt:      buildLessonPrompt(req, now),
		MaxTokens:   g.config.LessonMaxTokens,
		Temperature: g.config.Temperature,
	})
	if err != nil {
		return nil, fmt.Errorf("generating lesson plan: %w", err)
	}
	if lessonResp.Text == "" {
		return nil, &llm.ErrEmptyResponse{Err: fmt.Errorf("empty lesson plan text")}
	}

	worksheetCtx := llm.WithPurpose(ctx, "worksheets")
	worksheetResp, err := g.provider.Generate(worksheetCtx, llm.Request{
		System:      worksheetSystemPrompt(req),
		Prompt:      buildWorksheetPrompt(req),
		MaxTokens:   g.config.WorksheetMaxTokens,
		Temperature: g.config.Temperature,
	})
	if err != nil {
		return nil, fmt.Errorf("generating worksheets: %w", err)
	}

	sessions := PlanSessions(lessonResp.Text, req.DurationMinutes, req.NumSessions)
	worksheets := ParseWorksheets(worksheetResp.Text, req.Topic, req.NumSessions)
	worksheets = reconcileWorksheets(worksheets, worksheetResp.Text, req)

	// Each session references its worksheet by title.
	for i := range sessions {
		sessions[i].WorksheetRef = worksheets[i].Title
	}

	plan := &Plan{
		ID: uuid.New().String()[:8],
		Header: Header{
			Class:         req.ClassLevel,
			Subject:       req.Subject,
			Lesson:        req.Topic,
			Periods:       fmt.Sprintf("%d periods", req.NumSessions),
			Duration:      fmt.Sprintf("%d minutes each", req.DurationMinutes),
			TotalDuration: fmt.Sprintf("%d minutes", req.TotalMinutes()),
			Language:      req.Language,
		},
		Sessions:      sessions,
		Worksheets:    worksheets,
		FormattedText: lessonResp.Text,
		YouTubeLinks:  youtubeLinks(req.Topic, req.Subject, req.ClassLevel),
		WebResources:  webResources(req.Topic, req.Subject, req.ClassLevel),
		CreatedAt:     now,
	}

	return plan, nil
}

// reconcileWorksheets forces the worksheet list to exactly NumSessions
// entries. Extra worksheets are dropped; missing ones are padded with the
// raw generation text so no session is left without material.
func reconcileWorksheets(worksheets []Worksheet, rawText string, req Request) []Worksheet {
	if len(worksheets) > req.NumSessions {
		worksheets = worksheets[:req.NumSessions]
	}
	for len(worksheets) < req.NumSessions {
		n := len(worksheets) + 1
		worksheets = append(worksheets, Worksheet{
			Number:    n,
			Title:     fmt.Sprintf("Worksheet %d: %s", n, req.Topic),
			Objective: fmt.Sprintf("Practice: %s", req.Topic),
			Duration:  "20 minutes",
			Content:   rawText,
			Sections:  map[string]string{},
		})
	}
	return worksheets
}
