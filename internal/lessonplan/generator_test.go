package lessonplan

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/lessonforge/lessonforge/internal/llm"
)

func worksheetText(count int) string {
	var b strings.Builder
	for i := 1; i <= count; i++ {
		fmt.Fprintf(&b, "===WORKSHEET %d===\nTITLE: Worksheet %d: Photosynthesis\nOBJECTIVE: Practice\nDURATION: 20 minutes\n\nSECTION A: FILL IN THE BLANKS\n1. ________\n\n", i, i)
	}
	return b.String()
}

func genRequest() Request {
	return Request{
		Topic:           "Photosynthesis",
		Subject:         "Science",
		ClassLevel:      "Class 7",
		Language:        "English",
		DurationMinutes: 40,
		NumSessions:     4,
	}
}

func TestGenerator_Generate(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Text: plannerText},
		llm.MockResponse{Text: worksheetText(4)},
	)
	g := NewGenerator(mock, DefaultGeneratorConfig())

	plan, err := g.Generate(context.Background(), genRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(plan.ID) != 8 {
		t.Errorf("ID = %q, want 8 chars", plan.ID)
	}
	if plan.Header.Class != "Class 7" || plan.Header.Lesson != "Photosynthesis" {
		t.Errorf("Header = %+v", plan.Header)
	}
	if plan.Header.Periods != "4 periods" {
		t.Errorf("Periods = %q", plan.Header.Periods)
	}
	if plan.Header.TotalDuration != "160 minutes" {
		t.Errorf("TotalDuration = %q", plan.Header.TotalDuration)
	}
	if len(plan.Sessions) != 4 {
		t.Fatalf("expected 4 sessions, got %d", len(plan.Sessions))
	}
	if len(plan.Worksheets) != 4 {
		t.Fatalf("expected 4 worksheets, got %d", len(plan.Worksheets))
	}
	for i, s := range plan.Sessions {
		if s.WorksheetRef != plan.Worksheets[i].Title {
			t.Errorf("session %d WorksheetRef = %q, worksheet title = %q", i+1, s.WorksheetRef, plan.Worksheets[i].Title)
		}
	}
	if plan.FormattedText != plannerText {
		t.Error("FormattedText does not carry the generated lesson text")
	}
	if len(plan.YouTubeLinks) == 0 || len(plan.WebResources) == 0 {
		t.Error("expected curated resource links")
	}

	// Two calls: lesson plan first, then worksheets.
	if mock.CallCount() != 2 {
		t.Fatalf("expected 2 LLM calls, got %d", mock.CallCount())
	}
	if mock.Calls[0].MaxTokens != 2500 {
		t.Errorf("lesson MaxTokens = %d", mock.Calls[0].MaxTokens)
	}
	if mock.Calls[1].MaxTokens != 4000 {
		t.Errorf("worksheet MaxTokens = %d", mock.Calls[1].MaxTokens)
	}
	if mock.Calls[0].Temperature != 0.5 {
		t.Errorf("Temperature = %v", mock.Calls[0].Temperature)
	}
}

func TestGenerator_PadsMissingWorksheets(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Text: plannerText},
		llm.MockResponse{Text: worksheetText(2)},
	)
	g := NewGenerator(mock, DefaultGeneratorConfig())

	plan, err := g.Generate(context.Background(), genRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(plan.Worksheets) != 4 {
		t.Fatalf("expected 4 worksheets, got %d", len(plan.Worksheets))
	}
	for i, ws := range plan.Worksheets {
		if ws.Number != i+1 {
			t.Errorf("worksheet %d: Number = %d", i, ws.Number)
		}
		if strings.TrimSpace(ws.Content) == "" {
			t.Errorf("worksheet %d: empty content", i)
		}
	}
	// Padded worksheets carry the raw text so nothing renders empty.
	if plan.Worksheets[3].Title != "Worksheet 4: Photosynthesis" {
		t.Errorf("padded title = %q", plan.Worksheets[3].Title)
	}
}

func TestGenerator_TruncatesExtraWorksheets(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Text: plannerText},
		llm.MockResponse{Text: worksheetText(7)},
	)
	g := NewGenerator(mock, DefaultGeneratorConfig())

	plan, err := g.Generate(context.Background(), genRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(plan.Worksheets) != 4 {
		t.Fatalf("expected 4 worksheets, got %d", len(plan.Worksheets))
	}
}

func TestGenerator_LessonFailureAborts(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Err: &llm.ErrProviderUnavailable{Err: errors.New("down")}},
	)
	g := NewGenerator(mock, DefaultGeneratorConfig())

	_, err := g.Generate(context.Background(), genRequest())
	if err == nil {
		t.Fatal("expected error")
	}
	// Worksheet generation never ran.
	if mock.CallCount() != 1 {
		t.Fatalf("expected 1 call, got %d", mock.CallCount())
	}
}

func TestGenerator_EmptyLessonTextIsError(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Text: ""},
	)
	g := NewGenerator(mock, DefaultGeneratorConfig())

	_, err := g.Generate(context.Background(), genRequest())
	if err == nil {
		t.Fatal("expected error for empty lesson text")
	}
	var empty *llm.ErrEmptyResponse
	if !errors.As(err, &empty) {
		t.Fatalf("expected ErrEmptyResponse, got %T", err)
	}
}
