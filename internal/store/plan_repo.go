package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/lessonforge/lessonforge/internal/lessonplan"
)

// ErrPlanNotFound is returned when no plan exists for the given id.
var ErrPlanNotFound = errors.New("lesson plan not found")

// PlanSummary is the list-view projection of a stored plan.
type PlanSummary struct {
	ID          string
	Topic       string
	Subject     string
	ClassLevel  string
	Language    string
	NumSessions int
	CreatedAt   time.Time
}

// PlanRepo persists and retrieves complete lesson plans.
type PlanRepo interface {
	SavePlan(ctx context.Context, plan *lessonplan.Plan) error
	GetPlan(ctx context.Context, id string) (*lessonplan.Plan, error)
	ListPlans(ctx context.Context, limit int) ([]PlanSummary, error)
}

// PlanRepo returns a PlanRepo backed by this store.
func (s *Store) PlanRepo() PlanRepo {
	return &planRepo{db: s.db}
}

type planRepo struct {
	db *sql.DB
}

// planLinks is the JSON shape of the links_json column.
type planLinks struct {
	YouTube []lessonplan.ResourceLink `json:"youtube"`
	Web     []lessonplan.ResourceLink `json:"web"`
}

// activitySep joins activity lists into one column. U+001F is the unit
// separator and cannot occur in generated text.
const activitySep = "\x1f"

func (r *planRepo) SavePlan(ctx context.Context, plan *lessonplan.Plan) error {
	links, err := json.Marshal(planLinks{
		YouTube: plan.YouTubeLinks,
		Web:     plan.WebResources,
	})
	if err != nil {
		return fmt.Errorf("marshal links: %w", err)
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO lesson_plans
			(id, topic, subject, class_level, language, duration_mins,
			 num_sessions, formatted_text, links_json, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		plan.ID, plan.Header.Lesson, plan.Header.Subject, plan.Header.Class,
		plan.Header.Language, durationFromLabel(plan.Header.Duration),
		len(plan.Sessions), plan.FormattedText, string(links), plan.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert plan: %w", err)
	}

	for _, s := range plan.Sessions {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO lesson_sessions
				(plan_id, number, duration, competency, elo, activities,
				 resources_tlm, worksheet_ref, assessment)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			plan.ID, s.Number, s.Duration, s.Competency, s.ELO,
			strings.Join(s.Activities, activitySep),
			s.ResourcesTLM, s.WorksheetRef, s.Assessment,
		)
		if err != nil {
			return fmt.Errorf("insert session %d: %w", s.Number, err)
		}
	}

	for _, w := range plan.Worksheets {
		sections, err := json.Marshal(w.Sections)
		if err != nil {
			return fmt.Errorf("marshal worksheet %d sections: %w", w.Number, err)
		}
		_, err = tx.ExecContext(ctx, `
			INSERT INTO worksheets
				(plan_id, number, title, objective, duration, content, sections_json)
			VALUES (?, ?, ?, ?, ?, ?, ?)`,
			plan.ID, w.Number, w.Title, w.Objective, w.Duration, w.Content,
			string(sections),
		)
		if err != nil {
			return fmt.Errorf("insert worksheet %d: %w", w.Number, err)
		}
	}

	return tx.Commit()
}

func (r *planRepo) GetPlan(ctx context.Context, id string) (*lessonplan.Plan, error) {
	var (
		plan      lessonplan.Plan
		duration  int
		sessions  int
		linksJSON string
	)
	err := r.db.QueryRowContext(ctx, `
		SELECT id, topic, subject, class_level, language, duration_mins,
		       num_sessions, formatted_text, links_json, created_at
		FROM lesson_plans WHERE id = ?`, id,
	).Scan(
		&plan.ID, &plan.Header.Lesson, &plan.Header.Subject,
		&plan.Header.Class, &plan.Header.Language, &duration, &sessions,
		&plan.FormattedText, &linksJSON, &plan.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrPlanNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query plan: %w", err)
	}

	plan.Header.Periods = fmt.Sprintf("%d periods", sessions)
	plan.Header.Duration = fmt.Sprintf("%d minutes each", duration)
	plan.Header.TotalDuration = fmt.Sprintf("%d minutes", duration*sessions)

	var links planLinks
	if err := json.Unmarshal([]byte(linksJSON), &links); err != nil {
		return nil, fmt.Errorf("unmarshal links: %w", err)
	}
	plan.YouTubeLinks = links.YouTube
	plan.WebResources = links.Web

	if plan.Sessions, err = r.loadSessions(ctx, id); err != nil {
		return nil, err
	}
	if plan.Worksheets, err = r.loadWorksheets(ctx, id); err != nil {
		return nil, err
	}

	return &plan, nil
}

func (r *planRepo) loadSessions(ctx context.Context, planID string) ([]lessonplan.Session, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT number, duration, competency, elo, activities,
		       resources_tlm, worksheet_ref, assessment
		FROM lesson_sessions WHERE plan_id = ? ORDER BY number`, planID)
	if err != nil {
		return nil, fmt.Errorf("query sessions: %w", err)
	}
	defer rows.Close()

	var sessions []lessonplan.Session
	for rows.Next() {
		var (
			s          lessonplan.Session
			activities string
		)
		if err := rows.Scan(
			&s.Number, &s.Duration, &s.Competency, &s.ELO, &activities,
			&s.ResourcesTLM, &s.WorksheetRef, &s.Assessment,
		); err != nil {
			return nil, fmt.Errorf("scan session: %w", err)
		}
		s.Activities = strings.Split(activities, activitySep)
		s.EResources = []string{}
		sessions = append(sessions, s)
	}
	return sessions, rows.Err()
}

func (r *planRepo) loadWorksheets(ctx context.Context, planID string) ([]lessonplan.Worksheet, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT number, title, objective, duration, content, sections_json
		FROM worksheets WHERE plan_id = ? ORDER BY number`, planID)
	if err != nil {
		return nil, fmt.Errorf("query worksheets: %w", err)
	}
	defer rows.Close()

	var worksheets []lessonplan.Worksheet
	for rows.Next() {
		var (
			w        lessonplan.Worksheet
			sections string
		)
		if err := rows.Scan(
			&w.Number, &w.Title, &w.Objective, &w.Duration, &w.Content,
			&sections,
		); err != nil {
			return nil, fmt.Errorf("scan worksheet: %w", err)
		}
		if err := json.Unmarshal([]byte(sections), &w.Sections); err != nil {
			return nil, fmt.Errorf("unmarshal worksheet %d sections: %w", w.Number, err)
		}
		worksheets = append(worksheets, w)
	}
	return worksheets, rows.Err()
}

func (r *planRepo) ListPlans(ctx context.Context, limit int) ([]PlanSummary, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, topic, subject, class_level, language, num_sessions, created_at
		FROM lesson_plans ORDER BY created_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query plans: %w", err)
	}
	defer rows.Close()

	var out []PlanSummary
	for rows.Next() {
		var s PlanSummary
		if err := rows.Scan(
			&s.ID, &s.Topic, &s.Subject, &s.ClassLevel, &s.Language,
			&s.NumSessions, &s.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan plan summary: %w", err)
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// durationFromLabel recovers the per-session minute count from the header
// label, e.g. "40 minutes each" -> 40.
func durationFromLabel(label string) int {
	var n int
	fmt.Sscanf(label, "%d", &n)
	return n
}
