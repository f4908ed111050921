// Package orchestrator coordinates conversations, transcription,
// generation and persistence for one process. Each session owns a
// single conversation; utterances within a session are serialized.
package orchestrator

import (
	"context"
	"encoding/base64"
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/lessonforge/lessonforge/internal/conversation"
	"github.com/lessonforge/lessonforge/internal/lessonplan"
	"github.com/lessonforge/lessonforge/internal/stt"
)

// PlanGenerator produces a complete lesson plan from finalized parameters.
type PlanGenerator interface {
	Generate(ctx context.Context, req lessonplan.Request) (*lessonplan.Plan, error)
}

// PlanSaver persists finished plans.
type PlanSaver interface {
	SavePlan(ctx context.Context, plan *lessonplan.Plan) error
}

// Response is what a session receives after one interaction.
type Response struct {
	Text       string
	Language   string // display name, e.g. "English"
	Speak      bool   // true when the response came from a voice turn
	DownloadID string // set once a finished plan is available
}

// Config tunes orchestrator timeouts.
type Config struct {
	// GenerateTimeout bounds one full plan generation (both LLM calls).
	GenerateTimeout time.Duration
}

// DefaultConfig returns the standard orchestrator timeouts.
func DefaultConfig() Config {
	return Config{
		GenerateTimeout: 5 * time.Minute,
	}
}

// session is the per-connection conversation slot. The mutex is held for
// the whole of an interaction, including transcription and generation, so
// utterances within one session never interleave.
type session struct {
	mu    sync.Mutex
	state *conversation.State
}

// Orchestrator routes session interactions to the dialogue machine and
// runs generation when a conversation completes.
type Orchestrator struct {
	machine     *conversation.Machine
	transcriber stt.Transcriber
	generator   PlanGenerator
	plans       PlanSaver
	config      Config

	mu       sync.Mutex
	sessions map[string]*session
}

// New creates an Orchestrator. The transcriber may be nil when voice
// input is not configured; HandleVoice then returns an error.
func New(machine *conversation.Machine, transcriber stt.Transcriber, generator PlanGenerator, plans PlanSaver, cfg Config) *Orchestrator {
	return &Orchestrator{
		machine:     machine,
		transcriber: transcriber,
		generator:   generator,
		plans:       plans,
		config:      cfg,
		sessions:    make(map[string]*session),
	}
}

// Connect registers a session and returns the opening prompt. Connecting
// an existing session id replaces its conversation.
func (o *Orchestrator) Connect(sessionID string) Response {
	o.mu.Lock()
	o.sessions[sessionID] = &session{state: conversation.NewState(sessionID)}
	o.mu.Unlock()

	turn := conversation.OpeningPrompt()
	return Response{Text: turn.Prompt, Language: turn.Language}
}

// Disconnect discards a session and its conversation state. In-flight
// generation for the session still completes and persists its plan; only
// the conversation is dropped.
func (o *Orchestrator) Disconnect(sessionID string) {
	o.mu.Lock()
	delete(o.sessions, sessionID)
	o.mu.Unlock()
}

// lookup returns the live session slot, creating one lazily so a caller
// that skipped Connect still gets a conversation. created reports whether
// this call made the slot.
func (o *Orchestrator) lookup(sessionID string) (*session, bool) {
	o.mu.Lock()
	defer o.mu.Unlock()
	s, ok := o.sessions[sessionID]
	if !ok {
		s = &session{state: conversation.NewState(sessionID)}
		o.sessions[sessionID] = s
	}
	return s, !ok
}

// live reports whether the given slot is still the registered session.
func (o *Orchestrator) live(sessionID string, s *session) bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.sessions[sessionID] == s
}

// HandleVoice decodes and transcribes one base64 audio recording, then
// advances the session's conversation with the transcript. The first
// message for an unseen session only opens the conversation: the greeting
// goes out and the recording is not transcribed.
func (o *Orchestrator) HandleVoice(ctx context.Context, sessionID, audioB64 string) (Response, error) {
	if o.transcriber == nil {
		return Response{}, fmt.Errorf("voice input is not configured")
	}

	s, created := o.lookup(sessionID)
	if created {
		turn := conversation.OpeningPrompt()
		return Response{Text: turn.Prompt, Language: turn.Language, Speak: true}, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	lang := s.state.LanguageMode

	audio, err := base64.StdEncoding.DecodeString(audioB64)
	if err != nil || len(audio) == 0 {
		return Response{
			Text:     cannotUnderstand(lang),
			Language: lang.Display(),
			Speak:    true,
		}, nil
	}

	transcript, err := o.transcriber.Transcribe(ctx, audio)
	if err != nil || strings.TrimSpace(transcript) == "" {
		return Response{
			Text:     cannotUnderstand(lang),
			Language: lang.Display(),
			Speak:    true,
		}, nil
	}

	resp := o.advanceLocked(ctx, sessionID, s, transcript)
	resp.Speak = true
	return resp, nil
}

// HandleUtterance advances the session's conversation with one text
// utterance.
func (o *Orchestrator) HandleUtterance(ctx context.Context, sessionID, utterance string) Response {
	s, _ := o.lookup(sessionID)
	s.mu.Lock()
	defer s.mu.Unlock()
	return o.advanceLocked(ctx, sessionID, s, utterance)
}

// advanceLocked runs one dialogue turn and, when the conversation
// completes, generation. The caller holds s.mu.
func (o *Orchestrator) advanceLocked(ctx context.Context, sessionID string, s *session, utterance string) Response {
	turn := o.machine.Advance(s.state, utterance)
	if turn.Action != conversation.ActionGenerate {
		return Response{Text: turn.Prompt, Language: turn.Language}
	}

	return o.generate(ctx, sessionID, s, turn)
}

// generate runs plan generation for a completed conversation. On success
// the plan is persisted and the conversation is destroyed; on failure the
// conversation is rewound to confirmation so the user can retry.
func (o *Orchestrator) generate(ctx context.Context, sessionID string, s *session, turn conversation.Turn) Response {
	p := s.state.Params
	req := lessonplan.Request{
		Topic:           p.Topic,
		Subject:         p.Subject,
		ClassLevel:      p.ClassLevel,
		Language:        p.Language,
		DurationMinutes: p.DurationMinutes,
		NumSessions:     p.NumSessions,
	}

	genCtx, cancel := context.WithTimeout(ctx, o.config.GenerateTimeout)
	defer cancel()

	plan, err := o.generator.Generate(genCtx, req)
	if err != nil {
		// Rewind so the user can confirm again for a retry.
		s.state.Stage = conversation.StageConfirmation
		return Response{
			Text:     generationFailed(s.state.LanguageMode),
			Language: turn.Language,
		}
	}

	if o.plans != nil {
		if saveErr := o.plans.SavePlan(ctx, plan); saveErr != nil {
			// The plan exists in memory; the user still gets it.
			fmt.Fprintf(os.Stderr, "warning: failed to persist plan %s: %v\n", plan.ID, saveErr)
		}
	}

	// Done with this conversation. If the session is still live, restart
	// it fresh so a follow-up message begins a new plan.
	if o.live(sessionID, s) {
		s.state = conversation.NewState(sessionID)
	}

	return Response{
		Text:       successMessage(languageFromDisplay(turn.Language), plan),
		Language:   turn.Language,
		DownloadID: plan.ID,
	}
}

// TextRequest is a one-shot generation request that skips the dialogue.
type TextRequest struct {
	Topic           string
	Content         string // raw material to plan from when Topic is empty
	Subject         string
	ClassLevel      string
	Language        string
	DurationMinutes int
	NumSessions     int
}

// HandleText runs one-shot generation from explicit parameters. Values
// out of range are clamped rather than rejected.
func (o *Orchestrator) HandleText(ctx context.Context, req TextRequest) (Response, error) {
	topic := strings.TrimSpace(req.Topic)
	content := strings.TrimSpace(req.Content)
	if topic == "" && content == "" {
		return Response{}, fmt.Errorf("either topic or content is required")
	}
	if topic == "" {
		topic = excerpt(content, 80)
	}

	subject := req.Subject
	if subject == "" {
		subject = "General"
	}
	classLevel := req.ClassLevel
	if classLevel == "" {
		classLevel = "Class 5"
	}
	language := req.Language
	if language != "Hindi" {
		language = "English"
	}

	genReq := lessonplan.Request{
		Topic:           topic,
		Subject:         subject,
		ClassLevel:      classLevel,
		Language:        language,
		DurationMinutes: clamp(req.DurationMinutes, 15, 90, 40),
		NumSessions:     clamp(req.NumSessions, 1, 10, 4),
	}

	genCtx, cancel := context.WithTimeout(ctx, o.config.GenerateTimeout)
	defer cancel()

	plan, err := o.generator.Generate(genCtx, genReq)
	if err != nil {
		return Response{}, fmt.Errorf("generating lesson plan: %w", err)
	}

	if o.plans != nil {
		if saveErr := o.plans.SavePlan(ctx, plan); saveErr != nil {
			fmt.Fprintf(os.Stderr, "warning: failed to persist plan %s: %v\n", plan.ID, saveErr)
		}
	}

	lang := conversation.LanguageEnglish
	if language == "Hindi" {
		lang = conversation.LanguageHindi
	}
	return Response{
		Text:       successMessage(lang, plan),
		Language:   language,
		DownloadID: plan.ID,
	}, nil
}

// clamp forces v into [min, max]; zero means unset and takes the default.
func clamp(v, min, max, def int) int {
	if v == 0 {
		return def
	}
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// excerpt shortens content to a topic-sized string.
func excerpt(s string, maxRunes int) string {
	if line, _, found := strings.Cut(s, "\n"); found {
		s = line
	}
	runes := []rune(strings.TrimSpace(s))
	if len(runes) > maxRunes {
		runes = runes[:maxRunes]
	}
	return string(runes)
}

func languageFromDisplay(display string) conversation.Language {
	if display == "Hindi" {
		return conversation.LanguageHindi
	}
	return conversation.LanguageEnglish
}
