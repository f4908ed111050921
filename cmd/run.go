package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lessonforge/lessonforge/internal/conversation"
	"github.com/lessonforge/lessonforge/internal/lessonplan"
	"github.com/lessonforge/lessonforge/internal/llm"
	"github.com/lessonforge/lessonforge/internal/orchestrator"
	"github.com/lessonforge/lessonforge/internal/store"
	"github.com/lessonforge/lessonforge/internal/stt"
	"github.com/lessonforge/lessonforge/internal/tui"
)

// runChat opens the store, builds dependencies, and launches the chat TUI.
func runChat(cmd *cobra.Command) error {
	st, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer st.Close()

	provider, err := buildProvider(cmd, st)
	if err != nil {
		return err
	}

	orch := buildOrchestrator(provider, st)
	return tui.Run(orch)
}

// openStore resolves the db path and opens the store.
func openStore(cmd *cobra.Command) (*store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	return st, nil
}

// buildProvider constructs the configured LLM provider, wrapped with
// retry and call logging.
func buildProvider(cmd *cobra.Command, st *store.Store) (llm.Provider, error) {
	ctx := cmd.Context()

	cfg := llm.ConfigFromEnv()
	if err := cfg.Validate(); err != nil {
		// No explicit configuration; probe the standard key env vars.
		discovered, ok := llm.DiscoverConfig()
		if !ok {
			return nil, fmt.Errorf("no LLM provider configured: set LESSONFORGE_GROQ_API_KEY or GROQ_API_KEY")
		}
		cfg = discovered
	}

	provider, err := llm.NewProvider(ctx, cfg, st.CallLogRepo())
	if err != nil {
		return nil, fmt.Errorf("initialize LLM provider: %w", err)
	}
	return provider, nil
}

// buildOrchestrator assembles the orchestrator with an optional voice
// transcriber.
func buildOrchestrator(provider llm.Provider, st *store.Store) *orchestrator.Orchestrator {
	generator := lessonplan.NewGenerator(provider, lessonplan.DefaultGeneratorConfig())

	var transcriber stt.Transcriber
	sttCfg := stt.ConfigFromEnv()
	if sttCfg.APIKey != "" {
		tr, err := stt.NewWhisperTranscriber(sttCfg)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Voice input unavailable:", err)
		} else {
			transcriber = tr
		}
	}

	return orchestrator.New(
		conversation.NewMachine(),
		transcriber,
		generator,
		st.PlanRepo(),
		orchestrator.DefaultConfig(),
	)
}
