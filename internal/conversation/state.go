package conversation

// Language is the user's chosen dialogue language.
type Language string

const (
	LanguageUnset   Language = ""
	LanguageEnglish Language = "english"
	LanguageHindi   Language = "hindi"
)

// Display returns the language name used in response metadata and
// generation requests ("English", "Hindi").
func (l Language) Display() string {
	switch l {
	case LanguageHindi:
		return "Hindi"
	default:
		return "English"
	}
}

// Params holds the lesson-plan parameters collected over the dialogue.
type Params struct {
	Topic           string
	Subject         string
	ClassLevel      string // "Class N", 1..12
	DurationMinutes int    // per-session duration, 15..90
	NumSessions     int    // 1..10
	Language        string // display name, e.g. "English"
}

// DefaultParams returns the collection defaults applied at state creation
// and on every restart.
func DefaultParams() Params {
	return Params{
		DurationMinutes: 40,
		NumSessions:     4,
		Language:        "English",
	}
}

// HistoryEntry is one turn of the conversation, kept for audit and
// debugging only. Dialogue logic never reads it back.
type HistoryEntry struct {
	Role string // "user" or "assistant"
	Text string
}

// State is the full dialogue state for one session. It is mutated only by
// Machine.Advance, one utterance at a time.
type State struct {
	SessionID    string
	Stage        Stage
	LanguageMode Language
	Params       Params
	History      []HistoryEntry
}

// NewState creates a fresh conversation at the language-selection stage.
func NewState(sessionID string) *State {
	return &State{
		SessionID: sessionID,
		Stage:     StageLanguageSelection,
		Params:    DefaultParams(),
	}
}

// AddHistory appends one turn to the audit history.
func (s *State) AddHistory(role, text string) {
	s.History = append(s.History, HistoryEntry{Role: role, Text: text})
}

// reset clears collected parameters back to defaults while preserving the
// established language mode.
func (s *State) reset() {
	lang := s.LanguageMode
	s.Params = DefaultParams()
	if lang != LanguageUnset {
		s.Params.Language = lang.Display()
	}
}
