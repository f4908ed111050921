package conversation

// Stage is one discrete step in the parameter-collection dialogue.
// Stages advance in strict forward order; only a restart or a rejected
// confirmation moves backwards.
type Stage int

const (
	StageLanguageSelection Stage = iota
	StageTopic
	StageSubject
	StageClass
	StageDuration
	StageNumSessions
	StageConfirmation

	// StageGenerating is the terminal success stage. The conversation is
	// destroyed after the generated plan has been delivered.
	StageGenerating
)

// String returns the stage name for logs and debugging.
func (s Stage) String() string {
	switch s {
	case StageLanguageSelection:
		return "language_selection"
	case StageTopic:
		return "topic"
	case StageSubject:
		return "subject"
	case StageClass:
		return "class"
	case StageDuration:
		return "duration"
	case StageNumSessions:
		return "num_sessions"
	case StageConfirmation:
		return "confirmation"
	case StageGenerating:
		return "generating"
	default:
		return "unknown"
	}
}

// next returns the stage that follows s in the collection sequence.
// StageConfirmation and StageGenerating have no successor.
func (s Stage) next() Stage {
	if s < StageConfirmation {
		return s + 1
	}
	return s
}
