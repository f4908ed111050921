package conversation

// RestartPolicy names the stage a conversation lands on when its collected
// parameters are thrown away. The voice flow historically disagreed with
// itself here: the explicit restart command re-entered language selection,
// while a rejected confirmation went straight back to topic collection.
// Both are kept as named, configurable choices.
type RestartPolicy int

const (
	// RestartToLanguageSelection re-runs the whole sequence including
	// language selection.
	RestartToLanguageSelection RestartPolicy = iota

	// RestartToTopic keeps the established language and re-enters the
	// sequence at topic collection.
	RestartToTopic
)

// landingStage returns the stage the policy resets to.
func (p RestartPolicy) landingStage() Stage {
	if p == RestartToTopic {
		return StageTopic
	}
	return StageLanguageSelection
}

// Action tells the caller what to do after an advance.
type Action int

const (
	// ActionNone: emit the prompt and wait for the next utterance.
	ActionNone Action = iota

	// ActionGenerate: parameters are confirmed and complete. The caller
	// should emit the prompt (a progress notice), run generation and
	// destroy the conversation on success.
	ActionGenerate
)

// Turn is the outcome of advancing the dialogue by one utterance.
type Turn struct {
	Prompt   string
	Language string // display language for the response, e.g. "English"
	Action   Action
}

// Machine advances conversation state through the stage sequence. It is
// not reentrant: callers must serialize utterances per session.
type Machine struct {
	// OnRestart is applied when the user says a restart command.
	OnRestart RestartPolicy

	// OnReject is applied when the user rejects the confirmation summary.
	OnReject RestartPolicy
}

// NewMachine returns a Machine with the historical default policies:
// restart commands re-enter language selection, rejected confirmations
// re-enter topic collection.
func NewMachine() *Machine {
	return &Machine{
		OnRestart: RestartToLanguageSelection,
		OnReject:  RestartToTopic,
	}
}

// Advance interprets one utterance against the current stage, mutates the
// state accordingly and returns the prompt to emit. Clarifications leave
// the stage unchanged.
func (m *Machine) Advance(st *State, utterance string) Turn {
	st.AddHistory("user", utterance)

	in := Interpret(utterance, st.Stage, st.LanguageMode)

	var turn Turn
	switch {
	case in.Restart:
		turn = m.restart(st, m.OnRestart)
	case in.NeedsClarification:
		turn = Turn{
			Prompt:   Clarification(st.Stage, st.LanguageMode, st.Params),
			Language: st.Params.Language,
		}
	default:
		turn = m.commit(st, in)
	}

	st.AddHistory("assistant", turn.Prompt)
	return turn
}

// commit stores the interpreted value and moves to the next stage.
func (m *Machine) commit(st *State, in Interpretation) Turn {
	switch st.Stage {
	case StageLanguageSelection:
		st.LanguageMode = in.Language
		st.Params.Language = in.Language.Display()
	case StageTopic:
		st.Params.Topic = in.Text
	case StageSubject:
		st.Params.Subject = in.Text
	case StageClass:
		st.Params.ClassLevel = in.Text
	case StageDuration:
		st.Params.DurationMinutes = in.Number
	case StageNumSessions:
		st.Params.NumSessions = in.Number
	case StageConfirmation:
		if !in.Confirmed {
			return m.restart(st, m.OnReject)
		}
		st.Stage = StageGenerating
		return Turn{
			Prompt:   generatingNotice(st.LanguageMode),
			Language: st.Params.Language,
			Action:   ActionGenerate,
		}
	}

	st.Stage = st.Stage.next()
	return Turn{
		Prompt:   Prompt(st.Stage, st.LanguageMode, st.Params),
		Language: st.Params.Language,
	}
}

// restart throws away collected parameters, keeps the established language
// and lands on the policy's stage.
func (m *Machine) restart(st *State, policy RestartPolicy) Turn {
	st.reset()
	st.Stage = policy.landingStage()

	prompt := Prompt(st.Stage, st.LanguageMode, st.Params)
	if policy == RestartToLanguageSelection {
		// The language prompt is bilingual by construction; ack first.
		prompt = restartAck(st.LanguageMode) + "\n\n" + Prompt(st.Stage, LanguageEnglish, st.Params)
	}

	return Turn{Prompt: prompt, Language: st.Params.Language}
}

// OpeningPrompt is emitted when a session connects, before any utterance
// has been consumed.
func OpeningPrompt() Turn {
	return Turn{
		Prompt:   Prompt(StageLanguageSelection, LanguageEnglish, DefaultParams()),
		Language: "English",
	}
}
