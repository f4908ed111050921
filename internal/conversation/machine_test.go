package conversation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdvance_ClarificationLeavesStageUnchanged(t *testing.T) {
	m := NewMachine()

	// Gibberish that no stage rule accepts (short, no digits, no keywords).
	stages := []Stage{
		StageLanguageSelection, StageTopic, StageSubject,
		StageClass, StageDuration, StageNumSessions, StageConfirmation,
	}

	for _, stage := range stages {
		st := NewState("s1")
		st.Stage = stage
		st.LanguageMode = LanguageEnglish

		turn := m.Advance(st, "zz")

		if st.Stage != stage {
			t.Errorf("stage %s: clarification changed stage to %s", stage, st.Stage)
		}
		if turn.Prompt == "" {
			t.Errorf("stage %s: clarification prompt is empty", stage)
		}
		if turn.Action != ActionNone {
			t.Errorf("stage %s: clarification triggered action %v", stage, turn.Action)
		}
	}
}

func TestAdvance_HappyPathEnglish(t *testing.T) {
	m := NewMachine()
	st := NewState("s1")

	turn := m.Advance(st, "english")
	require.Equal(t, StageTopic, st.Stage)
	assert.Equal(t, "English", turn.Language)

	m.Advance(st, "Photosynthesis")
	require.Equal(t, StageSubject, st.Stage)
	assert.Equal(t, "Photosynthesis", st.Params.Topic)

	m.Advance(st, "science")
	require.Equal(t, StageClass, st.Stage)
	assert.Equal(t, "Science", st.Params.Subject)

	m.Advance(st, "class 7 please")
	require.Equal(t, StageDuration, st.Stage)
	assert.Equal(t, "Class 7", st.Params.ClassLevel)

	m.Advance(st, "45")
	require.Equal(t, StageNumSessions, st.Stage)
	assert.Equal(t, 45, st.Params.DurationMinutes)

	turn = m.Advance(st, "4 sessions")
	require.Equal(t, StageConfirmation, st.Stage)
	assert.Equal(t, 4, st.Params.NumSessions)
	assert.Contains(t, turn.Prompt, "Photosynthesis")
	assert.Contains(t, turn.Prompt, "Class 7")

	turn = m.Advance(st, "yes")
	assert.Equal(t, ActionGenerate, turn.Action)
	assert.Equal(t, StageGenerating, st.Stage)
	assert.NotEmpty(t, turn.Prompt)
}

func TestAdvance_HindiEndToEnd(t *testing.T) {
	m := NewMachine()
	st := NewState("s1")

	for _, u := range []string{"hindi", "प्रकाश संश्लेषण", "science", "7", "40", "4"} {
		m.Advance(st, u)
	}

	require.Equal(t, StageConfirmation, st.Stage)

	turn := m.Advance(st, "हाँ")
	require.Equal(t, ActionGenerate, turn.Action)

	assert.Equal(t, "प्रकाश संश्लेषण", st.Params.Topic)
	assert.Equal(t, "Science", st.Params.Subject)
	assert.Equal(t, "Class 7", st.Params.ClassLevel)
	assert.Equal(t, 40, st.Params.DurationMinutes)
	assert.Equal(t, 4, st.Params.NumSessions)
	assert.Equal(t, "Hindi", st.Params.Language)
}

func TestAdvance_ConfirmationRejectedReturnsToTopic(t *testing.T) {
	m := NewMachine()
	st := NewState("s1")

	for _, u := range []string{"english", "Fractions", "maths", "5", "40", "4"} {
		m.Advance(st, u)
	}
	require.Equal(t, StageConfirmation, st.Stage)

	turn := m.Advance(st, "no")

	assert.Equal(t, StageTopic, st.Stage)
	assert.Equal(t, ActionNone, turn.Action)
	assert.Empty(t, st.Params.Topic)
	assert.Equal(t, LanguageEnglish, st.LanguageMode, "language mode survives rejection")
	assert.Equal(t, "English", st.Params.Language)
	assert.Equal(t, 40, st.Params.DurationMinutes, "defaults restored")
}

func TestAdvance_RestartCommandReturnsToLanguageSelection(t *testing.T) {
	m := NewMachine()
	st := NewState("s1")

	m.Advance(st, "hindi")
	m.Advance(st, "स्वतंत्रता संग्राम")
	require.Equal(t, StageSubject, st.Stage)

	turn := m.Advance(st, "restart")

	assert.Equal(t, StageLanguageSelection, st.Stage)
	assert.Empty(t, st.Params.Topic)
	assert.Equal(t, LanguageHindi, st.LanguageMode, "language mode survives restart")
	assert.NotEmpty(t, turn.Prompt)
}

func TestAdvance_RestartPolicyConfigurable(t *testing.T) {
	m := &Machine{OnRestart: RestartToTopic, OnReject: RestartToTopic}
	st := NewState("s1")

	m.Advance(st, "english")
	m.Advance(st, "Algebra")

	m.Advance(st, "start over")
	assert.Equal(t, StageTopic, st.Stage)
}

func TestOpeningPrompt(t *testing.T) {
	turn := OpeningPrompt()
	assert.NotEmpty(t, turn.Prompt)
	assert.Equal(t, "English", turn.Language)
	assert.Equal(t, ActionNone, turn.Action)
}
