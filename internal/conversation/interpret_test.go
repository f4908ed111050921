package conversation

import "testing"

func TestInterpret_LanguageSelection(t *testing.T) {
	tests := []struct {
		utterance string
		want      Language
		clarify   bool
	}{
		{"English", LanguageEnglish, false},
		{"I want english please", LanguageEnglish, false},
		{"हिंदी", LanguageHindi, false},
		{"Hindi me bolo", LanguageHindi, false},
		{"french", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		got := Interpret(tt.utterance, StageLanguageSelection, LanguageUnset)
		if got.NeedsClarification != tt.clarify {
			t.Errorf("Interpret(%q): NeedsClarification = %v, want %v", tt.utterance, got.NeedsClarification, tt.clarify)
		}
		if got.Language != tt.want {
			t.Errorf("Interpret(%q): Language = %q, want %q", tt.utterance, got.Language, tt.want)
		}
	}
}

func TestInterpret_Topic(t *testing.T) {
	got := Interpret("  Photosynthesis  ", StageTopic, LanguageEnglish)
	if got.NeedsClarification || got.Text != "Photosynthesis" {
		t.Errorf("got %+v, want accepted trimmed topic", got)
	}

	if got := Interpret("ab", StageTopic, LanguageEnglish); !got.NeedsClarification {
		t.Errorf("two-character topic should need clarification")
	}

	// Rune length, not byte length: Devanagari topics are accepted.
	if got := Interpret("भिन्न", StageTopic, LanguageHindi); got.NeedsClarification {
		t.Errorf("Devanagari topic should be accepted, got %+v", got)
	}
}

func TestInterpret_Subject(t *testing.T) {
	tests := []struct {
		utterance string
		want      string
	}{
		{"maths please", "Mathematics"},
		{"गणित", "Mathematics"},
		{"I think science", "Science"},
		{"जीव विज्ञान", "Biology"},
		{"computer", "Computer Science"},
		{"sanskrit", "Sanskrit"}, // free-form fallback, title-cased
	}

	for _, tt := range tests {
		got := Interpret(tt.utterance, StageSubject, LanguageEnglish)
		if got.NeedsClarification {
			t.Errorf("Interpret(%q): unexpected clarification", tt.utterance)
			continue
		}
		if got.Text != tt.want {
			t.Errorf("Interpret(%q) = %q, want %q", tt.utterance, got.Text, tt.want)
		}
	}

	if got := Interpret("ab", StageSubject, LanguageEnglish); !got.NeedsClarification {
		t.Errorf("short unknown subject should need clarification")
	}
}

func TestInterpret_Class(t *testing.T) {
	got := Interpret("class 7 please", StageClass, LanguageEnglish)
	if got.NeedsClarification || got.Text != "Class 7" {
		t.Errorf("got %+v, want Class 7", got)
	}

	for _, u := range []string{"I think class 13", "class zero", "no digits here", "0"} {
		if got := Interpret(u, StageClass, LanguageEnglish); !got.NeedsClarification {
			t.Errorf("Interpret(%q) should need clarification, got %+v", u, got)
		}
	}
}

func TestInterpret_Duration(t *testing.T) {
	if got := Interpret("45", StageDuration, LanguageEnglish); got.NeedsClarification || got.Number != 45 {
		t.Errorf("got %+v, want 45", got)
	}
	if got := Interpret("100 minutes", StageDuration, LanguageEnglish); !got.NeedsClarification {
		t.Errorf("100 minutes should need clarification, got %+v", got)
	}
	if got := Interpret("10 minutes", StageDuration, LanguageEnglish); !got.NeedsClarification {
		t.Errorf("10 minutes should need clarification, got %+v", got)
	}
}

func TestInterpret_NumSessions(t *testing.T) {
	if got := Interpret("4 sessions", StageNumSessions, LanguageEnglish); got.NeedsClarification || got.Number != 4 {
		t.Errorf("got %+v, want 4", got)
	}
	if got := Interpret("11", StageNumSessions, LanguageEnglish); !got.NeedsClarification {
		t.Errorf("11 sessions should need clarification, got %+v", got)
	}
}

func TestInterpret_Confirmation(t *testing.T) {
	for _, u := range []string{"yes", "okay", "जी हाँ", "sure thing", "ठीक है"} {
		got := Interpret(u, StageConfirmation, LanguageHindi)
		if got.NeedsClarification || !got.Confirmed {
			t.Errorf("Interpret(%q) should confirm, got %+v", u, got)
		}
	}

	for _, u := range []string{"no", "नहीं", "that is wrong"} {
		got := Interpret(u, StageConfirmation, LanguageEnglish)
		if got.NeedsClarification || got.Confirmed {
			t.Errorf("Interpret(%q) should reject, got %+v", u, got)
		}
	}

	if got := Interpret("maybe", StageConfirmation, LanguageEnglish); !got.NeedsClarification {
		t.Errorf("ambiguous confirmation should need clarification, got %+v", got)
	}
}

func TestInterpret_RestartBeatsStageRules(t *testing.T) {
	stages := []Stage{
		StageLanguageSelection, StageTopic, StageSubject,
		StageClass, StageDuration, StageNumSessions, StageConfirmation,
	}
	for _, stage := range stages {
		got := Interpret("let's start over", stage, LanguageEnglish)
		if !got.Restart {
			t.Errorf("stage %s: restart command not recognized", stage)
		}
	}

	if got := Interpret("फिर से", StageConfirmation, LanguageHindi); !got.Restart {
		t.Errorf("Hindi restart command not recognized, got %+v", got)
	}
}
