package conversation

import (
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Interpretation is the typed result of reading one utterance against the
// current stage. Exactly one of the value fields is meaningful, determined
// by the stage the utterance was interpreted for.
type Interpretation struct {
	// Restart is set when the utterance matched a restart command,
	// regardless of stage. All other fields are zero.
	Restart bool

	// NeedsClarification is set when the utterance could not be mapped to
	// a value for the current stage. The machine re-prompts and stays put.
	NeedsClarification bool

	Text      string   // StageTopic, StageSubject, StageClass
	Number    int      // StageDuration, StageNumSessions
	Language  Language // StageLanguageSelection
	Confirmed bool     // StageConfirmation
}

// restartCommands are matched as substrings before any stage rule,
// in both dialogue languages.
var restartCommands = []string{"start over", "restart", "शुरू करो", "फिर से"}

// subjectSynonyms maps spoken subject names (English and Devanagari) to
// canonical subject names. Order matters: the first substring match wins.
var subjectSynonyms = []struct {
	key       string
	canonical string
}{
	{"math", "Mathematics"},
	{"maths", "Mathematics"},
	{"गणित", "Mathematics"},
	{"science", "Science"},
	{"विज्ञान", "Science"},
	{"english", "English"},
	{"अंग्रेजी", "English"},
	{"hindi", "Hindi"},
	{"हिंदी", "Hindi"},
	{"social", "Social Science"},
	{"सामाजिक", "Social Science"},
	{"history", "History"},
	{"इतिहास", "History"},
	{"geography", "Geography"},
	{"भूगोल", "Geography"},
	{"physics", "Physics"},
	{"भौतिकी", "Physics"},
	{"chemistry", "Chemistry"},
	{"रसायन", "Chemistry"},
	{"biology", "Biology"},
	{"जीव विज्ञान", "Biology"},
	{"computer", "Computer Science"},
	{"कंप्यूटर", "Computer Science"},
}

var (
	affirmativeWords = []string{"yes", "yeah", "correct", "right", "okay", "ok", "sure", "हां", "हाँ", "सही", "ठीक", "जी"}
	negativeWords    = []string{"no", "नहीं", "गलत", "wrong", "नही"}
)

var digitRun = regexp.MustCompile(`\d+`)

var titleCaser = cases.Title(language.Und)

// Interpret maps one utterance to a typed value for the given stage.
// It is a pure function: no state is read or written.
func Interpret(utterance string, stage Stage, mode Language) Interpretation {
	trimmed := strings.TrimSpace(utterance)
	lower := strings.ToLower(trimmed)

	for _, cmd := range restartCommands {
		if strings.Contains(lower, cmd) {
			return Interpretation{Restart: true}
		}
	}

	switch stage {
	case StageLanguageSelection:
		if strings.Contains(lower, "english") || strings.Contains(lower, "इंग्लिश") {
			return Interpretation{Language: LanguageEnglish}
		}
		if strings.Contains(lower, "hindi") || strings.Contains(lower, "हिंदी") {
			return Interpretation{Language: LanguageHindi}
		}
		return Interpretation{NeedsClarification: true}

	case StageTopic:
		// Anything of three or more characters is accepted verbatim.
		if utf8.RuneCountInString(trimmed) < 3 {
			return Interpretation{NeedsClarification: true}
		}
		return Interpretation{Text: trimmed}

	case StageSubject:
		for _, s := range subjectSynonyms {
			if strings.Contains(lower, s.key) {
				return Interpretation{Text: s.canonical}
			}
		}
		// Unknown subjects are accepted as free-form, title-cased.
		if utf8.RuneCountInString(trimmed) > 2 {
			return Interpretation{Text: titleCaser.String(trimmed)}
		}
		return Interpretation{NeedsClarification: true}

	case StageClass:
		if n, ok := firstNumber(trimmed); ok && n >= 1 && n <= 12 {
			return Interpretation{Text: "Class " + strconv.Itoa(n)}
		}
		return Interpretation{NeedsClarification: true}

	case StageDuration:
		if n, ok := firstNumber(trimmed); ok && n >= 15 && n <= 90 {
			return Interpretation{Number: n}
		}
		return Interpretation{NeedsClarification: true}

	case StageNumSessions:
		if n, ok := firstNumber(trimmed); ok && n >= 1 && n <= 10 {
			return Interpretation{Number: n}
		}
		return Interpretation{NeedsClarification: true}

	case StageConfirmation:
		if containsAny(lower, affirmativeWords) {
			return Interpretation{Confirmed: true}
		}
		if containsAny(lower, negativeWords) {
			return Interpretation{Confirmed: false}
		}
		return Interpretation{NeedsClarification: true}
	}

	return Interpretation{NeedsClarification: true}
}

// firstNumber extracts the first run of digits in s.
func firstNumber(s string) (int, bool) {
	m := digitRun.FindString(s)
	if m == "" {
		return 0, false
	}
	n, err := strconv.Atoi(m)
	if err != nil {
		return 0, false
	}
	return n, true
}

func containsAny(s string, words []string) bool {
	for _, w := range words {
		if strings.Contains(s, w) {
			return true
		}
	}
	return false
}
