package lessonplan

import "time"

// Request carries the finalized generation parameters. Values are assumed
// to be validated/clamped by the caller: class level "Class 1".."Class 12",
// duration 15..90 minutes, 1..10 sessions.
type Request struct {
	Topic           string
	Subject         string
	ClassLevel      string
	Language        string
	DurationMinutes int
	NumSessions     int
}

// TotalMinutes is the full plan duration across all sessions.
func (r Request) TotalMinutes() int {
	return r.DurationMinutes * r.NumSessions
}

// Worksheet section keys. Absent keys mean the section was not found in
// the generated text.
const (
	SectionFillBlanks  = "fill_blanks"
	SectionTrueFalse   = "true_false"
	SectionMCQ         = "mcq"
	SectionShortAnswer = "short_answer"
	SectionActivity    = "activity"
	SectionAnswerKey   = "answer_key"
)

// Worksheet is one structured worksheet parsed from generated text.
// Content is always non-empty, even when section extraction found nothing.
type Worksheet struct {
	Number    int    // 1-based, sequential
	Title     string
	Objective string
	Duration  string // label, e.g. "20 minutes"
	Content   string // raw text block
	Sections  map[string]string
}

// Session is one per-session row of the lesson plan. Activities is never
// empty: it holds the "-" placeholder when no source material existed.
type Session struct {
	Number       int    // 1-based, 1..NumSessions
	Duration     string // label, e.g. "40 mins"
	Competency   string
	ELO          string // expected learning outcome
	Activities   []string
	ResourcesTLM string
	EResources   []string
	WorksheetRef string // title of the linked worksheet
	Assessment   string
}

// Header summarizes the plan for rendering.
type Header struct {
	Class         string
	Subject       string
	Lesson        string
	Periods       string
	Duration      string
	TotalDuration string
	Language      string
}

// ResourceLink points at an external teaching resource.
type ResourceLink struct {
	Title       string
	URL         string
	Description string
	Kind        string // channel name for video links, resource type otherwise
}

// Plan is the complete structured lesson plan produced by one generation.
type Plan struct {
	ID            string // short id used to look the finished plan up
	Header        Header
	Sessions      []Session
	Worksheets    []Worksheet
	FormattedText string // the raw generated lesson-plan text
	YouTubeLinks  []ResourceLink
	WebResources  []ResourceLink
	CreatedAt     time.Time
}
