package lessonplan

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// worksheetMarkers are the boundary styles generators actually produce,
// in priority order. The first style that matches at least once wins.
var worksheetMarkers = []*regexp.Regexp{
	regexp.MustCompile(`(?i)===WORKSHEET\s+(\d+)===`),
	regexp.MustCompile(`(?i)---WORKSHEET\s+(\d+)---`),
	regexp.MustCompile(`(?i)WORKSHEET\s+(\d+):`),
	regexp.MustCompile(`(?i)\*\*WORKSHEET\s+(\d+)\*\*`),
}

var (
	endMarkers = []*regexp.Regexp{
		regexp.MustCompile(`(?i)===END WORKSHEET \d+===`),
		regexp.MustCompile(`(?i)---END WORKSHEET \d+---`),
	}

	titleField     = regexp.MustCompile(`(?i)TITLE:\s*(.+?)(?:\n|SESSION:)`)
	objectiveField = regexp.MustCompile(`(?i)OBJECTIVE:\s*(.+?)(?:\n|DURATION:)`)
	durationField  = regexp.MustCompile(`(?i)DURATION:\s*(.+?)(?:\n|SECTION)`)
)

// sectionSpec locates one named worksheet section: a header pattern and
// the header patterns that terminate it. Go's regexp has no lookahead, so
// the terminator is found separately and the slice is cut before it.
type sectionSpec struct {
	key   string
	start *regexp.Regexp
	until []*regexp.Regexp
}

var sectionSpecs = []sectionSpec{
	{SectionFillBlanks,
		regexp.MustCompile(`(?i)SECTION A[:\s]*FILL IN THE BLANKS`),
		[]*regexp.Regexp{regexp.MustCompile(`(?i)SECTION B`)}},
	{SectionTrueFalse,
		regexp.MustCompile(`(?i)SECTION B[:\s]*TRUE OR FALSE`),
		[]*regexp.Regexp{regexp.MustCompile(`(?i)SECTION C`)}},
	{SectionMCQ,
		regexp.MustCompile(`(?i)SECTION C[:\s]*MULTIPLE CHOICE`),
		[]*regexp.Regexp{regexp.MustCompile(`(?i)SECTION D`)}},
	{SectionShortAnswer,
		regexp.MustCompile(`(?i)SECTION D[:\s]*SHORT ANSWER`),
		[]*regexp.Regexp{regexp.MustCompile(`(?i)SECTION E`), regexp.MustCompile(`(?i)ANSWER KEY`)}},
	{SectionActivity,
		regexp.MustCompile(`(?i)SECTION E[:\s]*ACTIVITY`),
		[]*regexp.Regexp{regexp.MustCompile(`(?i)ANSWER KEY`)}},
	{SectionAnswerKey,
		regexp.MustCompile(`(?i)ANSWER KEY:`),
		[]*regexp.Regexp{regexp.MustCompile(`={3}`)}},
}

// ParseWorksheets converts generated worksheet text into structured
// records. When a boundary marker style matches, the output holds one
// record per matched worksheet number, in input order. When no style
// matches at all, the text is chunked into exactly expectedCount pieces
// so the caller always has something to render.
func ParseWorksheets(rawText, topic string, expectedCount int) []Worksheet {
	for _, marker := range worksheetMarkers {
		matches := marker.FindAllStringSubmatchIndex(rawText, -1)
		if len(matches) == 0 {
			continue
		}

		worksheets := make([]Worksheet, 0, len(matches))
		for i, m := range matches {
			numStr := rawText[m[2]:m[3]]
			end := len(rawText)
			if i+1 < len(matches) {
				end = matches[i+1][0]
			}
			content := strings.TrimSpace(rawText[m[1]:end])
			worksheets = append(worksheets, buildWorksheet(numStr, content, topic, len(worksheets)))
		}
		return worksheets
	}

	return chunkWorksheets(rawText, topic, expectedCount)
}

// buildWorksheet extracts the structured fields from one worksheet body.
func buildWorksheet(numStr, content, topic string, parsedSoFar int) Worksheet {
	for _, end := range endMarkers {
		content = end.ReplaceAllString(content, "")
	}
	content = strings.TrimSpace(content)

	number, err := strconv.Atoi(numStr)
	if err != nil {
		number = parsedSoFar + 1
	}

	title := fmt.Sprintf("Worksheet %s: %s", numStr, topic)
	if m := titleField.FindStringSubmatch(content); m != nil {
		title = strings.TrimSpace(m[1])
	}

	objective := ""
	if m := objectiveField.FindStringSubmatch(content); m != nil {
		objective = strings.TrimSpace(m[1])
	}

	duration := "20 minutes"
	if m := durationField.FindStringSubmatch(content); m != nil {
		duration = strings.TrimSpace(m[1])
	}

	return Worksheet{
		Number:    number,
		Title:     title,
		Objective: objective,
		Duration:  duration,
		Content:   content,
		Sections:  extractWorksheetSections(content),
	}
}

// extractWorksheetSections pulls the six named question sections out of a
// worksheet body. Absent sections are simply omitted.
func extractWorksheetSections(content string) map[string]string {
	sections := make(map[string]string)
	for _, spec := range sectionSpecs {
		loc := spec.start.FindStringIndex(content)
		if loc == nil {
			continue
		}
		end := len(content)
		rest := content[loc[1]:]
		for _, term := range spec.until {
			if t := term.FindStringIndex(rest); t != nil && loc[1]+t[0] < end {
				end = loc[1] + t[0]
			}
		}
		sections[spec.key] = strings.TrimSpace(content[loc[0]:end])
	}
	return sections
}

// chunkWorksheets is the marker-less fallback: the raw text is split on
// blank-line boundaries into expectedCount contiguous chunks of roughly
// equal size and each chunk becomes one synthesized worksheet. It is a
// pure function so the degraded path can be tested without a generator.
func chunkWorksheets(rawText, topic string, expectedCount int) []Worksheet {
	if expectedCount <= 0 {
		return nil
	}

	chunks := strings.Split(rawText, "\n\n")
	chunkSize := 1
	if len(chunks) >= expectedCount {
		chunkSize = len(chunks) / expectedCount
	}

	worksheets := make([]Worksheet, 0, expectedCount)
	for i := 0; i < expectedCount; i++ {
		start := i * chunkSize
		end := start + chunkSize
		if i == expectedCount-1 {
			end = len(chunks)
		}
		if start > len(chunks) {
			start = len(chunks)
		}
		if end > len(chunks) {
			end = len(chunks)
		}

		content := strings.Join(chunks[start:end], "\n\n")
		if strings.TrimSpace(content) == "" {
			// Chunking degenerated; better a duplicated worksheet than an
			// empty one.
			content = rawText
		}

		worksheets = append(worksheets, Worksheet{
			Number:    i + 1,
			Title:     fmt.Sprintf("Worksheet %d: %s", i+1, topic),
			Objective: fmt.Sprintf("Practice and reinforce understanding of %s", topic),
			Duration:  "20 minutes",
			Content:   content,
			Sections:  map[string]string{},
		})
	}
	return worksheets
}
