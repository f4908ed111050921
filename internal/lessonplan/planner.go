package lessonplan

import (
	"fmt"
	"strings"
)

// Named sections expected in generated lesson-plan text.
const (
	sectionObjectives = "LEARNING OBJECTIVES"
	sectionOutcomes   = "LEARNING OUTCOMES"
	sectionResources  = "TEACHING AIDS/RESOURCES"
	sectionActivities = "ACTIVITIES"
	sectionAssessment = "ASSESSMENT"
	sectionHomework   = "HOMEWORK"
)

// Fallback strings for sessions whose source sections were empty.
const (
	fallbackCompetency = "Competency based on objectives"
	fallbackELO        = "Expected learning outcome"
)

// PlanSessions converts generated lesson-plan text into exactly
// numSessions per-session records. Activities, resources and assessment
// items are distributed round-robin across sessions; competency and ELO
// wrap over their lists. The record count never depends on how much
// usable text the generator produced.
func PlanSessions(formattedText string, durationMinutes, numSessions int) []Session {
	if numSessions <= 0 {
		return nil
	}

	objectives := ItemList(ExtractSection(formattedText, sectionObjectives))
	outcomes := ItemList(ExtractSection(formattedText, sectionOutcomes))
	resources := ItemList(ExtractSection(formattedText, sectionResources))
	activities := ItemList(ExtractSection(formattedText, sectionActivities))
	assessment := ItemList(ExtractSection(formattedText, sectionAssessment))
	homework := ItemList(ExtractSection(formattedText, sectionHomework))

	activityBuckets := Distribute(activities, numSessions)
	resourceBuckets := Distribute(resources, numSessions)
	assessmentBuckets := Distribute(assessment, numSessions)

	pick := func(list []string, i int, fallback string) string {
		if len(list) == 0 {
			return fallback
		}
		return list[i%len(list)]
	}

	sessions := make([]Session, 0, numSessions)
	for i := 0; i < numSessions; i++ {
		resourcesTLM := "-"
		if !isPlaceholder(resourceBuckets[i]) {
			resourcesTLM = strings.Join(resourceBuckets[i], "; ")
		}

		// Assessment falls back to the homework list, then to "-".
		sessionAssessment := "-"
		switch {
		case !isPlaceholder(assessmentBuckets[i]):
			sessionAssessment = strings.Join(assessmentBuckets[i], "; ")
		case len(homework) > 0:
			sessionAssessment = strings.Join(homework, "; ")
		}

		sessions = append(sessions, Session{
			Number:       i + 1,
			Duration:     fmt.Sprintf("%d mins", durationMinutes),
			Competency:   pick(objectives, i, fallbackCompetency),
			ELO:          pick(outcomes, i, fallbackELO),
			Activities:   activityBuckets[i],
			ResourcesTLM: resourcesTLM,
			EResources:   []string{},
			WorksheetRef: fmt.Sprintf("Worksheet %d", i+1),
			Assessment:   sessionAssessment,
		})
	}
	return sessions
}
