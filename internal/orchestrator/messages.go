package orchestrator

import (
	"fmt"
	"strings"

	"github.com/lessonforge/lessonforge/internal/conversation"
	"github.com/lessonforge/lessonforge/internal/lessonplan"
)

// cannotUnderstand is spoken when transcription produced nothing usable.
func cannotUnderstand(lang conversation.Language) string {
	if lang == conversation.LanguageHindi {
		return "क्षमा करें, मैं ऑडियो समझ नहीं पाया। कृपया फिर से बोलें।"
	}
	return "Sorry, I could not understand the audio. Please try again."
}

// generationFailed is returned when plan generation errored. The
// conversation stays at confirmation, so saying yes retries.
func generationFailed(lang conversation.Language) string {
	if lang == conversation.LanguageHindi {
		return "क्षमा करें, पाठ योजना बनाने में समस्या हुई। पुनः प्रयास करने के लिए 'हाँ' कहें।"
	}
	return "Sorry, something went wrong while generating your lesson plan. Say 'yes' to try again."
}

// successMessage summarizes the finished plan.
func successMessage(lang conversation.Language, plan *lessonplan.Plan) string {
	var b strings.Builder

	if lang == conversation.LanguageHindi {
		fmt.Fprintf(&b, "आपकी पाठ योजना तैयार है! विषय: %s, %d सत्र, %d वर्कशीट।",
			plan.Header.Lesson, len(plan.Sessions), len(plan.Worksheets))
		b.WriteString("\n\nवर्कशीट:")
		for _, w := range plan.Worksheets {
			fmt.Fprintf(&b, "\n- %s", w.Title)
		}
		fmt.Fprintf(&b, "\n\nडाउनलोड आईडी: %s", plan.ID)
		return b.String()
	}

	fmt.Fprintf(&b, "Your lesson plan is ready! Topic: %s, %d sessions, %d worksheets.",
		plan.Header.Lesson, len(plan.Sessions), len(plan.Worksheets))
	b.WriteString("\n\nWorksheets:")
	for _, w := range plan.Worksheets {
		fmt.Fprintf(&b, "\n- %s", w.Title)
	}
	fmt.Fprintf(&b, "\n\nDownload ID: %s", plan.ID)
	return b.String()
}
