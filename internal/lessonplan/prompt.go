package lessonplan

import (
	"fmt"
	"strings"
	"time"
)

const lessonSystemPrompt = "You are an expert NCERT teacher who writes complete lesson plans."

// buildLessonPrompt asks for the full lesson plan in the marker-delimited
// section layout the planner knows how to slice.
func buildLessonPrompt(req Request, now time.Time) string {
	today := now.Format("02/01/2006")
	total := req.TotalMinutes()

	var b strings.Builder
	fmt.Fprintf(&b, `Create a complete NCERT lesson plan for the given topic.

Topic: %s
Subject: %s
Class: %s
Language: %s
Number of Sessions: %d
Duration per Session: %d minutes
Total Duration: %d minutes

Generate in EXACT structure:

LESSON PLAN
Subject: %s
Class: %s
Topic: %s
Duration: %d minutes (%d sessions × %d mins each)
Date: %s

`, req.Topic, req.Subject, req.ClassLevel, req.Language, req.NumSessions, req.DurationMinutes, total,
		req.Subject, req.ClassLevel, req.Topic, total, req.NumSessions, req.DurationMinutes, today)

	fmt.Fprintf(&b, `---LEARNING OBJECTIVES---
(3-4 bullet points)

---LEARNING OUTCOMES---
(3-4 bullet points)

---PRE-REQUISITE KNOWLEDGE---
(2-3 bullet points)

---TEACHING AIDS/RESOURCES---
(list)

---INTRODUCTION---
(5-8 lines)

---MAIN CONTENT---
(8-15 lines)

---ACTIVITIES---
(%d-%d bullet points)

---ASSESSMENT---
(4-6 bullet points)

---HOMEWORK---
(2-4 bullet points)

---CONCLUSION---
(4-6 lines)

---REFLECTION---
(4-6 bullet points)
`, req.NumSessions*2, req.NumSessions*3)

	return b.String()
}

// worksheetSystemPrompt sets the role for worksheet generation.
func worksheetSystemPrompt(req Request) string {
	return fmt.Sprintf("You are an expert %s curriculum designer creating comprehensive worksheets for %s students. "+
		"Generate detailed, educational, and engaging worksheets with proper formatting.",
		req.Subject, req.ClassLevel)
}

// buildWorksheetPrompt asks for one worksheet per session in the
// ===WORKSHEET n=== layout the parser knows how to split.
func buildWorksheetPrompt(req Request) string {
	classNum := strings.TrimSpace(strings.TrimPrefix(req.ClassLevel, "Class"))

	var b strings.Builder
	fmt.Fprintf(&b, `Create %d comprehensive and detailed worksheets for teachers to use in class.

Topic: %s
Subject: %s
Class: %s
Language: %s

For EACH worksheet, provide the following EXACT structure:

===WORKSHEET 1===
TITLE: [Specific title related to %s]
SESSION: 1
OBJECTIVE: [Clear learning objective for this worksheet]
DURATION: [Suggested completion time: 15-20 minutes]

SECTION A: FILL IN THE BLANKS (5 questions)
Instructions: Complete the sentences with appropriate words.

SECTION B: TRUE OR FALSE (5 questions)
Instructions: Write True or False for each statement.

SECTION C: MULTIPLE CHOICE QUESTIONS (4 questions)
Instructions: Choose the correct answer, options a) to d).

SECTION D: SHORT ANSWER QUESTIONS (3 questions)
Instructions: Answer in 2-3 sentences.

SECTION E: ACTIVITY/PRACTICAL TASK (1-2 activities)
Instructions: Complete the following hands-on activities.

ANSWER KEY:
Answers for sections A through D.

===END WORKSHEET 1===

Generate all %d worksheets following this exact format. Each worksheet should:
- Be progressively more challenging
- Cover different aspects of '%s'
- Include age-appropriate questions for Class %s
- Have clear instructions for each section
- Include complete answer keys
`, req.NumSessions, req.Topic, req.Subject, classNum, req.Language,
		req.Topic, req.NumSessions, req.Topic, classNum)

	return b.String()
}
