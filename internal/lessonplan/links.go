package lessonplan

import (
	"fmt"
	"net/url"
	"strings"
)

// classNumber strips the "Class " prefix from a class level label.
func classNumber(classLevel string) string {
	return strings.TrimSpace(strings.TrimPrefix(classLevel, "Class "))
}

// youtubeLinks builds topic-specific search links on the official
// CBSE/NCERT education channels.
func youtubeLinks(topic, subject, classLevel string) []ResourceLink {
	classNum := classNumber(classLevel)
	topic = strings.TrimSpace(topic)
	subject = strings.TrimSpace(subject)

	cbseQuery := url.QueryEscape(fmt.Sprintf("%s class %s %s", topic, classNum, subject))
	ncertQuery := url.QueryEscape(fmt.Sprintf("%s %s class %s", topic, subject, classNum))
	dikshaQuery := url.QueryEscape(fmt.Sprintf("diksha %s class %s %s CBSE", topic, classNum, subject))
	swayamQuery := url.QueryEscape(fmt.Sprintf("swayam prabha %s %s class %s", topic, subject, classNum))

	return []ResourceLink{
		{
			Title:       fmt.Sprintf("%s - CBSE Official", topic),
			URL:         "https://www.youtube.com/@cbabordsecondaryedu/search?query=" + cbseQuery,
			Description: fmt.Sprintf("Official CBSE videos for '%s' Class %s", topic, classNum),
			Kind:        "CBSE Official",
		},
		{
			Title:       fmt.Sprintf("%s - NCERT Official", topic),
			URL:         "https://www.youtube.com/@NCERTOfficial/search?query=" + ncertQuery,
			Description: fmt.Sprintf("NCERT official videos for '%s'", topic),
			Kind:        "NCERT Official",
		},
		{
			Title:       fmt.Sprintf("%s - DIKSHA", topic),
			URL:         "https://www.youtube.com/results?search_query=" + dikshaQuery,
			Description: fmt.Sprintf("DIKSHA educational content for '%s' Class %s", topic, classNum),
			Kind:        "DIKSHA",
		},
		{
			Title:       fmt.Sprintf("%s - Swayam Prabha", topic),
			URL:         "https://www.youtube.com/results?search_query=" + swayamQuery,
			Description: fmt.Sprintf("Swayam Prabha educational videos for '%s'", topic),
			Kind:        "Swayam Prabha",
		},
	}
}

// webResources builds links to NCERT and government education portals.
func webResources(topic, subject, classLevel string) []ResourceLink {
	classNum := classNumber(classLevel)
	topicEncoded := url.QueryEscape(topic)

	return []ResourceLink{
		{
			Title:       fmt.Sprintf("NCERT Textbook - Class %s %s", classNum, subject),
			URL:         "https://ncert.nic.in/textbook.php",
			Description: fmt.Sprintf("Official NCERT textbook for Class %s %s", classNum, subject),
			Kind:        "NCERT Textbook",
		},
		{
			Title:       "e-Pathshala - Digital Textbooks",
			URL:         "https://epathshala.nic.in/",
			Description: fmt.Sprintf("Digital NCERT textbooks and resources for %s", subject),
			Kind:        "e-Pathshala",
		},
		{
			Title:       fmt.Sprintf("DIKSHA - %s", topic),
			URL:         fmt.Sprintf("https://diksha.gov.in/explore?searchQuery=%s&board=CBSE&gradeLevel=Class%%20%s", topicEncoded, classNum),
			Description: fmt.Sprintf("Interactive learning content for '%s' on DIKSHA", topic),
			Kind:        "DIKSHA Portal",
		},
		{
			Title:       fmt.Sprintf("NROER - %s", topic),
			URL:         "https://nroer.gov.in/home/search/?search_text=" + topicEncoded,
			Description: fmt.Sprintf("Open educational resources for '%s'", topic),
			Kind:        "NROER",
		},
	}
}
