package conversation

import "fmt"

// promptFunc formats the prompt for a stage. Most stages ignore the
// collected parameters; the confirmation prompt renders a full snapshot.
type promptFunc func(Params) string

func static(text string) promptFunc {
	return func(Params) string { return text }
}

// prompts is the stage × language table of dialogue prompts. Every stage
// carries both language variants; lookups fall back to English while the
// language mode is not yet established.
var prompts = map[Stage]map[Language]promptFunc{
	StageLanguageSelection: {
		LanguageEnglish: static("Hello! I'm your lesson plan assistant.\n\n" +
			"I can help you create a complete lesson plan through a short conversation.\n\n" +
			"Which language would you prefer?\n" +
			"1) English\n" +
			"2) हिंदी (Hindi)\n\n" +
			"Please say 'English' or 'Hindi'."),
		LanguageHindi: static("नमस्ते! मैं आपका पाठ योजना सहायक हूँ।\n\n" +
			"मैं एक छोटी बातचीत के माध्यम से पूर्ण पाठ योजना बनाने में आपकी सहायता कर सकता हूँ।\n\n" +
			"आप किस भाषा को पसंद करेंगे?\n" +
			"1) English\n" +
			"2) हिंदी (Hindi)\n\n" +
			"कृपया 'English' या 'Hindi' कहें।"),
	},
	StageTopic: {
		LanguageEnglish: static("Great! Let's start creating your lesson plan.\n\n" +
			"What is the topic or lesson title?\n" +
			"Example: Photosynthesis, Fractions, Freedom Struggle"),
		LanguageHindi: static("बढ़िया! चलिए आपकी पाठ योजना बनाना शुरू करते हैं।\n\n" +
			"पाठ का विषय या शीर्षक क्या है?\n" +
			"उदाहरण: प्रकाश संश्लेषण, भिन्न, स्वतंत्रता संग्राम"),
	},
	StageSubject: {
		LanguageEnglish: static("Which subject is this lesson for? Example: Mathematics, Science, Social Science, English, Hindi."),
		LanguageHindi:   static("यह पाठ किस विषय के लिए है? उदाहरण: गणित, विज्ञान, सामाजिक विज्ञान, अंग्रेज़ी, हिंदी।"),
	},
	StageClass: {
		LanguageEnglish: static("Which class is this lesson for? Please say class number 1 to 12. Example: Class 5."),
		LanguageHindi:   static("यह पाठ किस कक्षा के लिए है? कृपया 1 से 12 के बीच कक्षा संख्या बताएं।"),
	},
	StageDuration: {
		LanguageEnglish: static("How long should each session be? Please say 15 to 90 minutes. Example: 40 minutes."),
		LanguageHindi:   static("प्रत्येक सत्र कितने मिनट का होना चाहिए? 15 से 90 मिनट। उदाहरण: 40 मिनट।"),
	},
	StageNumSessions: {
		LanguageEnglish: static("How many sessions do you need? Please say 1 to 10. Example: 4 sessions."),
		LanguageHindi:   static("आपको कितने सत्र चाहिए? 1 से 10। उदाहरण: 4 सत्र।"),
	},
	StageConfirmation: {
		LanguageEnglish: func(p Params) string {
			return fmt.Sprintf("Perfect! Please confirm:\n\n"+
				"Topic: %s\n"+
				"Subject: %s\n"+
				"Class: %s\n"+
				"Session Duration: %d minutes\n"+
				"Number of Sessions: %d\n\n"+
				"Say 'Yes' to generate, or 'No' to start over.",
				p.Topic, p.Subject, p.ClassLevel, p.DurationMinutes, p.NumSessions)
		},
		LanguageHindi: func(p Params) string {
			return fmt.Sprintf("कृपया पुष्टि करें:\n\n"+
				"विषय: %s\n"+
				"सब्जेक्ट: %s\n"+
				"कक्षा: %s\n"+
				"सत्र अवधि: %d मिनट\n"+
				"सत्रों की संख्या: %d\n\n"+
				"बनाने के लिए 'हाँ' कहें, या फिर से शुरू करने के लिए 'नहीं' कहें।",
				p.Topic, p.Subject, p.ClassLevel, p.DurationMinutes, p.NumSessions)
		},
	},
}

// clarifications re-prompt the current stage when an utterance could not
// be understood. The language-selection stage re-sends its full prompt.
var clarifications = map[Stage]map[Language]string{
	StageTopic: {
		LanguageEnglish: "Please tell me the lesson topic clearly.",
		LanguageHindi:   "कृपया विषय स्पष्ट रूप से बताएं।",
	},
	StageSubject: {
		LanguageEnglish: "Please specify the subject name.",
		LanguageHindi:   "कृपया विषय का नाम बताएं।",
	},
	StageClass: {
		LanguageEnglish: "Please say a class number between 1 and 12.",
		LanguageHindi:   "कृपया 1 से 12 के बीच कक्षा संख्या बताएं।",
	},
	StageDuration: {
		LanguageEnglish: "Please say duration between 15 and 90 minutes.",
		LanguageHindi:   "कृपया 15 से 90 मिनट के बीच अवधि बताएं।",
	},
	StageNumSessions: {
		LanguageEnglish: "Please say number of sessions between 1 and 10.",
		LanguageHindi:   "कृपया 1 से 10 के बीच सत्रों की संख्या बताएं।",
	},
	StageConfirmation: {
		LanguageEnglish: "Please say Yes or No.",
		LanguageHindi:   "कृपया हाँ या नहीं कहें।",
	},
}

// Prompt returns the localized prompt for a stage. Unset language falls
// back to English.
func Prompt(stage Stage, mode Language, p Params) string {
	byLang, ok := prompts[stage]
	if !ok {
		return ""
	}
	f, ok := byLang[mode]
	if !ok {
		f = byLang[LanguageEnglish]
	}
	return f(p)
}

// Clarification returns the localized re-prompt for a stage. The
// language-selection stage clarifies by repeating its full prompt.
func Clarification(stage Stage, mode Language, p Params) string {
	if stage == StageLanguageSelection {
		return Prompt(stage, LanguageEnglish, p)
	}
	byLang, ok := clarifications[stage]
	if !ok {
		return ""
	}
	if text, ok := byLang[mode]; ok {
		return text
	}
	return byLang[LanguageEnglish]
}

// restartAck acknowledges a restart command in the user's language.
func restartAck(mode Language) string {
	if mode == LanguageHindi {
		return "फिर से शुरू कर रहे हैं..."
	}
	return "Starting over..."
}

// generatingNotice tells the user generation has begun.
func generatingNotice(mode Language) string {
	if mode == LanguageHindi {
		return "आपकी पूर्ण पाठ योजना और वर्कशीट बनाई जा रही हैं। कृपया प्रतीक्षा करें।"
	}
	return "Generating your complete lesson plan with worksheets. Please wait."
}
