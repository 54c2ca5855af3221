package intent

import "strings"

// Label identifies what kind of help a chat turn is asking for.
type Label string

const (
	// Evaluate asks for feedback on an existing assessment.
	Evaluate Label = "evaluate"
	// Design asks for new assessment options.
	Design Label = "design"
	// General covers everything else: UDL questions, greetings, follow-ups.
	General Label = "general"
)

var keywordBuckets = map[Label][]string{
	Evaluate: {"evaluate", "analyze", "analyse", "review", "feedback", "assess my", "critique"},
	Design:   {"create", "design", "generate", "options", "alternatives", "come up with", "suggest"},
}

// Evaluation outranks design when a message matches both buckets, so
// "review my design" is treated as an evaluation request.
var priority = []Label{Evaluate, Design}

// Classify inspects a user message and picks the guidance bucket for the turn.
func Classify(message string) Label {
	lowered := strings.ToLower(message)

	for _, label := range priority {
		for _, keyword := range keywordBuckets[label] {
			if strings.Contains(lowered, keyword) {
				return label
			}
		}
	}

	return General
}
