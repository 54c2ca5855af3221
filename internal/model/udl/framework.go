package udl

import (
	"fmt"
	"strings"
)

// Principle is one of the three UDL principles with its guideline list.
type Principle struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Guidelines  []string `json:"guidelines"`
}

// Framework bundles the UDL knowledge injected into every prompt.
// Loaded once at startup and shared read-only across sessions.
type Framework struct {
	Principles           []Principle `json:"principles"`
	AssessmentGuidelines []string    `json:"assessmentGuidelines"`
}

// Seed provides the UDL framework content the assistant reasons with.
func Seed() Framework {
	return Framework{
		Principles: []Principle{
			{
				Name:        "Multiple Means of Engagement",
				Description: "Provide multiple ways for learners to engage with content and stay motivated",
				Guidelines: []string{
					"Provide options for recruiting interest",
					"Provide options for sustaining effort and persistence",
					"Provide options for self-regulation",
				},
			},
			{
				Name:        "Multiple Means of Representation",
				Description: "Present information and content in multiple ways",
				Guidelines: []string{
					"Provide options for perception",
					"Provide options for language and symbols",
					"Provide options for comprehension",
				},
			},
			{
				Name:        "Multiple Means of Action and Expression",
				Description: "Provide multiple ways for learners to act and express what they know",
				Guidelines: []string{
					"Provide options for physical action",
					"Provide options for expression and communication",
					"Provide options for executive functions",
				},
			},
		},
		AssessmentGuidelines: []string{
			"Ensure assessments measure learning objectives, not access barriers",
			"Provide multiple ways for students to demonstrate knowledge",
			"Use clear, accessible language and instructions",
			"Offer flexible timing and pacing options",
			"Include culturally responsive content and examples",
			"Provide scaffolding and support structures",
			"Allow for student choice in how to express learning",
		},
	}
}

// Render flattens the framework into the text block embedded in the system
// prompt.
func (f Framework) Render() string {
	var b strings.Builder

	b.WriteString("UDL (Universal Design for Learning) framework:\n")
	for i, p := range f.Principles {
		fmt.Fprintf(&b, "\nPrinciple %d: %s\n%s\n", i+1, p.Name, p.Description)
		for _, g := range p.Guidelines {
			fmt.Fprintf(&b, "- %s\n", g)
		}
	}

	b.WriteString("\nAssessment design guidelines:\n")
	for _, g := range f.AssessmentGuidelines {
		fmt.Fprintf(&b, "- %s\n", g)
	}

	return b.String()
}
