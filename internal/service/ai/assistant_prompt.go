package ai

import (
	"fmt"
	"strings"

	"github.com/mwhitfield/udl-assistant/internal/analysis/intent"
	"github.com/mwhitfield/udl-assistant/internal/model/udl"
)

// PromptTemplate defines the per-intent guidance appended to the system prompt
type PromptTemplate struct {
	Guidance     string
	FormatHints  []string
	ContextRules []string
}

// AssistantPromptManager assembles the system prompt from the UDL framework
// block, the assistant's behavioral stance, and per-intent guidance
type AssistantPromptManager struct {
	framework      udl.Framework
	knowledgeBlock string
	templates      map[intent.Label]*PromptTemplate
}

// NewAssistantPromptManager creates a prompt manager seeded with the framework.
// The knowledge block is rendered once and reused for every turn.
func NewAssistantPromptManager(framework udl.Framework) *AssistantPromptManager {
	manager := &AssistantPromptManager{
		framework:      framework,
		knowledgeBlock: framework.Render(),
		templates:      make(map[intent.Label]*PromptTemplate),
	}

	manager.loadDefaultTemplates()
	return manager
}

// GetPromptTemplate returns the guidance template for a given intent
func (pm *AssistantPromptManager) GetPromptTemplate(label intent.Label) (*PromptTemplate, error) {
	template, exists := pm.templates[label]
	if !exists {
		return nil, fmt.Errorf("prompt template not found for intent: %s", label)
	}
	return template, nil
}

// BuildSystemPrompt creates the full system prompt for one chat turn
func (pm *AssistantPromptManager) BuildSystemPrompt(label intent.Label) string {
	var b strings.Builder

	b.WriteString("You are a UDL (Universal Design for Learning) expert helping K-12 teachers create inclusive assessments.\n\n")
	b.WriteString(pm.knowledgeBlock)
	b.WriteString(`
Behavioral stance:
- Be transparent about your UDL reasoning and explain it in teacher-friendly terms
- Present multiple options rather than prescriptive solutions
- Invite teachers to consider cultural responsiveness and student-specific factors
- Focus on removing barriers rather than accommodating differences
- Build teacher capacity for inclusive design while respecting their professional agency
`)

	template, err := pm.GetPromptTemplate(label)
	if err != nil {
		return b.String()
	}

	b.WriteString("\n")
	b.WriteString(template.Guidance)
	if len(template.FormatHints) > 0 {
		b.WriteString("\n\nStructure your response in markdown as:\n")
		for _, hint := range template.FormatHints {
			b.WriteString("- " + hint + "\n")
		}
	}
	if len(template.ContextRules) > 0 {
		b.WriteString("\nKeep in mind:\n")
		for _, rule := range template.ContextRules {
			b.WriteString("- " + rule + "\n")
		}
	}

	return b.String()
}

// loadDefaultTemplates loads the guidance templates for the supported intents
func (pm *AssistantPromptManager) loadDefaultTemplates() {
	pm.templates[intent.Evaluate] = &PromptTemplate{
		Guidance: "The teacher is asking you to evaluate an existing assessment. Analyze it against the UDL principles and provide detailed feedback.",
		FormatHints: []string{
			"Strengths: UDL-aligned elements already present",
			"Barriers Identified: specific barriers to accessibility and inclusion",
			"Improvement Suggestions: actionable recommendations with UDL rationale, offered as options",
			"Relevant UDL Principles: which principles (1, 2, or 3) are most relevant to address",
		},
		ContextRules: []string{
			"Consider cognitive load, accessibility, and equity",
			"Tie every suggestion back to a named principle or guideline",
		},
	}

	pm.templates[intent.Design] = &PromptTemplate{
		Guidance: "The teacher is asking you to design assessment options. Generate 4-5 diverse options drawn from their learning objectives, grade level, and subject.",
		FormatHints: []string{
			"Option N: format name",
			"Format Description: clear description of the assessment format",
			"Implementation Guidance: step-by-step instructions for teachers",
			"UDL Rationale: why this option supports inclusive learning",
			"Adaptation Considerations: how teachers can customize for their context",
		},
		ContextRules: []string{
			"All options must maintain equivalent rigor and learning objectives",
			"Include diverse formats: written, oral, visual, multimedia, collaborative",
			"Align with Principle 3, Multiple Means of Action and Expression",
		},
	}

	pm.templates[intent.General] = &PromptTemplate{
		Guidance: "The teacher is exploring or asking a general question. Explain what you can help with: evaluating existing assessments against UDL principles, designing new UDL-aligned assessment options, and answering questions about inclusive assessment practice.",
		ContextRules: []string{
			"Invite the teacher to share an assessment to evaluate or objectives to design for",
			"Keep the answer grounded in the UDL framework above",
		},
	}
}
