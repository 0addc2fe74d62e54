package prompt

import "github.com/tmc/langchaingo/prompts"

// DefaultInstruction is appended to a technology description prompt when the caller gives none.
const DefaultInstruction = "Provide an amusing description."

var (
	// RadarOverviewPrompt asks for insights over the whole radar. data is a JSON block.
	RadarOverviewPrompt = prompts.NewPromptTemplate(`
Here is our tech radar data:
{{.data}}

Could you provide insights or recommendations based on this data?
`, []string{"data"})

	// TechDescriptionPrompt asks for a description of a single radar entry.
	TechDescriptionPrompt = prompts.NewPromptTemplate(`
Provide a description for the following technology:

Name: {{.name}}
Status: {{.status}}
Category: {{.category}}
Dependency: {{.dependency}}
Mentor: {{.mentor}}

{{.instruction}}
`, []string{"name", "status", "category", "dependency", "mentor", "instruction"})
)
