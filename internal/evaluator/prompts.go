package evaluator

import "fmt"

// SystemPrompt frames every scoring call. The per-question rubric goes in
// the user prompt.
func SystemPrompt() string {
	return `You are an expert business evaluator scoring answers from an entrepreneurship readiness assessment.

Score strictly against the rubric you are given. Judge only what the founder actually wrote; do not reward length for its own sake or invent details that are not in the response.

Always return a JSON object with 'score' (number 1-5) and 'explanation' (string) fields, and nothing else.`
}

// rubrics maps a question's rubric key to its 1-5 scoring anchors. Keys
// match the catalog's open-ended questions.
var rubrics = map[string]string{
	"entrepreneurialJourney": `You are assessing a founder's entrepreneurial journey.
Score this response on a scale of 1-5 where:
1 = Vague, lacks structure, no clear direction or milestones
3 = Decent clarity with some evidence of execution and progress
5 = Well-articulated, structured response with strong execution and clear growth path`,

	"businessChallenge": `You are assessing how a founder navigates business challenges.
Score this response on a scale of 1-5 where:
1 = Poor problem definition, reactive approach, no clear solution strategy
3 = Clear problem definition, reasonable approach, some evidence of execution
5 = Exceptional problem clarity, strategic solution, strong evidence of execution/learning`,

	"setbacksResilience": `You are assessing a founder's ability to handle setbacks.
Score this response on a scale of 1-5 where:
1 = Poor resilience, gives up easily, no clear recovery strategy
3 = Moderate resilience, recovers but slowly, some adaptation
5 = Exceptional resilience, adapts quickly, shows growth mindset and clear recovery process`,

	"finalVision": `You are assessing a founder's long-term vision.
Score this response on a scale of 1-5 where:
1 = Vague, unrealistic, or very limited vision, no clear roadmap
3 = Clear vision with reasonable ambition, some future goals
5 = Compelling, ambitious vision with clear roadmap and long-term impact`,
}

// BuildScoringPrompt assembles the user prompt for one answer. An unknown
// rubric key falls back to the journey rubric, matching how unseen keys were
// handled historically.
func BuildScoringPrompt(rubricKey, questionText, responseText string) string {
	rubric, ok := rubrics[rubricKey]
	if !ok {
		rubric = rubrics["entrepreneurialJourney"]
	}

	return fmt.Sprintf(`%s

Question asked:
%s

Founder's Response:
%s

Return your evaluation as a JSON object with 'score' (number 1-5) and 'explanation' (string) fields.`,
		rubric, questionText, responseText)
}
