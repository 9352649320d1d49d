package services

import "fmt"

type PromptBuilder struct{}

func NewPromptBuilder() *PromptBuilder {
	return &PromptBuilder{}
}

// BuildAssessmentPrompt creates the structured analysis prompt shared by
// every provider tier. It embeds the recruiter persona, the generous-scoring
// guidance and a strict output-shape instruction so responses can be parsed
// as a single JSON object.
func (pb *PromptBuilder) BuildAssessmentPrompt(resumeText, jobText string) string {
	return fmt.Sprintf(`You are an experienced Technical Recruiter evaluating candidate fit.

JOB REQUIREMENTS:
%s

CANDIDATE RESUME:
%s

EVALUATION GUIDELINES:
- Be generous: candidates with 50%%+ of required skills should score 60 or higher
- Value transferable skills (e.g., Python experience applies to backend roles)
- Emphasize potential, not just perfect matches
- Ignore PDF extraction artifacts and formatting issues
- Evaluate soft skills like problem-solving, teamwork, communication
- Minimum score is 30 only for completely irrelevant candidates

Analyze this candidate's fit for the role, focusing on strengths and potential.

REQUIRED RESPONSE FORMAT: Return ONLY valid JSON (no markdown, no code blocks):

{
  "match_score": <integer 0-100, generous scoring>,
  "key_strengths": [<skills/experience from resume, max 5>],
  "missing_skills": [<areas for development, max 5>],
  "summary": "<2-3 sentences on potential and alignment>",
  "email_draft": "<professional email - invite if score > 50, else polite decline>"
}`, jobText, resumeText)
}

// truncateResume clips the resume to a provider's character budget to keep
// prompts within token limits. Budgets differ per tier and come from config.
// The cut is on a rune boundary so non-ASCII resumes are never split
// mid-character.
func truncateResume(text string, maxChars int) string {
	if maxChars <= 0 || len(text) <= maxChars {
		return text
	}

	runes := []rune(text)
	if len(runes) <= maxChars {
		return text
	}
	return string(runes[:maxChars])
}
