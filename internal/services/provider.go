package services

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"smarthire/internal/models"
)

// Provider is one remote AI tier of the fallback chain. Configured reports
// whether the adapter holds a credential; Assess either returns a valid
// assessment or fails with a *ProviderError, in which case the orchestrator
// falls through to the next tier.
type Provider interface {
	Name() string
	Configured() bool
	Assess(ctx context.Context, resumeText, jobText string) (*models.MatchAssessment, error)
}

// ProviderError marks a recoverable tier failure: transport errors, non-2xx
// responses, and malformed or missing JSON in the model output. It is never
// surfaced to callers of the orchestrator.
type ProviderError struct {
	Provider string
	Err      error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("provider %s: %v", e.Provider, e.Err)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

func newProviderError(provider string, err error) *ProviderError {
	return &ProviderError{Provider: provider, Err: err}
}

var codeFencePattern = regexp.MustCompile("```(?:json)?\\s*")

// cleanModelResponse strips markdown code-fence wrappers that models often
// put around JSON output.
func cleanModelResponse(text string) string {
	text = codeFencePattern.ReplaceAllString(text, "")
	text = strings.ReplaceAll(text, "```", "")
	return strings.TrimSpace(text)
}

// extractJSONObject locates the first '{' and the last '}' so that preamble
// and postamble text around a multi-line JSON object are tolerated.
func extractJSONObject(text string) (string, bool) {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start == -1 || end == -1 || end <= start {
		return "", false
	}
	return text[start : end+1], true
}

// parseAssessment turns raw model output into a repaired MatchAssessment.
// Missing JSON or a parse failure is a tier failure; no partial recovery is
// attempted here, that is the orchestrator's job.
func parseAssessment(provider, raw string) (*models.MatchAssessment, error) {
	cleaned := cleanModelResponse(raw)

	jsonStr, ok := extractJSONObject(cleaned)
	if !ok {
		return nil, newProviderError(provider, fmt.Errorf("no JSON object in response"))
	}

	var fields map[string]any
	if err := json.Unmarshal([]byte(jsonStr), &fields); err != nil {
		return nil, newProviderError(provider, fmt.Errorf("parse response JSON: %w", err))
	}

	return repairAssessment(fields), nil
}

// repairAssessment fills defaults for missing keys, coerces types and
// applies the generous-score guardrail. Feeding it an already complete,
// in-range assessment returns it unchanged.
func repairAssessment(fields map[string]any) *models.MatchAssessment {
	assessment := &models.MatchAssessment{
		MatchScore:    coerceScore(fields["match_score"]),
		KeyStrengths:  coerceStringList(fields["key_strengths"]),
		MissingSkills: coerceStringList(fields["missing_skills"]),
		Summary:       coerceText(fields["summary"]),
		EmailDraft:    coerceText(fields["email_draft"]),
	}

	// Candidates with any demonstrated strengths score at least 35. Policy
	// override on provider output only, never on the engine's.
	if assessment.MatchScore < 35 && len(assessment.KeyStrengths) > 0 {
		assessment.MatchScore = 35
	}

	return assessment
}

func coerceScore(v any) int {
	score := 50
	switch val := v.(type) {
	case float64:
		score = int(val)
	case int:
		score = val
	case string:
		// Only whole-number strings count; "85.5" is a coercion failure
		// and keeps the default.
		parsed, err := strconv.Atoi(strings.TrimSpace(val))
		if err == nil {
			score = parsed
		}
	}

	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	return score
}

func coerceStringList(v any) []string {
	switch val := v.(type) {
	case []any:
		items := make([]string, 0, len(val))
		for _, item := range val {
			items = append(items, coerceText(item))
		}
		return items
	case nil:
		return []string{}
	case string:
		if val == "" {
			return []string{}
		}
		return []string{val}
	case bool:
		// Falsy scalars mean "no list", not a one-element list. A bare
		// false or 0 here must not count as a strength for the guardrail.
		if !val {
			return []string{}
		}
		return []string{fmt.Sprintf("%v", val)}
	case float64:
		if val == 0 {
			return []string{}
		}
		return []string{coerceText(val)}
	default:
		return []string{fmt.Sprintf("%v", val)}
	}
}

func coerceText(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case nil:
		return ""
	default:
		return fmt.Sprintf("%v", val)
	}
}
