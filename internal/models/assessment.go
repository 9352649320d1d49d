package models

// Tier identifies which stage of the fallback chain produced a result.
type Tier string

const (
	TierFast        Tier = "fast"
	TierQuality     Tier = "quality"
	TierFallback    Tier = "fallback"
	TierHardFailure Tier = "hard-failure-default"
)

// MatchAssessment is the normalized output of every analysis tier. Callers
// never branch on which tier produced it.
type MatchAssessment struct {
	MatchScore    int      `json:"match_score"`
	KeyStrengths  []string `json:"key_strengths"`
	MissingSkills []string `json:"missing_skills"`
	Summary       string   `json:"summary"`
	EmailDraft    string   `json:"email_draft"`
}

// ProviderHealth reports whether a provider tier holds a credential. It
// reflects configuration only, not live reachability.
type ProviderHealth struct {
	Name       string `json:"name"`
	Configured bool   `json:"configured"`
}
