package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"smarthire/internal/models"
)

// Orchestrator runs the three-tier fallback chain: fast provider, quality
// provider, deterministic keyword engine. Tiers get exactly one attempt
// each, in fixed priority order, and the chain always produces a result.
type Orchestrator struct {
	providers []Provider
	engine    ScoringEngine
	logger    *zap.Logger
}

func NewOrchestrator(engine ScoringEngine, logger *zap.Logger, providers ...Provider) *Orchestrator {
	return &Orchestrator{
		providers: providers,
		engine:    engine,
		logger:    logger,
	}
}

// ProviderHealth reports the configured state of every provider tier, for
// the health endpoint. Configuration only, not live reachability.
func (o *Orchestrator) ProviderHealth() []models.ProviderHealth {
	health := make([]models.ProviderHealth, 0, len(o.providers))
	for _, p := range o.providers {
		health = append(health, models.ProviderHealth{
			Name:       p.Name(),
			Configured: p.Configured(),
		})
	}
	return health
}

// Analyze walks the tiers until one produces an assessment. Unconfigured
// tiers are skipped silently; tier failures are logged at warning level and
// never surface to the caller. The returned tier records which stage
// ultimately succeeded.
func (o *Orchestrator) Analyze(ctx context.Context, resumeText, jobText string) (*models.MatchAssessment, models.Tier) {
	tierNames := []models.Tier{models.TierFast, models.TierQuality}

	for i, provider := range o.providers {
		tier := models.TierFallback
		if i < len(tierNames) {
			tier = tierNames[i]
		}

		if !provider.Configured() {
			o.logger.Info("tier not configured, skipping",
				zap.String("provider", provider.Name()),
				zap.String("tier", string(tier)),
			)
			continue
		}

		assessment, err := provider.Assess(ctx, resumeText, jobText)
		if err != nil {
			o.logger.Warn("tier failed, falling through",
				zap.String("provider", provider.Name()),
				zap.String("tier", string(tier)),
				zap.Error(err),
			)
			continue
		}

		o.logger.Info("analysis complete",
			zap.String("provider", provider.Name()),
			zap.String("tier", string(tier)),
			zap.Int("match_score", assessment.MatchScore),
		)
		return assessment, tier
	}

	// The keyword engine cannot fail by contract, but the chain's hard
	// reliability guarantee holds even if it somehow does.
	assessment, err := o.scoreDefensively(resumeText, jobText)
	if err != nil {
		o.logger.Error("fallback engine failed, returning default assessment", zap.Error(err))
		return hardFailureAssessment(), models.TierHardFailure
	}

	o.logger.Info("analysis complete",
		zap.String("tier", string(models.TierFallback)),
		zap.Int("match_score", assessment.MatchScore),
	)
	return assessment, models.TierFallback
}

func (o *Orchestrator) scoreDefensively(resumeText, jobText string) (assessment *models.MatchAssessment, err error) {
	defer func() {
		if r := recover(); r != nil {
			assessment = nil
			err = fmt.Errorf("scoring engine panicked: %v", r)
		}
	}()

	assessment, err = o.engine.Score(resumeText, jobText)
	if err == nil && assessment == nil {
		err = fmt.Errorf("scoring engine returned no assessment")
	}
	return assessment, err
}

func hardFailureAssessment() *models.MatchAssessment {
	return &models.MatchAssessment{
		MatchScore:    0,
		KeyStrengths:  []string{},
		MissingSkills: []string{},
		Summary:       "AI analysis temporarily unavailable. Please try again.",
		EmailDraft:    "",
	}
}
