package services

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"
	"google.golang.org/genai"

	"smarthire/internal/models"
)

// textGenerator abstracts the genai client so the provider can be exercised
// with a stub in tests.
type textGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// GeminiProvider is the quality tier, backed by the Google GenAI SDK.
type GeminiProvider struct {
	generator     textGenerator
	maxResumeLen  int
	promptBuilder *PromptBuilder
	logger        *zap.Logger
}

type GeminiOptions struct {
	APIKey         string
	Model          string
	MaxResumeChars int
	Timeout        time.Duration
}

// NewGeminiProvider never fails: a missing key or a client construction
// error is logged and leaves the adapter permanently unconfigured.
func NewGeminiProvider(ctx context.Context, opts GeminiOptions, logger *zap.Logger) *GeminiProvider {
	if opts.Model == "" {
		opts.Model = "gemini-2.0-flash"
	}
	if opts.MaxResumeChars <= 0 {
		opts.MaxResumeChars = 5000
	}
	if opts.Timeout <= 0 {
		opts.Timeout = 15 * time.Second
	}

	provider := &GeminiProvider{
		maxResumeLen:  opts.MaxResumeChars,
		promptBuilder: NewPromptBuilder(),
		logger:        logger,
	}

	if opts.APIKey == "" {
		logger.Warn("GEMINI_API_KEY not set, quality tier unavailable")
		return provider
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:     opts.APIKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: &http.Client{Timeout: opts.Timeout},
	})
	if err != nil {
		logger.Error("failed to initialize gemini client, quality tier unavailable", zap.Error(err))
		return provider
	}

	provider.generator = &genaiGenerator{client: client, model: opts.Model}
	return provider
}

func (g *GeminiProvider) Name() string {
	return "gemini"
}

func (g *GeminiProvider) Configured() bool {
	return g.generator != nil
}

// Assess sends the assessment prompt to Gemini and parses the JSON object
// out of the model output.
func (g *GeminiProvider) Assess(ctx context.Context, resumeText, jobText string) (*models.MatchAssessment, error) {
	if !g.Configured() {
		return nil, newProviderError(g.Name(), fmt.Errorf("api key not configured"))
	}

	prompt := g.promptBuilder.BuildAssessmentPrompt(truncateResume(resumeText, g.maxResumeLen), jobText)

	g.logger.Debug("sending analysis request to gemini", zap.Int("prompt_length", len(prompt)))

	raw, err := g.generator.Generate(ctx, prompt)
	if err != nil {
		return nil, newProviderError(g.Name(), fmt.Errorf("generate content: %w", err))
	}

	assessment, err := parseAssessment(g.Name(), raw)
	if err != nil {
		return nil, err
	}

	g.logger.Info("gemini analysis complete", zap.Int("match_score", assessment.MatchScore))
	return assessment, nil
}

type genaiGenerator struct {
	client *genai.Client
	model  string
}

func (g *genaiGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	temperature := float32(0.7)
	config := &genai.GenerateContentConfig{
		Temperature:     &temperature,
		MaxOutputTokens: 1000,
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), config)
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}
	if resp == nil {
		return "", fmt.Errorf("no response generated")
	}

	text := resp.Text()
	if text == "" {
		return "", fmt.Errorf("no text content in response")
	}

	return text, nil
}
