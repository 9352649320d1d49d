package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"

	"smarthire/internal/models"
)

// GroqProvider is the fast tier. Groq exposes an OpenAI-compatible chat
// completions endpoint, so the adapter talks plain HTTP; there is no
// official Go SDK.
type GroqProvider struct {
	apiKey        string
	baseURL       string
	model         string
	maxResumeLen  int
	client        *http.Client
	promptBuilder *PromptBuilder
	logger        *zap.Logger
}

type GroqOptions struct {
	APIKey         string
	BaseURL        string
	Model          string
	MaxResumeChars int
	Timeout        time.Duration
}

// NewGroqProvider never fails: a missing API key is logged and leaves the
// adapter permanently unconfigured for the process lifetime.
func NewGroqProvider(opts GroqOptions, logger *zap.Logger) *GroqProvider {
	if opts.APIKey == "" {
		logger.Warn("GROQ_API_KEY not set, fast tier unavailable")
	}
	if opts.BaseURL == "" {
		opts.BaseURL = "https://api.groq.com/openai/v1"
	}
	if opts.Model == "" {
		opts.Model = "llama-3.3-70b-versatile"
	}
	if opts.MaxResumeChars <= 0 {
		opts.MaxResumeChars = 6000
	}
	if opts.Timeout <= 0 {
		opts.Timeout = 10 * time.Second
	}

	return &GroqProvider{
		apiKey:        opts.APIKey,
		baseURL:       opts.BaseURL,
		model:         opts.Model,
		maxResumeLen:  opts.MaxResumeChars,
		client:        &http.Client{Timeout: opts.Timeout},
		promptBuilder: NewPromptBuilder(),
		logger:        logger,
	}
}

func (g *GroqProvider) Name() string {
	return "groq"
}

func (g *GroqProvider) Configured() bool {
	return g.apiKey != ""
}

type groqChatRequest struct {
	Model       string        `json:"model"`
	Messages    []groqMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
	TopP        float64       `json:"top_p"`
	Stream      bool          `json:"stream"`
}

type groqMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type groqChatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Assess sends the assessment prompt to Groq and parses the JSON object out
// of the model output. Any transport error, non-2xx status or unparsable
// response fails the tier.
func (g *GroqProvider) Assess(ctx context.Context, resumeText, jobText string) (*models.MatchAssessment, error) {
	if !g.Configured() {
		return nil, newProviderError(g.Name(), fmt.Errorf("api key not configured"))
	}

	prompt := g.promptBuilder.BuildAssessmentPrompt(truncateResume(resumeText, g.maxResumeLen), jobText)

	reqBody := groqChatRequest{
		Model: g.model,
		Messages: []groqMessage{
			{Role: "system", Content: "You are a helpful recruiter AI that returns only valid JSON responses."},
			{Role: "user", Content: prompt},
		},
		Temperature: 0.7,
		MaxTokens:   1000,
		TopP:        1,
		Stream:      false,
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return nil, newProviderError(g.Name(), fmt.Errorf("marshal request: %w", err))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+"/chat/completions", bytes.NewReader(payload))
	if err != nil {
		return nil, newProviderError(g.Name(), fmt.Errorf("create request: %w", err))
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+g.apiKey)

	g.logger.Debug("sending analysis request to groq",
		zap.String("model", g.model),
		zap.Int("prompt_length", len(prompt)),
	)

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, newProviderError(g.Name(), fmt.Errorf("call groq api: %w", err))
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, newProviderError(g.Name(), fmt.Errorf("read response: %w", err))
	}

	if resp.StatusCode != http.StatusOK {
		return nil, newProviderError(g.Name(), fmt.Errorf("groq api returned %d: %s", resp.StatusCode, body))
	}

	var chatResp groqChatResponse
	if err := json.Unmarshal(body, &chatResp); err != nil {
		return nil, newProviderError(g.Name(), fmt.Errorf("decode chat response: %w", err))
	}

	if len(chatResp.Choices) == 0 {
		return nil, newProviderError(g.Name(), fmt.Errorf("empty response from groq"))
	}

	assessment, err := parseAssessment(g.Name(), chatResp.Choices[0].Message.Content)
	if err != nil {
		return nil, err
	}

	g.logger.Info("groq analysis complete", zap.Int("match_score", assessment.MatchScore))
	return assessment, nil
}
