package services

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubGenerator struct {
	response   string
	err        error
	lastPrompt string
}

func (s *stubGenerator) Generate(_ context.Context, prompt string) (string, error) {
	s.lastPrompt = prompt
	if s.err != nil {
		return "", s.err
	}
	return s.response, nil
}

func newGeminiTestProvider(stub *stubGenerator) *GeminiProvider {
	return &GeminiProvider{
		generator:     stub,
		maxResumeLen:  5000,
		promptBuilder: NewPromptBuilder(),
		logger:        zap.NewNop(),
	}
}

func TestGeminiProviderUnconfiguredWithoutKey(t *testing.T) {
	provider := NewGeminiProvider(context.Background(), GeminiOptions{}, zap.NewNop())

	assert.False(t, provider.Configured())

	_, err := provider.Assess(context.Background(), "resume", "job")
	require.Error(t, err)
}

func TestGeminiProviderAssess(t *testing.T) {
	stub := &stubGenerator{response: "```json\n{\"match_score\": 68, \"key_strengths\": [\"React\"], \"missing_skills\": [\"Go\"], \"summary\": \"s\", \"email_draft\": \"e\"}\n```"}
	provider := newGeminiTestProvider(stub)

	assessment, err := provider.Assess(context.Background(), "React developer", "Frontend role")
	require.NoError(t, err)

	assert.Equal(t, 68, assessment.MatchScore)
	assert.Equal(t, []string{"React"}, assessment.KeyStrengths)
	assert.Contains(t, stub.lastPrompt, "React developer")
	assert.Contains(t, stub.lastPrompt, "Frontend role")
	assert.Contains(t, stub.lastPrompt, "Technical Recruiter")
}

func TestGeminiProviderGenerationFailureIsProviderError(t *testing.T) {
	stub := &stubGenerator{err: fmt.Errorf("quota exceeded")}
	provider := newGeminiTestProvider(stub)

	_, err := provider.Assess(context.Background(), "resume", "job")
	require.Error(t, err)

	var provErr *ProviderError
	require.ErrorAs(t, err, &provErr)
	assert.Equal(t, "gemini", provErr.Provider)
}

func TestGeminiProviderTruncatesResume(t *testing.T) {
	stub := &stubGenerator{response: `{"match_score": 50, "key_strengths": [], "missing_skills": [], "summary": "s", "email_draft": "e"}`}
	provider := newGeminiTestProvider(stub)
	provider.maxResumeLen = 10

	_, err := provider.Assess(context.Background(), "abcdefghijKLMNOP", "job")
	require.NoError(t, err)

	assert.Contains(t, stub.lastPrompt, "abcdefghij")
	assert.NotContains(t, stub.lastPrompt, "KLMNOP")
}
