package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newGroqTestProvider(t *testing.T, handler http.HandlerFunc) *GroqProvider {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return NewGroqProvider(GroqOptions{
		APIKey:         "test-key",
		BaseURL:        server.URL,
		MaxResumeChars: 100,
		Timeout:        2 * time.Second,
	}, zap.NewNop())
}

func groqChatBody(content string) string {
	payload := map[string]any{
		"choices": []map[string]any{
			{"message": map[string]any{"content": content}},
		},
	}
	body, _ := json.Marshal(payload)
	return string(body)
}

func TestGroqProviderConfigured(t *testing.T) {
	configured := NewGroqProvider(GroqOptions{APIKey: "key"}, zap.NewNop())
	assert.True(t, configured.Configured())

	unconfigured := NewGroqProvider(GroqOptions{}, zap.NewNop())
	assert.False(t, unconfigured.Configured())

	_, err := unconfigured.Assess(context.Background(), "resume", "job")
	require.Error(t, err)
}

func TestGroqProviderAssess(t *testing.T) {
	var gotAuth string
	var gotReq groqChatRequest

	provider := newGroqTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(groqChatBody(`{"match_score": 77, "key_strengths": ["Go"], "missing_skills": [], "summary": "s", "email_draft": "e"}`)))
	})

	assessment, err := provider.Assess(context.Background(), "Go developer resume", "Go role")
	require.NoError(t, err)

	assert.Equal(t, "Bearer test-key", gotAuth)
	assert.Equal(t, "llama-3.3-70b-versatile", gotReq.Model)
	require.Len(t, gotReq.Messages, 2)
	assert.Equal(t, "system", gotReq.Messages[0].Role)
	assert.Contains(t, gotReq.Messages[1].Content, "Go developer resume")
	assert.Contains(t, gotReq.Messages[1].Content, "Go role")

	assert.Equal(t, 77, assessment.MatchScore)
	assert.Equal(t, []string{"Go"}, assessment.KeyStrengths)
}

func TestGroqProviderTruncatesResume(t *testing.T) {
	var gotReq groqChatRequest

	provider := newGroqTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))
		w.Write([]byte(groqChatBody(`{"match_score": 50, "key_strengths": [], "missing_skills": [], "summary": "s", "email_draft": "e"}`)))
	})

	longResume := ""
	for i := 0; i < 50; i++ {
		longResume += "0123456789"
	}

	_, err := provider.Assess(context.Background(), longResume, "job")
	require.NoError(t, err)

	// Budget is 100 chars; the full 500-char resume must not reach the prompt.
	assert.NotContains(t, gotReq.Messages[1].Content, longResume)
	assert.Contains(t, gotReq.Messages[1].Content, longResume[:100])
}

func TestGroqProviderNon200IsProviderError(t *testing.T) {
	provider := newGroqTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	})

	_, err := provider.Assess(context.Background(), "resume", "job")
	require.Error(t, err)

	var provErr *ProviderError
	require.ErrorAs(t, err, &provErr)
	assert.Equal(t, "groq", provErr.Provider)
}

func TestGroqProviderMalformedModelOutputIsProviderError(t *testing.T) {
	provider := newGroqTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(groqChatBody("Sorry, I cannot produce JSON today.")))
	})

	_, err := provider.Assess(context.Background(), "resume", "job")
	require.Error(t, err)

	var provErr *ProviderError
	require.ErrorAs(t, err, &provErr)
}

func TestGroqProviderEmptyChoices(t *testing.T) {
	provider := newGroqTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"choices": []}`))
	})

	_, err := provider.Assess(context.Background(), "resume", "job")
	require.Error(t, err)
}
