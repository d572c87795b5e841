package sentiment

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"maintenance-tracker/internal/config"
	domainFeedback "maintenance-tracker/internal/domain/feedback"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client := NewClient(config.SentimentConfig{
		APIKey:  "test-key",
		BaseURL: server.URL,
		Model:   "gpt-4o",
	})
	return client, server
}

func completionResponse(content string) []byte {
	body, _ := json.Marshal(map[string]interface{}{
		"choices": []map[string]interface{}{
			{"message": map[string]string{"content": content}},
		},
	})
	return body
}

func TestAnalyze(t *testing.T) {
	var gotAuth string
	var gotReq chatRequest

	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		assert.Equal(t, "/chat/completions", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))

		w.Header().Set("Content-Type", "application/json")
		w.Write(completionResponse(`{"sentiment":"positive","score":5,"confidence":95,"category":"Service Quality"}`))
	})

	result, err := client.Analyze(context.Background(), "The technician was great")
	require.NoError(t, err)

	assert.Equal(t, "Bearer test-key", gotAuth)
	assert.Equal(t, "gpt-4o", gotReq.Model)
	require.Len(t, gotReq.Messages, 2)
	assert.Equal(t, "user", gotReq.Messages[1].Role)
	assert.Equal(t, "The technician was great", gotReq.Messages[1].Content)

	assert.Equal(t, domainFeedback.SentimentPositive, result.Sentiment)
	assert.Equal(t, 5, result.Score)
	assert.Equal(t, 95, result.Confidence)
	assert.Equal(t, "Service Quality", result.Category)
}

func TestAnalyze_ClampsOutOfRangeValues(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write(completionResponse(`{"sentiment":"negative","score":9,"confidence":150,"category":""}`))
	})

	result, err := client.Analyze(context.Background(), "terrible experience all around")
	require.NoError(t, err)

	assert.Equal(t, domainFeedback.SentimentNegative, result.Sentiment)
	assert.Equal(t, 5, result.Score)
	assert.Equal(t, 100, result.Confidence)
	assert.Equal(t, "General", result.Category, "empty category defaults to General")
}

func TestAnalyze_UnknownSentimentFallsBackToNeutral(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write(completionResponse(`{"sentiment":"ambivalent","score":3,"confidence":50,"category":"General"}`))
	})

	result, err := client.Analyze(context.Background(), "it was what it was, I suppose")
	require.NoError(t, err)
	assert.Equal(t, domainFeedback.SentimentNeutral, result.Sentiment)
}

func TestAnalyze_ServerError(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	})

	_, err := client.Analyze(context.Background(), "does not matter")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "429")
}

func TestAnalyze_MalformedAnalysis(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write(completionResponse("not json at all"))
	})

	_, err := client.Analyze(context.Background(), "does not matter")
	assert.Error(t, err)
}

func TestAnalyze_NoChoices(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"choices":[]}`))
	})

	_, err := client.Analyze(context.Background(), "does not matter")
	assert.Error(t, err)
}
