package sentiment

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"maintenance-tracker/internal/config"
	domainFeedback "maintenance-tracker/internal/domain/feedback"
)

const defaultTimeout = 15 * time.Second

// Client calls a chat-completions API to classify feedback text. It
// implements feedback.Analyzer.
type Client struct {
	apiKey  string
	baseURL string
	model   string
	client  *http.Client
}

// NewClient builds an analyzer from the sentiment section of the config.
func NewClient(cfg config.SentimentConfig) *Client {
	timeout := defaultTimeout
	if cfg.TimeoutSeconds > 0 {
		timeout = time.Duration(cfg.TimeoutSeconds) * time.Second
	}

	return &Client{
		apiKey:  cfg.APIKey,
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		model:   cfg.Model,
		client:  &http.Client{Timeout: timeout},
	}
}

const systemPrompt = `You are a sentiment analysis expert. Analyze customer feedback and respond with JSON in this exact format:
{"sentiment": "positive" | "negative" | "neutral", "score": 1-5, "confidence": 0-100, "category": "short category label"}`

type chatRequest struct {
	Model          string          `json:"model"`
	Messages       []chatMessage   `json:"messages"`
	ResponseFormat *responseFormat `json:"response_format,omitempty"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type responseFormat struct {
	Type string `json:"type"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

type analysisPayload struct {
	Sentiment  string `json:"sentiment"`
	Score      int    `json:"score"`
	Confidence int    `json:"confidence"`
	Category   string `json:"category"`
}

// Analyze classifies a piece of feedback text. Errors are returned to the
// caller, which is expected to fall back to a neutral result.
func (c *Client) Analyze(ctx context.Context, text string) (domainFeedback.AnalysisResult, error) {
	reqBody := chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: text},
		},
		ResponseFormat: &responseFormat{Type: "json_object"},
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return domainFeedback.AnalysisResult{}, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewBuffer(payload))
	if err != nil {
		return domainFeedback.AnalysisResult{}, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return domainFeedback.AnalysisResult{}, fmt.Errorf("failed to call sentiment service: %w", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode >= 400 {
		return domainFeedback.AnalysisResult{}, fmt.Errorf("sentiment service returned status %d: %s", resp.StatusCode, string(body))
	}

	var completion chatResponse
	if err := json.Unmarshal(body, &completion); err != nil {
		return domainFeedback.AnalysisResult{}, fmt.Errorf("failed to decode completion: %w", err)
	}
	if len(completion.Choices) == 0 {
		return domainFeedback.AnalysisResult{}, fmt.Errorf("sentiment service returned no choices")
	}

	var analysis analysisPayload
	if err := json.Unmarshal([]byte(completion.Choices[0].Message.Content), &analysis); err != nil {
		return domainFeedback.AnalysisResult{}, fmt.Errorf("failed to decode analysis: %w", err)
	}

	return toResult(analysis), nil
}

func toResult(a analysisPayload) domainFeedback.AnalysisResult {
	sentiment := domainFeedback.Sentiment(a.Sentiment)
	switch sentiment {
	case domainFeedback.SentimentPositive, domainFeedback.SentimentNegative, domainFeedback.SentimentNeutral:
	default:
		sentiment = domainFeedback.SentimentNeutral
	}

	category := a.Category
	if category == "" {
		category = "General"
	}

	return domainFeedback.AnalysisResult{
		Sentiment:  sentiment,
		Score:      clamp(a.Score, 1, 5),
		Confidence: clamp(a.Confidence, 0, 100),
		Category:   category,
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
