package feedback

import (
	"context"
	"errors"
	"strings"
	"testing"

	domainFeedback "maintenance-tracker/internal/domain/feedback"
	"maintenance-tracker/internal/infrastructure/memory"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubAnalyzer records what it was asked to analyze and returns a canned
// result or error.
type stubAnalyzer struct {
	result   domainFeedback.AnalysisResult
	err      error
	lastText string
	calls    int
}

func (a *stubAnalyzer) Analyze(ctx context.Context, text string) (domainFeedback.AnalysisResult, error) {
	a.calls++
	a.lastText = text
	if a.err != nil {
		return domainFeedback.AnalysisResult{}, a.err
	}
	return a.result, nil
}

func newTestService(analyzer domainFeedback.Analyzer) *Service {
	return NewService(memory.NewFeedbackRepository(), analyzer)
}

func createPublishedForm(t *testing.T, s *Service) *FormResponse {
	t.Helper()

	form, err := s.CreateForm(context.Background(), &CreateFormRequest{
		Title: "Service quality",
		Fields: []domainFeedback.FormField{
			{ID: "comment", Type: "textarea", Label: "Comments", Required: false},
			{ID: "rating", Type: "rating", Label: "Rating", Required: true},
		},
		IsPublished: true,
	})
	require.NoError(t, err)
	return form
}

func TestSubmitFeedback_TagsSentiment(t *testing.T) {
	analyzer := &stubAnalyzer{
		result: domainFeedback.AnalysisResult{
			Sentiment:  domainFeedback.SentimentPositive,
			Score:      5,
			Confidence: 92,
			Category:   "Service Quality",
		},
	}
	s := newTestService(analyzer)
	form := createPublishedForm(t, s)

	resp, err := s.SubmitFeedback(context.Background(), &SubmitFeedbackRequest{
		FormID: form.ID,
		Responses: map[string]interface{}{
			"comment": "The technician was fantastic and very thorough",
			"rating":  float64(5),
		},
	})
	require.NoError(t, err)

	assert.Equal(t, domainFeedback.SentimentPositive, resp.Sentiment)
	assert.Equal(t, 5, resp.SentimentScore)
	assert.Equal(t, 92, resp.SentimentConfidence)
	assert.Equal(t, "Service Quality", resp.Category)
	assert.Equal(t, 1, analyzer.calls)
	assert.Contains(t, analyzer.lastText, "fantastic")
}

func TestSubmitFeedback_AnalyzerFailureFallsBackToNeutral(t *testing.T) {
	analyzer := &stubAnalyzer{err: errors.New("service unavailable")}
	s := newTestService(analyzer)
	form := createPublishedForm(t, s)

	resp, err := s.SubmitFeedback(context.Background(), &SubmitFeedbackRequest{
		FormID: form.ID,
		Responses: map[string]interface{}{
			"comment": "Everything broke down again, very disappointing",
		},
	})
	require.NoError(t, err, "submission must survive analyzer failure")

	assert.Equal(t, domainFeedback.SentimentNeutral, resp.Sentiment)
	assert.Equal(t, 3, resp.SentimentScore)
	assert.Equal(t, 0, resp.SentimentConfidence)
	assert.Equal(t, "General", resp.Category)
}

func TestSubmitFeedback_ShortAnswersSkipAnalyzer(t *testing.T) {
	analyzer := &stubAnalyzer{}
	s := newTestService(analyzer)
	form := createPublishedForm(t, s)

	resp, err := s.SubmitFeedback(context.Background(), &SubmitFeedbackRequest{
		FormID: form.ID,
		Responses: map[string]interface{}{
			"comment": "ok",
			"rating":  float64(4),
		},
	})
	require.NoError(t, err)

	assert.Zero(t, analyzer.calls, "ratings and short answers carry no sentiment")
	assert.Equal(t, domainFeedback.SentimentNeutral, resp.Sentiment)
}

func TestSubmitFeedback_UnknownForm(t *testing.T) {
	s := newTestService(&stubAnalyzer{})

	_, err := s.SubmitFeedback(context.Background(), &SubmitFeedbackRequest{
		FormID:    uuid.New(),
		Responses: map[string]interface{}{"comment": "does not matter here"},
	})
	assert.ErrorIs(t, err, domainFeedback.ErrFormNotFound)
}

func TestGetStats(t *testing.T) {
	s := newTestService(&stubAnalyzer{})
	form := createPublishedForm(t, s)

	seed := []struct {
		sentiment domainFeedback.Sentiment
		score     int
		category  string
	}{
		{domainFeedback.SentimentPositive, 5, "Service Quality"},
		{domainFeedback.SentimentPositive, 4, "Service Quality"},
		{domainFeedback.SentimentNegative, 1, "Response Time"},
		{domainFeedback.SentimentNeutral, 3, "General"},
	}
	for _, item := range seed {
		require.NoError(t, s.repo.CreateFeedback(context.Background(), &domainFeedback.Feedback{
			FormID:         form.ID,
			Responses:      map[string]interface{}{"rating": 1},
			Sentiment:      item.sentiment,
			SentimentScore: item.score,
			Category:       item.category,
		}))
	}

	stats, err := s.GetStats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 4, stats.Total)
	assert.Equal(t, 2, stats.BySentiment[domainFeedback.SentimentPositive])
	assert.Equal(t, 1, stats.BySentiment[domainFeedback.SentimentNegative])
	assert.Equal(t, 1, stats.BySentiment[domainFeedback.SentimentNeutral])
	assert.Equal(t, 2, stats.ByCategory["Service Quality"])
	assert.InDelta(t, 3.25, stats.AverageScore, 0.0001)
	assert.InDelta(t, 0.5, stats.PositiveRate, 0.0001)
	assert.InDelta(t, 0.25, stats.NegativeRate, 0.0001)
}

func TestGetStats_Empty(t *testing.T) {
	s := newTestService(&stubAnalyzer{})

	stats, err := s.GetStats(context.Background())
	require.NoError(t, err)

	assert.Zero(t, stats.Total)
	assert.Zero(t, stats.AverageScore)
	assert.Zero(t, stats.PositiveRate)
}

func TestUpdateTemplate(t *testing.T) {
	s := newTestService(&stubAnalyzer{})

	created, err := s.CreateTemplate(context.Background(), &CreateTemplateRequest{
		Name:           "Default",
		PrimaryColor:   "#336699",
		SecondaryColor: "#ffffff",
	})
	require.NoError(t, err)

	name := "Rebranded"
	primary := "#000000"
	updated, err := s.UpdateTemplate(context.Background(), created.ID, &UpdateTemplateRequest{
		Name:         &name,
		PrimaryColor: &primary,
	})
	require.NoError(t, err)

	assert.Equal(t, "Rebranded", updated.Name)
	assert.Equal(t, "#000000", updated.PrimaryColor)
	assert.Equal(t, "#ffffff", updated.SecondaryColor)

	_, err = s.UpdateTemplate(context.Background(), uuid.New(), &UpdateTemplateRequest{Name: &name})
	assert.ErrorIs(t, err, domainFeedback.ErrTemplateNotFound)
}

func TestExportCSV(t *testing.T) {
	s := newTestService(&stubAnalyzer{
		result: domainFeedback.AnalysisResult{
			Sentiment:  domainFeedback.SentimentNegative,
			Score:      2,
			Confidence: 80,
			Category:   "Response Time",
		},
	})
	form := createPublishedForm(t, s)

	_, err := s.SubmitFeedback(context.Background(), &SubmitFeedbackRequest{
		FormID: form.ID,
		Responses: map[string]interface{}{
			"comment": `Took far too long, and the report said "fixed" when it was not`,
		},
	})
	require.NoError(t, err)

	data, err := s.ExportCSV(context.Background())
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "Sentiment")
	assert.Contains(t, lines[1], "negative")
	assert.Contains(t, lines[1], form.ID.String())
	// Embedded quotes must be doubled per RFC 4180.
	assert.Contains(t, string(data), `""fixed`)
}
