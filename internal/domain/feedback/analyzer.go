package feedback

import "context"

// AnalysisResult is what the external language-model service returns for a
// piece of free-text feedback.
type AnalysisResult struct {
	Sentiment  Sentiment
	Score      int // 1..5, 3 is neutral
	Confidence int // 0..100
	Category   string
}

// NeutralResult is the fallback used when the analyzer is unavailable or
// fails; a feedback submission never fails because of the analyzer.
func NeutralResult() AnalysisResult {
	return AnalysisResult{
		Sentiment:  SentimentNeutral,
		Score:      3,
		Confidence: 0,
		Category:   "General",
	}
}

// Analyzer tags free-text feedback with sentiment. Implementations wrap an
// external service; callers must treat errors as soft failures.
type Analyzer interface {
	Analyze(ctx context.Context, text string) (AnalysisResult, error)
}
