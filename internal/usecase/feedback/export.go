package feedback

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"time"
)

// ExportCSV renders all stored feedback as CSV. Responses are serialized as
// a JSON object inside a single quoted field.
func (s *Service) ExportCSV(ctx context.Context) ([]byte, error) {
	items, err := s.repo.ListFeedback(ctx, nil)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	header := []string{"ID", "Form ID", "Sentiment", "Score", "Category", "Created At", "Responses"}
	if err := w.Write(header); err != nil {
		return nil, fmt.Errorf("failed to write csv header: %w", err)
	}

	for _, fb := range items {
		responses, err := json.Marshal(fb.Responses)
		if err != nil {
			return nil, fmt.Errorf("failed to serialize responses: %w", err)
		}

		record := []string{
			fb.ID.String(),
			fb.FormID.String(),
			string(fb.Sentiment),
			fmt.Sprintf("%d", fb.SentimentScore),
			fb.Category,
			fb.CreatedAt.UTC().Format(time.RFC3339),
			string(responses),
		}
		if err := w.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write csv record: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("failed to flush csv: %w", err)
	}

	return buf.Bytes(), nil
}
