package feedback

import (
	"time"

	"github.com/google/uuid"
)

// BrandTemplate styles published feedback forms.
type BrandTemplate struct {
	ID             uuid.UUID
	Name           string
	PrimaryColor   string
	SecondaryColor string
	LogoURL        *string
	CreatedAt      time.Time
}

// FormField is one question in a feedback form.
type FormField struct {
	ID       string `json:"id"`
	Type     string `json:"type"`
	Label    string `json:"label"`
	Required bool   `json:"required"`
}

// Form is a configurable customer-feedback form.
type Form struct {
	ID              uuid.UUID
	Title           string
	Description     *string
	BrandTemplateID *uuid.UUID
	Fields          []FormField
	IsPublished     bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Sentiment classifies a feedback response's overall tone.
type Sentiment string

const (
	SentimentPositive Sentiment = "positive"
	SentimentNegative Sentiment = "negative"
	SentimentNeutral  Sentiment = "neutral"
)

// Feedback is a single submitted response, tagged with sentiment after the
// analyzer has run. Responses maps field IDs to the submitted values.
type Feedback struct {
	ID                  uuid.UUID
	FormID              uuid.UUID
	Responses           map[string]interface{}
	Sentiment           Sentiment
	SentimentScore      int
	SentimentConfidence int
	Category            string
	CreatedAt           time.Time
}
