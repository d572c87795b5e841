package feedback

import (
	"time"

	"github.com/google/uuid"
	domainFeedback "maintenance-tracker/internal/domain/feedback"
)

type CreateTemplateRequest struct {
	Name           string  `json:"name" validate:"required,min=1,max=255"`
	PrimaryColor   string  `json:"primary_color" validate:"required,hexcolor"`
	SecondaryColor string  `json:"secondary_color" validate:"required,hexcolor"`
	LogoURL        *string `json:"logo_url" validate:"omitempty,url"`
}

type UpdateTemplateRequest struct {
	Name           *string `json:"name" validate:"omitempty,min=1,max=255"`
	PrimaryColor   *string `json:"primary_color" validate:"omitempty,hexcolor"`
	SecondaryColor *string `json:"secondary_color" validate:"omitempty,hexcolor"`
	LogoURL        *string `json:"logo_url" validate:"omitempty,url"`
}

type CreateFormRequest struct {
	Title           string                     `json:"title" validate:"required,min=1,max=255"`
	Description     *string                    `json:"description" validate:"omitempty,max=2000"`
	BrandTemplateID *uuid.UUID                 `json:"brand_template_id"`
	Fields          []domainFeedback.FormField `json:"fields" validate:"required,min=1,dive"`
	IsPublished     bool                       `json:"is_published"`
}

type UpdateFormRequest struct {
	Title           *string                    `json:"title" validate:"omitempty,min=1,max=255"`
	Description     *string                    `json:"description" validate:"omitempty,max=2000"`
	BrandTemplateID *uuid.UUID                 `json:"brand_template_id"`
	Fields          []domainFeedback.FormField `json:"fields" validate:"omitempty,min=1,dive"`
	IsPublished     *bool                      `json:"is_published"`
}

type SubmitFeedbackRequest struct {
	FormID    uuid.UUID              `json:"form_id" validate:"required"`
	Responses map[string]interface{} `json:"responses" validate:"required,min=1"`
}

type TemplateResponse struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	PrimaryColor   string    `json:"primary_color"`
	SecondaryColor string    `json:"secondary_color"`
	LogoURL        *string   `json:"logo_url"`
	CreatedAt      time.Time `json:"created_at"`
}

type FormResponse struct {
	ID              uuid.UUID                  `json:"id"`
	Title           string                     `json:"title"`
	Description     *string                    `json:"description"`
	BrandTemplateID *uuid.UUID                 `json:"brand_template_id"`
	Fields          []domainFeedback.FormField `json:"fields"`
	IsPublished     bool                       `json:"is_published"`
	CreatedAt       time.Time                  `json:"created_at"`
	UpdatedAt       time.Time                  `json:"updated_at"`
}

type FeedbackResponse struct {
	ID                  uuid.UUID                `json:"id"`
	FormID              uuid.UUID                `json:"form_id"`
	Responses           map[string]interface{}   `json:"responses"`
	Sentiment           domainFeedback.Sentiment `json:"sentiment"`
	SentimentScore      int                      `json:"sentiment_score"`
	SentimentConfidence int                      `json:"sentiment_confidence"`
	Category            string                   `json:"category"`
	CreatedAt           time.Time                `json:"created_at"`
}

// Stats aggregates the full feedback population.
type Stats struct {
	Total        int                              `json:"total"`
	BySentiment  map[domainFeedback.Sentiment]int `json:"by_sentiment"`
	ByCategory   map[string]int                   `json:"by_category"`
	AverageScore float64                          `json:"average_score"`
	PositiveRate float64                          `json:"positive_rate"`
	NegativeRate float64                          `json:"negative_rate"`
}

func toTemplateResponse(t *domainFeedback.BrandTemplate) *TemplateResponse {
	if t == nil {
		return nil
	}
	return &TemplateResponse{
		ID:             t.ID,
		Name:           t.Name,
		PrimaryColor:   t.PrimaryColor,
		SecondaryColor: t.SecondaryColor,
		LogoURL:        t.LogoURL,
		CreatedAt:      t.CreatedAt,
	}
}

func toFormResponse(f *domainFeedback.Form) *FormResponse {
	if f == nil {
		return nil
	}
	return &FormResponse{
		ID:              f.ID,
		Title:           f.Title,
		Description:     f.Description,
		BrandTemplateID: f.BrandTemplateID,
		Fields:          f.Fields,
		IsPublished:     f.IsPublished,
		CreatedAt:       f.CreatedAt,
		UpdatedAt:       f.UpdatedAt,
	}
}

func toFeedbackResponse(fb *domainFeedback.Feedback) *FeedbackResponse {
	if fb == nil {
		return nil
	}
	return &FeedbackResponse{
		ID:                  fb.ID,
		FormID:              fb.FormID,
		Responses:           fb.Responses,
		Sentiment:           fb.Sentiment,
		SentimentScore:      fb.SentimentScore,
		SentimentConfidence: fb.SentimentConfidence,
		Category:            fb.Category,
		CreatedAt:           fb.CreatedAt,
	}
}
