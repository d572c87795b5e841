package feedback

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	domainFeedback "maintenance-tracker/internal/domain/feedback"
	"maintenance-tracker/internal/logger"
	appErrors "maintenance-tracker/pkg/errors"
	"maintenance-tracker/pkg/utils"
)

// minAnalyzableLength filters out short answers (ratings, yes/no) before
// sentiment analysis.
const minAnalyzableLength = 10

// Service implements feedback collection and analytics use cases.
type Service struct {
	repo     domainFeedback.Repository
	analyzer domainFeedback.Analyzer
}

// NewService creates a new feedback service
func NewService(repo domainFeedback.Repository, analyzer domainFeedback.Analyzer) *Service {
	return &Service{
		repo:     repo,
		analyzer: analyzer,
	}
}

func (s *Service) CreateTemplate(ctx context.Context, req *CreateTemplateRequest) (*TemplateResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.NewAppError("VALIDATION_ERROR", "Invalid input", err)
	}

	t := &domainFeedback.BrandTemplate{
		Name:           utils.SanitizeString(req.Name),
		PrimaryColor:   req.PrimaryColor,
		SecondaryColor: req.SecondaryColor,
		LogoURL:        req.LogoURL,
	}

	if err := s.repo.CreateTemplate(ctx, t); err != nil {
		return nil, err
	}

	return toTemplateResponse(t), nil
}

func (s *Service) ListTemplates(ctx context.Context) ([]TemplateResponse, error) {
	templates, err := s.repo.ListTemplates(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]TemplateResponse, len(templates))
	for i, t := range templates {
		responses[i] = *toTemplateResponse(t)
	}
	return responses, nil
}

func (s *Service) UpdateTemplate(ctx context.Context, templateID uuid.UUID, req *UpdateTemplateRequest) (*TemplateResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.NewAppError("VALIDATION_ERROR", "Invalid input", err)
	}

	templates, err := s.repo.ListTemplates(ctx)
	if err != nil {
		return nil, err
	}

	var target *domainFeedback.BrandTemplate
	for _, t := range templates {
		if t.ID == templateID {
			target = t
			break
		}
	}
	if target == nil {
		return nil, domainFeedback.ErrTemplateNotFound
	}

	if req.Name != nil {
		target.Name = utils.SanitizeString(*req.Name)
	}
	if req.PrimaryColor != nil {
		target.PrimaryColor = *req.PrimaryColor
	}
	if req.SecondaryColor != nil {
		target.SecondaryColor = *req.SecondaryColor
	}
	if req.LogoURL != nil {
		target.LogoURL = req.LogoURL
	}

	if err := s.repo.UpdateTemplate(ctx, target); err != nil {
		return nil, err
	}

	return toTemplateResponse(target), nil
}

func (s *Service) DeleteTemplate(ctx context.Context, templateID uuid.UUID) error {
	return s.repo.DeleteTemplate(ctx, templateID)
}

func (s *Service) CreateForm(ctx context.Context, req *CreateFormRequest) (*FormResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.NewAppError("VALIDATION_ERROR", "Invalid input", err)
	}

	f := &domainFeedback.Form{
		Title:           utils.SanitizeString(req.Title),
		Description:     req.Description,
		BrandTemplateID: req.BrandTemplateID,
		Fields:          req.Fields,
		IsPublished:     req.IsPublished,
	}

	if err := s.repo.CreateForm(ctx, f); err != nil {
		return nil, err
	}

	logger.Info("Feedback form created",
		zap.String("form_id", f.ID.String()),
		zap.String("title", f.Title),
		zap.String("event", "form_created"),
	)

	return toFormResponse(f), nil
}

func (s *Service) GetForm(ctx context.Context, formID uuid.UUID) (*FormResponse, error) {
	f, err := s.repo.GetForm(ctx, formID)
	if err != nil {
		return nil, err
	}
	return toFormResponse(f), nil
}

func (s *Service) ListForms(ctx context.Context) ([]FormResponse, error) {
	forms, err := s.repo.ListForms(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]FormResponse, len(forms))
	for i, f := range forms {
		responses[i] = *toFormResponse(f)
	}
	return responses, nil
}

func (s *Service) UpdateForm(ctx context.Context, formID uuid.UUID, req *UpdateFormRequest) (*FormResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.NewAppError("VALIDATION_ERROR", "Invalid input", err)
	}

	f, err := s.repo.GetForm(ctx, formID)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		f.Title = utils.SanitizeString(*req.Title)
	}
	if req.Description != nil {
		f.Description = req.Description
	}
	if req.BrandTemplateID != nil {
		f.BrandTemplateID = req.BrandTemplateID
	}
	if req.Fields != nil {
		f.Fields = req.Fields
	}
	if req.IsPublished != nil {
		f.IsPublished = *req.IsPublished
	}

	if err := s.repo.UpdateForm(ctx, f); err != nil {
		return nil, err
	}

	return toFormResponse(f), nil
}

// SubmitFeedback stores a response and tags it with sentiment. Analyzer
// failures degrade to a neutral tag; the submission itself never fails
// because of the analyzer.
func (s *Service) SubmitFeedback(ctx context.Context, req *SubmitFeedbackRequest) (*FeedbackResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.NewAppError("VALIDATION_ERROR", "Invalid input", err)
	}

	if _, err := s.repo.GetForm(ctx, req.FormID); err != nil {
		return nil, err
	}

	result := domainFeedback.NeutralResult()
	if text := analyzableText(req.Responses); text != "" {
		analyzed, err := s.analyzer.Analyze(ctx, text)
		if err != nil {
			logger.Warn("Sentiment analysis failed, falling back to neutral",
				zap.Error(err),
				zap.String("event", "sentiment_analysis_failed"),
			)
		} else {
			result = analyzed
		}
	}

	fb := &domainFeedback.Feedback{
		FormID:              req.FormID,
		Responses:           req.Responses,
		Sentiment:           result.Sentiment,
		SentimentScore:      result.Score,
		SentimentConfidence: result.Confidence,
		Category:            result.Category,
	}

	if err := s.repo.CreateFeedback(ctx, fb); err != nil {
		return nil, err
	}

	logger.Info("Feedback submitted",
		zap.String("feedback_id", fb.ID.String()),
		zap.String("form_id", fb.FormID.String()),
		zap.String("sentiment", string(fb.Sentiment)),
		zap.String("event", "feedback_submitted"),
	)

	return toFeedbackResponse(fb), nil
}

func (s *Service) ListFeedback(ctx context.Context, formID *uuid.UUID) ([]FeedbackResponse, error) {
	items, err := s.repo.ListFeedback(ctx, formID)
	if err != nil {
		return nil, err
	}

	responses := make([]FeedbackResponse, len(items))
	for i, fb := range items {
		responses[i] = *toFeedbackResponse(fb)
	}
	return responses, nil
}

// GetStats aggregates all stored feedback.
func (s *Service) GetStats(ctx context.Context) (*Stats, error) {
	items, err := s.repo.ListFeedback(ctx, nil)
	if err != nil {
		return nil, err
	}

	stats := &Stats{
		Total:       len(items),
		BySentiment: make(map[domainFeedback.Sentiment]int),
		ByCategory:  make(map[string]int),
	}

	scoreSum := 0
	for _, fb := range items {
		stats.BySentiment[fb.Sentiment]++
		stats.ByCategory[fb.Category]++
		scoreSum += fb.SentimentScore
	}

	if stats.Total > 0 {
		stats.AverageScore = float64(scoreSum) / float64(stats.Total)
		stats.PositiveRate = float64(stats.BySentiment[domainFeedback.SentimentPositive]) / float64(stats.Total)
		stats.NegativeRate = float64(stats.BySentiment[domainFeedback.SentimentNegative]) / float64(stats.Total)
	}

	return stats, nil
}

// analyzableText concatenates free-text answers long enough to carry
// sentiment.
func analyzableText(responses map[string]interface{}) string {
	var parts []string
	for _, v := range responses {
		if text, ok := v.(string); ok && len(text) > minAnalyzableLength {
			parts = append(parts, text)
		}
	}
	return strings.Join(parts, " ")
}
