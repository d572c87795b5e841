package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	domainFeedback "maintenance-tracker/internal/domain/feedback"
	"maintenance-tracker/internal/infrastructure/database/postgres/models"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// FeedbackRepository implements domain feedback.Repository
type FeedbackRepository struct {
	db *DB
}

// NewFeedbackRepository creates a new feedback repository
func NewFeedbackRepository(db *DB) domainFeedback.Repository {
	return &FeedbackRepository{db: db}
}

func (r *FeedbackRepository) CreateTemplate(ctx context.Context, t *domainFeedback.BrandTemplate) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	t.CreatedAt = time.Now()

	dbModel := toTemplateModel(t)
	if err := r.db.DB.WithContext(ctx).Create(dbModel).Error; err != nil {
		return fmt.Errorf("failed to create brand template: %w", err)
	}

	t.ID = dbModel.ID
	t.CreatedAt = dbModel.CreatedAt
	return nil
}

func (r *FeedbackRepository) ListTemplates(ctx context.Context) ([]*domainFeedback.BrandTemplate, error) {
	var dbModels []models.BrandTemplateModel
	err := r.db.DB.WithContext(ctx).Order("created_at DESC").Find(&dbModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list brand templates: %w", err)
	}

	templates := make([]*domainFeedback.BrandTemplate, len(dbModels))
	for i := range dbModels {
		templates[i] = toTemplateEntity(&dbModels[i])
	}
	return templates, nil
}

func (r *FeedbackRepository) UpdateTemplate(ctx context.Context, t *domainFeedback.BrandTemplate) error {
	result := r.db.DB.WithContext(ctx).
		Model(&models.BrandTemplateModel{}).
		Where("id = ?", t.ID).
		Updates(map[string]interface{}{
			"name":            t.Name,
			"primary_color":   t.PrimaryColor,
			"secondary_color": t.SecondaryColor,
			"logo_url":        t.LogoURL,
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update brand template: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domainFeedback.ErrTemplateNotFound
	}
	return nil
}

func (r *FeedbackRepository) DeleteTemplate(ctx context.Context, templateID uuid.UUID) error {
	result := r.db.DB.WithContext(ctx).
		Where("id = ?", templateID).
		Delete(&models.BrandTemplateModel{})

	if result.Error != nil {
		return fmt.Errorf("failed to delete brand template: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domainFeedback.ErrTemplateNotFound
	}
	return nil
}

func (r *FeedbackRepository) CreateForm(ctx context.Context, f *domainFeedback.Form) error {
	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}
	f.CreatedAt = time.Now()
	f.UpdatedAt = f.CreatedAt

	dbModel, err := toFormModel(f)
	if err != nil {
		return err
	}
	if err := r.db.DB.WithContext(ctx).Create(dbModel).Error; err != nil {
		return fmt.Errorf("failed to create form: %w", err)
	}

	f.ID = dbModel.ID
	f.CreatedAt = dbModel.CreatedAt
	f.UpdatedAt = dbModel.UpdatedAt
	return nil
}

func (r *FeedbackRepository) GetForm(ctx context.Context, formID uuid.UUID) (*domainFeedback.Form, error) {
	var dbModel models.FormModel
	err := r.db.DB.WithContext(ctx).Where("id = ?", formID).First(&dbModel).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domainFeedback.ErrFormNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get form: %w", err)
	}

	return toFormEntity(&dbModel)
}

func (r *FeedbackRepository) ListForms(ctx context.Context) ([]*domainFeedback.Form, error) {
	var dbModels []models.FormModel
	err := r.db.DB.WithContext(ctx).Order("created_at DESC").Find(&dbModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list forms: %w", err)
	}

	forms := make([]*domainFeedback.Form, len(dbModels))
	for i := range dbModels {
		form, err := toFormEntity(&dbModels[i])
		if err != nil {
			return nil, err
		}
		forms[i] = form
	}
	return forms, nil
}

func (r *FeedbackRepository) UpdateForm(ctx context.Context, f *domainFeedback.Form) error {
	fields, err := json.Marshal(f.Fields)
	if err != nil {
		return fmt.Errorf("failed to serialize form fields: %w", err)
	}

	f.UpdatedAt = time.Now()
	result := r.db.DB.WithContext(ctx).
		Model(&models.FormModel{}).
		Where("id = ?", f.ID).
		Updates(map[string]interface{}{
			"title":             f.Title,
			"description":       f.Description,
			"brand_template_id": f.BrandTemplateID,
			"fields":            datatypes.JSON(fields),
			"is_published":      f.IsPublished,
			"updated_at":        f.UpdatedAt,
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update form: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domainFeedback.ErrFormNotFound
	}
	return nil
}

func (r *FeedbackRepository) CreateFeedback(ctx context.Context, fb *domainFeedback.Feedback) error {
	if fb.ID == uuid.Nil {
		fb.ID = uuid.New()
	}
	fb.CreatedAt = time.Now()

	dbModel, err := toFeedbackModel(fb)
	if err != nil {
		return err
	}
	if err := r.db.DB.WithContext(ctx).Create(dbModel).Error; err != nil {
		return fmt.Errorf("failed to create feedback: %w", err)
	}

	fb.ID = dbModel.ID
	fb.CreatedAt = dbModel.CreatedAt
	return nil
}

func (r *FeedbackRepository) UpdateFeedback(ctx context.Context, fb *domainFeedback.Feedback) error {
	result := r.db.DB.WithContext(ctx).
		Model(&models.FeedbackModel{}).
		Where("id = ?", fb.ID).
		Updates(map[string]interface{}{
			"sentiment":            string(fb.Sentiment),
			"sentiment_score":      fb.SentimentScore,
			"sentiment_confidence": fb.SentimentConfidence,
			"category":             fb.Category,
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update feedback: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domainFeedback.ErrFeedbackNotFound
	}
	return nil
}

func (r *FeedbackRepository) ListFeedback(ctx context.Context, formID *uuid.UUID) ([]*domainFeedback.Feedback, error) {
	var dbModels []models.FeedbackModel

	db := r.db.DB.WithContext(ctx).Model(&models.FeedbackModel{})
	if formID != nil {
		db = db.Where("form_id = ?", *formID)
	}

	if err := db.Order("created_at DESC").Find(&dbModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list feedback: %w", err)
	}

	items := make([]*domainFeedback.Feedback, len(dbModels))
	for i := range dbModels {
		fb, err := toFeedbackEntity(&dbModels[i])
		if err != nil {
			return nil, err
		}
		items[i] = fb
	}
	return items, nil
}

func toTemplateModel(t *domainFeedback.BrandTemplate) *models.BrandTemplateModel {
	return &models.BrandTemplateModel{
		ID:             t.ID,
		Name:           t.Name,
		PrimaryColor:   t.PrimaryColor,
		SecondaryColor: t.SecondaryColor,
		LogoURL:        t.LogoURL,
		CreatedAt:      t.CreatedAt,
	}
}

func toTemplateEntity(m *models.BrandTemplateModel) *domainFeedback.BrandTemplate {
	return &domainFeedback.BrandTemplate{
		ID:             m.ID,
		Name:           m.Name,
		PrimaryColor:   m.PrimaryColor,
		SecondaryColor: m.SecondaryColor,
		LogoURL:        m.LogoURL,
		CreatedAt:      m.CreatedAt,
	}
}

func toFormModel(f *domainFeedback.Form) (*models.FormModel, error) {
	fields, err := json.Marshal(f.Fields)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize form fields: %w", err)
	}
	return &models.FormModel{
		ID:              f.ID,
		Title:           f.Title,
		Description:     f.Description,
		BrandTemplateID: f.BrandTemplateID,
		Fields:          datatypes.JSON(fields),
		IsPublished:     f.IsPublished,
		CreatedAt:       f.CreatedAt,
		UpdatedAt:       f.UpdatedAt,
	}, nil
}

func toFormEntity(m *models.FormModel) (*domainFeedback.Form, error) {
	var fields []domainFeedback.FormField
	if len(m.Fields) > 0 {
		if err := json.Unmarshal(m.Fields, &fields); err != nil {
			return nil, fmt.Errorf("failed to decode form fields: %w", err)
		}
	}
	return &domainFeedback.Form{
		ID:              m.ID,
		Title:           m.Title,
		Description:     m.Description,
		BrandTemplateID: m.BrandTemplateID,
		Fields:          fields,
		IsPublished:     m.IsPublished,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}, nil
}

func toFeedbackModel(fb *domainFeedback.Feedback) (*models.FeedbackModel, error) {
	responses, err := json.Marshal(fb.Responses)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize responses: %w", err)
	}
	return &models.FeedbackModel{
		ID:                  fb.ID,
		FormID:              fb.FormID,
		Responses:           datatypes.JSON(responses),
		Sentiment:           string(fb.Sentiment),
		SentimentScore:      fb.SentimentScore,
		SentimentConfidence: fb.SentimentConfidence,
		Category:            fb.Category,
		CreatedAt:           fb.CreatedAt,
	}, nil
}

func toFeedbackEntity(m *models.FeedbackModel) (*domainFeedback.Feedback, error) {
	var responses map[string]interface{}
	if len(m.Responses) > 0 {
		if err := json.Unmarshal(m.Responses, &responses); err != nil {
			return nil, fmt.Errorf("failed to decode responses: %w", err)
		}
	}
	return &domainFeedback.Feedback{
		ID:                  m.ID,
		FormID:              m.FormID,
		Responses:           responses,
		Sentiment:           domainFeedback.Sentiment(m.Sentiment),
		SentimentScore:      m.SentimentScore,
		SentimentConfidence: m.SentimentConfidence,
		Category:            m.Category,
		CreatedAt:           m.CreatedAt,
	}, nil
}
