package feedback

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines the interface for feedback storage operations
type Repository interface {
	CreateTemplate(ctx context.Context, template *BrandTemplate) error
	ListTemplates(ctx context.Context) ([]*BrandTemplate, error)
	UpdateTemplate(ctx context.Context, template *BrandTemplate) error
	DeleteTemplate(ctx context.Context, templateID uuid.UUID) error

	CreateForm(ctx context.Context, form *Form) error
	GetForm(ctx context.Context, formID uuid.UUID) (*Form, error)
	ListForms(ctx context.Context) ([]*Form, error)
	UpdateForm(ctx context.Context, form *Form) error

	CreateFeedback(ctx context.Context, fb *Feedback) error
	UpdateFeedback(ctx context.Context, fb *Feedback) error
	ListFeedback(ctx context.Context, formID *uuid.UUID) ([]*Feedback, error)
}
