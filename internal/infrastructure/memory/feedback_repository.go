package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	domainFeedback "maintenance-tracker/internal/domain/feedback"

	"github.com/google/uuid"
)

// FeedbackRepository is an in-memory feedback store for tests and local runs.
type FeedbackRepository struct {
	mu        sync.RWMutex
	templates map[uuid.UUID]*domainFeedback.BrandTemplate
	forms     map[uuid.UUID]*domainFeedback.Form
	feedback  map[uuid.UUID]*domainFeedback.Feedback
}

// NewFeedbackRepository constructs an empty repository.
func NewFeedbackRepository() *FeedbackRepository {
	return &FeedbackRepository{
		templates: make(map[uuid.UUID]*domainFeedback.BrandTemplate),
		forms:     make(map[uuid.UUID]*domainFeedback.Form),
		feedback:  make(map[uuid.UUID]*domainFeedback.Feedback),
	}
}

func (r *FeedbackRepository) CreateTemplate(ctx context.Context, t *domainFeedback.BrandTemplate) error {
	_ = ctx
	r.mu.Lock()
	defer r.mu.Unlock()

	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	if t.CreatedAt.IsZero() {
		t.CreatedAt = time.Now()
	}
	cp := *t
	r.templates[t.ID] = &cp
	return nil
}

func (r *FeedbackRepository) ListTemplates(ctx context.Context) ([]*domainFeedback.BrandTemplate, error) {
	_ = ctx
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*domainFeedback.BrandTemplate, 0, len(r.templates))
	for _, t := range r.templates {
		cp := *t
		result = append(result, &cp)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result, nil
}

func (r *FeedbackRepository) UpdateTemplate(ctx context.Context, t *domainFeedback.BrandTemplate) error {
	_ = ctx
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.templates[t.ID]
	if !ok {
		return domainFeedback.ErrTemplateNotFound
	}
	t.CreatedAt = existing.CreatedAt
	cp := *t
	r.templates[t.ID] = &cp
	return nil
}

func (r *FeedbackRepository) DeleteTemplate(ctx context.Context, templateID uuid.UUID) error {
	_ = ctx
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.templates[templateID]; !ok {
		return domainFeedback.ErrTemplateNotFound
	}
	delete(r.templates, templateID)
	return nil
}

func (r *FeedbackRepository) CreateForm(ctx context.Context, f *domainFeedback.Form) error {
	_ = ctx
	r.mu.Lock()
	defer r.mu.Unlock()

	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}
	if f.CreatedAt.IsZero() {
		f.CreatedAt = time.Now()
	}
	f.UpdatedAt = f.CreatedAt
	cp := *f
	r.forms[f.ID] = &cp
	return nil
}

func (r *FeedbackRepository) GetForm(ctx context.Context, formID uuid.UUID) (*domainFeedback.Form, error) {
	_ = ctx
	r.mu.RLock()
	defer r.mu.RUnlock()

	f, ok := r.forms[formID]
	if !ok {
		return nil, domainFeedback.ErrFormNotFound
	}
	cp := *f
	return &cp, nil
}

func (r *FeedbackRepository) ListForms(ctx context.Context) ([]*domainFeedback.Form, error) {
	_ = ctx
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*domainFeedback.Form, 0, len(r.forms))
	for _, f := range r.forms {
		cp := *f
		result = append(result, &cp)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result, nil
}

func (r *FeedbackRepository) UpdateForm(ctx context.Context, f *domainFeedback.Form) error {
	_ = ctx
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.forms[f.ID]
	if !ok {
		return domainFeedback.ErrFormNotFound
	}
	f.CreatedAt = existing.CreatedAt
	f.UpdatedAt = time.Now()
	cp := *f
	r.forms[f.ID] = &cp
	return nil
}

func (r *FeedbackRepository) CreateFeedback(ctx context.Context, fb *domainFeedback.Feedback) error {
	_ = ctx
	r.mu.Lock()
	defer r.mu.Unlock()

	if fb.ID == uuid.Nil {
		fb.ID = uuid.New()
	}
	if fb.CreatedAt.IsZero() {
		fb.CreatedAt = time.Now()
	}
	cp := *fb
	r.feedback[fb.ID] = &cp
	return nil
}

func (r *FeedbackRepository) UpdateFeedback(ctx context.Context, fb *domainFeedback.Feedback) error {
	_ = ctx
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.feedback[fb.ID]
	if !ok {
		return domainFeedback.ErrFeedbackNotFound
	}
	fb.CreatedAt = existing.CreatedAt
	cp := *fb
	r.feedback[fb.ID] = &cp
	return nil
}

func (r *FeedbackRepository) ListFeedback(ctx context.Context, formID *uuid.UUID) ([]*domainFeedback.Feedback, error) {
	_ = ctx
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*domainFeedback.Feedback, 0, len(r.feedback))
	for _, fb := range r.feedback {
		if formID != nil && fb.FormID != *formID {
			continue
		}
		cp := *fb
		result = append(result, &cp)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result, nil
}
