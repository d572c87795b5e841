package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// BrandTemplateModel represents the database model for brand templates.
type BrandTemplateModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Name           string    `gorm:"type:varchar(255);not null"`
	PrimaryColor   string    `gorm:"type:varchar(20);not null"`
	SecondaryColor string    `gorm:"type:varchar(20);not null"`
	LogoURL        *string   `gorm:"type:text"`
	CreatedAt      time.Time `gorm:"not null"`
}

func (BrandTemplateModel) TableName() string {
	return "brand_templates"
}

// FormModel represents the database model for feedback forms. Fields holds
// the form's question definitions as a JSON array.
type FormModel struct {
	ID              uuid.UUID      `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Title           string         `gorm:"type:varchar(255);not null"`
	Description     *string        `gorm:"type:text"`
	BrandTemplateID *uuid.UUID     `gorm:"type:uuid"`
	Fields          datatypes.JSON `gorm:"type:jsonb;not null"`
	IsPublished     bool           `gorm:"not null;default:false"`
	CreatedAt       time.Time      `gorm:"not null"`
	UpdatedAt       time.Time      `gorm:"not null"`
}

func (FormModel) TableName() string {
	return "feedback_forms"
}

// FeedbackModel represents the database model for submitted feedback.
type FeedbackModel struct {
	ID                  uuid.UUID      `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	FormID              uuid.UUID      `gorm:"type:uuid;not null;index"`
	Responses           datatypes.JSON `gorm:"type:jsonb;not null"`
	Sentiment           string         `gorm:"type:varchar(20);not null"`
	SentimentScore      int            `gorm:"type:integer;not null"`
	SentimentConfidence int            `gorm:"type:integer;not null"`
	Category            string         `gorm:"type:varchar(100);not null"`
	CreatedAt           time.Time      `gorm:"not null;index"`
}

func (FeedbackModel) TableName() string {
	return "feedback"
}
