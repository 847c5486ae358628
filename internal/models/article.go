package models

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

// Article represents a news article stored in the database
type Article struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	Title       string     `gorm:"not null" json:"title"`
	URL         string     `gorm:"uniqueIndex;not null" json:"url"`
	Source      string     `gorm:"index" json:"source"`
	Summary     string     `gorm:"type:text" json:"summary,omitempty"`
	Content     string     `gorm:"type:text" json:"content,omitempty"`
	PublishedAt *time.Time `json:"published_at,omitempty"`

	// Auto-ingestion fields, added by the add_auto_ingest_columns migration
	AutoIngested  bool     `gorm:"default:false;index" json:"auto_ingested"`
	IngestStatus  string   `gorm:"index" json:"ingest_status,omitempty"`
	QualityScore  *float64 `gorm:"index" json:"quality_score,omitempty"`
	QualityIssues string   `gorm:"type:text" json:"quality_issues,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Valid ingest statuses
const (
	IngestStatusPending   = "pending"
	IngestStatusCompleted = "completed"
	IngestStatusFailed    = "failed"
	IngestStatusSkipped   = "skipped"
)

// TableName ensures consistent table naming
func (Article) TableName() string {
	return "articles"
}

// Validate checks if the article has valid required fields and status
func (a *Article) Validate() error {
	if a.Title == "" {
		return errors.New("title cannot be empty")
	}
	if a.URL == "" {
		return errors.New("url cannot be empty")
	}

	// IngestStatus is nullable: empty means the article was never considered
	// for auto-ingestion
	if a.IngestStatus != "" && !IsValidIngestStatus(a.IngestStatus) {
		return errors.New("invalid ingest status: must be one of pending, completed, failed, or skipped")
	}

	return nil
}

// BeforeCreate runs validation before saving a new article
func (a *Article) BeforeCreate(tx *gorm.DB) error {
	return a.Validate()
}

// BeforeUpdate runs validation before updating an existing article
func (a *Article) BeforeUpdate(tx *gorm.DB) error {
	return a.Validate()
}

// IsValidIngestStatus checks if a given ingest status string is valid
func IsValidIngestStatus(s string) bool {
	switch s {
	case IngestStatusPending, IngestStatusCompleted, IngestStatusFailed, IngestStatusSkipped:
		return true
	default:
		return false
	}
}
