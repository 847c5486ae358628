package models

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

// KeywordMonitorSettings controls monitoring and auto-ingestion policy for a
// single tracked keyword
type KeywordMonitorSettings struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	Keyword string `gorm:"uniqueIndex;not null" json:"keyword"`
	Enabled bool   `gorm:"default:true" json:"enabled"`

	// Auto-ingestion policy, added by the add_auto_ingest_columns migration
	AutoIngestEnabled   bool    `gorm:"default:false" json:"auto_ingest_enabled"`
	AutoIngestThreshold float64 `gorm:"default:0.7" json:"auto_ingest_threshold"`
	MaxArticlesPerRun   int     `gorm:"default:10" json:"max_articles_per_run"`
	RequireReview       bool    `gorm:"default:true" json:"require_review"`

	// Default model parameters used when summarizing ingested articles
	DefaultModel       string  `gorm:"default:'gpt-4o-mini'" json:"default_model"`
	DefaultTemperature float64 `gorm:"default:0.3" json:"default_temperature"`
	DefaultMaxTokens   int     `gorm:"default:1024" json:"default_max_tokens"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName ensures consistent table naming
func (KeywordMonitorSettings) TableName() string {
	return "keyword_monitor_settings"
}

// Validate checks if the settings have sane values
func (s *KeywordMonitorSettings) Validate() error {
	if s.Keyword == "" {
		return errors.New("keyword cannot be empty")
	}
	if s.AutoIngestThreshold < 0 || s.AutoIngestThreshold > 1 {
		return errors.New("auto ingest threshold must be between 0 and 1")
	}
	if s.MaxArticlesPerRun <= 0 {
		return errors.New("max articles per run must be greater than 0")
	}
	if s.DefaultTemperature < 0 || s.DefaultTemperature > 2 {
		return errors.New("default temperature must be between 0 and 2")
	}
	if s.DefaultMaxTokens <= 0 {
		return errors.New("default max tokens must be greater than 0")
	}
	return nil
}

// BeforeCreate runs validation before saving new settings
func (s *KeywordMonitorSettings) BeforeCreate(tx *gorm.DB) error {
	return s.Validate()
}

// BeforeUpdate runs validation before updating existing settings
func (s *KeywordMonitorSettings) BeforeUpdate(tx *gorm.DB) error {
	return s.Validate()
}
