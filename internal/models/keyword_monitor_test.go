package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeywordMonitorSettings_TableName(t *testing.T) {
	assert.Equal(t, "keyword_monitor_settings", KeywordMonitorSettings{}.TableName())
}

func TestMigration_TableName(t *testing.T) {
	assert.Equal(t, "migrations", Migration{}.TableName())
}

func validSettings() KeywordMonitorSettings {
	return KeywordMonitorSettings{
		Keyword:             "zero-day",
		Enabled:             true,
		AutoIngestThreshold: 0.7,
		MaxArticlesPerRun:   10,
		DefaultModel:        "gpt-4o-mini",
		DefaultTemperature:  0.3,
		DefaultMaxTokens:    1024,
	}
}

func TestKeywordMonitorSettings_Validate(t *testing.T) {
	t.Run("valid settings", func(t *testing.T) {
		s := validSettings()
		assert.NoError(t, s.Validate())
	})

	t.Run("missing keyword", func(t *testing.T) {
		s := validSettings()
		s.Keyword = ""
		assert.ErrorContains(t, s.Validate(), "keyword cannot be empty")
	})

	t.Run("threshold out of range", func(t *testing.T) {
		s := validSettings()
		s.AutoIngestThreshold = 1.5
		assert.ErrorContains(t, s.Validate(), "threshold must be between 0 and 1")

		s.AutoIngestThreshold = -0.1
		assert.ErrorContains(t, s.Validate(), "threshold must be between 0 and 1")
	})

	t.Run("max articles must be positive", func(t *testing.T) {
		s := validSettings()
		s.MaxArticlesPerRun = 0
		assert.ErrorContains(t, s.Validate(), "max articles per run must be greater than 0")
	})

	t.Run("temperature out of range", func(t *testing.T) {
		s := validSettings()
		s.DefaultTemperature = 2.5
		assert.ErrorContains(t, s.Validate(), "temperature must be between 0 and 2")
	})

	t.Run("max tokens must be positive", func(t *testing.T) {
		s := validSettings()
		s.DefaultMaxTokens = 0
		assert.ErrorContains(t, s.Validate(), "max tokens must be greater than 0")
	})
}
