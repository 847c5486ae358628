package migrations

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

// columnChange describes a single column added by a migration
type columnChange struct {
	table      string
	column     string
	definition string
}

// autoIngestColumns lists every column the auto-ingest feature requires.
// Each one is checked for existence individually, so a migration interrupted
// partway through a previous run only adds the still-missing pieces on retry.
var autoIngestColumns = []columnChange{
	{"articles", "auto_ingested", "BOOLEAN DEFAULT FALSE"},
	{"articles", "ingest_status", "TEXT"},
	{"articles", "quality_score", "REAL"},
	{"articles", "quality_issues", "TEXT"},
	{"keyword_monitor_settings", "auto_ingest_enabled", "BOOLEAN DEFAULT FALSE"},
	{"keyword_monitor_settings", "auto_ingest_threshold", "REAL DEFAULT 0.7"},
	{"keyword_monitor_settings", "max_articles_per_run", "INTEGER DEFAULT 10"},
	{"keyword_monitor_settings", "require_review", "BOOLEAN DEFAULT TRUE"},
	{"keyword_monitor_settings", "default_model", "TEXT DEFAULT 'gpt-4o-mini'"},
	{"keyword_monitor_settings", "default_temperature", "REAL DEFAULT 0.3"},
	{"keyword_monitor_settings", "default_max_tokens", "INTEGER DEFAULT 1024"},
}

// autoIngestIndexes supports filtering articles by ingestion state
var autoIngestIndexes = []string{
	`CREATE INDEX IF NOT EXISTS idx_articles_auto_ingested ON articles(auto_ingested)`,
	`CREATE INDEX IF NOT EXISTS idx_articles_ingest_status ON articles(ingest_status)`,
	`CREATE INDEX IF NOT EXISTS idx_articles_quality_score ON articles(quality_score)`,
}

// AddAutoIngestColumns adds the auto-ingestion columns to the articles and
// keyword_monitor_settings tables, plus the indexes that support filtering on
// them
func AddAutoIngestColumns(ctx context.Context, db *gorm.DB, logger zerolog.Logger) error {
	logger.Info().Msg("Adding auto-ingest columns")

	for _, change := range autoIngestColumns {
		if db.Migrator().HasColumn(change.table, change.column) {
			continue
		}

		stmt := fmt.Sprintf("ALTER TABLE %s ADD COLUMN %s %s",
			change.table, change.column, change.definition)

		if err := db.WithContext(ctx).Exec(stmt).Error; err != nil {
			// A concurrent instance may have added the column between the
			// existence check and the ALTER
			if isDuplicateError(err) {
				logger.Debug().
					Str("table", change.table).
					Str("column", change.column).
					Msg("Column added concurrently")
				continue
			}
			return fmt.Errorf("failed to add column %s.%s: %w", change.table, change.column, err)
		}

		logger.Info().
			Str("table", change.table).
			Str("column", change.column).
			Msg("Added column")
	}

	for _, stmt := range autoIngestIndexes {
		if err := db.WithContext(ctx).Exec(stmt).Error; err != nil {
			if isDuplicateError(err) {
				continue
			}
			return fmt.Errorf("failed to create index: %w", err)
		}
	}

	return nil
}
