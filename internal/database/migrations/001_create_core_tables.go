package migrations

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

// CreateCoreTables creates the articles and keyword_monitor_settings tables
// with their original (pre-auto-ingest) columns
func CreateCoreTables(ctx context.Context, db *gorm.DB, logger zerolog.Logger) error {
	logger.Info().Msg("Creating core tables")

	stmts := []string{
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS articles (
			id %s,
			title TEXT NOT NULL,
			url TEXT NOT NULL,
			source TEXT,
			summary TEXT,
			content TEXT,
			published_at TIMESTAMP,
			created_at TIMESTAMP,
			updated_at TIMESTAMP
		)`, primaryKeyType(db)),
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_articles_url ON articles(url)`,
		`CREATE INDEX IF NOT EXISTS idx_articles_source ON articles(source)`,
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS keyword_monitor_settings (
			id %s,
			keyword TEXT NOT NULL,
			enabled BOOLEAN DEFAULT TRUE,
			created_at TIMESTAMP,
			updated_at TIMESTAMP
		)`, primaryKeyType(db)),
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_keyword_monitor_settings_keyword
			ON keyword_monitor_settings(keyword)`,
	}

	for _, stmt := range stmts {
		if err := db.WithContext(ctx).Exec(stmt).Error; err != nil {
			if isDuplicateError(err) {
				continue
			}
			return err
		}
	}

	return nil
}

// primaryKeyType returns the auto-incrementing primary key column definition
// for the connected engine
func primaryKeyType(db *gorm.DB) string {
	if db.Dialector.Name() == "sqlite" {
		return "INTEGER PRIMARY KEY AUTOINCREMENT"
	}
	return "BIGSERIAL PRIMARY KEY"
}
