package database

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/lib/pq"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/aunooai/aunoo/internal/models"
	"github.com/aunooai/aunoo/internal/utils"
)

// MigrationFunc is an idempotent procedure that brings the schema forward by
// one increment. It must check existence per column and per index before
// creating, so a partially applied run can be retried safely.
type MigrationFunc func(ctx context.Context, db *gorm.DB, logger zerolog.Logger) error

// Migration represents a named schema change operation
type Migration struct {
	Name string
	Run  MigrationFunc
}

// MigrationRunner applies registered schema change operations exactly once
// each, tracked in the migrations ledger table. Operations execute in
// registration order; later operations may assume earlier ones completed.
type MigrationRunner struct {
	db         *gorm.DB
	logger     zerolog.Logger
	migrations []Migration
}

// NewMigrationRunner creates a new migration runner
func NewMigrationRunner(db *gorm.DB, logger zerolog.Logger) *MigrationRunner {
	return &MigrationRunner{
		db:         db,
		logger:     logger,
		migrations: []Migration{},
	}
}

// Register adds a migration to the runner
func (r *MigrationRunner) Register(migration Migration) {
	r.migrations = append(r.migrations, migration)
}

// Run executes all pending migrations in registration order.
//
// A failed operation surfaces the error and withholds its ledger record, so
// the operation stays pending and is retried on the next startup. Schema
// changes made before the failure point are not rolled back; the per-column
// existence checks inside each operation make the retry safe.
func (r *MigrationRunner) Run(ctx context.Context) error {
	if err := r.ensureLedger(); err != nil {
		return err
	}

	applied, err := r.appliedNames()
	if err != nil {
		return err
	}

	for _, migration := range r.migrations {
		if applied[migration.Name] {
			r.logger.Debug().
				Str("name", migration.Name).
				Msg("Migration already applied, skipping")
			continue
		}

		r.logger.Info().
			Str("name", migration.Name).
			Msg("Running migration")

		if err := migration.Run(ctx, r.db, r.logger); err != nil {
			return utils.WrapMigrationError(migration.Name, err)
		}

		record := &models.Migration{
			Name:      migration.Name,
			AppliedAt: time.Now().UTC(),
		}

		if err := r.db.WithContext(ctx).Create(record).Error; err != nil {
			// Another instance starting against the same database may have
			// applied this migration concurrently; the unique index on name
			// guarantees only one ledger insert succeeds.
			if isUniqueViolation(err) {
				r.logger.Warn().
					Str("name", migration.Name).
					Msg("Migration applied concurrently by another instance")
				continue
			}
			return utils.WrapLedgerError("record", err)
		}

		r.logger.Info().
			Str("name", migration.Name).
			Msg("Migration completed successfully")
	}

	return nil
}

// GetPendingMigrations returns migrations that haven't been applied yet, in
// the order they would run
func (r *MigrationRunner) GetPendingMigrations() ([]Migration, error) {
	if err := r.ensureLedger(); err != nil {
		return nil, err
	}

	applied, err := r.appliedNames()
	if err != nil {
		return nil, err
	}

	var pending []Migration
	for _, migration := range r.migrations {
		if !applied[migration.Name] {
			pending = append(pending, migration)
		}
	}

	return pending, nil
}

// GetAppliedMigrations returns the ledger records of applied migrations
func (r *MigrationRunner) GetAppliedMigrations() ([]models.Migration, error) {
	if err := r.ensureLedger(); err != nil {
		return nil, err
	}

	var records []models.Migration
	if err := r.db.Order("applied_at").Find(&records).Error; err != nil {
		return nil, utils.WrapLedgerError("lookup", err)
	}

	return records, nil
}

// ensureLedger bootstraps the migrations ledger table
func (r *MigrationRunner) ensureLedger() error {
	if err := r.db.AutoMigrate(&models.Migration{}); err != nil {
		return utils.WrapLedgerError("bootstrap", err)
	}
	return nil
}

// appliedNames returns the set of migration names present in the ledger
func (r *MigrationRunner) appliedNames() (map[string]bool, error) {
	var names []string
	if err := r.db.Model(&models.Migration{}).Pluck("name", &names).Error; err != nil {
		return nil, utils.WrapLedgerError("lookup", err)
	}

	applied := make(map[string]bool, len(names))
	for _, name := range names {
		applied[name] = true
	}
	return applied, nil
}

// isUniqueViolation reports whether err is a unique constraint violation on
// the ledger insert
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}

	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		// 23505 unique_violation
		return pqErr.Code == "23505"
	}

	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "duplicate key value")
}
