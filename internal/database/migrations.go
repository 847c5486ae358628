package database

import (
	"context"

	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

// RunMigrations brings the schema up to the latest known version. It is
// called once during process startup, before the database is exposed to any
// other subsystem; a returned error must abort startup.
//
// The migration list is static configuration, constructed once by the caller
// (see the migrations package registry) and executed in the given order.
func RunMigrations(ctx context.Context, db *gorm.DB, logger zerolog.Logger, migrations []Migration) error {
	runner := NewMigrationRunner(db, logger)
	for _, migration := range migrations {
		runner.Register(migration)
	}
	return runner.Run(ctx)
}
