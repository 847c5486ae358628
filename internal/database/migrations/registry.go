package migrations

import (
	"github.com/aunooai/aunoo/internal/database"
)

// GetMigrations returns all registered migrations.
//
// Order matters: add_auto_ingest_columns alters tables that
// create_core_tables creates, so the slice order is the execution order.
func GetMigrations() []database.Migration {
	return []database.Migration{
		{
			Name: "create_core_tables",
			Run:  CreateCoreTables,
		},
		{
			Name: "add_auto_ingest_columns",
			Run:  AddAutoIngestColumns,
		},
	}
}
