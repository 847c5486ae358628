package models

import (
	"time"
)

// Migration represents a schema migration that has been applied to the database.
// Operational tooling queries the table directly
// (SELECT name FROM migrations WHERE name = '...'), so the table name and the
// unique name column are part of the external contract.
type Migration struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"uniqueIndex;not null" json:"name"`
	AppliedAt time.Time `json:"applied_at"`
}

// TableName ensures consistent table naming
func (Migration) TableName() string {
	return "migrations"
}
