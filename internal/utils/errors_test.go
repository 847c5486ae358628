package utils

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidationError(t *testing.T) {
	err := WrapValidationError("threshold", "must be between 0 and 1")

	assert.Equal(t, "validation error on field 'threshold': must be between 0 and 1", err.Error())
	assert.True(t, IsValidationError(err))
	assert.False(t, IsDatabaseError(err))

	// Without a field
	err = &ValidationError{Message: "bad input"}
	assert.Equal(t, "validation error: bad input", err.Error())
}

func TestDatabaseError(t *testing.T) {
	cause := errors.New("connection refused")
	err := WrapDatabaseError("connect", cause)

	assert.Equal(t, "database error during connect: connection refused", err.Error())
	assert.True(t, IsDatabaseError(err))
	assert.False(t, IsMigrationError(err))

	// Without a cause
	err = &DatabaseError{Operation: "ping"}
	assert.Equal(t, "database error during ping", err.Error())
}

func TestMigrationError(t *testing.T) {
	cause := errors.New("permission denied")
	err := WrapMigrationError("add_auto_ingest_columns", cause)

	assert.Equal(t, "migration add_auto_ingest_columns failed: permission denied", err.Error())
	assert.True(t, IsMigrationError(err))
	assert.ErrorIs(t, err, ErrMigration)
	assert.False(t, IsLedgerError(err))

	// The original cause stays reachable through the chain
	var migErr *MigrationError
	assert.True(t, errors.As(err, &migErr))
	assert.Equal(t, "add_auto_ingest_columns", migErr.Name)
	assert.Equal(t, cause, migErr.Cause)
}

func TestLedgerError(t *testing.T) {
	cause := errors.New("disk full")
	err := WrapLedgerError("bootstrap", cause)

	assert.Equal(t, "migration ledger error during bootstrap: disk full", err.Error())
	assert.True(t, IsLedgerError(err))
	assert.ErrorIs(t, err, ErrLedger)
	assert.False(t, IsMigrationError(err))

	// Without a cause
	err = &LedgerError{Operation: "lookup"}
	assert.Equal(t, "migration ledger error during lookup", err.Error())
}

func TestErrorChecking_WrappedFurther(t *testing.T) {
	// Errors keep their kind when wrapped again by callers
	err := fmt.Errorf("startup aborted: %w", WrapMigrationError("create_core_tables", errors.New("boom")))
	assert.True(t, IsMigrationError(err))

	err = fmt.Errorf("startup aborted: %w", WrapLedgerError("bootstrap", errors.New("boom")))
	assert.True(t, IsLedgerError(err))
}

func TestErrorChecking_NilAndUnrelated(t *testing.T) {
	assert.False(t, IsValidationError(nil))
	assert.False(t, IsDatabaseError(nil))
	assert.False(t, IsMigrationError(nil))
	assert.False(t, IsLedgerError(nil))

	plain := errors.New("plain error")
	assert.False(t, IsValidationError(plain))
	assert.False(t, IsMigrationError(plain))
}
