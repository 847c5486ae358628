package utils

import (
	"errors"
	"fmt"
)

// Custom error types
var (
	// ErrValidation is returned when input validation fails
	ErrValidation = errors.New("validation error")

	// ErrDatabase is returned when there's a database operation error
	ErrDatabase = errors.New("database error")

	// ErrMigration is returned when a schema change operation fails
	ErrMigration = errors.New("migration error")

	// ErrLedger is returned when the migration ledger itself cannot be
	// created or read
	ErrLedger = errors.New("ledger error")
)

// ValidationError represents an error that occurs during input validation
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// DatabaseError represents an error that occurs during database operations
type DatabaseError struct {
	Operation string
	Cause     error
}

func (e *DatabaseError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("database error during %s: %v", e.Operation, e.Cause)
	}
	return fmt.Sprintf("database error during %s", e.Operation)
}

func (e *DatabaseError) Unwrap() error {
	return ErrDatabase
}

// MigrationError represents a schema change operation that failed to apply.
// The ledger record for the named migration is withheld, so the operation is
// retried on the next startup.
type MigrationError struct {
	Name  string
	Cause error
}

func (e *MigrationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("migration %s failed: %v", e.Name, e.Cause)
	}
	return fmt.Sprintf("migration %s failed", e.Name)
}

func (e *MigrationError) Unwrap() error {
	return ErrMigration
}

// LedgerError represents a failure to bootstrap or consult the migration
// ledger. Nothing else can proceed when this happens.
type LedgerError struct {
	Operation string
	Cause     error
}

func (e *LedgerError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("migration ledger error during %s: %v", e.Operation, e.Cause)
	}
	return fmt.Sprintf("migration ledger error during %s", e.Operation)
}

func (e *LedgerError) Unwrap() error {
	return ErrLedger
}

// Error wrapping functions

// WrapValidationError wraps an error as a validation error
func WrapValidationError(field, message string) error {
	return &ValidationError{
		Field:   field,
		Message: message,
	}
}

// WrapDatabaseError wraps an error as a database error
func WrapDatabaseError(operation string, cause error) error {
	return &DatabaseError{
		Operation: operation,
		Cause:     cause,
	}
}

// WrapMigrationError wraps an error as a migration error
func WrapMigrationError(name string, cause error) error {
	return &MigrationError{
		Name:  name,
		Cause: cause,
	}
}

// WrapLedgerError wraps an error as a ledger error
func WrapLedgerError(operation string, cause error) error {
	return &LedgerError{
		Operation: operation,
		Cause:     cause,
	}
}

// Error checking functions

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	return errors.Is(err, ErrValidation)
}

// IsDatabaseError checks if an error is a database error
func IsDatabaseError(err error) bool {
	return errors.Is(err, ErrDatabase)
}

// IsMigrationError checks if an error is a migration error
func IsMigrationError(err error) bool {
	return errors.Is(err, ErrMigration)
}

// IsLedgerError checks if an error is a ledger error
func IsLedgerError(err error) bool {
	return errors.Is(err, ErrLedger)
}
