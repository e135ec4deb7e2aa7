package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// AlreadyExistsError represents an error when an entity already exists
type AlreadyExistsError struct {
	Entity  string
	Context string
}

func (e *AlreadyExistsError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s already exists %s", e.Entity, e.Context)
	}
	return fmt.Sprintf("%s already exists", e.Entity)
}

// Is enables errors.Is() comparison for AlreadyExistsError
func (e *AlreadyExistsError) Is(target error) bool {
	t, ok := target.(*AlreadyExistsError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// PastDateError rejects an operation touching a calendar day that is already
// over. Assignments dated before today are read-only.
type PastDateError struct {
	Message string
}

func (e *PastDateError) Error() string {
	return e.Message
}

// Is enables errors.Is() comparison for PastDateError
func (e *PastDateError) Is(target error) bool {
	_, ok := target.(*PastDateError)
	return ok
}

// Entity Not Found Errors
var (
	ErrMissionNotFound       = &NotFoundError{Entity: "mission"}
	ErrAssignmentNotFound    = &NotFoundError{Entity: "assignment"}
	ErrTeamLeaderNotFound    = &NotFoundError{Entity: "team leader"}
	ErrClientNotFound        = &NotFoundError{Entity: "client"}
	ErrOrderNotFound         = &NotFoundError{Entity: "order"}
	ErrMissionTypeNotFound   = &NotFoundError{Entity: "mission type"}
	ErrMissionStatusNotFound = &NotFoundError{Entity: "mission status"}
	ErrOrderTypeNotFound     = &NotFoundError{Entity: "order type"}
	ErrOrderStatusNotFound   = &NotFoundError{Entity: "order status"}
	ErrSettingNotFound       = &NotFoundError{Entity: "setting"}
	ErrAddressNotFound       = &NotFoundError{Entity: "address"}
)

// Already Exists Errors
var (
	ErrSettingExists       = &AlreadyExistsError{Entity: "setting", Context: "with this key"}
	ErrMissionStatusExists = &AlreadyExistsError{Entity: "mission status", Context: "with this name"}
)

// Business Logic Errors
var (
	ErrPastDay          = &PastDateError{Message: "cannot assign or unassign a day in the past"}
	ErrRangeIntoPast    = &PastDateError{Message: "cannot move the mission start into the past"}
	ErrInvalidDateRange = errors.New("date_to must not be before date_from")
	ErrNotATeamLeader   = errors.New("user does not hold the team leader role")
	ErrMissionArchived  = errors.New("mission is archived")
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsAlreadyExists checks if an error is an AlreadyExistsError
func IsAlreadyExists(err error) bool {
	var existsErr *AlreadyExistsError
	return errors.As(err, &existsErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsPastDate checks if an error is a PastDateError
func IsPastDate(err error) bool {
	var pastErr *PastDateError
	return errors.As(err, &pastErr)
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}
