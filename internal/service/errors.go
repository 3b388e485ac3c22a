package service

import "errors"

// Common service errors
var (
	// ErrNotFound is returned when a resource is not found
	ErrNotFound = errors.New("resource not found")

	// ErrInvalidInput is returned when input validation fails
	ErrInvalidInput = errors.New("invalid input")

	// ErrConflict is returned when there's a conflict (e.g., duplicate)
	ErrConflict = errors.New("resource conflict")

	// ErrNothingToRecord is returned when a posted update carries neither
	// a note nor a stage change
	ErrNothingToRecord = errors.New("update must include a note or a stage change")

	// ErrSameStage is returned when a stage change targets the order's
	// current stage
	ErrSameStage = errors.New("order is already in the requested stage")

	// ErrInvalidStage is returned when an unknown stage value is provided
	ErrInvalidStage = errors.New("invalid pipeline stage")

	// ErrAlreadyConfirmed is returned when confirming a record that is
	// already an order
	ErrAlreadyConfirmed = errors.New("record is already a confirmed order")
)
