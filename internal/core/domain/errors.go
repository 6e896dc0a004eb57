package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrUnknownURI indicates a content URI the router does not recognise.
	ErrUnknownURI = errors.New("unknown URI")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInsertFailed indicates a write that produced no new row.
	ErrInsertFailed = errors.New("failed to insert row")

	// ErrNotFound indicates a requested item does not exist.
	ErrNotFound = errors.New("not found")
)
