package models

import "errors"

// Domain errors shared by the engine, the remote store client and the server.
var (
	// ErrValidation indicates bad local input; such requests never reach the store
	ErrValidation = errors.New("validation error")

	// ErrNotFound indicates that the store confirmed the todo does not exist
	ErrNotFound = errors.New("todo not found")

	// ErrRemoteUnavailable indicates a transport or server failure
	ErrRemoteUnavailable = errors.New("remote store unavailable")

	// ErrInvalidFilter indicates a filter value outside all/pending/completed
	ErrInvalidFilter = errors.New("invalid filter")

	// ErrInvalidStatus indicates a status value outside pending/completed
	ErrInvalidStatus = errors.New("invalid status")
)
