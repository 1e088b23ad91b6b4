package storage

import "errors"

// Common storage errors
var (
	// ErrTodoNotFound indicates that todo was not found in storage
	ErrTodoNotFound = errors.New("todo not found")
)
