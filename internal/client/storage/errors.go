package storage

import "errors"

// Common client storage errors
var (
	// ErrPreferenceNotFound indicates that the preference was never saved
	ErrPreferenceNotFound = errors.New("preference not found")

	// ErrStorageClosed indicates that storage is closed
	ErrStorageClosed = errors.New("storage is closed")
)
