package models

import (
	"fmt"
	"strings"
)

// Status is a persisted todo status. The set is closed.
type Status string

const (
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
)

// AllStatuses lists every persisted status in display order.
var AllStatuses = []Status{StatusPending, StatusCompleted}

// ParseStatus converts raw text into a Status.
// Returns ErrInvalidStatus for anything outside the closed set.
func ParseStatus(s string) (Status, error) {
	switch Status(strings.ToLower(strings.TrimSpace(s))) {
	case StatusPending:
		return StatusPending, nil
	case StatusCompleted:
		return StatusCompleted, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidStatus, s)
	}
}

// StatusFromCompleted maps a checkbox value to a status.
func StatusFromCompleted(completed bool) Status {
	if completed {
		return StatusCompleted
	}
	return StatusPending
}

// Valid reports whether s belongs to the closed status set.
func (s Status) Valid() bool {
	return s == StatusPending || s == StatusCompleted
}

func (s Status) String() string {
	return string(s)
}

// Filter is a view-level selector over statuses. Filters never reach the store.
type Filter string

const (
	FilterAll       Filter = "all"
	FilterPending   Filter = "pending"
	FilterCompleted Filter = "completed"
)

// AllFilters lists filters in tab order.
var AllFilters = []Filter{FilterAll, FilterPending, FilterCompleted}

// filterStatuses is the fixed filter -> included statuses table.
var filterStatuses = map[Filter][]Status{
	FilterAll:       {StatusPending, StatusCompleted},
	FilterPending:   {StatusPending},
	FilterCompleted: {StatusCompleted},
}

// ParseFilter converts raw text into a Filter.
// Empty input means FilterAll.
func ParseFilter(s string) (Filter, error) {
	raw := strings.ToLower(strings.TrimSpace(s))
	if raw == "" {
		return FilterAll, nil
	}
	f := Filter(raw)
	if _, ok := filterStatuses[f]; !ok {
		return "", fmt.Errorf("%w: %q", ErrInvalidFilter, s)
	}
	return f, nil
}

// Statuses returns the set of statuses included by the filter.
// The returned slice is a fresh copy.
func (f Filter) Statuses() ([]Status, error) {
	statuses, ok := filterStatuses[f]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidFilter, string(f))
	}
	out := make([]Status, len(statuses))
	copy(out, statuses)
	return out, nil
}

// Includes reports whether a todo with status s is visible under the filter.
func (f Filter) Includes(s Status) (bool, error) {
	statuses, ok := filterStatuses[f]
	if !ok {
		return false, fmt.Errorf("%w: %q", ErrInvalidFilter, string(f))
	}
	for _, st := range statuses {
		if st == s {
			return true, nil
		}
	}
	return false, nil
}

func (f Filter) String() string {
	return string(f)
}
