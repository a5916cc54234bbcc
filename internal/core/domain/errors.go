package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidWindow    = errors.New("window_days must be between 1 and 366")
	ErrInvalidDateRange = errors.New("invalid date range")
)

// DataUnavailableError reports the log kinds that could not be read. Results
// for the remaining kinds are still valid.
type DataUnavailableError struct {
	Kinds []LogKind
	Err   error
}

func (e *DataUnavailableError) Error() string {
	names := make([]string, 0, len(e.Kinds))
	for _, k := range e.Kinds {
		names = append(names, string(k))
	}
	return fmt.Sprintf("data unavailable for %s: %v", strings.Join(names, ", "), e.Err)
}

func (e *DataUnavailableError) Unwrap() error { return e.Err }

func (e *DataUnavailableError) Affects(kind LogKind) bool {
	for _, k := range e.Kinds {
		if k == kind {
			return true
		}
	}
	return false
}

// InsufficientDataError means too few paired observations for a coefficient.
type InsufficientDataError struct {
	SampleSize int
	Required   int
}

func (e *InsufficientDataError) Error() string {
	return fmt.Sprintf("insufficient data: %d paired observations, need at least %d", e.SampleSize, e.Required)
}

type InvalidMetricError struct {
	Name string
}

func (e *InvalidMetricError) Error() string {
	return fmt.Sprintf("unknown metric %q", e.Name)
}
