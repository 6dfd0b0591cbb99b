package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrNoCredential means no credential is configured for a source. The
	// pass aborts before any fetch.
	ErrNoCredential = errors.New("no credential configured")

	// ErrTokenRefresh means an OAuth refresh exchange failed. The pass
	// aborts without writes.
	ErrTokenRefresh = errors.New("token refresh failed")

	// ErrUpstreamStatus means an upstream API answered with a non-2xx
	// status. Fatal for the pass; earlier commits stand.
	ErrUpstreamStatus = errors.New("unexpected upstream status")
)

// NormalizationError marks a single record that could not be mapped into a
// TimelineRecord. Callers skip the record and continue with the batch.
type NormalizationError struct {
	Source Source
	Field  string
	Value  string
	Err    error
}

func (e *NormalizationError) Error() string {
	return fmt.Sprintf("normalize %s record: field %q value %q: %v", e.Source, e.Field, e.Value, e.Err)
}

func (e *NormalizationError) Unwrap() error { return e.Err }
