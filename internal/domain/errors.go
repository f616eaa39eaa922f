package domain

import "fmt"

// MalformedInputError reports a source table that could not be decoded or is
// missing a required column. It aborts the whole request; the caller is told
// which input failed and why. Never retried.
type MalformedInputError struct {
	Input  string
	Reason string
}

func (e *MalformedInputError) Error() string {
	return fmt.Sprintf("malformed input %q: %s", e.Input, e.Reason)
}

// AmbiguousPeriodDataError reports duplicate rows for the same item identity
// within one period that disagree on descriptive metadata. Only returned when
// the aggregator runs in strict-metadata mode; the default policy resolves
// the conflict by keeping the first-seen value.
type AmbiguousPeriodDataError struct {
	Identity string
	Field    string
}

func (e *AmbiguousPeriodDataError) Error() string {
	return fmt.Sprintf("conflicting %s for item %q within one period", e.Field, e.Identity)
}
