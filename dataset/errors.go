package dataset

import "errors"

var (
	// ErrNoSubjects is returned by Build when given no subjects at all.
	ErrNoSubjects = errors.New("dataset: no subjects")

	// ErrNoSamples is returned when an RR input contains no parseable
	// interval values.
	ErrNoSamples = errors.New("dataset: no rr samples")
)
