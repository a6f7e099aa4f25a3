package hrv

import "errors"

// ErrInsufficientData marks a window too short for feature extraction.
// Matrix construction filters these windows instead of failing.
var ErrInsufficientData = errors.New("window has insufficient samples")
