package dataset

import (
	"strings"

	"github.com/cwbudde/algo-hrv/hrv"
	"github.com/cwbudde/algo-hrv/rr"
)

// Numeric gender column values.
const (
	GenderMale    = 0
	GenderFemale  = 1
	GenderUnknown = -1
)

// Subject is one recording with its demographic metadata. The RR
// series is the raw detector output; the builder cleans it.
type Subject struct {
	ID     string
	Age    int
	Gender string
	RR     rr.Series
}

// Row is one labelled feature record with its subject metadata
// attached. Demographics are carried through from the Subject, never
// computed from the signal.
type Row struct {
	Subject   string
	Window    int // row index within the subject's matrix
	Features  hrv.Features
	Age       int
	GenderEnc int
	Label     int
}

// EncodeGender maps a free-form gender string onto its numeric column
// value. Strings starting with m or M encode to GenderMale, f or F to
// GenderFemale, anything else to GenderUnknown.
func EncodeGender(gender string) int {
	g := strings.TrimSpace(gender)
	if g == "" {
		return GenderUnknown
	}

	switch g[0] {
	case 'm', 'M':
		return GenderMale
	case 'f', 'F':
		return GenderFemale
	}

	return GenderUnknown
}
