package nmea

import "errors"

// Decode failures wrap one of these sentinel values so callers can match
// with errors.Is regardless of the per-field context added around them.
var (
	// ErrTypeNotUnderstood is returned when a sentence prefix matches no
	// known sentence type.
	ErrTypeNotUnderstood = errors.New("nmea: sentence type not understood")

	// ErrInsufficientFields is returned when a sentence carries fewer
	// fields than its type's minimum.
	ErrInsufficientFields = errors.New("nmea: insufficient fields")

	// ErrMalformedField is returned when a field is present but not
	// parsable per its expected format.
	ErrMalformedField = errors.New("nmea: malformed field")
)
