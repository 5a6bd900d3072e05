package nmea

import (
	"fmt"
	"strconv"
	"strings"
)

// splitFields tokenizes a sentence on commas. Index 0 is the talker and
// type prefix; consecutive delimiters yield empty fields rather than
// collapsed ones, so positions stay stable.
func splitFields(sentence string) []string {
	return strings.Split(sentence, ",")
}

func insufficient(kind string, have, want int) error {
	return fmt.Errorf("%s: %w: have %d, want at least %d", kind, ErrInsufficientFields, have, want)
}

func intField(name, s string) (int, error) {
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%s: %w: %q", name, ErrMalformedField, s)
	}
	return v, nil
}

func floatField(name, s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%s: %w: %q", name, ErrMalformedField, s)
	}
	return v, nil
}

// letterField validates a single-character field against a closed set of
// accepted letters.
func letterField(name, s, allowed string) (byte, error) {
	if len(s) != 1 || strings.IndexByte(allowed, s[0]) < 0 {
		return 0, fmt.Errorf("%s: %w: %q, want one of %q", name, ErrMalformedField, s, allowed)
	}
	return s[0], nil
}

// latLonField parses a coordinate value together with its hemisphere
// letter. The value keeps the wire encoding, fixed-point degrees and
// minutes; no conversion to decimal degrees happens here. Both fields
// empty means no position; a half-empty pair is malformed.
func latLonField(name, value, hemi, allowed string) (float64, byte, error) {
	if value == "" && hemi == "" {
		return 0, 0, nil
	}
	if value == "" || hemi == "" {
		return 0, 0, fmt.Errorf("%s: %w: value and hemisphere must both be present", name, ErrMalformedField)
	}
	v, err := floatField(name, value)
	if err != nil {
		return 0, 0, err
	}
	h, err := letterField(name+" hemisphere", hemi, allowed)
	if err != nil {
		return 0, 0, err
	}
	return v, h, nil
}

// timeField parses an hhmmss[.sss] UTC time of day field.
func timeField(name, s string) (Time, error) {
	intPart, fracPart := s, ""
	if dot := strings.IndexByte(s, '.'); dot >= 0 {
		intPart, fracPart = s[:dot], s[dot+1:]
	}
	if len(intPart) != 6 {
		return Time{}, fmt.Errorf("%s: %w: %q, want hhmmss", name, ErrMalformedField, s)
	}
	for i := 0; i < 6; i++ {
		if intPart[i] < '0' || intPart[i] > '9' {
			return Time{}, fmt.Errorf("%s: %w: %q, want hhmmss", name, ErrMalformedField, s)
		}
	}

	t := Time{
		Valid:  true,
		Hour:   int(intPart[0]-'0')*10 + int(intPart[1]-'0'),
		Minute: int(intPart[2]-'0')*10 + int(intPart[3]-'0'),
		Second: int(intPart[4]-'0')*10 + int(intPart[5]-'0'),
	}
	if fracPart != "" {
		if len(fracPart) > 3 {
			return Time{}, fmt.Errorf("%s: %w: %q, bad fractional seconds", name, ErrMalformedField, s)
		}
		// Scale one to three digits to milliseconds: ".5" is 500, ".50"
		// is 500.
		ms := 0
		for i := 0; i < len(fracPart); i++ {
			if fracPart[i] < '0' || fracPart[i] > '9' {
				return Time{}, fmt.Errorf("%s: %w: %q, bad fractional seconds", name, ErrMalformedField, s)
			}
			ms = ms*10 + int(fracPart[i]-'0')
		}
		for n := len(fracPart); n < 3; n++ {
			ms *= 10
		}
		t.Millisecond = ms
	}
	return t, nil
}
