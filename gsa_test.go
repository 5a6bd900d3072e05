package nmea

import (
	"errors"
	"reflect"
	"testing"
)

func TestDecodeGSA(t *testing.T) {
	msg, err := Parse("$GPGSA,A,3,04,05,,09,12,,,24,,,,,2.5,1.3,2.1")
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	got, ok := msg.(*GSA)
	if !ok {
		t.Fatalf("Parse() = %T, want *GSA", msg)
	}

	want := &GSA{
		Header:        Header{Type: TypeGSA},
		SelectionMode: 'A',
		FixType:       3,
		SatelliteIDs:  [GSASatelliteSlots]int{4, 5, 0, 9, 12, 0, 0, 24, 0, 0, 0, 0},
		PDOP:          2.5,
		HDOP:          1.3,
		VDOP:          2.1,
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Parse() = %+v, want %+v", got, want)
	}
}

func TestDecodeGSANoFix(t *testing.T) {
	msg, err := Parse("$GPGSA,A,1,,,,,,,,,,,,,99.99,99.99,99.99")
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	got := msg.(*GSA)

	if got.FixType != 1 {
		t.Errorf("FixType = %d, want 1", got.FixType)
	}
	if got.SatelliteIDs != [GSASatelliteSlots]int{} {
		t.Errorf("SatelliteIDs = %v, want all zero", got.SatelliteIDs)
	}
}

func TestDecodeGSAEmptyDilution(t *testing.T) {
	msg, err := Parse("$GPGSA,M,2,12,24,32,,,,,,,,,,,,")
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	got := msg.(*GSA)

	if got.SelectionMode != 'M' {
		t.Errorf("SelectionMode = %q, want 'M'", got.SelectionMode)
	}
	want := [GSASatelliteSlots]int{12, 24, 32}
	if got.SatelliteIDs != want {
		t.Errorf("SatelliteIDs = %v, want %v", got.SatelliteIDs, want)
	}
	if got.PDOP != 0 || got.HDOP != 0 || got.VDOP != 0 {
		t.Errorf("dilution = %v/%v/%v, want all zero for empty fields", got.PDOP, got.HDOP, got.VDOP)
	}
}

func TestDecodeGSAInsufficientFields(t *testing.T) {
	msg, err := Parse("$GPGSA,A,3,04,05")
	if !errors.Is(err, ErrInsufficientFields) {
		t.Fatalf("Parse() error = %v, want ErrInsufficientFields", err)
	}
	if msg != nil {
		t.Errorf("Parse() = %+v, want nil message", msg)
	}
}

func TestDecodeGSAMalformed(t *testing.T) {
	tests := []struct {
		name     string
		sentence string
	}{
		{"wrong selection mode", "$GPGSA,B,3,04,05,,09,12,,,24,,,,,2.5,1.3,2.1"},
		{"empty selection mode", "$GPGSA,,3,04,05,,09,12,,,24,,,,,2.5,1.3,2.1"},
		{"non-numeric fix type", "$GPGSA,A,x,04,05,,09,12,,,24,,,,,2.5,1.3,2.1"},
		{"empty fix type", "$GPGSA,A,,04,05,,09,12,,,24,,,,,2.5,1.3,2.1"},
		{"non-numeric satellite id", "$GPGSA,A,3,ab,05,,09,12,,,24,,,,,2.5,1.3,2.1"},
		{"non-numeric pdop", "$GPGSA,A,3,04,05,,09,12,,,24,,,,,x,1.3,2.1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg, err := Parse(tt.sentence)
			if !errors.Is(err, ErrMalformedField) {
				t.Fatalf("Parse() error = %v, want ErrMalformedField", err)
			}
			if msg != nil {
				t.Errorf("Parse() = %+v, want nil message", msg)
			}
		})
	}
}
