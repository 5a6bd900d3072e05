package nmea

// MessageType identifies which concrete record a Message is.
type MessageType uint8

const (
	// TypeUnknown tags sentences whose prefix matched no table entry.
	// It is the zero value, so a Header is "unknown" until stamped.
	TypeUnknown MessageType = iota
	TypeGGA
	TypeGSA
	TypeGSV
	TypeVTG
)

func (t MessageType) String() string {
	switch t {
	case TypeGGA:
		return "GGA"
	case TypeGSA:
		return "GSA"
	case TypeGSV:
		return "GSV"
	case TypeVTG:
		return "VTG"
	default:
		return "unknown"
	}
}

// TypeByName maps a bare sentence type name ("GGA") onto its
// MessageType. Unrecognized names map to TypeUnknown.
func TypeByName(name string) MessageType {
	switch name {
	case "GGA":
		return TypeGGA
	case "GSA":
		return TypeGSA
	case "GSV":
		return TypeGSV
	case "VTG":
		return TypeVTG
	default:
		return TypeUnknown
	}
}

// Header is the discriminant every decoded record starts with. Parse
// stamps Type after the type's decoder succeeds, so a record's tag always
// names the concrete type carrying it.
type Header struct {
	Type MessageType
}

func (h *Header) MessageType() MessageType { return h.Type }

// setType keeps the record set closed to this package: only types that
// embed Header can satisfy Message.
func (h *Header) setType(t MessageType) { h.Type = t }

// Message is a decoded NMEA record. Switch on the concrete type, or on
// MessageType, to get at the per-sentence fields:
//
//	switch m := msg.(type) {
//	case *nmea.GGA:
//		...
//	case *nmea.VTG:
//		...
//	}
type Message interface {
	MessageType() MessageType

	setType(MessageType)
}

// Time is a UTC time of day as carried on the wire (hhmmss.sss). Valid is
// false when the sentence omitted the field.
type Time struct {
	Valid       bool
	Hour        int
	Minute      int
	Second      int
	Millisecond int
}

// GGA is a fix data record: time, position and fix-related data.
type GGA struct {
	Header

	// Time is the UTC time the fix was taken.
	Time Time

	// Latitude and Longitude are carried exactly as transmitted, as
	// fixed-point degrees and minutes (ddmm.mmmm and dddmm.mmmm). The
	// hemisphere bytes are 'N'/'S' and 'E'/'W', or 0 when the sentence
	// carries no position.
	Latitude            float64
	LatitudeHemisphere  byte
	Longitude           float64
	LongitudeHemisphere byte

	// FixQuality is the quality indicator (0 means no fix).
	FixQuality int

	// NumSatellites is the number of satellites used for the fix.
	NumSatellites int

	// HDOP is the horizontal dilution of precision, 0 when not reported.
	HDOP float64

	// Altitude is the antenna altitude above mean sea level. HasAltitude
	// distinguishes a reported 0.0 from an empty field; AltitudeUnits is
	// the unit letter ('M'), 0 when its field is empty.
	Altitude      float64
	HasAltitude   bool
	AltitudeUnits byte

	// GeoidSeparation follows the same convention as Altitude.
	GeoidSeparation    float64
	HasGeoidSeparation bool
	SeparationUnits    byte
}

// GSASatelliteSlots is the fixed satellite slot count of a GSA sentence.
const GSASatelliteSlots = 12

// GSA is an active-satellites record: fix mode, the satellites used for
// the fix and dilution of precision values.
type GSA struct {
	Header

	// SelectionMode is 'A' (automatic 2D/3D selection) or 'M' (manual).
	SelectionMode byte

	// FixType is 1 (no fix), 2 (2D) or 3 (3D).
	FixType int

	// SatelliteIDs holds the PRNs of the satellites used for the fix.
	// Unused slots are 0.
	SatelliteIDs [GSASatelliteSlots]int

	// Dilution of precision values, 0 when not reported.
	PDOP float64
	HDOP float64
	VDOP float64
}

// GSVSatellite describes one satellite in view within a GSV sentence.
type GSVSatellite struct {
	// ID is the satellite PRN.
	ID int

	// Elevation (degrees), Azimuth (degrees true) and SNR (dB) are -1
	// when the receiver reports no value for them.
	Elevation int
	Azimuth   int
	SNR       int
}

// GSV is a satellites-in-view record. A receiver spreads the full
// constellation over TotalMessages sentences, at most four satellites per
// sentence.
type GSV struct {
	Header

	TotalMessages    int
	MessageNumber    int
	SatellitesInView int

	// Satellites lists the satellites detailed in this sentence.
	Satellites []GSVSatellite
}

// VTG is a track and ground speed record. Track and speed values are
// paired with Has flags because 0.0 is a legal value for all of them; the
// reference and unit bytes are 0 when their field is empty.
type VTG struct {
	Header

	TrueTrack    float64
	HasTrueTrack bool
	TrueTrackRef byte // 'T'

	MagneticTrack    float64
	HasMagneticTrack bool
	MagneticTrackRef byte // 'M'

	SpeedKnots      float64
	HasSpeedKnots   bool
	SpeedKnotsUnits byte // 'N'

	SpeedKPH      float64
	HasSpeedKPH   bool
	SpeedKPHUnits byte // 'K'
}
