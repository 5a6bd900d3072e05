package nmea

// vtgMinFields counts the prefix and the four value/reference pairs.
const vtgMinFields = 9

// decodeVTG decodes a track and ground speed sentence.
//
//	0: talker and type
//	1: track, degrees true
//	2: T
//	3: track, degrees magnetic
//	4: M
//	5: speed over ground, knots
//	6: N
//	7: speed over ground, km/h
//	8: K
//
// Receivers emit the reference letters even when the value next to them
// is empty, so each half of a pair is parsed on its own.
func decodeVTG(fields []string) (Message, error) {
	if len(fields) < vtgMinFields {
		return nil, insufficient("vtg", len(fields), vtgMinFields)
	}

	var rec VTG
	var err error

	if f := fields[1]; f != "" {
		if rec.TrueTrack, err = floatField("true track", f); err != nil {
			return nil, err
		}
		rec.HasTrueTrack = true
	}
	if f := fields[2]; f != "" {
		if rec.TrueTrackRef, err = letterField("true track reference", f, "T"); err != nil {
			return nil, err
		}
	}
	if f := fields[3]; f != "" {
		if rec.MagneticTrack, err = floatField("magnetic track", f); err != nil {
			return nil, err
		}
		rec.HasMagneticTrack = true
	}
	if f := fields[4]; f != "" {
		if rec.MagneticTrackRef, err = letterField("magnetic track reference", f, "M"); err != nil {
			return nil, err
		}
	}
	if f := fields[5]; f != "" {
		if rec.SpeedKnots, err = floatField("speed in knots", f); err != nil {
			return nil, err
		}
		rec.HasSpeedKnots = true
	}
	if f := fields[6]; f != "" {
		if rec.SpeedKnotsUnits, err = letterField("knots units", f, "N"); err != nil {
			return nil, err
		}
	}
	if f := fields[7]; f != "" {
		if rec.SpeedKPH, err = floatField("speed in km/h", f); err != nil {
			return nil, err
		}
		rec.HasSpeedKPH = true
	}
	if f := fields[8]; f != "" {
		if rec.SpeedKPHUnits, err = letterField("km/h units", f, "K"); err != nil {
			return nil, err
		}
	}
	return &rec, nil
}
