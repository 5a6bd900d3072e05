package nmea

// ggaMinFields counts the prefix plus every field through the geoid
// separation units. Receivers append DGPS age and station ID after that;
// those are ignored.
const ggaMinFields = 13

// decodeGGA decodes a fix data sentence.
//
//	0:  talker and type
//	1:  UTC time (hhmmss.sss)
//	2:  latitude (ddmm.mmmm)
//	3:  N/S
//	4:  longitude (dddmm.mmmm)
//	5:  E/W
//	6:  fix quality (0 = no fix)
//	7:  satellites in use
//	8:  HDOP
//	9:  altitude above mean sea level
//	10: altitude units (M)
//	11: geoid separation
//	12: separation units (M)
func decodeGGA(fields []string) (Message, error) {
	if len(fields) < ggaMinFields {
		return nil, insufficient("gga", len(fields), ggaMinFields)
	}

	var rec GGA
	var err error

	if f := fields[1]; f != "" {
		if rec.Time, err = timeField("time", f); err != nil {
			return nil, err
		}
	}
	rec.Latitude, rec.LatitudeHemisphere, err = latLonField("latitude", fields[2], fields[3], "NS")
	if err != nil {
		return nil, err
	}
	rec.Longitude, rec.LongitudeHemisphere, err = latLonField("longitude", fields[4], fields[5], "EW")
	if err != nil {
		return nil, err
	}
	if rec.FixQuality, err = intField("fix quality", fields[6]); err != nil {
		return nil, err
	}
	if rec.NumSatellites, err = intField("satellite count", fields[7]); err != nil {
		return nil, err
	}
	if f := fields[8]; f != "" {
		if rec.HDOP, err = floatField("hdop", f); err != nil {
			return nil, err
		}
	}
	if f := fields[9]; f != "" {
		if rec.Altitude, err = floatField("altitude", f); err != nil {
			return nil, err
		}
		rec.HasAltitude = true
	}
	if f := fields[10]; f != "" {
		if rec.AltitudeUnits, err = letterField("altitude units", f, "M"); err != nil {
			return nil, err
		}
	}
	if f := fields[11]; f != "" {
		if rec.GeoidSeparation, err = floatField("geoid separation", f); err != nil {
			return nil, err
		}
		rec.HasGeoidSeparation = true
	}
	if f := fields[12]; f != "" {
		if rec.SeparationUnits, err = letterField("separation units", f, "M"); err != nil {
			return nil, err
		}
	}
	return &rec, nil
}
