package nmea

const (
	// gsvMinFields counts the prefix and the three message counters; the
	// satellite groups after them are optional.
	gsvMinFields = 4

	// gsvGroupFields is the width of one satellite group: PRN, elevation,
	// azimuth, SNR.
	gsvGroupFields = 4

	// gsvMaxSatellites caps the groups a single sentence may carry.
	gsvMaxSatellites = 4
)

// decodeGSV decodes a satellites-in-view sentence.
//
//	0: talker and type
//	1: total messages in this cycle
//	2: number of this message (1-based)
//	3: satellites in view
//	then up to four groups of {PRN, elevation, azimuth, SNR}
func decodeGSV(fields []string) (Message, error) {
	if len(fields) < gsvMinFields {
		return nil, insufficient("gsv", len(fields), gsvMinFields)
	}

	var rec GSV
	var err error

	if rec.TotalMessages, err = intField("total messages", fields[1]); err != nil {
		return nil, err
	}
	if rec.MessageNumber, err = intField("message number", fields[2]); err != nil {
		return nil, err
	}
	if rec.SatellitesInView, err = intField("satellites in view", fields[3]); err != nil {
		return nil, err
	}

	groups := (len(fields) - gsvMinFields) / gsvGroupFields
	if groups > gsvMaxSatellites {
		groups = gsvMaxSatellites
	}
	for g := 0; g < groups; g++ {
		base := gsvMinFields + g*gsvGroupFields
		if fields[base] == "" {
			// Some receivers pad the last message of a cycle with empty
			// groups instead of shortening it.
			continue
		}
		sat := GSVSatellite{Elevation: -1, Azimuth: -1, SNR: -1}
		if sat.ID, err = intField("satellite id", fields[base]); err != nil {
			return nil, err
		}
		if f := fields[base+1]; f != "" {
			if sat.Elevation, err = intField("elevation", f); err != nil {
				return nil, err
			}
		}
		if f := fields[base+2]; f != "" {
			if sat.Azimuth, err = intField("azimuth", f); err != nil {
				return nil, err
			}
		}
		if f := fields[base+3]; f != "" {
			if sat.SNR, err = intField("snr", f); err != nil {
				return nil, err
			}
		}
		rec.Satellites = append(rec.Satellites, sat)
	}
	return &rec, nil
}
