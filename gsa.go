package nmea

// gsaMinFields counts the prefix, selection mode, fix type, twelve
// satellite slots and the three dilution values.
const gsaMinFields = 18

// decodeGSA decodes an active-satellites sentence.
//
//	0:     talker and type
//	1:     selection mode (A/M)
//	2:     fix type (1/2/3)
//	3..14: satellite PRNs used for the fix, unused slots empty
//	15:    PDOP
//	16:    HDOP
//	17:    VDOP
func decodeGSA(fields []string) (Message, error) {
	if len(fields) < gsaMinFields {
		return nil, insufficient("gsa", len(fields), gsaMinFields)
	}

	var rec GSA
	var err error

	if rec.SelectionMode, err = letterField("selection mode", fields[1], "AM"); err != nil {
		return nil, err
	}
	if rec.FixType, err = intField("fix type", fields[2]); err != nil {
		return nil, err
	}
	for i := 0; i < GSASatelliteSlots; i++ {
		f := fields[3+i]
		if f == "" {
			continue // unused slot stays 0
		}
		if rec.SatelliteIDs[i], err = intField("satellite id", f); err != nil {
			return nil, err
		}
	}
	if f := fields[15]; f != "" {
		if rec.PDOP, err = floatField("pdop", f); err != nil {
			return nil, err
		}
	}
	if f := fields[16]; f != "" {
		if rec.HDOP, err = floatField("hdop", f); err != nil {
			return nil, err
		}
	}
	if f := fields[17]; f != "" {
		if rec.VDOP, err = floatField("vdop", f); err != nil {
			return nil, err
		}
	}
	return &rec, nil
}
