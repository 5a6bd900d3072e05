package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"strconv"
	"strings"

	nmea "github.com/tristanseifert/libnmea"
	"github.com/tristanseifert/libnmea/internal/config"
	"github.com/tristanseifert/libnmea/internal/pps"
	"github.com/tristanseifert/libnmea/scan"
)

// reporter renders decoded sentences to out and keeps the totals for the
// exit summary.
type reporter struct {
	out     io.Writer
	jsonOut bool
	only    map[nmea.MessageType]bool // nil means everything
	pulses  *pps.Watcher

	counts     map[nmea.MessageType]uint64
	unknown    uint64
	decodeErrs uint64
	lastErr    error

	writeFailed bool
}

func newReporter(out io.Writer, cfg config.OutputConfig, pulses *pps.Watcher) *reporter {
	r := &reporter{
		out:     out,
		jsonOut: cfg.Format == "json",
		pulses:  pulses,
		counts:  make(map[nmea.MessageType]uint64),
	}
	if len(cfg.Only) > 0 {
		r.only = make(map[nmea.MessageType]bool, len(cfg.Only))
		for _, name := range cfg.Only {
			r.only[nmea.TypeByName(name)] = true
		}
	}
	return r
}

// observe decodes one sentence, counts it and renders it if the filter
// lets it through.
func (r *reporter) observe(sentence string) {
	msg, err := nmea.Parse(sentence)
	switch {
	case errors.Is(err, nmea.ErrTypeNotUnderstood):
		r.unknown++
		return
	case err != nil:
		// Keep the last failure for the exit summary instead of logging
		// every corrupt sentence on a noisy line.
		r.decodeErrs++
		r.lastErr = err
		return
	}

	t := msg.MessageType()
	r.counts[t]++
	if r.only != nil && !r.only[t] {
		return
	}
	if r.writeFailed {
		return
	}
	if _, err := fmt.Fprintln(r.out, r.line(msg)); err != nil {
		r.writeFailed = true
		log.Printf("output write failed: %v", err)
	}
}

func (r *reporter) line(msg nmea.Message) string {
	if r.jsonOut {
		b, err := json.Marshal(r.view(msg))
		if err != nil {
			// Not reachable for these view types.
			return ""
		}
		return string(b)
	}

	text := formatText(msg)
	if r.pulses != nil {
		if p, ok := r.pulses.Last(); ok {
			text += fmt.Sprintf(" pps=%d", p.Seq)
		}
	}
	return text
}

func (r *reporter) logSummary(drops scan.Drops) {
	log.Printf("summary gga=%d gsa=%d gsv=%d vtg=%d unknown=%d decode_errors=%d framing_dropped=%d",
		r.counts[nmea.TypeGGA], r.counts[nmea.TypeGSA], r.counts[nmea.TypeGSV], r.counts[nmea.TypeVTG],
		r.unknown, r.decodeErrs, drops.Total())
	if drops.Total() > 0 {
		log.Printf("framing drops no_start=%d too_long=%d no_checksum=%d bad_checksum=%d",
			drops.NoStart, drops.TooLong, drops.NoChecksum, drops.BadChecksum)
	}
	if r.lastErr != nil {
		log.Printf("last decode error: %v", r.lastErr)
	}
	if r.pulses != nil {
		if p, ok := r.pulses.Last(); ok {
			log.Printf("pps pulses=%d", p.Seq)
		}
	}
}

func clock(t nmea.Time) string {
	return fmt.Sprintf("%02d:%02d:%02d.%03d", t.Hour, t.Minute, t.Second, t.Millisecond)
}

func formatText(msg nmea.Message) string {
	switch m := msg.(type) {
	case *nmea.GGA:
		return formatGGA(m)
	case *nmea.GSA:
		return formatGSA(m)
	case *nmea.GSV:
		return formatGSV(m)
	case *nmea.VTG:
		return formatVTG(m)
	default:
		return msg.MessageType().String()
	}
}

func formatGGA(g *nmea.GGA) string {
	var b strings.Builder
	b.WriteString("GGA")
	if g.Time.Valid {
		b.WriteString(" time=" + clock(g.Time))
	}
	if g.LatitudeHemisphere != 0 {
		fmt.Fprintf(&b, " lat=%.4f%c lon=%.4f%c", g.Latitude, g.LatitudeHemisphere, g.Longitude, g.LongitudeHemisphere)
	}
	fmt.Fprintf(&b, " fix=%d sats=%d", g.FixQuality, g.NumSatellites)
	if g.HDOP != 0 {
		fmt.Fprintf(&b, " hdop=%g", g.HDOP)
	}
	if g.HasAltitude {
		fmt.Fprintf(&b, " alt=%g", g.Altitude)
	}
	if g.HasGeoidSeparation {
		fmt.Fprintf(&b, " geoid=%g", g.GeoidSeparation)
	}
	return b.String()
}

func formatGSA(g *nmea.GSA) string {
	ids := make([]string, 0, nmea.GSASatelliteSlots)
	for _, id := range g.SatelliteIDs {
		if id != 0 {
			ids = append(ids, strconv.Itoa(id))
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "GSA mode=%c fix=%d used=[%s]", g.SelectionMode, g.FixType, strings.Join(ids, " "))
	if g.PDOP != 0 || g.HDOP != 0 || g.VDOP != 0 {
		fmt.Fprintf(&b, " pdop=%g hdop=%g vdop=%g", g.PDOP, g.HDOP, g.VDOP)
	}
	return b.String()
}

func formatGSV(g *nmea.GSV) string {
	var b strings.Builder
	fmt.Fprintf(&b, "GSV msg=%d/%d inview=%d", g.MessageNumber, g.TotalMessages, g.SatellitesInView)
	for _, sat := range g.Satellites {
		fmt.Fprintf(&b, " prn%02d", sat.ID)
		if sat.Elevation >= 0 {
			fmt.Fprintf(&b, " el=%d", sat.Elevation)
		}
		if sat.Azimuth >= 0 {
			fmt.Fprintf(&b, " az=%d", sat.Azimuth)
		}
		if sat.SNR >= 0 {
			fmt.Fprintf(&b, " snr=%d", sat.SNR)
		}
	}
	return b.String()
}

func formatVTG(v *nmea.VTG) string {
	var b strings.Builder
	b.WriteString("VTG")
	if v.HasTrueTrack {
		fmt.Fprintf(&b, " track=%g", v.TrueTrack)
	}
	if v.HasMagneticTrack {
		fmt.Fprintf(&b, " magtrack=%g", v.MagneticTrack)
	}
	if v.HasSpeedKnots {
		fmt.Fprintf(&b, " speed_kt=%g", v.SpeedKnots)
	}
	if v.HasSpeedKPH {
		fmt.Fprintf(&b, " speed_kmh=%g", v.SpeedKPH)
	}
	return b.String()
}

// recordJSON is the flat JSON view of any record; fields that do not
// apply to the sentence type, or were absent on the wire, are omitted.
type recordJSON struct {
	Type string  `json:"type"`
	Time *string `json:"time,omitempty"`

	LatRaw  *float64 `json:"lat_raw,omitempty"`
	LatHemi string   `json:"lat_hemi,omitempty"`
	LonRaw  *float64 `json:"lon_raw,omitempty"`
	LonHemi string   `json:"lon_hemi,omitempty"`

	FixQuality *int     `json:"fix_quality,omitempty"`
	Satellites *int     `json:"satellites,omitempty"`
	AltM       *float64 `json:"alt_m,omitempty"`
	GeoidM     *float64 `json:"geoid_m,omitempty"`

	SelectionMode string `json:"selection_mode,omitempty"`
	FixType       *int   `json:"fix_type,omitempty"`
	UsedIDs       []int  `json:"used_ids,omitempty"`

	PDOP *float64 `json:"pdop,omitempty"`
	HDOP *float64 `json:"hdop,omitempty"`
	VDOP *float64 `json:"vdop,omitempty"`

	TotalMessages    *int            `json:"total_messages,omitempty"`
	MessageNumber    *int            `json:"message_number,omitempty"`
	SatellitesInView *int            `json:"satellites_in_view,omitempty"`
	InView           []satelliteJSON `json:"in_view,omitempty"`

	TrackTrue *float64 `json:"track_true,omitempty"`
	TrackMag  *float64 `json:"track_mag,omitempty"`
	SpeedKt   *float64 `json:"speed_kt,omitempty"`
	SpeedKmh  *float64 `json:"speed_kmh,omitempty"`

	PPSSeq *uint64 `json:"pps_seq,omitempty"`
}

type satelliteJSON struct {
	PRN  int  `json:"prn"`
	Elev *int `json:"elev,omitempty"`
	Azim *int `json:"azim,omitempty"`
	SNR  *int `json:"snr,omitempty"`
}

func (r *reporter) view(msg nmea.Message) recordJSON {
	v := recordJSON{Type: msg.MessageType().String()}

	switch m := msg.(type) {
	case *nmea.GGA:
		if m.Time.Valid {
			s := clock(m.Time)
			v.Time = &s
		}
		if m.LatitudeHemisphere != 0 {
			lat, lon := m.Latitude, m.Longitude
			v.LatRaw, v.LatHemi = &lat, string(m.LatitudeHemisphere)
			v.LonRaw, v.LonHemi = &lon, string(m.LongitudeHemisphere)
		}
		q, n := m.FixQuality, m.NumSatellites
		v.FixQuality, v.Satellites = &q, &n
		if m.HDOP != 0 {
			h := m.HDOP
			v.HDOP = &h
		}
		if m.HasAltitude {
			a := m.Altitude
			v.AltM = &a
		}
		if m.HasGeoidSeparation {
			g := m.GeoidSeparation
			v.GeoidM = &g
		}

	case *nmea.GSA:
		v.SelectionMode = string(m.SelectionMode)
		ft := m.FixType
		v.FixType = &ft
		for _, id := range m.SatelliteIDs {
			if id != 0 {
				v.UsedIDs = append(v.UsedIDs, id)
			}
		}
		if m.PDOP != 0 {
			p := m.PDOP
			v.PDOP = &p
		}
		if m.HDOP != 0 {
			h := m.HDOP
			v.HDOP = &h
		}
		if m.VDOP != 0 {
			d := m.VDOP
			v.VDOP = &d
		}

	case *nmea.GSV:
		tm, mn, iv := m.TotalMessages, m.MessageNumber, m.SatellitesInView
		v.TotalMessages, v.MessageNumber, v.SatellitesInView = &tm, &mn, &iv
		for _, sat := range m.Satellites {
			s := satelliteJSON{PRN: sat.ID}
			if sat.Elevation >= 0 {
				e := sat.Elevation
				s.Elev = &e
			}
			if sat.Azimuth >= 0 {
				a := sat.Azimuth
				s.Azim = &a
			}
			if sat.SNR >= 0 {
				n := sat.SNR
				s.SNR = &n
			}
			v.InView = append(v.InView, s)
		}

	case *nmea.VTG:
		if m.HasTrueTrack {
			t := m.TrueTrack
			v.TrackTrue = &t
		}
		if m.HasMagneticTrack {
			t := m.MagneticTrack
			v.TrackMag = &t
		}
		if m.HasSpeedKnots {
			s := m.SpeedKnots
			v.SpeedKt = &s
		}
		if m.HasSpeedKPH {
			s := m.SpeedKPH
			v.SpeedKmh = &s
		}
	}

	if r.pulses != nil {
		if p, ok := r.pulses.Last(); ok {
			v.PPSSeq = &p.Seq
		}
	}
	return v
}
