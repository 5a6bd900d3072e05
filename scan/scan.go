// Package scan extracts NMEA sentences from a byte stream.
//
// A Scanner splits its input into lines and keeps those with well-formed
// framing: a '$' start marker, the sentence length ceiling and a "*hh"
// checksum that matches the payload. Sentences come out with the
// checksum stripped, the shape nmea.Parse expects. The Scanner does not
// classify sentence types; any well-framed sentence passes through.
//
// Input that fails framing is counted per reason and skipped. Only a
// read error from the underlying stream ends a scan. The checksum
// requirement can be loosened with SetChecksumPolicy for receivers that
// omit the suffix on some output.
package scan

import (
	"bufio"
	"encoding/hex"
	"fmt"
	"io"
	"strings"
)

// MaxSentenceLen is the longest accepted sentence, measured from the '$'
// through the checksum. The wire ceiling is 82 characters; CR and LF are
// already gone by the time a line is measured.
const MaxSentenceLen = 80

// Checksum computes the NMEA checksum of a payload: XOR over the bytes
// between the '$' start marker and the '*' separator, both exclusive.
func Checksum(payload string) byte {
	var sum byte
	for i := 0; i < len(payload); i++ {
		sum ^= payload[i]
	}
	return sum
}

// Line rebuilds the on-wire form of a bare sentence: the "*hh" checksum
// and CRLF are appended.
func Line(sentence string) string {
	payload := strings.TrimPrefix(sentence, "$")
	return fmt.Sprintf("$%s*%02X\r\n", payload, Checksum(payload))
}

// ChecksumPolicy controls how a Scanner treats the "*hh" suffix.
type ChecksumPolicy int

const (
	// ChecksumRequire drops sentences whose checksum is missing or wrong.
	ChecksumRequire ChecksumPolicy = iota
	// ChecksumVerify checks the checksum when one is present but passes
	// unchecksummed sentences through.
	ChecksumVerify
	// ChecksumOff strips any checksum suffix without validating it.
	ChecksumOff
)

// PolicyByName maps the config spelling of a policy to its value. The
// second return is false for names it does not know.
func PolicyByName(name string) (ChecksumPolicy, bool) {
	switch name {
	case "require":
		return ChecksumRequire, true
	case "verify":
		return ChecksumVerify, true
	case "off":
		return ChecksumOff, true
	default:
		return ChecksumRequire, false
	}
}

// Drops counts input lines a Scanner discarded, by reason.
type Drops struct {
	NoStart     uint64 // line did not begin with '$'
	TooLong     uint64 // line exceeded MaxSentenceLen
	NoChecksum  uint64 // no '*' separator present
	BadChecksum uint64 // checksum unparsable or mismatched
}

// Total sums the drop counters.
func (d Drops) Total() uint64 {
	return d.NoStart + d.TooLong + d.NoChecksum + d.BadChecksum
}

// Scanner reads NMEA sentences from a stream. Like bufio.Scanner it is
// not safe for concurrent use.
type Scanner struct {
	in       *bufio.Scanner
	policy   ChecksumPolicy
	sentence string
	drops    Drops
	err      error
}

// NewScanner wraps r for sentence extraction. Checksums are required
// until SetChecksumPolicy says otherwise.
func NewScanner(r io.Reader) *Scanner {
	in := bufio.NewScanner(r)
	// Sentences are short, but receivers interleave other chatter on the
	// same port; allow headroom before a line counts as a read error.
	in.Buffer(make([]byte, 0, 256), 4096)
	return &Scanner{in: in}
}

// SetChecksumPolicy replaces the checksum policy. Call it before the
// first Scan.
func (s *Scanner) SetChecksumPolicy(p ChecksumPolicy) { s.policy = p }

// Scan advances to the next well-framed sentence. It returns false when
// the input is exhausted or a read error occurred; Err tells those apart.
func (s *Scanner) Scan() bool {
	for s.in.Scan() {
		line := strings.TrimSpace(s.in.Text())
		if line == "" {
			continue
		}
		if line[0] != '$' {
			s.drops.NoStart++
			continue
		}
		if len(line) > MaxSentenceLen {
			s.drops.TooLong++
			continue
		}
		star := strings.LastIndexByte(line, '*')
		if star < 0 {
			if s.policy == ChecksumRequire {
				s.drops.NoChecksum++
				continue
			}
			s.sentence = line
			return true
		}
		if s.policy != ChecksumOff {
			want, ok := parseChecksum(line[star+1:])
			if !ok || Checksum(line[1:star]) != want {
				s.drops.BadChecksum++
				continue
			}
		}
		s.sentence = line[:star]
		return true
	}
	s.err = s.in.Err()
	return false
}

// Sentence returns the current sentence, without its checksum suffix.
func (s *Scanner) Sentence() string { return s.sentence }

// Err returns the read error that ended the scan, nil on normal EOF.
func (s *Scanner) Err() error { return s.err }

// Drops returns the discard counters accumulated so far.
func (s *Scanner) Drops() Drops { return s.drops }

// parseChecksum reads the two hex digits after the '*'. Anything after
// them is ignored, some receivers append status characters there.
func parseChecksum(s string) (byte, bool) {
	s = strings.TrimSpace(s)
	if len(s) < 2 {
		return 0, false
	}
	b, err := hex.DecodeString(s[:2])
	if err != nil || len(b) != 1 {
		return 0, false
	}
	return b[0], true
}
