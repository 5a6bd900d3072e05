// Package nmea decodes NMEA 0183 navigation sentences into typed records.
//
// A sentence is classified by its six-character prefix ("$GPGGA" and so
// on), dispatched to the decoder for that type and returned as a record
// discriminated by the MessageType in its header. Supported types are
// GGA, GSA, GSV and VTG; everything else classifies as TypeUnknown and
// Parse reports ErrTypeNotUnderstood for it.
//
// Parse expects the bare sentence body. Reading lines from a receiver,
// enforcing the sentence length ceiling and validating and stripping the
// "*hh" checksum are the scan package's job.
package nmea
