package nmea

// prefixLen is the fixed classification window: "$", the two-character
// talker ID and the three-character sentence type.
const prefixLen = 6

// typeTable maps sentence prefixes onto message types. Classification
// scans it in order; anything not listed here is TypeUnknown.
var typeTable = []struct {
	prefix string
	typ    MessageType
}{
	{"$GPGGA", TypeGGA},
	{"$GPGSA", TypeGSA},
	{"$GPGSV", TypeGSV},
	{"$GPVTG", TypeVTG},
}

// Classify reports the message type of a sentence from its fixed-width
// prefix alone. It never inspects the sentence body, so a sentence that
// classifies is not necessarily decodable.
func Classify(sentence string) MessageType {
	if len(sentence) < prefixLen {
		return TypeUnknown
	}
	head := sentence[:prefixLen]
	for _, e := range typeTable {
		if head == e.prefix {
			return e.typ
		}
	}
	return TypeUnknown
}

// Parse decodes a single sentence into its typed record. The sentence
// must be bare: no trailing CR/LF and no "*hh" checksum suffix (the scan
// package produces sentences in this shape). The input is never modified
// and may be reused by the caller afterwards.
//
// Sentences of unknown type return ErrTypeNotUnderstood without any
// decoder running. Known-type sentences return either a freshly allocated
// record whose MessageType matches the prefix, or an error wrapping
// ErrInsufficientFields or ErrMalformedField.
func Parse(sentence string) (Message, error) {
	typ := Classify(sentence)
	if typ == TypeUnknown {
		return nil, ErrTypeNotUnderstood
	}

	fields := splitFields(sentence)

	var msg Message
	var err error
	switch typ {
	case TypeGGA:
		msg, err = decodeGGA(fields)
	case TypeGSA:
		msg, err = decodeGSA(fields)
	case TypeGSV:
		msg, err = decodeGSV(fields)
	case TypeVTG:
		msg, err = decodeVTG(fields)
	}
	if err != nil {
		return nil, err
	}
	if msg == nil {
		// Decoders must produce a record or an error; reaching this is a
		// bug in this package, not bad input.
		panic("nmea: decoder for " + typ.String() + " returned no message and no error")
	}
	msg.setType(typ)
	return msg, nil
}
