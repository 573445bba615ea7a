package swift

// Block1 is the basic header block. Its value is fixed length and
// continuous with no field delimiters. An all-empty block encodes to
// "" and is omitted from the assembled message.
type Block1 struct {
	ApplicationID   string // 1 char, e.g. "F" for FIN
	ServiceID       string // 2 chars, e.g. "01" for FIN/GPA
	LogicalTerminal string // 12 chars, sender or receiver LT address
	SessionNumber   string // 4 digits
	SequenceNumber  string // 6 digits
}

// DecodeBlock1 parses the fixed length block 1 payload. An optional
// "1:" self-identification prefix is accepted and stripped.
//
// In strict mode the payload (after the prefix) must be exactly 25
// characters or the decode fails with ErrMalformedHeader. In lenient
// mode fixed-width fields are consumed left to right for as long as
// input remains; exhausted trailing fields stay empty and any excess
// tail is kept verbatim on the sequence number, never dropped.
func DecodeBlock1(value string, lenient bool) (*Block1, error) {
	payload := stripBlockPrefix(value, '1')

	if !lenient && len(payload) != block1Length {
		return nil, &HeaderError{Block: BlockBasicHeader, Value: value, Err: ErrMalformedHeader}
	}

	b := &Block1{}
	offset := 0

	b.ApplicationID = valuePart(payload, offset, lenApplicationID)
	offset += lenApplicationID

	b.ServiceID = valuePart(payload, offset, lenServiceID)
	offset += lenServiceID

	b.LogicalTerminal = valuePart(payload, offset, lenLogicalTerminal)
	offset += lenLogicalTerminal

	b.SessionNumber = valuePart(payload, offset, lenSessionNumber)
	offset += lenSessionNumber

	if lenient {
		// The last field keeps all remaining text.
		b.SequenceNumber = valueTail(payload, offset)
	} else {
		b.SequenceNumber = valuePart(payload, offset, lenSequenceNumber)
	}

	return b, nil
}

// IsEmpty reports whether all fields are unset.
func (b *Block1) IsEmpty() bool {
	return b == nil || (b.ApplicationID == "" && b.ServiceID == "" && b.LogicalTerminal == "" &&
		b.SessionNumber == "" && b.SequenceNumber == "")
}

// Value encodes the block as the concatenation of its fields in fixed
// order. An empty block encodes to "".
func (b *Block1) Value() string {
	if b.IsEmpty() {
		return ""
	}
	return b.ApplicationID + b.ServiceID + b.LogicalTerminal + b.SessionNumber + b.SequenceNumber
}

// BIC returns the 8-character institution code portion of the logical
// terminal address, or "" when the address is too short.
func (b *Block1) BIC() string {
	if len(b.LogicalTerminal) < 8 {
		return ""
	}
	return b.LogicalTerminal[:8]
}

// Clone creates a copy of the block.
func (b *Block1) Clone() *Block1 {
	if b == nil {
		return nil
	}
	clone := *b
	return &clone
}
