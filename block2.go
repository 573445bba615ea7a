package swift

import "strconv"

// Block2 is the application header block, which comes in two flavors:
// input (messages sent to the network) and output (messages received
// from it). Decoders return the concrete struct; the interface is
// what the assembler and callers that do not care about direction
// work against.
type Block2 interface {
	// Value encodes the block payload, without the {2:...} wrapper.
	Value() string
	// MessageType returns the 3-digit FIN message type.
	MessageType() string
	// IsInput reports whether this is an input (sent) header.
	IsInput() bool
	// IsEmpty reports whether all fields are unset.
	IsEmpty() bool
}

// Block2Input is the application header of a message being input to
// the network, i.e. a sent message. Delivery monitoring and
// obsolescence period are optional; absence is positional, not
// marked, so a 16-character payload simply carries none of the three
// optional trailing fields.
type Block2Input struct {
	MsgType            string // 3 digits
	ReceiverAddress    string // 12 chars, position 9 is X when no branch
	Priority           string // 1 char: S, U or N
	DeliveryMonitoring string // 1 digit: 1, 2 or 3; optional
	ObsolescencePeriod string // 3 digits; optional
}

// Strict mode accepts exactly the payload lengths that correspond to
// which optional trailing fields are present.
var validBlock2InputLengths = map[int]bool{16: true, 17: true, 18: true, 21: true}

const (
	block2OutputLenFull       = 47 // with trailing priority
	block2OutputLenNoPriority = 46
)

// DecodeBlock2Input parses an input application header payload such
// as "I100BANKDEFFXXXXU3003". An optional "2:" self-identification
// prefix is accepted and stripped.
//
// Strict mode requires the payload length to be one of 16, 17, 18 or
// 21 and the first character to be 'I' (case-insensitive); any
// mismatch fails with ErrMalformedHeader. Lenient mode consumes
// fixed-width slices left to right and leaves whatever the input
// cannot fill absent.
func DecodeBlock2Input(value string, lenient bool) (*Block2Input, error) {
	payload := stripBlockPrefix(value, '2')

	if !lenient {
		if !validBlock2InputLengths[len(payload)] {
			return nil, &HeaderError{Block: BlockApplicationHeader, Value: value, Err: ErrMalformedHeader}
		}
		if upperByte(payload[0]) != 'I' {
			return nil, &HeaderError{Block: BlockApplicationHeader, Value: value, Err: ErrMalformedHeader}
		}
	}

	b := &Block2Input{}
	offset := 1 // skip the input mark

	b.MsgType = valuePart(payload, offset, lenMessageType)
	offset += lenMessageType

	b.ReceiverAddress = valuePart(payload, offset, lenReceiverAddress)
	offset += lenReceiverAddress

	b.Priority = valuePart(payload, offset, lenMessagePriority)
	offset += lenMessagePriority

	b.DeliveryMonitoring = valuePart(payload, offset, lenDeliveryMonitoring)
	offset += lenDeliveryMonitoring

	if lenient {
		b.ObsolescencePeriod = valueTail(payload, offset)
	} else {
		b.ObsolescencePeriod = valuePart(payload, offset, lenObsolescencePeriod)
	}

	return b, nil
}

// MessageType returns the 3-digit FIN message type.
func (b *Block2Input) MessageType() string {
	return b.MsgType
}

// IsInput reports true: this header belongs to a sent message.
func (b *Block2Input) IsInput() bool {
	return true
}

// IsEmpty reports whether all fields are unset.
func (b *Block2Input) IsEmpty() bool {
	return b == nil || (b.MsgType == "" && b.ReceiverAddress == "" && b.Priority == "" &&
		b.DeliveryMonitoring == "" && b.ObsolescencePeriod == "")
}

// Value encodes the block as "I" followed by the present fields in
// fixed order. An empty block encodes to "".
func (b *Block2Input) Value() string {
	if b.IsEmpty() {
		return ""
	}
	return "I" + b.MsgType + b.ReceiverAddress + b.Priority + b.DeliveryMonitoring + b.ObsolescencePeriod
}

// MessagePriority returns the typed priority, with ok false when the
// field is absent or holds an unrecognized value.
func (b *Block2Input) MessagePriority() (MessagePriority, bool) {
	p := MessagePriority(b.Priority)
	return p, p.Valid()
}

// DeliveryMonitoringType returns the typed monitoring option, with ok
// false when the field is absent or holds an unrecognized value.
func (b *Block2Input) DeliveryMonitoringType() (DeliveryMonitoring, bool) {
	n, err := strconv.Atoi(b.DeliveryMonitoring)
	if err != nil || n < 1 || n > 3 {
		return 0, false
	}
	return DeliveryMonitoring(n), true
}

// Clone creates a copy of the block.
func (b *Block2Input) Clone() *Block2Input {
	if b == nil {
		return nil
	}
	clone := *b
	return &clone
}

// Block2Output is the application header of a message received from
// the network. It carries receive-side metadata the sender cannot
// supply: the sender's input time, the message input reference (MIR)
// and the receiver's output date and time.
type Block2Output struct {
	MsgType            string // 3 digits
	SenderInputTime    string // 4 digits, HHMM in the sender's time zone
	MIR                string // 28 chars: date + sender LT + session + sequence
	ReceiverOutputDate string // 6 digits, YYMMDD
	ReceiverOutputTime string // 4 digits, HHMM
	Priority           string // 1 char; optional
}

// DecodeBlock2Output parses an output application header payload. An
// optional "2:" prefix is accepted and stripped.
//
// Strict mode requires a payload length of 46 or 47 (the trailing
// priority is optional) and the first character to be 'O'
// (case-insensitive).
func DecodeBlock2Output(value string, lenient bool) (*Block2Output, error) {
	payload := stripBlockPrefix(value, '2')

	if !lenient {
		if len(payload) != block2OutputLenNoPriority && len(payload) != block2OutputLenFull {
			return nil, &HeaderError{Block: BlockApplicationHeader, Value: value, Err: ErrMalformedHeader}
		}
		if upperByte(payload[0]) != 'O' {
			return nil, &HeaderError{Block: BlockApplicationHeader, Value: value, Err: ErrMalformedHeader}
		}
	}

	b := &Block2Output{}
	offset := 1 // skip the output mark

	b.MsgType = valuePart(payload, offset, lenMessageType)
	offset += lenMessageType

	b.SenderInputTime = valuePart(payload, offset, lenSenderInputTime)
	offset += lenSenderInputTime

	b.MIR = valuePart(payload, offset, lenMIR)
	offset += lenMIR

	b.ReceiverOutputDate = valuePart(payload, offset, lenReceiverOutputDate)
	offset += lenReceiverOutputDate

	b.ReceiverOutputTime = valuePart(payload, offset, lenReceiverOutputTime)
	offset += lenReceiverOutputTime

	if lenient {
		b.Priority = valueTail(payload, offset)
	} else {
		b.Priority = valuePart(payload, offset, lenMessagePriority)
	}

	return b, nil
}

// MessageType returns the 3-digit FIN message type.
func (b *Block2Output) MessageType() string {
	return b.MsgType
}

// IsInput reports false: this header belongs to a received message.
func (b *Block2Output) IsInput() bool {
	return false
}

// IsEmpty reports whether all fields are unset.
func (b *Block2Output) IsEmpty() bool {
	return b == nil || (b.MsgType == "" && b.SenderInputTime == "" && b.MIR == "" &&
		b.ReceiverOutputDate == "" && b.ReceiverOutputTime == "" && b.Priority == "")
}

// Value encodes the block as "O" followed by the present fields in
// fixed order. An empty block encodes to "".
func (b *Block2Output) Value() string {
	if b.IsEmpty() {
		return ""
	}
	return "O" + b.MsgType + b.SenderInputTime + b.MIR + b.ReceiverOutputDate + b.ReceiverOutputTime + b.Priority
}

// SenderAddress returns the sender's 12-character LT address embedded
// in the MIR, or "" when the MIR is too short to contain it. The MIR
// is the authoritative receive-side datum, so the address is derived
// rather than stored.
func (b *Block2Output) SenderAddress() string {
	if len(b.MIR) < mirSenderAddressOffset+mirSenderAddressLength {
		return ""
	}
	return b.MIR[mirSenderAddressOffset : mirSenderAddressOffset+mirSenderAddressLength]
}

// MessagePriority returns the typed priority, with ok false when the
// field is absent or holds an unrecognized value.
func (b *Block2Output) MessagePriority() (MessagePriority, bool) {
	p := MessagePriority(b.Priority)
	return p, p.Valid()
}

// Clone creates a copy of the block.
func (b *Block2Output) Clone() *Block2Output {
	if b == nil {
		return nil
	}
	clone := *b
	return &clone
}

// DecodeBlock2 parses an application header payload, dispatching on
// the I/O direction marker after the optional "2:" prefix. In strict
// mode an unrecognized marker fails with ErrMalformedHeader; in
// lenient mode the payload decodes best-effort as an input header.
func DecodeBlock2(value string, lenient bool) (Block2, error) {
	payload := stripBlockPrefix(value, '2')
	if payload == "" {
		if lenient {
			return &Block2Input{}, nil
		}
		return nil, &HeaderError{Block: BlockApplicationHeader, Value: value, Err: ErrMalformedHeader}
	}

	switch upperByte(payload[0]) {
	case 'I':
		return DecodeBlock2Input(value, lenient)
	case 'O':
		return DecodeBlock2Output(value, lenient)
	}
	if lenient {
		return DecodeBlock2Input(value, true)
	}
	return nil, &HeaderError{Block: BlockApplicationHeader, Value: value, Err: ErrMalformedHeader}
}
