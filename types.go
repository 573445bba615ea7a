package swift

import "encoding/json"

// Block numbers as they appear on the wire.
const (
	BlockBasicHeader       = 1
	BlockApplicationHeader = 2
	BlockUserHeader        = 3
	BlockText              = 4
	BlockTrailer           = 5
)

// Fixed layout of the basic header (block 1):
// application id (1) + service id (2) + logical terminal (12) +
// session number (4) + sequence number (6).
const (
	block1Length           = 25
	lenApplicationID       = 1
	lenServiceID           = 2
	lenLogicalTerminal     = 12
	lenSessionNumber       = 4
	lenSequenceNumber      = 6
	lenMessageType         = 3
	lenReceiverAddress     = 12
	lenMessagePriority     = 1
	lenDeliveryMonitoring  = 1
	lenObsolescencePeriod  = 3
	lenSenderInputTime     = 4
	lenMIR                 = 28
	lenReceiverOutputDate  = 6
	lenReceiverOutputTime  = 4
	mirSenderAddressOffset = 6 // sender LT address starts after the 6-digit date
	mirSenderAddressLength = 12
)

// MessagePriority is the 1-character priority of an application header.
type MessagePriority string

const (
	PrioritySystem MessagePriority = "S"
	PriorityNormal MessagePriority = "N"
	PriorityUrgent MessagePriority = "U"
)

// Valid reports whether the priority is one of the three recognized
// values.
func (p MessagePriority) Valid() bool {
	switch p {
	case PrioritySystem, PriorityNormal, PriorityUrgent:
		return true
	}
	return false
}

// DeliveryMonitoring is the optional 1-digit delivery monitoring
// option of an input application header.
type DeliveryMonitoring int

const (
	NonDeliveryWarning     DeliveryMonitoring = 1
	DeliveryNotification   DeliveryMonitoring = 2
	WarningAndNotification DeliveryMonitoring = 3
)

// Label returns the human readable name of the monitoring option.
func (d DeliveryMonitoring) Label() string {
	switch d {
	case NonDeliveryWarning:
		return "Non-Delivery Warning"
	case DeliveryNotification:
		return "Delivery Notification"
	case WarningAndNotification:
		return "Non-Delivery Warning and Delivery Notification"
	}
	return ""
}

// PatternTriple is the declarative description of how a field's raw
// value maps to typed components. It is the contract field
// definitions plug into; the engine is generic over it.
//
// Parser drives component extraction order, one letter per component
// (e.g. "SN" = alpha prefix then numeric suffix). Components carries
// one type letter per component (e.g. "cN" = character then number,
// "L" = logical). Validator is the SWIFT structural grammar used only
// for validation, never for extraction (e.g. "1a5!n").
type PatternTriple struct {
	Parser     string `json:"parser"`
	Components string `json:"components"`
	Validator  string `json:"validator"`
}

// Component type letters used in PatternTriple.Components.
const (
	ComponentString    = 'S'
	ComponentCharacter = 'c'
	ComponentNumber    = 'N'
	ComponentLogical   = 'L'
)

// UnmarshalJSON accepts both the canonical lowercase keys and the
// capitalized spelling used by older registry files.
func (pt *PatternTriple) UnmarshalJSON(data []byte) error {
	type alias PatternTriple
	aux := &struct {
		ParserAlt     string `json:"Parser"`
		ComponentsAlt string `json:"Components"`
		ValidatorAlt  string `json:"Validator"`
		*alias
	}{alias: (*alias)(pt)}

	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	if pt.Parser == "" {
		pt.Parser = aux.ParserAlt
	}
	if pt.Components == "" {
		pt.Components = aux.ComponentsAlt
	}
	if pt.Validator == "" {
		pt.Validator = aux.ValidatorAlt
	}
	return nil
}

// isAlphanumeric reports whether b is an ASCII letter or digit.
func isAlphanumeric(b byte) bool {
	return (b >= '0' && b <= '9') || (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z')
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

// validTagName checks the tag name grammar: 2 or 3 alphanumeric
// characters optionally followed by a single uppercase letter option.
func validTagName(name string) bool {
	n := len(name)
	if n < 2 || n > 4 {
		return false
	}
	body := name
	if n == 4 {
		if name[3] < 'A' || name[3] > 'Z' {
			return false
		}
		body = name[:3]
	}
	for i := 0; i < len(body); i++ {
		if !isAlphanumeric(body[i]) {
			return false
		}
	}
	return true
}

// stripBlockPrefix removes an optional "N:" self-identification
// prefix from a header payload, e.g. "1:F01..." -> "F01...".
func stripBlockPrefix(value string, block byte) string {
	if len(value) >= 2 && value[0] == block && value[1] == ':' {
		return value[2:]
	}
	return value
}

// valuePart extracts a fixed-width slice starting at offset. It
// returns "" once the input is exhausted and clips the final part to
// the remaining length, which is what makes the lenient header decode
// ladder work: trailing fields simply come back absent.
func valuePart(value string, offset, length int) string {
	if offset >= len(value) {
		return ""
	}
	end := offset + length
	if end > len(value) {
		end = len(value)
	}
	return value[offset:end]
}

// valueTail returns everything from offset to the end of the input,
// used by lenient decodes where the last field keeps the tail
// verbatim instead of dropping it.
func valueTail(value string, offset int) string {
	if offset >= len(value) {
		return ""
	}
	return value[offset:]
}

// upperByte uppercases a single ASCII byte, for the case-insensitive
// I/O marker check in block 2.
func upperByte(b byte) byte {
	if b >= 'a' && b <= 'z' {
		return b - 'a' + 'A'
	}
	return b
}
