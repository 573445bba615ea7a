package swift

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Message is one FIN message: up to five blocks in wire order. Blocks
// 1 and 2 are decoded into their fixed-width structs; blocks 3, 4 and
// 5 stay as tag sequences, with field-level decomposition deferred to
// Field lookups on demand.
type Message struct {
	Block1 *Block1
	Block2 Block2
	Block3 *TagSequence
	Block4 *TagSequence
	Block5 *TagSequence
}

// Decode parses a raw FIN message. In the default strict mode any
// malformed header, unknown block, unterminated block or malformed
// tag line fails the whole decode; with WithLenient the same inputs
// produce a best-effort partial message and never an error (beyond an
// entirely empty input).
func Decode(raw string, opts ...DecodeOption) (*Message, error) {
	cfg := newDecodeConfig(opts...)

	if strings.TrimSpace(raw) == "" {
		return nil, ErrEmptyMessage
	}

	tokens, err := tokenize(raw, cfg.lenient)
	if err != nil {
		return nil, err
	}

	m := &Message{}
	for _, tok := range tokens {
		switch tok.number {
		case BlockBasicHeader:
			m.Block1, err = DecodeBlock1(tok.payload, cfg.lenient)
		case BlockApplicationHeader:
			m.Block2, err = DecodeBlock2(tok.payload, cfg.lenient)
		case BlockUserHeader:
			m.Block3, err = splitSubBlocks(tok.payload, tok.number, cfg.lenient)
		case BlockText:
			m.Block4, err = splitBlock4Tags(tok.payload, cfg.lenient)
		case BlockTrailer:
			m.Block5, err = splitSubBlocks(tok.payload, tok.number, cfg.lenient)
		}
		if err != nil {
			return nil, err
		}
	}

	return m, nil
}

// Encode serializes the message to its wire form: blocks in fixed
// order 1 through 5, each as "{N:payload}", empty blocks omitted. The
// text block opens on a fresh line, carries one ":name:value" line
// per tag and closes with the "-}" terminator.
func (m *Message) Encode() string {
	buf := builderPool.Get()
	defer builderPool.Put(buf)

	if !m.Block1.IsEmpty() {
		buf.WriteString("{1:")
		buf.WriteString(m.Block1.Value())
		buf.WriteByte('}')
	}
	if m.Block2 != nil && !m.Block2.IsEmpty() {
		buf.WriteString("{2:")
		buf.WriteString(m.Block2.Value())
		buf.WriteByte('}')
	}
	writeSubBlocks(buf, BlockUserHeader, m.Block3)
	if !m.Block4.IsEmpty() {
		buf.WriteString("{4:")
		for _, t := range m.Block4.Tags() {
			buf.WriteString(wireLineBreak)
			buf.WriteByte(':')
			buf.WriteString(t.Name)
			buf.WriteByte(':')
			buf.WriteString(t.Value)
		}
		buf.WriteString(wireLineBreak)
		buf.WriteString("-}")
	}
	writeSubBlocks(buf, BlockTrailer, m.Block5)

	return buf.String()
}

func writeSubBlocks(buf *strings.Builder, number int, seq *TagSequence) {
	if seq.IsEmpty() {
		return
	}
	fmt.Fprintf(buf, "{%d:", number)
	for _, t := range seq.Tags() {
		buf.WriteByte('{')
		buf.WriteString(t.Name)
		buf.WriteByte(':')
		buf.WriteString(t.Value)
		buf.WriteByte('}')
	}
	buf.WriteByte('}')
}

// String returns the wire form.
func (m *Message) String() string {
	return m.Encode()
}

// MessageType returns the 3-digit type from the application header,
// or "" when the message has none.
func (m *Message) MessageType() string {
	if m.Block2 == nil {
		return ""
	}
	return m.Block2.MessageType()
}

// IsInput reports whether the message carries an input application
// header, i.e. is bound to the network rather than received from it.
func (m *Message) IsInput() bool {
	return m.Block2 != nil && m.Block2.IsInput()
}

// IsOutput reports whether the message carries an output application
// header.
func (m *Message) IsOutput() bool {
	return m.Block2 != nil && !m.Block2.IsInput()
}

// IsServiceMessage reports whether the basic header carries the
// ACK/NAK service identifier.
func (m *Message) IsServiceMessage() bool {
	return m.Block1 != nil && m.Block1.ServiceID == ServiceIDACKNAK
}

// Sender returns the 12-character logical terminal address of the
// message sender. For input messages that is the basic header LT; for
// output messages it is embedded in the MIR.
func (m *Message) Sender() string {
	if out, ok := m.Block2.(*Block2Output); ok {
		return out.SenderAddress()
	}
	if m.Block1 != nil {
		return m.Block1.LogicalTerminal
	}
	return ""
}

// Receiver returns the 12-character logical terminal address of the
// message receiver. For input messages it is in the application
// header; for output messages it is the basic header LT.
func (m *Message) Receiver() string {
	if in, ok := m.Block2.(*Block2Input); ok {
		return in.ReceiverAddress
	}
	if m.Block1 != nil {
		return m.Block1.LogicalTerminal
	}
	return ""
}

// MUR returns the message user reference (user header tag 108), or ""
// when not set.
func (m *Message) MUR() string {
	if m.Block3.IsEmpty() {
		return ""
	}
	return m.Block3.TagValue(TagMUR)
}

// SetMUR sets the message user reference, replacing an existing one.
func (m *Message) SetMUR(mur string) {
	m.setUserHeaderTag(TagMUR, mur)
}

// GenerateMUR sets a fresh timestamp-based message user reference and
// returns it: yyMMddHHmmss plus a 4-digit sub-second fraction, 16
// characters filling the 16x field.
func (m *Message) GenerateMUR() string {
	now := time.Now().UTC()
	mur := now.Format(murTimeLayout) + fmt.Sprintf("%04d", now.Nanosecond()/100000)
	m.SetMUR(mur)
	return mur
}

// UETR returns the unique end-to-end transaction reference (user
// header tag 121), or "" when not set.
func (m *Message) UETR() string {
	if m.Block3.IsEmpty() {
		return ""
	}
	return m.Block3.TagValue(TagUETR)
}

// SetUETR sets the transaction reference after checking it parses as
// a UUID; a malformed reference fails with ErrInvalidUETR.
func (m *Message) SetUETR(uetr string) error {
	if _, err := uuid.Parse(uetr); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidUETR, uetr)
	}
	m.setUserHeaderTag(TagUETR, uetr)
	return nil
}

// GenerateUETR sets a fresh random transaction reference and returns
// it.
func (m *Message) GenerateUETR() string {
	uetr := uuid.NewString()
	m.setUserHeaderTag(TagUETR, uetr)
	return uetr
}

// IsSTP reports whether the user header carries the STP validation
// flag (tag 119).
func (m *Message) IsSTP() bool {
	return !m.Block3.IsEmpty() && m.Block3.TagValue(TagValidationFlag) == ValidationFlagSTP
}

// SetSTP marks the message as straight-through-processing.
func (m *Message) SetSTP() {
	m.setUserHeaderTag(TagValidationFlag, ValidationFlagSTP)
}

// setUserHeaderTag replaces the first occurrence of the tag in block
// 3, appending when absent. The user header is created on first use.
func (m *Message) setUserHeaderTag(name, value string) {
	if m.Block3 == nil {
		m.Block3 = &TagSequence{}
	}
	for i, t := range m.Block3.tags {
		if t.Name == name {
			m.Block3.tags[i].Value = value
			return
		}
	}
	m.Block3.Add(name, value)
}

// TextField materializes one text-block tag as a typed field using
// the registry's pattern triple. The first tag with the name wins;
// ok-style absence is reported via the error.
func (m *Message) TextField(name string, reg *Registry) (*Field, error) {
	if m.Block4.IsEmpty() {
		return nil, fmt.Errorf("field %s: %w", name, ErrFieldNotConfigured)
	}
	t, ok := m.Block4.FirstByName(name)
	if !ok {
		return nil, fmt.Errorf("field %s: %w", name, ErrFieldNotConfigured)
	}
	return NewField(t, reg)
}

// Clone creates a deep copy of the message.
func (m *Message) Clone() *Message {
	if m == nil {
		return nil
	}
	clone := &Message{Block1: m.Block1.Clone()}
	switch b2 := m.Block2.(type) {
	case *Block2Input:
		clone.Block2 = b2.Clone()
	case *Block2Output:
		clone.Block2 = b2.Clone()
	}
	if m.Block3 != nil {
		clone.Block3 = m.Block3.Clone()
	}
	if m.Block4 != nil {
		clone.Block4 = m.Block4.Clone()
	}
	if m.Block5 != nil {
		clone.Block5 = m.Block5.Clone()
	}
	return clone
}

// LogValue renders the message identity for structured logs without
// dumping the text block.
func (m *Message) LogValue() slog.Value {
	attrs := []slog.Attr{
		slog.String("type", m.MessageType()),
		slog.String("sender", m.Sender()),
		slog.String("receiver", m.Receiver()),
	}
	if uetr := m.UETR(); uetr != "" {
		attrs = append(attrs, slog.String("uetr", uetr))
	}
	return slog.GroupValue(attrs...)
}
