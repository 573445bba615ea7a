package swift

import (
	"errors"
	"fmt"
)

// MessageBuilder assembles a message fluently. Errors accumulate
// instead of failing fast, so a whole construction chain can be
// written without intermediate checks; Build reports everything that
// went wrong at once.
type MessageBuilder struct {
	msg  *Message
	errs []error
}

// NewMessageBuilder starts an empty message.
func NewMessageBuilder() *MessageBuilder {
	return &MessageBuilder{msg: &Message{}}
}

// BasicHeader sets block 1 from its parts. The logical terminal must
// be the full 12-character address.
func (b *MessageBuilder) BasicHeader(applicationID, serviceID, logicalTerminal, session, sequence string) *MessageBuilder {
	if len(logicalTerminal) != lenLogicalTerminal {
		b.errs = append(b.errs, fmt.Errorf("basic header: logical terminal %q: %w", logicalTerminal, ErrMalformedHeader))
	}
	b.msg.Block1 = &Block1{
		ApplicationID:   applicationID,
		ServiceID:       serviceID,
		LogicalTerminal: logicalTerminal,
		SessionNumber:   session,
		SequenceNumber:  sequence,
	}
	return b
}

// InputHeader sets block 2 as an input (sent) header.
func (b *MessageBuilder) InputHeader(messageType, receiver string, priority MessagePriority) *MessageBuilder {
	if len(messageType) != lenMessageType {
		b.errs = append(b.errs, fmt.Errorf("application header: message type %q: %w", messageType, ErrMalformedHeader))
	}
	if len(receiver) != lenReceiverAddress {
		b.errs = append(b.errs, fmt.Errorf("application header: receiver %q: %w", receiver, ErrMalformedHeader))
	}
	if priority != "" && !priority.Valid() {
		b.errs = append(b.errs, fmt.Errorf("application header: priority %q: %w", priority, ErrMalformedHeader))
	}
	b.msg.Block2 = &Block2Input{
		MsgType:         messageType,
		ReceiverAddress: receiver,
		Priority:        string(priority),
	}
	return b
}

// DeliveryMonitoring sets the optional monitoring digit on an input
// header; it is an error when no input header has been set yet.
func (b *MessageBuilder) DeliveryMonitoring(d DeliveryMonitoring) *MessageBuilder {
	in, ok := b.msg.Block2.(*Block2Input)
	if !ok {
		b.errs = append(b.errs, fmt.Errorf("delivery monitoring before input header: %w", ErrMalformedHeader))
		return b
	}
	if d < NonDeliveryWarning || d > WarningAndNotification {
		b.errs = append(b.errs, fmt.Errorf("delivery monitoring %d: %w", d, ErrMalformedHeader))
		return b
	}
	in.DeliveryMonitoring = fmt.Sprintf("%d", d)
	return b
}

// OutputHeader sets block 2 as an output (received) header.
func (b *MessageBuilder) OutputHeader(messageType, inputTime, mir, outputDate, outputTime string, priority MessagePriority) *MessageBuilder {
	if len(mir) != lenMIR {
		b.errs = append(b.errs, fmt.Errorf("application header: MIR %q: %w", mir, ErrMalformedHeader))
	}
	b.msg.Block2 = &Block2Output{
		MsgType:            messageType,
		SenderInputTime:    inputTime,
		MIR:                mir,
		ReceiverOutputDate: outputDate,
		ReceiverOutputTime: outputTime,
		Priority:           string(priority),
	}
	return b
}

// UserHeaderTag adds a tag to block 3.
func (b *MessageBuilder) UserHeaderTag(name, value string) *MessageBuilder {
	if !validTagName(name) {
		b.errs = append(b.errs, fmt.Errorf("user header tag %q: %w", name, ErrMalformedTagLine))
		return b
	}
	b.msg.setUserHeaderTag(name, value)
	return b
}

// MUR sets the message user reference.
func (b *MessageBuilder) MUR(mur string) *MessageBuilder {
	b.msg.SetMUR(mur)
	return b
}

// UETR sets the transaction reference, accumulating an error when it
// is not a well-formed UUID.
func (b *MessageBuilder) UETR(uetr string) *MessageBuilder {
	if err := b.msg.SetUETR(uetr); err != nil {
		b.errs = append(b.errs, err)
	}
	return b
}

// STP marks the message straight-through-processing.
func (b *MessageBuilder) STP() *MessageBuilder {
	b.msg.SetSTP()
	return b
}

// Tag appends a text-block tag. Tags keep their call order, which is
// their wire order.
func (b *MessageBuilder) Tag(name, value string) *MessageBuilder {
	if !validTagName(name) {
		b.errs = append(b.errs, fmt.Errorf("tag %q: %w", name, ErrMalformedTagLine))
		return b
	}
	if b.msg.Block4 == nil {
		b.msg.Block4 = &TagSequence{}
	}
	b.msg.Block4.Add(name, value)
	return b
}

// TrailerTag appends a tag to block 5.
func (b *MessageBuilder) TrailerTag(name, value string) *MessageBuilder {
	if !validTagName(name) {
		b.errs = append(b.errs, fmt.Errorf("trailer tag %q: %w", name, ErrMalformedTagLine))
		return b
	}
	if b.msg.Block5 == nil {
		b.msg.Block5 = &TagSequence{}
	}
	b.msg.Block5.Add(name, value)
	return b
}

// Build returns the assembled message, or every accumulated error
// joined when anything in the chain was invalid.
func (b *MessageBuilder) Build() (*Message, error) {
	if len(b.errs) > 0 {
		return nil, errors.Join(b.errs...)
	}
	return b.msg, nil
}

// MustBuild is Build for static construction, panicking on error.
func (b *MessageBuilder) MustBuild() *Message {
	m, err := b.Build()
	if err != nil {
		panic(err)
	}
	return m
}
