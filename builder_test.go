package swift

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMessageBuilder_FullMessage(t *testing.T) {
	m, err := NewMessageBuilder().
		BasicHeader(ApplicationIDFIN, ServiceIDFIN, "BANKBEBBAXXX", "1234", "567890").
		InputHeader("103", "BANKDEFFXXXX", PriorityUrgent).
		DeliveryMonitoring(WarningAndNotification).
		MUR("MUR2012111").
		STP().
		Tag("20", "REFERENCE").
		Tag("23B", "CRED").
		Tag("71A", "OUR").
		TrailerTag("CHK", "123456789ABC").
		Build()

	require.NoError(t, err)
	assert.Equal(t, "103", m.MessageType())
	assert.Equal(t, "MUR2012111", m.MUR())
	assert.True(t, m.IsSTP())
	assert.Equal(t, 3, m.Block4.Size())

	// Built messages decode back to themselves.
	again, err := Decode(m.Encode())
	require.NoError(t, err)
	assert.Equal(t, m, again)
}

func TestMessageBuilder_AccumulatesErrors(t *testing.T) {
	_, err := NewMessageBuilder().
		BasicHeader(ApplicationIDFIN, ServiceIDFIN, "SHORT", "1234", "567890").
		InputHeader("10", "BANKDEFFXXXX", "Q").
		Tag("X", "BAD").
		Build()

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMalformedHeader)
	assert.ErrorIs(t, err, ErrMalformedTagLine)
}

func TestMessageBuilder_DeliveryMonitoringRequiresInputHeader(t *testing.T) {
	_, err := NewMessageBuilder().
		DeliveryMonitoring(NonDeliveryWarning).
		Build()

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMalformedHeader)
}

func TestMessageBuilder_UETR(t *testing.T) {
	m, err := NewMessageBuilder().
		UETR("180f1e65-90e0-44d5-a49a-92b55eb3025f").
		Build()
	require.NoError(t, err)
	assert.Equal(t, "180f1e65-90e0-44d5-a49a-92b55eb3025f", m.UETR())

	_, err = NewMessageBuilder().UETR("nope").Build()
	assert.ErrorIs(t, err, ErrInvalidUETR)
}

func TestMessageBuilder_MustBuildPanicsOnError(t *testing.T) {
	assert.Panics(t, func() {
		NewMessageBuilder().Tag("X", "BAD").MustBuild()
	})

	assert.NotPanics(t, func() {
		NewMessageBuilder().Tag("20", "REF").MustBuild()
	})
}
