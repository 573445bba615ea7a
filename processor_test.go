package swift

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestProcessor_DecodeBatch(t *testing.T) {
	raws := make([]string, 50)
	for i := range raws {
		raws[i] = fmt.Sprintf(
			"{1:F01BANKBEBBAXXX1234%06d}{4:\r\n:20:REF%d\r\n-}", i, i)
	}

	p := NewProcessor(WithWorkers(8), WithLogger(discardLogger()))
	results, err := p.DecodeBatch(context.Background(), raws)

	require.NoError(t, err)
	require.Len(t, results, 50)
	for i, r := range results {
		require.NoError(t, r.Err)
		assert.Equal(t, i, r.Index)
		assert.Equal(t, fmt.Sprintf("REF%d", i), r.Message.Block4.TagValue("20"))
	}
}

func TestProcessor_DecodeBatch_PerMessageErrors(t *testing.T) {
	raws := []string{
		"{1:F01BANKBEBBAXXX1234567890}",
		"{1:BAD}",
		"",
	}

	p := NewProcessor(WithLogger(discardLogger()))
	results, err := p.DecodeBatch(context.Background(), raws)

	require.NoError(t, err)
	require.Len(t, results, 3)
	assert.NoError(t, results[0].Err)
	assert.ErrorIs(t, results[1].Err, ErrMalformedHeader)
	assert.ErrorIs(t, results[2].Err, ErrEmptyMessage)
}

func TestProcessor_DecodeBatch_Lenient(t *testing.T) {
	p := NewProcessor(WithLenientDecoding(), WithLogger(discardLogger()))
	results, err := p.DecodeBatch(context.Background(), []string{"{1:BAD}"})

	require.NoError(t, err)
	require.NoError(t, results[0].Err)
	assert.Equal(t, "B", results[0].Message.Block1.ApplicationID)
}

func TestProcessor_DecodeBatch_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	p := NewProcessor(WithLogger(discardLogger()))
	_, err := p.DecodeBatch(ctx, []string{"{1:F01BANKBEBBAXXX1234567890}"})

	assert.ErrorIs(t, err, context.Canceled)
}

func TestProcessor_EncodeBatch(t *testing.T) {
	msgs := []*Message{
		NewMessageBuilder().Tag("20", "A").MustBuild(),
		NewMessageBuilder().Tag("20", "B").MustBuild(),
	}

	p := NewProcessor(WithWorkers(2))
	out, err := p.EncodeBatch(context.Background(), msgs)

	require.NoError(t, err)
	assert.Equal(t, []string{
		"{4:\r\n:20:A\r\n-}",
		"{4:\r\n:20:B\r\n-}",
	}, out)
}

func TestProcessor_OptionsIgnoreInvalidWorkerCount(t *testing.T) {
	p := NewProcessor(WithWorkers(0))
	assert.Equal(t, 4, p.workers)
}
