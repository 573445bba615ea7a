package swift

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenize_FiveBlocks(t *testing.T) {
	raw := "{1:F01BANKBEBBAXXX1234567890}{2:I100BANKDEFFXXXXU3003}" +
		"{3:{108:MUR123}}{4:\r\n:20:REF1\r\n-}{5:{CHK:123456789ABC}}"

	tokens, err := tokenize(raw, false)

	require.NoError(t, err)
	require.Len(t, tokens, 5)
	assert.Equal(t, 1, tokens[0].number)
	assert.Equal(t, "F01BANKBEBBAXXX1234567890", tokens[0].payload)
	assert.Equal(t, 2, tokens[1].number)
	assert.Equal(t, 3, tokens[2].number)
	assert.Equal(t, "{108:MUR123}", tokens[2].payload)
	assert.Equal(t, 4, tokens[3].number)
	assert.Equal(t, "\r\n:20:REF1", tokens[3].payload)
	assert.Equal(t, 5, tokens[4].number)
}

func TestTokenize_MissingBlocksAreAbsent(t *testing.T) {
	tokens, err := tokenize("{1:F01BANKBEBBAXXX1234567890}{4:\n:20:REF1\n-}", false)

	require.NoError(t, err)
	require.Len(t, tokens, 2)
	assert.Equal(t, 1, tokens[0].number)
	assert.Equal(t, 4, tokens[1].number)
}

func TestTokenize_UnknownBlockNumber(t *testing.T) {
	raw := "{1:F01BANKBEBBAXXX1234567890}{7:XYZ}"

	_, err := tokenize(raw, false)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownBlock)

	var be *BlockError
	require.ErrorAs(t, err, &be)
	assert.Equal(t, 7, be.Block)

	// Lenient mode skips the unknown block and keeps the rest.
	tokens, err := tokenize(raw, true)
	require.NoError(t, err)
	require.Len(t, tokens, 1)
	assert.Equal(t, 1, tokens[0].number)
}

func TestTokenize_UnterminatedBlock(t *testing.T) {
	raw := "{1:F01BANKBEBBAXXX1234567890"

	_, err := tokenize(raw, false)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnterminatedBlock)

	tokens, err := tokenize(raw, true)
	require.NoError(t, err)
	require.Len(t, tokens, 1)
	assert.Equal(t, "F01BANKBEBBAXXX1234567890", tokens[0].payload)
}

func TestTokenize_UnterminatedTextBlock(t *testing.T) {
	raw := "{4:\n:20:REF1\n:70:NARRATIVE"

	_, err := tokenize(raw, false)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnterminatedBlock)

	tokens, err := tokenize(raw, true)
	require.NoError(t, err)
	require.Len(t, tokens, 1)
	assert.Equal(t, "\n:20:REF1\n:70:NARRATIVE", tokens[0].payload)
}

func TestTokenize_TextBlockValueWithBraces(t *testing.T) {
	// Brace characters inside text-block values must not confuse the
	// terminator scan.
	raw := "{4:\n:77E:{some}{literal}braces\n-}{5:{CHK:1}}"

	tokens, err := tokenize(raw, false)

	require.NoError(t, err)
	require.Len(t, tokens, 2)
	assert.Equal(t, "\n:77E:{some}{literal}braces", tokens[0].payload)
	assert.Equal(t, 5, tokens[1].number)
}

func TestTokenize_InterBlockNoiseIgnored(t *testing.T) {
	tokens, err := tokenize("\r\n{1:F01BANKBEBBAXXX1234567890}\r\n", false)

	require.NoError(t, err)
	require.Len(t, tokens, 1)
}

func TestSplitSubBlocks(t *testing.T) {
	seq, err := splitSubBlocks("{108:MUR2012111}{121:180f1e65-90e0-44d5-a49a-92b55eb3025f}", 3, false)

	require.NoError(t, err)
	require.Equal(t, 2, seq.Size())
	assert.Equal(t, "MUR2012111", seq.TagValue("108"))
	assert.Equal(t, "180f1e65-90e0-44d5-a49a-92b55eb3025f", seq.TagValue("121"))
}

func TestSplitSubBlocks_Unterminated(t *testing.T) {
	_, err := splitSubBlocks("{108:MUR2012111", 3, false)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnterminatedBlock)

	seq, err := splitSubBlocks("{108:MUR2012111", 3, true)
	require.NoError(t, err)
	assert.Equal(t, "MUR2012111", seq.TagValue("108"))
}

func TestSplitBlock4Tags_TwoTags(t *testing.T) {
	seq, err := splitBlock4Tags(":20:REF1\n:70:LINE1\nLINE2", false)

	require.NoError(t, err)
	require.Equal(t, 2, seq.Size())
	assert.Equal(t, "REF1", seq.TagValue("20"))
	assert.Equal(t, "LINE1\nLINE2", seq.TagValue("70"))
}

func TestSplitBlock4Tags_CRLF(t *testing.T) {
	seq, err := splitBlock4Tags("\r\n:20:REF1\r\n:71A:OUR", false)

	require.NoError(t, err)
	require.Equal(t, 2, seq.Size())
	assert.Equal(t, "REF1", seq.TagValue("20"))
	assert.Equal(t, "OUR", seq.TagValue("71A"))
}

func TestSplitBlock4Tags_DuplicateNamesKeepOrder(t *testing.T) {
	seq, err := splitBlock4Tags(":71F:EUR10\n:71F:EUR20", false)

	require.NoError(t, err)
	tags := seq.TagsByName("71F")
	require.Len(t, tags, 2)
	assert.Equal(t, "EUR10", tags[0].Value)
	assert.Equal(t, "EUR20", tags[1].Value)
}

func TestSplitBlock4Tags_MalformedTagLine(t *testing.T) {
	body := ":20:REF1\n:X:BAD"

	_, err := splitBlock4Tags(body, false)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMalformedTagLine)

	var te *TagLineError
	require.ErrorAs(t, err, &te)
	assert.Equal(t, ":X:BAD", te.Line)
}

func TestSplitBlock4Tags_LenientFoldsBadLineIntoValue(t *testing.T) {
	seq, err := splitBlock4Tags(":20:REF1\n:X:NOT A TAG\n:70:NARR", true)

	require.NoError(t, err)
	require.Equal(t, 2, seq.Size())
	assert.Equal(t, "REF1\n:X:NOT A TAG", seq.TagValue("20"))
	assert.Equal(t, "NARR", seq.TagValue("70"))
}

func TestSplitBlock4Tags_ColonInsideValueLine(t *testing.T) {
	// A continuation line may contain colons mid-line without starting
	// a new tag.
	seq, err := splitBlock4Tags(":70:RATIO 1:4\nMORE", false)

	require.NoError(t, err)
	require.Equal(t, 1, seq.Size())
	assert.Equal(t, "RATIO 1:4\nMORE", seq.TagValue("70"))
}

func TestSplitBlock4Tags_EmptyValue(t *testing.T) {
	seq, err := splitBlock4Tags(":20:", false)

	require.NoError(t, err)
	require.Equal(t, 1, seq.Size())
	tag, ok := seq.FirstByName("20")
	require.True(t, ok)
	assert.Equal(t, "", tag.Value)
}
