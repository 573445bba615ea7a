package swift

import "fmt"

var (
	ErrMalformedHeader   = fmt.Errorf("malformed header")
	ErrUnknownBlock      = fmt.Errorf("unknown block number")
	ErrUnterminatedBlock = fmt.Errorf("unterminated block")
	ErrMalformedTagLine  = fmt.Errorf("malformed tag line")
	ErrInvalidPattern    = fmt.Errorf("invalid validator pattern")
	ErrEmptyMessage      = fmt.Errorf("empty message")

	ErrFieldNotConfigured = fmt.Errorf("field not configured")
	ErrInvalidComponent   = fmt.Errorf("invalid component")
	ErrInvalidUETR        = fmt.Errorf("invalid UETR")
)

// HeaderError reports a header block (1 or 2) that violates the
// fixed-width layout in strict mode. It wraps ErrMalformedHeader.
type HeaderError struct {
	Block int    // 1 or 2
	Value string // the offending raw payload
	Err   error
}

func (he *HeaderError) Error() string {
	return fmt.Sprintf("block %d: %v: %q", he.Block, he.Err, he.Value)
}

func (he *HeaderError) Unwrap() error {
	return he.Err
}

// BlockError reports a structural fault found while tokenizing one of
// the five message blocks.
type BlockError struct {
	Block int
	Err   error
}

func (be *BlockError) Error() string {
	return fmt.Sprintf("block %d: %v", be.Block, be.Err)
}

func (be *BlockError) Unwrap() error {
	return be.Err
}

// TagLineError reports a block 4 line that starts a tag marker but
// does not match the tag name grammar. It wraps ErrMalformedTagLine.
type TagLineError struct {
	Line string
	Err  error
}

func (te *TagLineError) Error() string {
	return fmt.Sprintf("%v: %q", te.Err, te.Line)
}

func (te *TagLineError) Unwrap() error {
	return te.Err
}

// ValidationError reports a field value that fails its structural
// validator pattern. Validation failures are reported to the caller,
// they never abort component extraction.
type ValidationError struct {
	Pattern  string
	Position int // byte offset in the value where matching stopped
	Message  string
}

func (ve *ValidationError) Error() string {
	return fmt.Sprintf("validation failed against %q at position %d: %s", ve.Pattern, ve.Position, ve.Message)
}
