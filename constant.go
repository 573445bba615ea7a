package swift

// Application and service identifiers used in the basic header.
const (
	ApplicationIDFIN    = "F" // financial messages
	ApplicationIDGPA    = "A" // general purpose application
	ApplicationIDLogins = "L" // logins and selects
	ServiceIDFIN        = "01"
	ServiceIDACKNAK     = "21"
)

// Well-known user header (block 3) tag names.
const (
	TagBankingPriority   = "113"
	TagMUR               = "108" // message user reference
	TagValidationFlag    = "119"
	TagUETR              = "121" // unique end-to-end transaction reference
	TagServiceIdentifier = "111"
)

// ValidationFlagSTP marks a message as straight-through-processing.
const ValidationFlagSTP = "STP"

// Boolean component wire values.
const (
	LogicalTrue  = "Y"
	LogicalFalse = "N"
)

// murTimeLayout is the timestamp format used for generated message
// user references: yyMMddHHmmss plus a 4-digit fraction appended
// separately, 16 characters total to fill the 16x field.
const murTimeLayout = "060102150405"

// Line break emitted between text block tags on encode. Decoding
// accepts bare LF as well.
const wireLineBreak = "\r\n"
