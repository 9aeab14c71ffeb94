package schema

// Layout constants for the SAC binary format.
const (
	WordSize   = 4   // numeric header fields occupy one 4-byte word each
	HeaderSize = 632 // fixed header: 70 floats + 40 ints + 192 bytes of strings

	FloatWords   = 70  // header words 0-69
	IntWords     = 40  // header words 70-109
	StringOffset = 440 // first string field (kstnm) starts at word 110

	// FooterSize is the v7 footer: 22 doubles appended after the data
	// section (delta, b, e, o, a, t0-t9, f, evlo, evla, stlo, stla,
	// sb, sdelta).
	FooterFields = 22
	FooterSize   = FooterFields * 8

	// Byte offsets of fields the reader needs before generic header
	// decoding can run.
	NvhdrOffset  = 76 * WordSize // header version, drives byte order and footer detection
	NptsOffset   = 79 * WordSize
	NxsizeOffset = 82 * WordSize
	NysizeOffset = 83 * WordSize
	IftypeOffset = 85 * WordSize
	LevenOffset  = 105 * WordSize
)

// Undefined sentinels. A header slot holding its sentinel means the field
// was never set; the sentinel round-trips through decode and encode.
const (
	UndefinedFloat  = -12345.0
	UndefinedInt    = int32(-12345)
	UndefinedString = "-12345"
)
