package format

type (
	// FieldKind identifies the semantic type of a header field.
	FieldKind uint8

	// Version is the on-disk SAC header version, stored in the nvhdr field.
	Version int32
)

const (
	KindFloat   FieldKind = 0x1 // KindFloat is a 4-byte IEEE-754 float field.
	KindInteger FieldKind = 0x2 // KindInteger is a 4-byte signed integer field.
	KindEnum    FieldKind = 0x3 // KindEnum is a 4-byte integer drawn from a closed named set.
	KindLogical FieldKind = 0x4 // KindLogical is a 4-byte slot holding a boolean (0 or 1).
	KindAlpha   FieldKind = 0x5 // KindAlpha is a fixed-width space-padded string field.
	KindDouble  FieldKind = 0x6 // KindDouble is an 8-byte IEEE-754 footer field.

	// V6 is the classic SAC header layout: 632-byte header, no footer.
	V6 Version = 6
	// V7 is the extended layout: same header plus a double-precision
	// footer appended after the data section.
	V7 Version = 7
)

func (k FieldKind) String() string {
	switch k {
	case KindFloat:
		return "float"
	case KindInteger:
		return "integer"
	case KindEnum:
		return "enumerated"
	case KindLogical:
		return "logical"
	case KindAlpha:
		return "alphanumeric"
	case KindDouble:
		return "double"
	default:
		return "unknown"
	}
}

func (v Version) String() string {
	switch v {
	case V6:
		return "v6"
	case V7:
		return "v7"
	default:
		return "unknown"
	}
}

// Valid reports whether v is a header version this codec understands.
func (v Version) Valid() bool {
	return v == V6 || v == V7
}

// HasFooter reports whether files with this version carry the
// double-precision footer after the data section.
func (v Version) HasFooter() bool {
	return v == V7
}
