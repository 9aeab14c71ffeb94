package schema

import (
	"github.com/arloliu/sacio/format"
)

// Field describes one slot of the fixed header: where it lives, how wide
// it is, how its bytes are interpreted, and which values it accepts.
type Field struct {
	// Name is the canonical lowercase SAC field name ("delta", "kstnm").
	// Unused and internal slots are named by their header word index
	// ("unused63"), except word 9 which the format calls "fmt".
	Name string
	// Offset is the byte offset of the field within the fixed header.
	Offset int
	// Length is the field width in bytes: 4 for numeric slots, 8 or 16
	// for strings.
	Length int
	// Kind selects the codec used for the slot.
	Kind format.FieldKind
	// Required marks fields that must hold real values before a file may
	// be encoded, and whose absence makes a decoded file invalid.
	Required bool
	// Accepts is the closed set of enumeration codes this field may
	// hold. Nil for non-enumerated fields.
	Accepts EnumSet
}

// EnumSet is the subset of the SAC enumeration dictionary one field accepts.
type EnumSet map[format.Enum]struct{}

// Contains reports whether e is an accepted code.
func (s EnumSet) Contains(e format.Enum) bool {
	_, ok := s[e]
	return ok
}

func setOf(enums ...format.Enum) EnumSet {
	s := make(EnumSet, len(enums))
	for _, e := range enums {
		s[e] = struct{}{}
	}

	return s
}

// Accepted enumeration subsets, per the SAC manual.
var (
	FileTypes = setOf(format.ITime, format.IRLim, format.IAmph, format.IXY, format.IXYZ)

	DependentTypes = setOf(format.IUnkn, format.IDisp, format.IVel, format.IVolts, format.IAcc)

	ReferenceTypes = setOf(
		format.IUnkn, format.IB, format.IDay, format.IO, format.IA,
		format.IT0, format.IT1, format.IT2, format.IT3, format.IT4,
		format.IT5, format.IT6, format.IT7, format.IT8, format.IT9,
	)

	QualityTypes = setOf(format.IGood, format.IGlch, format.IDrop, format.ILowSN, format.IOther)

	SyntheticTypes = setOf(format.IRldta)

	MagnitudeTypes = setOf(format.IMb, format.IMs, format.IMl, format.IMw, format.IMd, format.IMx)

	MagnitudeSources = setOf(
		format.INEIC, format.IPdeq, format.IPdew, format.IPDE, format.IISC,
		format.IREB, format.IUSGS, format.IBrk, format.ICaltech, format.ILLNL,
		format.IEvloc, format.IJSOP, format.IUser, format.IUnknown,
	)

	EventTypes = setOf(
		format.IUnkn, format.INucl, format.IPren, format.IPostn,
		format.IQuake, format.IPreq, format.IPostq, format.IChem,
		format.IQB, format.IQB1, format.IQB2, format.IQBX, format.IQMT,
		format.IEq, format.IEq1, format.IEq2, format.IMe, format.IEx,
		format.INu, format.INc, format.IO_, format.IL, format.IR,
		format.IT, format.IU, format.IGey, format.ILit, format.IMet,
		format.IOdor, format.IOS, format.IOther,
	)
)

// floatNames lists header words 0-69 in layout order.
var floatNames = [FloatWords]string{
	"delta", "depmin", "depmax", "scale", "odelta",
	"b", "e", "o", "a", "fmt",
	"t0", "t1", "t2", "t3", "t4", "t5", "t6", "t7", "t8", "t9",
	"f",
	"resp0", "resp1", "resp2", "resp3", "resp4",
	"resp5", "resp6", "resp7", "resp8", "resp9",
	"stla", "stlo", "stel", "stdp",
	"evla", "evlo", "evel", "evdp", "mag",
	"user0", "user1", "user2", "user3", "user4",
	"user5", "user6", "user7", "user8", "user9",
	"dist", "az", "baz", "gcarc", "sb", "sdelta",
	"depmen", "cmpaz", "cmpinc",
	"xminimum", "xmaximum", "yminimum", "ymaximum",
	"unused63", "unused64", "unused65", "unused66",
	"unused67", "unused68", "unused69",
}

// intNames lists header words 70-109 in layout order. Enumerated and
// logical slots are reclassified by enumFields and logicalFields below.
var intNames = [IntWords]string{
	"nzyear", "nzjday", "nzhour", "nzmin", "nzsec", "nzmsec",
	"nvhdr", "norid", "nevid", "npts", "nsnpts", "nwfid",
	"nxsize", "nysize", "unused84",
	"iftype", "idep", "iztype", "unused88",
	"iinst", "istreg", "ievreg", "ievtyp", "iqual", "isynth",
	"imagtyp", "imagsrc", "ibody",
	"unused98", "unused99", "unused100", "unused101",
	"unused102", "unused103", "unused104",
	"leven", "lpspol", "lovrok", "lcalda", "unused109",
}

// stringSpecs lists the 24 string fields from byte 440 onward. Only kevnm
// is double width.
var stringSpecs = []struct {
	name   string
	length int
}{
	{"kstnm", 8}, {"kevnm", 16},
	{"khole", 8}, {"ko", 8}, {"ka", 8},
	{"kt0", 8}, {"kt1", 8}, {"kt2", 8}, {"kt3", 8}, {"kt4", 8},
	{"kt5", 8}, {"kt6", 8}, {"kt7", 8}, {"kt8", 8}, {"kt9", 8},
	{"kf", 8},
	{"kuser0", 8}, {"kuser1", 8}, {"kuser2", 8},
	{"kcmpnm", 8}, {"knetwk", 8}, {"kdatrd", 8}, {"kinst", 8},
}

var enumFields = map[string]EnumSet{
	"iftype":  FileTypes,
	"idep":    DependentTypes,
	"iztype":  ReferenceTypes,
	"iqual":   QualityTypes,
	"isynth":  SyntheticTypes,
	"imagtyp": MagnitudeTypes,
	"imagsrc": MagnitudeSources,
	"ievtyp":  EventTypes,
}

var logicalFields = map[string]struct{}{
	"leven": {}, "lpspol": {}, "lovrok": {}, "lcalda": {},
}

var requiredFields = map[string]struct{}{
	"delta": {}, "b": {}, "e": {}, "npts": {}, "iftype": {}, "leven": {},
}

var (
	headerFields = buildFields()
	fieldsByName = func() map[string]*Field {
		m := make(map[string]*Field, len(headerFields))
		for i := range headerFields {
			m[headerFields[i].Name] = &headerFields[i]
		}

		return m
	}()
)

func buildFields() []Field {
	fields := make([]Field, 0, FloatWords+IntWords+len(stringSpecs))

	for w, name := range floatNames {
		fields = append(fields, Field{
			Name:     name,
			Offset:   w * WordSize,
			Length:   WordSize,
			Kind:     format.KindFloat,
			Required: isRequired(name),
		})
	}

	for i, name := range intNames {
		f := Field{
			Name:     name,
			Offset:   (FloatWords + i) * WordSize,
			Length:   WordSize,
			Kind:     format.KindInteger,
			Required: isRequired(name),
		}
		if accepts, ok := enumFields[name]; ok {
			f.Kind = format.KindEnum
			f.Accepts = accepts
		} else if _, ok := logicalFields[name]; ok {
			f.Kind = format.KindLogical
		}
		fields = append(fields, f)
	}

	offset := StringOffset
	for _, s := range stringSpecs {
		fields = append(fields, Field{
			Name:   s.name,
			Offset: offset,
			Length: s.length,
			Kind:   format.KindAlpha,
		})
		offset += s.length
	}

	return fields
}

func isRequired(name string) bool {
	_, ok := requiredFields[name]
	return ok
}

// Fields returns every header field in layout order. The returned slice
// is shared; callers must not modify it.
func Fields() []Field {
	return headerFields
}

// Lookup returns the descriptor for the named header field.
func Lookup(name string) (Field, bool) {
	f, ok := fieldsByName[name]
	if !ok {
		return Field{}, false
	}

	return *f, true
}

// Required returns the names of the fields that must be set before a file
// can be encoded, in layout order.
func Required() []string {
	names := make([]string, 0, len(requiredFields))
	for _, f := range headerFields {
		if f.Required {
			names = append(names, f.Name)
		}
	}

	return names
}
