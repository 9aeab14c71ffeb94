package sac

import (
	"fmt"
	"math"
	"time"

	"github.com/arloliu/sacio/endian"
	"github.com/arloliu/sacio/errs"
	"github.com/arloliu/sacio/format"
	"github.com/arloliu/sacio/internal/options"
	"github.com/arloliu/sacio/schema"
)

// File is the in-memory representation of one SAC file: a value per
// header field, the sample arrays, and the byte order the file uses on
// disk.
//
// Note: a File is NOT safe for concurrent mutation. Decode unrelated
// buffers in parallel freely; share a single File only with external
// serialization.
type File struct {
	values map[string]schema.Value

	// Data is the first data block: the dependent-variable samples.
	Data []float32
	// X is the second data block, present for unevenly spaced files
	// (sampling times), spectral files (imaginary or phase half), and
	// general x-y files (independent variable).
	X []float32

	engine endian.EndianEngine

	// refOverride disables the reference-time guard. Off by default;
	// meant for controlled migrations only.
	refOverride bool
}

// Option configures a File created by New.
type Option = options.Option[*File]

// WithVersion sets the on-disk header version of a new File.
func WithVersion(v format.Version) Option {
	return options.New(func(f *File) error {
		return f.SetVersion(v)
	})
}

// WithLittleEndian makes the File encode little-endian. This is the default.
func WithLittleEndian() Option {
	return options.NoError(func(f *File) {
		f.engine = endian.Little()
	})
}

// WithBigEndian makes the File encode big-endian.
func WithBigEndian() Option {
	return options.NoError(func(f *File) {
		f.engine = endian.Big()
	})
}

// WithReferenceOverride disables the guard that pins the designated
// zero-time field to its established value. Intended for controlled
// migrations; leave off otherwise.
func WithReferenceOverride() Option {
	return options.NoError(func(f *File) {
		f.refOverride = true
	})
}

// New creates an empty File. Every header field starts at its undefined
// sentinel except nvhdr, which defaults to version 7; required fields
// must be set before the File can be encoded.
func New(opts ...Option) (*File, error) {
	f := &File{
		values: make(map[string]schema.Value, 32),
		engine: endian.Little(),
	}
	f.values["nvhdr"] = schema.Int(int32(format.V7))

	if err := options.Apply(f, opts...); err != nil {
		return nil, err
	}

	return f, nil
}

// Engine returns the byte order the File encodes with.
func (f *File) Engine() endian.EndianEngine {
	return f.engine
}

// SetEngine switches the byte order used on the next encode. Field values
// are order-independent in memory, so this is a pure output setting.
func (f *File) SetEngine(engine endian.EndianEngine) {
	f.engine = engine
}

// Version returns the on-disk header version.
func (f *File) Version() format.Version {
	return format.Version(f.values["nvhdr"].Int())
}

// SetVersion switches the File between the v6 and v7 layouts. Upgrading
// to v7 makes the footer carry the authoritative field values on the next
// encode; downgrading drops the footer (and with it any precision beyond
// float32).
func (f *File) SetVersion(v format.Version) error {
	if !v.Valid() {
		return fmt.Errorf("version %d: %w", v, errs.ErrUnknownVersion)
	}
	f.values["nvhdr"] = schema.Int(int32(v))

	return nil
}

// SetReferenceOverride toggles the reference-time guard at runtime. See
// WithReferenceOverride.
func (f *File) SetReferenceOverride(enabled bool) {
	f.refOverride = enabled
}

// IsSet reports whether the named field holds a real (non-sentinel) value.
func (f *File) IsSet(name string) bool {
	return f.values[name].Defined()
}

// Get returns the decoded value of the named field, or the zero Value if
// the field is undefined. The derived names "kzdate" and "kztime" are
// supported read-only.
func (f *File) Get(name string) (schema.Value, error) {
	switch name {
	case "kzdate":
		if s, ok := f.Kzdate(); ok {
			return schema.Str(s), nil
		}

		return schema.Value{}, nil
	case "kztime":
		if s, ok := f.Kztime(); ok {
			return schema.Str(s), nil
		}

		return schema.Value{}, nil
	}

	if _, ok := schema.Lookup(name); !ok {
		return schema.Value{}, fmt.Errorf("%s: %w", name, errs.ErrUnknownField)
	}

	return f.values[name], nil
}

// Set assigns a value to the named header field. The value must match the
// field's kind: float64/float32/int for float fields, int/int32 for
// integer fields, bool for logical fields, string for alphanumeric
// fields, and format.Enum or a canonical name string for enumerated
// fields. Assignment is all-or-nothing: on error the field keeps its
// previous value.
func (f *File) Set(name string, value any) error {
	if name == "kzdate" || name == "kztime" {
		return fmt.Errorf("%s: %w", name, errs.ErrReadOnlyField)
	}

	spec, ok := schema.Lookup(name)
	if !ok {
		return fmt.Errorf("%s: %w", name, errs.ErrUnknownField)
	}

	v, err := coerce(spec, value)
	if err != nil {
		return err
	}

	if name == "nvhdr" {
		return f.SetVersion(format.Version(v.Int()))
	}

	if err := f.checkReferenceGuard(spec, v); err != nil {
		return err
	}

	f.values[name] = v

	return nil
}

// Unset returns the named field to its undefined sentinel. The
// reference-time guard applies: the designated zero-time field cannot be
// unset while it is protected.
func (f *File) Unset(name string) error {
	spec, ok := schema.Lookup(name)
	if !ok {
		return fmt.Errorf("%s: %w", name, errs.ErrUnknownField)
	}

	if err := f.checkReferenceGuard(spec, schema.Value{}); err != nil {
		return err
	}

	delete(f.values, name)

	return nil
}

// coerce converts a caller-supplied Go value into the schema Value for
// the field, validating type and enumeration membership.
func coerce(spec schema.Field, value any) (schema.Value, error) {
	switch spec.Kind {
	case format.KindFloat:
		switch v := value.(type) {
		case float64:
			return schema.Float(v), nil
		case float32:
			return schema.Float(float64(v)), nil
		case int:
			return schema.Float(float64(v)), nil
		}

	case format.KindInteger:
		switch v := value.(type) {
		case int:
			return coerceInt(spec, int64(v))
		case int32:
			return schema.Int(v), nil
		case int64:
			return coerceInt(spec, v)
		}

	case format.KindEnum:
		var e format.Enum
		switch v := value.(type) {
		case format.Enum:
			e = v
		case string:
			var ok bool
			if e, ok = format.EnumByName(v); !ok {
				return schema.Value{}, fmt.Errorf("field %s: name %q: %w", spec.Name, v, errs.ErrInvalidEnum)
			}
		default:
			return schema.Value{}, fmt.Errorf("field %s: %T: %w", spec.Name, value, errs.ErrWrongType)
		}
		if !spec.Accepts.Contains(e) {
			return schema.Value{}, fmt.Errorf("field %s: %s: %w", spec.Name, e, errs.ErrInvalidEnum)
		}

		return schema.EnumOf(e), nil

	case format.KindLogical:
		if v, ok := value.(bool); ok {
			return schema.Bool(v), nil
		}

	case format.KindAlpha:
		if v, ok := value.(string); ok {
			return schema.Str(v), nil
		}
	}

	return schema.Value{}, fmt.Errorf("field %s: %T: %w", spec.Name, value, errs.ErrWrongType)
}

// coerceInt rejects values outside the 4-byte header slot instead of
// wrapping them.
func coerceInt(spec schema.Field, v int64) (schema.Value, error) {
	if v < math.MinInt32 || v > math.MaxInt32 {
		return schema.Value{}, fmt.Errorf("field %s: %d overflows int32: %w", spec.Name, v, errs.ErrWrongType)
	}

	return schema.Int(int32(v)), nil
}

// referenceField maps the current iztype to the header field it protects.
// Only codes naming a concrete time field pin anything; iunkn and iday
// designate origins with no single backing field.
var referenceFields = map[format.Enum]string{
	format.IB: "b", format.IO: "o", format.IA: "a",
	format.IT0: "t0", format.IT1: "t1", format.IT2: "t2",
	format.IT3: "t3", format.IT4: "t4", format.IT5: "t5",
	format.IT6: "t6", format.IT7: "t7", format.IT8: "t8",
	format.IT9: "t9",
}

// ReferenceField returns the name of the header field currently
// designated as zero time by iztype, if any.
func (f *File) ReferenceField() (string, bool) {
	izt := f.values["iztype"]
	if !izt.Defined() {
		return "", false
	}
	name, ok := referenceFields[izt.Enum()]

	return name, ok
}

// checkReferenceGuard rejects writes that would move the designated
// zero-time field away from its established value. Changing it silently
// would skew the meaning of every other relative-time field, so only a
// no-op write or an exact 0 is allowed. The override flag bypasses the
// guard for controlled migrations.
func (f *File) checkReferenceGuard(spec schema.Field, v schema.Value) error {
	if f.refOverride {
		return nil
	}

	ref, ok := f.ReferenceField()
	if !ok || ref != spec.Name {
		return nil
	}

	old := f.values[spec.Name]
	if v.Defined() && v.Float() == 0 {
		return nil
	}
	if v.Defined() && old.Defined() && v.Float() == old.Float() {
		return nil
	}

	return fmt.Errorf("field %s is the %s zero-time field: %w", spec.Name, f.values["iztype"], errs.ErrReferenceTime)
}

// Kzdate returns the reference date as "YYYY-MM-DD", derived from nzyear
// and nzjday. nzjday is 1-indexed: January 1 is day 1.
func (f *File) Kzdate() (string, bool) {
	year, jday := f.values["nzyear"], f.values["nzjday"]
	if !year.Defined() || !jday.Defined() {
		return "", false
	}

	d := time.Date(int(year.Int()), time.January, 1, 0, 0, 0, 0, time.UTC).
		AddDate(0, 0, int(jday.Int())-1)

	return d.Format("2006-01-02"), true
}

// Kztime returns the reference time of day as "HH:MM:SS.mmm", derived
// from nzhour, nzmin, nzsec, and nzmsec.
func (f *File) Kztime() (string, bool) {
	hour, minute := f.values["nzhour"], f.values["nzmin"]
	sec, msec := f.values["nzsec"], f.values["nzmsec"]
	if !hour.Defined() || !minute.Defined() || !sec.Defined() || !msec.Defined() {
		return "", false
	}

	return fmt.Sprintf("%02d:%02d:%02d.%03d", hour.Int(), minute.Int(), sec.Int(), msec.Int()), true
}

// ReferenceTime composes the six nz* fields into an absolute UTC time.
func (f *File) ReferenceTime() (time.Time, bool) {
	year, jday := f.values["nzyear"], f.values["nzjday"]
	hour, minute := f.values["nzhour"], f.values["nzmin"]
	sec, msec := f.values["nzsec"], f.values["nzmsec"]
	if !year.Defined() || !jday.Defined() || !hour.Defined() ||
		!minute.Defined() || !sec.Defined() || !msec.Defined() {
		return time.Time{}, false
	}

	t := time.Date(int(year.Int()), time.January, 1,
		int(hour.Int()), int(minute.Int()), int(sec.Int()),
		int(msec.Int())*int(time.Millisecond), time.UTC).
		AddDate(0, 0, int(jday.Int())-1)

	return t, true
}

// Convenience accessors for the required fields. Getters return the
// undefined sentinel when the field is unset.

func (f *File) Delta() float64      { return f.values["delta"].Float() }
func (f *File) B() float64          { return f.values["b"].Float() }
func (f *File) E() float64          { return f.values["e"].Float() }
func (f *File) Npts() int32         { return f.values["npts"].Int() }
func (f *File) Iftype() format.Enum { return f.values["iftype"].Enum() }
func (f *File) Leven() bool         { return f.values["leven"].Bool() }

// hasSecondBlock reports whether the on-disk layout carries a second data
// block after the first: unevenly spaced files and the two-component
// spectral / general x-y types.
func (f *File) hasSecondBlock() bool {
	leven := f.values["leven"]
	if leven.Defined() && !leven.Bool() {
		return true
	}
	switch f.values["iftype"].Enum() {
	case format.IRLim, format.IAmph, format.IXY:
		return true
	default:
		return false
	}
}

// checkRequired verifies every required field holds a real value.
func (f *File) checkRequired() error {
	for _, name := range schema.Required() {
		if !f.values[name].Defined() {
			return fmt.Errorf("field %s: %w", name, errs.ErrMissingRequired)
		}
	}

	return nil
}
