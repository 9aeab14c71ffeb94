package schema

import (
	"fmt"
	"math"
	"strings"

	"github.com/arloliu/sacio/endian"
	"github.com/arloliu/sacio/errs"
	"github.com/arloliu/sacio/format"
)

// Unpack decodes one header field from buf, which must hold the complete
// fixed header. A slot holding the field's undefined sentinel decodes to
// the zero Value.
//
// Returns:
//   - Value: Decoded semantic value (zero Value when the slot is undefined)
//   - error: errs.ErrInvalidEnum for undocumented enumeration codes,
//     errs.ErrWrongType for logical slots outside {0, 1, sentinel}
func Unpack(f Field, buf []byte, engine endian.EndianEngine) (Value, error) {
	raw := buf[f.Offset : f.Offset+f.Length]

	switch f.Kind {
	case format.KindFloat:
		v := math.Float32frombits(engine.Uint32(raw))
		if v == float32(UndefinedFloat) {
			return Value{}, nil
		}

		return Float(float64(v)), nil

	case format.KindInteger:
		v := int32(engine.Uint32(raw))
		if v == UndefinedInt {
			return Value{}, nil
		}

		return Int(v), nil

	case format.KindEnum:
		v := int32(engine.Uint32(raw))
		if v == UndefinedInt {
			return Value{}, nil
		}
		e := format.Enum(v)
		if !e.Known() || !f.Accepts.Contains(e) {
			return Value{}, fmt.Errorf("field %s: code %d: %w", f.Name, v, errs.ErrInvalidEnum)
		}

		return EnumOf(e), nil

	case format.KindLogical:
		v := int32(engine.Uint32(raw))
		switch v {
		case UndefinedInt:
			return Value{}, nil
		case 0:
			return Bool(false), nil
		case 1:
			return Bool(true), nil
		default:
			return Value{}, fmt.Errorf("field %s: logical value %d: %w", f.Name, v, errs.ErrWrongType)
		}

	case format.KindAlpha:
		s := cleanAlpha(raw)
		if s == UndefinedString {
			return Value{}, nil
		}

		return Str(s), nil

	default:
		return Value{}, fmt.Errorf("field %s: kind %s: %w", f.Name, f.Kind, errs.ErrWrongType)
	}
}

// Pack encodes one header field into buf at the field's offset. The zero
// Value packs the field's undefined sentinel. Over-length strings are
// truncated rather than rejected, matching historical SAC writers.
func Pack(f Field, v Value, buf []byte, engine endian.EndianEngine) error {
	if v.Defined() && v.Kind() != f.Kind {
		return fmt.Errorf("field %s: packing %s into %s slot: %w", f.Name, v.Kind(), f.Kind, errs.ErrWrongType)
	}

	dst := buf[f.Offset : f.Offset+f.Length]

	switch f.Kind {
	case format.KindFloat:
		fv := float32(UndefinedFloat)
		if v.Defined() {
			fv = float32(v.Float())
		}
		engine.PutUint32(dst, math.Float32bits(fv))

	case format.KindInteger:
		iv := UndefinedInt
		if v.Defined() {
			iv = v.Int()
		}
		engine.PutUint32(dst, uint32(iv))

	case format.KindEnum:
		iv := UndefinedInt
		if v.Defined() {
			e := v.Enum()
			if !f.Accepts.Contains(e) {
				return fmt.Errorf("field %s: %s: %w", f.Name, e, errs.ErrInvalidEnum)
			}
			iv = int32(e)
		}
		engine.PutUint32(dst, uint32(iv))

	case format.KindLogical:
		iv := UndefinedInt
		if v.Defined() {
			iv = 0
			if v.Bool() {
				iv = 1
			}
		}
		engine.PutUint32(dst, uint32(iv))

	case format.KindAlpha:
		s := UndefinedString
		if v.Defined() {
			s = v.Str()
		}
		if len(s) > f.Length {
			s = s[:f.Length]
		}
		copy(dst, s)
		for i := len(s); i < f.Length; i++ {
			dst[i] = ' '
		}

	default:
		return fmt.Errorf("field %s: kind %s: %w", f.Name, f.Kind, errs.ErrWrongType)
	}

	return nil
}

// UnpackDouble reads one footer slot.
func UnpackDouble(buf []byte, offset int, engine endian.EndianEngine) float64 {
	return math.Float64frombits(engine.Uint64(buf[offset : offset+8]))
}

// PackDouble writes one footer slot.
func PackDouble(buf []byte, offset int, v float64, engine endian.EndianEngine) {
	engine.PutUint64(buf[offset:offset+8], math.Float64bits(v))
}

// cleanAlpha strips embedded NUL bytes and trailing whitespace from a raw
// string slot. Some historical SAC writers NUL-terminate instead of
// space-padding; both forms decode to the same semantic string.
func cleanAlpha(raw []byte) string {
	s := strings.ReplaceAll(string(raw), "\x00", "")
	return strings.TrimRight(s, " \t")
}
