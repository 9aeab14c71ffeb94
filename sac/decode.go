package sac

import (
	"fmt"
	"math"

	"github.com/arloliu/sacio/endian"
	"github.com/arloliu/sacio/errs"
	"github.com/arloliu/sacio/format"
	"github.com/arloliu/sacio/schema"
)

// Decode parses a complete SAC file from buf.
//
// The byte order is detected from the nvhdr slot, the fixed header is
// unpacked through the schema table, the data block(s) sized from npts
// follow, and for version 7 the double-precision footer after the data
// overrides the float32 time fields.
//
// Returns:
//   - *File: Fully constructed file; never partially populated
//   - error: errs.ErrBufferTooShort, errs.ErrUnknownVersion,
//     errs.ErrDataTruncated, errs.ErrInvalidEnum, errs.ErrMissingRequired,
//     wrapped with the offending field where applicable
func Decode(buf []byte) (*File, error) {
	if len(buf) < schema.HeaderSize {
		return nil, fmt.Errorf("%d bytes: %w", len(buf), errs.ErrBufferTooShort)
	}

	engine, version, err := detectLayout(buf)
	if err != nil {
		return nil, err
	}

	f := &File{
		values: make(map[string]schema.Value, 64),
		engine: engine,
	}

	for _, spec := range schema.Fields() {
		v, err := schema.Unpack(spec, buf, engine)
		if err != nil {
			return nil, err
		}
		if v.Defined() {
			f.values[spec.Name] = v
		}
	}

	// A file missing any required field is structurally invalid.
	if err := f.checkRequired(); err != nil {
		return nil, err
	}

	npts := int(f.Npts())
	if npts < 0 {
		return nil, fmt.Errorf("npts %d: %w", npts, errs.ErrDataTruncated)
	}

	blocks := 1
	if f.hasSecondBlock() {
		blocks = 2
	}

	dataLen := blocks * npts * 4
	offset := schema.HeaderSize
	if len(buf) < offset+dataLen {
		return nil, fmt.Errorf("need %d data bytes, have %d: %w",
			dataLen, len(buf)-offset, errs.ErrDataTruncated)
	}

	f.Data = unpackSamples(buf[offset:offset+npts*4], engine)
	offset += npts * 4
	if blocks == 2 {
		f.X = unpackSamples(buf[offset:offset+npts*4], engine)
		offset += npts * 4
	}

	if version.HasFooter() {
		if len(buf) < offset+schema.FooterSize {
			return nil, fmt.Errorf("footer: need %d bytes, have %d: %w",
				schema.FooterSize, len(buf)-offset, errs.ErrBufferTooShort)
		}
		f.applyFooter(buf[offset:offset+schema.FooterSize], engine)
		offset += schema.FooterSize
	}

	// Trailing bytes are corruption, not a further block; no SAC layout
	// extends past the computed size.
	if len(buf) != offset {
		return nil, fmt.Errorf("%d trailing bytes after %d-byte layout: %w",
			len(buf)-offset, offset, errs.ErrDataTruncated)
	}

	return f, nil
}

// detectLayout determines the byte order and header version from the
// nvhdr slot. A plausible version is a small positive integer; when the
// native guess fails the opposite order is tried before giving up. Only
// versions 6 and 7 are accepted.
func detectLayout(buf []byte) (endian.EndianEngine, format.Version, error) {
	engine := endian.Little()
	v := int32(engine.Uint32(buf[schema.NvhdrOffset:]))
	if !plausibleVersion(v) {
		engine = endian.Opposite(engine)
		v = int32(engine.Uint32(buf[schema.NvhdrOffset:]))
	}
	if !plausibleVersion(v) {
		return nil, 0, fmt.Errorf("nvhdr implausible under both byte orders: %w", errs.ErrUnknownVersion)
	}

	version := format.Version(v)
	if !version.Valid() {
		return nil, 0, fmt.Errorf("nvhdr %d: %w", v, errs.ErrUnknownVersion)
	}

	return engine, version, nil
}

// plausibleVersion is the byte-order heuristic: any small positive
// header version, including historical pre-6 ones, reads as plausible so
// that version errors are reported as such rather than as garbage.
func plausibleVersion(v int32) bool {
	return v > 0 && v <= 16
}

func unpackSamples(buf []byte, engine endian.EndianEngine) []float32 {
	samples := make([]float32, len(buf)/4)
	for i := range samples {
		samples[i] = math.Float32frombits(engine.Uint32(buf[i*4:]))
	}

	return samples
}

// applyFooter overrides the float32 header copies with the
// double-precision footer values. The footer is authoritative for v7
// files; a footer slot at the undefined sentinel leaves the header value
// untouched. Re-encoding derives the footer from the kept value, so a
// file with a sentinel footer slot over a defined header copy comes back
// with that slot filled in: byte-exact round trips hold only for
// internally consistent v7 files.
func (f *File) applyFooter(buf []byte, engine endian.EndianEngine) {
	for _, slot := range schema.Footer() {
		v := schema.UnpackDouble(buf, slot.Offset, engine)
		if v == schema.UndefinedFloat {
			continue
		}
		f.values[slot.Name] = schema.Float(v)
	}
}
