package sac

import (
	"fmt"
	"math"

	"github.com/arloliu/sacio/endian"
	"github.com/arloliu/sacio/errs"
	"github.com/arloliu/sacio/schema"
)

// EncodedSize returns the exact on-disk size of the File in its current
// configuration.
func (f *File) EncodedSize() int {
	size := schema.HeaderSize + 4*len(f.Data) + 4*len(f.X)
	if f.Version().HasFooter() {
		size += schema.FooterSize
	}

	return size
}

// Encode serializes the File into a freshly allocated byte slice in the
// File's byte order: fixed header, data block(s), and for version 7 the
// double-precision footer.
//
// Returns:
//   - []byte: Complete file image
//   - error: errs.ErrMissingRequired if a required field is unset,
//     errs.ErrSampleCount if npts disagrees with the sample arrays
func (f *File) Encode() ([]byte, error) {
	buf := make([]byte, f.EncodedSize())
	if err := f.encodeInto(buf); err != nil {
		return nil, err
	}

	return buf, nil
}

// encodeInto writes the file image into buf, which must be exactly
// EncodedSize() bytes.
func (f *File) encodeInto(buf []byte) error {
	if err := f.checkRequired(); err != nil {
		return err
	}

	npts := int(f.Npts())
	if npts != len(f.Data) {
		return fmt.Errorf("npts %d, %d samples: %w", npts, len(f.Data), errs.ErrSampleCount)
	}
	if f.hasSecondBlock() {
		if len(f.X) != npts {
			return fmt.Errorf("npts %d, %d x samples: %w", npts, len(f.X), errs.ErrSampleCount)
		}
	} else if len(f.X) != 0 {
		return fmt.Errorf("%d x samples in single-block layout: %w", len(f.X), errs.ErrSampleCount)
	}

	for _, spec := range schema.Fields() {
		if err := schema.Pack(spec, f.values[spec.Name], buf, f.engine); err != nil {
			return err
		}
	}

	offset := schema.HeaderSize
	packSamples(buf[offset:], f.Data, f.engine)
	offset += 4 * len(f.Data)
	packSamples(buf[offset:], f.X, f.engine)
	offset += 4 * len(f.X)

	if f.Version().HasFooter() {
		f.packFooter(buf[offset : offset+schema.FooterSize])
	}

	return nil
}

func packSamples(buf []byte, samples []float32, engine endian.EndianEngine) {
	for i, s := range samples {
		engine.PutUint32(buf[i*4:], math.Float32bits(s))
	}
}

// packFooter derives every footer slot from the same in-memory value the
// float32 header copy was packed from, so the two views stay consistent:
// full precision in the footer, truncated in the legacy slot.
func (f *File) packFooter(buf []byte) {
	for _, slot := range schema.Footer() {
		v := schema.UndefinedFloat
		if fv := f.values[slot.Name]; fv.Defined() {
			v = fv.Float()
		}
		schema.PackDouble(buf, slot.Offset, v, f.engine)
	}
}
