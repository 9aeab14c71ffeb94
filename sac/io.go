package sac

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/arloliu/sacio/compress"
	"github.com/arloliu/sacio/internal/pool"
)

// ReadFile reads and decodes one SAC file. A compression extension on the
// path (.zst, .lz4, .s2, .gz) selects transparent decompression of the
// container before decoding.
func ReadFile(path string) (*File, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	if codec, ok := compress.ForPath(path); ok {
		if raw, err = codec.Decompress(raw); err != nil {
			return nil, fmt.Errorf("decompress %s: %w", path, err)
		}
	}

	return Decode(raw)
}

// WriteFile encodes the File and writes it to path atomically: the image
// goes to a temporary file in the same directory which is renamed into
// place, so an interrupted write never leaves a truncated file behind. A
// compression extension on the path selects transparent compression of
// the container.
func (f *File) WriteFile(path string) error {
	bb := pool.GetFileBuffer()
	defer pool.PutFileBuffer(bb)

	image := bb.Grow(f.EncodedSize())
	if err := f.encodeInto(image); err != nil {
		return err
	}

	out := image
	if codec, ok := compress.ForPath(path); ok {
		compressed, err := codec.Compress(image)
		if err != nil {
			return fmt.Errorf("compress %s: %w", path, err)
		}
		out = compressed
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(out); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}

	return os.Rename(tmp.Name(), path)
}
