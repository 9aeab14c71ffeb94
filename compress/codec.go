// Package compress provides the compression codecs used for SAC files at
// rest. SAC itself defines no compression, but archived and fetched
// waveforms routinely travel compressed, so the reader and writer accept
// container extensions (.zst, .lz4, .s2, .gz) and apply the matching
// codec transparently around the binary codec proper.
package compress

import (
	"fmt"
	"path/filepath"
	"strings"
)

// ContainerType selects a compression container for a SAC file at rest.
type ContainerType uint8

const (
	ContainerNone ContainerType = 0x1 // no container, raw SAC bytes
	ContainerZstd ContainerType = 0x2 // Zstandard
	ContainerS2   ContainerType = 0x3 // S2 (Snappy-compatible)
	ContainerLZ4  ContainerType = 0x4 // LZ4 block format
	ContainerGzip ContainerType = 0x5 // gzip, the most common archive form
)

func (c ContainerType) String() string {
	switch c {
	case ContainerNone:
		return "none"
	case ContainerZstd:
		return "zstd"
	case ContainerS2:
		return "s2"
	case ContainerLZ4:
		return "lz4"
	case ContainerGzip:
		return "gzip"
	default:
		return "unknown"
	}
}

// Compressor compresses a complete SAC file image.
type Compressor interface {
	// Compress returns a newly allocated compressed form of data; the
	// input is not modified.
	Compress(data []byte) ([]byte, error)
}

// Decompressor recovers a SAC file image from its compressed form.
type Decompressor interface {
	// Decompress returns a newly allocated decompressed form of data,
	// failing if the bytes are corrupt or from a different algorithm.
	Decompress(data []byte) ([]byte, error)
}

// Codec combines both directions of one algorithm.
type Codec interface {
	Compressor
	Decompressor
}

var builtinCodecs = map[ContainerType]Codec{
	ContainerNone: NewNoOpCompressor(),
	ContainerZstd: NewZstdCompressor(),
	ContainerS2:   NewS2Compressor(),
	ContainerLZ4:  NewLZ4Compressor(),
	ContainerGzip: NewGzipCompressor(),
}

// GetCodec retrieves the built-in Codec for the given container type.
func GetCodec(container ContainerType) (Codec, error) {
	if codec, ok := builtinCodecs[container]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("unsupported container type: %s", container)
}

var extensions = map[string]ContainerType{
	".zst": ContainerZstd,
	".s2":  ContainerS2,
	".lz4": ContainerLZ4,
	".gz":  ContainerGzip,
}

// ForPath returns the codec selected by the path's final extension, and
// whether a compression container applies at all. Plain ".sac" paths (or
// any unrecognized extension) get no codec.
func ForPath(path string) (Codec, bool) {
	container, ok := extensions[strings.ToLower(filepath.Ext(path))]
	if !ok {
		return nil, false
	}

	return builtinCodecs[container], true
}
