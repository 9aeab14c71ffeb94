package compress

// ZstdCompressor compresses file images with Zstandard: the best ratio of
// the supported containers, suited to archival of waveform collections.
//
// The implementation is selected at build time: the pure-Go
// klauspost/compress backend by default, or valyala/gozstd when built
// with cgo support enabled.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstandard codec.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
