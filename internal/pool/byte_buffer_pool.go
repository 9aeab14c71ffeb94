// Package pool provides pooled byte buffers for encode paths.
//
// A typical SAC file is a few hundred kilobytes (632-byte header plus
// npts float32 samples); the encoder assembles the whole file in one
// buffer before writing, so pooling avoids re-allocating that buffer for
// every encode on hot paths such as batch conversion.
package pool

import "sync"

const (
	// FileBufferDefaultSize covers the header plus ~16k samples.
	FileBufferDefaultSize = 64 * 1024
	// FileBufferMaxThreshold is the largest buffer returned to the pool;
	// bigger ones are dropped to keep pooled memory bounded.
	FileBufferMaxThreshold = 4 * 1024 * 1024
)

// ByteBuffer is a growable byte slice with its allocation retained across
// Reset.
type ByteBuffer struct {
	B []byte
}

// Bytes returns the underlying byte slice.
func (bb *ByteBuffer) Bytes() []byte {
	return bb.B
}

// Reset empties the buffer but keeps its capacity.
func (bb *ByteBuffer) Reset() {
	bb.B = bb.B[:0]
}

// Len returns the current length of the buffer.
func (bb *ByteBuffer) Len() int {
	return len(bb.B)
}

// Grow extends the buffer by n zeroed bytes and returns the extension.
func (bb *ByteBuffer) Grow(n int) []byte {
	cur := len(bb.B)
	if cap(bb.B)-cur < n {
		grown := make([]byte, cur+n, max(2*cap(bb.B), cur+n))
		copy(grown, bb.B)
		bb.B = grown
	} else {
		bb.B = bb.B[:cur+n]
		clear(bb.B[cur:])
	}

	return bb.B[cur:]
}

var fileBufferPool = sync.Pool{
	New: func() any {
		return &ByteBuffer{B: make([]byte, 0, FileBufferDefaultSize)}
	},
}

// GetFileBuffer fetches an empty buffer from the pool.
func GetFileBuffer() *ByteBuffer {
	bb, _ := fileBufferPool.Get().(*ByteBuffer)
	bb.Reset()

	return bb
}

// PutFileBuffer returns a buffer to the pool unless it has grown past the
// retention threshold.
func PutFileBuffer(bb *ByteBuffer) {
	if bb == nil || cap(bb.B) > FileBufferMaxThreshold {
		return
	}
	fileBufferPool.Put(bb)
}
