// Package sacio reads and writes SAC (Seismic Analysis Code) binary
// waveform files.
//
// A SAC file is a fixed 632-byte header followed by one or two blocks of
// float32 samples, in either byte order; version 7 files append a footer
// of float64 field values after the data. The package round-trips files
// byte for byte, including undefined header slots and unused words.
//
// # Core Features
//
//   - Name-based access to every header field with typed values
//   - Automatic byte-order and version detection on read
//   - Version 6 and 7 support, including the v7 double-precision footer
//   - Lossless migration between versions in both directions
//   - Transparent compression containers (.zst, .s2, .lz4, .gz)
//   - Remote waveform fetch from the IRIS timeseries service with
//     bounded retries and an optional local cache
//
// # Basic Usage
//
// Reading a file and inspecting the header:
//
//	import "github.com/arloliu/sacio"
//
//	f, _ := sacio.Read("waveform.sac")
//	delta, _ := f.Get("delta")
//	fmt.Printf("delta=%v npts=%d\n", delta.Float(), len(f.Data))
//
// Creating a file from scratch:
//
//	f, _ := sacio.New()
//	f.Set("delta", 0.01)
//	f.Set("b", 0.0)
//	f.Set("e", 0.99)
//	f.Set("iftype", "itime")
//	f.Set("leven", true)
//	f.Set("npts", 100)
//	f.Data = samples
//	f.Write("out.sac")
//
// Fetching a waveform from IRIS:
//
//	f, _ := sacio.FetchIRIS(ctx, sacio.FetchRequest{
//	    Network: "IU", Station: "ANMO", Channel: "BHZ",
//	    Start: start, End: end,
//	})
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the sac
// package, simplifying the most common use cases. For advanced usage and
// fine-grained control, use the sac and fetch packages directly.
package sacio

import (
	"context"

	"github.com/arloliu/sacio/fetch"
	"github.com/arloliu/sacio/sac"
)

// File is a decoded SAC file. See sac.File for the full API.
type File = sac.File

// FetchRequest identifies one waveform on a remote service. See
// fetch.Request.
type FetchRequest = fetch.Request

// New creates an empty File with the default settings: header version 7
// and little-endian byte order.
//
// Parameters:
//   - opts: Optional configuration functions (see sac.Option)
//
// Available options:
//   - sac.WithVersion(format.V6|format.V7)
//   - sac.WithLittleEndian() / sac.WithBigEndian()
//   - sac.WithReferenceOverride()
//
// Returns:
//   - *File: The created file.
//   - error: An error if the configuration is invalid.
func New(opts ...sac.Option) (*File, error) {
	return sac.New(opts...)
}

// Read loads and decodes the SAC file at path. Compression containers are
// recognized by extension and decompressed transparently.
func Read(path string) (*File, error) {
	return sac.ReadFile(path)
}

// ReadBuffer decodes a SAC file image already in memory.
func ReadBuffer(buf []byte) (*File, error) {
	return sac.Decode(buf)
}

// Write encodes f and writes it to path atomically. The compression
// container is chosen by the path's extension.
func Write(f *File, path string) error {
	return f.WriteFile(path)
}

// FetchIRIS retrieves and decodes one waveform from the IRIS timeseries
// service, retrying transient failures.
//
// Parameters:
//   - ctx: Cancels the fetch, including backoff waits
//   - req: The waveform to fetch
//   - opts: Optional configuration functions (see fetch.Option)
//
// Returns:
//   - *File: The decoded waveform.
//   - error: errs.ErrFetchRejected if the service rejected the request,
//     errs.ErrFetchFailed after exhausting retries, or a decode error if
//     the response is not a valid SAC file.
func FetchIRIS(ctx context.Context, req FetchRequest, opts ...fetch.Option) (*File, error) {
	client, err := fetch.NewClient(opts...)
	if err != nil {
		return nil, err
	}

	return client.FetchFile(ctx, req)
}
