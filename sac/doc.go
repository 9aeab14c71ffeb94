// Package sac implements the SAC (Seismic Analysis Code) binary file
// codec: decoding a byte buffer into a File, validating header semantics,
// and encoding a File back to bytes, for on-disk format versions 6 and 7.
//
// # Files and fields
//
// A File holds one value per header field, addressed by the canonical SAC
// field name, plus the sample arrays. Fields left unset decode from and
// encode to the format's undefined sentinels. All mutation goes through
// Set, which enforces the field's type, its enumeration subset, and the
// reference-time guard, so a File is always in an encodable state apart
// from possibly missing required fields.
//
//	f := sac.New()
//	f.Set("delta", 0.025)
//	f.Set("iftype", format.ITime)
//	f.Set("kstnm", "ANMO")
//
// # Versions
//
// Version 6 is the classic layout. Version 7 appends a footer of
// double-precision copies of the time-critical fields after the data
// section; on decode the footer values win, and the float32 header slots
// are re-derived from them on encode. SetVersion switches a File between
// the two.
//
// # Concurrency
//
// Decoding is read-only over the input buffer, so distinct buffers may be
// decoded concurrently. A single File is not safe for concurrent
// mutation.
package sac
