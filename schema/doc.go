// Package schema is the declarative description of the SAC binary layout.
//
// The 632-byte fixed header is expressed as an ordered table of Field
// descriptors (name, byte offset, length, kind, required flag, accepted
// enumeration subset), including the unused and internal slots the format
// reserves, so that a decode/encode cycle accounts for every byte of the
// header. A parallel table describes the v7 footer: double-precision
// copies of the time-critical fields appended after the data section.
//
// The package also implements the generic field codec that interprets the
// table: Unpack reads one field from a buffer and Pack writes one back,
// with enumerated, logical, and alphanumeric conversions applied. All
// table data is immutable after init and safe for concurrent use.
package schema
