// Package errs defines the sentinel errors shared across the sacio packages.
//
// Errors fall into the taxonomy used by the codec: structural errors
// (malformed bytes, nothing to salvage), semantic errors (valid bytes,
// invalid meaning), and fetch errors (remote service failures). All are
// plain sentinel values suitable for errors.Is; call sites wrap them with
// fmt.Errorf("...: %w", ...) to attach context such as the field name.
package errs

import "errors"

// Structural errors: the byte stream itself is malformed.
var (
	// ErrBufferTooShort indicates the buffer ends before the fixed header
	// (or a declared data/footer section) does.
	ErrBufferTooShort = errors.New("buffer too short for SAC layout")

	// ErrUnknownVersion indicates the nvhdr field holds a version other
	// than 6 or 7 under both byte orders.
	ErrUnknownVersion = errors.New("unrecognized SAC header version")

	// ErrDataTruncated indicates the declared sample counts imply a data
	// section larger than the remaining buffer.
	ErrDataTruncated = errors.New("data section exceeds buffer length")
)

// Semantic errors: well-formed bytes with invalid meaning.
var (
	// ErrInvalidEnum indicates an enumerated field holds an integer with
	// no documented symbolic name, or a name outside the field's set.
	ErrInvalidEnum = errors.New("invalid enumerated value")

	// ErrUnknownField indicates a field name with no schema entry.
	ErrUnknownField = errors.New("unknown header field")

	// ErrWrongType indicates a value whose type does not match the
	// field's schema kind.
	ErrWrongType = errors.New("value type does not match field kind")

	// ErrMissingRequired indicates a required header field is still at
	// its undefined sentinel.
	ErrMissingRequired = errors.New("required header field not set")

	// ErrReferenceTime indicates an attempt to move the field currently
	// designated as zero time away from its established value.
	ErrReferenceTime = errors.New("reference time field may not change value")

	// ErrSampleCount indicates npts disagrees with the length of the
	// in-memory sample array at encode time.
	ErrSampleCount = errors.New("npts does not match sample array length")

	// ErrReadOnlyField indicates an assignment to a derived field such
	// as kzdate or kztime.
	ErrReadOnlyField = errors.New("field is derived and read-only")
)

// Fetch errors: remote service failures.
var (
	// ErrFetchFailed indicates the remote data service did not produce a
	// SAC payload after exhausting the retry budget.
	ErrFetchFailed = errors.New("remote fetch failed")

	// ErrFetchRejected indicates the remote data service rejected the
	// request with a non-retryable status.
	ErrFetchRejected = errors.New("remote fetch rejected")
)
