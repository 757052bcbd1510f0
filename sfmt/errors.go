package sfmt

import "errors"

var (
	// ErrTruncated indicates an IE header or payload extending past
	// the end of the message buffer.
	ErrTruncated = errors.New("truncated IE")

	// ErrMandatoryIEMissing indicates a message lacking an IE the
	// grammar marks mandatory for its direction.
	ErrMandatoryIEMissing = errors.New("mandatory IE missing")

	// ErrMandatoryIEError indicates a mandatory IE whose contents
	// failed to parse.
	ErrMandatoryIEError = errors.New("mandatory IE error")

	// ErrInvalidIE indicates an IE that is forbidden in the message
	// direction or cannot be encoded.
	ErrInvalidIE = errors.New("invalid IE")
)
