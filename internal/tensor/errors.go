package tensor

import "errors"

// Sentinel errors shared by the tensor and backend packages.
// Callers match them with errors.Is; call sites add context by wrapping.
var (
	// ErrIndexOutOfRange is returned when a normalized axis or coordinate is outside the array rank or extent.
	ErrIndexOutOfRange = errors.New("tensor: index out of range")

	// ErrIncorrectShape is returned when a caller-supplied output buffer has the wrong shape.
	ErrIncorrectShape = errors.New("tensor: incorrect shape")

	// ErrInvalidShape is returned for negative dimensions, ragged input or element count mismatches.
	ErrInvalidShape = errors.New("tensor: invalid shape")

	// ErrUnsupportedType is returned when a dtype (or source/result pair) is outside the supported set.
	ErrUnsupportedType = errors.New("tensor: unsupported data type")

	// ErrDTypeMismatch is returned when an explicit result dtype disagrees with the output buffer dtype.
	ErrDTypeMismatch = errors.New("tensor: data type mismatch")

	// ErrInvalidDDOF is returned when count - ddof leaves no positive divisor.
	ErrInvalidDDOF = errors.New("tensor: degrees of freedom leave no positive divisor")

	// ErrEmptyReduction is returned by statistics that are undefined over zero elements.
	ErrEmptyReduction = errors.New("tensor: statistic of an empty array")

	// ErrInternalInvariant marks a broken internal invariant. It is raised with panic, never returned.
	ErrInternalInvariant = errors.New("tensor: internal invariant violated")
)
