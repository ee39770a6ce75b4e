package curve

import "errors"

var (
	// ErrUnknownCurve is returned when an identifier is not registered.
	ErrUnknownCurve = errors.New("unknown curve")

	// ErrInvalidPoint is returned when a public key body is not a valid point.
	ErrInvalidPoint = errors.New("invalid point")

	// ErrInvalidScalar is returned when a secret key body is out of range or
	// has the wrong size.
	ErrInvalidScalar = errors.New("invalid scalar")

	// ErrInvalidTag is returned when an encapsulation tag cannot be decoded
	// as a point on the curve.
	ErrInvalidTag = errors.New("invalid encapsulation tag")

	// ErrInvalidCurveID is returned when registering a curve whose identifier
	// does not have IDLength characters.
	ErrInvalidCurveID = errors.New("invalid curve identifier")

	// ErrDuplicateCurve is returned when registering an identifier twice.
	ErrDuplicateCurve = errors.New("curve already registered")
)
