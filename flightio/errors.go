package flightio

import "errors"

// ErrDimensionMismatch indicates a JSON crate matrix whose row count
// does not match its declared NCities, or a row whose length doesn't
// match NCities.
var ErrDimensionMismatch = errors.New("flightio: crate matrix dimensions do not match n_cities")

// ErrCargoLengthMismatch indicates a flight's cargo vector length does
// not match the instance's NCities.
var ErrCargoLengthMismatch = errors.New("flightio: flight cargo length does not match n_cities")
