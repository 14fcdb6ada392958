package util

import "errors"

// ErrInvalidArgument is the sentinel wrapped by every operation which rejects
// its input: missing or empty collections, unknown representatives, zero where
// a unit is required, division by the additive identity.  Callers test for it
// with errors.Is.
var ErrInvalidArgument = errors.New("invalid argument")
