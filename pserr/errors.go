// Package pserr defines the typed precondition errors returned by this
// module, following the same sentinel-plus-wrapping style
// github.com/drand/drand/chain/errors uses for its own error values:
// simple conditions get a package-level sentinel, parameterized ones wrap
// a sentinel with fmt.Errorf("%w: ...") so callers can still errors.Is it.
//
// Per the verification failure model, these are reserved for structural
// / precondition failures (wrong lengths, missing data, empty inputs).
// A cryptographically invalid but well-formed input (bad signature, bad
// proof) is reported as a plain `false` return, never one of these.
package pserr

import (
	"errors"
	"fmt"
)

// Sentinels usable with errors.Is, independent of the parameters that
// produced them.
var (
	ErrUnsupportedNoOfMessages   = errors.New("unsupported number of messages")
	ErrUnequalNoOfBasesExponents = errors.New("unequal number of bases and exponents")
	ErrIncompatibleVerkeys       = errors.New("incompatible verification keys for aggregation")
	ErrIncompatibleSigs          = errors.New("incompatible signatures for aggregation")
	ErrGeneral                   = errors.New("general error")
	ErrRevealedIndexOutOfRange   = errors.New("revealed message index out of range")
	ErrRevealedIndicesMismatch   = errors.New("revealed message set does not match proof's revealed indices")
	ErrBlindingCountMismatch     = errors.New("number of supplied blindings does not match number of hidden messages")
)

// UnsupportedNoOfMessages reports a verkey/sigkey whose message-vector
// length does not match the number of messages the caller supplied.
func UnsupportedNoOfMessages(expected, given int) error {
	return fmt.Errorf("%w: verkey/sigkey supports %d messages, %d given", ErrUnsupportedNoOfMessages, expected, given)
}

// UnequalNoOfBasesExponents reports a base/exponent length mismatch in an
// MSM or Schnorr commitment computation.
func UnequalNoOfBasesExponents(bases, exponents int) error {
	return fmt.Errorf("%w: %d bases, %d exponents", ErrUnequalNoOfBasesExponents, bases, exponents)
}

// IncompatibleVerkeysForAggregation reports verkeys with differing Y_tilde
// lengths being aggregated together.
func IncompatibleVerkeysForAggregation() error {
	return ErrIncompatibleVerkeys
}

// IncompatibleSigsForAggregation reports signatures with mismatched
// sigma_1 (or m') being aggregated together.
func IncompatibleSigsForAggregation() error {
	return ErrIncompatibleSigs
}

// General wraps a caller-supplied message, mirroring the Rust source's
// catch-all GeneralError{msg}.
func General(msg string) error {
	return fmt.Errorf("%w: %s", ErrGeneral, msg)
}

// RevealedIndexOutOfRange reports a revealed-message index that falls
// outside the signable range (or names the disallowed final index in the
// 2018 scheme, which carries m').
func RevealedIndexOutOfRange(index, limit int) error {
	return fmt.Errorf("%w: index %d, valid range is [0, %d)", ErrRevealedIndexOutOfRange, index, limit)
}

// RevealedIndicesMismatch reports that the revealed-message map supplied
// to verification does not have exactly the key set used to derive the
// challenge transcript.
func RevealedIndicesMismatch() error {
	return ErrRevealedIndicesMismatch
}

// BlindingCountMismatch reports caller-supplied blindings whose count does
// not match the number of hidden (non-revealed) user messages.
func BlindingCountMismatch(expected, given int) error {
	return fmt.Errorf("%w: expected %d, got %d", ErrBlindingCountMismatch, expected, given)
}
