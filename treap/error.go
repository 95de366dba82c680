// Copyright (c) 2015-2016 The btcsuite developers
// Copyright (c) 2024 The btctreap developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package treap

import (
	"fmt"
)

// ErrorCode identifies a kind of error.
type ErrorCode int

// These constants are used to identify a specific Error.
const (
	// ErrDuplicateKey indicates an attempt to insert a key that compares
	// equal to a key already stored in the treap.  The treap is not
	// modified.
	ErrDuplicateKey ErrorCode = iota

	// ErrInvalidMerge indicates an attempt to merge two treaps whose key
	// ranges interleave, that is, the maximum key of the left treap is not
	// less than the minimum key of the right treap.  Neither treap is
	// modified.
	ErrInvalidMerge

	// numErrorCodes is the maximum error code number used in tests.
	numErrorCodes
)

// Map of ErrorCode values back to their constant names for pretty printing.
var errorCodeStrings = map[ErrorCode]string{
	ErrDuplicateKey: "ErrDuplicateKey",
	ErrInvalidMerge: "ErrInvalidMerge",
}

// String returns the ErrorCode as a human-readable name.
func (e ErrorCode) String() string {
	if s := errorCodeStrings[e]; s != "" {
		return s
	}
	return fmt.Sprintf("Unknown ErrorCode (%d)", int(e))
}

// Error satisfies the error interface so an ErrorCode can be used as an
// errors.Is target.
func (e ErrorCode) Error() string {
	return e.String()
}

// Error identifies an error returned by the treap.  The caller can use
// errors.As to access the ErrorCode field, or errors.Is with one of the
// ErrorCode constants, to ascertain the specific reason for the failure.
type Error struct {
	ErrorCode   ErrorCode // Describes the kind of error
	Description string    // Human readable description of the issue
}

// Error satisfies the error interface and prints human-readable errors.
func (e Error) Error() string {
	return e.Description
}

// Is reports whether the target is the ErrorCode of this error.
func (e Error) Is(target error) bool {
	code, ok := target.(ErrorCode)
	return ok && code == e.ErrorCode
}

// makeError creates an Error given a set of arguments.
func makeError(c ErrorCode, desc string) Error {
	return Error{ErrorCode: c, Description: desc}
}
