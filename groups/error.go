// Copyright (c) 2015-2016 The btcsuite developers
// Copyright (c) 2024 The btctreap developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package groups

import (
	"fmt"
)

// ErrorCode identifies a kind of error.
type ErrorCode int

// These constants are used to identify a specific Error.
const (
	// ErrInvalidFile indicates a roster file that does not have the .csv
	// extension.
	ErrInvalidFile ErrorCode = iota

	// ErrInvalidShape indicates a roster record that does not consist of
	// exactly a name column and a registration number column.
	ErrInvalidShape

	// ErrDuplicateStudent indicates a registration number that appears more
	// than once in a roster.
	ErrDuplicateStudent

	// ErrInvalidGroupSize indicates a requested group size below one.
	ErrInvalidGroupSize

	// ErrUnknownMode indicates a grouping mode name that is not recognized.
	ErrUnknownMode

	// numErrorCodes is the maximum error code number used in tests.
	numErrorCodes
)

// Map of ErrorCode values back to their constant names for pretty printing.
var errorCodeStrings = map[ErrorCode]string{
	ErrInvalidFile:      "ErrInvalidFile",
	ErrInvalidShape:     "ErrInvalidShape",
	ErrDuplicateStudent: "ErrDuplicateStudent",
	ErrInvalidGroupSize: "ErrInvalidGroupSize",
	ErrUnknownMode:      "ErrUnknownMode",
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

// Error provides a single type for errors that can happen while building or
// grouping a roster.  The caller can use errors.Is with one of the ErrorCode
// constants, or errors.As to access the fields, to ascertain the specific
// reason for the failure.
//
// The Err field is set when the error was caused by an underlying error, such
// as a duplicate key reported by the treap.
type Error struct {
	ErrorCode   ErrorCode // Describes the kind of error
	Description string    // Human readable description of the issue
	Err         error     // Underlying error
}

// Error satisfies the error interface and prints human-readable errors.
func (e Error) Error() string {
	if e.Err != nil {
		return e.Description + ": " + e.Err.Error()
	}
	return e.Description
}

// Unwrap returns the underlying error, if any.
func (e Error) Unwrap() error {
	return e.Err
}

// Is reports whether the target is the ErrorCode of this error.
func (e Error) Is(target error) bool {
	code, ok := target.(ErrorCode)
	return ok && code == e.ErrorCode
}

// makeError creates an Error given a set of arguments.  The error code must
// be one of the error codes provided by this package.
func makeError(c ErrorCode, desc string, err error) Error {
	return Error{ErrorCode: c, Description: desc, Err: err}
}
