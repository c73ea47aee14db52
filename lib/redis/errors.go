package redis

import (
	"errors"
	"fmt"
	"strings"
)

// --------------------------------------------------------------------------
// Custom Error Type
// --------------------------------------------------------------------------

// Error is the error type of the modern command surface. It wraps a return
// code (of type RetCode) and a human-readable message.
type Error struct {
	Code RetCode // The return code
	Msg  string  // The error message
}

// Error implements the error interface.
func (e *Error) Error() string {
	errorCode := ""
	switch e.Code {
	case RetCInvalidAddress:
		errorCode = "InvalidAddress"
	case RetCTooManyConnections:
		errorCode = "TooManyConnections"
	case RetCTypeError:
		errorCode = "TypeError"
	case RetCOther:
		errorCode = "Other"
	default:
		errorCode = "Unknown"
	}

	if e.Msg == "" {
		return fmt.Sprintf("RedisError (code %s)", errorCode)
	}
	return fmt.Sprintf("RedisError (code %s): %s", errorCode, e.Msg)
}

// NewError creates a new Error with the given code and message.
func NewError(code RetCode, msg string) *Error {
	return &Error{
		Code: code,
		Msg:  msg,
	}
}

// OtherError folds an arbitrary failure into the catch-all error category,
// preserving the underlying message for diagnostics.
func OtherError(err error) *Error {
	return NewError(RetCOther, err.Error())
}

// CodeOf extracts the return code from an error. Errors that are not of
// type *Error report RetCOther.
func CodeOf(err error) RetCode {
	if err == nil {
		return RetCSuccess
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return RetCOther
}

// --------------------------------------------------------------------------
// Return Codes
// --------------------------------------------------------------------------

type RetCode uint64

const (
	RetCSuccess            RetCode = iota // 0: Command executed successfully.
	RetCInvalidAddress                    // 1: Address denied by policy or failed to parse.
	RetCTooManyConnections                // 2: Connection table at capacity.
	RetCTypeError                         // 3: Stored value has the wrong type for the operation.
	RetCOther                             // 4: Any other transport or protocol failure.
)

// --------------------------------------------------------------------------
// Server Error Classification
// --------------------------------------------------------------------------

// IsWrongType reports whether an error is the store's type-mismatch reply
// (a key holding a value of the wrong kind for the requested operation).
// The store reports this as an error reply prefixed with WRONGTYPE.
func IsWrongType(err error) bool {
	if err == nil {
		return false
	}
	return strings.HasPrefix(err.Error(), "WRONGTYPE")
}
