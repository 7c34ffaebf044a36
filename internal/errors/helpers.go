package errors

import (
	"errors"
)

// As is a wrapper around errors.As that works with our Error type
func As(err error, target **Error) bool {
	return errors.As(err, target)
}

// GetCode extracts the error code from an error. Plain errors are CodeInternal.
func GetCode(err error) Code {
	if err == nil {
		return CodeOK
	}

	var customErr *Error
	if errors.As(err, &customErr) {
		return customErr.Code
	}

	return CodeInternal
}

// GetMessage extracts the user-facing message from an error
func GetMessage(err error) string {
	if err == nil {
		return ""
	}

	var customErr *Error
	if errors.As(err, &customErr) {
		return customErr.Message
	}

	return err.Error()
}

func hasCode(err error, code Code) bool {
	return err != nil && GetCode(err) == code
}

// IsNotFound checks if an error is a not found error
func IsNotFound(err error) bool { return hasCode(err, CodeNotFound) }

// IsInvalidArgument checks if an error is an invalid argument error
func IsInvalidArgument(err error) bool { return hasCode(err, CodeInvalidArgument) }

// IsAlreadyExists checks if an error is an already exists error
func IsAlreadyExists(err error) bool { return hasCode(err, CodeAlreadyExists) }

// IsInternal checks if an error is an internal error
func IsInternal(err error) bool { return hasCode(err, CodeInternal) }

// IsUnauthenticated reports a rejected result signature
func IsUnauthenticated(err error) bool { return hasCode(err, CodeUnauthenticated) }

// IsFailedPrecondition checks if an error is a failed precondition error
func IsFailedPrecondition(err error) bool { return hasCode(err, CodeFailedPrecondition) }

// IsAborted reports a nonce mismatch or a contended settle
func IsAborted(err error) bool { return hasCode(err, CodeAborted) }

// IsOutOfRange checks if an error is an out of range error
func IsOutOfRange(err error) bool { return hasCode(err, CodeOutOfRange) }
