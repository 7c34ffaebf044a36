package errors

import "errors"

// MetaReason is the metadata key holding the machine-readable rejection reason.
const MetaReason = "reason"

// ReasonInvalidFields is the reason of every error built by a ValidationBuilder
const ReasonInvalidFields = "INVALID_FIELDS"

// WithReason tags the error with a domain reason (for example OUT_OF_BOUNDS)
func (e *Error) WithReason(reason string) *Error {
	return e.WithMeta(MetaReason, reason)
}

// Reason returns the domain reason of the error, or ""
func (e *Error) Reason() string {
	if e == nil {
		return ""
	}
	reason, _ := e.Meta[MetaReason].(string)
	return reason
}

// Reasoned creates an error with the given code, reason and message
func Reasoned(code Code, reason, message string) *Error {
	return New(code, message).WithReason(reason)
}

// Reasonedf creates an error with the given code, reason and formatted message
func Reasonedf(code Code, reason, format string, args ...interface{}) *Error {
	return Newf(code, format, args...).WithReason(reason)
}

// GetReason extracts the domain reason from an error, or "" when none is set
func GetReason(err error) string {
	var customErr *Error
	if !errors.As(err, &customErr) {
		return ""
	}
	return customErr.Reason()
}

// HasReason reports whether err carries the given domain reason
func HasReason(err error, reason string) bool {
	return err != nil && GetReason(err) == reason
}
