package errors

import "fmt"

// Kind classifies the failures the scan controller can report
type Kind string

const (
	KindPreconditionFailed Kind = "precondition_failed"
	KindAlreadyScanning    Kind = "already_scanning"
	KindNoScanInProgress   Kind = "no_scan_in_progress"
	KindOverrideInstalled  Kind = "override_installed"
	KindUnknown            Kind = "unknown"
)

// Error represents a scan controller error with kind information
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// New creates an Error with the given kind and message
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Newf creates an Error with a formatted message
func Newf(kind Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// KindOf returns the kind of err, or KindUnknown when err is not an *Error
func KindOf(err error) Kind {
	if e, ok := err.(*Error); ok {
		return e.Kind
	}
	return KindUnknown
}

// IsKind reports whether err is an *Error of the given kind
func IsKind(err error, kind Kind) bool {
	e, ok := err.(*Error)
	return ok && e.Kind == kind
}

// IsUserRecoverable reports whether the user can retry after the failure.
// Override violations are programming defects and are never recoverable.
func IsUserRecoverable(kind Kind) bool {
	switch kind {
	case KindPreconditionFailed, KindAlreadyScanning, KindNoScanInProgress:
		return true
	case KindOverrideInstalled:
		return false
	default:
		return false
	}
}
