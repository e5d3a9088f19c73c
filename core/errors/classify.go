package errors

import "errors"

// UnauthedErrMsg is the message the backend sends when a procedure needs a session.
// It is shared with the backend contract and compared byte-for-byte.
const UnauthedErrMsg = "Please login (10001)"

// Class is the outcome of classifying a failed operation
type Class int

const (
	// ClassOther covers every error that is not an authentication failure
	ClassOther Class = iota

	// ClassUnauthorized means the caller must sign in
	ClassUnauthorized
)

// String returns the class name used in logs
func (c Class) String() string {
	if c == ClassUnauthorized {
		return "unauthorized"
	}
	return "other"
}

// Classify reports ClassUnauthorized only for a RemoteCallError whose message equals UnauthedErrMsg.
// Generic errors carrying the same text are ClassOther.
func Classify(err error) Class {
	var rcErr *RemoteCallError
	if !errors.As(err, &rcErr) {
		return ClassOther
	}
	if rcErr.Message == UnauthedErrMsg {
		return ClassUnauthorized
	}
	return ClassOther
}
