package tools

import "errors"

// ErrorKind classifies a tool failure by the stage that produced it.
type ErrorKind string

const (
	// ErrValidation means a required argument was missing or malformed. No
	// remote call has been made when this is raised.
	ErrValidation ErrorKind = "validation"
	// ErrResolution means a channel or user reference could not be mapped to
	// a Slack ID.
	ErrResolution ErrorKind = "resolution"
	// ErrRemote means the Slack API completed the call but reported a failure
	// status; the message carries Slack's error string verbatim.
	ErrRemote ErrorKind = "remote"
	// ErrTransport covers everything else: network failures, malformed
	// responses, and unexpected errors during processing.
	ErrTransport ErrorKind = "transport"
)

// Error is a classified tool failure. The Message is user-visible; Cause, if
// set, is appended when formatting so the original failure text survives.
type Error struct {
	Kind    ErrorKind
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Cause }

// Missing returns a validation Error naming a required argument that was not
// supplied.
func Missing(arg string) *Error {
	return &Error{Kind: ErrValidation, Message: "missing required argument \"" + arg + "\""}
}

// Wrap classifies err under the given kind with a contextual message. A nil
// err returns nil.
func Wrap(kind ErrorKind, msg string, err error) *Error {
	if err == nil {
		return nil
	}
	return &Error{Kind: kind, Message: msg, Cause: err}
}

// KindOf returns the ErrorKind of err, or ErrTransport when err carries no
// classification.
func KindOf(err error) ErrorKind {
	var te *Error
	if errors.As(err, &te) {
		return te.Kind
	}
	return ErrTransport
}
