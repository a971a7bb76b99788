package sogou

import (
	"errors"
	"fmt"
)

// ConfigurationError reports missing credentials at construction time.
type ConfigurationError struct {
	Field string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("sogou: %s cannot be empty", e.Field)
}

// ValidationError reports bad input detected before any network call.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("sogou: invalid %s: %s", e.Field, e.Reason)
}

// TransportError reports a failed HTTP exchange: either the request never
// completed (Err set) or the server answered with a non-2xx status.
type TransportError struct {
	StatusCode int
	Err        error
}

func (e *TransportError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("sogou: translation request failed: %v", e.Err)
	}
	return fmt.Sprintf("sogou: translation request is not successful: status %d", e.StatusCode)
}

func (e *TransportError) Unwrap() error { return e.Err }

// ParseError reports a response body that could not be decoded.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("sogou: malformed response: %v", e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// RemoteServiceError is a failure reported by the service with a known code.
// Error returns the table message unchanged.
type RemoteServiceError struct {
	Code    string
	Message string
}

func (e *RemoteServiceError) Error() string {
	return e.Message
}

// UnknownRemoteError is a failure reported by the service with a code that
// is not in the error table.
type UnknownRemoteError struct {
	Code string
}

func (e *UnknownRemoteError) Error() string {
	return fmt.Sprintf("Translate API: unrecognized error code %s", e.Code)
}

// Outcome labels used in logs, metrics and Lambda responses.
const (
	OutcomeOK            = "ok"
	OutcomeConfiguration = "configuration"
	OutcomeValidation    = "validation"
	OutcomeTransport     = "transport"
	OutcomeParse         = "parse"
	OutcomeRemote        = "remote"
	OutcomeUnknownRemote = "unknown_remote"
	OutcomeError         = "error"
)

// Outcome classifies err into one of the Outcome labels.
func Outcome(err error) string {
	var (
		cfgErr     *ConfigurationError
		valErr     *ValidationError
		trErr      *TransportError
		parseErr   *ParseError
		remoteErr  *RemoteServiceError
		unknownErr *UnknownRemoteError
	)
	switch {
	case err == nil:
		return OutcomeOK
	case errors.As(err, &cfgErr):
		return OutcomeConfiguration
	case errors.As(err, &valErr):
		return OutcomeValidation
	case errors.As(err, &remoteErr):
		return OutcomeRemote
	case errors.As(err, &unknownErr):
		return OutcomeUnknownRemote
	case errors.As(err, &parseErr):
		return OutcomeParse
	case errors.As(err, &trErr):
		return OutcomeTransport
	default:
		return OutcomeError
	}
}

// RemoteCode returns the service error code carried by err, if any.
func RemoteCode(err error) (string, bool) {
	var remoteErr *RemoteServiceError
	if errors.As(err, &remoteErr) {
		return remoteErr.Code, true
	}
	var unknownErr *UnknownRemoteError
	if errors.As(err, &unknownErr) {
		return unknownErr.Code, true
	}
	return "", false
}
