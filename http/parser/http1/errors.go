package http1

import (
	"errors"
	"fmt"

	"github.com/indigo-web/h1req/http/status"
)

// Kind classifies a parsing failure. Kinds are errors themselves, so errors.Is(err, InvalidURL)
// reports whether err is a failure of that kind.
type Kind uint8

const (
	InvalidMethod Kind = iota + 1
	InvalidURL
	InvalidVersion
	InvalidLineEnding
	InvalidHeaderName
	InvalidHeaderDelimiter
	InvalidHeaderValue
	IncompleteMessage
	TooManyHeaders
)

var kindMessages = [...]string{
	InvalidMethod:          "invalid method",
	InvalidURL:             "invalid url",
	InvalidVersion:         "invalid protocol version",
	InvalidLineEnding:      "invalid line ending",
	InvalidHeaderName:      "invalid header name",
	InvalidHeaderDelimiter: "invalid header delimiter",
	InvalidHeaderValue:     "invalid header value",
	IncompleteMessage:      "incomplete message",
	TooManyHeaders:         "too many headers",
}

func (k Kind) String() string {
	if k == 0 || int(k) >= len(kindMessages) {
		return "unknown error"
	}

	return kindMessages[k]
}

func (k Kind) Error() string {
	return k.String()
}

// Code returns the status a server should respond with to a request failed with the kind.
func (k Kind) Code() status.Code {
	switch k {
	case InvalidMethod:
		return status.NotImplemented
	case TooManyHeaders:
		return status.RequestHeaderFieldsTooLarge
	default:
		return status.BadRequest
	}
}

// Error is returned by the parser. Offset points at the offending byte, or at the end of
// the data for IncompleteMessage.
type Error struct {
	Kind   Kind
	Offset int
}

func newError(kind Kind, offset int) *Error {
	return &Error{
		Kind:   kind,
		Offset: offset,
	}
}

func (e *Error) Error() string {
	return fmt.Sprintf("http1: %s at offset %d", e.Kind, e.Offset)
}

func (e *Error) Unwrap() error {
	return e.Kind
}

func (e *Error) Code() status.Code {
	return e.Kind.Code()
}

// KindOf extracts the kind of the parsing error. Zero is returned if err isn't one.
func KindOf(err error) Kind {
	var perr *Error
	if errors.As(err, &perr) {
		return perr.Kind
	}

	var kind Kind
	if errors.As(err, &kind) {
		return kind
	}

	return 0
}
