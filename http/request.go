package http

import (
	"github.com/indigo-web/h1req/http/headers"
	"github.com/indigo-web/h1req/http/method"
	"github.com/indigo-web/h1req/internal/span"
)

// Request represents the head of an HTTP request: its request-line and header fields.
//
// The request owns the buffer it was parsed from, and every string it returns is a
// view into that buffer, so the buffer must not be modified by anyone as long as the
// request is in use. Once constructed, the request is never mutated and therefore is
// safe for concurrent reads.
type Request struct {
	data     []byte
	method   method.Method
	target   span.Span
	headers  headers.Headers
	consumed int
}

// NewRequest binds the parsed pieces to the data they were produced from. Consumed is
// the length of the request head, including the terminating blank line.
func NewRequest(
	data []byte, m method.Method, target span.Span, hdrs headers.Headers, consumed int,
) *Request {
	return &Request{
		data:     data,
		method:   m,
		target:   target,
		headers:  hdrs,
		consumed: consumed,
	}
}

// Method returns the request method.
func (r *Request) Method() method.Method {
	return r.method
}

// Target returns the request-target exactly as it was written. It is neither decoded
// nor normalized.
func (r *Request) Target() string {
	return r.target.String(r.data)
}

// Header looks the header up by its name case-insensitively. Only the first occurrence
// of the header is accessible.
func (r *Request) Header(name string) (value string, found bool) {
	return r.headers.Get(name)
}

// Headers returns all the headers. Their names are lower-cased.
func (r *Request) Headers() headers.Headers {
	return r.headers
}

// EnumerateHeaders calls the visitor for every header in order of their appearance,
// until the visitor returns false.
func (r *Request) EnumerateHeaders(visitor func(name, value string) (next bool)) {
	r.headers.Visit(visitor)
}

// Consumed returns the number of bytes the request head occupies in the buffer.
func (r *Request) Consumed() int {
	return r.consumed
}

// Extra returns bytes following the request head. They weren't inspected at all and are
// usually the beginning of the body or of the next pipelined request.
func (r *Request) Extra() []byte {
	return r.data[r.consumed:]
}
