package status

import "strconv"

type (
	Code   uint16
	Status string
)

// Status codes a server answers with when it refuses to process a request head.
// See: https://www.iana.org/assignments/http-status-codes/http-status-codes.xhtml
const (
	BadRequest                  Code = 400 // RFC 9110, 15.5.1
	RequestHeaderFieldsTooLarge Code = 431 // RFC 6585, 5
	NotImplemented              Code = 501 // RFC 9110, 15.6.2
)

// KnownCodes lists every code of the package.
var KnownCodes = []Code{BadRequest, RequestHeaderFieldsTooLarge, NotImplemented}

// Text returns a text for the HTTP status code. It returns the empty
// string if the code is unknown.
func Text(code Code) Status {
	switch code {
	case BadRequest:
		return "Bad Request"
	case RequestHeaderFieldsTooLarge:
		return "Request Header Fields Too Large"
	case NotImplemented:
		return "Not Implemented"
	default:
		return ""
	}
}

// StringCode returns the code as a decimal string.
func StringCode(code Code) string {
	return strconv.Itoa(int(code))
}
