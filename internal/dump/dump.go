package dump

import (
	"github.com/indigo-web/h1req/http"
	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Request renders the request head back into its wire form. As the protocol version
// isn't kept, HTTP/1.1 is always written. Header names appear lower-cased, in order of
// their appearance and without duplicates.
func Request(request *http.Request) []byte {
	var buff []byte

	buff = append(buff, request.Method().String()...)
	buff = append(buff, ' ')
	buff = append(buff, request.Target()...)
	buff = append(buff, " HTTP/1.1\r\n"...)

	request.EnumerateHeaders(func(name, value string) bool {
		buff = header(buff, name, value)
		return true
	})

	return append(buff, '\r', '\n')
}

func header(b []byte, key, value string) []byte {
	b = append(b, key...)
	b = append(b, ':', ' ')
	b = append(b, value...)
	return append(b, '\r', '\n')
}

type (
	jsonHeader struct {
		Name  string `json:"name"`
		Value string `json:"value"`
	}

	jsonRequest struct {
		Method   string       `json:"method"`
		Target   string       `json:"target"`
		Headers  []jsonHeader `json:"headers"`
		Consumed int          `json:"consumed"`
		Extra    int          `json:"extra"`
	}
)

// JSON renders the request as a JSON object. Headers are kept as an array in order to
// preserve their order.
func JSON(request *http.Request) ([]byte, error) {
	hdrs := make([]jsonHeader, 0, request.Headers().Len())
	for name, value := range request.Headers().Iter() {
		hdrs = append(hdrs, jsonHeader{Name: name, Value: value})
	}

	return json.Marshal(jsonRequest{
		Method:   request.Method().String(),
		Target:   request.Target(),
		Headers:  hdrs,
		Consumed: request.Consumed(),
		Extra:    len(request.Extra()),
	})
}
