package requestgen

import (
	"strconv"
	"strings"

	"github.com/dchest/uniuri"
	"github.com/indigo-web/h1req/http/method"
)

type Header struct {
	Key, Value string
}

// Headers returns n headers with predictable names, the last one is always Host.
func Headers(n int) (hdrs []Header) {
	for i := 0; i < n-1; i++ {
		hdrs = append(hdrs, Header{
			Key:   "some-random-header-name-nobody-cares-about" + strconv.Itoa(i),
			Value: strings.Repeat("b", 100),
		})
	}

	return append(hdrs, Header{Key: "Host", Value: "localhost"})
}

// RandomHeaders returns n headers with random alphanumeric names and values. Names are
// long enough to never collide in practice.
func RandomHeaders(n, valueLength int) []Header {
	hdrs := make([]Header, n)
	for i := range hdrs {
		hdrs[i] = Header{
			Key:   "X-" + uniuri.NewLen(16),
			Value: uniuri.NewLen(valueLength),
		}
	}

	return hdrs
}

func HeadersBlock(hdrs []Header) (buff []byte) {
	for _, pair := range hdrs {
		buff = append(buff, pair.Key+": "+pair.Value+"\r\n"...)
	}

	return buff
}

func Generate(m method.Method, target string, hdrs []Header) (request []byte) {
	request = append(request, m.String()+" "+target+" HTTP/1.1\r\n"...)
	request = append(request, HeadersBlock(hdrs)...)

	return append(request, '\r', '\n')
}
