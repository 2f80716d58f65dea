package span

import "github.com/indigo-web/utils/uf"

// Span is a half-open [Start, End) range of a buffer. Spans are resolved against the
// buffer they were produced from and never against any other.
type Span struct {
	Start, End int
}

func New(start, end int) Span {
	return Span{Start: start, End: end}
}

func (s Span) Len() int {
	return s.End - s.Start
}

func (s Span) Bytes(data []byte) []byte {
	return data[s.Start:s.End:s.End]
}

// String returns a zero-copy string view over the span. The string is only valid as long
// as the underlying bytes stay untouched.
func (s Span) String(data []byte) string {
	return uf.B2S(data[s.Start:s.End])
}

// Pair is a header field: both key and value point into the same buffer.
type Pair struct {
	Key, Value Span
}
