package headers

import (
	"iter"

	"github.com/indigo-web/h1req/internal/httpchars"
	"github.com/indigo-web/h1req/internal/span"
	"github.com/indigo-web/utils/uf"
)

// Headers is a read-only view over header fields of a single request. Keys and values
// are never copied: they are resolved against the buffer the headers were parsed from.
// Keys are always lower-cased and unique, and the pairs keep their order of appearance.
//
// Linear search is used instead of a map, which proves to be more efficient on relatively
// low amount of entries, which often enough is the case.
type Headers struct {
	data  []byte
	pairs []span.Pair
}

// Get returns a value and a bool, indicating whether the value was found. The name is
// matched case-insensitively.
func (h Headers) Get(name string) (value string, found bool) {
	for _, pair := range h.pairs {
		if httpchars.EqualFold(name, pair.Key.String(h.data)) {
			return pair.Value.String(h.data), true
		}
	}

	return "", false
}

// Value returns the value corresponding to the name. Otherwise, empty string is returned
func (h Headers) Value(name string) string {
	return h.ValueOr(name, "")
}

// ValueOr returns either the value corresponding to the name or custom value, defined
// via the second parameter.
func (h Headers) ValueOr(name, or string) string {
	value, found := h.Get(name)
	if !found {
		return or
	}

	return value
}

// Has indicates, whether there's an entry of the name.
func (h Headers) Has(name string) bool {
	_, found := h.Get(name)
	return found
}

// Len returns a number of stored headers.
func (h Headers) Len() int {
	return len(h.pairs)
}

func (h Headers) Empty() bool {
	return h.Len() == 0
}

// Keys returns all the header names in order of their appearance. The returned slice
// is freshly allocated.
func (h Headers) Keys() []string {
	keys := make([]string, len(h.pairs))
	for i, pair := range h.pairs {
		keys[i] = pair.Key.String(h.data)
	}

	return keys
}

// Visit calls the visitor for every header until it returns false.
func (h Headers) Visit(visitor func(name, value string) (next bool)) {
	for _, pair := range h.pairs {
		if !visitor(pair.Key.String(h.data), pair.Value.String(h.data)) {
			return
		}
	}
}

// Iter returns an iterator over the pairs.
func (h Headers) Iter() iter.Seq2[string, string] {
	return h.Visit
}

// Unwrap reveals underlying spans. They make sense only in conjunction with the buffer
// they were produced from.
func (h Headers) Unwrap() []span.Pair {
	return h.pairs
}

// Builder accumulates header fields while the request is being scanned. The first
// occurrence of a key wins: duplicates are dropped rather than merged or overridden.
type Builder struct {
	data  []byte
	pairs []span.Pair
}

// NewBuilder returns a builder over the data. The pairs slice is used as a storage and
// may be nil.
func NewBuilder(data []byte, pairs []span.Pair) *Builder {
	return &Builder{
		data:  data,
		pairs: pairs[:0],
	}
}

// Add inserts the pair unless the key is already presented. The key must already be
// lower-cased. Returns whether the pair was inserted.
func (b *Builder) Add(key, value span.Span) (added bool) {
	name := key.Bytes(b.data)

	for _, pair := range b.pairs {
		if pair.Key.Len() == len(name) && uf.B2S(pair.Key.Bytes(b.data)) == uf.B2S(name) {
			return false
		}
	}

	b.pairs = append(b.pairs, span.Pair{
		Key:   key,
		Value: value,
	})

	return true
}

func (b *Builder) Len() int {
	return len(b.pairs)
}

// Finish returns the view over the collected headers. The builder must not be used
// afterwards, unless reset.
func (b *Builder) Finish() Headers {
	return Headers{
		data:  b.data,
		pairs: b.pairs,
	}
}

// Reset rebinds the builder to new data, reusing the storage.
func (b *Builder) Reset(data []byte, pairs []span.Pair) {
	b.data = data
	b.pairs = pairs[:0]
}
