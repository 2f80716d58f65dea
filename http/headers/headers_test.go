package headers

import (
	"strings"
	"testing"

	"github.com/indigo-web/h1req/internal/span"
	"github.com/stretchr/testify/require"
)

// build lays the pairs out in a single buffer the way they'd appear in a request.
func build(pairs ...string) (*Builder, []byte) {
	var (
		data  []byte
		spans []span.Pair
	)

	for i := 0; i < len(pairs); i += 2 {
		keyStart := len(data)
		data = append(data, strings.ToLower(pairs[i])...)
		keyEnd := len(data)
		data = append(data, ": "...)
		valueStart := len(data)
		data = append(data, pairs[i+1]...)
		spans = append(spans, span.Pair{
			Key:   span.New(keyStart, keyEnd),
			Value: span.New(valueStart, len(data)),
		})
		data = append(data, "\r\n"...)
	}

	builder := NewBuilder(data, nil)
	for _, pair := range spans {
		builder.Add(pair.Key, pair.Value)
	}

	return builder, data
}

func TestHeaders(t *testing.T) {
	builder, _ := build(
		"Hello", "world",
		"Some", "value",
		"Content-Type", "text/html",
	)
	headers := builder.Finish()

	t.Run("ValueOr_Existing", func(t *testing.T) {
		value := headers.ValueOr("Some", "this should not happen")
		require.Equal(t, "value", value)
	})

	t.Run("ValueOr_NonExisting", func(t *testing.T) {
		value := headers.ValueOr("Random", "this SHOULD happen")
		require.Equal(t, "this SHOULD happen", value)
	})

	t.Run("Value", func(t *testing.T) {
		require.Empty(t, headers.Value("Random"))
		require.Equal(t, "text/html", headers.Value("CONTENT-TYPE"))
	})

	t.Run("Get_CaseInsensitive", func(t *testing.T) {
		for _, name := range []string{"hello", "Hello", "HELLO", "hElLo"} {
			value, found := headers.Get(name)
			require.True(t, found, name)
			require.Equal(t, "world", value)
		}
	})

	t.Run("Has_Existing", func(t *testing.T) {
		require.True(t, headers.Has("Hello"))
	})

	t.Run("Has_NonExisting", func(t *testing.T) {
		require.False(t, headers.Has("Random"))
		require.False(t, headers.Has("hell"))
	})

	t.Run("Keys", func(t *testing.T) {
		require.Equal(t, []string{"hello", "some", "content-type"}, headers.Keys())
	})

	t.Run("Len", func(t *testing.T) {
		require.Equal(t, 3, headers.Len())
		require.False(t, headers.Empty())
		require.True(t, Headers{}.Empty())
	})
}

func TestBuilder(t *testing.T) {
	t.Run("first occurrence wins", func(t *testing.T) {
		builder, _ := build(
			"A", "1",
			"B", "2",
			"A", "3",
		)
		require.Equal(t, 2, builder.Len())
		headers := builder.Finish()
		require.Equal(t, "1", headers.Value("a"))
		require.Equal(t, "2", headers.Value("b"))
	})

	t.Run("keys of equal length", func(t *testing.T) {
		builder, _ := build(
			"ab", "1",
			"ba", "2",
		)
		require.Equal(t, 2, builder.Len())
	})

	t.Run("reset reuses storage", func(t *testing.T) {
		builder, _ := build("A", "1", "B", "2")
		storage := builder.Finish().Unwrap()

		data := []byte("c: 3")
		builder.Reset(data, storage)
		require.Zero(t, builder.Len())
		require.True(t, builder.Add(span.New(0, 1), span.New(3, 4)))
		headers := builder.Finish()
		require.Equal(t, "3", headers.Value("C"))
		require.Same(t, &storage[:1][0], &headers.Unwrap()[0])
	})
}

func TestVisit(t *testing.T) {
	builder, _ := build(
		"Host", "localhost",
		"Accept", "*/*",
		"Connection", "close",
	)
	headers := builder.Finish()

	t.Run("all", func(t *testing.T) {
		var visited []string
		headers.Visit(func(name, value string) bool {
			visited = append(visited, name+"="+value)
			return true
		})

		require.Equal(t, []string{"host=localhost", "accept=*/*", "connection=close"}, visited)
	})

	t.Run("early stop", func(t *testing.T) {
		var calls int
		headers.Visit(func(name, value string) bool {
			calls++
			return name != "accept"
		})

		require.Equal(t, 2, calls)
	})

	t.Run("iter", func(t *testing.T) {
		var names []string
		for name := range headers.Iter() {
			names = append(names, name)
			if name == "host" {
				break
			}
		}

		require.Equal(t, []string{"host"}, names)
	})
}
