package method

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func BenchmarkMethod(b *testing.B) {
	var parsed Method

	for i := Unknown; i <= Count; i++ {
		b.Run(i.String(), func(b *testing.B) {
			m := i.String()
			b.SetBytes(int64(len(m)))
			b.ResetTimer()

			for j := 0; j < b.N; j++ {
				parsed = Parse(m)
			}
		})
	}

	keepalive(parsed)
}

func keepalive(Method) {}

func TestMethod(t *testing.T) {
	for _, method := range List {
		assert.Equal(t, method.String(), Parse(method.String()).String())
	}

	require.Len(t, List, int(Count))
}

func TestParse(t *testing.T) {
	t.Run("case insensitive", func(t *testing.T) {
		for _, method := range List {
			assert.Equal(t, method, Parse(strings.ToLower(method.String())))
		}

		assert.Equal(t, PATCH, Parse("pAtCh"))
	})

	t.Run("unknown", func(t *testing.T) {
		for _, str := range []string{"", "G", "GE", "GETX", "FOO", "PUTT", "POS", "GET ", "1GET"} {
			assert.Equal(t, Unknown, Parse(str), str)
		}
	})

	t.Run("string", func(t *testing.T) {
		assert.Equal(t, "Unknown", Unknown.String())
		assert.Equal(t, "Unknown", Method(200).String())
	})
}

func TestStep(t *testing.T) {
	t.Run("fails at the first wrong character", func(t *testing.T) {
		node, ok := Step(Root, 'G')
		require.True(t, ok)
		node, ok = Step(node, 'E')
		require.True(t, ok)
		_, ok = Step(node, 'X')
		require.False(t, ok)
	})

	t.Run("unknown first character", func(t *testing.T) {
		for _, c := range []byte("FfZz019 @[`{\r\n") {
			_, ok := Step(Root, c)
			require.False(t, ok, "%q", c)
		}
	})

	t.Run("prefix is not a method", func(t *testing.T) {
		node, ok := Step(Root, 'p')
		require.True(t, ok)
		require.Equal(t, Unknown, node.Method())
		node, ok = Step(node, 'u')
		require.True(t, ok)
		require.Equal(t, Unknown, node.Method())
		node, ok = Step(node, 't')
		require.True(t, ok)
		require.Equal(t, PUT, node.Method())
	})
}
