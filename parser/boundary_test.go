package parser

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBoundary(t *testing.T) {
	t.Run("sequence and index", func(t *testing.T) {
		b := newBoundary("AaZ")
		require.Equal(t, "\r\n--AaZ", string(b.seq))
		require.Equal(t, len(b.seq), b.len())

		for c := 0; c < 256; c++ {
			switch byte(c) {
			case '\r', '\n', '-', 'A', 'a', 'Z':
				require.True(t, b.contains(byte(c)), "%q", c)
			default:
				require.False(t, b.contains(byte(c)), "%q", c)
			}
		}
	})

	t.Run("lookbehind", func(t *testing.T) {
		b := newBoundary("token")
		require.Len(t, b.lookbehind, len("\r\n--token")+lookbehindSlack)
	})

	t.Run("empty token", func(t *testing.T) {
		b := newBoundary("")
		require.Equal(t, "\r\n--", string(b.seq))
	})
}
