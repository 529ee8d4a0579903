package strutil

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHelpers(t *testing.T) {
	t.Run("strip", func(t *testing.T) {
		require.Equal(t, "a b", StripWS(" \t a b\t "))
		require.Equal(t, "", StripWS("  "))
		require.Equal(t, "a ", LStripWS(" a "))
		require.Equal(t, " a", RStripWS(" a "))
	})

	t.Run("cut header", func(t *testing.T) {
		value, params := CutHeader("multipart/form-data ;  boundary=abc")
		require.Equal(t, "multipart/form-data", value)
		require.Equal(t, "boundary=abc", params)

		value, params = CutHeader("text/plain")
		require.Equal(t, "text/plain", value)
		require.Empty(t, params)
		require.Equal(t, "charset=utf8", CutParams("text/plain; charset=utf8"))
	})

	t.Run("unquote", func(t *testing.T) {
		require.Equal(t, "abc", Unquote(`"abc"`))
		require.Equal(t, `"abc`, Unquote(`"abc`))
		require.Equal(t, `"`, Unquote(`"`))
		require.Equal(t, "", Unquote(`""`))
	})
}

func TestFold(t *testing.T) {
	require.Equal(t, 0, IndexFold("Multipart/form-data", "multipart/"))
	require.Equal(t, 21, IndexFold("multipart/form-data; BOUNDARY=x", "boundary="))
	require.Equal(t, -1, IndexFold("application/json", "multipart/"))
	require.Equal(t, -1, IndexFold("multi", "multipart/"))
	require.True(t, ContainsFold("X-MULTIPART/mixed", "multipart/"))
	require.False(t, ContainsFold("\v\t", "\r\t"))
}
