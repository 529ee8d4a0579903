package strutil

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPercentDecode(t *testing.T) {
	t.Run("base", func(t *testing.T) {
		res, ok := PercentDecode("%61")
		require.True(t, ok)
		require.Equal(t, "a", res)

		for i, tc := range []string{"abc", "%61bc", "a%62c", "ab%63", "%61%62%63"} {
			res, ok = PercentDecode(tc)
			require.True(t, ok, i)
			require.Equal(t, "abc", res, i)
		}
	})

	t.Run("multibyte", func(t *testing.T) {
		res, ok := PercentDecode("%D1%84%d0%b0%D0%B9%D0%BB.txt")
		require.True(t, ok)
		require.Equal(t, "файл.txt", res)
	})

	t.Run("unsafe char normalization", func(t *testing.T) {
		res, ok := PercentDecode("..%2F..%2fetc%5Cpasswd%00")
		require.True(t, ok)
		require.Equal(t, "..%2f..%2fetc%5cpasswd%00", res)
	})

	t.Run("malformed", func(t *testing.T) {
		for _, tc := range []string{"%", "%6", "a%zz", "%g1"} {
			_, ok := PercentDecode(tc)
			require.False(t, ok, tc)
		}
	})
}
