package mime

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGuess(t *testing.T) {
	require.Equal(t, PNG, Guess("photo.PNG", OctetStream))
	require.Equal(t, Plain, Guess("dir/notes.txt", OctetStream))
	require.Equal(t, OctetStream, Guess("archive.unknown", OctetStream))
	require.Equal(t, OctetStream, Guess("noext", OctetStream))
}

func TestCharset(t *testing.T) {
	t.Run("utf8", func(t *testing.T) {
		for _, charset := range []string{"", "utf-8", "UTF-8", "utf8", "us-ascii"} {
			require.True(t, IsUTF8(charset), charset)
			decoded, err := Decode(charset, "привет")
			require.NoError(t, err)
			require.Equal(t, "привет", decoded)
		}
	})

	t.Run("windows-1251", func(t *testing.T) {
		decoded, err := Decode(CP1251, "\xef\xf0\xe8\xe2\xe5\xf2")
		require.NoError(t, err)
		require.Equal(t, "привет", decoded)
	})

	t.Run("latin1 alias", func(t *testing.T) {
		decoded, err := Decode("latin1", "caf\xe9")
		require.NoError(t, err)
		require.Equal(t, "café", decoded)
	})

	t.Run("unknown", func(t *testing.T) {
		require.False(t, Supported("klingon"))
		_, err := Decode("klingon", "abc")
		require.Error(t, err)
	})
}
