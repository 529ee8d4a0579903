package strutil

import (
	"iter"
	"testing"

	"github.com/stretchr/testify/require"
)

type strpair struct {
	K, V string
}

func collect(i iter.Seq2[string, string]) (pairs []strpair) {
	for k, v := range i {
		pairs = append(pairs, strpair{k, v})
	}

	return pairs
}

func TestWalkKV(t *testing.T) {
	t.Run("single value", func(t *testing.T) {
		require.Equal(t, []strpair{{"abc", ""}}, collect(WalkKV("abc")))
	})

	t.Run("single pair", func(t *testing.T) {
		require.Equal(t, []strpair{{"abc", "cba"}}, collect(WalkKV("abc=cba")))
	})

	t.Run("multiple pairs", func(t *testing.T) {
		values := collect(WalkKV("abc=cba;hello=world;"))
		require.Equal(t, []strpair{{"abc", "cba"}, {"hello", "world"}}, values)
	})

	t.Run("codings", func(t *testing.T) {
		values := collect(WalkKV("abc=cba; hello=\"world\"; k%20ey=value%21"))
		require.Equal(t, []strpair{{"abc", "cba"}, {"hello", "world"}, {"k%20ey", "value%21"}}, values)
	})

	t.Run("quoted with separators", func(t *testing.T) {
		values := collect(WalkKV(`name="a; b"; filename="my file=1.txt"`))
		require.Equal(t, []strpair{{"name", "a; b"}, {"filename", "my file=1.txt"}}, values)
	})

	t.Run("whitespaces", func(t *testing.T) {
		values := collect(WalkKV("  a = b ;\tc=\"d\"  ; e "))
		require.Equal(t, []strpair{{"a", "b"}, {"c", "d"}, {"e", ""}}, values)
	})

	t.Run("empty value", func(t *testing.T) {
		values := collect(WalkKV(`a=;b=""`))
		require.Equal(t, []strpair{{"a", ""}, {"b", ""}}, values)
	})

	t.Run("unterminated quote", func(t *testing.T) {
		values := collect(WalkKV(`a=b; c="d`))
		require.Equal(t, []strpair{{"a", "b"}, {"", ""}}, values)
	})

	t.Run("garbage after quoted value", func(t *testing.T) {
		values := collect(WalkKV(`a="b"c`))
		require.Equal(t, []strpair{{"a", "b"}, {"", ""}}, values)
	})

	t.Run("illegal key", func(t *testing.T) {
		values := collect(WalkKV(`a b=c`))
		require.Equal(t, []strpair{{"", ""}}, values)
	})

	t.Run("early break", func(t *testing.T) {
		for key := range WalkKV("a=1;b=2;c=3") {
			require.Equal(t, "a", key)
			break
		}
	})
}
