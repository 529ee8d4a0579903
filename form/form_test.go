package form

import (
	"testing"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/require"
)

func TestForm(t *testing.T) {
	f := Form{
		{Name: "tag", Value: "a"},
		{Name: "tag", Value: "b"},
		{Name: "doc", Filename: "a.txt", IsFile: true, Size: 3, Path: "uploads/x.txt"},
	}

	t.Run("name", func(t *testing.T) {
		tag, found := f.Name("tag")
		require.True(t, found)
		require.Equal(t, "a", tag.Value)

		_, found = f.Name("missing")
		require.False(t, found)

		var values []string
		for data := range f.Names("tag") {
			values = append(values, data.Value)
		}

		require.Equal(t, []string{"a", "b"}, values)
	})

	t.Run("files", func(t *testing.T) {
		doc, found := f.File("a.txt")
		require.True(t, found)
		require.Equal(t, "doc", doc.Name)

		var n int
		for range f.Files() {
			n++
		}

		require.Equal(t, 1, n)
	})

	t.Run("json", func(t *testing.T) {
		raw, err := f.JSON()
		require.NoError(t, err)

		var decoded []map[string]any
		require.NoError(t, jsoniter.Unmarshal(raw, &decoded))
		require.Len(t, decoded, 3)
		require.Equal(t, "uploads/x.txt", decoded[2]["path"])
		require.Equal(t, true, decoded[2]["is_file"])
		require.NotContains(t, decoded[0], "path")
	})
}
