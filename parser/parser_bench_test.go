package parser

import (
	"strings"
	"testing"

	"github.com/indigo-web/multipart/internal/requestgen"
)

func BenchmarkParser(b *testing.B) {
	const boundary = "----WebKitFormBoundary7MA4YWxkTrZu0gW"
	parser := New(NopHandler{})

	b.Run("5 small fields", func(b *testing.B) {
		data := requestgen.Generate(boundary, requestgen.Fields(5, 100)...)
		b.SetBytes(int64(len(data)))
		b.ReportAllocs()
		b.ResetTimer()

		for i := 0; i < b.N; i++ {
			parser.Configure(boundary)
			_ = parser.Feed(data)
		}
	})

	b.Run("1mb file", func(b *testing.B) {
		data := requestgen.Generate(boundary, requestgen.File(
			"file", "a.bin", "application/octet-stream", strings.Repeat("abcdefgh", 128*1024),
		))
		b.SetBytes(int64(len(data)))
		b.ReportAllocs()
		b.ResetTimer()

		for i := 0; i < b.N; i++ {
			parser.Configure(boundary)
			_ = parser.Feed(data)
		}
	})

	b.Run("1mb file of boundary chars in 4kb chunks", func(b *testing.B) {
		data := requestgen.Generate(boundary, requestgen.File(
			"file", "a.bin", "application/octet-stream", strings.Repeat("\r\n-WebKit", 128*1024),
		))
		b.SetBytes(int64(len(data)))
		b.ReportAllocs()
		b.ResetTimer()

		for i := 0; i < b.N; i++ {
			parser.Configure(boundary)
			for chunk := data; len(chunk) > 0; {
				n := min(len(chunk), 4096)
				_ = parser.Feed(chunk[:n])
				chunk = chunk[n:]
			}
		}
	})
}
