package requestgen

import (
	"strconv"
	"strings"
)

type Header struct {
	Key, Value string
}

type Part struct {
	Headers []Header
	Body    string
}

// Field returns a part of an ordinary form field.
func Field(name, value string) Part {
	return Part{
		Headers: []Header{
			{"Content-Disposition", `form-data; name="` + name + `"`},
		},
		Body: value,
	}
}

// File returns a part of a file form field.
func File(name, filename, contentType, content string) Part {
	return Part{
		Headers: []Header{
			{"Content-Disposition", `form-data; name="` + name + `"; filename="` + filename + `"`},
			{"Content-Type", contentType},
		},
		Body: content,
	}
}

// Fields returns n parts with bodies of the given length each.
func Fields(n, length int) []Part {
	parts := make([]Part, n)
	for i := range parts {
		parts[i] = Field("some-random-field-name-nobody-cares-about"+strconv.Itoa(i), strings.Repeat("b", length))
	}

	return parts
}

func HeadersBlock(hdrs []Header) (buff []byte) {
	for _, pair := range hdrs {
		buff = append(buff, pair.Key+": "+pair.Value+"\r\n"...)
	}

	return append(buff, '\r', '\n')
}

// Generate renders a complete multipart body delimited by the boundary.
func Generate(boundary string, parts ...Part) (body []byte) {
	for i, part := range parts {
		if i > 0 {
			body = append(body, '\r', '\n')
		}

		body = append(body, "--"+boundary+"\r\n"...)
		body = append(body, HeadersBlock(part.Headers)...)
		body = append(body, part.Body...)
	}

	return append(body, "\r\n--"+boundary+"--\r\n"...)
}
