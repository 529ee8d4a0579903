package headers

import (
	"github.com/indigo-web/multipart/internal/strutil"
	"github.com/indigo-web/utils/strcomp"
)

const (
	ContentDisposition = "Content-Disposition"
	ContentType        = "Content-Type"
	TransferEncoding   = "Content-Transfer-Encoding"
)

// Is reports whether the header key equals the name ignoring the ASCII case.
func Is(key, name string) bool {
	return strcomp.EqualFold(key, name)
}

// ParseContentType splits the Content-Type value into the MIME type and the charset
// parameter, if any.
func ParseContentType(value string) (mime, charset string) {
	mime, params := strutil.CutHeader(value)

	for key, val := range strutil.WalkKV(params) {
		if len(key) == 0 {
			break
		}

		if strcomp.EqualFold(key, "charset") {
			charset = val
			break
		}
	}

	return mime, charset
}
