package headers

import (
	"strings"

	"github.com/indigo-web/multipart/internal/strutil"
	"github.com/indigo-web/multipart/mime"
	"github.com/indigo-web/utils/strcomp"
)

// Disposition is the parsed Content-Disposition header value of a form part.
type Disposition struct {
	// Type is the disposition type, normally form-data.
	Type     string
	Name     string
	Filename string
	// IsFile is set if any of filename or filename* parameters is presented, even
	// an empty one. Browsers send filename="" for file inputs left blank.
	IsFile bool
}

// ExtractDisposition parses the Content-Disposition value. All the parameters are
// walked, so their order doesn't matter. The extended filename* parameter takes
// precedence over the plain one. False is returned on malformed parameters.
func ExtractDisposition(value string) (d Disposition, ok bool) {
	dtype, params := strutil.CutHeader(value)
	if len(dtype) == 0 {
		return d, false
	}

	d.Type = dtype
	var extended bool

	for key, val := range strutil.WalkKV(params) {
		switch {
		case len(key) == 0:
			return d, false
		case strcomp.EqualFold(key, "name"):
			d.Name = val
		case strcomp.EqualFold(key, "filename"):
			d.IsFile = true
			if !extended {
				d.Filename = val
			}
		case strcomp.EqualFold(key, "filename*"):
			filename, valid := decodeExtValue(val)
			if !valid {
				return d, false
			}

			d.IsFile, extended = true, true
			d.Filename = filename
		}
	}

	return d, true
}

// decodeExtValue decodes an RFC 5987 ext-value, charset'language'percent-encoded.
func decodeExtValue(value string) (string, bool) {
	charset, rest, found := strings.Cut(value, "'")
	if !found {
		return "", false
	}

	_, encoded, found := strings.Cut(rest, "'")
	if !found {
		return "", false
	}

	text, ok := strutil.PercentDecode(encoded)
	if !ok {
		return "", false
	}

	text, err := mime.Decode(charset, text)
	if err != nil {
		return "", false
	}

	return text, true
}
