package mime

import (
	"github.com/indigo-web/multipart/internal/strutil"
	"github.com/indigo-web/utils/strcomp"
	"golang.org/x/text/encoding/htmlindex"
)

type Charset = string

const (
	UTF8   Charset = "utf-8"
	UTF16  Charset = "utf-16"
	ASCII  Charset = "us-ascii"
	CP1251 Charset = "windows-1251"
	CP1252 Charset = "windows-1252"
	Latin1 Charset = "iso-8859-1"
	// feel free to add more widespread charsets!
)

// IsUTF8 reports whether the charset denotes UTF-8 or its subset, so no decoding is
// required. Empty charset is treated as UTF-8.
func IsUTF8(charset Charset) bool {
	switch {
	case len(charset) == 0,
		strcomp.EqualFold(charset, UTF8),
		strcomp.EqualFold(charset, "utf8"),
		strcomp.EqualFold(charset, ASCII),
		strcomp.EqualFold(charset, "ascii"):
		return true
	default:
		return false
	}
}

// Decode converts the text in the charset into UTF-8. Charset names are resolved
// as per the WHATWG Encoding standard, so aliases like latin1 or cp1251 are
// understood as well.
func Decode(charset Charset, text string) (string, error) {
	if IsUTF8(charset) {
		return text, nil
	}

	enc, err := htmlindex.Get(strutil.StripWS(charset))
	if err != nil {
		return "", err
	}

	return enc.NewDecoder().String(text)
}

// Supported reports whether Decode is able to handle the charset.
func Supported(charset Charset) bool {
	if IsUTF8(charset) {
		return true
	}

	_, err := htmlindex.Get(strutil.StripWS(charset))
	return err == nil
}
