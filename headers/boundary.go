package headers

import (
	"errors"
	"strings"

	"github.com/indigo-web/multipart/internal/strutil"
	"github.com/indigo-web/utils/strcomp"
)

var (
	ErrNotMultipart = errors.New("content type is not multipart")
	ErrNoBoundary   = errors.New("no boundary in multipart content type")
)

// MaxBoundaryLen is the boundary token length limit as per RFC 2046, 5.1.1.
const MaxBoundaryLen = 70

// ExtractBoundary returns the boundary token out of the Content-Type header value.
// Both the multipart/ marker and the parameter name are matched case-insensitively.
// A quoted token is unquoted.
func ExtractBoundary(contentType string) (string, error) {
	mp := strutil.IndexFold(contentType, "multipart/")
	if mp == -1 {
		return "", ErrNotMultipart
	}

	rest := contentType[mp+len("multipart/"):]
	sep := strings.IndexByte(rest, ';')
	if sep == -1 {
		return "", ErrNoBoundary
	}

	var boundary string

	for key, value := range strutil.WalkKV(rest[sep+1:]) {
		if len(key) == 0 {
			// parameters are broken, yet the boundary might already be found
			break
		}

		if strcomp.EqualFold(key, "boundary") {
			boundary = value
			break
		}
	}

	if len(boundary) == 0 || len(boundary) > MaxBoundaryLen {
		return "", ErrNoBoundary
	}

	return boundary, nil
}
