package status

import "errors"

type HTTPError struct {
	Message string
	Code    Code
}

func NewError(code Code, message string) error {
	return HTTPError{
		Code:    code,
		Message: message,
	}
}

func (h HTTPError) Error() string {
	return h.Message
}

// CodeOf returns the status code the error must be answered with. Errors not
// originating from this package are considered internal server errors.
func CodeOf(err error) Code {
	if err == nil {
		return OK
	}

	var httpErr HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.Code
	}

	return InternalServerError
}

var (
	ErrBadRequest           = NewError(BadRequest, "bad request")
	ErrMalformedMultipart   = NewError(BadRequest, "malformed multipart body")
	ErrTruncatedMultipart   = NewError(BadRequest, "multipart body ended before the closing boundary")
	ErrMissingBoundary      = NewError(BadRequest, "multipart boundary is missing")
	ErrMalformedDisposition = NewError(BadRequest, "malformed Content-Disposition header")
	ErrUnnamedPart          = NewError(BadRequest, "form part has no name")
	ErrBadChunk             = NewError(BadRequest, "malformed chunk-encoded data")
	ErrRequestTimeout       = NewError(RequestTimeout, "request timeout")
	ErrBodyTooLarge         = NewError(RequestEntityTooLarge, "request body is too large")
	ErrFieldTooLarge        = NewError(RequestEntityTooLarge, "form field is too large")
	ErrFileTooLarge         = NewError(RequestEntityTooLarge, "form file is too large")
	ErrTooManyParts         = NewError(RequestEntityTooLarge, "too many form parts")
	ErrNotMultipart         = NewError(UnsupportedMediaType, "content type is not multipart")
	ErrUnsupportedEncoding  = NewError(UnsupportedMediaType, "charset is not supported")
	ErrHeaderFieldsTooLarge = NewError(HeaderFieldsTooLarge, "too large part headers section")
	ErrTooManyHeaders       = NewError(HeaderFieldsTooLarge, "too many part headers")
	ErrInternalServerError  = NewError(InternalServerError, "internal server error")
	ErrInsufficientStorage  = NewError(InsufficientStorage, "failed to store the uploaded file")
)
