package status

type (
	Code   uint16
	Status string
)

// HTTP status codes a multipart body may end up with. See net/http/status.go for
// the complete list.
const (
	OK                    Code = 200 // RFC 9110, 15.3.1
	BadRequest            Code = 400 // RFC 9110, 15.5.1
	RequestTimeout        Code = 408 // RFC 9110, 15.5.9
	RequestEntityTooLarge Code = 413 // RFC 9110, 15.5.14
	UnsupportedMediaType  Code = 415 // RFC 9110, 15.5.16
	HeaderFieldsTooLarge  Code = 431 // RFC 6585, 5
	InternalServerError   Code = 500 // RFC 9110, 15.6.1
	InsufficientStorage   Code = 507 // RFC 4918, 11.5
)

// Text returns a text for the HTTP status code. It returns the empty
// string if the code is unknown.
func Text(code Code) Status {
	switch code {
	case OK:
		return "OK"
	case BadRequest:
		return "Bad Request"
	case RequestTimeout:
		return "Request Timeout"
	case RequestEntityTooLarge:
		return "Request Entity Too Large"
	case UnsupportedMediaType:
		return "Unsupported Media Type"
	case HeaderFieldsTooLarge:
		return "Request Header Fields Too Large"
	case InternalServerError:
		return "Internal Server Error"
	case InsufficientStorage:
		return "Insufficient Storage"
	default:
		return ""
	}
}
