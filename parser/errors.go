package parser

// Kind classifies parser failures.
type Kind uint8

const (
	Uninitialized Kind = iota + 1
	MalformedOpeningBoundary
	MalformedHeaderName
	MalformedHeaderTermination
	InternalBoundsViolation
	UnexpectedState
)

// ParseError is a terminal parser failure. Errors of the same Kind match each other
// via errors.Is, so the detailed variants can be checked against the sentinels below.
type ParseError struct {
	Message string
	Kind    Kind
}

func newError(kind Kind, message string) error {
	return ParseError{
		Kind:    kind,
		Message: message,
	}
}

func (p ParseError) Error() string {
	return p.Message
}

func (p ParseError) Is(target error) bool {
	t, ok := target.(ParseError)
	return ok && t.Kind == p.Kind
}

var (
	ErrUninitialized              = newError(Uninitialized, "parser uninitialized")
	ErrMalformedOpeningBoundary   = newError(MalformedOpeningBoundary, "malformed boundary")
	ErrMalformedHeaderName        = newError(MalformedHeaderName, "malformed header name")
	ErrMalformedHeaderTermination = newError(MalformedHeaderTermination, "malformed header termination")
	ErrInternalBoundsViolation    = newError(InternalBoundsViolation, "internal bounds violation")
	ErrUnexpectedState            = newError(UnexpectedState, "unexpected parser state")
)

var (
	errBoundaryMismatch = newError(MalformedOpeningBoundary, "malformed boundary: found different boundary data than the given one")
	errBoundaryCR       = newError(MalformedOpeningBoundary, "malformed boundary: expected CR after boundary")
	errBoundaryLF       = newError(MalformedOpeningBoundary, "malformed boundary: expected LF after boundary CR")
	errEmptyHeaderName  = newError(MalformedHeaderName, "malformed header name: empty field name")
	errHeaderNameChar   = newError(MalformedHeaderName, "malformed header name: illegal character")
	errHeaderNoColon    = newError(MalformedHeaderName, "malformed header name: no colon before line end")
	errHeaderValueLF    = newError(MalformedHeaderTermination, "malformed header value: LF expected after CR")
	errHeadersEndLF     = newError(MalformedHeaderTermination, "malformed header ending: LF expected after CR")
	errLookbehind       = newError(InternalBoundsViolation, "internal bounds: match index overflows lookbehind buffer")
)
