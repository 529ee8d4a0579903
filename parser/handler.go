package parser

// Handler receives parsing events in the order they occur in the stream. For every
// part that is: OnPartBegin, zero or more OnHeaderField/OnHeaderValue/OnHeaderEnd,
// OnHeadersEnd, zero or more OnPartData and OnPartEnd. OnEnd follows the last part.
//
// A single header field, header value or body run may be delivered in several
// calls when it spans multiple fed buffers. The passed slices are borrowed from the
// buffer being fed and must not be retained after the call returns.
//
// Returning a non-nil error stops the parser: it enters the error state and Err()
// reports the returned error.
type Handler interface {
	OnPartBegin() error
	OnHeaderField(data []byte) error
	OnHeaderValue(data []byte) error
	OnHeaderEnd() error
	OnHeadersEnd() error
	OnPartData(data []byte) error
	OnPartEnd() error
	OnEnd() error
}

// NopHandler ignores every event. Embed it in order to implement only the methods
// of interest.
type NopHandler struct{}

func (NopHandler) OnPartBegin() error { return nil }
func (NopHandler) OnHeaderField([]byte) error { return nil }
func (NopHandler) OnHeaderValue([]byte) error { return nil }
func (NopHandler) OnHeaderEnd() error { return nil }
func (NopHandler) OnHeadersEnd() error { return nil }
func (NopHandler) OnPartData([]byte) error { return nil }
func (NopHandler) OnPartEnd() error { return nil }
func (NopHandler) OnEnd() error { return nil }
