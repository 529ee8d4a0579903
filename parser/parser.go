package parser

import (
	"bytes"
)

type runKind uint8

const (
	headerFieldRun runKind = iota
	headerValueRun
	partDataRun
)

// run is a pending header field, header value or part data piece. It is either closed
// or open since an offset into the buffer being fed. A run outliving the buffer is
// flushed and continues from the offset 0 of the next one.
type run struct {
	start int
	open  bool
	// flushed is set when a part of the run was already reported
	flushed bool
	kind    runKind
}

func (r *run) mark(at int) {
	r.start, r.open, r.flushed = at, true, false
}

// Parser is a stream-based multipart parser. It is fed with arbitrarily fragmented
// chunks of the body and reports parts, their headers and their data via the
// Handler as soon as they're available, never buffering the body itself.
//
// Parser must not be used concurrently. A new parser isn't configured and refuses
// any input until Configure is called.
type Parser struct {
	handler  Handler
	err      error
	boundary boundary
	field    run
	value    run
	data     run
	index    int
	state    state
	flags    flags
}

func New(handler Handler) *Parser {
	p := &Parser{
		handler: handler,
	}
	p.Reset()

	return p
}

// Reset returns the parser into the unconfigured state.
func (p *Parser) Reset() {
	p.boundary = boundary{}
	p.err = ErrUninitialized
	p.state = eError
	p.flags = 0
	p.index = 0
	p.field = run{kind: headerFieldRun}
	p.value = run{kind: headerValueRun}
	p.data = run{kind: partDataRun}
}

// Configure sets the boundary token (as it appears in the Content-Type header, without
// leading hyphens) and prepares the parser for a new message. Any progress is discarded.
func (p *Parser) Configure(token string) {
	p.Reset()
	p.boundary = newBoundary(token)
	p.err = nil
	p.state = eStart
}

// Feed consumes the data and returns how many bytes were consumed. A return value
// less than len(data) means either an error (see Err) or the end of the message
// (see Done). Once the parser is stopped, Feed always returns 0.
func (p *Parser) Feed(data []byte) int {
	if p.Stopped() || len(data) == 0 {
		return 0
	}

	seqlen := p.boundary.len()

	for i := 0; i < len(data); i++ {
		c := data[i]

		switch p.state {
		case eStart:
			p.index = 0
			p.state = eStartBoundary
			fallthrough
		case eStartBoundary:
			// the very first boundary goes without leading CRLF
			switch p.index {
			case seqlen - 2:
				if c != '\r' {
					return p.fail(i, errBoundaryCR)
				}

				p.index++
			case seqlen - 1:
				if c != '\n' {
					return p.fail(i, errBoundaryLF)
				}

				p.index = 0
				p.state = eHeaderFieldStart
				if err := p.handler.OnPartBegin(); err != nil {
					return p.fail(i, err)
				}
			default:
				if c != p.boundary.seq[p.index+2] {
					return p.fail(i, errBoundaryMismatch)
				}

				p.index++
			}
		case eHeaderFieldStart:
			p.state = eHeaderField
			p.field.mark(i)
			p.index = 0
			fallthrough
		case eHeaderField:
			switch c {
			case '\r':
				if p.index > 0 {
					return p.fail(i, errHeaderNoColon)
				}

				p.field.open = false
				p.state = eHeadersAlmostDone
			case ':':
				if p.index == 0 {
					return p.fail(i, errEmptyHeaderName)
				}

				if err := p.close(&p.field, data, i, false); err != nil {
					return p.fail(i, err)
				}

				p.state = eHeaderValueStart
			default:
				if !isHeaderFieldChar(c) {
					return p.fail(i, errHeaderNameChar)
				}

				p.index++
			}
		case eHeaderValueStart:
			if c == ' ' || c == '\t' {
				break
			}

			p.value.mark(i)
			p.state = eHeaderValue
			fallthrough
		case eHeaderValue:
			if c != '\r' {
				cr := bytes.IndexByte(data[i+1:], '\r')
				if cr == -1 {
					i = len(data)
					break
				}

				i += cr + 1
			}

			if err := p.close(&p.value, data, i, true); err != nil {
				return p.fail(i, err)
			}

			p.state = eHeaderValueAlmostDone
			if err := p.handler.OnHeaderEnd(); err != nil {
				return p.fail(i, err)
			}
		case eHeaderValueAlmostDone:
			if c != '\n' {
				return p.fail(i, errHeaderValueLF)
			}

			p.state = eHeaderFieldStart
		case eHeadersAlmostDone:
			if c != '\n' {
				return p.fail(i, errHeadersEndLF)
			}

			p.state = ePartDataStart
			if err := p.handler.OnHeadersEnd(); err != nil {
				return p.fail(i, err)
			}
		case ePartDataStart:
			p.state = ePartData
			p.data.mark(i)
			fallthrough
		case ePartData:
			var err error
			if i, err = p.partData(data, i); err != nil {
				return p.fail(i, err)
			}
		case eEnd:
			// tolerate a single CRLF right after the closing delimiter
			if p.index < len("\r\n") && c == "\r\n"[p.index] {
				p.index++
				break
			}

			return i
		default:
			return p.fail(i, ErrUnexpectedState)
		}
	}

	for _, r := range [...]*run{&p.field, &p.value, &p.data} {
		start := r.start
		if err := p.flush(r, data); err != nil {
			return p.fail(start, err)
		}
	}

	return len(data)
}

// partData processes a byte of the part body at the position i. It returns the position
// of the last processed byte, which may be either ahead of i (skipped data) or right
// behind it (the byte must be examined once more.)
func (p *Parser) partData(data []byte, i int) (int, error) {
	b := &p.boundary
	n := b.len()
	prev := p.index
	c := data[i]

	if p.index == 0 {
		// Boyer-Moore derived skip: no boundary can start among n bytes preceding
		// a byte not occurring in the boundary at all
		for i+n <= len(data) && !b.contains(data[i+n-1]) {
			i += n
		}

		if i == len(data) {
			return i, nil
		}

		c = data[i]
	}

	switch {
	case p.index < n:
		if b.seq[p.index] != c {
			p.index = 0
			break
		}

		if p.index == 0 {
			if err := p.close(&p.data, data, i, false); err != nil {
				return i, err
			}
		}

		p.index++
	case p.index == n:
		p.index++

		switch c {
		case '\r':
			p.flags |= partBoundary
		case '-':
			p.flags |= lastBoundary
		default:
			p.index = 0
		}
	case p.index == n+1:
		f := p.flags
		p.flags, p.index = 0, 0

		switch {
		case f&partBoundary != 0 && c == '\n':
			p.state = eHeaderFieldStart
			if err := p.handler.OnPartEnd(); err != nil {
				return i, err
			}

			return i, p.handler.OnPartBegin()
		case f&lastBoundary != 0 && c == '-':
			p.state = eEnd
			if err := p.handler.OnPartEnd(); err != nil {
				return i, err
			}

			return i, p.handler.OnEnd()
		}
	default:
		return i, ErrUnexpectedState
	}

	if p.index > 0 {
		// keep what is matched so far, in case it turns out to be a false lead
		if p.index-1 >= len(b.lookbehind) {
			return i, errLookbehind
		}

		b.lookbehind[p.index-1] = c
	} else if prev > 0 {
		// the boundary turned out to be rubbish, so the captured lookbehind
		// belongs to the part data. The current byte is reconsidered, as it
		// may begin a new boundary
		if err := p.handler.OnPartData(b.lookbehind[:prev]); err != nil {
			return i, err
		}

		p.data.mark(i)
		i--
	}

	return i, nil
}

// close reports the run ending at the offset end. Empty runs are reported only if
// allowEmpty is set and nothing of the run was reported before.
func (p *Parser) close(r *run, data []byte, end int, allowEmpty bool) error {
	if !r.open {
		return nil
	}

	r.open = false
	if r.start == end && (!allowEmpty || r.flushed) {
		return nil
	}

	return p.emit(r.kind, data[r.start:end])
}

// flush reports the rest of a run still open at the end of the buffer. The run stays
// open and continues from the beginning of the next buffer.
func (p *Parser) flush(r *run, data []byte) error {
	if !r.open {
		return nil
	}

	start := r.start
	r.start = 0
	if start >= len(data) {
		return nil
	}

	r.flushed = true

	return p.emit(r.kind, data[start:])
}

func (p *Parser) emit(kind runKind, piece []byte) error {
	switch kind {
	case headerFieldRun:
		return p.handler.OnHeaderField(piece)
	case headerValueRun:
		return p.handler.OnHeaderValue(piece)
	default:
		return p.handler.OnPartData(piece)
	}
}

func (p *Parser) fail(at int, err error) int {
	p.state = eError
	p.err = err

	return at
}

// Done reports whether the closing delimiter was reached.
func (p *Parser) Done() bool {
	return p.state == eEnd
}

func (p *Parser) HasError() bool {
	return p.state == eError
}

// Stopped reports whether the parser won't accept any more data.
func (p *Parser) Stopped() bool {
	return p.Done() || p.HasError()
}

// Err returns the reason of the failure, or nil if there's none.
func (p *Parser) Err() error {
	return p.err
}

func (p *Parser) ErrorMessage() string {
	if p.err == nil {
		return "no error"
	}

	return p.err.Error()
}

func isHeaderFieldChar(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || c == '-'
}
