package body

import (
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/indigo-web/chunkedbody"
	"github.com/indigo-web/multipart/config"
	"github.com/indigo-web/multipart/status"
)

// Unsized is the content length of a plain body lasting until the source is exhausted.
const Unsized = -1

// Body retrieves the message body either of a known length, unsized or chunked. It
// yields the payload in pieces no larger than the client's buffer.
type Body struct {
	plain     plainBodyReader
	chunked   chunkedBodyReader
	isChunked bool
}

func New(client Client, cfg config.Body) *Body {
	return &Body{
		plain:   newPlainBodyReader(client, cfg.MaxSize),
		chunked: newChunkedBodyReader(client, cfg.MaxSize),
	}
}

// Init prepares the body for a new message. The contentLength is ignored for chunked
// bodies.
func (b *Body) Init(contentLength int64, chunked bool) {
	b.isChunked = chunked
	if chunked {
		b.chunked.init()
	} else {
		b.plain.init(contentLength)
	}
}

// Retrieve returns the next piece of the body. io.EOF is returned along with the last
// piece or after it.
func (b *Body) Retrieve() ([]byte, error) {
	if b.isChunked {
		return b.chunked.read()
	}

	return b.plain.read()
}

type plainBodyReader struct {
	client               Client
	maxBodyLen, received uint64
	bytesLeft            int64
}

func newPlainBodyReader(client Client, maxBodyLen uint64) plainBodyReader {
	return plainBodyReader{
		client:     client,
		maxBodyLen: maxBodyLen,
	}
}

func (p *plainBodyReader) init(contentLength int64) {
	p.bytesLeft = contentLength
	p.received = 0
}

func (p *plainBodyReader) read() (body []byte, err error) {
	if p.bytesLeft == 0 {
		return nil, io.EOF
	}

	if p.bytesLeft > 0 && uint64(p.bytesLeft) > p.maxBodyLen {
		return nil, status.ErrBodyTooLarge
	}

	data, err := p.client.Read()
	switch {
	case err == io.EOF && p.bytesLeft == Unsized:
		return nil, io.EOF
	case err == io.EOF:
		return nil, io.ErrUnexpectedEOF
	case err != nil:
		return nil, err
	}

	if p.bytesLeft == Unsized {
		received, overflows := adduint(p.received, uint64(len(data)))
		if overflows || received > p.maxBodyLen {
			return nil, status.ErrBodyTooLarge
		}

		p.received = received

		return data, nil
	}

	if dataLen := int64(len(data)); dataLen >= p.bytesLeft {
		body, data = data[:p.bytesLeft], data[p.bytesLeft:]
		p.client.Unread(data)
		p.bytesLeft = 0
		err = io.EOF
	} else {
		p.bytesLeft -= dataLen
		body = data
	}

	return body, err
}

type chunkedBodyReader struct {
	client               Client
	maxBodyLen, received uint64
	parser               *chunkedbody.Parser
	done                 bool
}

func newChunkedBodyReader(client Client, maxBodyLen uint64) chunkedBodyReader {
	return chunkedBodyReader{
		client:     client,
		maxBodyLen: maxBodyLen,
		parser:     chunkedbody.NewParser(chunkedbody.DefaultSettings()),
	}
}

func (c *chunkedBodyReader) init() {
	c.parser = chunkedbody.NewParser(chunkedbody.DefaultSettings())
	c.received = 0
	c.done = false
}

func (c *chunkedBodyReader) read() (body []byte, err error) {
	if c.done {
		return nil, io.EOF
	}

	client := c.client
	data, err := client.Read()
	switch {
	case errors.Is(err, io.EOF):
		return nil, io.ErrUnexpectedEOF
	case err != nil:
		return nil, err
	}

	chunk, extra, err := c.parser.Parse(data, false)
	switch err {
	case nil:
	case io.EOF:
		c.done = true
	default:
		return nil, fmt.Errorf("%w: %w", status.ErrBadChunk, err)
	}

	received, overflows := adduint(c.received, uint64(len(chunk)))
	if overflows || received > c.maxBodyLen {
		return nil, status.ErrBodyTooLarge
	}

	c.received = received
	client.Unread(extra)

	return chunk, err
}

func adduint(x, y uint64) (uint64, bool) {
	return x + y, math.MaxUint64-x < y
}
