package body

import "io"

// Client reads the raw body in pieces. Whatever was read too much can be put back
// and is returned by the next Read.
type Client interface {
	Read() ([]byte, error)
	Unread([]byte)
}

type client struct {
	src     io.Reader
	buff    []byte
	pending []byte
	err     error
}

// NewClient returns a Client reading from the src into the buff. The returned data is
// valid only until the next Read.
func NewClient(src io.Reader, buff []byte) Client {
	return &client{
		src:  src,
		buff: buff,
	}
}

func (c *client) Read() ([]byte, error) {
	if len(c.pending) > 0 {
		pending := c.pending
		c.pending = nil

		return pending, nil
	}

	if c.err != nil {
		return nil, c.err
	}

	n, err := c.src.Read(c.buff)
	if n > 0 {
		// the error is deferred until the data is processed
		c.err = err
		return c.buff[:n], nil
	}

	return nil, err
}

func (c *client) Unread(b []byte) {
	c.pending = b
}
