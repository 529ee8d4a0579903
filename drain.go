package multipart

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/indigo-web/multipart/parser"
	"github.com/indigo-web/multipart/status"
)

// Retriever yields the body piece by piece. io.EOF is returned either along with the
// last piece or after it.
type Retriever interface {
	Retrieve() ([]byte, error)
}

// Drain feeds the parser until the body is exhausted. Data following the closing
// delimiter is read but ignored. The context is checked between pieces.
//
// Failures of the parser itself are reported as status.ErrMalformedMultipart, while
// status errors returned by the handler are passed through as is. A body ending before
// the closing delimiter results in status.ErrTruncatedMultipart.
func Drain(ctx context.Context, body Retriever, p *parser.Parser) error {
	for {
		if err := ctx.Err(); err != nil {
			if errors.Is(err, context.DeadlineExceeded) {
				return fmt.Errorf("%w: %w", status.ErrRequestTimeout, err)
			}

			return err
		}

		data, err := body.Retrieve()
		if len(data) > 0 && !p.Done() {
			p.Feed(data)
			if p.HasError() {
				return parserError(p.Err())
			}
		}

		switch {
		case err == nil:
		case errors.Is(err, io.EOF):
			if !p.Done() {
				return status.ErrTruncatedMultipart
			}

			return nil
		case errors.Is(err, io.ErrUnexpectedEOF):
			return fmt.Errorf("%w: %w", status.ErrTruncatedMultipart, err)
		default:
			return err
		}
	}
}

func parserError(err error) error {
	var httpErr status.HTTPError
	if errors.As(err, &httpErr) {
		return err
	}

	return fmt.Errorf("%w: %w", status.ErrMalformedMultipart, err)
}
