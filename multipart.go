// Package multipart parses multipart/form-data bodies as they arrive, without buffering
// them as a whole. The engine itself lives in the parser package; this package glues it
// together with the body transport and the form collector.
package multipart

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/indigo-web/multipart/body"
	"github.com/indigo-web/multipart/config"
	"github.com/indigo-web/multipart/form"
	"github.com/indigo-web/multipart/headers"
	"github.com/indigo-web/multipart/parser"
	"github.com/indigo-web/multipart/status"
)

// Parse reads the whole multipart body from the src and collects it into a form. The
// boundary is taken from the contentType. Uploaded files stay in memory unless a
// storage is passed via form.WithStorage.
func Parse(
	ctx context.Context, cfg *config.Config, src io.Reader, contentType string, opts ...form.Option,
) (form.Form, error) {
	b := body.New(body.NewClient(src, make([]byte, cfg.Body.ReadBufferSize)), cfg.Body)
	b.Init(body.Unsized, false)

	return ParseBody(ctx, cfg, b, contentType, opts...)
}

// ParseBody is like Parse, but the body is retrieved from the source of the caller's
// choice, e.g. a chunked one. Whatever was stored is removed if the parsing fails.
func ParseBody(
	ctx context.Context, cfg *config.Config, src Retriever, contentType string, opts ...form.Option,
) (form.Form, error) {
	boundary, err := Boundary(contentType)
	if err != nil {
		return nil, err
	}

	collector, err := form.NewCollector(ctx, cfg.Body.Form, opts...)
	if err != nil {
		return nil, err
	}

	p := parser.New(collector)
	p.Configure(boundary)

	if err = Drain(ctx, src, p); err != nil {
		collector.Discard(context.WithoutCancel(ctx))
		return nil, err
	}

	return collector.Form(), nil
}

// Boundary extracts the boundary out of the Content-Type value, reporting failures as
// status errors.
func Boundary(contentType string) (string, error) {
	boundary, err := headers.ExtractBoundary(contentType)
	switch {
	case err == nil:
		return boundary, nil
	case errors.Is(err, headers.ErrNotMultipart):
		return "", fmt.Errorf("%w: %w", status.ErrNotMultipart, err)
	default:
		return "", fmt.Errorf("%w: %w", status.ErrMissingBoundary, err)
	}
}
