package form

import (
	"context"
	"encoding/hex"
	"fmt"
	"hash"
	"log"

	"github.com/indigo-web/multipart/config"
	"github.com/indigo-web/multipart/headers"
	"github.com/indigo-web/multipart/mime"
	"github.com/indigo-web/multipart/parser"
	"github.com/indigo-web/multipart/status"
	"github.com/indigo-web/utils/uf"
)

type Logger interface {
	Printf(fmt string, v ...any)
}

// charsetField is the special field browsers fill with the charset the form is encoded in.
const charsetField = "_charset_"

var _ parser.Handler = new(Collector)

// Collector assembles a Form out of the parser callbacks. Text fields are kept in
// memory, files are streamed into the storage if one is set and kept in memory otherwise.
//
// Any error returned from a callback is a status.HTTPError, possibly wrapped.
type Collector struct {
	ctx     context.Context
	cfg     config.BodyForm
	storage Storage
	logger  Logger
	form    Form
	charset mime.Charset

	part    Data
	headers int
	key     []byte
	value   []byte
	buff    []byte
	hasher  hash.Hash
	upload  *upload
}

type Option func(*Collector)

// WithStorage streams files into the storage instead of keeping them in memory.
func WithStorage(storage Storage) Option {
	return func(c *Collector) {
		c.storage = storage
	}
}

// WithLogger overrides the logger, used to report failures of cleanups.
func WithLogger(logger Logger) Option {
	return func(c *Collector) {
		c.logger = logger
	}
}

// NewCollector returns a collector ready for a new form. The context is passed to the
// storage.
func NewCollector(ctx context.Context, cfg config.BodyForm, opts ...Option) (*Collector, error) {
	c := &Collector{
		ctx:    ctx,
		cfg:    cfg,
		logger: log.Default(),
		form:   make(Form, 0, cfg.EntriesPrealloc),
	}

	for _, opt := range opts {
		opt(c)
	}

	if _, err := newHasher(cfg.Checksum); err != nil {
		return nil, err
	}

	return c, nil
}

// Form returns the collected entries. The form is complete only after OnEnd.
func (c *Collector) Form() Form {
	return c.form
}

func (c *Collector) OnPartBegin() error {
	if len(c.form) >= c.cfg.MaxParts {
		return status.ErrTooManyParts
	}

	c.part = Data{}
	c.headers = 0
	c.key, c.value, c.buff = c.key[:0], c.value[:0], c.buff[:0]

	return nil
}

func (c *Collector) OnHeaderField(b []byte) error {
	if len(c.key)+len(b) > c.cfg.MaxHeaderSize {
		return status.ErrHeaderFieldsTooLarge
	}

	c.key = append(c.key, b...)
	return nil
}

func (c *Collector) OnHeaderValue(b []byte) error {
	if len(c.value)+len(b) > c.cfg.MaxHeaderSize {
		return status.ErrHeaderFieldsTooLarge
	}

	c.value = append(c.value, b...)
	return nil
}

func (c *Collector) OnHeaderEnd() error {
	c.headers++
	if c.headers > c.cfg.MaxHeaders {
		return status.ErrTooManyHeaders
	}

	key := uf.B2S(c.key)

	switch {
	case headers.Is(key, headers.ContentDisposition):
		disposition, ok := headers.ExtractDisposition(string(c.value))
		if !ok {
			return status.ErrMalformedDisposition
		}

		c.part.Name = disposition.Name
		c.part.Filename = disposition.Filename
		c.part.IsFile = disposition.IsFile
	case headers.Is(key, headers.ContentType):
		c.part.Type, c.part.Charset = headers.ParseContentType(string(c.value))
	}

	c.key, c.value = c.key[:0], c.value[:0]

	return nil
}

func (c *Collector) OnHeadersEnd() error {
	if len(c.part.Name) == 0 {
		return status.ErrUnnamedPart
	}

	if !c.part.IsFile {
		if len(c.part.Type) == 0 {
			c.part.Type = mime.Plain
		}

		return nil
	}

	if len(c.part.Type) == 0 {
		c.part.Type = mime.Guess(c.part.Filename, c.cfg.DefaultContentType)
	}

	// the algorithm is validated by the constructor
	c.hasher, _ = newHasher(c.cfg.Checksum)

	if c.storage != nil {
		c.part.Path = storageKey(c.cfg.StoragePrefix, c.part.Filename)
		c.upload = startUpload(c.ctx, c.storage, c.part.Path, c.part.Type)
	}

	return nil
}

func (c *Collector) OnPartData(b []byte) error {
	c.part.Size += int64(len(b))

	if !c.part.IsFile {
		if c.part.Size > c.cfg.MaxFieldSize {
			return status.ErrFieldTooLarge
		}

		c.buff = append(c.buff, b...)
		return nil
	}

	if c.part.Size > c.cfg.MaxFileSize {
		return status.ErrFileTooLarge
	}

	if c.hasher != nil {
		_, _ = c.hasher.Write(b)
	}

	if c.upload == nil {
		c.buff = append(c.buff, b...)
		return nil
	}

	if _, err := c.upload.Write(b); err != nil {
		return fmt.Errorf("%w: %w", status.ErrInsufficientStorage, err)
	}

	return nil
}

func (c *Collector) OnPartEnd() error {
	if c.upload != nil {
		err := c.upload.finish()
		c.upload = nil
		if err != nil {
			return fmt.Errorf("%w: %w", status.ErrInsufficientStorage, err)
		}
	} else {
		c.part.Value = string(c.buff)
	}

	if c.hasher != nil {
		c.part.Checksum = hex.EncodeToString(c.hasher.Sum(nil))
		c.hasher = nil
	}

	if !c.part.IsFile && c.part.Name == charsetField {
		if !mime.Supported(c.part.Value) {
			return fmt.Errorf("%w: %s", status.ErrUnsupportedEncoding, c.part.Value)
		}

		c.charset = c.part.Value
	}

	c.form = append(c.form, c.part)

	return nil
}

// OnEnd decodes text fields transmitted in charsets other than UTF-8.
func (c *Collector) OnEnd() error {
	for i := range c.form {
		entry := &c.form[i]
		if entry.IsFile || entry.Name == charsetField {
			continue
		}

		if len(entry.Charset) == 0 {
			entry.Charset = c.defaultCharset()
		}

		if mime.IsUTF8(entry.Charset) {
			continue
		}

		value, err := mime.Decode(entry.Charset, entry.Value)
		if err != nil {
			return fmt.Errorf("%w: %s", status.ErrUnsupportedEncoding, entry.Charset)
		}

		entry.Value = value
	}

	return nil
}

func (c *Collector) defaultCharset() mime.Charset {
	if len(c.charset) > 0 {
		return c.charset
	}

	return c.cfg.DefaultCharset
}

// Discard removes everything that was stored so far, including the file being
// currently uploaded. Must be called if the form wasn't parsed completely or is
// going to be rejected.
func (c *Collector) Discard(ctx context.Context) {
	if c.upload != nil {
		// the storage is expected to drop incomplete writes on its own
		c.upload.abort(context.Canceled)
		c.upload = nil
	}

	if c.storage == nil {
		return
	}

	for _, entry := range c.form {
		if len(entry.Path) == 0 {
			continue
		}

		if err := c.storage.Delete(ctx, entry.Path); err != nil {
			c.logger.Printf("multipart: failed to delete %s: %s", entry.Path, err)
		}
	}

	c.form = c.form[:0]
}
