package form

import (
	"context"
	"io"
	"path"

	"github.com/dchest/uniuri"
	"github.com/gobeaver/filekit"
)

// Storage is where uploaded files are streamed into. Any filekit driver suits it.
type Storage interface {
	Write(ctx context.Context, path string, content io.Reader, options ...filekit.Option) error
	Delete(ctx context.Context, path string) error
}

const keyLength = 16

// storageKey generates a unique key for the file. The extension of the original
// filename is preserved, as long as it's sane.
func storageKey(prefix, filename string) string {
	key := prefix + uniuri.NewLen(keyLength)

	ext := path.Ext(filename)
	if len(ext) < 2 || len(ext) > 16 {
		return key
	}

	for i := 1; i < len(ext); i++ {
		c := ext[i]
		if !(c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9') {
			return key
		}
	}

	return key + ext
}

// upload streams a single file into the storage. The storage consumes the pipe
// in its own goroutine.
type upload struct {
	key  string
	pw   *io.PipeWriter
	done chan error
}

func startUpload(ctx context.Context, storage Storage, key, contentType string) *upload {
	pr, pw := io.Pipe()
	u := &upload{
		key:  key,
		pw:   pw,
		done: make(chan error, 1),
	}

	go func() {
		err := storage.Write(ctx, key, pr, filekit.WithContentType(contentType))
		// unblocks the writer if the storage gave up before reaching EOF
		_ = pr.CloseWithError(err)
		u.done <- err
	}()

	return u
}

func (u *upload) Write(b []byte) (int, error) {
	return u.pw.Write(b)
}

// finish signals EOF and waits until the storage is done.
func (u *upload) finish() error {
	_ = u.pw.Close()
	return <-u.done
}

func (u *upload) abort(reason error) {
	_ = u.pw.CloseWithError(reason)
	<-u.done
}
