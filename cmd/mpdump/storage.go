package main

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/gobeaver/filekit"
)

// dirStorage stores files on the local disk under the root directory.
type dirStorage string

func (d dirStorage) Write(ctx context.Context, path string, content io.Reader, _ ...filekit.Option) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	full := filepath.Join(string(d), filepath.FromSlash(path))
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return err
	}

	file, err := os.Create(full)
	if err != nil {
		return err
	}

	if _, err = io.Copy(file, content); err != nil {
		_ = file.Close()
		_ = os.Remove(full)
		return err
	}

	return file.Close()
}

func (d dirStorage) Delete(_ context.Context, path string) error {
	return os.Remove(filepath.Join(string(d), filepath.FromSlash(path)))
}
