package config

import (
	"github.com/indigo-web/multipart/mime"
)

type ChecksumAlgorithm string

const (
	// NoChecksum disables checksums of stored files.
	NoChecksum ChecksumAlgorithm = "none"
	XXHash     ChecksumAlgorithm = "xxhash"
	BLAKE2b    ChecksumAlgorithm = "blake2b"
)

type (
	BodyForm struct {
		// EntriesPrealloc is the number of preallocated seats for form.Form.
		EntriesPrealloc int
		// MaxParts limits how many parts a single form may consist of.
		MaxParts int
		// MaxHeaders limits the number of headers of a single part.
		MaxHeaders int
		// MaxHeaderSize limits the length of a single header field or value of a part. Header
		// fragments are concatenated until the limit is exceeded.
		MaxHeaderSize int
		// MaxFieldSize limits the length of a text field value. Text fields are always
		// kept in memory.
		MaxFieldSize int64
		// MaxFileSize limits the size of a single uploaded file.
		MaxFileSize int64
		// DefaultCharset is used to decode text fields, unless either the part itself or
		// the _charset_ field says otherwise.
		DefaultCharset mime.Charset
		// DefaultContentType is assigned to files whose type is neither set explicitly nor can
		// be guessed from the filename extension.
		DefaultContentType mime.MIME
		// Checksum is the algorithm to calculate digests of uploaded files with.
		Checksum ChecksumAlgorithm
		// StoragePrefix is prepended to the key every uploaded file is stored by.
		StoragePrefix string
	}

	Body struct {
		// MaxSize describes the maximal size of a body, that can be processed. 0 will discard
		// any body (each retrieval will result in status.ErrBodyTooLarge).
		// In order to disable the setting, use the math.MaxUint64 value.
		MaxSize uint64
		// ReadBufferSize is the size of a buffer the body is read from the source into.
		// That's also the largest chunk the parser is fed with at once.
		ReadBufferSize int
		Form           BodyForm
	}
)

// Config holds limitations and pre-allocations of the body transport and the form collector.
//
// You must ALWAYS modify defaults (returned via Default()) and NEVER try to initialize the
// config manually, because most likely this will result in ambiguous errors.
type Config struct {
	Body Body
}

// Default returns default config. Those are initially well-balanced, however maximal defaults
// are pretty permitting.
func Default() *Config {
	return &Config{
		Body: Body{
			MaxSize:        512 * 1024 * 1024, // 512 megabytes
			ReadBufferSize: 4 * 1024,
			Form: BodyForm{
				EntriesPrealloc: 8,
				MaxParts:        128,
				MaxHeaders:      8,
				// file names longer than that are hardly legitimate
				MaxHeaderSize:      4 * 1024,
				MaxFieldSize:       1 * 1024 * 1024,
				MaxFileSize:        256 * 1024 * 1024,
				DefaultCharset:     mime.UTF8,
				DefaultContentType: mime.OctetStream,
				Checksum:           NoChecksum,
				StoragePrefix:      "uploads/",
			},
		},
	}
}
