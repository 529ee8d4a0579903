package form

import (
	"fmt"
	"hash"

	"github.com/cespare/xxhash/v2"
	"github.com/indigo-web/multipart/config"
	"golang.org/x/crypto/blake2b"
)

// newHasher returns nil if checksums are disabled.
func newHasher(algorithm config.ChecksumAlgorithm) (hash.Hash, error) {
	switch algorithm {
	case "", config.NoChecksum:
		return nil, nil
	case config.XXHash:
		return xxhash.New(), nil
	case config.BLAKE2b:
		return blake2b.New256(nil)
	default:
		return nil, fmt.Errorf("unsupported checksum algorithm: %s", algorithm)
	}
}
