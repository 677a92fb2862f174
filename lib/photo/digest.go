// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package photo

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"

	"github.com/zeebo/blake3"
)

// Digest is a 32-byte BLAKE3 digest of a photo file's contents.
type Digest [32]byte

// photoDomainKey is the BLAKE3 key for photo digests: the ASCII
// domain name, zero-padded to 32 bytes.
var photoDomainKey = [32]byte{
	'm', 'u', 'g', 's', 'h', 'o', 't', '.', 'p', 'h', 'o', 't', 'o',
}

// String returns the hex encoding, used in logs.
func (d Digest) String() string {
	return hex.EncodeToString(d[:])
}

// HashReader computes the digest of everything read from reader.
func HashReader(reader io.Reader) (Digest, error) {
	// NewKeyed only fails for a key that is not 32 bytes.
	hasher, err := blake3.NewKeyed(photoDomainKey[:])
	if err != nil {
		panic("photo: BLAKE3 keyed hash initialization failed: " + err.Error())
	}
	if _, err := io.Copy(hasher, reader); err != nil {
		return Digest{}, err
	}
	var digest Digest
	copy(digest[:], hasher.Sum(nil))
	return digest, nil
}

// HashFile computes the digest of the file at path.
func HashFile(path string) (Digest, error) {
	file, err := os.Open(path)
	if err != nil {
		return Digest{}, err
	}
	defer file.Close()

	digest, err := HashReader(file)
	if err != nil {
		return Digest{}, fmt.Errorf("hashing %s: %w", path, err)
	}
	return digest, nil
}
