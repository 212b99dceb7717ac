// Package hashes computes the SHA digest family for a text input.
package hashes

import (
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"encoding/hex"
)

// Sums holds hex-encoded digests of one input.
type Sums struct {
	SHA1   string
	SHA256 string
	SHA384 string
	SHA512 string
}

// Compute returns all supported digests of the input.
func Compute(input string) Sums {
	data := []byte(input)
	s1 := sha1.Sum(data)
	s256 := sha256.Sum256(data)
	s384 := sha512.Sum384(data)
	s512 := sha512.Sum512(data)
	return Sums{
		SHA1:   hex.EncodeToString(s1[:]),
		SHA256: hex.EncodeToString(s256[:]),
		SHA384: hex.EncodeToString(s384[:]),
		SHA512: hex.EncodeToString(s512[:]),
	}
}
