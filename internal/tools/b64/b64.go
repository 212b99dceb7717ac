// Package b64 wraps standard Base64 encoding and decoding.
package b64

import (
	"encoding/base64"
	"fmt"
)

// Encode returns the standard Base64 encoding of the input.
func Encode(input string) string {
	return base64.StdEncoding.EncodeToString([]byte(input))
}

// Decode decodes a standard Base64 string.
func Decode(input string) (string, error) {
	decoded, err := base64.StdEncoding.DecodeString(input)
	if err != nil {
		return "", fmt.Errorf("failed to decode base64: %w", err)
	}
	return string(decoded), nil
}
