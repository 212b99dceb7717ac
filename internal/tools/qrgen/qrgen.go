// Package qrgen renders QR codes for terminal display and PNG export.
package qrgen

import (
	"fmt"

	qrcode "github.com/skip2/go-qrcode"
)

// Text renders the input as a QR code made of terminal block characters.
func Text(input string) (string, error) {
	if input == "" {
		return "", fmt.Errorf("empty QR input")
	}
	qr, err := qrcode.New(input, qrcode.Medium)
	if err != nil {
		return "", fmt.Errorf("failed to build QR code: %w", err)
	}
	return qr.ToSmallString(false), nil
}

// PNG renders the input as a PNG image of the given pixel size.
func PNG(input string, size int) ([]byte, error) {
	if input == "" {
		return nil, fmt.Errorf("empty QR input")
	}
	data, err := qrcode.Encode(input, qrcode.Medium, size)
	if err != nil {
		return nil, fmt.Errorf("failed to encode QR code: %w", err)
	}
	return data, nil
}
