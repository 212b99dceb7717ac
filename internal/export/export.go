// Package export writes tool results to files.
package export

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mkraev/toolbelt/internal/tools/qrgen"
)

const qrPNGSize = 256

// Text writes lines to dir/name atomically and returns the written path.
func Text(dir, name string, lines []string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create export directory: %w", err)
	}
	path := filepath.Join(dir, name)
	tmpFile, err := os.CreateTemp(dir, "export-*.txt")
	if err != nil {
		return "", fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmpFile.Name()
	defer func() {
		_ = tmpFile.Close()
		_ = os.Remove(tmpPath)
	}()

	writer := bufio.NewWriter(tmpFile)
	for _, line := range lines {
		if _, err := fmt.Fprintln(writer, line); err != nil {
			return "", fmt.Errorf("failed to write export: %w", err)
		}
	}
	if err := writer.Flush(); err != nil {
		return "", fmt.Errorf("failed to flush export: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		return "", fmt.Errorf("failed to close export: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return "", fmt.Errorf("failed to write export: %w", err)
	}
	return path, nil
}

// QRPNG renders the input as a QR code PNG named after a sanitized prefix
// of the input and returns the written path.
func QRPNG(dir, input string) (string, error) {
	data, err := qrgen.PNG(input, qrPNGSize)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create export directory: %w", err)
	}
	path := filepath.Join(dir, pngName(input))
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write QR code: %w", err)
	}
	return path, nil
}

// pngName builds a filename from the first 10 characters of the input,
// lowercased with spaces replaced.
func pngName(input string) string {
	runes := []rune(input)
	if len(runes) > 10 {
		runes = runes[:10]
	}
	name := strings.ToLower(strings.ReplaceAll(string(runes), " ", "_"))
	cleaned := strings.Map(func(r rune) rune {
		if r == '/' || r == '\\' || r == ':' {
			return '_'
		}
		return r
	}, name)
	if cleaned == "" {
		cleaned = "qrcode"
	}
	return cleaned + ".png"
}
