package export

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func TestTextWritesLines(t *testing.T) {
	dir := t.TempDir()
	path, err := Text(dir, "password.txt", []string{"first", "second"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if path != filepath.Join(dir, "password.txt") {
		t.Fatalf("unexpected path: %q", path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read export: %v", err)
	}
	if string(data) != "first\nsecond\n" {
		t.Fatalf("unexpected content: %q", data)
	}
}

func TestTextCreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "export")
	if _, err := Text(dir, "uuid.txt", []string{"x"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "uuid.txt")); err != nil {
		t.Fatalf("expected exported file: %v", err)
	}
}

func TestQRPNGWritesImage(t *testing.T) {
	dir := t.TempDir()
	path, err := QRPNG(dir, "Hello World from toolbelt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if filepath.Base(path) != "hello_worl.png" {
		t.Fatalf("unexpected filename: %q", filepath.Base(path))
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read image: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("\x89PNG")) {
		t.Fatalf("expected PNG signature")
	}
}

func TestQRPNGRejectsEmptyInput(t *testing.T) {
	if _, err := QRPNG(t.TempDir(), ""); err == nil {
		t.Fatalf("expected error for empty input")
	}
}
