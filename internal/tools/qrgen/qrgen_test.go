package qrgen

import (
	"bytes"
	"testing"
)

func TestTextRendersBlocks(t *testing.T) {
	out, err := Text("https://example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out == "" {
		t.Fatalf("expected non-empty rendering")
	}
}

func TestTextRejectsEmptyInput(t *testing.T) {
	if _, err := Text(""); err == nil {
		t.Fatalf("expected error for empty input")
	}
}

func TestPNGProducesPNGBytes(t *testing.T) {
	data, err := PNG("https://example.com", 256)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("\x89PNG")) {
		t.Fatalf("expected PNG signature, got %x", data[:4])
	}
}
