package b64

import "testing"

func TestEncodeDecodeRoundTrip(t *testing.T) {
	encoded := Encode("hello toolbelt")
	if encoded != "aGVsbG8gdG9vbGJlbHQ=" {
		t.Fatalf("unexpected encoding: %q", encoded)
	}
	decoded, err := Decode(encoded)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if decoded != "hello toolbelt" {
		t.Fatalf("unexpected decoding: %q", decoded)
	}
}

func TestDecodeInvalidInput(t *testing.T) {
	if _, err := Decode("not base64!!"); err == nil {
		t.Fatalf("expected error for invalid base64")
	}
}
