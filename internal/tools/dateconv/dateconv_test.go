package dateconv

import "testing"

func TestConvertUnixTimestamp(t *testing.T) {
	conv, err := Convert("1711101600")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if conv.RFC3339 != "2024-03-22T10:00:00Z" {
		t.Fatalf("unexpected rfc3339: %q", conv.RFC3339)
	}
	if conv.UnixTimestamp != "1711101600" {
		t.Fatalf("unexpected unix timestamp: %q", conv.UnixTimestamp)
	}
	if conv.ShortDate != "22/03/2024" {
		t.Fatalf("unexpected short date: %q", conv.ShortDate)
	}
	if conv.TimeOnly != "10:00:00" {
		t.Fatalf("unexpected time: %q", conv.TimeOnly)
	}
}

func TestConvertTextualLayouts(t *testing.T) {
	for _, input := range []string{
		"2024-03-22 10:00:00",
		"22/03/2024 10:00:00",
	} {
		conv, err := Convert(input)
		if err != nil {
			t.Fatalf("Convert(%q): %v", input, err)
		}
		if conv.UnixTimestamp != "1711101600" {
			t.Fatalf("Convert(%q) unix = %q", input, conv.UnixTimestamp)
		}
	}
	conv, err := Convert("2024-03-22")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if conv.TimeOnly != "00:00:00" {
		t.Fatalf("unexpected time for date-only input: %q", conv.TimeOnly)
	}
	if conv.HumanReadable != "Friday, March 22, 2024, 12:00:00 AM" {
		t.Fatalf("unexpected human-readable: %q", conv.HumanReadable)
	}
}

func TestConvertRejectsBadInput(t *testing.T) {
	for _, input := range []string{"", "yesterday", "99999999999"} {
		if _, err := Convert(input); err == nil {
			t.Fatalf("expected error for %q", input)
		}
	}
}
