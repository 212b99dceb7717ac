// Package numbase converts numbers between binary, decimal, and hexadecimal.
package numbase

import (
	"fmt"
	"strconv"
	"strings"
)

// Conversions holds the six pairwise conversions of one input. Fields for
// unparseable interpretations carry an error message instead of a value, so
// the UI can always render the full grid.
type Conversions struct {
	BinaryToDecimal      string
	BinaryToHexadecimal  string
	DecimalToBinary      string
	DecimalToHexadecimal string
	HexadecimalToBinary  string
	HexadecimalToDecimal string
}

// Convert interprets input in base from and renders it in base to.
// Supported bases are 2, 10, and 16.
func Convert(input string, from, to int) (string, error) {
	if !supportedBase(from) || !supportedBase(to) {
		return "", fmt.Errorf("unsupported conversion from base %d to base %d", from, to)
	}
	n, err := strconv.ParseUint(strings.TrimSpace(input), from, 64)
	if err != nil {
		return "", fmt.Errorf("invalid base-%d number %q: %w", from, input, err)
	}
	return render(n, to), nil
}

// All computes every supported conversion of the input.
func All(input string) Conversions {
	return Conversions{
		BinaryToDecimal:      convertOr(input, 2, 10, "invalid binary number"),
		BinaryToHexadecimal:  convertOr(input, 2, 16, "invalid binary number"),
		DecimalToBinary:      convertOr(input, 10, 2, "invalid decimal number"),
		DecimalToHexadecimal: convertOr(input, 10, 16, "invalid decimal number"),
		HexadecimalToBinary:  convertOr(input, 16, 2, "invalid hexadecimal number"),
		HexadecimalToDecimal: convertOr(input, 16, 10, "invalid hexadecimal number"),
	}
}

func convertOr(input string, from, to int, fallback string) string {
	out, err := Convert(input, from, to)
	if err != nil {
		return fallback
	}
	return out
}

func render(n uint64, base int) string {
	if base == 16 {
		return strings.ToUpper(strconv.FormatUint(n, 16))
	}
	return strconv.FormatUint(n, base)
}

func supportedBase(base int) bool {
	return base == 2 || base == 10 || base == 16
}
