// Package colorconv parses color notations and converts between them.
package colorconv

import (
	"fmt"
	"strconv"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Conversions holds one color rendered in every supported notation.
type Conversions struct {
	CMYK string
	RGB  string
	HEX  string
	HSL  string
}

// Parse accepts `#RRGGBB`, `r, g, b`, `c%, m%, y%, k%`, or `h°, s%, l%`.
func Parse(input string) (colorful.Color, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return colorful.Color{}, fmt.Errorf("empty color input")
	}
	if strings.HasPrefix(input, "#") || isHexTriplet(input) {
		return parseHex(input)
	}
	parts := strings.Split(input, ",")
	switch len(parts) {
	case 3:
		if c, err := parseRGB(parts); err == nil {
			return c, nil
		}
		return parseHSL(parts)
	case 4:
		return parseCMYK(parts)
	}
	return colorful.Color{}, fmt.Errorf("unrecognized color format %q", input)
}

// Convert renders a color in all supported notations.
func Convert(c colorful.Color) Conversions {
	r, g, b := c.RGB255()
	h, s, l := c.Hsl()
	return Conversions{
		CMYK: formatCMYK(c),
		RGB:  fmt.Sprintf("%d, %d, %d", r, g, b),
		HEX:  fmt.Sprintf("#%02X%02X%02X", r, g, b),
		HSL:  fmt.Sprintf("%.0f°, %.0f%%, %.0f%%", h, s*100, l*100),
	}
}

func formatCMYK(c colorful.Color) string {
	k := 1 - max(c.R, c.G, c.B)
	if k >= 1 {
		return "0%, 0%, 0%, 100%"
	}
	cy := (1 - c.R - k) / (1 - k)
	m := (1 - c.G - k) / (1 - k)
	y := (1 - c.B - k) / (1 - k)
	return fmt.Sprintf("%.0f%%, %.0f%%, %.0f%%, %.0f%%", cy*100, m*100, y*100, k*100)
}

func parseHex(input string) (colorful.Color, error) {
	hex := input
	if !strings.HasPrefix(hex, "#") {
		hex = "#" + hex
	}
	c, err := colorful.Hex(strings.ToLower(hex))
	if err != nil {
		return colorful.Color{}, fmt.Errorf("invalid hex color %q: %w", input, err)
	}
	return c, nil
}

func parseRGB(parts []string) (colorful.Color, error) {
	vals := make([]uint8, 3)
	for i, part := range parts {
		n, err := strconv.ParseUint(strings.TrimSpace(part), 10, 8)
		if err != nil {
			return colorful.Color{}, fmt.Errorf("invalid rgb component %q: %w", part, err)
		}
		vals[i] = uint8(n)
	}
	return colorful.Color{
		R: float64(vals[0]) / 255,
		G: float64(vals[1]) / 255,
		B: float64(vals[2]) / 255,
	}, nil
}

func parseHSL(parts []string) (colorful.Color, error) {
	h, err := parseComponent(parts[0], "°")
	if err != nil {
		return colorful.Color{}, err
	}
	s, err := parseComponent(parts[1], "%")
	if err != nil {
		return colorful.Color{}, err
	}
	l, err := parseComponent(parts[2], "%")
	if err != nil {
		return colorful.Color{}, err
	}
	if h < 0 || h >= 360 || s < 0 || s > 100 || l < 0 || l > 100 {
		return colorful.Color{}, fmt.Errorf("hsl components out of range: %v", parts)
	}
	return colorful.Hsl(h, s/100, l/100), nil
}

func parseCMYK(parts []string) (colorful.Color, error) {
	vals := make([]float64, 4)
	for i, part := range parts {
		v, err := parseComponent(part, "%")
		if err != nil {
			return colorful.Color{}, err
		}
		if v < 0 || v > 100 {
			return colorful.Color{}, fmt.Errorf("cmyk component %q out of range", part)
		}
		vals[i] = v / 100
	}
	k := vals[3]
	return colorful.Color{
		R: (1 - vals[0]) * (1 - k),
		G: (1 - vals[1]) * (1 - k),
		B: (1 - vals[2]) * (1 - k),
	}, nil
}

func parseComponent(part, suffix string) (float64, error) {
	trimmed := strings.TrimSuffix(strings.TrimSpace(part), suffix)
	v, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid color component %q: %w", part, err)
	}
	return v, nil
}

func isHexTriplet(input string) bool {
	if len(input) != 6 {
		return false
	}
	for _, r := range input {
		if !strings.ContainsRune("0123456789abcdefABCDEF", r) {
			return false
		}
	}
	return true
}
