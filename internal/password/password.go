// Package password generates random passwords under inclusion and
// exclusion constraints.
package password

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
)

const (
	uppercaseChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	lowercaseChars = "abcdefghijklmnopqrstuvwxyz"
	numberChars    = "0123456789"
	symbolChars    = "!@#$%^&*()_+-=[]{}|;:,.<>?"

	// Glyphs that are easy to confuse in common terminal fonts.
	similarChars = "Il1O0"
)

const (
	// MinLength and MaxLength bound the password length counter.
	MinLength = 1
	MaxLength = 128

	// MinCount and MaxCount bound the batch size counter.
	MinCount = 1
	MaxCount = 100

	// retryBudget bounds draw attempts per position and repair passes per
	// password. Exceeding it means the configuration is treated as
	// infeasible rather than searching further.
	retryBudget = 50
)

var (
	ErrNoClassSelected = errors.New("no character class selected")
	ErrEmptyAlphabet   = errors.New("alphabet is empty after exclusions")
	ErrInfeasible      = errors.New("constraints cannot be satisfied")
	ErrInvalidLength   = errors.New("invalid length")
	ErrInvalidCount    = errors.New("invalid count")
)

// Config holds the constraint configuration for one generation call.
type Config struct {
	Length          int
	Count           int
	Uppercase       bool
	Lowercase       bool
	Numbers         bool
	Symbols         bool
	AvoidSimilar    bool
	AllowDuplicates bool
	AvoidSequential bool
}

// DefaultConfig returns the configuration the UI starts with.
func DefaultConfig() Config {
	return Config{
		Length:          12,
		Count:           1,
		Uppercase:       true,
		Lowercase:       true,
		Numbers:         true,
		Symbols:         true,
		AllowDuplicates: true,
	}
}

// BuildAlphabet derives the candidate character set from the enabled
// classes, minus the similar set when requested.
func BuildAlphabet(cfg Config) ([]byte, error) {
	var composed []byte
	if cfg.Uppercase {
		composed = append(composed, uppercaseChars...)
	}
	if cfg.Lowercase {
		composed = append(composed, lowercaseChars...)
	}
	if cfg.Numbers {
		composed = append(composed, numberChars...)
	}
	if cfg.Symbols {
		composed = append(composed, symbolChars...)
	}
	if len(composed) == 0 {
		return nil, ErrNoClassSelected
	}
	if !cfg.AvoidSimilar {
		return composed, nil
	}
	alphabet := composed[:0]
	for _, c := range composed {
		if isSimilar(c) {
			continue
		}
		alphabet = append(alphabet, c)
	}
	if len(alphabet) == 0 {
		return nil, ErrEmptyAlphabet
	}
	return alphabet, nil
}

// Validate checks bounds and structural feasibility without drawing
// anything. Generate with the same config fails with the same error class
// whenever Validate fails.
func Validate(cfg Config) error {
	_, err := prepare(cfg)
	return err
}

// prepare checks bounds and derives the alphabet once, then checks
// structural feasibility against it.
func prepare(cfg Config) ([]byte, error) {
	if cfg.Length < MinLength || cfg.Length > MaxLength {
		return nil, fmt.Errorf("length %d is out of range [%d, %d]: %w", cfg.Length, MinLength, MaxLength, ErrInvalidLength)
	}
	if cfg.Count < MinCount || cfg.Count > MaxCount {
		return nil, fmt.Errorf("count %d is out of range [%d, %d]: %w", cfg.Count, MinCount, MaxCount, ErrInvalidCount)
	}
	alphabet, err := BuildAlphabet(cfg)
	if err != nil {
		return nil, err
	}
	if !cfg.AllowDuplicates && cfg.Length > len(alphabet) {
		return nil, fmt.Errorf("length %d exceeds alphabet size %d with duplicates forbidden: %w", cfg.Length, len(alphabet), ErrInfeasible)
	}
	return alphabet, nil
}

// Generate produces cfg.Count passwords, each independently satisfying
// every active constraint. Any failure aborts the whole batch.
func Generate(cfg Config) ([]string, error) {
	alphabet, err := prepare(cfg)
	if err != nil {
		return nil, err
	}
	passwords := make([]string, 0, cfg.Count)
	for i := 0; i < cfg.Count; i++ {
		pw, err := generateOne(alphabet, cfg)
		if err != nil {
			return nil, err
		}
		passwords = append(passwords, pw)
	}
	return passwords, nil
}

// generateOne draws one password by rejection sampling: fill every position
// uniformly, redrawing each position up to the retry budget on duplicate
// collisions, then repair sequential violations with at most the retry
// budget of repair passes.
func generateOne(alphabet []byte, cfg Config) (string, error) {
	buf := make([]byte, cfg.Length)
	used := make(map[byte]bool, cfg.Length)

	for i := range buf {
		c, err := drawChar(alphabet, used, cfg.AllowDuplicates)
		if err != nil {
			return "", err
		}
		buf[i] = c
		if !cfg.AllowDuplicates {
			used[c] = true
		}
	}

	if cfg.AvoidSequential {
		for repairs := 0; ; repairs++ {
			pos := findSequentialViolation(buf)
			if pos < 0 {
				break
			}
			if repairs >= retryBudget {
				return "", fmt.Errorf("sequential avoidance exhausted retry budget: %w", ErrInfeasible)
			}
			if !cfg.AllowDuplicates {
				delete(used, buf[pos])
			}
			c, err := drawChar(alphabet, used, cfg.AllowDuplicates)
			if err != nil {
				return "", err
			}
			buf[pos] = c
			if !cfg.AllowDuplicates {
				used[c] = true
			}
		}
	}

	return string(buf), nil
}

// drawChar draws one character uniformly from the alphabet. When duplicates
// are forbidden it redraws on collisions, up to the retry budget for this
// position.
func drawChar(alphabet []byte, used map[byte]bool, allowDuplicates bool) (byte, error) {
	for attempt := 0; attempt < retryBudget; attempt++ {
		idx, err := randomIndex(len(alphabet))
		if err != nil {
			return 0, err
		}
		c := alphabet[idx]
		if allowDuplicates || !used[c] {
			return c, nil
		}
	}
	return 0, fmt.Errorf("duplicate avoidance exhausted retry budget: %w", ErrInfeasible)
}

// findSequentialViolation returns the index of a character to redraw: the
// middle of the first 3-window forming a strict ±1 arithmetic run, or the
// second of an adjacent identical pair. Returns -1 when the buffer is clean.
func findSequentialViolation(buf []byte) int {
	for i := 1; i < len(buf); i++ {
		if buf[i] == buf[i-1] {
			return i
		}
		if i+1 < len(buf) {
			d1 := int(buf[i]) - int(buf[i-1])
			d2 := int(buf[i+1]) - int(buf[i])
			if (d1 == 1 && d2 == 1) || (d1 == -1 && d2 == -1) {
				return i
			}
		}
	}
	return -1
}

func randomIndex(n int) (int, error) {
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		return 0, fmt.Errorf("failed to read random source: %w", err)
	}
	return int(v.Int64()), nil
}

func isSimilar(c byte) bool {
	for i := 0; i < len(similarChars); i++ {
		if similarChars[i] == c {
			return true
		}
	}
	return false
}
