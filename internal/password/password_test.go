package password

import (
	"errors"
	"strings"
	"testing"
)

func TestBuildAlphabetComposesClasses(t *testing.T) {
	cfg := Config{Uppercase: true, Numbers: true}
	alphabet, err := BuildAlphabet(cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(alphabet) != 36 {
		t.Fatalf("expected 36 characters, got %d", len(alphabet))
	}
	if !strings.Contains(string(alphabet), "A") || !strings.Contains(string(alphabet), "9") {
		t.Fatalf("alphabet missing expected classes: %s", alphabet)
	}
	if strings.Contains(string(alphabet), "a") || strings.Contains(string(alphabet), "!") {
		t.Fatalf("alphabet contains disabled classes: %s", alphabet)
	}
}

func TestBuildAlphabetNoClassSelected(t *testing.T) {
	if _, err := BuildAlphabet(Config{}); !errors.Is(err, ErrNoClassSelected) {
		t.Fatalf("expected ErrNoClassSelected, got %v", err)
	}
}

func TestBuildAlphabetExcludesSimilar(t *testing.T) {
	cfg := Config{Uppercase: true, Lowercase: true, Numbers: true, AvoidSimilar: true}
	alphabet, err := BuildAlphabet(cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, c := range "Il1O0" {
		if strings.ContainsRune(string(alphabet), c) {
			t.Fatalf("alphabet contains similar character %q", c)
		}
	}
	if len(alphabet) != 26+26+10-5 {
		t.Fatalf("unexpected alphabet size %d", len(alphabet))
	}
}

func TestValidateBounds(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Length = 0
	if err := Validate(cfg); !errors.Is(err, ErrInvalidLength) {
		t.Fatalf("expected ErrInvalidLength, got %v", err)
	}
	cfg = DefaultConfig()
	cfg.Length = MaxLength + 1
	if err := Validate(cfg); !errors.Is(err, ErrInvalidLength) {
		t.Fatalf("expected ErrInvalidLength, got %v", err)
	}
	cfg = DefaultConfig()
	cfg.Count = 0
	if err := Validate(cfg); !errors.Is(err, ErrInvalidCount) {
		t.Fatalf("expected ErrInvalidCount, got %v", err)
	}
	cfg = DefaultConfig()
	cfg.Count = MaxCount + 1
	if err := Validate(cfg); !errors.Is(err, ErrInvalidCount) {
		t.Fatalf("expected ErrInvalidCount, got %v", err)
	}
}

func TestGenerateUsesOnlyAlphabetCharacters(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Count = 10
	alphabet, err := BuildAlphabet(cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	passwords, err := Generate(cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(passwords) != cfg.Count {
		t.Fatalf("expected %d passwords, got %d", cfg.Count, len(passwords))
	}
	for _, pw := range passwords {
		if len(pw) != cfg.Length {
			t.Fatalf("expected length %d, got %d: %q", cfg.Length, len(pw), pw)
		}
		for i := 0; i < len(pw); i++ {
			if !strings.Contains(string(alphabet), string(pw[i])) {
				t.Fatalf("character %q not in alphabet: %q", pw[i], pw)
			}
		}
	}
}

func TestGenerateNoDuplicateCharacters(t *testing.T) {
	cfg := DefaultConfig()
	cfg.AllowDuplicates = false
	cfg.Length = 20
	cfg.Count = 20
	passwords, err := Generate(cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, pw := range passwords {
		seen := map[byte]bool{}
		for i := 0; i < len(pw); i++ {
			if seen[pw[i]] {
				t.Fatalf("duplicate character %q in %q", pw[i], pw)
			}
			seen[pw[i]] = true
		}
	}
}

func TestGenerateNoDuplicatesNearAlphabetSize(t *testing.T) {
	// Length close to the 88-character full alphabet forces heavy redrawing
	// on the tail positions; each position carries its own retry budget, so
	// this stays comfortably feasible.
	cfg := DefaultConfig()
	cfg.AllowDuplicates = false
	cfg.Length = 70
	cfg.Count = 5
	passwords, err := Generate(cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, pw := range passwords {
		seen := map[byte]bool{}
		for i := 0; i < len(pw); i++ {
			if seen[pw[i]] {
				t.Fatalf("duplicate character %q in %q", pw[i], pw)
			}
			seen[pw[i]] = true
		}
	}
}

func TestGenerateNoSequentialRuns(t *testing.T) {
	cfg := DefaultConfig()
	cfg.AvoidSequential = true
	cfg.Count = 50
	passwords, err := Generate(cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, pw := range passwords {
		for i := 1; i < len(pw); i++ {
			if pw[i] == pw[i-1] {
				t.Fatalf("adjacent identical characters in %q", pw)
			}
			if i+1 < len(pw) {
				d1 := int(pw[i]) - int(pw[i-1])
				d2 := int(pw[i+1]) - int(pw[i])
				if (d1 == 1 && d2 == 1) || (d1 == -1 && d2 == -1) {
					t.Fatalf("sequential run at %d in %q", i-1, pw)
				}
			}
		}
	}
}

func TestGenerateCombinedConstraints(t *testing.T) {
	// The toolkit's reference scenario: upper/lower/digits, similar glyphs
	// excluded, no repeats, no runs.
	cfg := Config{
		Length:          8,
		Count:           1,
		Uppercase:       true,
		Lowercase:       true,
		Numbers:         true,
		AvoidSimilar:    true,
		AvoidSequential: true,
	}
	passwords, err := Generate(cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	pw := passwords[0]
	if len(pw) != 8 {
		t.Fatalf("expected length 8, got %q", pw)
	}
	seen := map[byte]bool{}
	for i := 0; i < len(pw); i++ {
		c := pw[i]
		if strings.Contains(similarChars, string(c)) {
			t.Fatalf("similar character %q in %q", c, pw)
		}
		if strings.Contains(symbolChars, string(c)) {
			t.Fatalf("symbol %q in %q", c, pw)
		}
		if seen[c] {
			t.Fatalf("duplicate character %q in %q", c, pw)
		}
		seen[c] = true
	}
}

func TestGenerateInfeasibleLengthExceedsAlphabet(t *testing.T) {
	// Digits minus similar glyphs leaves 8 characters; 20 distinct ones can
	// never fit.
	cfg := Config{
		Length:       20,
		Count:        1,
		Numbers:      true,
		AvoidSimilar: true,
	}
	if err := Validate(cfg); !errors.Is(err, ErrInfeasible) {
		t.Fatalf("expected ErrInfeasible from Validate, got %v", err)
	}
	if _, err := Generate(cfg); !errors.Is(err, ErrInfeasible) {
		t.Fatalf("expected ErrInfeasible from Generate, got %v", err)
	}
}

func TestValidatePredictsGenerateErrorClass(t *testing.T) {
	configs := []Config{
		{},
		{Length: 12, Count: 1},
		{Length: 0, Count: 1, Lowercase: true},
		{Length: 12, Count: 0, Lowercase: true},
		{Length: 27, Count: 1, Lowercase: true, AvoidSimilar: true},
		{Length: 12, Count: 1, Lowercase: true, AllowDuplicates: true},
	}
	for _, cfg := range configs {
		verr := Validate(cfg)
		_, gerr := Generate(cfg)
		if (verr == nil) != (gerr == nil) {
			t.Fatalf("validate/generate disagree for %+v: %v vs %v", cfg, verr, gerr)
		}
		for _, sentinel := range []error{ErrNoClassSelected, ErrEmptyAlphabet, ErrInfeasible, ErrInvalidLength, ErrInvalidCount} {
			if errors.Is(verr, sentinel) != errors.Is(gerr, sentinel) {
				t.Fatalf("error class mismatch for %+v: %v vs %v", cfg, verr, gerr)
			}
		}
	}
}

func TestGenerateOneSingleCharSequentialTerminates(t *testing.T) {
	// A one-character alphabet with sequential avoidance can only ever
	// produce an identical pair: the repair loop must give up, not spin.
	cfg := Config{Length: 2, Count: 1, AllowDuplicates: true, AvoidSequential: true}
	if _, err := generateOne([]byte("a"), cfg); !errors.Is(err, ErrInfeasible) {
		t.Fatalf("expected ErrInfeasible, got %v", err)
	}
}

func TestGenerateBatchAllowsRepeatedPasswords(t *testing.T) {
	// With a one-character alphabet every password in the batch is the same
	// string; cross-password uniqueness is explicitly not a constraint.
	cfg := Config{Length: 1, Count: 5, Numbers: true, AllowDuplicates: false}
	passwords, err := Generate(cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(passwords) != 5 {
		t.Fatalf("expected 5 passwords, got %d", len(passwords))
	}
}

func TestFindSequentialViolation(t *testing.T) {
	if pos := findSequentialViolation([]byte("axbyc")); pos != -1 {
		t.Fatalf("expected clean buffer, got violation at %d", pos)
	}
	if pos := findSequentialViolation([]byte("xabcy")); pos != 2 {
		t.Fatalf("expected ascending run at 2, got %d", pos)
	}
	if pos := findSequentialViolation([]byte("x321y")); pos != 2 {
		t.Fatalf("expected descending run at 2, got %d", pos)
	}
	if pos := findSequentialViolation([]byte("xaay")); pos != 2 {
		t.Fatalf("expected identical pair at 2, got %d", pos)
	}
}

func TestCountersClamp(t *testing.T) {
	cfg := Config{Length: MaxLength, Count: MaxCount}
	cfg.IncreaseLength()
	cfg.IncreaseCount()
	if cfg.Length != MaxLength || cfg.Count != MaxCount {
		t.Fatalf("counters exceeded ceiling: %d, %d", cfg.Length, cfg.Count)
	}
	cfg.Length = MinLength
	cfg.Count = MinCount
	cfg.DecreaseLength()
	cfg.DecreaseCount()
	if cfg.Length != MinLength || cfg.Count != MinCount {
		t.Fatalf("counters went below floor: %d, %d", cfg.Length, cfg.Count)
	}
}
