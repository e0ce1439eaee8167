package crypto

import (
	"errors"
	"strings"
	"testing"
)

const fullPool = uppercaseChars + lowercaseChars + digitChars + symbolChars

// lastSource always returns the highest index it is allowed to.
type lastSource struct{}

func (lastSource) Intn(n int) (int, error) { return n - 1, nil }

type failingSource struct{ err error }

func (s failingSource) Intn(int) (int, error) { return 0, s.err }

func TestGenerate(t *testing.T) {
	all := NewClasses(Uppercase, Lowercase, Digits, Symbols)

	tests := []struct {
		name    string
		length  int
		classes Classes
		wantErr error
	}{
		{name: "all classes", length: 16, classes: all},
		{name: "lowercase only", length: 8, classes: NewClasses(Lowercase)},
		{name: "uppercase only", length: 8, classes: NewClasses(Uppercase)},
		{name: "digits only", length: 8, classes: NewClasses(Digits)},
		{name: "symbols only", length: 8, classes: NewClasses(Symbols)},
		{name: "minimum length", length: 4, classes: all},
		{name: "long password", length: 128, classes: all},
		{name: "zero length", length: 0, classes: NewClasses(Lowercase)},
		{name: "no classes", length: 8, classes: 0, wantErr: ErrNoCharacterClassSelected},
		{name: "no classes zero length", length: 0, classes: 0, wantErr: ErrNoCharacterClassSelected},
		{name: "negative length", length: -1, classes: all, wantErr: ErrNegativeLength},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Generate(tt.length, tt.classes)

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("Generate() error = %v, want %v", err, tt.wantErr)
				}
				if result != "" {
					t.Error("Generate() should return empty string on error")
				}
				return
			}

			if err != nil {
				t.Fatalf("Generate() unexpected error: %v", err)
			}
			if len(result) != tt.length {
				t.Errorf("Generate() length = %d, want %d", len(result), tt.length)
			}
			pool := Pool(tt.classes)
			for _, ch := range result {
				if !strings.ContainsRune(pool, ch) {
					t.Errorf("password contains %q outside pool %q", string(ch), pool)
				}
			}
		})
	}
}

func TestGenerateSingleClassContainsOnlyThatClass(t *testing.T) {
	for _, c := range AllClasses {
		t.Run(c.String(), func(t *testing.T) {
			for i := 0; i < 50; i++ {
				password, err := Generate(16, NewClasses(c))
				if err != nil {
					t.Fatalf("Generate() unexpected error: %v", err)
				}
				for _, ch := range password {
					if !strings.ContainsRune(c.Alphabet(), ch) {
						t.Fatalf("password contains unexpected character %q (not in %q)", string(ch), c.Alphabet())
					}
				}
			}
		})
	}
}

func TestGenerateDigitsExample(t *testing.T) {
	password, err := Generate(8, NewClasses(Digits))
	if err != nil {
		t.Fatalf("Generate() unexpected error: %v", err)
	}
	if len(password) != 8 {
		t.Fatalf("Generate() length = %d, want 8", len(password))
	}
	if strings.Trim(password, "0123456789") != "" {
		t.Errorf("password %q contains non-digits", password)
	}
}

func TestGenerateFullPoolBoundary(t *testing.T) {
	all := NewClasses(Uppercase, Lowercase, Digits, Symbols)
	if got := Pool(all); got != fullPool {
		t.Fatalf("Pool() = %q, want %q", got, fullPool)
	}

	for i := 0; i < 200; i++ {
		password, err := Generate(16, all)
		if err != nil {
			t.Fatalf("Generate() unexpected error: %v", err)
		}
		if len(password) != 16 {
			t.Fatalf("Generate() length = %d, want 16", len(password))
		}
		for _, ch := range password {
			if !strings.ContainsRune(fullPool, ch) {
				t.Fatalf("password %q contains %q outside pool", password, string(ch))
			}
		}
	}
}

func TestGenerateHighestIndexStaysInPool(t *testing.T) {
	g := NewGenerator(lastSource{})

	password, err := g.Generate(4, NewClasses(Lowercase, Digits))
	if err != nil {
		t.Fatalf("Generate() unexpected error: %v", err)
	}
	if password != "9999" {
		t.Errorf("Generate() = %q, want %q", password, "9999")
	}
}

func TestGenerateSourceError(t *testing.T) {
	boom := errors.New("entropy exhausted")
	g := NewGenerator(failingSource{err: boom})

	_, err := g.Generate(8, NewClasses(Lowercase))
	if !errors.Is(err, boom) {
		t.Errorf("Generate() error = %v, want wrapped %v", err, boom)
	}
}

func TestGenerateSeededIsReproducible(t *testing.T) {
	all := NewClasses(Uppercase, Lowercase, Digits, Symbols)

	gen := func(seed string) string {
		src, err := NewSeededSource(seed)
		if err != nil {
			t.Fatalf("NewSeededSource() unexpected error: %v", err)
		}
		password, err := NewGenerator(src).Generate(16, all)
		if err != nil {
			t.Fatalf("Generate() unexpected error: %v", err)
		}
		return password
	}

	a, b := gen("correct horse"), gen("correct horse")
	if a != b {
		t.Errorf("same seed produced %q and %q", a, b)
	}
	if c := gen("battery staple"); c == a {
		t.Errorf("different seeds produced the same password %q", a)
	}
}
