package crypto

import (
	"errors"
	"strings"
)

// CharClass names one fixed alphabet a password can draw from.
type CharClass uint8

const (
	Uppercase CharClass = 1 << iota
	Lowercase
	Digits
	Symbols
)

const (
	uppercaseChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	lowercaseChars = "abcdefghijklmnopqrstuvwxyz"
	digitChars     = "0123456789"
	symbolChars    = "!@#$%^&*()_+=-][,./?><"
)

var ErrUnknownClass = errors.New("unknown character class")

// AllClasses lists every class in pool order.
var AllClasses = []CharClass{Uppercase, Lowercase, Digits, Symbols}

// Alphabet returns the characters belonging to c.
func (c CharClass) Alphabet() string {
	switch c {
	case Uppercase:
		return uppercaseChars
	case Lowercase:
		return lowercaseChars
	case Digits:
		return digitChars
	case Symbols:
		return symbolChars
	}
	return ""
}

func (c CharClass) String() string {
	switch c {
	case Uppercase:
		return "uppercase"
	case Lowercase:
		return "lowercase"
	case Digits:
		return "digits"
	case Symbols:
		return "symbols"
	}
	return "unknown"
}

// ParseClass maps a class name to its CharClass. "numbers" is accepted as an
// alias for digits.
func ParseClass(name string) (CharClass, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "uppercase", "upper":
		return Uppercase, nil
	case "lowercase", "lower":
		return Lowercase, nil
	case "digits", "numbers":
		return Digits, nil
	case "symbols":
		return Symbols, nil
	}
	return 0, ErrUnknownClass
}

// Classes is a set of character classes.
type Classes uint8

// NewClasses returns the set holding the given classes.
func NewClasses(cs ...CharClass) Classes {
	var s Classes
	for _, c := range cs {
		s = s.With(c)
	}
	return s
}

// Has reports whether c is in the set.
func (s Classes) Has(c CharClass) bool {
	return s&Classes(c) != 0
}

// With returns the set with c added.
func (s Classes) With(c CharClass) Classes {
	return s | Classes(c)
}

// Without returns the set with c removed.
func (s Classes) Without(c CharClass) Classes {
	return s &^ Classes(c)
}

// Empty reports whether no class is selected.
func (s Classes) Empty() bool {
	return s&Classes(Uppercase|Lowercase|Digits|Symbols) == 0
}

// Names returns the class names in pool order.
func (s Classes) Names() []string {
	names := make([]string, 0, len(AllClasses))
	for _, c := range AllClasses {
		if s.Has(c) {
			names = append(names, c.String())
		}
	}
	return names
}

// Pool concatenates the alphabets of the selected classes in the order
// uppercase, lowercase, digits, symbols.
func Pool(s Classes) string {
	var b strings.Builder
	for _, c := range AllClasses {
		if s.Has(c) {
			b.WriteString(c.Alphabet())
		}
	}
	return b.String()
}
