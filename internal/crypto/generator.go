package crypto

import (
	"errors"
	"fmt"
)

var (
	ErrNoCharacterClassSelected = errors.New("no character classes selected")
	ErrNegativeLength           = errors.New("password length must not be negative")
)

// Generator draws passwords from a character pool using Source.
type Generator struct {
	Source Source
}

// NewGenerator returns a Generator reading from src. A nil src selects
// CryptoSource.
func NewGenerator(src Source) *Generator {
	if src == nil {
		src = CryptoSource{}
	}
	return &Generator{Source: src}
}

// Generate creates a password of exactly length characters from the default
// source.
func Generate(length int, classes Classes) (string, error) {
	return NewGenerator(nil).Generate(length, classes)
}

// Generate returns length characters, each picked independently and uniformly
// from Pool(classes). The length bounds a user may ask for are enforced by
// the validator, not here.
func (g *Generator) Generate(length int, classes Classes) (string, error) {
	pool := Pool(classes)
	if pool == "" {
		return "", ErrNoCharacterClassSelected
	}
	if length < 0 {
		return "", ErrNegativeLength
	}

	result := make([]byte, length)
	for i := range result {
		idx, err := g.Source.Intn(len(pool))
		if err != nil {
			return "", fmt.Errorf("drawing character %d: %w", i, err)
		}
		result[i] = pool[idx]
	}

	return string(result), nil
}
