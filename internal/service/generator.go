package service

import (
	"github.com/vaultpass/passgen-go/internal/crypto"
	"github.com/vaultpass/passgen-go/internal/form"
	"github.com/vaultpass/passgen-go/internal/model"
	"github.com/vaultpass/passgen-go/internal/validator"
)

// GeneratorService handles one-shot password generation.
type GeneratorService struct {
	validator validator.Validator
	generator *crypto.Generator
}

// NewGeneratorService creates a new GeneratorService.
func NewGeneratorService(v validator.Validator, g *crypto.Generator) *GeneratorService {
	if g == nil {
		g = crypto.NewGenerator(nil)
	}
	return &GeneratorService{validator: v, generator: g}
}

// Generate validates the requested length and, if it passes, produces a password.
func (s *GeneratorService) Generate(req model.GenerateRequest) (model.GenerateResponse, error) {
	length, err := s.validator.ValidateLength(string(req.Length))
	if err != nil {
		return model.GenerateResponse{}, err
	}

	classes := requestClasses(req)
	password, err := s.generator.Generate(length, classes)
	if err != nil {
		return model.GenerateResponse{}, err
	}

	return model.GenerateResponse{
		Password: password,
		Length:   len(password),
		Classes:  classes.Names(),
	}, nil
}

// requestClasses applies the request toggles on top of the form defaults.
func requestClasses(req model.GenerateRequest) crypto.Classes {
	defaults := form.DefaultClasses()
	toggles := map[crypto.CharClass]*bool{
		crypto.Uppercase: req.Uppercase,
		crypto.Lowercase: req.Lowercase,
		crypto.Digits:    req.Digits,
		crypto.Symbols:   req.Symbols,
	}

	var classes crypto.Classes
	for _, c := range crypto.AllClasses {
		if boolOrDefault(toggles[c], defaults.Has(c)) {
			classes = classes.With(c)
		}
	}
	return classes
}

// boolOrDefault returns the dereferenced pointer value, or the fallback if nil.
func boolOrDefault(p *bool, fallback bool) bool {
	if p == nil {
		return fallback
	}
	return *p
}
