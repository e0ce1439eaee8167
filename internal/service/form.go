package service

import (
	"errors"
	"time"

	"github.com/vaultpass/passgen-go/internal/crypto"
	"github.com/vaultpass/passgen-go/internal/form"
	"github.com/vaultpass/passgen-go/internal/model"
	"github.com/vaultpass/passgen-go/internal/validator"
)

// FormService drives form sessions held in a form.Store.
type FormService struct {
	store     *form.Store
	generator *crypto.Generator
	secret    string
	tokenTTL  time.Duration
}

// NewFormService creates a new FormService.
func NewFormService(store *form.Store, g *crypto.Generator, secret string, tokenTTL time.Duration) *FormService {
	if g == nil {
		g = crypto.NewGenerator(nil)
	}
	return &FormService{
		store:     store,
		generator: g,
		secret:    secret,
		tokenTTL:  tokenTTL,
	}
}

// CreateForm starts a new idle form and issues the token that addresses it.
func (s *FormService) CreateForm() (model.CreateFormResponse, error) {
	id, view := s.store.Create()

	token, err := crypto.IssueFormToken(id, s.secret, s.tokenTTL)
	if err != nil {
		_ = s.store.Delete(id)
		return model.CreateFormResponse{}, err
	}

	return model.CreateFormResponse{
		Token: token,
		Form:  viewToResponse(view),
	}, nil
}

// GetForm returns the current state of a form.
func (s *FormService) GetForm(id string) (model.FormResponse, error) {
	view, err := s.store.Do(id, nil)
	if err != nil {
		return model.FormResponse{}, err
	}
	return viewToResponse(view), nil
}

// SetLength stores the length text. A rejected length is not a failure: the
// message is reported in the response's length_error.
func (s *FormService) SetLength(id, text string) (model.FormResponse, error) {
	view, err := s.store.Do(id, func(f *form.Form) error {
		return f.SetLength(text)
	})
	if err != nil && !errors.Is(err, validator.ErrInvalidLength) {
		return model.FormResponse{}, err
	}
	return viewToResponse(view), nil
}

// SetClass enables or disables the named character class.
func (s *FormService) SetClass(id, name string, enabled bool) (model.FormResponse, error) {
	class, err := crypto.ParseClass(name)
	if err != nil {
		return model.FormResponse{}, err
	}

	view, err := s.store.Do(id, func(f *form.Form) error {
		f.SetClass(class, enabled)
		return nil
	})
	if err != nil {
		return model.FormResponse{}, err
	}
	return viewToResponse(view), nil
}

// Submit validates the form and generates a password. On a validation error
// the unchanged form is returned together with the error.
func (s *FormService) Submit(id string) (model.FormResponse, error) {
	view, err := s.store.Do(id, func(f *form.Form) error {
		_, err := f.Submit(s.generator)
		return err
	})
	if errors.Is(err, form.ErrFormNotFound) {
		return model.FormResponse{}, err
	}
	return viewToResponse(view), err
}

// Reset returns the form to its initial state.
func (s *FormService) Reset(id string) (model.FormResponse, error) {
	view, err := s.store.Do(id, func(f *form.Form) error {
		f.Reset()
		return nil
	})
	if err != nil {
		return model.FormResponse{}, err
	}
	return viewToResponse(view), nil
}

// DeleteForm ends a form session.
func (s *FormService) DeleteForm(id string) error {
	return s.store.Delete(id)
}

func optionsToModel(o form.Options) model.FormOptions {
	return model.FormOptions{
		Length:    o.Length,
		Uppercase: o.Classes.Has(crypto.Uppercase),
		Lowercase: o.Classes.Has(crypto.Lowercase),
		Digits:    o.Classes.Has(crypto.Digits),
		Symbols:   o.Classes.Has(crypto.Symbols),
	}
}

// viewToResponse converts a form.View to its API representation.
func viewToResponse(v form.View) model.FormResponse {
	resp := model.FormResponse{
		State:       v.State.String(),
		Options:     optionsToModel(v.Options),
		LengthError: v.LengthError,
	}
	if v.State == form.Shown {
		submitted := optionsToModel(v.Submitted)
		resp.Password = v.Password
		resp.Submitted = &submitted
	}
	return resp
}
