// Package form holds the state behind the password form: the length field,
// the four class toggles and the password last generated from them.
package form

import (
	"github.com/vaultpass/passgen-go/internal/crypto"
	"github.com/vaultpass/passgen-go/internal/validator"
)

// State is the display state of a form.
type State int

const (
	Idle State = iota
	Shown
)

func (s State) String() string {
	if s == Shown {
		return "shown"
	}
	return "idle"
}

// DefaultClasses is the toggle selection of a fresh or reset form.
func DefaultClasses() crypto.Classes {
	return crypto.NewClasses(crypto.Lowercase)
}

// Options are the user-editable inputs of a form.
type Options struct {
	Length  string
	Classes crypto.Classes
}

// View is a copy of a form's state for display.
type View struct {
	State     State
	Options   Options
	Password  string
	Submitted Options
	// LengthError is the inline message for the current length text, if any.
	LengthError string
}

// Form is the mutable state of one password form. It is not safe for
// concurrent use.
type Form struct {
	validator validator.Validator
	options   Options
	submitted Options
	password  string
	state     State
}

// New returns an idle form with default toggles and an empty length field.
func New(v validator.Validator) *Form {
	f := &Form{validator: v}
	f.Reset()
	return f
}

// SetLength stores the length text and returns the validation verdict for it.
// A rejected length is still stored so it can be corrected.
func (f *Form) SetLength(text string) error {
	f.options.Length = text
	_, err := f.validator.ValidateLength(text)
	return err
}

// SetClass enables or disables one character class.
func (f *Form) SetClass(c crypto.CharClass, on bool) {
	if on {
		f.options.Classes = f.options.Classes.With(c)
	} else {
		f.options.Classes = f.options.Classes.Without(c)
	}
}

// Toggle flips one character class.
func (f *Form) Toggle(c crypto.CharClass) {
	f.SetClass(c, !f.options.Classes.Has(c))
}

// Submit validates the current options and, only if they pass, generates a
// password and moves the form to Shown. On error the form is left unchanged.
func (f *Form) Submit(g *crypto.Generator) (string, error) {
	length, err := f.validator.ValidateLength(f.options.Length)
	if err != nil {
		return "", err
	}

	password, err := g.Generate(length, f.options.Classes)
	if err != nil {
		return "", err
	}

	f.password = password
	f.submitted = f.options
	f.state = Shown
	return password, nil
}

// Reset clears the password and restores the length field and toggles to
// their initial values.
func (f *Form) Reset() {
	f.options = Options{Classes: DefaultClasses()}
	f.submitted = Options{}
	f.password = ""
	f.state = Idle
}

// State returns the current display state.
func (f *Form) State() State {
	return f.state
}

// View returns a snapshot of the form.
func (f *Form) View() View {
	v := View{
		State:     f.state,
		Options:   f.options,
		Password:  f.password,
		Submitted: f.submitted,
	}
	// An untouched field is not reported as an error.
	if f.options.Length != "" {
		if _, err := f.validator.ValidateLength(f.options.Length); err != nil {
			v.LengthError = err.Error()
		}
	}
	return v
}
