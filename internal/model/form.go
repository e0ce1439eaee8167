package model

// FormOptions mirrors the editable inputs of a form.
type FormOptions struct {
	Length    string `json:"length"`
	Uppercase bool   `json:"uppercase"`
	Lowercase bool   `json:"lowercase"`
	Digits    bool   `json:"digits"`
	Symbols   bool   `json:"symbols"`
}

// FormResponse is the display state of a form session.
type FormResponse struct {
	State       string       `json:"state"`
	Options     FormOptions  `json:"options"`
	Password    string       `json:"password,omitempty"`
	Submitted   *FormOptions `json:"submitted,omitempty"`
	LengthError string       `json:"length_error,omitempty"`
}

// CreateFormResponse is returned when a new form session starts.
type CreateFormResponse struct {
	Token string       `json:"token"`
	Form  FormResponse `json:"form"`
}

// SetLengthRequest updates the length field.
type SetLengthRequest struct {
	Length LengthText `json:"length"`
}

// SetClassRequest enables or disables a character class.
type SetClassRequest struct {
	Enabled bool `json:"enabled"`
}
