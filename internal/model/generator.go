package model

import (
	"bytes"
	"encoding/json"
)

// LengthText is a password length as the user entered it. It decodes from
// either a JSON number or a JSON string so the validator sees the raw text.
type LengthText string

func (l *LengthText) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*l = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*l = LengthText(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*l = LengthText(n.String())
	return nil
}

// GenerateRequest represents a one-shot password generation request.
// Pointer bools distinguish a missing toggle (form default) from an explicit false.
type GenerateRequest struct {
	Length    LengthText `json:"length"`
	Uppercase *bool      `json:"uppercase"`
	Lowercase *bool      `json:"lowercase"`
	Digits    *bool      `json:"digits"`
	Symbols   *bool      `json:"symbols"`
}

// GenerateResponse represents a password generation response.
type GenerateResponse struct {
	Password string   `json:"password"`
	Length   int      `json:"length"`
	Classes  []string `json:"classes"`
}

// ErrorResponse is the body of every failed request. Field names the form
// input the error belongs to, when there is one.
type ErrorResponse struct {
	Error string `json:"error"`
	Field string `json:"field,omitempty"`
}
