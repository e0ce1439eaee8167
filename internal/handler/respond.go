package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/vaultpass/passgen-go/internal/crypto"
	"github.com/vaultpass/passgen-go/internal/form"
	"github.com/vaultpass/passgen-go/internal/model"
	"github.com/vaultpass/passgen-go/internal/validator"
)

// decodeJSON reads a JSON body into v, writing the error response itself when
// decoding fails. An empty body leaves v untouched.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	if r.Body == nil || r.Body == http.NoBody {
		return true
	}
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20) // 1MB
	defer r.Body.Close()

	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		var maxErr *http.MaxBytesError
		switch {
		case errors.Is(err, io.EOF):
			return true
		case errors.As(err, &maxErr):
			writeJSON(w, http.StatusRequestEntityTooLarge, errorResponse("request body too large"))
		default:
			writeJSON(w, http.StatusBadRequest, errorResponse("invalid request body"))
		}
		return false
	}
	return true
}

// writeError maps domain errors to status codes. Anything else is a 500
// without detail.
func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, validator.ErrInvalidLength):
		writeJSON(w, http.StatusBadRequest, model.ErrorResponse{Error: err.Error(), Field: "length"})
	case errors.Is(err, crypto.ErrNoCharacterClassSelected):
		writeJSON(w, http.StatusBadRequest, model.ErrorResponse{Error: err.Error(), Field: "classes"})
	case errors.Is(err, crypto.ErrUnknownClass):
		writeJSON(w, http.StatusBadRequest, model.ErrorResponse{Error: err.Error(), Field: "classes"})
	case errors.Is(err, form.ErrFormNotFound):
		writeJSON(w, http.StatusNotFound, errorResponse(err.Error()))
	default:
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func errorResponse(msg string) model.ErrorResponse {
	return model.ErrorResponse{Error: msg}
}
