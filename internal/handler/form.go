package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/vaultpass/passgen-go/internal/crypto"
	"github.com/vaultpass/passgen-go/internal/form"
	"github.com/vaultpass/passgen-go/internal/middleware"
	"github.com/vaultpass/passgen-go/internal/model"
	"github.com/vaultpass/passgen-go/internal/service"
	"github.com/vaultpass/passgen-go/internal/validator"
)

// FormHandler handles HTTP requests for form sessions.
type FormHandler struct {
	service *service.FormService
}

// NewFormHandler creates a new FormHandler.
func NewFormHandler(svc *service.FormService) *FormHandler {
	return &FormHandler{service: svc}
}

// HandleCreate handles POST /api/v1/forms requests.
func (h *FormHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	resp, err := h.service.CreateForm()
	if err != nil {
		slog.Error("create form failed", "error", err)
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

// HandleGet handles GET /api/v1/form requests.
func (h *FormHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, ok := middleware.FormIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("unauthorized"))
		return
	}

	resp, err := h.service.GetForm(id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// HandleSetLength handles PUT /api/v1/form/length requests. A rejected length
// still answers 200; the message is in length_error.
func (h *FormHandler) HandleSetLength(w http.ResponseWriter, r *http.Request) {
	id, ok := middleware.FormIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("unauthorized"))
		return
	}

	var req model.SetLengthRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	resp, err := h.service.SetLength(id, string(req.Length))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// HandleSetClass handles PUT /api/v1/form/classes/{class} requests.
func (h *FormHandler) HandleSetClass(w http.ResponseWriter, r *http.Request) {
	id, ok := middleware.FormIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("unauthorized"))
		return
	}

	var req model.SetClassRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	resp, err := h.service.SetClass(id, chi.URLParam(r, "class"), req.Enabled)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// HandleSubmit handles POST /api/v1/form/submit requests.
func (h *FormHandler) HandleSubmit(w http.ResponseWriter, r *http.Request) {
	id, ok := middleware.FormIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("unauthorized"))
		return
	}

	resp, err := h.service.Submit(id)
	if err != nil {
		if isInternal(err) {
			slog.Error("submit failed", "form_id", id, "error", err)
		}
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// HandleReset handles POST /api/v1/form/reset requests.
func (h *FormHandler) HandleReset(w http.ResponseWriter, r *http.Request) {
	id, ok := middleware.FormIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("unauthorized"))
		return
	}

	resp, err := h.service.Reset(id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// HandleDelete handles DELETE /api/v1/form requests.
func (h *FormHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := middleware.FormIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("unauthorized"))
		return
	}

	if err := h.service.DeleteForm(id); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func isInternal(err error) bool {
	return !errors.Is(err, validator.ErrInvalidLength) &&
		!errors.Is(err, crypto.ErrNoCharacterClassSelected) &&
		!errors.Is(err, crypto.ErrUnknownClass) &&
		!errors.Is(err, form.ErrFormNotFound)
}
