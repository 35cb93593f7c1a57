// Package service implements the JSON HTTP API.
//
// Each entity gets its own service struct that registers routes on a
// ServeMux. Handlers are thin: decode and validate the request, call the
// store (and the aggregate package for derived metrics), encode the result.
// All /api/ routes except auth run behind the JWT middleware, so handlers
// can assume a user ID in the request context.
package service

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/everafterhq/everafter/internal/middleware"
	"github.com/everafterhq/everafter/internal/models"
	"github.com/everafterhq/everafter/internal/storage"
)

// validate is shared by all services; it only reads struct tags, so
// concurrent use is fine.
var validate = validator.New(validator.WithRequiredStructEnabled())

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

// writeStoreError maps storage sentinels to HTTP statuses. Anything
// unrecognized is a 500 with a generic body; the real error goes to the log.
func writeStoreError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, storage.ErrNotFound):
		writeError(w, http.StatusNotFound, "not found")
	case errors.Is(err, storage.ErrConflict):
		writeError(w, http.StatusConflict, err.Error())
	default:
		slog.Error("storage operation failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}

// decodeValid decodes the JSON body into v and runs struct validation.
// A false return means the error response has already been written.
func decodeValid(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	if err := validate.Struct(v); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return false
	}
	return true
}

// currentWedding resolves the authenticated user's wedding. It is the scope
// check every child-entity handler runs first: no wedding means 404, and a
// duplicate-row conflict surfaces as 409.
func currentWedding(w http.ResponseWriter, r *http.Request, store storage.Store) (*models.Wedding, bool) {
	userID := middleware.GetUserID(r.Context())
	wedding, err := store.GetWeddingByUserID(r.Context(), userID)
	if err != nil {
		writeStoreError(w, err)
		return nil, false
	}
	return wedding, true
}
