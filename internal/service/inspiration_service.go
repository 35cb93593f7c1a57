package service

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/everafterhq/everafter/internal/blob"
	"github.com/everafterhq/everafter/internal/middleware"
	"github.com/everafterhq/everafter/internal/models"
	"github.com/everafterhq/everafter/internal/storage"
)

// maxUploadBytes caps inspiration uploads at 32 MiB.
const maxUploadBytes = 32 << 20

// InspirationService handles the inspiration board. Media binaries live in
// blob storage; rows reference them by key. Uploads store the blob before
// the row, deletes remove the blob before the row, so a failure at either
// step never leaves a row pointing at a missing object.
type InspirationService struct {
	store storage.Store
	blobs blob.Store
}

// NewInspirationService creates an InspirationService with the given
// storage backends.
func NewInspirationService(store storage.Store, blobs blob.Store) *InspirationService {
	return &InspirationService{store: store, blobs: blobs}
}

// Register mounts the inspiration routes.
func (s *InspirationService) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/inspiration", s.handleList)
	mux.HandleFunc("POST /api/inspiration", s.handleUpload)
	mux.HandleFunc("PATCH /api/inspiration/{id}", s.handleShare)
	mux.HandleFunc("DELETE /api/inspiration/{id}", s.handleDelete)
}

type shareRequest struct {
	SharedWithVendors *bool `json:"shared_with_vendors" validate:"required"`
}

func (s *InspirationService) handleList(w http.ResponseWriter, r *http.Request) {
	wedding, ok := currentWedding(w, r, s.store)
	if !ok {
		return
	}
	items, err := s.store.ListInspirationItems(r.Context(), wedding.ID)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

// handleUpload accepts a multipart form with a "file" part plus optional
// "title" and "notes" fields. The media type comes from the part's
// Content-Type; anything other than image/* or video/* is rejected.
func (s *InspirationService) handleUpload(w http.ResponseWriter, r *http.Request) {
	wedding, ok := currentWedding(w, r, s.store)
	if !ok {
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		writeError(w, http.StatusBadRequest, "invalid multipart form")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "file part required")
		return
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	mediaType, ok := mediaTypeFor(contentType)
	if !ok {
		writeError(w, http.StatusBadRequest, "file must be an image or a video")
		return
	}

	key := blob.NewKey(middleware.GetUserID(r.Context()), header.Filename)
	url, err := s.blobs.Put(r.Context(), key, contentType, file)
	if err != nil {
		slog.Error("media upload failed", "key", key, "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	item := &models.InspirationItem{
		WeddingID: wedding.ID,
		MediaURL:  url,
		MediaKey:  key,
		MediaType: mediaType,
		Title:     r.FormValue("title"),
		Notes:     r.FormValue("notes"),
	}
	if err := s.store.CreateInspirationItem(r.Context(), item); err != nil {
		// Roll the blob back so the failed insert leaves nothing behind.
		if rmErr := s.blobs.Remove(r.Context(), key); rmErr != nil {
			slog.Error("orphaned blob after failed insert", "key", key, "error", rmErr)
		}
		writeStoreError(w, err)
		return
	}

	slog.Info("inspiration item uploaded", "item_id", item.ID, "media_type", item.MediaType)
	writeJSON(w, http.StatusCreated, item)
}

func (s *InspirationService) handleShare(w http.ResponseWriter, r *http.Request) {
	wedding, ok := currentWedding(w, r, s.store)
	if !ok {
		return
	}

	var req shareRequest
	if !decodeValid(w, r, &req) {
		return
	}

	item, err := s.store.SetInspirationShared(r.Context(), wedding.ID, r.PathValue("id"), *req.SharedWithVendors)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

// handleDelete removes the blob first and aborts on failure, keeping the
// row alive so the delete can be retried.
func (s *InspirationService) handleDelete(w http.ResponseWriter, r *http.Request) {
	wedding, ok := currentWedding(w, r, s.store)
	if !ok {
		return
	}

	item, err := s.store.GetInspirationItem(r.Context(), wedding.ID, r.PathValue("id"))
	if err != nil {
		writeStoreError(w, err)
		return
	}

	if err := s.blobs.Remove(r.Context(), item.MediaKey); err != nil {
		slog.Error("media removal failed", "key", item.MediaKey, "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	if err := s.store.DeleteInspirationItem(r.Context(), wedding.ID, item.ID); err != nil {
		writeStoreError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func mediaTypeFor(contentType string) (models.MediaType, bool) {
	switch {
	case strings.HasPrefix(contentType, "image/"):
		return models.MediaImage, true
	case strings.HasPrefix(contentType, "video/"):
		return models.MediaVideo, true
	}
	return "", false
}
