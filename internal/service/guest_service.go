package service

import (
	"net/http"

	"github.com/everafterhq/everafter/internal/aggregate"
	"github.com/everafterhq/everafter/internal/models"
	"github.com/everafterhq/everafter/internal/storage"
)

// GuestService handles the guest list and its RSVP summary.
type GuestService struct {
	store storage.Store
}

// NewGuestService creates a GuestService with the given storage backend.
func NewGuestService(store storage.Store) *GuestService {
	return &GuestService{store: store}
}

// Register mounts the guest routes.
func (s *GuestService) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/guests", s.handleList)
	mux.HandleFunc("POST /api/guests", s.handleCreate)
	mux.HandleFunc("PATCH /api/guests/{id}", s.handleUpdate)
	mux.HandleFunc("DELETE /api/guests/{id}", s.handleDelete)
}

type createGuestRequest struct {
	Name       string `json:"name" validate:"required"`
	Email      string `json:"email" validate:"omitempty,email"`
	Category   string `json:"category"`
	RSVPStatus string `json:"rsvp_status" validate:"omitempty,oneof=invited confirmed declined"`
}

type updateGuestRequest struct {
	Name       *string `json:"name"`
	Email      *string `json:"email" validate:"omitempty,email"`
	Category   *string `json:"category"`
	RSVPStatus *string `json:"rsvp_status" validate:"omitempty,oneof=invited confirmed declined"`
}

type guestListResponse struct {
	Guests  []models.Guest         `json:"guests"`
	Summary aggregate.GuestSummary `json:"summary"`
}

func (s *GuestService) handleList(w http.ResponseWriter, r *http.Request) {
	wedding, ok := currentWedding(w, r, s.store)
	if !ok {
		return
	}
	guests, err := s.store.ListGuests(r.Context(), wedding.ID)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	summary, err := aggregate.SummarizeGuests(guests)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusOK, guestListResponse{Guests: guests, Summary: summary})
}

func (s *GuestService) handleCreate(w http.ResponseWriter, r *http.Request) {
	wedding, ok := currentWedding(w, r, s.store)
	if !ok {
		return
	}

	var req createGuestRequest
	if !decodeValid(w, r, &req) {
		return
	}

	guest := &models.Guest{
		WeddingID:  wedding.ID,
		Name:       req.Name,
		Email:      req.Email,
		Category:   req.Category,
		RSVPStatus: models.RSVPStatus(req.RSVPStatus),
	}
	if err := s.store.CreateGuest(r.Context(), guest); err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, guest)
}

func (s *GuestService) handleUpdate(w http.ResponseWriter, r *http.Request) {
	wedding, ok := currentWedding(w, r, s.store)
	if !ok {
		return
	}

	guest, err := s.findGuest(r, wedding.ID, r.PathValue("id"))
	if err != nil {
		writeStoreError(w, err)
		return
	}

	var req updateGuestRequest
	if !decodeValid(w, r, &req) {
		return
	}

	if req.Name != nil {
		guest.Name = *req.Name
	}
	if req.Email != nil {
		guest.Email = *req.Email
	}
	if req.Category != nil {
		guest.Category = *req.Category
	}
	if req.RSVPStatus != nil {
		guest.RSVPStatus = models.RSVPStatus(*req.RSVPStatus)
	}

	if err := s.store.UpdateGuest(r.Context(), guest); err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, guest)
}

func (s *GuestService) handleDelete(w http.ResponseWriter, r *http.Request) {
	wedding, ok := currentWedding(w, r, s.store)
	if !ok {
		return
	}
	if err := s.store.DeleteGuest(r.Context(), wedding.ID, r.PathValue("id")); err != nil {
		writeStoreError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *GuestService) findGuest(r *http.Request, weddingID, id string) (*models.Guest, error) {
	guests, err := s.store.ListGuests(r.Context(), weddingID)
	if err != nil {
		return nil, err
	}
	for i := range guests {
		if guests[i].ID == id {
			return &guests[i], nil
		}
	}
	return nil, storage.ErrNotFound
}
