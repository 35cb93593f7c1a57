package service

import (
	"net/http"

	"github.com/everafterhq/everafter/internal/aggregate"
	"github.com/everafterhq/everafter/internal/storage"
)

// VendorService serves the read-only vendor catalog.
type VendorService struct {
	store storage.Store
}

// NewVendorService creates a VendorService with the given storage backend.
func NewVendorService(store storage.Store) *VendorService {
	return &VendorService{store: store}
}

// Register mounts the vendor routes.
func (s *VendorService) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/vendors", s.handleList)
}

// handleList returns the catalog ordered by rating, optionally filtered by
// ?q= (substring on name and description) and ?category=.
func (s *VendorService) handleList(w http.ResponseWriter, r *http.Request) {
	vendors, err := s.store.ListVendors(r.Context())
	if err != nil {
		writeStoreError(w, err)
		return
	}

	query := r.URL.Query().Get("q")
	category := r.URL.Query().Get("category")
	writeJSON(w, http.StatusOK, aggregate.FilterVendors(vendors, query, category))
}
