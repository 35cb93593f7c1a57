package service

import (
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/everafterhq/everafter/internal/aggregate"
	"github.com/everafterhq/everafter/internal/models"
	"github.com/everafterhq/everafter/internal/storage"
)

// BudgetService handles the budget summary and category CRUD.
type BudgetService struct {
	store storage.Store
}

// NewBudgetService creates a BudgetService with the given storage backend.
func NewBudgetService(store storage.Store) *BudgetService {
	return &BudgetService{store: store}
}

// Register mounts the budget routes.
func (s *BudgetService) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/budget", s.handleSummary)
	mux.HandleFunc("POST /api/budget/categories", s.handleCreate)
	mux.HandleFunc("PATCH /api/budget/categories/{id}", s.handleUpdate)
	mux.HandleFunc("DELETE /api/budget/categories/{id}", s.handleDelete)
}

type createCategoryRequest struct {
	Name     string           `json:"name" validate:"required"`
	Icon     string           `json:"icon"`
	Budgeted *decimal.Decimal `json:"budgeted" validate:"required"`
	Spent    *decimal.Decimal `json:"spent"`
}

type updateCategoryRequest struct {
	Name     *string          `json:"name"`
	Icon     *string          `json:"icon"`
	Budgeted *decimal.Decimal `json:"budgeted"`
	Spent    *decimal.Decimal `json:"spent"`
}

// handleSummary returns the full derived budget view: totals plus
// per-category remaining, percent used and over-budget labels.
func (s *BudgetService) handleSummary(w http.ResponseWriter, r *http.Request) {
	wedding, ok := currentWedding(w, r, s.store)
	if !ok {
		return
	}
	categories, err := s.store.ListBudgetCategories(r.Context(), wedding.ID)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, aggregate.SummarizeBudget(categories))
}

func (s *BudgetService) handleCreate(w http.ResponseWriter, r *http.Request) {
	wedding, ok := currentWedding(w, r, s.store)
	if !ok {
		return
	}

	var req createCategoryRequest
	if !decodeValid(w, r, &req) {
		return
	}
	if req.Budgeted.IsNegative() {
		writeError(w, http.StatusBadRequest, "budgeted must not be negative")
		return
	}

	category := &models.BudgetCategory{
		WeddingID: wedding.ID,
		Name:      req.Name,
		Icon:      models.IconOrDefault(req.Icon),
		Budgeted:  *req.Budgeted,
		Spent:     decimal.Zero,
	}
	if req.Spent != nil {
		if req.Spent.IsNegative() {
			writeError(w, http.StatusBadRequest, "spent must not be negative")
			return
		}
		category.Spent = *req.Spent
	}

	if err := s.store.CreateBudgetCategory(r.Context(), category); err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, category)
}

func (s *BudgetService) handleUpdate(w http.ResponseWriter, r *http.Request) {
	wedding, ok := currentWedding(w, r, s.store)
	if !ok {
		return
	}

	category, err := s.findCategory(r, wedding.ID, r.PathValue("id"))
	if err != nil {
		writeStoreError(w, err)
		return
	}

	var req updateCategoryRequest
	if !decodeValid(w, r, &req) {
		return
	}

	if req.Name != nil {
		category.Name = *req.Name
	}
	if req.Icon != nil {
		category.Icon = models.IconOrDefault(*req.Icon)
	}
	if req.Budgeted != nil {
		if req.Budgeted.IsNegative() {
			writeError(w, http.StatusBadRequest, "budgeted must not be negative")
			return
		}
		category.Budgeted = *req.Budgeted
	}
	if req.Spent != nil {
		if req.Spent.IsNegative() {
			writeError(w, http.StatusBadRequest, "spent must not be negative")
			return
		}
		category.Spent = *req.Spent
	}

	if err := s.store.UpdateBudgetCategory(r.Context(), category); err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, category)
}

func (s *BudgetService) handleDelete(w http.ResponseWriter, r *http.Request) {
	wedding, ok := currentWedding(w, r, s.store)
	if !ok {
		return
	}
	if err := s.store.DeleteBudgetCategory(r.Context(), wedding.ID, r.PathValue("id")); err != nil {
		writeStoreError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// findCategory loads one category scoped to the wedding. The list interface
// has no single-row getter, so updates read through the list.
func (s *BudgetService) findCategory(r *http.Request, weddingID, id string) (*models.BudgetCategory, error) {
	categories, err := s.store.ListBudgetCategories(r.Context(), weddingID)
	if err != nil {
		return nil, err
	}
	for i := range categories {
		if categories[i].ID == id {
			return &categories[i], nil
		}
	}
	return nil, storage.ErrNotFound
}
