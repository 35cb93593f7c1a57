package service

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/everafterhq/everafter/internal/aggregate"
	"github.com/everafterhq/everafter/internal/middleware"
	"github.com/everafterhq/everafter/internal/models"
	"github.com/everafterhq/everafter/internal/storage"
)

// WeddingService handles onboarding, wedding details, the dashboard and the
// planning timeline.
type WeddingService struct {
	store storage.Store
}

// NewWeddingService creates a WeddingService with the given storage backend.
func NewWeddingService(store storage.Store) *WeddingService {
	return &WeddingService{store: store}
}

// Register mounts the wedding routes.
func (s *WeddingService) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/wedding", s.handleGet)
	mux.HandleFunc("POST /api/wedding", s.handleCreate)
	mux.HandleFunc("PATCH /api/wedding", s.handleUpdate)
	mux.HandleFunc("GET /api/dashboard", s.handleDashboard)
	mux.HandleFunc("GET /api/milestones", s.handleMilestones)
}

type createWeddingRequest struct {
	PartnerEmail string           `json:"partner_email" validate:"omitempty,email"`
	WeddingDate  string           `json:"wedding_date" validate:"omitempty,datetime=2006-01-02"`
	Location     string           `json:"location"`
	Theme        string           `json:"theme"`
	TotalBudget  *decimal.Decimal `json:"total_budget" validate:"required"`
}

type updateWeddingRequest struct {
	PartnerEmail *string          `json:"partner_email" validate:"omitempty,email"`
	WeddingDate  *string          `json:"wedding_date" validate:"omitempty,datetime=2006-01-02"`
	Location     *string          `json:"location"`
	Theme        *string          `json:"theme"`
	TotalBudget  *decimal.Decimal `json:"total_budget"`
}

func (s *WeddingService) handleGet(w http.ResponseWriter, r *http.Request) {
	wedding, ok := currentWedding(w, r, s.store)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, wedding)
}

// handleCreate is the onboarding endpoint. Alongside the wedding row it
// seeds the planning timeline and a starter set of budget categories, so a
// fresh account lands on a populated app rather than empty lists.
func (s *WeddingService) handleCreate(w http.ResponseWriter, r *http.Request) {
	var req createWeddingRequest
	if !decodeValid(w, r, &req) {
		return
	}
	if req.TotalBudget.IsNegative() {
		writeError(w, http.StatusBadRequest, "total_budget must not be negative")
		return
	}

	wedding := &models.Wedding{
		UserID:       middleware.GetUserID(r.Context()),
		PartnerEmail: req.PartnerEmail,
		WeddingDate:  req.WeddingDate,
		Location:     req.Location,
		Theme:        req.Theme,
		TotalBudget:  *req.TotalBudget,
	}
	if err := s.store.CreateWedding(r.Context(), wedding); err != nil {
		writeStoreError(w, err)
		return
	}

	if err := s.seedDefaults(r, wedding); err != nil {
		slog.Error("onboarding seed failed", "wedding_id", wedding.ID, "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	slog.Info("wedding created", "wedding_id", wedding.ID, "user_id", wedding.UserID)
	writeJSON(w, http.StatusCreated, wedding)
}

func (s *WeddingService) handleUpdate(w http.ResponseWriter, r *http.Request) {
	wedding, ok := currentWedding(w, r, s.store)
	if !ok {
		return
	}

	var req updateWeddingRequest
	if !decodeValid(w, r, &req) {
		return
	}

	if req.PartnerEmail != nil {
		wedding.PartnerEmail = *req.PartnerEmail
	}
	if req.WeddingDate != nil {
		wedding.WeddingDate = *req.WeddingDate
	}
	if req.Location != nil {
		wedding.Location = *req.Location
	}
	if req.Theme != nil {
		wedding.Theme = *req.Theme
	}
	if req.TotalBudget != nil {
		if req.TotalBudget.IsNegative() {
			writeError(w, http.StatusBadRequest, "total_budget must not be negative")
			return
		}
		wedding.TotalBudget = *req.TotalBudget
	}

	if err := s.store.UpdateWedding(r.Context(), wedding); err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, wedding)
}

// handleDashboard recomputes the stat block from current rows on every
// request. Before onboarding it returns the zero state with onboarded false
// instead of a 404, so the client can branch without an error path.
func (s *WeddingService) handleDashboard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := middleware.GetUserID(ctx)

	wedding, err := s.store.GetWeddingByUserID(ctx, userID)
	if err != nil && !errors.Is(err, storage.ErrNotFound) {
		writeStoreError(w, err)
		return
	}

	var tasks []models.Task
	var guests []models.Guest
	var categories []models.BudgetCategory
	if wedding != nil {
		if tasks, err = s.store.ListTasks(ctx, wedding.ID); err != nil {
			writeStoreError(w, err)
			return
		}
		if guests, err = s.store.ListGuests(ctx, wedding.ID); err != nil {
			writeStoreError(w, err)
			return
		}
		if categories, err = s.store.ListBudgetCategories(ctx, wedding.ID); err != nil {
			writeStoreError(w, err)
			return
		}
	}

	summary, err := aggregate.SummarizeDashboard(wedding, tasks, guests, categories)
	if err != nil {
		slog.Error("dashboard aggregation failed", "user_id", userID, "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusOK, summary)
}

func (s *WeddingService) handleMilestones(w http.ResponseWriter, r *http.Request) {
	wedding, ok := currentWedding(w, r, s.store)
	if !ok {
		return
	}
	milestones, err := s.store.ListMilestones(r.Context(), wedding.ID)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, milestones)
}

func (s *WeddingService) seedDefaults(r *http.Request, wedding *models.Wedding) error {
	ctx := r.Context()
	for _, m := range defaultMilestones {
		milestone := m
		milestone.WeddingID = wedding.ID
		if err := s.store.CreateMilestone(ctx, &milestone); err != nil {
			return err
		}
	}
	for _, c := range defaultCategories {
		category := models.BudgetCategory{
			WeddingID: wedding.ID,
			Name:      c.name,
			Icon:      c.icon,
			Budgeted:  decimal.Zero,
			Spent:     decimal.Zero,
		}
		if err := s.store.CreateBudgetCategory(ctx, &category); err != nil {
			return err
		}
	}
	return nil
}

var defaultMilestones = []models.Milestone{
	{
		Title:       "Set the foundation",
		Description: "Pick a date, set a budget, draft the guest list and book your venue.",
		Timeframe:   "12+ months",
	},
	{
		Title:       "Book key vendors",
		Description: "Lock in catering, photography, music and flowers before calendars fill up.",
		Timeframe:   "9-12 months",
	},
	{
		Title:       "Dress and details",
		Description: "Shop attire, order invitations and plan decoration and cake tastings.",
		Timeframe:   "6-9 months",
	},
	{
		Title:       "Send invitations",
		Description: "Mail invitations, track RSVPs and finalize the menu.",
		Timeframe:   "3-6 months",
	},
	{
		Title:       "Confirm everything",
		Description: "Reconfirm vendors, finish the seating chart and build the day-of timeline.",
		Timeframe:   "Final month",
	},
}

var defaultCategories = []struct {
	name string
	icon models.CategoryIcon
}{
	{"Venue & Reception", models.IconVenue},
	{"Catering", models.IconCatering},
	{"Photography", models.IconPhotography},
	{"Flowers", models.IconFlowers},
	{"Music & Entertainment", models.IconMusic},
	{"Decoration", models.IconDecoration},
	{"Cake", models.IconCake},
}
