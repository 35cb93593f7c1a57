package service

import (
	"net/http"

	"github.com/everafterhq/everafter/internal/aggregate"
	"github.com/everafterhq/everafter/internal/models"
	"github.com/everafterhq/everafter/internal/storage"
)

// AppointmentService handles the wedding calendar.
type AppointmentService struct {
	store storage.Store
}

// NewAppointmentService creates an AppointmentService with the given
// storage backend.
func NewAppointmentService(store storage.Store) *AppointmentService {
	return &AppointmentService{store: store}
}

// Register mounts the appointment routes.
func (s *AppointmentService) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/appointments", s.handleList)
	mux.HandleFunc("POST /api/appointments", s.handleCreate)
	mux.HandleFunc("PATCH /api/appointments/{id}", s.handleUpdate)
	mux.HandleFunc("DELETE /api/appointments/{id}", s.handleDelete)
}

type createAppointmentRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
	Date        string `json:"date" validate:"required,datetime=2006-01-02"`
	Time        string `json:"time" validate:"omitempty,datetime=15:04"`
	Location    string `json:"location"`
}

type updateAppointmentRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Date        *string `json:"date" validate:"omitempty,datetime=2006-01-02"`
	Time        *string `json:"time" validate:"omitempty,datetime=15:04"`
	Location    *string `json:"location"`
}

// handleList returns the wedding calendar, optionally narrowed to one day
// via ?date=YYYY-MM-DD. Day filtering matches the date field only.
func (s *AppointmentService) handleList(w http.ResponseWriter, r *http.Request) {
	wedding, ok := currentWedding(w, r, s.store)
	if !ok {
		return
	}
	appointments, err := s.store.ListAppointments(r.Context(), wedding.ID)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	if day := r.URL.Query().Get("date"); day != "" {
		appointments = aggregate.AppointmentsOn(appointments, day)
	}
	writeJSON(w, http.StatusOK, appointments)
}

func (s *AppointmentService) handleCreate(w http.ResponseWriter, r *http.Request) {
	wedding, ok := currentWedding(w, r, s.store)
	if !ok {
		return
	}

	var req createAppointmentRequest
	if !decodeValid(w, r, &req) {
		return
	}

	appointment := &models.Appointment{
		WeddingID:   wedding.ID,
		Title:       req.Title,
		Description: req.Description,
		Date:        req.Date,
		Time:        req.Time,
		Location:    req.Location,
	}
	if err := s.store.CreateAppointment(r.Context(), appointment); err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, appointment)
}

func (s *AppointmentService) handleUpdate(w http.ResponseWriter, r *http.Request) {
	wedding, ok := currentWedding(w, r, s.store)
	if !ok {
		return
	}

	appointment, err := s.findAppointment(r, wedding.ID, r.PathValue("id"))
	if err != nil {
		writeStoreError(w, err)
		return
	}

	var req updateAppointmentRequest
	if !decodeValid(w, r, &req) {
		return
	}

	if req.Title != nil {
		appointment.Title = *req.Title
	}
	if req.Description != nil {
		appointment.Description = *req.Description
	}
	if req.Date != nil {
		appointment.Date = *req.Date
	}
	if req.Time != nil {
		appointment.Time = *req.Time
	}
	if req.Location != nil {
		appointment.Location = *req.Location
	}

	if err := s.store.UpdateAppointment(r.Context(), appointment); err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, appointment)
}

func (s *AppointmentService) handleDelete(w http.ResponseWriter, r *http.Request) {
	wedding, ok := currentWedding(w, r, s.store)
	if !ok {
		return
	}
	if err := s.store.DeleteAppointment(r.Context(), wedding.ID, r.PathValue("id")); err != nil {
		writeStoreError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *AppointmentService) findAppointment(r *http.Request, weddingID, id string) (*models.Appointment, error) {
	appointments, err := s.store.ListAppointments(r.Context(), weddingID)
	if err != nil {
		return nil, err
	}
	for i := range appointments {
		if appointments[i].ID == id {
			return &appointments[i], nil
		}
	}
	return nil, storage.ErrNotFound
}
