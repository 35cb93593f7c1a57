package service

import (
	"net/http"

	"github.com/everafterhq/everafter/internal/aggregate"
	"github.com/everafterhq/everafter/internal/models"
	"github.com/everafterhq/everafter/internal/storage"
)

// TaskService handles the wedding checklist.
type TaskService struct {
	store storage.Store
}

// NewTaskService creates a TaskService with the given storage backend.
func NewTaskService(store storage.Store) *TaskService {
	return &TaskService{store: store}
}

// Register mounts the task routes.
func (s *TaskService) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/tasks", s.handleList)
	mux.HandleFunc("POST /api/tasks", s.handleCreate)
	mux.HandleFunc("PATCH /api/tasks/{id}", s.handleUpdate)
	mux.HandleFunc("POST /api/tasks/{id}/toggle", s.handleToggle)
	mux.HandleFunc("DELETE /api/tasks/{id}", s.handleDelete)
}

type createTaskRequest struct {
	Title      string `json:"title" validate:"required"`
	DueDate    string `json:"due_date" validate:"omitempty,datetime=2006-01-02"`
	AssignedTo string `json:"assigned_to"`
}

type updateTaskRequest struct {
	Title      *string `json:"title"`
	DueDate    *string `json:"due_date" validate:"omitempty,datetime=2006-01-02"`
	AssignedTo *string `json:"assigned_to"`
	Completed  *bool   `json:"completed"`
}

type taskListResponse struct {
	Tasks   []models.Task         `json:"tasks"`
	Summary aggregate.TaskSummary `json:"summary"`
}

func (s *TaskService) handleList(w http.ResponseWriter, r *http.Request) {
	wedding, ok := currentWedding(w, r, s.store)
	if !ok {
		return
	}
	tasks, err := s.store.ListTasks(r.Context(), wedding.ID)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, taskListResponse{
		Tasks:   tasks,
		Summary: aggregate.SummarizeTasks(tasks),
	})
}

func (s *TaskService) handleCreate(w http.ResponseWriter, r *http.Request) {
	wedding, ok := currentWedding(w, r, s.store)
	if !ok {
		return
	}

	var req createTaskRequest
	if !decodeValid(w, r, &req) {
		return
	}

	task := &models.Task{
		WeddingID:  wedding.ID,
		Title:      req.Title,
		DueDate:    req.DueDate,
		AssignedTo: req.AssignedTo,
	}
	if err := s.store.CreateTask(r.Context(), task); err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, task)
}

func (s *TaskService) handleUpdate(w http.ResponseWriter, r *http.Request) {
	wedding, ok := currentWedding(w, r, s.store)
	if !ok {
		return
	}

	task, err := s.findTask(r, wedding.ID, r.PathValue("id"))
	if err != nil {
		writeStoreError(w, err)
		return
	}

	var req updateTaskRequest
	if !decodeValid(w, r, &req) {
		return
	}

	if req.Title != nil {
		task.Title = *req.Title
	}
	if req.DueDate != nil {
		task.DueDate = *req.DueDate
	}
	if req.AssignedTo != nil {
		task.AssignedTo = *req.AssignedTo
	}
	if req.Completed != nil {
		task.Completed = *req.Completed
	}

	if err := s.store.UpdateTask(r.Context(), task); err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, task)
}

// handleToggle persists the completed flip and returns the stored row, so
// the response always reflects what the database now holds.
func (s *TaskService) handleToggle(w http.ResponseWriter, r *http.Request) {
	wedding, ok := currentWedding(w, r, s.store)
	if !ok {
		return
	}
	task, err := s.store.ToggleTask(r.Context(), wedding.ID, r.PathValue("id"))
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, task)
}

func (s *TaskService) handleDelete(w http.ResponseWriter, r *http.Request) {
	wedding, ok := currentWedding(w, r, s.store)
	if !ok {
		return
	}
	if err := s.store.DeleteTask(r.Context(), wedding.ID, r.PathValue("id")); err != nil {
		writeStoreError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *TaskService) findTask(r *http.Request, weddingID, id string) (*models.Task, error) {
	tasks, err := s.store.ListTasks(r.Context(), weddingID)
	if err != nil {
		return nil, err
	}
	for i := range tasks {
		if tasks[i].ID == id {
			return &tasks[i], nil
		}
	}
	return nil, storage.ErrNotFound
}
