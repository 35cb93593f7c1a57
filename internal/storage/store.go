// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"
	"errors"

	"github.com/everafterhq/everafter/internal/models"
)

var (
	// ErrNotFound is returned when a requested row does not exist or is not
	// visible to the requesting wedding.
	ErrNotFound = errors.New("not found")

	// ErrConflict is returned on integrity violations: a second wedding for
	// one user, or duplicate wedding rows discovered on read.
	ErrConflict = errors.New("conflicting rows")
)

// Store defines the persistence operations for all planning entities.
// This abstraction allows swapping storage backends (SQLite, PostgreSQL,
// etc.) without changing the service layer.
//
// Every child-entity mutation takes the owning weddingID and only touches
// rows belonging to it; a row outside that scope behaves as missing.
// Stores assign IDs and timestamps on create.
type Store interface {
	// Users.
	CreateUser(ctx context.Context, user *models.User) error
	// GetUserByEmail returns (nil, nil) when no user has the email.
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	// GetUserByID returns (nil, nil) when the user does not exist.
	GetUserByID(ctx context.Context, id string) (*models.User, error)

	// Weddings. GetWeddingByUserID is a strict single-row fetch: it returns
	// ErrNotFound with no rows and ErrConflict when duplicates exist.
	CreateWedding(ctx context.Context, wedding *models.Wedding) error
	GetWeddingByUserID(ctx context.Context, userID string) (*models.Wedding, error)
	UpdateWedding(ctx context.Context, wedding *models.Wedding) error

	// Budget categories, ordered by creation time.
	ListBudgetCategories(ctx context.Context, weddingID string) ([]models.BudgetCategory, error)
	CreateBudgetCategory(ctx context.Context, category *models.BudgetCategory) error
	UpdateBudgetCategory(ctx context.Context, category *models.BudgetCategory) error
	DeleteBudgetCategory(ctx context.Context, weddingID, id string) error

	// Guests, ordered by creation time.
	ListGuests(ctx context.Context, weddingID string) ([]models.Guest, error)
	CreateGuest(ctx context.Context, guest *models.Guest) error
	UpdateGuest(ctx context.Context, guest *models.Guest) error
	DeleteGuest(ctx context.Context, weddingID, id string) error

	// Tasks, ordered by due date with undated tasks last.
	ListTasks(ctx context.Context, weddingID string) ([]models.Task, error)
	CreateTask(ctx context.Context, task *models.Task) error
	UpdateTask(ctx context.Context, task *models.Task) error
	// ToggleTask flips the completed flag in place and returns the new row.
	ToggleTask(ctx context.Context, weddingID, id string) (*models.Task, error)
	DeleteTask(ctx context.Context, weddingID, id string) error

	// Milestones, ordered by creation time. Created only by onboarding
	// seeding; there is no public mutation surface.
	ListMilestones(ctx context.Context, weddingID string) ([]models.Milestone, error)
	CreateMilestone(ctx context.Context, milestone *models.Milestone) error

	// Appointments, ordered by date then time.
	ListAppointments(ctx context.Context, weddingID string) ([]models.Appointment, error)
	CreateAppointment(ctx context.Context, appointment *models.Appointment) error
	UpdateAppointment(ctx context.Context, appointment *models.Appointment) error
	DeleteAppointment(ctx context.Context, weddingID, id string) error

	// Inspiration items, newest first.
	ListInspirationItems(ctx context.Context, weddingID string) ([]models.InspirationItem, error)
	GetInspirationItem(ctx context.Context, weddingID, id string) (*models.InspirationItem, error)
	CreateInspirationItem(ctx context.Context, item *models.InspirationItem) error
	SetInspirationShared(ctx context.Context, weddingID, id string, shared bool) (*models.InspirationItem, error)
	DeleteInspirationItem(ctx context.Context, weddingID, id string) error

	// Vendors: the global catalog, ordered by rating descending.
	ListVendors(ctx context.Context) ([]models.Vendor, error)

	// Close releases any resources held by the store.
	Close() error
}
