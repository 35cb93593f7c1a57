package sqlite

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/everafterhq/everafter/internal/models"
	"github.com/everafterhq/everafter/internal/storage"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()

	tempDir, err := os.MkdirTemp("", "everafter-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	t.Cleanup(func() { os.RemoveAll(tempDir) })

	store, err := New(filepath.Join(tempDir, "test.db"))
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	return store
}

func createTestWedding(t *testing.T, store *SQLiteStore, userEmail string) *models.Wedding {
	t.Helper()
	ctx := context.Background()

	user := models.NewUser(userEmail, "Test User", "hash")
	if err := store.CreateUser(ctx, user); err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}

	wedding := &models.Wedding{
		UserID:      user.ID,
		WeddingDate: "2026-06-20",
		Location:    "Lisbon",
		TotalBudget: decimal.NewFromInt(30000),
	}
	if err := store.CreateWedding(ctx, wedding); err != nil {
		t.Fatalf("CreateWedding failed: %v", err)
	}
	return wedding
}

func TestWeddings(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	t.Run("create assigns ID and timestamps", func(t *testing.T) {
		wedding := createTestWedding(t, store, "couple@example.com")
		if wedding.ID == "" {
			t.Error("Expected wedding ID to be generated")
		}
		if wedding.CreatedAt == 0 {
			t.Error("Expected CreatedAt to be set")
		}
	})

	t.Run("get by user returns the single row", func(t *testing.T) {
		wedding := createTestWedding(t, store, "solo@example.com")

		got, err := store.GetWeddingByUserID(ctx, wedding.UserID)
		if err != nil {
			t.Fatalf("GetWeddingByUserID failed: %v", err)
		}
		if got.ID != wedding.ID {
			t.Errorf("ID mismatch: got %s, want %s", got.ID, wedding.ID)
		}
		if !got.TotalBudget.Equal(decimal.NewFromInt(30000)) {
			t.Errorf("TotalBudget = %s, want 30000", got.TotalBudget)
		}
	})

	t.Run("missing wedding yields ErrNotFound", func(t *testing.T) {
		_, err := store.GetWeddingByUserID(ctx, "no-such-user")
		if !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("second wedding for a user yields ErrConflict", func(t *testing.T) {
		wedding := createTestWedding(t, store, "twice@example.com")

		err := store.CreateWedding(ctx, &models.Wedding{UserID: wedding.UserID})
		if !errors.Is(err, storage.ErrConflict) {
			t.Errorf("expected ErrConflict, got %v", err)
		}
	})

	t.Run("update persists changes", func(t *testing.T) {
		wedding := createTestWedding(t, store, "update@example.com")
		wedding.Location = "Porto"
		wedding.TotalBudget = decimal.NewFromInt(45000)

		if err := store.UpdateWedding(ctx, wedding); err != nil {
			t.Fatalf("UpdateWedding failed: %v", err)
		}

		got, err := store.GetWeddingByUserID(ctx, wedding.UserID)
		if err != nil {
			t.Fatalf("GetWeddingByUserID failed: %v", err)
		}
		if got.Location != "Porto" || !got.TotalBudget.Equal(decimal.NewFromInt(45000)) {
			t.Errorf("update not persisted: location=%s budget=%s", got.Location, got.TotalBudget)
		}
	})
}

func TestBudgetCategories(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	wedding := createTestWedding(t, store, "budget@example.com")

	t.Run("create and list preserve money values", func(t *testing.T) {
		cat := &models.BudgetCategory{
			WeddingID: wedding.ID,
			Name:      "Venue",
			Icon:      models.IconVenue,
			Budgeted:  decimal.RequireFromString("10000.50"),
			Spent:     decimal.NewFromInt(2500),
		}
		if err := store.CreateBudgetCategory(ctx, cat); err != nil {
			t.Fatalf("CreateBudgetCategory failed: %v", err)
		}

		categories, err := store.ListBudgetCategories(ctx, wedding.ID)
		if err != nil {
			t.Fatalf("ListBudgetCategories failed: %v", err)
		}
		if len(categories) != 1 {
			t.Fatalf("expected 1 category, got %d", len(categories))
		}
		if !categories[0].Budgeted.Equal(decimal.RequireFromString("10000.50")) {
			t.Errorf("Budgeted = %s, want 10000.50", categories[0].Budgeted)
		}
	})

	t.Run("update is scoped to the wedding", func(t *testing.T) {
		categories, _ := store.ListBudgetCategories(ctx, wedding.ID)
		cat := categories[0]
		cat.WeddingID = "other-wedding"
		cat.Spent = decimal.NewFromInt(9999)

		err := store.UpdateBudgetCategory(ctx, &cat)
		if !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("expected ErrNotFound for foreign wedding scope, got %v", err)
		}
	})

	t.Run("delete removes the row", func(t *testing.T) {
		categories, _ := store.ListBudgetCategories(ctx, wedding.ID)
		if err := store.DeleteBudgetCategory(ctx, wedding.ID, categories[0].ID); err != nil {
			t.Fatalf("DeleteBudgetCategory failed: %v", err)
		}

		categories, _ = store.ListBudgetCategories(ctx, wedding.ID)
		if len(categories) != 0 {
			t.Errorf("expected empty list after delete, got %d", len(categories))
		}
	})
}

func TestGuests(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	wedding := createTestWedding(t, store, "guests@example.com")

	t.Run("create defaults rsvp status to invited", func(t *testing.T) {
		guest := &models.Guest{WeddingID: wedding.ID, Name: "Ana"}
		if err := store.CreateGuest(ctx, guest); err != nil {
			t.Fatalf("CreateGuest failed: %v", err)
		}
		if guest.RSVPStatus != models.RSVPInvited {
			t.Errorf("RSVPStatus = %s, want invited", guest.RSVPStatus)
		}
	})

	t.Run("update changes rsvp status", func(t *testing.T) {
		guests, _ := store.ListGuests(ctx, wedding.ID)
		guest := guests[0]
		guest.RSVPStatus = models.RSVPConfirmed

		if err := store.UpdateGuest(ctx, &guest); err != nil {
			t.Fatalf("UpdateGuest failed: %v", err)
		}

		guests, _ = store.ListGuests(ctx, wedding.ID)
		if guests[0].RSVPStatus != models.RSVPConfirmed {
			t.Errorf("RSVPStatus = %s, want confirmed", guests[0].RSVPStatus)
		}
	})

	t.Run("delete removes the guest", func(t *testing.T) {
		guests, _ := store.ListGuests(ctx, wedding.ID)
		if err := store.DeleteGuest(ctx, wedding.ID, guests[0].ID); err != nil {
			t.Fatalf("DeleteGuest failed: %v", err)
		}
		guests, _ = store.ListGuests(ctx, wedding.ID)
		if len(guests) != 0 {
			t.Errorf("expected empty guest list, got %d", len(guests))
		}
	})
}

func TestTasks(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	wedding := createTestWedding(t, store, "tasks@example.com")

	t.Run("list orders by due date with undated last", func(t *testing.T) {
		for _, task := range []*models.Task{
			{WeddingID: wedding.ID, Title: "No deadline"},
			{WeddingID: wedding.ID, Title: "June", DueDate: "2026-06-01"},
			{WeddingID: wedding.ID, Title: "January", DueDate: "2026-01-15"},
		} {
			if err := store.CreateTask(ctx, task); err != nil {
				t.Fatalf("CreateTask failed: %v", err)
			}
		}

		tasks, err := store.ListTasks(ctx, wedding.ID)
		if err != nil {
			t.Fatalf("ListTasks failed: %v", err)
		}
		wantOrder := []string{"January", "June", "No deadline"}
		for i, want := range wantOrder {
			if tasks[i].Title != want {
				t.Errorf("tasks[%d] = %q, want %q", i, tasks[i].Title, want)
			}
		}
	})

	t.Run("toggle flips and persists the completed flag", func(t *testing.T) {
		tasks, _ := store.ListTasks(ctx, wedding.ID)
		task := tasks[0]

		toggled, err := store.ToggleTask(ctx, wedding.ID, task.ID)
		if err != nil {
			t.Fatalf("ToggleTask failed: %v", err)
		}
		if toggled.Completed == task.Completed {
			t.Error("expected completed flag to flip")
		}

		again, err := store.ToggleTask(ctx, wedding.ID, task.ID)
		if err != nil {
			t.Fatalf("ToggleTask failed: %v", err)
		}
		if again.Completed != task.Completed {
			t.Error("expected second toggle to restore original state")
		}
	})

	t.Run("toggle on missing task yields ErrNotFound", func(t *testing.T) {
		_, err := store.ToggleTask(ctx, wedding.ID, "missing")
		if !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})
}

func TestAppointmentsAndMilestones(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	wedding := createTestWedding(t, store, "calendar@example.com")

	t.Run("appointments order by date then time", func(t *testing.T) {
		for _, a := range []*models.Appointment{
			{WeddingID: wedding.ID, Title: "Late tasting", Date: "2026-03-10", Time: "18:00"},
			{WeddingID: wedding.ID, Title: "Early tasting", Date: "2026-03-10", Time: "09:00"},
			{WeddingID: wedding.ID, Title: "Venue tour", Date: "2026-02-01"},
		} {
			if err := store.CreateAppointment(ctx, a); err != nil {
				t.Fatalf("CreateAppointment failed: %v", err)
			}
		}

		appointments, err := store.ListAppointments(ctx, wedding.ID)
		if err != nil {
			t.Fatalf("ListAppointments failed: %v", err)
		}
		wantOrder := []string{"Venue tour", "Early tasting", "Late tasting"}
		for i, want := range wantOrder {
			if appointments[i].Title != want {
				t.Errorf("appointments[%d] = %q, want %q", i, appointments[i].Title, want)
			}
		}
	})

	t.Run("appointment update and delete", func(t *testing.T) {
		appointments, _ := store.ListAppointments(ctx, wedding.ID)
		appt := appointments[0]
		appt.Location = "Downtown"
		if err := store.UpdateAppointment(ctx, &appt); err != nil {
			t.Fatalf("UpdateAppointment failed: %v", err)
		}

		if err := store.DeleteAppointment(ctx, wedding.ID, appt.ID); err != nil {
			t.Fatalf("DeleteAppointment failed: %v", err)
		}
		if err := store.DeleteAppointment(ctx, wedding.ID, appt.ID); !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("expected ErrNotFound on double delete, got %v", err)
		}
	})

	t.Run("milestones round-trip", func(t *testing.T) {
		m := &models.Milestone{
			WeddingID:   wedding.ID,
			Title:       "Lock the venue",
			Description: "Tour and book the ceremony and reception venues.",
			Timeframe:   "12+ months",
			Progress:    40,
		}
		if err := store.CreateMilestone(ctx, m); err != nil {
			t.Fatalf("CreateMilestone failed: %v", err)
		}

		milestones, err := store.ListMilestones(ctx, wedding.ID)
		if err != nil {
			t.Fatalf("ListMilestones failed: %v", err)
		}
		if len(milestones) != 1 || milestones[0].Progress != 40 {
			t.Errorf("unexpected milestones: %+v", milestones)
		}
	})
}

func TestInspirationItems(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	wedding := createTestWedding(t, store, "inspo@example.com")

	item := &models.InspirationItem{
		WeddingID: wedding.ID,
		MediaURL:  "/media/u1/1700000000.jpg",
		MediaKey:  "u1/1700000000.jpg",
		MediaType: models.MediaImage,
		Title:     "Centerpiece idea",
	}
	if err := store.CreateInspirationItem(ctx, item); err != nil {
		t.Fatalf("CreateInspirationItem failed: %v", err)
	}

	t.Run("get returns the stored key", func(t *testing.T) {
		got, err := store.GetInspirationItem(ctx, wedding.ID, item.ID)
		if err != nil {
			t.Fatalf("GetInspirationItem failed: %v", err)
		}
		if got.MediaKey != "u1/1700000000.jpg" {
			t.Errorf("MediaKey = %q, want %q", got.MediaKey, "u1/1700000000.jpg")
		}
	})

	t.Run("share toggle persists", func(t *testing.T) {
		updated, err := store.SetInspirationShared(ctx, wedding.ID, item.ID, true)
		if err != nil {
			t.Fatalf("SetInspirationShared failed: %v", err)
		}
		if !updated.SharedWithVendors {
			t.Error("expected SharedWithVendors to be true")
		}
	})

	t.Run("delete removes the row", func(t *testing.T) {
		if err := store.DeleteInspirationItem(ctx, wedding.ID, item.ID); err != nil {
			t.Fatalf("DeleteInspirationItem failed: %v", err)
		}
		_, err := store.GetInspirationItem(ctx, wedding.ID, item.ID)
		if !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("expected ErrNotFound after delete, got %v", err)
		}
	})
}

func TestVendorCatalogSeed(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	vendors, err := store.ListVendors(ctx)
	if err != nil {
		t.Fatalf("ListVendors failed: %v", err)
	}
	if len(vendors) == 0 {
		t.Fatal("expected vendor catalog to be seeded")
	}

	for i := 1; i < len(vendors); i++ {
		if vendors[i].Rating > vendors[i-1].Rating {
			t.Errorf("vendors not ordered by rating descending at index %d", i)
		}
	}
}

func TestWeddingCascadeDelete(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	wedding := createTestWedding(t, store, "cascade@example.com")

	if err := store.CreateGuest(ctx, &models.Guest{WeddingID: wedding.ID, Name: "Ana"}); err != nil {
		t.Fatalf("CreateGuest failed: %v", err)
	}
	if err := store.CreateTask(ctx, &models.Task{WeddingID: wedding.ID, Title: "Book venue"}); err != nil {
		t.Fatalf("CreateTask failed: %v", err)
	}

	// Deleting the wedding row directly exercises the schema's cascade.
	if _, err := store.db.ExecContext(ctx, "DELETE FROM weddings WHERE id = ?", wedding.ID); err != nil {
		t.Fatalf("failed to delete wedding: %v", err)
	}

	guests, err := store.ListGuests(ctx, wedding.ID)
	if err != nil {
		t.Fatalf("ListGuests failed: %v", err)
	}
	tasks, err := store.ListTasks(ctx, wedding.ID)
	if err != nil {
		t.Fatalf("ListTasks failed: %v", err)
	}
	if len(guests) != 0 || len(tasks) != 0 {
		t.Errorf("expected cascade to remove child rows, got %d guests, %d tasks", len(guests), len(tasks))
	}
}
