package service

import (
	"net/http"
	"testing"

	"github.com/everafterhq/everafter/internal/aggregate"
	"github.com/everafterhq/everafter/internal/models"
)

func TestOnboardingSeedsDefaults(t *testing.T) {
	env := setupTestServer(t)
	token := env.registerUser(t, "ana@example.com")

	wedding := env.onboard(t, token)
	if wedding.ID == "" {
		t.Fatal("expected non-empty wedding ID")
	}
	if wedding.TotalBudget.String() != "25000" {
		t.Errorf("total budget: expected 25000, got %s", wedding.TotalBudget)
	}

	resp := env.do(t, http.MethodGet, "/api/milestones", token, nil)
	wantStatus(t, resp, http.StatusOK)
	milestones := decodeBody[[]models.Milestone](t, resp)
	if len(milestones) != len(defaultMilestones) {
		t.Errorf("milestones: expected %d, got %d", len(defaultMilestones), len(milestones))
	}

	resp = env.do(t, http.MethodGet, "/api/budget", token, nil)
	wantStatus(t, resp, http.StatusOK)
	budget := decodeBody[aggregate.BudgetSummary](t, resp)
	if len(budget.Categories) != len(defaultCategories) {
		t.Errorf("categories: expected %d, got %d", len(defaultCategories), len(budget.Categories))
	}
}

func TestSecondWeddingConflicts(t *testing.T) {
	env := setupTestServer(t)
	token := env.registerUser(t, "ana@example.com")
	env.onboard(t, token)

	resp := env.do(t, http.MethodPost, "/api/wedding", token, map[string]any{
		"total_budget": "1000",
	})
	wantStatus(t, resp, http.StatusConflict)
}

func TestGetWeddingBeforeOnboarding(t *testing.T) {
	env := setupTestServer(t)
	token := env.registerUser(t, "ana@example.com")

	resp := env.do(t, http.MethodGet, "/api/wedding", token, nil)
	wantStatus(t, resp, http.StatusNotFound)
}

func TestUpdateWedding(t *testing.T) {
	env := setupTestServer(t)
	token := env.registerUser(t, "ana@example.com")
	env.onboard(t, token)

	resp := env.do(t, http.MethodPatch, "/api/wedding", token, map[string]any{
		"theme":        "Rustic",
		"total_budget": "30000",
	})
	wantStatus(t, resp, http.StatusOK)

	wedding := decodeBody[models.Wedding](t, resp)
	if wedding.Theme != "Rustic" {
		t.Errorf("theme: expected Rustic, got %s", wedding.Theme)
	}
	if wedding.TotalBudget.String() != "30000" {
		t.Errorf("total budget: expected 30000, got %s", wedding.TotalBudget)
	}
	if wedding.Location != "Lisbon" {
		t.Errorf("location should be untouched, got %s", wedding.Location)
	}
}

func TestDashboardBeforeOnboarding(t *testing.T) {
	env := setupTestServer(t)
	token := env.registerUser(t, "ana@example.com")

	resp := env.do(t, http.MethodGet, "/api/dashboard", token, nil)
	wantStatus(t, resp, http.StatusOK)

	summary := decodeBody[aggregate.DashboardSummary](t, resp)
	if summary.Onboarded {
		t.Error("expected onboarded false before a wedding exists")
	}
	if summary.Guests.Total != 0 || summary.Tasks.Total != 0 {
		t.Error("expected zero metrics before a wedding exists")
	}
}

func TestDashboard(t *testing.T) {
	env := setupTestServer(t)
	token := env.registerUser(t, "ana@example.com")
	env.onboard(t, token)

	resp := env.do(t, http.MethodPost, "/api/guests", token, map[string]any{
		"name": "Maria", "rsvp_status": "confirmed",
	})
	wantStatus(t, resp, http.StatusCreated)
	resp.Body.Close()
	resp = env.do(t, http.MethodPost, "/api/guests", token, map[string]any{
		"name": "Joao",
	})
	wantStatus(t, resp, http.StatusCreated)
	resp.Body.Close()

	resp = env.do(t, http.MethodPost, "/api/tasks", token, map[string]any{
		"title": "Book venue",
	})
	wantStatus(t, resp, http.StatusCreated)
	task := decodeBody[models.Task](t, resp)
	resp = env.do(t, http.MethodPost, "/api/tasks/"+task.ID+"/toggle", token, nil)
	wantStatus(t, resp, http.StatusOK)
	resp.Body.Close()

	// One category with spending marks one vendor as booked.
	resp = env.do(t, http.MethodPost, "/api/budget/categories", token, map[string]any{
		"name": "Band", "budgeted": "2000", "spent": "500",
	})
	wantStatus(t, resp, http.StatusCreated)
	resp.Body.Close()

	resp = env.do(t, http.MethodGet, "/api/dashboard", token, nil)
	wantStatus(t, resp, http.StatusOK)
	summary := decodeBody[aggregate.DashboardSummary](t, resp)

	if !summary.Onboarded {
		t.Fatal("expected onboarded true")
	}
	if summary.Guests.Total != 2 || summary.Guests.Confirmed != 1 {
		t.Errorf("guests: expected total 2 confirmed 1, got %+v", summary.Guests)
	}
	if summary.Tasks.Total != 1 || summary.Tasks.Completed != 1 {
		t.Errorf("tasks: expected total 1 completed 1, got %+v", summary.Tasks)
	}
	if summary.BudgetUsed.String() != "500" {
		t.Errorf("budget used: expected 500, got %s", summary.BudgetUsed)
	}
	if summary.VendorsBooked != 1 {
		t.Errorf("vendors booked: expected 1, got %d", summary.VendorsBooked)
	}
	if summary.TotalBudget.String() != "25000" {
		t.Errorf("total budget: expected 25000, got %s", summary.TotalBudget)
	}
}
