package aggregate

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"

	"github.com/everafterhq/everafter/internal/models"
)

// TaskSummary is the derived checklist progress.
type TaskSummary struct {
	Completed int `json:"completed"`
	Total     int `json:"total"`

	// ProgressPercent is round(completed/total*100), 0 when Total is 0.
	ProgressPercent int `json:"progress_percent"`
}

// SummarizeTasks reduces a wedding's tasks into checklist progress.
func SummarizeTasks(tasks []models.Task) TaskSummary {
	summary := TaskSummary{Total: len(tasks)}
	for _, t := range tasks {
		if t.Completed {
			summary.Completed++
		}
	}
	summary.ProgressPercent = roundPercent(summary.Completed, summary.Total)
	return summary
}

// GuestSummary partitions the guest list by RSVP status. The partition is
// exhaustive and disjoint: Confirmed + Invited + Declined == Total.
type GuestSummary struct {
	Confirmed int `json:"confirmed"`
	Invited   int `json:"invited"`
	Declined  int `json:"declined"`
	Total     int `json:"total"`

	// ConfirmedPercent is round(confirmed/total*100), 0 when Total is 0.
	ConfirmedPercent int `json:"confirmed_percent"`
}

// SummarizeGuests reduces a guest list into RSVP counts. A status outside
// the closed set is a data-integrity violation and returns an error.
func SummarizeGuests(guests []models.Guest) (GuestSummary, error) {
	summary := GuestSummary{Total: len(guests)}
	for _, g := range guests {
		switch g.RSVPStatus {
		case models.RSVPConfirmed:
			summary.Confirmed++
		case models.RSVPInvited:
			summary.Invited++
		case models.RSVPDeclined:
			summary.Declined++
		default:
			return GuestSummary{}, fmt.Errorf("guest %s has invalid rsvp status %q", g.ID, g.RSVPStatus)
		}
	}
	summary.ConfirmedPercent = roundPercent(summary.Confirmed, summary.Total)
	return summary, nil
}

// DashboardSummary is the combined stat block for the dashboard view.
type DashboardSummary struct {
	// Onboarded is false when no wedding exists yet; all metrics are then
	// zero-valued rather than an error.
	Onboarded bool `json:"onboarded"`

	Tasks  TaskSummary  `json:"tasks"`
	Guests GuestSummary `json:"guests"`

	// BudgetUsed is the sum of spent across all categories.
	BudgetUsed decimal.Decimal `json:"budget_used"`

	// TotalBudget is the wedding's overall budget from onboarding.
	TotalBudget decimal.Decimal `json:"total_budget"`

	// VendorsBooked counts budget categories with any spending, the
	// dashboard's proxy for booked vendors.
	VendorsBooked int `json:"vendors_booked"`
}

// SummarizeDashboard combines task, guest and budget metrics for one
// wedding. A nil wedding yields the zero state with Onboarded false.
func SummarizeDashboard(wedding *models.Wedding, tasks []models.Task, guests []models.Guest, categories []models.BudgetCategory) (DashboardSummary, error) {
	summary := DashboardSummary{
		BudgetUsed:  decimal.Zero,
		TotalBudget: decimal.Zero,
	}
	if wedding == nil {
		return summary, nil
	}

	guestSummary, err := SummarizeGuests(guests)
	if err != nil {
		return DashboardSummary{}, err
	}

	summary.Onboarded = true
	summary.Tasks = SummarizeTasks(tasks)
	summary.Guests = guestSummary
	summary.TotalBudget = wedding.TotalBudget

	for _, cat := range categories {
		summary.BudgetUsed = summary.BudgetUsed.Add(cat.Spent)
		if cat.Spent.IsPositive() {
			summary.VendorsBooked++
		}
	}
	return summary, nil
}

// roundPercent is round(part/total*100) with the 0/0 case defined as 0.
func roundPercent(part, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(part) / float64(total) * 100))
}
