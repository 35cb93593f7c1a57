// Package aggregate computes derived planning metrics from a wedding's child
// rows. Every function is pure: inputs in, summary out, no I/O. Metrics are
// never stored; callers recompute them from current rows on every read.
package aggregate

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/everafterhq/everafter/internal/models"
)

var oneHundred = decimal.NewFromInt(100)

// CategorySummary is the derived view of one budget category.
type CategorySummary struct {
	Category models.BudgetCategory `json:"category"`

	// Remaining is budgeted - spent; negative when over budget.
	Remaining decimal.Decimal `json:"remaining"`

	// PercentUsed is spent/budgeted*100, unclamped so callers can detect
	// over-budget categories. Defined as 0 when budgeted is 0.
	PercentUsed float64 `json:"percent_used"`

	// BarPercent is PercentUsed capped at 100 for progress-bar rendering.
	BarPercent float64 `json:"bar_percent"`

	// OverBudget is true when spent exceeds budgeted.
	OverBudget bool `json:"over_budget"`

	// Label is the display string: "Over budget by $1,000" or
	// "$2,500 remaining".
	Label string `json:"label"`
}

// BudgetSummary is the derived view of a wedding's full category set.
type BudgetSummary struct {
	TotalBudgeted decimal.Decimal   `json:"total_budgeted"`
	TotalSpent    decimal.Decimal   `json:"total_spent"`
	Remaining     decimal.Decimal   `json:"remaining"`
	Categories    []CategorySummary `json:"categories"`
}

// SummarizeBudget reduces a wedding's budget categories into totals and
// per-category metrics. Category order is preserved.
func SummarizeBudget(categories []models.BudgetCategory) BudgetSummary {
	summary := BudgetSummary{
		TotalBudgeted: decimal.Zero,
		TotalSpent:    decimal.Zero,
		Categories:    make([]CategorySummary, 0, len(categories)),
	}

	for _, cat := range categories {
		summary.TotalBudgeted = summary.TotalBudgeted.Add(cat.Budgeted)
		summary.TotalSpent = summary.TotalSpent.Add(cat.Spent)
		summary.Categories = append(summary.Categories, summarizeCategory(cat))
	}

	summary.Remaining = summary.TotalBudgeted.Sub(summary.TotalSpent)
	return summary
}

func summarizeCategory(cat models.BudgetCategory) CategorySummary {
	remaining := cat.Budgeted.Sub(cat.Spent)
	over := cat.Spent.GreaterThan(cat.Budgeted)

	var percent float64
	if cat.Budgeted.IsPositive() {
		percent, _ = cat.Spent.Div(cat.Budgeted).Mul(oneHundred).Float64()
	}

	bar := percent
	if bar > 100 {
		bar = 100
	}

	var label string
	if over {
		label = fmt.Sprintf("Over budget by $%s", FormatAmount(remaining.Abs()))
	} else {
		label = fmt.Sprintf("$%s remaining", FormatAmount(remaining))
	}

	return CategorySummary{
		Category:    cat,
		Remaining:   remaining,
		PercentUsed: percent,
		BarPercent:  bar,
		OverBudget:  over,
		Label:       label,
	}
}
