package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/everafterhq/everafter/internal/models"
)

// ListBudgetCategories returns a wedding's categories ordered by creation
// time, oldest first.
func (s *SQLiteStore) ListBudgetCategories(ctx context.Context, weddingID string) ([]models.BudgetCategory, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, wedding_id, name, icon, budgeted, spent, created_at, updated_at
		FROM budget_categories
		WHERE wedding_id = ?
		ORDER BY created_at ASC, id ASC
	`, weddingID)
	if err != nil {
		return nil, fmt.Errorf("failed to list budget categories: %w", err)
	}
	defer rows.Close()

	var categories []models.BudgetCategory
	for rows.Next() {
		var cat models.BudgetCategory
		if err := rows.Scan(
			&cat.ID,
			&cat.WeddingID,
			&cat.Name,
			&cat.Icon,
			&cat.Budgeted,
			&cat.Spent,
			&cat.CreatedAt,
			&cat.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan budget category: %w", err)
		}
		categories = append(categories, cat)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate budget categories: %w", err)
	}

	return categories, nil
}

// CreateBudgetCategory persists a new category, assigning ID and timestamps.
func (s *SQLiteStore) CreateBudgetCategory(ctx context.Context, category *models.BudgetCategory) error {
	if category.ID == "" {
		category.ID = uuid.New().String()
	}
	now := time.Now().Unix()
	category.CreatedAt = now
	category.UpdatedAt = now

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO budget_categories (id, wedding_id, name, icon, budgeted, spent, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`,
		category.ID,
		category.WeddingID,
		category.Name,
		category.Icon,
		category.Budgeted,
		category.Spent,
		category.CreatedAt,
		category.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create budget category: %w", err)
	}

	return nil
}

// UpdateBudgetCategory updates a category scoped to its wedding.
func (s *SQLiteStore) UpdateBudgetCategory(ctx context.Context, category *models.BudgetCategory) error {
	category.UpdatedAt = time.Now().Unix()

	res, err := s.db.ExecContext(ctx, `
		UPDATE budget_categories
		SET name = ?, icon = ?, budgeted = ?, spent = ?, updated_at = ?
		WHERE id = ? AND wedding_id = ?
	`,
		category.Name,
		category.Icon,
		category.Budgeted,
		category.Spent,
		category.UpdatedAt,
		category.ID,
		category.WeddingID,
	)
	if err != nil {
		return fmt.Errorf("failed to update budget category: %w", err)
	}

	return requireRow(res, "budget category", category.ID)
}

// DeleteBudgetCategory removes a category scoped to its wedding.
func (s *SQLiteStore) DeleteBudgetCategory(ctx context.Context, weddingID, id string) error {
	res, err := s.db.ExecContext(ctx,
		"DELETE FROM budget_categories WHERE id = ? AND wedding_id = ?", id, weddingID,
	)
	if err != nil {
		return fmt.Errorf("failed to delete budget category: %w", err)
	}

	return requireRow(res, "budget category", id)
}
