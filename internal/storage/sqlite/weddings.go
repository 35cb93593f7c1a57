package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/everafterhq/everafter/internal/models"
	"github.com/everafterhq/everafter/internal/storage"
)

// CreateWedding persists a new wedding. A user can own at most one: an
// existing row for the user yields storage.ErrConflict.
func (s *SQLiteStore) CreateWedding(ctx context.Context, wedding *models.Wedding) error {
	var existing int
	err := s.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM weddings WHERE user_id = ?", wedding.UserID,
	).Scan(&existing)
	if err != nil {
		return fmt.Errorf("failed to check for existing wedding: %w", err)
	}
	if existing > 0 {
		return fmt.Errorf("user %s already has a wedding: %w", wedding.UserID, storage.ErrConflict)
	}

	if wedding.ID == "" {
		wedding.ID = uuid.New().String()
	}
	now := time.Now().Unix()
	wedding.CreatedAt = now
	wedding.UpdatedAt = now

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO weddings (id, user_id, partner_email, wedding_date, location, theme, total_budget, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`,
		wedding.ID,
		wedding.UserID,
		wedding.PartnerEmail,
		wedding.WeddingDate,
		wedding.Location,
		wedding.Theme,
		wedding.TotalBudget,
		wedding.CreatedAt,
		wedding.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create wedding: %w", err)
	}

	return nil
}

// GetWeddingByUserID is a strict single-row fetch. No row yields
// storage.ErrNotFound; more than one row is a data-integrity violation and
// yields storage.ErrConflict.
func (s *SQLiteStore) GetWeddingByUserID(ctx context.Context, userID string) (*models.Wedding, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, user_id, partner_email, wedding_date, location, theme, total_budget, created_at, updated_at
		FROM weddings
		WHERE user_id = ?
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get wedding: %w", err)
	}
	defer rows.Close()

	var wedding *models.Wedding
	for rows.Next() {
		if wedding != nil {
			return nil, fmt.Errorf("multiple weddings for user %s: %w", userID, storage.ErrConflict)
		}
		wedding = &models.Wedding{}
		if err := rows.Scan(
			&wedding.ID,
			&wedding.UserID,
			&wedding.PartnerEmail,
			&wedding.WeddingDate,
			&wedding.Location,
			&wedding.Theme,
			&wedding.TotalBudget,
			&wedding.CreatedAt,
			&wedding.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan wedding: %w", err)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate weddings: %w", err)
	}

	if wedding == nil {
		return nil, fmt.Errorf("wedding for user %s: %w", userID, storage.ErrNotFound)
	}
	return wedding, nil
}

// UpdateWedding updates the mutable wedding fields.
func (s *SQLiteStore) UpdateWedding(ctx context.Context, wedding *models.Wedding) error {
	wedding.UpdatedAt = time.Now().Unix()

	res, err := s.db.ExecContext(ctx, `
		UPDATE weddings
		SET partner_email = ?, wedding_date = ?, location = ?, theme = ?, total_budget = ?, updated_at = ?
		WHERE id = ?
	`,
		wedding.PartnerEmail,
		wedding.WeddingDate,
		wedding.Location,
		wedding.Theme,
		wedding.TotalBudget,
		wedding.UpdatedAt,
		wedding.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update wedding: %w", err)
	}

	return requireRow(res, "wedding", wedding.ID)
}

// requireRow converts a zero-row update/delete into storage.ErrNotFound.
func requireRow(res sql.Result, entity, id string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read rows affected: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%s %s: %w", entity, id, storage.ErrNotFound)
	}
	return nil
}
