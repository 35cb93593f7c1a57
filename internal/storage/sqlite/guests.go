package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/everafterhq/everafter/internal/models"
)

// ListGuests returns a wedding's guests ordered by creation time.
func (s *SQLiteStore) ListGuests(ctx context.Context, weddingID string) ([]models.Guest, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, wedding_id, name, email, category, rsvp_status, created_at, updated_at
		FROM guests
		WHERE wedding_id = ?
		ORDER BY created_at ASC, id ASC
	`, weddingID)
	if err != nil {
		return nil, fmt.Errorf("failed to list guests: %w", err)
	}
	defer rows.Close()

	var guests []models.Guest
	for rows.Next() {
		var g models.Guest
		if err := rows.Scan(
			&g.ID,
			&g.WeddingID,
			&g.Name,
			&g.Email,
			&g.Category,
			&g.RSVPStatus,
			&g.CreatedAt,
			&g.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan guest: %w", err)
		}
		guests = append(guests, g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate guests: %w", err)
	}

	return guests, nil
}

// CreateGuest persists a new guest, defaulting the RSVP status to invited.
func (s *SQLiteStore) CreateGuest(ctx context.Context, guest *models.Guest) error {
	if guest.ID == "" {
		guest.ID = uuid.New().String()
	}
	if guest.RSVPStatus == "" {
		guest.RSVPStatus = models.RSVPInvited
	}
	now := time.Now().Unix()
	guest.CreatedAt = now
	guest.UpdatedAt = now

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO guests (id, wedding_id, name, email, category, rsvp_status, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`,
		guest.ID,
		guest.WeddingID,
		guest.Name,
		guest.Email,
		guest.Category,
		guest.RSVPStatus,
		guest.CreatedAt,
		guest.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create guest: %w", err)
	}

	return nil
}

// UpdateGuest updates a guest scoped to its wedding.
func (s *SQLiteStore) UpdateGuest(ctx context.Context, guest *models.Guest) error {
	guest.UpdatedAt = time.Now().Unix()

	res, err := s.db.ExecContext(ctx, `
		UPDATE guests
		SET name = ?, email = ?, category = ?, rsvp_status = ?, updated_at = ?
		WHERE id = ? AND wedding_id = ?
	`,
		guest.Name,
		guest.Email,
		guest.Category,
		guest.RSVPStatus,
		guest.UpdatedAt,
		guest.ID,
		guest.WeddingID,
	)
	if err != nil {
		return fmt.Errorf("failed to update guest: %w", err)
	}

	return requireRow(res, "guest", guest.ID)
}

// DeleteGuest removes a guest scoped to its wedding.
func (s *SQLiteStore) DeleteGuest(ctx context.Context, weddingID, id string) error {
	res, err := s.db.ExecContext(ctx,
		"DELETE FROM guests WHERE id = ? AND wedding_id = ?", id, weddingID,
	)
	if err != nil {
		return fmt.Errorf("failed to delete guest: %w", err)
	}

	return requireRow(res, "guest", id)
}
