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

const inspirationColumns = `id, wedding_id, media_url, media_key, media_type, title, notes, shared_with_vendors, created_at, updated_at`

// ListInspirationItems returns a wedding's inspiration board, newest first.
func (s *SQLiteStore) ListInspirationItems(ctx context.Context, weddingID string) ([]models.InspirationItem, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT `+inspirationColumns+`
		FROM inspiration_items
		WHERE wedding_id = ?
		ORDER BY created_at DESC, id DESC
	`, weddingID)
	if err != nil {
		return nil, fmt.Errorf("failed to list inspiration items: %w", err)
	}
	defer rows.Close()

	var items []models.InspirationItem
	for rows.Next() {
		var item models.InspirationItem
		if err := scanInspiration(rows.Scan, &item); err != nil {
			return nil, fmt.Errorf("failed to scan inspiration item: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate inspiration items: %w", err)
	}

	return items, nil
}

// GetInspirationItem retrieves one item scoped to its wedding.
func (s *SQLiteStore) GetInspirationItem(ctx context.Context, weddingID, id string) (*models.InspirationItem, error) {
	item := &models.InspirationItem{}
	row := s.db.QueryRowContext(ctx, `
		SELECT `+inspirationColumns+`
		FROM inspiration_items
		WHERE id = ? AND wedding_id = ?
	`, id, weddingID)

	err := scanInspiration(row.Scan, item)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("inspiration item %s: %w", id, storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get inspiration item: %w", err)
	}

	return item, nil
}

// CreateInspirationItem persists a new item, assigning ID and timestamps.
// The media object must already exist in blob storage; callers upload first
// so a failed upload never leaves a row referencing a missing blob.
func (s *SQLiteStore) CreateInspirationItem(ctx context.Context, item *models.InspirationItem) error {
	if item.ID == "" {
		item.ID = uuid.New().String()
	}
	now := time.Now().Unix()
	item.CreatedAt = now
	item.UpdatedAt = now

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO inspiration_items (`+inspirationColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`,
		item.ID,
		item.WeddingID,
		item.MediaURL,
		item.MediaKey,
		item.MediaType,
		item.Title,
		item.Notes,
		item.SharedWithVendors,
		item.CreatedAt,
		item.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create inspiration item: %w", err)
	}

	return nil
}

// SetInspirationShared sets the shared-with-vendors flag and returns the
// updated row.
func (s *SQLiteStore) SetInspirationShared(ctx context.Context, weddingID, id string, shared bool) (*models.InspirationItem, error) {
	res, err := s.db.ExecContext(ctx, `
		UPDATE inspiration_items
		SET shared_with_vendors = ?, updated_at = ?
		WHERE id = ? AND wedding_id = ?
	`, shared, time.Now().Unix(), id, weddingID)
	if err != nil {
		return nil, fmt.Errorf("failed to update inspiration item: %w", err)
	}
	if err := requireRow(res, "inspiration item", id); err != nil {
		return nil, err
	}

	return s.GetInspirationItem(ctx, weddingID, id)
}

// DeleteInspirationItem removes an item's row. The caller is responsible
// for releasing the backing blob first; see the service layer.
func (s *SQLiteStore) DeleteInspirationItem(ctx context.Context, weddingID, id string) error {
	res, err := s.db.ExecContext(ctx,
		"DELETE FROM inspiration_items WHERE id = ? AND wedding_id = ?", id, weddingID,
	)
	if err != nil {
		return fmt.Errorf("failed to delete inspiration item: %w", err)
	}

	return requireRow(res, "inspiration item", id)
}

func scanInspiration(scan func(...any) error, item *models.InspirationItem) error {
	return scan(
		&item.ID,
		&item.WeddingID,
		&item.MediaURL,
		&item.MediaKey,
		&item.MediaType,
		&item.Title,
		&item.Notes,
		&item.SharedWithVendors,
		&item.CreatedAt,
		&item.UpdatedAt,
	)
}
