package sqlite

import (
	"context"
	"fmt"

	"github.com/everafterhq/everafter/internal/models"
)

// ListVendors returns the global vendor catalog ordered by rating
// descending. Text and category filtering happen in the aggregation layer,
// after the fetch, so the ordering here is the only ranking applied.
func (s *SQLiteStore) ListVendors(ctx context.Context) ([]models.Vendor, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, category, description, rating, reviews_count, created_at
		FROM vendors
		ORDER BY rating DESC, name ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list vendors: %w", err)
	}
	defer rows.Close()

	var vendors []models.Vendor
	for rows.Next() {
		var v models.Vendor
		if err := rows.Scan(
			&v.ID,
			&v.Name,
			&v.Category,
			&v.Description,
			&v.Rating,
			&v.ReviewsCount,
			&v.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan vendor: %w", err)
		}
		vendors = append(vendors, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate vendors: %w", err)
	}

	return vendors, nil
}
