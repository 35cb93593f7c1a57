package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/everafterhq/everafter/internal/models"
)

// ListMilestones returns a wedding's planning milestones in seeding order.
func (s *SQLiteStore) ListMilestones(ctx context.Context, weddingID string) ([]models.Milestone, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, wedding_id, title, description, timeframe, progress, created_at, updated_at
		FROM milestones
		WHERE wedding_id = ?
		ORDER BY created_at ASC, id ASC
	`, weddingID)
	if err != nil {
		return nil, fmt.Errorf("failed to list milestones: %w", err)
	}
	defer rows.Close()

	var milestones []models.Milestone
	for rows.Next() {
		var m models.Milestone
		if err := rows.Scan(
			&m.ID,
			&m.WeddingID,
			&m.Title,
			&m.Description,
			&m.Timeframe,
			&m.Progress,
			&m.CreatedAt,
			&m.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan milestone: %w", err)
		}
		milestones = append(milestones, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate milestones: %w", err)
	}

	return milestones, nil
}

// CreateMilestone persists a new milestone, assigning ID and timestamps.
func (s *SQLiteStore) CreateMilestone(ctx context.Context, milestone *models.Milestone) error {
	if milestone.ID == "" {
		milestone.ID = uuid.New().String()
	}
	now := time.Now().Unix()
	milestone.CreatedAt = now
	milestone.UpdatedAt = now

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO milestones (id, wedding_id, title, description, timeframe, progress, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`,
		milestone.ID,
		milestone.WeddingID,
		milestone.Title,
		milestone.Description,
		milestone.Timeframe,
		milestone.Progress,
		milestone.CreatedAt,
		milestone.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create milestone: %w", err)
	}

	return nil
}
