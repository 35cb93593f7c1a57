package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/everafterhq/everafter/internal/models"
)

// ListAppointments returns a wedding's appointments ordered by date, then
// time of day.
func (s *SQLiteStore) ListAppointments(ctx context.Context, weddingID string) ([]models.Appointment, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, wedding_id, title, description, date, time, location, created_at, updated_at
		FROM appointments
		WHERE wedding_id = ?
		ORDER BY date ASC, time ASC, created_at ASC
	`, weddingID)
	if err != nil {
		return nil, fmt.Errorf("failed to list appointments: %w", err)
	}
	defer rows.Close()

	var appointments []models.Appointment
	for rows.Next() {
		var a models.Appointment
		if err := rows.Scan(
			&a.ID,
			&a.WeddingID,
			&a.Title,
			&a.Description,
			&a.Date,
			&a.Time,
			&a.Location,
			&a.CreatedAt,
			&a.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan appointment: %w", err)
		}
		appointments = append(appointments, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate appointments: %w", err)
	}

	return appointments, nil
}

// CreateAppointment persists a new appointment, assigning ID and timestamps.
func (s *SQLiteStore) CreateAppointment(ctx context.Context, appointment *models.Appointment) error {
	if appointment.ID == "" {
		appointment.ID = uuid.New().String()
	}
	now := time.Now().Unix()
	appointment.CreatedAt = now
	appointment.UpdatedAt = now

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO appointments (id, wedding_id, title, description, date, time, location, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`,
		appointment.ID,
		appointment.WeddingID,
		appointment.Title,
		appointment.Description,
		appointment.Date,
		appointment.Time,
		appointment.Location,
		appointment.CreatedAt,
		appointment.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create appointment: %w", err)
	}

	return nil
}

// UpdateAppointment updates an appointment scoped to its wedding.
func (s *SQLiteStore) UpdateAppointment(ctx context.Context, appointment *models.Appointment) error {
	appointment.UpdatedAt = time.Now().Unix()

	res, err := s.db.ExecContext(ctx, `
		UPDATE appointments
		SET title = ?, description = ?, date = ?, time = ?, location = ?, updated_at = ?
		WHERE id = ? AND wedding_id = ?
	`,
		appointment.Title,
		appointment.Description,
		appointment.Date,
		appointment.Time,
		appointment.Location,
		appointment.UpdatedAt,
		appointment.ID,
		appointment.WeddingID,
	)
	if err != nil {
		return fmt.Errorf("failed to update appointment: %w", err)
	}

	return requireRow(res, "appointment", appointment.ID)
}

// DeleteAppointment removes an appointment scoped to its wedding.
func (s *SQLiteStore) DeleteAppointment(ctx context.Context, weddingID, id string) error {
	res, err := s.db.ExecContext(ctx,
		"DELETE FROM appointments WHERE id = ? AND wedding_id = ?", id, weddingID,
	)
	if err != nil {
		return fmt.Errorf("failed to delete appointment: %w", err)
	}

	return requireRow(res, "appointment", id)
}
