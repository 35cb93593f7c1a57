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

// ListTasks returns a wedding's tasks ordered by due date, with undated
// tasks last.
func (s *SQLiteStore) ListTasks(ctx context.Context, weddingID string) ([]models.Task, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, wedding_id, title, due_date, assigned_to, completed, created_at, updated_at
		FROM tasks
		WHERE wedding_id = ?
		ORDER BY due_date = '', due_date ASC, created_at ASC
	`, weddingID)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	defer rows.Close()

	var tasks []models.Task
	for rows.Next() {
		var t models.Task
		if err := rows.Scan(
			&t.ID,
			&t.WeddingID,
			&t.Title,
			&t.DueDate,
			&t.AssignedTo,
			&t.Completed,
			&t.CreatedAt,
			&t.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan task: %w", err)
		}
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate tasks: %w", err)
	}

	return tasks, nil
}

// CreateTask persists a new task, assigning ID and timestamps.
func (s *SQLiteStore) CreateTask(ctx context.Context, task *models.Task) error {
	if task.ID == "" {
		task.ID = uuid.New().String()
	}
	now := time.Now().Unix()
	task.CreatedAt = now
	task.UpdatedAt = now

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO tasks (id, wedding_id, title, due_date, assigned_to, completed, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`,
		task.ID,
		task.WeddingID,
		task.Title,
		task.DueDate,
		task.AssignedTo,
		task.Completed,
		task.CreatedAt,
		task.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create task: %w", err)
	}

	return nil
}

// UpdateTask updates a task scoped to its wedding.
func (s *SQLiteStore) UpdateTask(ctx context.Context, task *models.Task) error {
	task.UpdatedAt = time.Now().Unix()

	res, err := s.db.ExecContext(ctx, `
		UPDATE tasks
		SET title = ?, due_date = ?, assigned_to = ?, completed = ?, updated_at = ?
		WHERE id = ? AND wedding_id = ?
	`,
		task.Title,
		task.DueDate,
		task.AssignedTo,
		task.Completed,
		task.UpdatedAt,
		task.ID,
		task.WeddingID,
	)
	if err != nil {
		return fmt.Errorf("failed to update task: %w", err)
	}

	return requireRow(res, "task", task.ID)
}

// ToggleTask flips a task's completed flag in a single statement, so the
// persisted value is always the opposite of whatever was stored, and returns
// the resulting row.
func (s *SQLiteStore) ToggleTask(ctx context.Context, weddingID, id string) (*models.Task, error) {
	res, err := s.db.ExecContext(ctx, `
		UPDATE tasks
		SET completed = NOT completed, updated_at = ?
		WHERE id = ? AND wedding_id = ?
	`, time.Now().Unix(), id, weddingID)
	if err != nil {
		return nil, fmt.Errorf("failed to toggle task: %w", err)
	}
	if err := requireRow(res, "task", id); err != nil {
		return nil, err
	}

	task := &models.Task{}
	err = s.db.QueryRowContext(ctx, `
		SELECT id, wedding_id, title, due_date, assigned_to, completed, created_at, updated_at
		FROM tasks
		WHERE id = ? AND wedding_id = ?
	`, id, weddingID).Scan(
		&task.ID,
		&task.WeddingID,
		&task.Title,
		&task.DueDate,
		&task.AssignedTo,
		&task.Completed,
		&task.CreatedAt,
		&task.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("task %s: %w", id, storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to reload task: %w", err)
	}

	return task, nil
}

// DeleteTask removes a task scoped to its wedding.
func (s *SQLiteStore) DeleteTask(ctx context.Context, weddingID, id string) error {
	res, err := s.db.ExecContext(ctx,
		"DELETE FROM tasks WHERE id = ? AND wedding_id = ?", id, weddingID,
	)
	if err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}

	return requireRow(res, "task", id)
}
