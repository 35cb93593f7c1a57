package models

// Task is one checklist item for the wedding.
type Task struct {
	// ID is the unique identifier for the task (UUID format).
	ID string `json:"id"`

	// WeddingID is the owning wedding.
	WeddingID string `json:"wedding_id"`

	// Title is the task description.
	Title string `json:"title"`

	// DueDate is an optional YYYY-MM-DD deadline. Lists sort by this field;
	// tasks without one sort last.
	DueDate string `json:"due_date,omitempty"`

	// AssignedTo is an optional free-text assignee.
	AssignedTo string `json:"assigned_to,omitempty"`

	// Completed marks the task as done.
	Completed bool `json:"completed"`

	// CreatedAt is the Unix timestamp when the task was created.
	CreatedAt int64 `json:"created_at"`

	// UpdatedAt is the Unix timestamp of the last change.
	UpdatedAt int64 `json:"updated_at"`
}
