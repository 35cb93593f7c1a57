package models

// Milestone is one entry of the planning timeline ("9-12 months before",
// "Final month", ...). Milestones are seeded at onboarding and read-only
// through the API.
type Milestone struct {
	// ID is the unique identifier for the milestone (UUID format).
	ID string `json:"id"`

	// WeddingID is the owning wedding.
	WeddingID string `json:"wedding_id"`

	// Title is the milestone headline.
	Title string `json:"title"`

	// Description explains what should happen in this phase.
	Description string `json:"description"`

	// Timeframe is the display label for the phase (e.g. "12+ months").
	Timeframe string `json:"timeframe"`

	// Progress is the completion percentage, 0-100.
	Progress int `json:"progress"`

	// CreatedAt is the Unix timestamp when the milestone was created.
	CreatedAt int64 `json:"created_at"`

	// UpdatedAt is the Unix timestamp of the last change.
	UpdatedAt int64 `json:"updated_at"`
}
