package models

// Appointment is a scheduled meeting or event on the wedding calendar.
type Appointment struct {
	// ID is the unique identifier for the appointment (UUID format).
	ID string `json:"id"`

	// WeddingID is the owning wedding.
	WeddingID string `json:"wedding_id"`

	// Title is the appointment headline.
	Title string `json:"title"`

	// Description is optional free text.
	Description string `json:"description,omitempty"`

	// Date is the calendar day in YYYY-MM-DD form. Day matching compares
	// this field only; Time never participates.
	Date string `json:"date"`

	// Time is an optional HH:MM time of day.
	Time string `json:"time,omitempty"`

	// Location is an optional venue or address.
	Location string `json:"location,omitempty"`

	// CreatedAt is the Unix timestamp when the appointment was created.
	CreatedAt int64 `json:"created_at"`

	// UpdatedAt is the Unix timestamp of the last change.
	UpdatedAt int64 `json:"updated_at"`
}
