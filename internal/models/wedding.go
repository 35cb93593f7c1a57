package models

import "github.com/shopspring/decimal"

// Wedding is the root record every planning entity is scoped to.
// One wedding per user; duplicate rows for a user are a data-integrity error.
type Wedding struct {
	// ID is the unique identifier for the wedding (UUID format).
	ID string `json:"id"`

	// UserID is the owning user.
	UserID string `json:"user_id"`

	// PartnerEmail is the optional email of the user's partner.
	PartnerEmail string `json:"partner_email,omitempty"`

	// WeddingDate is the planned date in YYYY-MM-DD form, empty if undecided.
	WeddingDate string `json:"wedding_date,omitempty"`

	// Location is the venue or city, free text.
	Location string `json:"location,omitempty"`

	// Theme is the chosen wedding theme, free text.
	Theme string `json:"theme,omitempty"`

	// TotalBudget is the overall budget set during onboarding.
	TotalBudget decimal.Decimal `json:"total_budget"`

	// CreatedAt is the Unix timestamp when the wedding was created.
	CreatedAt int64 `json:"created_at"`

	// UpdatedAt is the Unix timestamp of the last change.
	UpdatedAt int64 `json:"updated_at"`
}
