package models

// Vendor is one entry of the global vendor catalog. Vendors are not scoped
// to a wedding; "my vendors" is an ephemeral client-side selection.
type Vendor struct {
	// ID is the unique identifier for the vendor (UUID format).
	ID string `json:"id"`

	// Name is the vendor's display name.
	Name string `json:"name"`

	// Category is the marketplace category (e.g. "Venue", "Catering").
	Category string `json:"category"`

	// Description is optional marketing copy.
	Description string `json:"description,omitempty"`

	// Rating is the average review score, 0 when unrated.
	Rating float64 `json:"rating,omitempty"`

	// ReviewsCount is the number of reviews behind Rating.
	ReviewsCount int `json:"reviews_count,omitempty"`

	// CreatedAt is the Unix timestamp when the vendor was listed.
	CreatedAt int64 `json:"created_at"`
}
