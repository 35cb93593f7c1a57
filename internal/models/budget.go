package models

import "github.com/shopspring/decimal"

// CategoryIcon names the pictogram shown next to a budget category.
// The set is closed so renderers can map each value to a concrete glyph;
// unknown inputs collapse to IconOther instead of leaking arbitrary strings.
type CategoryIcon string

const (
	IconVenue       CategoryIcon = "venue"
	IconCatering    CategoryIcon = "catering"
	IconFlowers     CategoryIcon = "flowers"
	IconPhotography CategoryIcon = "photography"
	IconMusic       CategoryIcon = "music"
	IconDecoration  CategoryIcon = "decoration"
	IconCake        CategoryIcon = "cake"
	IconOther       CategoryIcon = "other"
)

// Valid reports whether the icon is one of the known values.
func (i CategoryIcon) Valid() bool {
	switch i {
	case IconVenue, IconCatering, IconFlowers, IconPhotography,
		IconMusic, IconDecoration, IconCake, IconOther:
		return true
	}
	return false
}

// IconOrDefault maps a raw string to a known icon, falling back to IconOther.
func IconOrDefault(s string) CategoryIcon {
	if icon := CategoryIcon(s); icon.Valid() {
		return icon
	}
	return IconOther
}

// BudgetCategory is one spending bucket of a wedding budget.
// Spent may exceed Budgeted; that is the over-budget state, not an error.
type BudgetCategory struct {
	// ID is the unique identifier for the category (UUID format).
	ID string `json:"id"`

	// WeddingID is the owning wedding.
	WeddingID string `json:"wedding_id"`

	// Name is the display name (e.g. "Venue & Reception").
	Name string `json:"name"`

	// Icon selects the category pictogram.
	Icon CategoryIcon `json:"icon"`

	// Budgeted is the planned amount for this category, never negative.
	Budgeted decimal.Decimal `json:"budgeted"`

	// Spent is the amount spent so far, never negative.
	Spent decimal.Decimal `json:"spent"`

	// CreatedAt is the Unix timestamp when the category was created.
	CreatedAt int64 `json:"created_at"`

	// UpdatedAt is the Unix timestamp of the last change.
	UpdatedAt int64 `json:"updated_at"`
}
