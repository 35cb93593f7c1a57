package models

// RSVPStatus is a guest's response state. The set is closed: every guest is
// in exactly one of the three states, and anything else stored in a row is a
// data-integrity violation.
type RSVPStatus string

const (
	RSVPInvited   RSVPStatus = "invited"
	RSVPConfirmed RSVPStatus = "confirmed"
	RSVPDeclined  RSVPStatus = "declined"
)

// Valid reports whether the status is one of the known values.
func (s RSVPStatus) Valid() bool {
	switch s {
	case RSVPInvited, RSVPConfirmed, RSVPDeclined:
		return true
	}
	return false
}

// Guest is one invitee on the wedding guest list.
type Guest struct {
	// ID is the unique identifier for the guest (UUID format).
	ID string `json:"id"`

	// WeddingID is the owning wedding.
	WeddingID string `json:"wedding_id"`

	// Name is the guest's display name.
	Name string `json:"name"`

	// Email is optional contact information.
	Email string `json:"email,omitempty"`

	// Category is an optional free-text label (e.g. "Family", "College").
	Category string `json:"category,omitempty"`

	// RSVPStatus is the guest's response state, defaulting to invited.
	RSVPStatus RSVPStatus `json:"rsvp_status"`

	// CreatedAt is the Unix timestamp when the guest was added.
	CreatedAt int64 `json:"created_at"`

	// UpdatedAt is the Unix timestamp of the last change.
	UpdatedAt int64 `json:"updated_at"`
}
