package models

// MediaType classifies an inspiration upload. Closed set.
type MediaType string

const (
	MediaImage MediaType = "image"
	MediaVideo MediaType = "video"
)

// Valid reports whether the media type is one of the known values.
func (m MediaType) Valid() bool {
	return m == MediaImage || m == MediaVideo
}

// InspirationItem is one entry on the inspiration board. The media binary
// lives in blob storage; the row holds only its public URL and storage key.
type InspirationItem struct {
	// ID is the unique identifier for the item (UUID format).
	ID string `json:"id"`

	// WeddingID is the owning wedding.
	WeddingID string `json:"wedding_id"`

	// MediaURL is the public URL of the stored media object.
	MediaURL string `json:"media_url"`

	// MediaKey is the blob-storage key backing MediaURL. Deleting the row
	// must also release this object.
	MediaKey string `json:"-"`

	// MediaType is image or video.
	MediaType MediaType `json:"media_type"`

	// Title is an optional short caption.
	Title string `json:"title,omitempty"`

	// Notes is optional free text.
	Notes string `json:"notes,omitempty"`

	// SharedWithVendors marks the item as visible to booked vendors.
	SharedWithVendors bool `json:"shared_with_vendors"`

	// CreatedAt is the Unix timestamp when the item was created.
	CreatedAt int64 `json:"created_at"`

	// UpdatedAt is the Unix timestamp of the last change.
	UpdatedAt int64 `json:"updated_at"`
}
