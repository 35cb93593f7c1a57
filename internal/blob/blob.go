// Package blob abstracts the object store that holds uploaded inspiration
// media. Rows in the record store reference blobs by key and public URL;
// the service layer is responsible for ordering uploads before row inserts
// and blob removal before row deletes.
package blob

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"
	"time"
)

// Store is the interface to an object store for uploaded media.
type Store interface {
	// Put stores the object under key and returns its public URL.
	Put(ctx context.Context, key, contentType string, r io.Reader) (string, error)

	// Remove deletes the object under key. Removing a missing key is an
	// error: callers rely on Remove to confirm the blob is gone before
	// deleting the row that references it.
	Remove(ctx context.Context, key string) error
}

// NewKey builds an object key for a user's upload: {userID}/{timestamp}.{ext}.
// The extension is taken from the original filename, lowercased.
func NewKey(userID, filename string) string {
	ext := strings.ToLower(strings.TrimPrefix(path.Ext(filename), "."))
	if ext == "" {
		ext = "bin"
	}
	return fmt.Sprintf("%s/%d.%s", userID, time.Now().UnixNano(), ext)
}
