package storage

import "context"

// Kind identifies a logical storage area.
type Kind string

// Storage areas. Originals hold uploaded bytes exactly as received;
// derived holds generated artifacts such as thumbnails.
const (
	KindOriginal Kind = "originals"
	KindDerived  Kind = "derived"
)

// System defines blob storage operations over named files in logical
// areas. Implementations own the underlying layout while the pipeline
// deals only in kinds and names.
type System interface {
	// Start creates the area directories. Safe to call more than once.
	Start() error

	// Path resolves a kind and name to an absolute path without touching
	// the filesystem. Returns ErrInvalidName for empty names or path
	// traversal.
	Path(kind Kind, name string) (string, error)

	// Validate reports whether the named blob exists and is accessible.
	// Plain absence is (false, nil); permission and system errors are
	// returned.
	Validate(ctx context.Context, kind Kind, name string) (bool, error)

	// Store saves data under the given name, overwriting any existing
	// blob. The write is staged to a temporary file and renamed so a
	// failed write never leaves a partial blob.
	Store(ctx context.Context, kind Kind, name string, data []byte) error

	// Retrieve returns the stored bytes. Returns ErrNotFound if the blob
	// does not exist.
	Retrieve(ctx context.Context, kind Kind, name string) ([]byte, error)

	// Delete removes the named blob. Deleting a blob that does not exist
	// is a no-op, since records and files can diverge.
	Delete(ctx context.Context, kind Kind, name string) error
}
