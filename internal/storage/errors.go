// Package storage provides blob storage for uploaded originals and their
// derived artifacts. It defines a System interface and a filesystem
// implementation keeping two directories under a configurable root.
package storage

import "errors"

// Storage errors returned by System implementations.
var (
	// ErrNotFound indicates the requested blob does not exist.
	ErrNotFound = errors.New("storage: blob not found")

	// ErrPermissionDenied indicates insufficient permissions to access the blob.
	ErrPermissionDenied = errors.New("storage: permission denied")

	// ErrInvalidName indicates the blob name is empty or attempts to
	// escape its storage area.
	ErrInvalidName = errors.New("storage: invalid name")
)
