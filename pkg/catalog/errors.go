package catalog

import "fmt"

// StorageError wraps a failure from a catalog storage backend with the
// backend name and the operation that failed.
type StorageError struct {
	Backend string
	Op      string
	Err     error
}

// NewStorageError creates a new storage error.
func NewStorageError(backend, op string, err error) *StorageError {
	return &StorageError{Backend: backend, Op: op, Err: err}
}

// Error implements the error interface.
func (e *StorageError) Error() string {
	return fmt.Sprintf("catalog storage %s: %s: %v", e.Backend, e.Op, e.Err)
}

// Unwrap returns the underlying error.
func (e *StorageError) Unwrap() error {
	return e.Err
}
