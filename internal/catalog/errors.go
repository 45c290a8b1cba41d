package catalog

import "errors"

var (
	// ErrNotFound indicates a material or scenario name missing from a catalog.
	ErrNotFound = errors.New("catalog: not found")

	// ErrDuplicate indicates two entries with the same name at construction.
	ErrDuplicate = errors.New("catalog: duplicate name")
)
