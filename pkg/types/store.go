package types

import "errors"

// Store holds the ordered snack sequence behind a catalog. Implementations
// keep insertion order and never reorder on delete. Uniqueness of barcodes is
// the catalog's job, not the store's.
type Store interface {
	// All returns a copy of every snack in insertion order.
	All() ([]Snack, error)

	// Append adds snacks at the end. A multi-snack append is atomic: either
	// every snack is stored or none is.
	Append(snacks ...Snack) error

	// Delete removes the snack at index and returns it. The remaining snacks
	// keep their relative order.
	Delete(index int) (Snack, error)

	// Close releases backend resources. Idempotent. After Close every other
	// method returns ErrStoreClosed.
	Close() error
}

// Store errors.
var (
	ErrStoreClosed  = errors.New("store is closed")
	ErrIndexInvalid = errors.New("index out of bounds")
)
