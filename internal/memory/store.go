// Package memory implements the default catalog Store over an ordered slice.
package memory

import (
	"fmt"

	"github.com/mesh-intelligence/vending/pkg/types"
)

// Store keeps snacks in a slice. Every mutation builds a fresh slice so a
// snapshot returned by All is never affected by later changes.
type Store struct {
	snacks []types.Snack
	closed bool
}

// NewStore returns an empty, open Store.
func NewStore() *Store {
	return &Store{snacks: []types.Snack{}}
}

// All returns a copy of the snacks in insertion order.
func (s *Store) All() ([]types.Snack, error) {
	if s.closed {
		return nil, types.ErrStoreClosed
	}
	out := make([]types.Snack, len(s.snacks))
	copy(out, s.snacks)
	return out, nil
}

// Append adds snacks at the end of the sequence.
func (s *Store) Append(snacks ...types.Snack) error {
	if s.closed {
		return types.ErrStoreClosed
	}
	next := make([]types.Snack, len(s.snacks), len(s.snacks)+len(snacks))
	copy(next, s.snacks)
	s.snacks = append(next, snacks...)
	return nil
}

// Delete removes the snack at index, shifting later snacks down by one.
func (s *Store) Delete(index int) (types.Snack, error) {
	if s.closed {
		return types.Snack{}, types.ErrStoreClosed
	}
	if index < 0 || index >= len(s.snacks) {
		return types.Snack{}, fmt.Errorf("delete %d of %d: %w", index, len(s.snacks), types.ErrIndexInvalid)
	}
	removed := s.snacks[index]
	next := make([]types.Snack, 0, len(s.snacks)-1)
	next = append(next, s.snacks[:index]...)
	next = append(next, s.snacks[index+1:]...)
	s.snacks = next
	return removed, nil
}

// Close drops the contents. Idempotent.
func (s *Store) Close() error {
	s.closed = true
	s.snacks = nil
	return nil
}
