// Package catalog implements the snack catalog: an ordered collection with
// unique barcodes, layered over a types.Store backend.
package catalog

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/mesh-intelligence/vending/pkg/types"
)

// Catalog owns the ordered snack collection. It is not safe for concurrent
// use; a host that shares one across goroutines must serialise calls.
type Catalog struct {
	store types.Store
}

// New returns a Catalog over store. The store should be empty; the catalog
// trusts whatever it already holds to be barcode-unique.
func New(store types.Store) *Catalog {
	return &Catalog{store: store}
}

// Add validates the fields, rejects a barcode already in the catalog, and
// appends the new snack. Snack validation errors are returned unchanged.
func (c *Catalog) Add(barcode, calories int, price decimal.Decimal, name string) (types.Snack, error) {
	exists, err := c.Contains(barcode)
	if err != nil {
		return types.Snack{}, err
	}
	if exists {
		return types.Snack{}, &types.DuplicateBarcodeError{Barcode: barcode}
	}

	snack, err := types.NewSnack(barcode, calories, price, name)
	if err != nil {
		return types.Snack{}, err
	}
	if err := c.store.Append(*snack); err != nil {
		return types.Snack{}, fmt.Errorf("append snack %d: %w", barcode, err)
	}
	return *snack, nil
}

// RemoveByBarcode deletes the snack with the given barcode and returns its
// name. The remaining snacks keep their relative order.
func (c *Catalog) RemoveByBarcode(barcode int) (string, error) {
	index, err := c.FindIndexByBarcode(barcode)
	if err != nil {
		return "", err
	}
	removed, err := c.store.Delete(index)
	if err != nil {
		return "", fmt.Errorf("delete snack %d: %w", barcode, err)
	}
	return removed.Name(), nil
}

// FindIndexByBarcode returns the position of the first snack whose barcode
// equals barcode. Returns a *types.NotFoundError if none matches.
func (c *Catalog) FindIndexByBarcode(barcode int) (int, error) {
	snacks, err := c.List()
	if err != nil {
		return -1, err
	}
	for i, s := range snacks {
		if s.Barcode() == barcode {
			return i, nil
		}
	}
	return -1, &types.NotFoundError{Barcode: barcode}
}

// Contains reports whether a snack with barcode is in the catalog.
func (c *Catalog) Contains(barcode int) (bool, error) {
	_, err := c.FindIndexByBarcode(barcode)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, types.ErrNotFound) {
		return false, nil
	}
	return false, err
}

// List returns every snack in catalog order. An empty catalog yields an
// empty, non-nil slice.
func (c *Catalog) List() ([]types.Snack, error) {
	snacks, err := c.store.All()
	if err != nil {
		return nil, fmt.Errorf("list snacks: %w", err)
	}
	return snacks, nil
}

// Len returns the number of snacks in the catalog.
func (c *Catalog) Len() (int, error) {
	snacks, err := c.List()
	if err != nil {
		return 0, err
	}
	return len(snacks), nil
}

// FilterAbovePrice returns, in catalog order, every snack priced strictly
// above threshold. The threshold must lie in [0, 5.00]; zero matches every
// snack. No match is an empty result, not an error.
func (c *Catalog) FilterAbovePrice(threshold decimal.Decimal) ([]types.Snack, error) {
	if err := types.CheckThreshold(threshold); err != nil {
		return nil, err
	}
	snacks, err := c.List()
	if err != nil {
		return nil, err
	}
	matches := []types.Snack{}
	for _, s := range snacks {
		if types.CompareDecimal(s.Price(), threshold) > 0 {
			matches = append(matches, s)
		}
	}
	return matches, nil
}

// Close releases the underlying store.
func (c *Catalog) Close() error {
	return c.store.Close()
}
