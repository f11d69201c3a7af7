package catalog

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/mesh-intelligence/vending/pkg/types"
)

// seedSnack describes one demonstration snack.
type seedSnack struct {
	barcode  int
	calories int
	price    string
	name     string
}

// seedSnacks are inserted by SeedDefaults. Their barcodes are reserved: a
// seed is refused if any of them is already present.
var seedSnacks = []seedSnack{
	{10001, 100, "1.10", "Apple"},
	{10002, 100, "2.00", "Orange"},
	{10003, 100, "3.55", "Chocolate Bar"},
}

// SeedBarcodes returns the reserved seed barcodes in insertion order.
func SeedBarcodes() []int {
	out := make([]int, len(seedSnacks))
	for i, s := range seedSnacks {
		out[i] = s.barcode
	}
	return out
}

// SeedDefaults inserts the demonstration snacks. It fails with a
// *types.SeedConflictError naming every reserved barcode already present,
// and otherwise appends all three in a single store batch.
func (c *Catalog) SeedDefaults() ([]types.Snack, error) {
	existing, err := c.List()
	if err != nil {
		return nil, err
	}
	present := make(map[int]bool, len(existing))
	for _, s := range existing {
		present[s.Barcode()] = true
	}

	var conflicts []int
	for _, b := range SeedBarcodes() {
		if present[b] {
			conflicts = append(conflicts, b)
		}
	}
	if len(conflicts) > 0 {
		return nil, &types.SeedConflictError{Barcodes: conflicts}
	}

	snacks := make([]types.Snack, 0, len(seedSnacks))
	for _, seed := range seedSnacks {
		snack, err := types.NewSnack(seed.barcode, seed.calories, decimal.RequireFromString(seed.price), seed.name)
		if err != nil {
			// Seed values are constants inside every domain.
			panic(fmt.Sprintf("invalid seed snack %d: %v", seed.barcode, err))
		}
		snacks = append(snacks, *snack)
	}
	if err := c.store.Append(snacks...); err != nil {
		return nil, fmt.Errorf("seed snacks: %w", err)
	}
	return snacks, nil
}
