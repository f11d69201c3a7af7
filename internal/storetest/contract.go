// Package storetest holds the behaviour every types.Store backend must share.
// Backend packages call Run from their own tests.
package storetest

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/vending/pkg/types"
)

// Factory returns a fresh, empty, open store.
type Factory func(t *testing.T) types.Store

// MustSnack builds a snack or fails the test.
func MustSnack(t *testing.T, barcode int, price, name string) types.Snack {
	t.Helper()
	s, err := types.NewSnack(barcode, 100, decimal.RequireFromString(price), name)
	require.NoError(t, err)
	return *s
}

// Barcodes lists the barcodes of snacks in order.
func Barcodes(snacks []types.Snack) []int {
	out := make([]int, len(snacks))
	for i, s := range snacks {
		out[i] = s.Barcode()
	}
	return out
}

// Run exercises the Store contract against stores built by newStore.
func Run(t *testing.T, newStore Factory) {
	t.Run("starts empty", func(t *testing.T) {
		s := newStore(t)
		all, err := s.All()
		require.NoError(t, err)
		assert.Empty(t, all)
		assert.NotNil(t, all)
	})

	t.Run("append keeps insertion order", func(t *testing.T) {
		s := newStore(t)
		require.NoError(t, s.Append(MustSnack(t, 30000, "3.00", "Cookie")))
		require.NoError(t, s.Append(MustSnack(t, 10005, "1.25", "Mint")))
		require.NoError(t, s.Append(MustSnack(t, 20000, "2.50", "Chips")))

		all, err := s.All()
		require.NoError(t, err)
		assert.Equal(t, []int{30000, 10005, 20000}, Barcodes(all))
	})

	t.Run("batch append", func(t *testing.T) {
		s := newStore(t)
		require.NoError(t, s.Append(
			MustSnack(t, 10001, "1.10", "Apple"),
			MustSnack(t, 10002, "2.00", "Orange"),
		))
		all, err := s.All()
		require.NoError(t, err)
		assert.Equal(t, []int{10001, 10002}, Barcodes(all))
	})

	t.Run("round trips every field", func(t *testing.T) {
		s := newStore(t)
		want, err := types.NewSnack(45678, 1999, decimal.RequireFromString("4.999"), "  Chocolate Bar ")
		require.NoError(t, err)
		require.NoError(t, s.Append(*want))

		all, err := s.All()
		require.NoError(t, err)
		require.Len(t, all, 1)
		got := all[0]
		assert.Equal(t, 45678, got.Barcode())
		assert.Equal(t, 1999, got.Calories())
		assert.True(t, decimal.RequireFromString("4.999").Equal(got.Price()), "price %s", got.Price())
		assert.Equal(t, "Chocolate Bar", got.Name())
	})

	t.Run("delete preserves order of the rest", func(t *testing.T) {
		s := newStore(t)
		require.NoError(t, s.Append(
			MustSnack(t, 11111, "1.00", "One"),
			MustSnack(t, 22222, "2.00", "Two"),
			MustSnack(t, 33333, "3.00", "Three"),
			MustSnack(t, 44444, "4.00", "Four"),
		))

		removed, err := s.Delete(1)
		require.NoError(t, err)
		assert.Equal(t, 22222, removed.Barcode())
		assert.Equal(t, "Two", removed.Name())

		all, err := s.All()
		require.NoError(t, err)
		assert.Equal(t, []int{11111, 33333, 44444}, Barcodes(all))

		removed, err = s.Delete(2)
		require.NoError(t, err)
		assert.Equal(t, 44444, removed.Barcode())

		removed, err = s.Delete(0)
		require.NoError(t, err)
		assert.Equal(t, 11111, removed.Barcode())

		all, err = s.All()
		require.NoError(t, err)
		assert.Equal(t, []int{33333}, Barcodes(all))
	})

	t.Run("delete out of bounds", func(t *testing.T) {
		s := newStore(t)
		_, err := s.Delete(0)
		assert.ErrorIs(t, err, types.ErrIndexInvalid)

		require.NoError(t, s.Append(MustSnack(t, 11111, "1.00", "One")))
		_, err = s.Delete(1)
		assert.ErrorIs(t, err, types.ErrIndexInvalid)
		_, err = s.Delete(-1)
		assert.ErrorIs(t, err, types.ErrIndexInvalid)

		all, err := s.All()
		require.NoError(t, err)
		assert.Len(t, all, 1)
	})

	t.Run("snapshots are independent", func(t *testing.T) {
		s := newStore(t)
		require.NoError(t, s.Append(MustSnack(t, 11111, "1.00", "One")))
		before, err := s.All()
		require.NoError(t, err)

		require.NoError(t, s.Append(MustSnack(t, 22222, "2.00", "Two")))
		_, err = s.Delete(0)
		require.NoError(t, err)

		assert.Equal(t, []int{11111}, Barcodes(before))
	})

	t.Run("closed store rejects calls", func(t *testing.T) {
		s := newStore(t)
		require.NoError(t, s.Close())
		require.NoError(t, s.Close(), "Close must be idempotent")

		_, err := s.All()
		assert.ErrorIs(t, err, types.ErrStoreClosed)
		assert.ErrorIs(t, s.Append(MustSnack(t, 11111, "1.00", "One")), types.ErrStoreClosed)
		_, err = s.Delete(0)
		assert.ErrorIs(t, err, types.ErrStoreClosed)
	})
}
