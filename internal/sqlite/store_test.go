package sqlite

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/vending/internal/storetest"
	"github.com/mesh-intelligence/vending/pkg/types"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewStore()
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestStoreContract(t *testing.T) {
	storetest.Run(t, func(t *testing.T) types.Store {
		return newTestStore(t)
	})
}

func TestStore_AppendBatchIsAtomic(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.Append(storetest.MustSnack(t, 10002, "2.00", "Orange")))

	// The second row collides with the UNIQUE barcode column, so the whole
	// batch must roll back.
	err := s.Append(
		storetest.MustSnack(t, 10001, "1.10", "Apple"),
		storetest.MustSnack(t, 10002, "2.00", "Orange"),
		storetest.MustSnack(t, 10003, "3.55", "Chocolate Bar"),
	)
	require.Error(t, err)

	all, err := s.All()
	require.NoError(t, err)
	assert.Equal(t, []int{10002}, storetest.Barcodes(all))
}

func TestStore_SeparateStoresDoNotShareData(t *testing.T) {
	a := newTestStore(t)
	b := newTestStore(t)

	require.NoError(t, a.Append(storetest.MustSnack(t, 12345, "1.50", "Gum")))

	all, err := b.All()
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestStore_RejectsCorruptRows(t *testing.T) {
	s := newTestStore(t)
	_, err := s.db.Exec("INSERT INTO snacks (barcode, calories, price, name) VALUES (?, ?, ?, ?)", 5, 100, "2.00", "Bad")
	require.NoError(t, err)

	_, err = s.All()
	assert.ErrorIs(t, err, types.ErrOutOfRange)
}
