package memory

import (
	"testing"

	"github.com/mesh-intelligence/vending/internal/storetest"
	"github.com/mesh-intelligence/vending/pkg/types"
)

func TestStoreContract(t *testing.T) {
	storetest.Run(t, func(t *testing.T) types.Store {
		return NewStore()
	})
}
