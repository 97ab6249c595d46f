package kvstore

import (
	"testing"

	"github.com/fitpoint-gym/member-client/internal/adapters/contracttest"
	kvstoreport "github.com/fitpoint-gym/member-client/internal/ports/out/kvstore"
)

func TestStore_Contract(t *testing.T) {
	t.Parallel()

	contracttest.RunKVStore(t, func(t *testing.T) (kvstoreport.Store, contracttest.CleanupFunc) {
		return NewStore(), nil
	})
}
