package interfaces

import (
	"context"
)

// ISimulationCache memoizes serialized engine outputs by input hash.
//
// Implementations live in adapter/persistence/repository (memory, Redis, DynamoDB).
// A miss is (nil, false, nil); errors are reserved for backend failures.

type ISimulationCache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte) error
}
