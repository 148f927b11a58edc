package usecase

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"log"
	"simulador_tokenizacao/internal/usecase/interfaces"
)

// cacheKey is "<kind>:<sha256 of the JSON input>".
func cacheKey(kind string, input any) (string, error) {
	raw, err := json.Marshal(input)
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(raw)
	return kind + ":" + hex.EncodeToString(sum[:]), nil
}

// memoize returns the cached output for input or computes and stores it.
// Cache failures are logged and never surface to the caller.
func memoize[T any](ctx context.Context, cache interfaces.ISimulationCache, kind string, input any, compute func() T) T {
	if cache == nil {
		return compute()
	}

	key, err := cacheKey(kind, input)
	if err != nil {
		log.Printf("[%s][usecase] cache key failed err=%v", kind, err)
		return compute()
	}

	raw, found, err := cache.Get(ctx, key)
	switch {
	case err != nil:
		log.Printf("[%s][usecase] cache get failed key=%s err=%v", kind, key, err)
	case found:
		var out T
		decodeErr := json.Unmarshal(raw, &out)
		if decodeErr == nil {
			log.Printf("[%s][usecase] cache hit key=%s", kind, key)
			return out
		}
		log.Printf("[%s][usecase] cache entry unreadable key=%s err=%v", kind, key, decodeErr)
	}

	out := compute()
	encoded, err := json.Marshal(out)
	if err != nil {
		log.Printf("[%s][usecase] cache encode failed key=%s err=%v", kind, key, err)
		return out
	}
	if err := cache.Set(ctx, key, encoded); err != nil {
		log.Printf("[%s][usecase] cache set failed key=%s err=%v", kind, key, err)
	}
	return out
}
