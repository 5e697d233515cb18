// Package cache provides content-derived key derivation and fail-open
// key/value stores for memoizing aggregation results.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
)

// DeriveKey builds a deterministic cache key from a namespace and the value
// of the payload. encoding/json emits struct fields in declaration order and
// map keys sorted, so semantically equal payloads hash identically across
// process restarts. An error means the payload is not serializable and the
// caller must skip caching.
func DeriveKey(namespace string, payload any) (string, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("cache key payload not serializable: %w", err)
	}
	sum := sha256.Sum256(raw)
	return namespace + ":" + hex.EncodeToString(sum[:]), nil
}
