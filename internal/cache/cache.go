// Package cache memoizes probe answers so duplicate prompts and re-runs
// skip the LLM call.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// Cache defines the interface for answer caching
type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte, ttl time.Duration) error
	Delete(key string) error
	Clear() error
}

// AnswerKey generates a cache key for a probe. Provider and model are part
// of the key: the same question to a different model is a different probe.
func AnswerKey(provider, model, prompt string) string {
	hash := sha256.Sum256([]byte(provider + "\x00" + model + "\x00" + prompt))
	return "bibfact:v1:" + hex.EncodeToString(hash[:])
}
