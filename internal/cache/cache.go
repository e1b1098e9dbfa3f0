package cache

import (
	"crypto/sha256"
	"encoding/hex"
)

// Cache stores citation extraction results keyed by document content, so a
// corpus containing duplicate documents is matched once.
type Cache interface {
	Get(key string) ([]string, bool)
	Set(key string, matches []string)
	Clear()
}

// Key generates a cache key from document content.
func Key(content string) string {
	hash := sha256.Sum256([]byte(content))
	return "citelens:v1:" + hex.EncodeToString(hash[:])
}
