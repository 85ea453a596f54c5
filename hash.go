package lingoswap

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// HashText computes the SHA-256 hash of the trimmed text.
func HashText(text string) string {
	trimmed := strings.TrimSpace(text)
	hash := sha256.Sum256([]byte(trimmed))
	return hex.EncodeToString(hash[:])
}

// CacheKey generates a cache key for a selection hash, resolved direction,
// and mode. Direction is part of the key: the same selection translated the
// other way is a different completion.
func CacheKey(hash string, pair LanguagePair, mode Mode) string {
	return hash + ":" + pair.Source + ":" + pair.Destination + ":" + string(mode)
}
