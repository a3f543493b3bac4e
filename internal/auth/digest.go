package auth

import (
	"crypto/sha256"
	"encoding/hex"
)

// Digest returns the hex-encoded SHA-256 of the secret's UTF-8 bytes.
//
// No salt and no key stretching: the threat model is a single local
// device with one administrator and no network exposure. Any multi-user
// or networked evolution must switch to per-profile salts and a slow
// KDF before reusing this store.
func Digest(secret string) string {
	sum := sha256.Sum256([]byte(secret))
	return hex.EncodeToString(sum[:])
}
