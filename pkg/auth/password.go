// Package auth provides password hashing for user accounts. Passwords
// are stored as lowercase hex SHA-256 digests in the user CSV files.
package auth

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
)

// DefaultPassword is the plain-text password assigned to newly created
// accounts until the user changes it.
const DefaultPassword = "password"

// HashPassword returns the hex-encoded SHA-256 digest of the password.
func HashPassword(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}

// Verify reports whether the plain-text password matches the stored
// digest. The comparison is constant-time.
func Verify(password, storedHash string) bool {
	hashed := HashPassword(password)
	return subtle.ConstantTimeCompare([]byte(hashed), []byte(storedHash)) == 1
}
