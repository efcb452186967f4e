// Package auth provides password hashing and bearer token issuance for the
// registration/login endpoints.
package auth

import (
	"golang.org/x/crypto/bcrypt"
)

// HashPassword hashes a plain password with bcrypt. bcrypt only reads the
// first 72 bytes, so longer passwords are truncated before hashing to keep
// hashing and verification consistent.
func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword(truncate72([]byte(password)), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// VerifyPassword reports whether the plain password matches the stored hash.
func VerifyPassword(password, hashed string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), truncate72([]byte(password))) == nil
}

func truncate72(b []byte) []byte {
	if len(b) > 72 {
		return b[:72]
	}
	return b
}
