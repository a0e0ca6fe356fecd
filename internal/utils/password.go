package utils

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// HashPassword irreversibly hashes a plaintext password with bcrypt using
// the default cost. The resulting string embeds the salt and cost, so it is
// self-contained for later verification.
//
// Returns an error if the password is empty or exceeds bcrypt's 72-byte
// input limit.
func HashPassword(password string) (string, error) {
	if password == "" {
		return "", errors.New("empty password provided for hashing")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}

	return string(hash), nil
}

// VerifyPassword reports whether password matches the stored bcrypt hash.
// bcrypt performs the comparison in constant time, so this is safe against
// timing attacks; plain string equality must never be used instead.
func VerifyPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
