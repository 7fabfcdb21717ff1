// Package crypto wraps the one-way password primitives used by registration
// and authentication.
package crypto

import "golang.org/x/crypto/bcrypt"

// HashPassword hashes plaintext using bcrypt.
func HashPassword(plain string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err //nolint: wrapcheck
	}

	return string(hash), nil
}

// ComparePassword compares plaintext to a stored bcrypt hash. It returns a
// non-nil error on mismatch.
func ComparePassword(hash, plain string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) //nolint: wrapcheck
}
