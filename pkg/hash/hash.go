// Package hash stores confirmation codes as salted bcrypt digests so a
// database dump never exposes a usable code.
package hash

import (
	"golang.org/x/crypto/bcrypt"
)

// HashCode returns the bcrypt digest of a plaintext confirmation code.
func HashCode(code string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(code), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(digest), nil
}

// VerifyCode reports whether code matches the stored digest. A wrong code is
// an expected outcome and returns false; it never returns an error to the
// caller.
func VerifyCode(code, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(code)) == nil
}
