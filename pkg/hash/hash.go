package hash

import "golang.org/x/crypto/bcrypt"

// Cost is the bcrypt work factor used for every stored password
const Cost = 10

// MaxLength is the longest plaintext bcrypt accepts, in bytes
const MaxLength = 72

// Hash returns the salted bcrypt digest of a plaintext password
func Hash(plaintext string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(plaintext), Cost)
	if err != nil {
		return "", err
	}
	return string(digest), nil
}

// Verify reports whether plaintext matches the digest
func Verify(plaintext, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plaintext)) == nil
}
