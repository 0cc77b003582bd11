package service

import "golang.org/x/crypto/bcrypt"

const bcryptCost = 10

// BcryptHasher implements ports.PasswordHasher with bcrypt at a fixed cost.
// The salt is embedded in the hash, so Verify needs no side channel.
type BcryptHasher struct{}

func NewBcryptHasher() *BcryptHasher {
	return &BcryptHasher{}
}

func (h *BcryptHasher) Hash(plain string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// Verify reports whether plain matches hashed. A malformed hash is treated as
// a mismatch, never an error.
func (h *BcryptHasher) Verify(plain, hashed string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain)) == nil
}
