// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"golang.org/x/crypto/bcrypt"

	"parkplan/config"
	"parkplan/internal/domain/service"
)

// bcryptCodeHasher is a concrete implementation of the CodeHasher interface using bcrypt.
type bcryptCodeHasher struct {
	cost int
}

// NewBcryptCodeHasher is the constructor for bcryptCodeHasher.
// It returns the implementation as a service.CodeHasher interface.
func NewBcryptCodeHasher(cfg *config.Config) service.CodeHasher {
	cost := bcrypt.DefaultCost
	if cfg.Auth != nil && cfg.Auth.BcryptCost >= bcrypt.MinCost && cfg.Auth.BcryptCost <= bcrypt.MaxCost {
		cost = cfg.Auth.BcryptCost
	}

	return &bcryptCodeHasher{cost: cost}
}

// Hash generates a salted hash from a plaintext PIN using bcrypt.
// bcrypt automatically handles salt generation.
func (h *bcryptCodeHasher) Hash(pin string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(pin), h.cost)

	return string(bytes), err
}

// Check compares a plaintext PIN with a bcrypt hash.
func (h *bcryptCodeHasher) Check(pin, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(pin))
	// err is nil if the PIN and hash match.
	return err == nil
}
