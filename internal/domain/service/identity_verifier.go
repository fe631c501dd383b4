// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

import (
	"context"

	"parkplan/internal/domain/authz"
)

// IdentityVerifier defines the interface for verifying bearer tokens and
// producing the caller identity used by policy evaluation. This abstracts
// Firebase Auth from the delivery layer.
type IdentityVerifier interface {
	// VerifyIDToken validates a Firebase ID token string and returns the
	// identity it asserts, including custom admin and moderator claims.
	VerifyIDToken(ctx context.Context, idToken string) (*authz.Identity, error)
}
