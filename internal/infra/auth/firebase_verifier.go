// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"context"

	firebase "firebase.google.com/go/v4"
	fbauth "firebase.google.com/go/v4/auth"
	"google.golang.org/api/option"

	"parkplan/config"
	"parkplan/internal/domain/authz"
	"parkplan/internal/domain/service"
	"parkplan/internal/errors"
)

// firebaseVerifier is a concrete implementation of the IdentityVerifier
// interface backed by Firebase Auth.
type firebaseVerifier struct {
	client *fbauth.Client
}

// NewFirebaseVerifier creates a new Firebase Auth token verifier.
func NewFirebaseVerifier(ctx context.Context, cfg *config.Config) (service.IdentityVerifier, error) {
	if cfg.Firebase == nil || cfg.Firebase.ProjectID == "" {
		return nil, errors.New("firebase project must be configured")
	}

	var opts []option.ClientOption
	if cfg.Firebase.CredentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.Firebase.CredentialsPath))
	}

	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: cfg.Firebase.ProjectID}, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "initialize firebase app")
	}

	client, err := app.Auth(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "get auth client")
	}

	return &firebaseVerifier{client: client}, nil
}

// VerifyIDToken validates a Firebase ID token and maps its claims onto the
// identity the policy engine evaluates. The admin and moderator flags come
// from custom claims set by an out-of-band admin process.
func (v *firebaseVerifier) VerifyIDToken(ctx context.Context, idToken string) (*authz.Identity, error) {
	token, err := v.client.VerifyIDToken(ctx, idToken)
	if err != nil {
		return nil, errors.Wrap(err, "verify id token")
	}

	ident := &authz.Identity{UID: token.UID}
	if email, ok := token.Claims["email"].(string); ok {
		ident.Email = email
	}
	if verified, ok := token.Claims["email_verified"].(bool); ok {
		ident.EmailVerified = verified
	}
	if admin, ok := token.Claims["admin"].(bool); ok {
		ident.Admin = admin
	}
	if moderator, ok := token.Claims["moderator"].(bool); ok {
		ident.Moderator = moderator
	}

	return ident, nil
}
