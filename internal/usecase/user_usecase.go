// Package usecase defines the application service interfaces. Every
// operation takes the caller's verified identity and runs the access policy
// before touching storage.
package usecase

import (
	"context"

	"parkplan/internal/domain/authz"
	"parkplan/internal/domain/entity"
)

// RegisterUserInput holds the caller-supplied fields of a new profile. Email
// and UID come from the verified identity, never from the client.
type RegisterUserInput struct {
	DisplayName string
	PhotoURL    string
	Phone       string
	Preferences *entity.TravelPreferences
}

// UpdateUserInput is a partial profile patch. Nil fields stay unchanged.
type UpdateUserInput struct {
	DisplayName *string
	PhotoURL    *string
	Phone       *string
	Preferences *entity.TravelPreferences
}

// UserUsecase defines the interface for profile management use cases
type UserUsecase interface {
	// RegisterUser creates the caller's profile document.
	RegisterUser(ctx context.Context, ident *authz.Identity, input *RegisterUserInput) (*entity.User, error)

	// GetUser retrieves a profile, subject to the read policy.
	GetUser(ctx context.Context, ident *authz.Identity, uid string) (*entity.User, error)

	// UpdateUser applies a partial patch to a profile.
	UpdateUser(ctx context.Context, ident *authz.Identity, uid string, input *UpdateUserInput) (*entity.User, error)

	// DeleteUser removes a profile document.
	DeleteUser(ctx context.Context, ident *authz.Identity, uid string) error

	// RegisterDevice stores an FCM registration token on the caller's profile.
	RegisterDevice(ctx context.Context, ident *authz.Identity, token string) error

	// UnregisterDevice removes an FCM registration token from the caller's profile.
	UnregisterDevice(ctx context.Context, ident *authz.Identity, token string) error
}
