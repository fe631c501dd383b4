// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"parkplan/internal/domain/entity"
	"parkplan/internal/errors"
)

// Domain-specific errors for user persistence.
var (
	// ErrUserNotFound is returned when a user profile is not found.
	ErrUserNotFound = errors.New("user not found")
	// ErrDuplicateUser is returned when a profile already exists for the UID.
	ErrDuplicateUser = errors.New("user already exists")
)

// UserRepository defines the interface for user profile persistence.
// Profiles are keyed by the Firebase Auth UID of their owner.
type UserRepository interface {
	// CreateUser persists a new user profile.
	CreateUser(ctx context.Context, user *entity.User) error

	// FindUserByID retrieves a user profile by UID.
	FindUserByID(ctx context.Context, uid string) (*entity.User, error)

	// UpdateUser replaces the stored profile for the given UID.
	UpdateUser(ctx context.Context, user *entity.User) error

	// DeleteUser removes the profile for the given UID.
	DeleteUser(ctx context.Context, uid string) error

	// AddDeviceToken registers an FCM device token on the profile.
	AddDeviceToken(ctx context.Context, uid string, token string) error

	// RemoveDeviceToken unregisters an FCM device token from the profile.
	RemoveDeviceToken(ctx context.Context, uid string, token string) error
}
