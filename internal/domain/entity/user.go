// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// User is the profile record for an authenticated traveler. Its ID is the
// Firebase Auth UID, so a user document is always identity-scoped.
type User struct {
	ID           string             // Firebase Auth UID owning this profile.
	Email        string             // Primary contact email, verified at signup.
	DisplayName  string             // Name shown to other vacation members.
	PhotoURL     string             // Optional avatar URL.
	Phone        string             // Optional phone number.
	Preferences  *TravelPreferences // Trip-planning preferences. Nil until the user sets them.
	DeviceTokens []string           // FCM registration tokens for push notifications.
	CreatedAt    time.Time          // Timestamp of when this profile was created.
	UpdatedAt    time.Time          // Timestamp of the last modification.
	LastActiveAt time.Time          // Timestamp of the last observed activity.
}

// TravelPreferences holds the knobs the planner uses when suggesting
// attractions and building day plans.
type TravelPreferences struct {
	PartySize       int    // Number of travelers in the party.
	ChildrenAges    []int  // Ages of children in the party, if any.
	RidePreference  string // "thrill", "family" or "all".
	MaxWaitMinutes  int    // Longest queue the party will tolerate.
	UseGeniePlus    bool   // Whether the party uses the paid line-skip service.
	WalkingPace     string // "relaxed", "moderate" or "fast".
	NotifyWaitDrops bool   // Push a notification when a tracked wait time drops.
	NotifyMessages  bool   // Push a notification on new group messages.
}
