// Package model holds the storage representations of the domain entities.
// Field tags carry the wire-level camelCase names the access policy keys on,
// so a model converted through authz.DocumentOf shows exactly the document
// the store would hold.
package model

import (
	"time"

	"parkplan/internal/domain/entity"
)

// User is the Firestore document under users/{userId}.
type User struct {
	ID           string              `firestore:"-" json:"-"`
	Email        string              `firestore:"email" json:"email"`
	DisplayName  string              `firestore:"displayName" json:"displayName"`
	PhotoURL     string              `firestore:"photoUrl,omitempty" json:"photoUrl,omitempty"`
	Phone        string              `firestore:"phone,omitempty" json:"phone,omitempty"`
	Preferences  *TravelPreferences  `firestore:"preferences,omitempty" json:"preferences,omitempty"`
	DeviceTokens []string            `firestore:"deviceTokens,omitempty" json:"deviceTokens,omitempty"`
	CreatedAt    time.Time           `firestore:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time           `firestore:"updatedAt" json:"updatedAt"`
	LastActiveAt time.Time           `firestore:"lastActiveAt,omitempty" json:"lastActiveAt,omitempty"`
}

// TravelPreferences mirrors entity.TravelPreferences on the wire.
type TravelPreferences struct {
	PartySize       int    `firestore:"partySize" json:"partySize"`
	ChildrenAges    []int  `firestore:"childrenAges,omitempty" json:"childrenAges,omitempty"`
	RidePreference  string `firestore:"ridePreference,omitempty" json:"ridePreference,omitempty"`
	MaxWaitMinutes  int    `firestore:"maxWaitMinutes,omitempty" json:"maxWaitMinutes,omitempty"`
	UseGeniePlus    bool   `firestore:"useGeniePlus" json:"useGeniePlus"`
	WalkingPace     string `firestore:"walkingPace,omitempty" json:"walkingPace,omitempty"`
	NotifyWaitDrops bool   `firestore:"notifyWaitDrops" json:"notifyWaitDrops"`
	NotifyMessages  bool   `firestore:"notifyMessages" json:"notifyMessages"`
}

// NewUserFromEntity converts a domain user into its storage form.
func NewUserFromEntity(user *entity.User) *User {
	m := &User{
		ID:           user.ID,
		Email:        user.Email,
		DisplayName:  user.DisplayName,
		PhotoURL:     user.PhotoURL,
		Phone:        user.Phone,
		DeviceTokens: user.DeviceTokens,
		CreatedAt:    user.CreatedAt,
		UpdatedAt:    user.UpdatedAt,
		LastActiveAt: user.LastActiveAt,
	}
	if user.Preferences != nil {
		m.Preferences = &TravelPreferences{
			PartySize:       user.Preferences.PartySize,
			ChildrenAges:    user.Preferences.ChildrenAges,
			RidePreference:  user.Preferences.RidePreference,
			MaxWaitMinutes:  user.Preferences.MaxWaitMinutes,
			UseGeniePlus:    user.Preferences.UseGeniePlus,
			WalkingPace:     user.Preferences.WalkingPace,
			NotifyWaitDrops: user.Preferences.NotifyWaitDrops,
			NotifyMessages:  user.Preferences.NotifyMessages,
		}
	}

	return m
}

// ToEntity converts the storage form back into a domain user.
func (m *User) ToEntity() *entity.User {
	user := &entity.User{
		ID:           m.ID,
		Email:        m.Email,
		DisplayName:  m.DisplayName,
		PhotoURL:     m.PhotoURL,
		Phone:        m.Phone,
		DeviceTokens: m.DeviceTokens,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
		LastActiveAt: m.LastActiveAt,
	}
	if m.Preferences != nil {
		user.Preferences = &entity.TravelPreferences{
			PartySize:       m.Preferences.PartySize,
			ChildrenAges:    m.Preferences.ChildrenAges,
			RidePreference:  m.Preferences.RidePreference,
			MaxWaitMinutes:  m.Preferences.MaxWaitMinutes,
			UseGeniePlus:    m.Preferences.UseGeniePlus,
			WalkingPace:     m.Preferences.WalkingPace,
			NotifyWaitDrops: m.Preferences.NotifyWaitDrops,
			NotifyMessages:  m.Preferences.NotifyMessages,
		}
	}

	return user
}
