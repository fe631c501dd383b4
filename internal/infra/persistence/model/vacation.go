package model

import (
	"time"

	"parkplan/internal/domain/entity"
)

// Vacation is the Firestore document under vacations/{vacationId}.
type Vacation struct {
	ID            string         `firestore:"-" json:"-"`
	Name          string         `firestore:"name" json:"name"`
	Destination   string         `firestore:"destination" json:"destination"`
	StartDate     time.Time      `firestore:"startDate" json:"startDate"`
	EndDate       time.Time      `firestore:"endDate" json:"endDate"`
	Status        string         `firestore:"status" json:"status"`
	CreatedBy     string         `firestore:"createdBy" json:"createdBy"`
	Accommodation *Accommodation `firestore:"accommodation,omitempty" json:"accommodation,omitempty"`
	Adults        int            `firestore:"adults" json:"adults"`
	Children      int            `firestore:"children" json:"children"`
	ShareCode     string         `firestore:"shareCode" json:"shareCode"`
	JoinPINHash   string         `firestore:"joinPinHash,omitempty" json:"joinPinHash,omitempty"`
	IsPublic      bool           `firestore:"isPublic" json:"isPublic"`
	CreatedAt     time.Time      `firestore:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time      `firestore:"updatedAt" json:"updatedAt"`
}

// Accommodation mirrors entity.Accommodation on the wire.
type Accommodation struct {
	ResortID     string    `firestore:"resortId,omitempty" json:"resortId,omitempty"`
	Name         string    `firestore:"name,omitempty" json:"name,omitempty"`
	CheckIn      time.Time `firestore:"checkIn" json:"checkIn"`
	CheckOut     time.Time `firestore:"checkOut" json:"checkOut"`
	Confirmation string    `firestore:"confirmation,omitempty" json:"confirmation,omitempty"`
}

// Membership is the Firestore document under vacations/{vacationId}/members/{userId}.
type Membership struct {
	VacationID  string        `firestore:"vacationId" json:"vacationId"`
	UserID      string        `firestore:"userId" json:"userId"`
	DisplayName string        `firestore:"displayName,omitempty" json:"displayName,omitempty"`
	Role        string        `firestore:"role" json:"role"`
	Permissions PermissionSet `firestore:"permissions" json:"permissions"`
	JoinedAt    time.Time     `firestore:"joinedAt" json:"joinedAt"`
	UpdatedAt   time.Time     `firestore:"updatedAt" json:"updatedAt"`
}

// PermissionSet mirrors entity.PermissionSet on the wire.
type PermissionSet struct {
	EditItinerary bool `firestore:"editItinerary" json:"editItinerary"`
	ManageBudget  bool `firestore:"manageBudget" json:"manageBudget"`
	InviteOthers  bool `firestore:"inviteOthers" json:"inviteOthers"`
}

// NewVacationFromEntity converts a domain vacation into its storage form.
func NewVacationFromEntity(vacation *entity.Vacation) *Vacation {
	m := &Vacation{
		ID:          vacation.ID,
		Name:        vacation.Name,
		Destination: vacation.Destination,
		StartDate:   vacation.StartDate,
		EndDate:     vacation.EndDate,
		Status:      vacation.Status.String(),
		CreatedBy:   vacation.CreatedBy,
		Adults:      vacation.Adults,
		Children:    vacation.Children,
		ShareCode:   vacation.ShareCode,
		JoinPINHash: vacation.JoinPINHash,
		IsPublic:    vacation.IsPublic,
		CreatedAt:   vacation.CreatedAt,
		UpdatedAt:   vacation.UpdatedAt,
	}
	if vacation.Accommodation != nil {
		m.Accommodation = &Accommodation{
			ResortID:     vacation.Accommodation.ResortID,
			Name:         vacation.Accommodation.Name,
			CheckIn:      vacation.Accommodation.CheckIn,
			CheckOut:     vacation.Accommodation.CheckOut,
			Confirmation: vacation.Accommodation.Confirmation,
		}
	}

	return m
}

// ToEntity converts the storage form back into a domain vacation.
func (m *Vacation) ToEntity() *entity.Vacation {
	vacation := &entity.Vacation{
		ID:          m.ID,
		Name:        m.Name,
		Destination: m.Destination,
		StartDate:   m.StartDate,
		EndDate:     m.EndDate,
		Status:      entity.VacationStatus(m.Status),
		CreatedBy:   m.CreatedBy,
		Adults:      m.Adults,
		Children:    m.Children,
		ShareCode:   m.ShareCode,
		JoinPINHash: m.JoinPINHash,
		IsPublic:    m.IsPublic,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
	if m.Accommodation != nil {
		vacation.Accommodation = &entity.Accommodation{
			ResortID:     m.Accommodation.ResortID,
			Name:         m.Accommodation.Name,
			CheckIn:      m.Accommodation.CheckIn,
			CheckOut:     m.Accommodation.CheckOut,
			Confirmation: m.Accommodation.Confirmation,
		}
	}

	return vacation
}

// NewMembershipFromEntity converts a domain membership into its storage form.
func NewMembershipFromEntity(membership *entity.Membership) *Membership {
	return &Membership{
		VacationID:  membership.VacationID,
		UserID:      membership.UserID,
		DisplayName: membership.DisplayName,
		Role:        membership.Role.String(),
		Permissions: PermissionSet{
			EditItinerary: membership.Permissions.EditItinerary,
			ManageBudget:  membership.Permissions.ManageBudget,
			InviteOthers:  membership.Permissions.InviteOthers,
		},
		JoinedAt:  membership.JoinedAt,
		UpdatedAt: membership.UpdatedAt,
	}
}

// ToEntity converts the storage form back into a domain membership.
func (m *Membership) ToEntity() *entity.Membership {
	return &entity.Membership{
		VacationID:  m.VacationID,
		UserID:      m.UserID,
		DisplayName: m.DisplayName,
		Role:        entity.MemberRole(m.Role),
		Permissions: entity.PermissionSet{
			EditItinerary: m.Permissions.EditItinerary,
			ManageBudget:  m.Permissions.ManageBudget,
			InviteOthers:  m.Permissions.InviteOthers,
		},
		JoinedAt:  m.JoinedAt,
		UpdatedAt: m.UpdatedAt,
	}
}
