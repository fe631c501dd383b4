package model

import (
	"time"

	"parkplan/internal/domain/entity"
)

// Park is the Firestore document under parks/{parkId}.
type Park struct {
	ID        string    `firestore:"-" json:"-"`
	Name      string    `firestore:"name" json:"name"`
	Timezone  string    `firestore:"timezone" json:"timezone"`
	Latitude  float64   `firestore:"latitude" json:"latitude"`
	Longitude float64   `firestore:"longitude" json:"longitude"`
	UpdatedAt time.Time `firestore:"updatedAt" json:"updatedAt"`
}

// Attraction is the Firestore document under attractions/{attractionId}.
type Attraction struct {
	ID          string    `firestore:"-" json:"-"`
	ParkID      string    `firestore:"parkId" json:"parkId"`
	Name        string    `firestore:"name" json:"name"`
	Land        string    `firestore:"land,omitempty" json:"land,omitempty"`
	Kind        string    `firestore:"kind" json:"kind"`
	HeightMinCm int       `firestore:"heightMinCm,omitempty" json:"heightMinCm,omitempty"`
	UpdatedAt   time.Time `firestore:"updatedAt" json:"updatedAt"`
}

// Restaurant is the Firestore document under restaurants/{restaurantId}.
type Restaurant struct {
	ID          string    `firestore:"-" json:"-"`
	ParkID      string    `firestore:"parkId,omitempty" json:"parkId,omitempty"`
	Name        string    `firestore:"name" json:"name"`
	Cuisine     string    `firestore:"cuisine,omitempty" json:"cuisine,omitempty"`
	ServiceType string    `firestore:"serviceType" json:"serviceType"`
	UpdatedAt   time.Time `firestore:"updatedAt" json:"updatedAt"`
}

// Resort is the Firestore document under resorts/{resortId}.
type Resort struct {
	ID        string    `firestore:"-" json:"-"`
	Name      string    `firestore:"name" json:"name"`
	Category  string    `firestore:"category" json:"category"`
	UpdatedAt time.Time `firestore:"updatedAt" json:"updatedAt"`
}

// ParkHours is the Firestore document under parkHours/{parkId_date}.
type ParkHours struct {
	ParkID    string    `firestore:"parkId" json:"parkId"`
	Date      time.Time `firestore:"date" json:"date"`
	OpensAt   time.Time `firestore:"opensAt" json:"opensAt"`
	ClosesAt  time.Time `firestore:"closesAt" json:"closesAt"`
	UpdatedAt time.Time `firestore:"updatedAt" json:"updatedAt"`
}

// WaitTime is the Realtime Database record under waitTimes/{parkId}/{attractionId}.
type WaitTime struct {
	AttractionID string    `json:"attractionId"`
	ParkID       string    `json:"parkId"`
	Minutes      int       `json:"minutes"`
	Status       string    `json:"status"`
	ObservedAt   time.Time `json:"observedAt"`
}

// NewParkFromEntity converts a domain park into its storage form.
func NewParkFromEntity(park *entity.Park) *Park {
	return &Park{
		ID:        park.ID,
		Name:      park.Name,
		Timezone:  park.Timezone,
		Latitude:  park.Latitude,
		Longitude: park.Longitude,
		UpdatedAt: park.UpdatedAt,
	}
}

// ToEntity converts the storage form back into a domain park.
func (m *Park) ToEntity() *entity.Park {
	return &entity.Park{
		ID:        m.ID,
		Name:      m.Name,
		Timezone:  m.Timezone,
		Latitude:  m.Latitude,
		Longitude: m.Longitude,
		UpdatedAt: m.UpdatedAt,
	}
}

// NewAttractionFromEntity converts a domain attraction into its storage form.
func NewAttractionFromEntity(attraction *entity.Attraction) *Attraction {
	return &Attraction{
		ID:          attraction.ID,
		ParkID:      attraction.ParkID,
		Name:        attraction.Name,
		Land:        attraction.Land,
		Kind:        attraction.Kind,
		HeightMinCm: attraction.HeightMinCm,
		UpdatedAt:   attraction.UpdatedAt,
	}
}

// ToEntity converts the storage form back into a domain attraction.
func (m *Attraction) ToEntity() *entity.Attraction {
	return &entity.Attraction{
		ID:          m.ID,
		ParkID:      m.ParkID,
		Name:        m.Name,
		Land:        m.Land,
		Kind:        m.Kind,
		HeightMinCm: m.HeightMinCm,
		UpdatedAt:   m.UpdatedAt,
	}
}

// NewRestaurantFromEntity converts a domain restaurant into its storage form.
func NewRestaurantFromEntity(restaurant *entity.Restaurant) *Restaurant {
	return &Restaurant{
		ID:          restaurant.ID,
		ParkID:      restaurant.ParkID,
		Name:        restaurant.Name,
		Cuisine:     restaurant.Cuisine,
		ServiceType: restaurant.ServiceType,
		UpdatedAt:   restaurant.UpdatedAt,
	}
}

// ToEntity converts the storage form back into a domain restaurant.
func (m *Restaurant) ToEntity() *entity.Restaurant {
	return &entity.Restaurant{
		ID:          m.ID,
		ParkID:      m.ParkID,
		Name:        m.Name,
		Cuisine:     m.Cuisine,
		ServiceType: m.ServiceType,
		UpdatedAt:   m.UpdatedAt,
	}
}

// NewResortFromEntity converts a domain resort into its storage form.
func NewResortFromEntity(resort *entity.Resort) *Resort {
	return &Resort{
		ID:        resort.ID,
		Name:      resort.Name,
		Category:  resort.Category,
		UpdatedAt: resort.UpdatedAt,
	}
}

// ToEntity converts the storage form back into a domain resort.
func (m *Resort) ToEntity() *entity.Resort {
	return &entity.Resort{
		ID:        m.ID,
		Name:      m.Name,
		Category:  m.Category,
		UpdatedAt: m.UpdatedAt,
	}
}

// NewParkHoursFromEntity converts a domain schedule into its storage form.
func NewParkHoursFromEntity(hours *entity.ParkHours) *ParkHours {
	return &ParkHours{
		ParkID:    hours.ParkID,
		Date:      hours.Date,
		OpensAt:   hours.OpensAt,
		ClosesAt:  hours.ClosesAt,
		UpdatedAt: hours.UpdatedAt,
	}
}

// ToEntity converts the storage form back into a domain schedule.
func (m *ParkHours) ToEntity() *entity.ParkHours {
	return &entity.ParkHours{
		ParkID:    m.ParkID,
		Date:      m.Date,
		OpensAt:   m.OpensAt,
		ClosesAt:  m.ClosesAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// NewWaitTimeFromEntity converts a domain observation into its storage form.
func NewWaitTimeFromEntity(wait *entity.WaitTime) *WaitTime {
	return &WaitTime{
		AttractionID: wait.AttractionID,
		ParkID:       wait.ParkID,
		Minutes:      wait.Minutes,
		Status:       wait.Status,
		ObservedAt:   wait.ObservedAt,
	}
}

// ToEntity converts the storage form back into a domain observation.
func (m *WaitTime) ToEntity() *entity.WaitTime {
	return &entity.WaitTime{
		AttractionID: m.AttractionID,
		ParkID:       m.ParkID,
		Minutes:      m.Minutes,
		Status:       m.Status,
		ObservedAt:   m.ObservedAt,
	}
}
