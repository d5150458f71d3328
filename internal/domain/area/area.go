// Package area holds the grazing-area aggregate rendered on the
// dashboard map.
package area

import (
	"fmt"
	"time"

	"github.com/digitalcoban/coban/internal/shared/id"
)

// Area represents a named grazing area with map coordinates.
type Area struct {
	id        uint
	sid       string
	userID    uint
	name      string
	latitude  float64
	longitude float64
	createdAt time.Time
	updatedAt time.Time
}

// NewArea creates a grazing area for a user.
func NewArea(userID uint, name string, latitude, longitude float64) (*Area, error) {
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	if name == "" {
		return nil, fmt.Errorf("area name is required")
	}
	if latitude < -90 || latitude > 90 {
		return nil, fmt.Errorf("latitude out of range: %f", latitude)
	}
	if longitude < -180 || longitude > 180 {
		return nil, fmt.Errorf("longitude out of range: %f", longitude)
	}

	sid, err := id.GenerateWithPrefix(id.PrefixArea, id.DefaultLength)
	if err != nil {
		return nil, fmt.Errorf("failed to generate area SID: %w", err)
	}

	now := time.Now().UTC()
	return &Area{
		sid:       sid,
		userID:    userID,
		name:      name,
		latitude:  latitude,
		longitude: longitude,
		createdAt: now,
		updatedAt: now,
	}, nil
}

// ReconstructArea rebuilds an area from persistence.
func ReconstructArea(areaID uint, sid string, userID uint, name string, latitude, longitude float64, createdAt, updatedAt time.Time) (*Area, error) {
	if areaID == 0 {
		return nil, fmt.Errorf("area ID cannot be zero")
	}
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}

	return &Area{
		id:        areaID,
		sid:       sid,
		userID:    userID,
		name:      name,
		latitude:  latitude,
		longitude: longitude,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}, nil
}

// ID returns the area ID
func (a *Area) ID() uint {
	return a.id
}

// SID returns the public identifier
func (a *Area) SID() string {
	return a.sid
}

// UserID returns the owning user ID
func (a *Area) UserID() uint {
	return a.userID
}

// Name returns the display name
func (a *Area) Name() string {
	return a.name
}

// Latitude returns the map latitude
func (a *Area) Latitude() float64 {
	return a.latitude
}

// Longitude returns the map longitude
func (a *Area) Longitude() float64 {
	return a.longitude
}

// CreatedAt returns when the area was created
func (a *Area) CreatedAt() time.Time {
	return a.createdAt
}

// UpdatedAt returns when the area was last updated
func (a *Area) UpdatedAt() time.Time {
	return a.updatedAt
}

// SetID sets the area ID (only for persistence layer use)
func (a *Area) SetID(newID uint) error {
	if a.id != 0 {
		return fmt.Errorf("area ID is already set")
	}
	if newID == 0 {
		return fmt.Errorf("area ID cannot be zero")
	}
	a.id = newID
	return nil
}

// Relocate moves the area on the map.
func (a *Area) Relocate(latitude, longitude float64) error {
	if latitude < -90 || latitude > 90 {
		return fmt.Errorf("latitude out of range: %f", latitude)
	}
	if longitude < -180 || longitude > 180 {
		return fmt.Errorf("longitude out of range: %f", longitude)
	}
	a.latitude = latitude
	a.longitude = longitude
	a.updatedAt = time.Now().UTC()
	return nil
}

// Rename changes the display name.
func (a *Area) Rename(name string) error {
	if name == "" {
		return fmt.Errorf("area name is required")
	}
	a.name = name
	a.updatedAt = time.Now().UTC()
	return nil
}
