// Package animal holds the tracked-livestock aggregate. Animals are
// registered through QR tag intake and optionally pinned to a grazing
// area shown on the dashboard map.
package animal

import (
	"fmt"
	"time"

	"github.com/digitalcoban/coban/internal/domain/billing"
	"github.com/digitalcoban/coban/internal/shared/id"
)

// Animal represents a single tracked head of livestock.
type Animal struct {
	id         uint
	sid        string
	userID     uint
	name       string
	animalType billing.AnimalType
	qrCode     string
	areaID     *uint
	createdAt  time.Time
	updatedAt  time.Time
}

// NewAnimal registers an animal for a user. The QR code is the tag
// scanned at intake and must be unique across the herd.
func NewAnimal(userID uint, name string, animalType billing.AnimalType, qrCode string) (*Animal, error) {
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	if name == "" {
		return nil, fmt.Errorf("animal name is required")
	}
	if !animalType.Valid() {
		return nil, fmt.Errorf("invalid animal type: %s", animalType)
	}
	if qrCode == "" {
		return nil, fmt.Errorf("QR tag code is required")
	}

	sid, err := id.GenerateWithPrefix(id.PrefixAnimal, id.DefaultLength)
	if err != nil {
		return nil, fmt.Errorf("failed to generate animal SID: %w", err)
	}

	now := time.Now().UTC()
	return &Animal{
		sid:        sid,
		userID:     userID,
		name:       name,
		animalType: animalType,
		qrCode:     qrCode,
		createdAt:  now,
		updatedAt:  now,
	}, nil
}

// ReconstructAnimal rebuilds an animal from persistence.
func ReconstructAnimal(animalID uint, sid string, userID uint, name string, animalType billing.AnimalType, qrCode string, areaID *uint, createdAt, updatedAt time.Time) (*Animal, error) {
	if animalID == 0 {
		return nil, fmt.Errorf("animal ID cannot be zero")
	}
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}

	return &Animal{
		id:         animalID,
		sid:        sid,
		userID:     userID,
		name:       name,
		animalType: animalType,
		qrCode:     qrCode,
		areaID:     areaID,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}, nil
}

// ID returns the animal ID
func (a *Animal) ID() uint {
	return a.id
}

// SID returns the public identifier
func (a *Animal) SID() string {
	return a.sid
}

// UserID returns the owning user ID
func (a *Animal) UserID() uint {
	return a.userID
}

// Name returns the display name
func (a *Animal) Name() string {
	return a.name
}

// Type returns the animal type tag
func (a *Animal) Type() billing.AnimalType {
	return a.animalType
}

// QRCode returns the intake tag code
func (a *Animal) QRCode() string {
	return a.qrCode
}

// AreaID returns the assigned grazing area, nil when unassigned
func (a *Animal) AreaID() *uint {
	return a.areaID
}

// CreatedAt returns when the animal was registered
func (a *Animal) CreatedAt() time.Time {
	return a.createdAt
}

// UpdatedAt returns when the animal was last updated
func (a *Animal) UpdatedAt() time.Time {
	return a.updatedAt
}

// SetID sets the animal ID (only for persistence layer use)
func (a *Animal) SetID(newID uint) error {
	if a.id != 0 {
		return fmt.Errorf("animal ID is already set")
	}
	if newID == 0 {
		return fmt.Errorf("animal ID cannot be zero")
	}
	a.id = newID
	return nil
}

// Rename changes the display name.
func (a *Animal) Rename(name string) error {
	if name == "" {
		return fmt.Errorf("animal name is required")
	}
	a.name = name
	a.updatedAt = time.Now().UTC()
	return nil
}

// AssignArea pins the animal to a grazing area.
func (a *Animal) AssignArea(areaID uint) error {
	if areaID == 0 {
		return fmt.Errorf("area ID is required")
	}
	a.areaID = &areaID
	a.updatedAt = time.Now().UTC()
	return nil
}

// ClearArea removes the area assignment.
func (a *Animal) ClearArea() {
	a.areaID = nil
	a.updatedAt = time.Now().UTC()
}
